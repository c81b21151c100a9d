// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mset

// insertRecursive adds amount copies of item below n. It returns the new
// subtree root and whether a node for a previously absent element was created.
func insertRecursive(n *node, item, amount int) (*node, bool) {
	if n == nil {
		return newNode(item, amount), true
	}

	var created bool
	switch {
	case item < n.elem:
		n.left, created = insertRecursive(n.left, item, amount)
	case item > n.elem:
		n.right, created = insertRecursive(n.right, item, amount)
	default:
		n.count += amount
		return n, false
	}

	return rebalance(n), created
}

// deleteRecursive removes up to amount copies of item below n and returns the
// new subtree root and the number of copies actually removed.
func deleteRecursive(n *node, item, amount int) (*node, int) {
	if n == nil {
		return nil, 0
	}

	var removed int
	switch {
	case item < n.elem:
		n.left, removed = deleteRecursive(n.left, item, amount)
	case item > n.elem:
		n.right, removed = deleteRecursive(n.right, item, amount)
	default:
		if amount < n.count {
			n.count -= amount
			return n, amount
		}
		removed = n.count
		n = excise(n)
		if n == nil {
			return nil, removed
		}
	}

	return rebalance(n), removed
}

// excise unlinks n from the tree and returns whatever takes its place.
// A node with two children takes over the element of its in-order
// predecessor (left at least as tall) or successor, which is then
// deleted from the subtree it came from.
func excise(n *node) *node {
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}

	if height(n.left) >= height(n.right) {
		pred := findMax(n.left)
		n.elem, n.count = pred.elem, pred.count
		n.left, _ = deleteRecursive(n.left, pred.elem, pred.count)
	} else {
		succ := findMin(n.right)
		n.elem, n.count = succ.elem, succ.count
		n.right, _ = deleteRecursive(n.right, succ.elem, succ.count)
	}

	return rebalance(n)
}

// sweepZero walks the search path for item and excises the matching node if
// its count is exactly zero. Excision in deleteRecursive already guarantees
// this, so on a healthy tree the sweep only rebalances an unchanged path.
func sweepZero(n *node, item int) *node {
	if n == nil {
		return nil
	}

	switch {
	case item < n.elem:
		n.left = sweepZero(n.left, item)
	case item > n.elem:
		n.right = sweepZero(n.right, item)
	default:
		if n.count == 0 {
			n = excise(n)
		}
	}

	return rebalance(n)
}
