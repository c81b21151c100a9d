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

// rotateLeft lifts the right child of n into n's place.
//
//	  n              p
//	 / \            / \
//	a   p    =>    n   c
//	   / \        / \
//	  b   c      a   b
func rotateLeft(n *node) *node {
	if n == nil || n.right == nil {
		return n
	}

	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	// n is now below pivot, so it goes first
	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateRight is the mirror of rotateLeft.
func rotateRight(n *node) *node {
	if n == nil || n.left == nil {
		return n
	}

	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rebalance restores the AVL condition at n, assuming both subtrees
// already satisfy it, and returns the new subtree root.
func rebalance(n *node) *node {
	if n == nil {
		return nil
	}
	n.updateHeight()

	switch bf := n.balanceFactor(); {
	case bf > 1:
		if n.left.balanceFactor() < 0 {
			// Left-Right case
			n.left = rotateLeft(n.left)
		}
		n = rotateRight(n)
	case bf < -1:
		if n.right.balanceFactor() > 0 {
			// Right-Left case
			n.right = rotateRight(n.right)
		}
		n = rotateLeft(n)
	}

	n.updateHeight()
	return n
}
