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

// node holds one distinct element and its multiplicity.
// Each node owns its two children; there are no parent links.
type node struct {
	elem   int
	count  int
	left   *node
	right  *node
	height int
}

func newNode(elem, count int) *node {
	return &node{elem: elem, count: count, height: 1}
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

func (n *node) balanceFactor() int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func (n *node) item() Item {
	return Item{Elem: n.elem, Count: n.count}
}

func findMin(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func findMax(n *node) *node {
	for n.right != nil {
		n = n.right
	}
	return n
}

func cloneNode(n *node) *node {
	if n == nil {
		return nil
	}
	return &node{
		elem:   n.elem,
		count:  n.count,
		left:   cloneNode(n.left),
		right:  cloneNode(n.right),
		height: n.height,
	}
}
