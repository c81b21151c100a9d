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

import "iter"

// inOrder visits every node below n in ascending element order.
// It stops and returns false as soon as visit returns false.
func inOrder(n *node, visit func(*node) bool) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.left, visit) {
		return false
	}
	if !visit(n) {
		return false
	}
	return inOrder(n.right, visit)
}

// Walk calls fn for every element in ascending order until fn returns false.
func (s *Multiset) Walk(fn func(Item) bool) {
	if s == nil {
		return
	}
	inOrder(s.root, func(n *node) bool {
		return fn(n.item())
	})
}

// All returns an iterator over (element, count) pairs in ascending order.
//
//	for elem, count := range s.All() {
//		...
//	}
func (s *Multiset) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if s == nil {
			return
		}
		inOrder(s.root, func(n *node) bool {
			return yield(n.elem, n.count)
		})
	}
}

// Items returns every element with its count in ascending order.
func (s *Multiset) Items() []Item {
	items := make([]Item, 0, s.Size())
	s.Walk(func(it Item) bool {
		items = append(items, it)
		return true
	})
	return items
}

// Min returns the smallest element, or false if the multiset is empty.
func (s *Multiset) Min() (Item, bool) {
	if s == nil || s.root == nil {
		return Item{Elem: Undefined}, false
	}
	return findMin(s.root).item(), true
}

// Max returns the largest element, or false if the multiset is empty.
func (s *Multiset) Max() (Item, bool) {
	if s == nil || s.root == nil {
		return Item{Elem: Undefined}, false
	}
	return findMax(s.root).item(), true
}
