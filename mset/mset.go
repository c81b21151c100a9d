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

// Package mset implements a multiset (bag) of ints stored in an AVL tree.
//
// Each distinct element occupies one tree node carrying its multiplicity, so
// inserting the same element many times costs one node. The container caches
// the number of distinct elements and the sum of all multiplicities, which
// makes Size and TotalCount constant time.
//
// A Multiset is not safe for concurrent use.
package mset

import (
	"errors"
	"log/slog"
	"math"
)

// Undefined is the reserved "no element" value. It is never stored: inserting
// it is a no-op, and cursors report it when positioned at either end.
const Undefined = math.MinInt

// ErrNilMultiset is returned by strict queries made against a nil *Multiset.
var ErrNilMultiset = errors.New("mset: nil multiset")

// Item is an element paired with its multiplicity.
type Item struct {
	Elem  int
	Count int
}

// Multiset is a bag of ints. The zero value is an empty multiset ready to use.
type Multiset struct {
	root       *node
	size       int
	totalCount int

	// mods changes on every mutation so cursors can tell their path is stale.
	mods uint64
}

// New returns an empty multiset.
func New() *Multiset {
	return &Multiset{}
}

// Free releases the whole tree. The multiset is left empty and may be reused.
func (s *Multiset) Free() {
	if s == nil {
		return
	}
	s.root = nil
	s.size = 0
	s.totalCount = 0
	s.mods++
}

// Size returns the number of distinct elements.
func (s *Multiset) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// TotalCount returns the sum of the counts of all elements.
func (s *Multiset) TotalCount() int {
	if s == nil {
		return 0
	}
	return s.totalCount
}

// Insert adds one copy of item.
func (s *Multiset) Insert(item int) {
	s.InsertMany(item, 1)
}

// Fits reports whether amount more copies can be added without the total
// count overflowing. The total bounds every element's count.
func (s *Multiset) Fits(amount int) bool {
	return amount <= math.MaxInt-s.TotalCount()
}

// InsertMany adds amount copies of item. Undefined, non-positive amounts and
// amounts that do not fit are ignored.
func (s *Multiset) InsertMany(item, amount int) {
	if s == nil || item == Undefined || amount <= 0 {
		return
	}
	if !s.Fits(amount) {
		slog.Warn("mset: insert would overflow total count", "item", item, "amount", amount, "total", s.totalCount)
		return
	}

	var created bool
	s.root, created = insertRecursive(s.root, item, amount)
	if created {
		s.size++
	}
	s.totalCount += amount
	s.mods++
}

// Delete removes one copy of item and reports how many copies were removed.
func (s *Multiset) Delete(item int) int {
	return s.DeleteMany(item, 1)
}

// DeleteMany removes up to amount copies of item and returns the number
// actually removed. The element disappears once its count reaches zero.
func (s *Multiset) DeleteMany(item, amount int) int {
	if s == nil || amount <= 0 {
		return 0
	}

	current := getCount(s.root, item)

	var removed int
	s.root, removed = deleteRecursive(s.root, item, amount)
	s.root = sweepZero(s.root, item)

	s.totalCount -= removed
	if current == removed && removed > 0 {
		s.size--
	}
	if removed > 0 {
		s.mods++
	}
	return removed
}

// GetCount returns the count of item, or 0 if it does not occur.
// Calling it on a nil multiset is logged and yields 0; use Count to get an
// error instead.
func (s *Multiset) GetCount(item int) int {
	if s == nil {
		slog.Warn("count requested from nil multiset", "item", item)
		return 0
	}
	return getCount(s.root, item)
}

// Count is GetCount with an explicit error for a nil multiset, so that
// "absent item" and "absent container" can be told apart.
func (s *Multiset) Count(item int) (int, error) {
	if s == nil {
		return 0, ErrNilMultiset
	}
	return getCount(s.root, item), nil
}

// Contains reports whether item occurs at least once.
func (s *Multiset) Contains(item int) bool {
	if s == nil {
		return false
	}
	return getCount(s.root, item) > 0
}

// Clone returns a deep copy of s with the same tree shape.
func (s *Multiset) Clone() *Multiset {
	if s == nil {
		return nil
	}
	return &Multiset{
		root:       cloneNode(s.root),
		size:       s.size,
		totalCount: s.totalCount,
	}
}

// Height returns the height of the underlying tree, 0 when empty.
func (s *Multiset) Height() int {
	if s == nil {
		return 0
	}
	return height(s.root)
}

func getCount(n *node, item int) int {
	for n != nil {
		switch {
		case item < n.elem:
			n = n.left
		case item > n.elem:
			n = n.right
		default:
			return n.count
		}
	}
	return 0
}

func lookup(n *node, item int) *node {
	for n != nil {
		switch {
		case item < n.elem:
			n = n.left
		case item > n.elem:
			n = n.right
		default:
			return n
		}
	}
	return nil
}
