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

// None of the operations below modify their arguments. Operations that
// produce a multiset always allocate a new one.

// Union returns a multiset in which every element has the larger of its two
// counts in a and b. A nil argument is treated as empty; if both are nil the
// result is nil.
func Union(a, b *Multiset) *Multiset {
	if a == nil && b == nil {
		return nil
	}

	result := New()
	a.Walk(func(it Item) bool {
		result.InsertMany(it.Elem, it.Count)
		return true
	})
	b.Walk(func(it Item) bool {
		if present := result.GetCount(it.Elem); present < it.Count {
			result.InsertMany(it.Elem, it.Count-present)
		}
		return true
	})
	return result
}

// Intersection returns a multiset holding the elements present in both a and
// b, each with the smaller of its two counts. If either argument is nil the
// result is nil.
func Intersection(a, b *Multiset) *Multiset {
	if a == nil || b == nil {
		return nil
	}

	result := New()
	a.Walk(func(it Item) bool {
		if other := b.GetCount(it.Elem); other > 0 {
			result.InsertMany(it.Elem, min(it.Count, other))
		}
		return true
	})
	return result
}

// Sum returns the additive union of a and b: counts are added together.
// A nil argument is treated as empty; if both are nil the result is nil.
func Sum(a, b *Multiset) *Multiset {
	if a == nil && b == nil {
		return nil
	}

	result := New()
	for _, s := range []*Multiset{a, b} {
		s.Walk(func(it Item) bool {
			result.InsertMany(it.Elem, it.Count)
			return true
		})
	}
	return result
}

// Difference returns the elements of a whose count exceeds their count in b,
// each with the excess as its count. Nil a gives nil; nil b gives a copy of a.
func Difference(a, b *Multiset) *Multiset {
	if a == nil {
		return nil
	}

	result := New()
	a.Walk(func(it Item) bool {
		if excess := it.Count - b.count(it.Elem); excess > 0 {
			result.InsertMany(it.Elem, excess)
		}
		return true
	})
	return result
}

// Included reports whether a is included in b, i.e. every element of a
// occurs in b at least as many times. A nil or empty a is included in
// anything; a non-empty a is never included in a nil or empty b.
func Included(a, b *Multiset) bool {
	if a == nil || a.totalCount == 0 {
		return true
	}
	if b == nil || b.totalCount == 0 {
		return false
	}

	included := true
	a.Walk(func(it Item) bool {
		if getCount(b.root, it.Elem) < it.Count {
			included = false
		}
		return included
	})
	return included
}

// Equals reports whether a and b hold the same elements with the same counts.
// Two nil multisets are equal; a nil and a non-nil multiset are not.
func Equals(a, b *Multiset) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.size != b.size || a.totalCount != b.totalCount {
		return false
	}
	return Included(a, b) && Included(b, a)
}

// count is getCount for a possibly nil multiset, without the nil warning.
func (s *Multiset) count(item int) int {
	if s == nil {
		return 0
	}
	return getCount(s.root, item)
}
