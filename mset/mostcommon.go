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

import "sort"

// MostCommon returns up to k elements with the highest counts, ordered by
// count descending. Elements with equal counts are ordered by element
// ascending. The result is empty when k <= 0 or the multiset is empty.
func (s *Multiset) MostCommon(k int) []Item {
	if k <= 0 || s.Size() == 0 {
		return []Item{}
	}

	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		return byFrequency(items[i], items[j])
	})

	if k < len(items) {
		items = items[:k]
	}
	return items
}

// byFrequency orders items by count descending, then element ascending.
func byFrequency(x, y Item) bool {
	if x.Count != y.Count {
		return x.Count > y.Count
	}
	return x.Elem < y.Elem
}
