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

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by the errors Validate reports for a broken tree.
var ErrInvariant = errors.New("mset: invariant violated")

// Validate checks the tree structure and the cached aggregates: BST order,
// AVL balance, cached heights, positive counts, Size and TotalCount.
func (s *Multiset) Validate() error {
	if s == nil {
		return ErrNilMultiset
	}

	var nodes, total int
	var prev *node
	var err error

	var check func(n *node) int
	check = func(n *node) int {
		if n == nil || err != nil {
			return 0
		}
		lh := check(n.left)

		if prev != nil && prev.elem >= n.elem && err == nil {
			err = fmt.Errorf("%w: element %d follows %d in order", ErrInvariant, n.elem, prev.elem)
		}
		if n.count <= 0 && err == nil {
			err = fmt.Errorf("%w: element %d has count %d", ErrInvariant, n.elem, n.count)
		}
		if n.elem == Undefined && err == nil {
			err = fmt.Errorf("%w: undefined element stored", ErrInvariant)
		}
		prev = n
		nodes++
		total += n.count

		rh := check(n.right)
		h := max(lh, rh) + 1
		if n.height != h && err == nil {
			err = fmt.Errorf("%w: element %d caches height %d, want %d", ErrInvariant, n.elem, n.height, h)
		}
		if bf := lh - rh; (bf > 1 || bf < -1) && err == nil {
			err = fmt.Errorf("%w: element %d has balance factor %d", ErrInvariant, n.elem, bf)
		}
		return h
	}
	check(s.root)

	if err != nil {
		return err
	}
	if nodes != s.size {
		return fmt.Errorf("%w: size is %d but tree has %d nodes", ErrInvariant, s.size, nodes)
	}
	if total != s.totalCount {
		return fmt.Errorf("%w: total count is %d but counts sum to %d", ErrInvariant, s.totalCount, total)
	}
	return nil
}
