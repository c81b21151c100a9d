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
	"testing"
)

type AVLTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int // In-order traversal expectation after operations
	ExpectedRoot  int
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []int{1, 2, 3},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedRoot:  2,
		},
		{
			Name:          "Left-Left Rotation",
			InitialKeys:   []int{3},
			KeysToInsert:  []int{2, 1},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedRoot:  2,
		},
		{
			Name:          "Left-Right Rotation",
			KeysToInsert:  []int{3, 1, 2},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedRoot:  2,
		},
		{
			Name:          "Right-Left Rotation",
			KeysToInsert:  []int{1, 3, 2},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedRoot:  2,
		},
		{
			Name:          "Deletion with Balancing (Right-Heavy)",
			InitialKeys:   []int{2, 1, 3, 4},
			KeysToDelete:  []int{1},
			ExpectedOrder: []int{2, 3, 4},
			ExpectedRoot:  3,
		},
		{
			Name:          "Two Children Equal Heights Uses Predecessor",
			InitialKeys:   []int{2, 1, 3},
			KeysToDelete:  []int{2},
			ExpectedOrder: []int{1, 3},
			ExpectedRoot:  1,
		},
		{
			Name:          "Two Children Taller Right Uses Successor",
			InitialKeys:   []int{2, 1, 3, 4},
			KeysToDelete:  []int{2},
			ExpectedOrder: []int{1, 3, 4},
			ExpectedRoot:  3,
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []int{40, 30},
			KeysToInsert:  []int{50, 10},
			KeysToDelete:  []int{30},
			ExpectedOrder: []int{10, 40, 50},
			ExpectedRoot:  40,
		},
		{
			Name:          "Delete Missing Key",
			InitialKeys:   []int{5, 6},
			KeysToDelete:  []int{7},
			ExpectedOrder: []int{5, 6},
			ExpectedRoot:  5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			s := New()
			for _, key := range tc.InitialKeys {
				s.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				s.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				s.Delete(key)
			}
			if err := s.Validate(); err != nil {
				t.Fatalf("invalid tree: %v", err)
			}
			if !verifyInOrderTraversal(t, s.root, tc.ExpectedOrder) {
				t.Errorf("In-order traversal mismatch for test case '%s'", tc.Name)
			}
			if s.root.elem != tc.ExpectedRoot {
				t.Errorf("root = %d; want %d", s.root.elem, tc.ExpectedRoot)
			}
		})
	}
}

func TestRebalanceKeepsLogHeight(t *testing.T) {
	s := New()
	for i := 0; i < 1023; i++ {
		s.Insert(i)
	}
	// A perfectly balanced tree of 1023 nodes has height 10; AVL allows
	// at most ~1.44 log2(n).
	if h := s.Height(); h < 10 || h > 14 {
		t.Errorf("height after ascending inserts = %d; want between 10 and 14", h)
	}
	for i := 0; i < 1023; i += 2 {
		s.Delete(i)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("invalid tree after deletions: %v", err)
	}
}

func TestRotationsUpdateHeights(t *testing.T) {
	n := newNode(1, 1)
	n.right = newNode(2, 1)
	n.right.right = newNode(3, 1)
	n.right.updateHeight()
	n.updateHeight()

	root := rebalance(n)
	if root.elem != 2 {
		t.Fatalf("root = %d; want 2", root.elem)
	}
	if root.height != 2 || root.left.height != 1 || root.right.height != 1 {
		t.Errorf("heights = %d/%d/%d; want 2/1/1", root.height, root.left.height, root.right.height)
	}

	if got := rotateLeft(newNode(9, 1)); got.elem != 9 {
		t.Errorf("rotateLeft without right child changed root to %d", got.elem)
	}
	if got := rotateRight(newNode(9, 1)); got.elem != 9 {
		t.Errorf("rotateRight without left child changed root to %d", got.elem)
	}
}

func verifyInOrderTraversal(t *testing.T, n *node, expected []int) bool {
	var actual []int
	inOrderTraversal(n, &actual)
	if len(actual) != len(expected) {
		t.Logf("Length mismatch. Expected %d elements, got %d", len(expected), len(actual))
		return false
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Logf("Mismatch at index %d. Expected %d, got %d", i, expected[i], actual[i])
			return false
		}
	}
	return true
}

func inOrderTraversal(n *node, result *[]int) {
	if n == nil {
		return
	}
	inOrderTraversal(n.left, result)
	*result = append(*result, n.elem)
	inOrderTraversal(n.right, result)
}
