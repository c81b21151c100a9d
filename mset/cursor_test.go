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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorOnEmpty(t *testing.T) {
	c := New().Cursor()
	assert.True(t, c.AtStart())
	assert.Equal(t, Item{Undefined, 0}, c.Get())

	assert.False(t, c.Next())
	assert.True(t, c.AtEnd())
	assert.Equal(t, Item{Undefined, 0}, c.Get())
	assert.False(t, c.Next())

	assert.False(t, c.Prev())
	assert.True(t, c.AtStart())
	assert.False(t, c.Prev())

	nc := NewCursor(nil)
	assert.False(t, nc.Next())
	assert.Equal(t, Item{Undefined, 0}, nc.Get())
}

func TestCursorWalksBothWays(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := randomMultiset(rng, 300)
	want := s.Items()

	c := s.Cursor()
	var forward []Item
	for c.Next() {
		forward = append(forward, c.Get())
	}
	assert.Equal(t, want, forward)
	assert.True(t, c.AtEnd())

	var backward []Item
	for c.Prev() {
		backward = append(backward, c.Get())
	}
	require.Len(t, backward, len(want))
	for i := range want {
		assert.Equal(t, want[len(want)-1-i], backward[i])
	}
	assert.True(t, c.AtStart())
}

func TestCursorChangesDirection(t *testing.T) {
	s := fromItems(Item{10, 1}, Item{20, 2}, Item{30, 3})
	c := s.Cursor()

	require.True(t, c.Next())
	require.True(t, c.Next())
	assert.Equal(t, Item{20, 2}, c.Get())

	require.True(t, c.Prev())
	assert.Equal(t, Item{10, 1}, c.Get())
	assert.False(t, c.Prev())
	assert.True(t, c.AtStart())

	require.True(t, c.Next())
	assert.Equal(t, Item{10, 1}, c.Get())
}

func TestCursorFree(t *testing.T) {
	s := fromItems(Item{1, 1}, Item{2, 1})
	c := s.Cursor()
	c.Next()
	c.Free()

	assert.True(t, c.AtStart())
	assert.Equal(t, Item{Undefined, 0}, c.Get())
	assert.Equal(t, 2, s.Size())

	require.True(t, c.Next())
	assert.Equal(t, Item{1, 1}, c.Get())
}

func TestCursorReseeksAfterMutation(t *testing.T) {
	s := New()
	for e := 0; e < 10; e++ {
		s.InsertMany(e*10, e+1)
	}
	c := s.Cursor()
	for c.Get().Elem != 40 {
		require.True(t, c.Next())
	}

	s.InsertMany(40, 10)
	assert.Equal(t, Item{40, 15}, c.Get())

	s.DeleteMany(40, 100)
	s.Insert(45)
	assert.Equal(t, Item{Undefined, 0}, c.Get())

	require.True(t, c.Next())
	assert.Equal(t, Item{45, 1}, c.Get())

	s.DeleteMany(30, 100)
	require.True(t, c.Prev())
	assert.Equal(t, Item{20, 3}, c.Get())

	// the path is fresh again after a move
	require.True(t, c.Next())
	assert.Equal(t, Item{45, 1}, c.Get())
	require.True(t, c.Next())
	assert.Equal(t, Item{50, 6}, c.Get())
}

func TestCursorSeek(t *testing.T) {
	s := fromItems(Item{10, 1}, Item{20, 2}, Item{30, 3})
	c := s.Cursor()

	tests := []struct {
		target int
		want   Item
	}{
		{20, Item{20, 2}},
		{15, Item{20, 2}},
		{-100, Item{10, 1}},
		{Undefined, Item{10, 1}},
		{30, Item{30, 3}},
	}
	for _, tt := range tests {
		require.True(t, c.Seek(tt.target), "Seek(%d)", tt.target)
		assert.Equal(t, tt.want, c.Get(), "Seek(%d)", tt.target)
	}

	assert.False(t, c.Seek(31))
	assert.True(t, c.AtEnd())
	require.True(t, c.Prev())
	assert.Equal(t, Item{30, 3}, c.Get())

	// the walk goes on from the sought element in both directions
	require.True(t, c.Seek(11))
	require.True(t, c.Next())
	assert.Equal(t, Item{30, 3}, c.Get())
	require.True(t, c.Seek(11))
	require.True(t, c.Prev())
	assert.Equal(t, Item{10, 1}, c.Get())

	s.Insert(25)
	require.True(t, c.Seek(21))
	assert.Equal(t, Item{25, 1}, c.Get())
	require.True(t, c.Next())
	assert.Equal(t, Item{30, 3}, c.Get())
}

func TestCursorSeekOnEmpty(t *testing.T) {
	c := New().Cursor()
	assert.False(t, c.Seek(0))
	assert.True(t, c.AtEnd())
	assert.Equal(t, Item{Undefined, 0}, c.Get())
	assert.False(t, c.Prev())
	assert.True(t, c.AtStart())

	var nilSet *Multiset
	assert.False(t, NewCursor(nilSet).Seek(1))
}

func TestCursorSeekMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := randomMultiset(rng, 300)
	c := s.Cursor()
	items := s.Items()

	for i := 0; i < 200; i++ {
		target := rng.Intn(40) - 5
		want := Item{Undefined, 0}
		for _, it := range items {
			if it.Elem >= target {
				want = it
				break
			}
		}
		found := c.Seek(target)
		assert.Equal(t, want.Elem != Undefined, found, "Seek(%d)", target)
		assert.Equal(t, want, c.Get(), "Seek(%d)", target)
	}
}
