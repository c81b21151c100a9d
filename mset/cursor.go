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

type position int

const (
	atStart position = iota
	atElem
	atEnd
)

// Cursor walks a multiset in either direction. It is positioned either
// before the smallest element (start), after the largest (end), or on an
// element.
//
// The cursor keeps the chain of ancestors of its current node, so stepping
// costs amortized O(1). If the multiset is modified while the cursor is on an
// element, the next call re-seeks from the root relative to the element it
// was on.
type Cursor struct {
	set  *Multiset
	pos  position
	path []*node // root ... current node, only meaningful at atElem
	elem int     // element under the cursor at atElem
	mods uint64  // set.mods when path was built
}

// NewCursor returns a cursor positioned at the start of s.
func NewCursor(s *Multiset) *Cursor {
	return &Cursor{set: s, pos: atStart, elem: Undefined}
}

// Cursor returns a cursor positioned at the start of s.
func (s *Multiset) Cursor() *Cursor {
	return NewCursor(s)
}

// Free drops the cursor's own state and moves it back to the start. The
// multiset is not affected.
func (c *Cursor) Free() {
	c.path = nil
	c.pos = atStart
	c.elem = Undefined
}

// AtStart reports whether the cursor is before the smallest element.
func (c *Cursor) AtStart() bool { return c.pos == atStart }

// AtEnd reports whether the cursor is after the largest element.
func (c *Cursor) AtEnd() bool { return c.pos == atEnd }

// Get returns the element under the cursor with its count, or
// {Undefined, 0} at the start or end.
func (c *Cursor) Get() Item {
	if c.pos != atElem {
		return Item{Elem: Undefined}
	}
	if c.stale() {
		n := lookup(c.root(), c.elem)
		if n == nil {
			return Item{Elem: Undefined}
		}
		return n.item()
	}
	return c.path[len(c.path)-1].item()
}

// Next moves to the next greater element, or to the end if there is none.
// It returns false iff the cursor ends up at the end.
func (c *Cursor) Next() bool {
	switch c.pos {
	case atEnd:
		return false
	case atStart:
		c.path = c.path[:0]
		c.pushLeftSpine(c.root())
	default:
		if c.stale() {
			c.seekAbove(c.elem)
		} else {
			c.successor()
		}
	}
	return c.settle(atEnd)
}

// Prev moves to the next smaller element, or to the start if there is none.
// It returns false iff the cursor ends up at the start.
func (c *Cursor) Prev() bool {
	switch c.pos {
	case atStart:
		return false
	case atEnd:
		c.path = c.path[:0]
		c.pushRightSpine(c.root())
	default:
		if c.stale() {
			c.seekBelow(c.elem)
		} else {
			c.predecessor()
		}
	}
	return c.settle(atStart)
}

func (c *Cursor) root() *node {
	if c.set == nil {
		return nil
	}
	return c.set.root
}

func (c *Cursor) stale() bool {
	return c.set != nil && c.set.mods != c.mods
}

// settle records the new position after a move. An empty path means the
// cursor fell off the given sentinel.
func (c *Cursor) settle(sentinel position) bool {
	if len(c.path) == 0 {
		c.pos = sentinel
		c.elem = Undefined
		return false
	}
	c.pos = atElem
	c.elem = c.path[len(c.path)-1].elem
	if c.set != nil {
		c.mods = c.set.mods
	}
	return true
}

func (c *Cursor) pushLeftSpine(n *node) {
	for ; n != nil; n = n.left {
		c.path = append(c.path, n)
	}
}

func (c *Cursor) pushRightSpine(n *node) {
	for ; n != nil; n = n.right {
		c.path = append(c.path, n)
	}
}

func (c *Cursor) successor() {
	cur := c.path[len(c.path)-1]
	if cur.right != nil {
		c.pushLeftSpine(cur.right)
		return
	}
	// climb until we leave a left subtree
	for {
		child := c.path[len(c.path)-1]
		c.path = c.path[:len(c.path)-1]
		if len(c.path) == 0 || c.path[len(c.path)-1].left == child {
			return
		}
	}
}

func (c *Cursor) predecessor() {
	cur := c.path[len(c.path)-1]
	if cur.left != nil {
		c.pushRightSpine(cur.left)
		return
	}
	for {
		child := c.path[len(c.path)-1]
		c.path = c.path[:len(c.path)-1]
		if len(c.path) == 0 || c.path[len(c.path)-1].right == child {
			return
		}
	}
}

// Seek moves to the smallest element not below elem, or to the end when
// there is none. It returns false iff the cursor ends up at the end.
func (c *Cursor) Seek(elem int) bool {
	c.seekFrom(elem, true)
	return c.settle(atEnd)
}

// seekAbove rebuilds the path down to the smallest element greater than elem.
func (c *Cursor) seekAbove(elem int) {
	c.seekFrom(elem, false)
}

// seekFrom rebuilds the path down to the smallest element above elem, or
// equal to it when inclusive is set.
func (c *Cursor) seekFrom(elem int, inclusive bool) {
	c.path = c.path[:0]
	keep := 0
	for n := c.root(); n != nil; {
		c.path = append(c.path, n)
		if n.elem > elem || (inclusive && n.elem == elem) {
			keep = len(c.path)
			n = n.left
		} else {
			n = n.right
		}
	}
	c.path = c.path[:keep]
}

// seekBelow rebuilds the path down to the largest element smaller than elem.
func (c *Cursor) seekBelow(elem int) {
	c.path = c.path[:0]
	keep := 0
	for n := c.root(); n != nil; {
		c.path = append(c.path, n)
		if n.elem < elem {
			keep = len(c.path)
			n = n.right
		} else {
			n = n.left
		}
	}
	c.path = c.path[:keep]
}
