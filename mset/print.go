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
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Print writes the multiset to w in ascending order, formatted as
// {(elem, count), (elem, count)}. An empty multiset prints as {}.
func (s *Multiset) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeTo(bw, s)
	return bw.Flush()
}

// String returns the same text Print writes.
func (s *Multiset) String() string {
	var sb strings.Builder
	writeTo(&sb, s)
	return sb.String()
}

// byteWriter is satisfied by both *bufio.Writer and *strings.Builder.
type byteWriter interface {
	io.Writer
	WriteByte(c byte) error
	WriteString(s string) (int, error)
}

func writeTo(w byteWriter, s *Multiset) {
	var buf [24]byte

	w.WriteByte('{')
	first := true
	s.Walk(func(it Item) bool {
		if !first {
			w.WriteString(", ")
		}
		first = false

		w.WriteByte('(')
		w.Write(strconv.AppendInt(buf[:0], int64(it.Elem), 10))
		w.WriteString(", ")
		w.Write(strconv.AppendInt(buf[:0], int64(it.Count), 10))
		w.WriteByte(')')
		return true
	})
	w.WriteByte('}')
}
