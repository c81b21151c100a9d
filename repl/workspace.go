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

package repl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/atotto/clipboard"
	"github.com/cybrota/bagtree/mset"
	"github.com/willf/bloom"
)

var (
	ErrNoSuchSet = errors.New("no such set")
	ErrSetExists = errors.New("set already exists")
	ErrNoLoader  = errors.New("loading files is not available")
	ErrOverflow  = errors.New("count would overflow")
)

// bloomFalsePositiveRate is the target rate for the per-set filters used by Find.
const bloomFalsePositiveRate = 0.01

// LoaderFunc reads a multiset from a file.
type LoaderFunc func(path string) (*mset.Multiset, error)

type entry struct {
	set    *mset.Multiset
	filter *bloom.BloomFilter // nil until the next Find after a change
}

// Workspace holds the named multisets of a shell session.
type Workspace struct {
	sets      map[string]*entry
	load      LoaderFunc
	clipboard func(string) error
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithLoader sets the function used by Load.
func WithLoader(load LoaderFunc) Option {
	return func(ws *Workspace) { ws.load = load }
}

// WithClipboard replaces the system clipboard used by Copy.
func WithClipboard(write func(string) error) Option {
	return func(ws *Workspace) { ws.clipboard = write }
}

func NewWorkspace(opts ...Option) *Workspace {
	ws := &Workspace{
		sets:      make(map[string]*entry),
		clipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(ws)
	}
	return ws
}

// Create adds an empty set called name.
func (ws *Workspace) Create(name string) error {
	if _, ok := ws.sets[name]; ok {
		return fmt.Errorf("%w: %s", ErrSetExists, name)
	}
	ws.Put(name, mset.New())
	return nil
}

// Put stores s under name, replacing any existing set.
func (ws *Workspace) Put(name string, s *mset.Multiset) {
	ws.sets[name] = &entry{set: s}
}

// Load reads path and stores it under name.
func (ws *Workspace) Load(name, path string) (*mset.Multiset, error) {
	if ws.load == nil {
		return nil, ErrNoLoader
	}
	s, err := ws.load(path)
	if err != nil {
		return nil, err
	}
	ws.Put(name, s)
	return s, nil
}

// Get returns the set called name. The set must not be modified through the
// returned pointer; use Insert and Delete instead.
func (ws *Workspace) Get(name string) (*mset.Multiset, error) {
	e, ok := ws.sets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchSet, name)
	}
	return e.set, nil
}

// Drop frees the set called name and removes it.
func (ws *Workspace) Drop(name string) error {
	e, ok := ws.sets[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchSet, name)
	}
	e.set.Free()
	delete(ws.sets, name)
	return nil
}

// Names returns the set names in sorted order.
func (ws *Workspace) Names() []string {
	names := make([]string, 0, len(ws.sets))
	for name := range ws.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ws *Workspace) Insert(name string, item, amount int) error {
	e, ok := ws.sets[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchSet, name)
	}
	if !e.set.Fits(amount) {
		return fmt.Errorf("%w: %s holds %d, cannot add %d", ErrOverflow, name, e.set.TotalCount(), amount)
	}
	e.set.InsertMany(item, amount)
	e.filter = nil
	return nil
}

// Delete removes up to amount occurrences of item and returns how many went.
func (ws *Workspace) Delete(name string, item, amount int) (int, error) {
	e, ok := ws.sets[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoSuchSet, name)
	}
	removed := e.set.DeleteMany(item, amount)
	if removed > 0 {
		e.filter = nil
	}
	return removed, nil
}

// Find returns the names of the sets that contain item, sorted. Each set's
// bloom filter rules most sets out without touching the tree.
func (ws *Workspace) Find(item int) []string {
	key := elemKey(item)
	var found []string
	skipped := 0
	for _, name := range ws.Names() {
		e := ws.sets[name]
		if !e.bloom().Test(key) {
			skipped++
			continue
		}
		if e.set.Contains(item) {
			found = append(found, name)
		}
	}
	slog.Debug("find", "item", item, "sets", len(ws.sets), "bloom_skipped", skipped, "found", len(found))
	return found
}

// Copy puts the printed form of the set called name on the clipboard.
func (ws *Workspace) Copy(name string) (string, error) {
	s, err := ws.Get(name)
	if err != nil {
		return "", err
	}
	text := s.String()
	if err := ws.clipboard(text); err != nil {
		return "", fmt.Errorf("failed to copy %s: %w", name, err)
	}
	return text, nil
}

func (e *entry) bloom() *bloom.BloomFilter {
	if e.filter != nil {
		return e.filter
	}
	n := uint(e.set.Size())
	if n == 0 {
		n = 1
	}
	e.filter = bloom.NewWithEstimates(n, bloomFalsePositiveRate)
	e.set.Walk(func(it mset.Item) bool {
		e.filter.Add(elemKey(it.Elem))
		return true
	})
	return e.filter
}

func elemKey(elem int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(elem))
	return buf[:]
}
