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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cybrota/bagtree/mset"
	"github.com/patrickmn/go-cache"
)

const (
	// Keep parsed files for 30 minutes by default
	setCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	setCacheCleanup = 5 * time.Minute
)

// SetCache remembers parsed multiset files so that a shell session loading
// the same file repeatedly parses it once. Entries are keyed by absolute path,
// size and modification time, so an edited file is parsed again.
type SetCache struct {
	c    *cache.Cache
	opts LoadOptions
}

// NewSetCache creates a cache whose entries live for expiration.
func NewSetCache(expiration, cleanup time.Duration, opts LoadOptions) *SetCache {
	if expiration <= 0 {
		expiration = setCacheExpiration
	}
	if cleanup <= 0 {
		cleanup = setCacheCleanup
	}
	return &SetCache{c: cache.New(expiration, cleanup), opts: opts}
}

// Load returns the multiset stored in path. Callers get their own copy and
// may modify it freely.
func (sc *SetCache) Load(path string) (*mset.Multiset, error) {
	key, err := cacheKey(path)
	if err != nil {
		// let the loader produce the user-facing error
		return LoadMultiset(path, sc.opts)
	}

	if val, ok := sc.c.Get(key); ok {
		slog.Debug("set cache hit", "path", path)
		return val.(*mset.Multiset).Clone(), nil
	}

	s, err := LoadMultiset(path, sc.opts)
	if err != nil {
		return nil, err
	}
	sc.c.Set(key, s, cache.DefaultExpiration)
	return s.Clone(), nil
}

// Len returns the number of cached files, expired or not.
func (sc *SetCache) Len() int {
	return sc.c.ItemCount()
}

func cacheKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s|%d|%d", abs, info.Size(), info.ModTime().UnixNano()), nil
}
