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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/cybrota/bagtree/mset"
	"github.com/schollz/progressbar/v3"
)

var (
	errBadCount     = errors.New("count must be a positive integer")
	errReservedElem = errors.New("element is the reserved undefined value")
	errOverflow     = errors.New("count overflows the multiset total")
)

// ParseError reports a malformed token in a multiset file.
type ParseError struct {
	Path  string
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: bad token %q: %v", e.Path, e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadOptions controls how multiset files are read.
type LoadOptions struct {
	ShowProgress      bool
	ProgressThreshold int64 // files at least this large get a progress bar
}

// LoadMultiset reads a multiset file. Elements are whitespace or comma
// separated; each token is "elem", "elem:count" or "elem*count", and "#"
// starts a comment.
func LoadMultiset(path string, opts LoadOptions) (*mset.Multiset, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("multiset file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	var bar *progressbar.ProgressBar
	if stat, err := file.Stat(); err == nil && opts.ShowProgress && stat.Size() >= opts.ProgressThreshold {
		bar = progressbar.NewOptions64(stat.Size(),
			progressbar.OptionSetDescription(fmt.Sprintf("Loading %s", path)),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowBytes(true),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		pr := progressbar.NewReader(file, bar)
		r = &pr
	}

	s, err := ParseMultiset(r, path)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded multiset", "path", path, "size", s.Size(), "total", s.TotalCount())
	return s, nil
}

// ParseMultiset reads multiset tokens from r. name is used in error messages.
func ParseMultiset(r io.Reader, name string) (*mset.Multiset, error) {
	s := mset.New()

	scanner := bufio.NewScanner(r)
	// Increase buffer size for files with very long lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		for _, tok := range splitTokens(line) {
			elem, count, err := parseToken(tok)
			if err != nil {
				return nil, &ParseError{Path: name, Line: lineNo, Token: tok, Err: err}
			}
			if !s.Fits(count) {
				return nil, &ParseError{Path: name, Line: lineNo, Token: tok, Err: errOverflow}
			}
			s.InsertMany(elem, count)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return s, nil
}

func splitTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseToken splits "elem", "elem:count" or "elem*count".
func parseToken(tok string) (int, int, error) {
	elemStr, countStr, hasCount := strings.Cut(tok, ":")
	if !hasCount {
		elemStr, countStr, hasCount = strings.Cut(tok, "*")
	}

	elem, err := strconv.Atoi(elemStr)
	if err != nil {
		return 0, 0, err
	}
	if elem == mset.Undefined {
		return 0, 0, errReservedElem
	}

	count := 1
	if hasCount {
		count, err = strconv.Atoi(countStr)
		if err != nil || count <= 0 {
			return 0, 0, errBadCount
		}
	}
	return elem, count, nil
}
