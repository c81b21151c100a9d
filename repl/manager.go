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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrQuit           = errors.New("quit")
)

const (
	defaultTopK = 10
	prompt      = "bagtree> "
)

// Manager dispatches shell lines to the registered handlers
type Manager struct {
	handlers []Handler
	env      *Env
}

// NewManager creates a manager with all built-in handlers
func NewManager(ws *Workspace, out io.Writer, topK int) *Manager {
	if topK <= 0 {
		topK = defaultTopK
	}
	manager := &Manager{
		env: &Env{WS: ws, Out: out, TopK: topK},
	}

	manager.RegisterHandler(&sessionHandler{})
	manager.RegisterHandler(&setHandler{})
	manager.RegisterHandler(&mutateHandler{})
	manager.RegisterHandler(&queryHandler{})
	manager.RegisterHandler(&algebraHandler{})

	return manager
}

// RegisterHandler adds h, keeping handlers ordered by priority
func (m *Manager) RegisterHandler(h Handler) {
	m.handlers = append(m.handlers, h)
	sort.SliceStable(m.handlers, func(i, j int) bool {
		return m.handlers[i].Priority() < m.handlers[j].Priority()
	})
}

// Execute runs one shell line. Blank lines and comments do nothing.
func (m *Manager) Execute(line string) error {
	parts, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
		return nil
	}

	cmd := NewCommand(parts)
	for _, h := range m.handlers {
		if h.Supports(cmd.Name) {
			slog.Debug("shell command", "line", cmd.FullName, "handler", fmt.Sprintf("%T", h))
			return h.Run(m.env, cmd)
		}
	}
	return fmt.Errorf("%w %q, try help", ErrUnknownCommand, cmd.Name)
}

// Run reads lines from in until EOF or quit. Command errors are printed and
// the session goes on; only read errors are returned.
func (m *Manager) Run(in io.Reader, interactive bool) error {
	scanner := bufio.NewScanner(in)
	out := m.env.Out
	for {
		if interactive {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}

		err := m.Execute(scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	if interactive {
		fmt.Fprintln(out)
	}
	return scanner.Err()
}
