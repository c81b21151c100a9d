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
	"io"
	"strings"
)

// Handler defines the interface for a group of shell commands
type Handler interface {
	Run(env *Env, cmd *Command) error
	Supports(name string) bool
	Priority() int // Lower number = higher priority
}

// Env is what a handler gets to work with.
type Env struct {
	WS   *Workspace
	Out  io.Writer
	TopK int
}

// Command represents a parsed shell line
type Command struct {
	Name     string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from line parts
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{}
	}

	return &Command{
		Name:     strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// HasArgs checks if command has at least n arguments
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// Arg returns the nth argument (0-indexed)
func (c *Command) Arg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}
