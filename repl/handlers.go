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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/bagtree/mset"
)

var ErrUsage = errors.New("usage")

var usages = map[string]string{
	"new":       "new NAME",
	"load":      "load NAME FILE",
	"drop":      "drop NAME",
	"list":      "list",
	"copy":      "copy NAME",
	"insert":    "insert NAME ITEM [AMOUNT]",
	"delete":    "delete NAME ITEM [AMOUNT]",
	"print":     "print NAME",
	"count":     "count NAME ITEM",
	"size":      "size NAME",
	"total":     "total NAME",
	"top":       "top NAME [K]",
	"find":      "find ITEM",
	"union":     "union DST A B",
	"intersect": "intersect DST A B",
	"sum":       "sum DST A B",
	"diff":      "diff DST A B",
	"included":  "included A B",
	"equals":    "equals A B",
	"help":      "help",
	"quit":      "quit",
}

// helpOrder lists commands for help output.
var helpOrder = []string{
	"new", "load", "drop", "list", "copy",
	"insert", "delete",
	"print", "count", "size", "total", "top", "find",
	"union", "intersect", "sum", "diff", "included", "equals",
	"help", "quit",
}

func usageError(name string) error {
	return fmt.Errorf("%w: %s", ErrUsage, usages[name])
}

func parseInt(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer", what, s)
	}
	return n, nil
}

func parseItem(s string) (int, error) {
	item, err := parseInt("ITEM", s)
	if err != nil {
		return 0, err
	}
	if item == mset.Undefined {
		return 0, fmt.Errorf("ITEM %s is reserved", s)
	}
	return item, nil
}

// parseAmount reads the optional AMOUNT argument, which must be positive.
func parseAmount(cmd *Command, idx int) (int, error) {
	if !cmd.HasArgs(idx + 1) {
		return 1, nil
	}
	amount, err := parseInt("AMOUNT", cmd.Arg(idx))
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, fmt.Errorf("AMOUNT must be positive, got %d", amount)
	}
	return amount, nil
}

// sessionHandler handles help and quit
type sessionHandler struct{}

func (h *sessionHandler) Priority() int { return 0 }

func (h *sessionHandler) Supports(name string) bool {
	switch name {
	case "help", "quit", "exit":
		return true
	}
	return false
}

func (h *sessionHandler) Run(env *Env, cmd *Command) error {
	if cmd.Name != "help" {
		return ErrQuit
	}
	fmt.Fprintln(env.Out, "commands:")
	for _, name := range helpOrder {
		fmt.Fprintf(env.Out, "  %s\n", usages[name])
	}
	return nil
}

// setHandler manages the sets themselves
type setHandler struct{}

func (h *setHandler) Priority() int { return 1 }

func (h *setHandler) Supports(name string) bool {
	switch name {
	case "new", "load", "drop", "list", "copy":
		return true
	}
	return false
}

func (h *setHandler) Run(env *Env, cmd *Command) error {
	ws := env.WS
	switch cmd.Name {
	case "new":
		if len(cmd.Args) != 1 {
			return usageError(cmd.Name)
		}
		return ws.Create(cmd.Arg(0))

	case "load":
		if len(cmd.Args) != 2 {
			return usageError(cmd.Name)
		}
		s, err := ws.Load(cmd.Arg(0), cmd.Arg(1))
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "%s: %d distinct, %d total\n", cmd.Arg(0), s.Size(), s.TotalCount())
		return nil

	case "drop":
		if len(cmd.Args) != 1 {
			return usageError(cmd.Name)
		}
		return ws.Drop(cmd.Arg(0))

	case "list":
		for _, name := range ws.Names() {
			s, _ := ws.Get(name)
			fmt.Fprintf(env.Out, "%s\t%d distinct\t%d total\n", name, s.Size(), s.TotalCount())
		}
		return nil

	case "copy":
		if len(cmd.Args) != 1 {
			return usageError(cmd.Name)
		}
		if _, err := ws.Copy(cmd.Arg(0)); err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "copied %s to clipboard\n", cmd.Arg(0))
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Name)
}

// mutateHandler handles insert and delete
type mutateHandler struct{}

func (h *mutateHandler) Priority() int { return 2 }

func (h *mutateHandler) Supports(name string) bool {
	return name == "insert" || name == "delete"
}

func (h *mutateHandler) Run(env *Env, cmd *Command) error {
	if len(cmd.Args) < 2 || len(cmd.Args) > 3 {
		return usageError(cmd.Name)
	}
	item, err := parseItem(cmd.Arg(1))
	if err != nil {
		return err
	}
	amount, err := parseAmount(cmd, 2)
	if err != nil {
		return err
	}

	name := cmd.Arg(0)
	if cmd.Name == "insert" {
		return env.WS.Insert(name, item, amount)
	}
	removed, err := env.WS.Delete(name, item, amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "removed %d\n", removed)
	return nil
}

// queryHandler handles read-only questions about a single set
type queryHandler struct{}

func (h *queryHandler) Priority() int { return 3 }

func (h *queryHandler) Supports(name string) bool {
	switch name {
	case "print", "count", "size", "total", "top", "find":
		return true
	}
	return false
}

func (h *queryHandler) Run(env *Env, cmd *Command) error {
	if cmd.Name == "find" {
		if len(cmd.Args) != 1 {
			return usageError(cmd.Name)
		}
		item, err := parseItem(cmd.Arg(0))
		if err != nil {
			return err
		}
		names := env.WS.Find(item)
		if len(names) == 0 {
			fmt.Fprintln(env.Out, "(none)")
			return nil
		}
		fmt.Fprintln(env.Out, strings.Join(names, "\n"))
		return nil
	}

	if !cmd.HasArgs(1) {
		return usageError(cmd.Name)
	}
	s, err := env.WS.Get(cmd.Arg(0))
	if err != nil {
		return err
	}

	switch cmd.Name {
	case "print":
		return printLine(env.Out, s)

	case "count":
		if len(cmd.Args) != 2 {
			return usageError(cmd.Name)
		}
		item, err := parseItem(cmd.Arg(1))
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, s.GetCount(item))

	case "size":
		fmt.Fprintln(env.Out, s.Size())

	case "total":
		fmt.Fprintln(env.Out, s.TotalCount())

	case "top":
		k := env.TopK
		if cmd.HasArgs(2) {
			if k, err = parseInt("K", cmd.Arg(1)); err != nil {
				return err
			}
		}
		for _, it := range s.MostCommon(k) {
			fmt.Fprintf(env.Out, "%d\t%d\n", it.Elem, it.Count)
		}
	}
	return nil
}

// algebraHandler combines and compares two sets
type algebraHandler struct{}

func (h *algebraHandler) Priority() int { return 4 }

var combinators = map[string]func(a, b *mset.Multiset) *mset.Multiset{
	"union":     mset.Union,
	"intersect": mset.Intersection,
	"sum":       mset.Sum,
	"diff":      mset.Difference,
}

func (h *algebraHandler) Supports(name string) bool {
	if _, ok := combinators[name]; ok {
		return true
	}
	return name == "included" || name == "equals"
}

func (h *algebraHandler) Run(env *Env, cmd *Command) error {
	if combine, ok := combinators[cmd.Name]; ok {
		if len(cmd.Args) != 3 {
			return usageError(cmd.Name)
		}
		a, b, err := operands(env.WS, cmd.Arg(1), cmd.Arg(2))
		if err != nil {
			return err
		}
		result := combine(a, b)
		env.WS.Put(cmd.Arg(0), result)
		return printLine(env.Out, result)
	}

	if len(cmd.Args) != 2 {
		return usageError(cmd.Name)
	}
	a, b, err := operands(env.WS, cmd.Arg(0), cmd.Arg(1))
	if err != nil {
		return err
	}
	if cmd.Name == "included" {
		fmt.Fprintln(env.Out, mset.Included(a, b))
	} else {
		fmt.Fprintln(env.Out, mset.Equals(a, b))
	}
	return nil
}

func printLine(w io.Writer, s *mset.Multiset) error {
	if err := s.Print(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func operands(ws *Workspace, nameA, nameB string) (*mset.Multiset, *mset.Multiset, error) {
	a, err := ws.Get(nameA)
	if err != nil {
		return nil, nil, err
	}
	b, err := ws.Get(nameB)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
