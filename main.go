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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cybrota/bagtree/mset"
	"github.com/cybrota/bagtree/repl"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const asciiLogo = `
██████╗  █████╗  ██████╗ ████████╗██████╗ ███████╗███████╗
██╔══██╗██╔══██╗██╔════╝ ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
██████╔╝███████║██║  ███╗   ██║   ██████╔╝█████╗  █████╗
██╔══██╗██╔══██║██║   ██║   ██║   ██╔══██╗██╔══╝  ██╔══╝
██████╔╝██║  ██║╚██████╔╝   ██║   ██║  ██║███████╗███████╗
╚═════╝ ╚═╝  ╚═╝ ╚═════╝    ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Multisets of integers on balanced trees: count, compare, explore [Version: %s%s%s]

Copyright @ Naren Yellavula

`

// errFalse makes the process exit with status 1 without printing anything.
var errFalse = errors.New("false")

// app carries what every command needs once flags and config are read.
type app struct {
	cfg      *Config
	sets     *SetCache
	logLevel string
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Failed to load configuration: %v. Using default settings.\n", err)
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := setupLogger(level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	InitializeColors()
	a.sets = NewSetCache(cfg.Cache.Expiration, cfg.Cache.Cleanup, cfg.LoadOptions())
	return nil
}

func (a *app) load(path string) (*mset.Multiset, error) {
	return a.sets.Load(path)
}

func (a *app) loadPair(pathA, pathB string) (*mset.Multiset, *mset.Multiset, error) {
	x, err := a.load(pathA)
	if err != nil {
		return nil, nil, err
	}
	y, err := a.load(pathB)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

func parseItemArg(s string) (int, error) {
	item, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("ITEM %q is not an integer", s)
	}
	if item == mset.Undefined {
		return 0, fmt.Errorf("ITEM %s is reserved", s)
	}
	return item, nil
}

// setName derives a shell set name from a file path: "data/a.txt" -> "a".
func setName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func printSet(cmd *cobra.Command, s *mset.Multiset) error {
	out := cmd.OutOrStdout()
	if err := s.Print(out); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out)
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{}
	logo := fmt.Sprintf(asciiLogo, Green, version, Reset)
	long := func(text string) string { return fmt.Sprintf("%s\n%s", logo, text) }

	var rootCmd = &cobra.Command{
		Use:           "bagtree",
		Version:       version,
		Long:          logo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")

	var cmdPrint = &cobra.Command{
		Use:   "print FILE",
		Short: "Print a multiset as {(element, count), ...}",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			return printSet(cmd, s)
		},
	}

	var cmdStats = &cobra.Command{
		Use:   "stats FILE",
		Short: "Show distinct elements, total count, tree height, min and max",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "distinct: %d\n", s.Size())
			fmt.Fprintf(out, "total:    %d\n", s.TotalCount())
			fmt.Fprintf(out, "height:   %d\n", s.Height())
			if lo, ok := s.Min(); ok {
				hi, _ := s.Max()
				fmt.Fprintf(out, "min:      %d (x%d)\n", lo.Elem, lo.Count)
				fmt.Fprintf(out, "max:      %d (x%d)\n", hi.Elem, hi.Count)
			}
			return nil
		},
	}

	var cmdCount = &cobra.Command{
		Use:   "count FILE ITEM...",
		Short: "Show how many times each ITEM occurs",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				item, err := parseItemArg(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", item, s.GetCount(item))
			}
			return nil
		},
	}

	var topK int
	var showChart bool
	var cmdTop = &cobra.Command{
		Use:   "top FILE",
		Short: "List the most common elements",
		Long:  long("Top lists the k most common elements, most frequent first; ties go to the smaller element."),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			k := topK
			if !cmd.Flags().Changed("top-k") {
				k = a.cfg.Display.TopK
			}
			if showChart {
				return runChart(setName(args[0]), s, k)
			}
			for _, it := range s.MostCommon(k) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", it.Elem, it.Count)
			}
			return nil
		},
	}
	cmdTop.Flags().IntVarP(&topK, "top-k", "k", 10, "number of elements to list")
	cmdTop.Flags().BoolVar(&showChart, "chart", false, "show a bar chart instead of a list")

	combineCmd := func(use, short string, combine func(x, y *mset.Multiset) *mset.Multiset) *cobra.Command {
		return &cobra.Command{
			Use:   use + " A B",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, y, err := a.loadPair(args[0], args[1])
				if err != nil {
					return err
				}
				return printSet(cmd, combine(x, y))
			},
		}
	}

	compareCmd := func(use, short string, compare func(x, y *mset.Multiset) bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " A B",
			Short: short,
			Long:  long(short + ". Prints true or false; the exit status is 1 when false."),
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, y, err := a.loadPair(args[0], args[1])
				if err != nil {
					return err
				}
				ok := compare(x, y)
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				if !ok {
					return errFalse
				}
				return nil
			},
		}
	}

	var cmdFind = &cobra.Command{
		Use:   "find ITEM FILE...",
		Short: "List the files that contain ITEM",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := parseItemArg(args[0])
			if err != nil {
				return err
			}
			ws := repl.NewWorkspace(repl.WithLoader(a.load))
			for _, path := range args[1:] {
				if _, err := ws.Load(path, path); err != nil {
					return err
				}
			}
			found := ws.Find(item)
			for _, path := range found {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			if len(found) == 0 {
				return errFalse
			}
			return nil
		},
	}

	var cmdCheck = &cobra.Command{
		Use:   "check FILE",
		Short: "Verify the balanced tree invariants of a loaded multiset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err := s.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d distinct, %d total, height %d\n", s.Size(), s.TotalCount(), s.Height())
			return nil
		},
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse FILE",
		Short: "Walk a multiset element by element in a terminal UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(args[0])
			if err != nil {
				return err
			}
			return runBrowser(setName(args[0]), s, a.cfg.Display.TopK)
		},
	}

	var cmdShell = &cobra.Command{
		Use:   "shell [FILE...]",
		Short: "Start an interactive session with named multisets",
		Long:  long("Shell reads commands from standard input. Files given on the command line are loaded under their base name. Type help for the command list."),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := repl.NewWorkspace(repl.WithLoader(a.load))
			for _, path := range args {
				if _, err := ws.Load(setName(path), path); err != nil {
					return err
				}
			}
			manager := repl.NewManager(ws, cmd.OutOrStdout(), a.cfg.Display.TopK)
			in := cmd.InOrStdin()
			interactive := false
			if f, ok := in.(*os.File); ok {
				interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
			}
			return manager.Run(in, interactive)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show bagtree configuration settings",
		Long:  long("Settings displays the current configuration and creates ~/.bagtree.yaml with defaults if it does not exist"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print bagtree usage guide",
		Long:  long("Usage displays the bagtree CLI usage guide"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print bagtree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bagtree %s\n", version)
		},
	}

	rootCmd.AddCommand(
		cmdPrint, cmdStats, cmdCount, cmdTop,
		combineCmd("union", "Union of two multisets (larger count of each element)", mset.Union),
		combineCmd("intersect", "Intersection of two multisets (smaller count of each shared element)", mset.Intersection),
		combineCmd("sum", "Sum of two multisets (counts added)", mset.Sum),
		combineCmd("diff", "Difference of two multisets (counts subtracted, zeros dropped)", mset.Difference),
		compareCmd("included", "Report whether every element of A occurs in B at least as often", mset.Included),
		compareCmd("equals", "Report whether A and B hold the same elements with the same counts", mset.Equals),
		cmdFind, cmdCheck, cmdBrowse, cmdShell,
		cmdSettings, cmdUsage, cmdVersion,
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFalse) {
			fmt.Fprintf(os.Stderr, "%sError:%s %v\n", Error, Reset, err)
		}
		os.Exit(1)
	}
}
