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
	"strconv"

	"github.com/cybrota/bagtree/mset"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

const (
	chartBarWidth = 6
	chartBarGap   = 2
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// chartData turns a top-k listing into bar values and labels.
func chartData(items []mset.Item) ([]float64, []string) {
	data := make([]float64, len(items))
	labels := make([]string, len(items))
	for i, it := range items {
		data[i] = float64(it.Count)
		labels[i] = strconv.Itoa(it.Elem)
	}
	return data, labels
}

// visibleBars is how many bars of the chart fit in a terminal of the given width.
func visibleBars(termWidth int) int {
	// two columns of border
	usable := termWidth - 2
	if usable < chartBarWidth {
		return 0
	}
	return (usable + chartBarGap) / (chartBarWidth + chartBarGap)
}

// runChart shows a bar chart of the most common elements until the user quits.
func runChart(title string, s *mset.Multiset, k int) error {
	items := s.MostCommon(k)
	if len(items) == 0 {
		return fmt.Errorf("%s is empty, nothing to chart", title)
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := GetColorScheme()

	bc := widgets.NewBarChart()
	bc.Title = fmt.Sprintf(" Top %d of %s ", len(items), title)
	bc.TitleStyle = StyleTitle()
	bc.BorderStyle = StyleBorder()
	bc.BarWidth = chartBarWidth
	bc.BarGap = chartBarGap
	bc.BarColors = []ui.Color{scheme.Bar}
	bc.LabelStyles = []ui.Style{ui.NewStyle(scheme.Label)}
	bc.NumStyles = []ui.Style{ui.NewStyle(scheme.Number)}
	bc.NumFormatter = func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) }

	summary := widgets.NewParagraph()
	summary.Title = " Summary "
	summary.BorderStyle = StyleBorder()
	summary.TextStyle = StyleTextMuted()
	summary.Text = fmt.Sprintf("distinct: %d   total: %d   height: %d   [q](fg:green) or [<esc>](fg:green) to quit",
		s.Size(), s.TotalCount(), s.Height())

	grid := ui.NewGrid()
	layout := func() {
		termWidth, termHeight := ui.TerminalDimensions()
		n := visibleBars(termWidth)
		if n > len(items) {
			n = len(items)
		}
		bc.Data, bc.Labels = chartData(items[:n])
		grid.SetRect(0, 0, termWidth, termHeight)
	}
	grid.Set(
		ui.NewRow(0.85, bc),
		ui.NewRow(0.15, summary),
	)
	layout()
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Resize>":
			layout()
			ui.Clear()
			ui.Render(grid)
		}
	}
	return nil
}
