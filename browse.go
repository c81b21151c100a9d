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
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/bagtree/mset"
)

// Styles holds all the styling for the browser
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	Selected       lipgloss.Style
	Row            lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("46")).
			Bold(true),
		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// BrowseModel walks a multiset in element order with a cursor. The side
// panel shows summary statistics and the most common elements.
type BrowseModel struct {
	ready bool

	title  string
	set    *mset.Multiset
	cursor *mset.Cursor
	topK   int

	// snapshot of the set in order, refreshed after every edit
	items []mset.Item

	jumpInput     textinput.Model
	statsViewport viewport.Model

	status    string
	statusErr bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// NewBrowseModel positions a cursor on the smallest element of s.
func NewBrowseModel(title string, s *mset.Multiset, topK int) BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "element to jump to"
	ti.CharLimit = 24
	ti.Width = 24

	vp := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(48),
	)

	m := BrowseModel{
		title:           title,
		set:             s,
		cursor:          s.Cursor(),
		topK:            topK,
		jumpInput:       ti,
		statsViewport:   vp,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.cursor.Next()
	m.refresh()
	return m
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles all the I/O
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.jumpInput.Focused() {
			return m.updateJump(msg)
		}

		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "down", "j":
			if !m.cursor.Next() {
				m.cursor.Prev()
				m.setStatus("already at the largest element", false)
			}
		case "up", "k":
			if !m.cursor.Prev() {
				m.cursor.Next()
				m.setStatus("already at the smallest element", false)
			}
		case "home", "g":
			m.cursor.Free()
			m.cursor.Next()
		case "end", "G":
			if hi, ok := m.set.Max(); ok {
				m.jumpTo(hi.Elem)
			}
		case "+":
			m.editCurrent(1)
		case "-":
			m.editCurrent(-1)
		case "c":
			cur := m.cursor.Get()
			if cur.Elem == mset.Undefined {
				m.setStatus("nothing to copy", true)
				break
			}
			if err := copyToClipboard(strconv.Itoa(cur.Elem)); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("copied %d", cur.Elem), false)
			}
		case "/":
			m.jumpInput.SetValue("")
			m.jumpInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m BrowseModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.jumpInput.Blur()
		return m, nil
	case "enter":
		m.jumpInput.Blur()
		target, err := strconv.Atoi(strings.TrimSpace(m.jumpInput.Value()))
		if err != nil {
			m.setStatus(fmt.Sprintf("not an integer: %q", m.jumpInput.Value()), true)
			return m, nil
		}
		m.jumpTo(target)
		return m, nil
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

// jumpTo moves the cursor to the smallest element not below target, or to
// the largest element when there is none.
func (m *BrowseModel) jumpTo(target int) {
	if m.cursor.Seek(target) {
		return
	}
	m.cursor.Prev()
	m.setStatus(fmt.Sprintf("no element >= %d", target), false)
}

// editCurrent adds or removes one occurrence of the element under the cursor.
// The cursor re-seeks on its next move if the element disappears.
func (m *BrowseModel) editCurrent(delta int) {
	cur := m.cursor.Get()
	if cur.Elem == mset.Undefined {
		m.setStatus("no element selected", true)
		return
	}
	if delta > 0 {
		m.set.Insert(cur.Elem)
		m.setStatus(fmt.Sprintf("inserted %d", cur.Elem), false)
	} else {
		m.set.Delete(cur.Elem)
		m.setStatus(fmt.Sprintf("deleted one %d", cur.Elem), false)
		if m.cursor.Get().Elem == mset.Undefined {
			if !m.cursor.Next() {
				m.cursor.Prev()
			}
		}
	}
	m.refresh()
}

func (m *BrowseModel) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// refresh rebuilds the item snapshot and the statistics panel.
func (m *BrowseModel) refresh() {
	m.items = m.set.Items()
	content := m.statsMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			m.statsViewport.SetContent(rendered)
			return
		}
	}
	m.statsViewport.SetContent(content)
}

func (m BrowseModel) statsMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", m.title)
	fmt.Fprintf(&b, "* **distinct:** %d\n", m.set.Size())
	fmt.Fprintf(&b, "* **total:** %d\n", m.set.TotalCount())
	fmt.Fprintf(&b, "* **height:** %d\n", m.set.Height())
	if lo, ok := m.set.Min(); ok {
		hi, _ := m.set.Max()
		fmt.Fprintf(&b, "* **range:** %d .. %d\n", lo.Elem, hi.Elem)
	}

	top := m.set.MostCommon(m.topK)
	if len(top) > 0 {
		fmt.Fprintf(&b, "\n## Most common\n\n| # | element | count |\n|---|---|---|\n")
		for i, it := range top {
			fmt.Fprintf(&b, "| %d | %d | %d |\n", i+1, it.Elem, it.Count)
		}
	}
	return b.String()
}

// visibleRows returns the slice of items around the cursor that fits in
// rows lines, along with the index of the cursor within it (-1 if none).
func (m BrowseModel) visibleRows(rows int) ([]mset.Item, int) {
	if rows <= 0 || len(m.items) == 0 {
		return nil, -1
	}
	cur := m.cursor.Get()
	idx := sort.Search(len(m.items), func(i int) bool { return m.items[i].Elem >= cur.Elem })
	if cur.Elem == mset.Undefined || idx >= len(m.items) || m.items[idx].Elem != cur.Elem {
		idx = -1
	}

	start := 0
	if idx >= 0 {
		start = idx - rows/2
	}
	if start > len(m.items)-rows {
		start = len(m.items) - rows
	}
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > len(m.items) {
		end = len(m.items)
	}
	if idx >= 0 {
		idx -= start
	}
	return m.items[start:end], idx
}

func (m *BrowseModel) updateLayout() {
	listWidth := (m.width / 2) - 1
	statsWidth := m.width - listWidth - 3
	bodyHeight := m.height - 6

	m.jumpInput.Width = listWidth - 6
	m.statsViewport.Width = statsWidth - 2
	m.statsViewport.Height = bodyHeight
}

func (m BrowseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	listWidth := (m.width / 2) - 1
	statsWidth := m.width - listWidth - 3
	bodyHeight := m.height - 6

	rows, sel := m.visibleRows(bodyHeight - 4)
	var lines []string
	for i, it := range rows {
		line := fmt.Sprintf("%12d  ×%d", it.Elem, it.Count)
		if i == sel {
			lines = append(lines, m.styles.Selected.Render(line))
		} else {
			lines = append(lines, m.styles.Row.Render(line))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, m.styles.HelpDesc.Render("(empty)"))
	}

	listStyle := m.styles.BorderFocused
	if m.jumpInput.Focused() {
		listStyle = m.styles.BorderBlurred
	}
	listBox := listStyle.
		Width(listWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(listWidth-4).Render(fmt.Sprintf(" 🌳 %s ", m.title)),
			strings.Join(lines, "\n"),
			"",
			m.jumpInput.View(),
		))

	statsBox := m.styles.BorderBlurred.
		Width(statsWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(statsWidth-4).Render(" 📊 Statistics "),
			m.statsViewport.View(),
		))

	main := lipgloss.JoinHorizontal(lipgloss.Top, listBox, statsBox)

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = m.styles.ErrorMessage.Render(m.status)
		} else {
			status = m.styles.SuccessMessage.Render(m.status)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, status, m.renderHelp())
}

func (m BrowseModel) renderHelp() string {
	keys := []string{"↑/k", "↓/j", "g/G", "+/-", "/", "c", "q"}
	descs := []string{"previous", "next", "first/last", "insert/delete one", "jump", "copy element", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, text, Reset)
	return nil
}

// runBrowser starts the Bubble Tea application
func runBrowser(title string, s *mset.Multiset, topK int) error {
	InitializeColors()

	program := tea.NewProgram(
		NewBrowseModel(title, s, topK),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
