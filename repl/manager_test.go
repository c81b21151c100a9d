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
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/cybrota/bagtree/mset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *Workspace, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ws := NewWorkspace(
		WithLoader(fakeLoader(map[string]*mset.Multiset{
			"m1.txt": setOf(5, 5, 5, 3, 3, 8, 8, 8, 8, 1),
			"m2.txt": setOf(5, 5, 3, 3, 3, 8, 2, 2),
		})),
		WithClipboard(func(string) error { return nil }),
	)
	return NewManager(ws, &out, 3), ws, &out
}

func TestCommand(t *testing.T) {
	cmd := NewCommand([]string{"Insert", "a", "5"})

	if cmd.Name != "insert" {
		t.Errorf("Expected Name to be 'insert', got '%s'", cmd.Name)
	}
	if !cmd.HasArgs(2) {
		t.Errorf("Expected command to have at least 2 arguments")
	}
	if cmd.Arg(1) != "5" {
		t.Errorf("Expected second argument to be '5', got '%s'", cmd.Arg(1))
	}
	if cmd.Arg(5) != "" {
		t.Errorf("Expected missing argument to be empty, got '%s'", cmd.Arg(5))
	}
	if cmd.FullName != "Insert a 5" {
		t.Errorf("Expected FullName to be 'Insert a 5', got '%s'", cmd.FullName)
	}

	empty := NewCommand(nil)
	if empty.Name != "" || empty.HasArgs(1) {
		t.Errorf("Expected empty command, got %+v", empty)
	}
}

func TestExecuteLogsFullLine(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	m, _, _ := newTestManager(t)
	require.NoError(t, m.Execute(`New "my set"`))

	assert.Contains(t, logs.String(), `line="New my set"`)
	assert.Contains(t, logs.String(), "handler=*repl.setHandler")
}

func TestHandlersSortedByPriority(t *testing.T) {
	m, _, _ := newTestManager(t)
	for i := 1; i < len(m.handlers); i++ {
		if m.handlers[i-1].Priority() > m.handlers[i].Priority() {
			t.Fatalf("handlers out of order at %d", i)
		}
	}
}

func TestExecuteSession(t *testing.T) {
	m, _, out := newTestManager(t)

	steps := []struct {
		line string
		want string
	}{
		{"load m1 m1.txt", "m1: 4 distinct, 10 total\n"},
		{"load m2 m2.txt", "m2: 4 distinct, 8 total\n"},
		{"union u m1 m2", "{(1, 1), (2, 2), (3, 3), (5, 3), (8, 4)}\n"},
		{"intersect i m1 m2", "{(3, 2), (5, 2), (8, 1)}\n"},
		{"sum s m1 m2", "{(1, 1), (2, 2), (3, 5), (5, 5), (8, 5)}\n"},
		{"diff d m1 m2", "{(1, 1), (5, 1), (8, 3)}\n"},
		{"included i m1", "true\n"},
		{"included m1 m2", "false\n"},
		{"equals m1 m1", "true\n"},
		{"count m1 8", "4\n"},
		{"count m1 42", "0\n"},
		{"size u", "5\n"},
		{"total u", "13\n"},
		{"top m1", "8\t4\n5\t3\n3\t2\n"},
		{"top m1 1", "8\t4\n"},
		{"find 2", "m2\ns\nu\n"},
		{"", ""},
		{"# just a comment", ""},
	}

	for _, step := range steps {
		out.Reset()
		require.NoError(t, m.Execute(step.line), step.line)
		assert.Equal(t, step.want, out.String(), step.line)
	}
}

func TestExecuteMutations(t *testing.T) {
	m, ws, out := newTestManager(t)

	require.NoError(t, m.Execute("new a"))
	require.NoError(t, m.Execute("insert a 7 3"))
	require.NoError(t, m.Execute("insert a -1"))
	require.NoError(t, m.Execute("delete a 7 2"))
	assert.Equal(t, "removed 2\n", out.String())

	out.Reset()
	require.NoError(t, m.Execute("print a"))
	assert.Equal(t, "{(-1, 1), (7, 1)}\n", out.String())

	require.NoError(t, m.Execute("copy a"))
	require.NoError(t, m.Execute("drop a"))
	assert.Empty(t, ws.Names())
}

func TestExecuteErrors(t *testing.T) {
	m, _, _ := newTestManager(t)
	require.NoError(t, m.Execute("new a"))

	tests := []struct {
		line    string
		wantErr error
		msg     string
	}{
		{"frobnicate", ErrUnknownCommand, ""},
		{"print nope", ErrNoSuchSet, ""},
		{"union x a nope", ErrNoSuchSet, ""},
		{"insert a", ErrUsage, ""},
		{"union x a", ErrUsage, ""},
		{"insert a five", nil, `ITEM "five" is not an integer`},
		{"insert a 1 0", nil, "AMOUNT must be positive"},
		{"top a k", nil, `K "k" is not an integer`},
		{"new a", ErrSetExists, ""},
		{`print "unterminated`, nil, "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			err := m.Execute(tt.line)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestRunLoop(t *testing.T) {
	m, _, out := newTestManager(t)

	script := strings.Join([]string{
		"new a",
		"insert a 1 2",
		"bogus",
		"print a",
		"quit",
		"print a",
	}, "\n")

	require.NoError(t, m.Run(strings.NewReader(script), false))
	got := out.String()
	assert.Contains(t, got, `error: unknown command "bogus"`)
	// nothing after quit runs
	assert.Equal(t, 1, strings.Count(got, "{(1, 2)}"))
}

func TestRunInteractivePrompt(t *testing.T) {
	m, _, out := newTestManager(t)
	require.NoError(t, m.Run(strings.NewReader("help\n"), true))
	assert.True(t, strings.HasPrefix(out.String(), prompt))
	assert.Contains(t, out.String(), "union DST A B")
}
