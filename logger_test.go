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
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := setupLogger("warn", "text", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "elem", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "elem=7")
}

func TestSetupLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := setupLogger("debug", "json", &buf)
	require.NoError(t, err)

	logger.Debug("loaded multiset", "size", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "loaded multiset", rec["msg"])
	assert.Equal(t, float64(3), rec["size"])
}

func TestSetupLoggerRejectsUnknown(t *testing.T) {
	_, err := setupLogger("loud", "text", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = setupLogger("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
