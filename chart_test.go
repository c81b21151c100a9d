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
	"testing"

	"github.com/cybrota/bagtree/mset"
)

func TestChartData(t *testing.T) {
	data, labels := chartData([]mset.Item{{Elem: 8, Count: 4}, {Elem: -5, Count: 3}})

	if len(data) != 2 || data[0] != 4 || data[1] != 3 {
		t.Errorf("chartData values = %v; want [4 3]", data)
	}
	if len(labels) != 2 || labels[0] != "8" || labels[1] != "-5" {
		t.Errorf("chartData labels = %v; want [8 -5]", labels)
	}

	data, labels = chartData(nil)
	if len(data) != 0 || len(labels) != 0 {
		t.Errorf("chartData(nil) = %v, %v; want empty", data, labels)
	}
}

func TestVisibleBars(t *testing.T) {
	tests := []struct {
		width    int
		expected int
	}{
		{0, 0},
		{7, 0},
		{8, 1},
		{16, 2},
		{82, 10},
	}

	for _, tt := range tests {
		if got := visibleBars(tt.width); got != tt.expected {
			t.Errorf("visibleBars(%d) = %d; want %d", tt.width, got, tt.expected)
		}
	}
}
