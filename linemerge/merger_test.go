// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linemerge

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akhenakh/planar/xy"
)

func TestMergeChain(t *testing.T) {
	var m Merger
	m.Add([]xy.Point{{0, 0}, {1, 0}})
	m.Add([]xy.Point{{1, 0}, {2, 0}})
	m.Add([]xy.Point{{2, 0}, {3, 1}})

	got := m.MergedLines()
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1", len(got))
	}
	want := []xy.Point{{0, 0}, {1, 0}, {2, 0}, {3, 1}}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Errorf("merged line mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeReversedSegments(t *testing.T) {
	var m Merger
	m.Add([]xy.Point{{1, 0}, {0, 0}})
	m.Add([]xy.Point{{1, 0}, {2, 0}})

	got := m.MergedLines()
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1", len(got))
	}
	if len(got[0]) != 3 {
		t.Errorf("merged line has %d points, want 3", len(got[0]))
	}
}

func TestMergeStopsAtJunction(t *testing.T) {
	// Three segments meeting at (0, 0): no pair may merge through the
	// degree-3 node.
	var m Merger
	m.Add([]xy.Point{{-1, 0}, {0, 0}})
	m.Add([]xy.Point{{0, 0}, {1, 0}})
	m.Add([]xy.Point{{0, 0}, {0, 1}})

	got := m.MergedLines()
	if len(got) != 3 {
		t.Fatalf("got %d lines, want 3", len(got))
	}
}

func TestMergeDropsDegenerate(t *testing.T) {
	var m Merger
	m.Add([]xy.Point{{1, 1}, {1, 1}})
	if got := m.MergedLines(); len(got) != 0 {
		t.Fatalf("got %d lines, want 0", len(got))
	}
}

func TestMergeClosedLoop(t *testing.T) {
	var m Merger
	m.Add([]xy.Point{{0, 0}, {1, 0}, {1, 1}})
	m.Add([]xy.Point{{1, 1}, {0, 1}, {0, 0}})

	got := m.MergedLines()
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1", len(got))
	}
	line := got[0]
	if line[0] != line[len(line)-1] {
		t.Error("merged loop should close")
	}
}
