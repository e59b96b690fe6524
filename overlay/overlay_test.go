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

package overlay

import (
	"testing"

	"github.com/akhenakh/planar/xy"
)

func totalLength(lines [][]xy.Point) float64 {
	var length float64
	for _, l := range lines {
		for i := 0; i+1 < len(l); i++ {
			length += l[i].Distance(l[i+1])
		}
	}
	return length
}

func TestIntersectionLinesSharedSegment(t *testing.T) {
	a := [][]xy.Point{{{0, 0}, {10, 0}}}
	b := [][]xy.Point{{{5, 0}, {15, 0}}}

	got := IntersectionLines(a, b)
	if length := totalLength(got); length < 4.999 || length > 5.001 {
		t.Errorf("shared length = %v, want 5", length)
	}
}

func TestIntersectionLinesDisjoint(t *testing.T) {
	a := [][]xy.Point{{{0, 0}, {10, 0}}}
	b := [][]xy.Point{{{0, 5}, {10, 5}}}

	if got := IntersectionLines(a, b); len(got) != 0 {
		t.Errorf("disjoint lines should share nothing, got %d segments", len(got))
	}
}

func TestIntersectionLinesSnapsNearVertices(t *testing.T) {
	// The second line diverges from the first by far less than the snap
	// tolerance for this extent; after snapping they share linework.
	const eps = 1e-12
	a := [][]xy.Point{{{0, 0}, {10, 0}}}
	b := [][]xy.Point{{{0, eps}, {10, eps}}}

	got := IntersectionLines(a, b)
	if length := totalLength(got); length < 9.999 {
		t.Errorf("nearly-coincident lines should snap together, shared length = %v", length)
	}
}

func TestUnionLinesDedupes(t *testing.T) {
	a := [][]xy.Point{{{0, 0}, {10, 0}}}
	b := [][]xy.Point{{{0, 0}, {10, 0}}}

	got := UnionLines(a, b)
	if length := totalLength(got); length < 9.999 || length > 10.001 {
		t.Errorf("union length = %v, want 10", length)
	}
}

func TestUnionLinesNodesCrossing(t *testing.T) {
	a := [][]xy.Point{{{0, 0}, {10, 10}}}
	b := [][]xy.Point{{{0, 10}, {10, 0}}}

	got := UnionLines(a, b)
	// Both diagonals survive in full, split at the crossing.
	if len(got) != 4 {
		t.Errorf("got %d segments, want 4", len(got))
	}
	mid := xy.Point{5, 5}
	for _, seg := range got {
		if seg[0] != mid && seg[1] != mid {
			t.Errorf("segment %v not split at crossing", seg)
		}
	}
}
