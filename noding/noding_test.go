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

package noding

import (
	"testing"

	"github.com/akhenakh/planar/xy"
)

func TestLineIntersectorProper(t *testing.T) {
	li := NewLineIntersector(nil)
	li.ComputeIntersection(
		xy.Point{0, 0}, xy.Point{10, 10},
		xy.Point{0, 10}, xy.Point{10, 0},
	)
	if !li.HasIntersection() || !li.IsProper() {
		t.Fatal("expected a proper intersection")
	}
	got := li.Intersection(0)
	if got.Distance(xy.Point{5, 5}) > 1e-9 {
		t.Errorf("intersection = %v, want (5, 5)", got)
	}
}

func TestLineIntersectorEndpoint(t *testing.T) {
	li := NewLineIntersector(nil)
	li.ComputeIntersection(
		xy.Point{0, 0}, xy.Point{10, 0},
		xy.Point{5, 0}, xy.Point{5, 10},
	)
	if !li.HasIntersection() {
		t.Fatal("expected an endpoint intersection")
	}
	if li.IsProper() {
		t.Error("endpoint touch must not be proper")
	}
	if got := li.Intersection(0); got != (xy.Point{5, 0}) {
		t.Errorf("intersection = %v, want the exact endpoint (5, 0)", got)
	}
}

func TestLineIntersectorCollinear(t *testing.T) {
	li := NewLineIntersector(nil)
	li.ComputeIntersection(
		xy.Point{0, 0}, xy.Point{10, 0},
		xy.Point{5, 0}, xy.Point{15, 0},
	)
	if li.IntersectionNum() != CollinearIntersection {
		t.Fatalf("expected collinear overlap, got %d points", li.IntersectionNum())
	}
}

func TestLineIntersectorDisjoint(t *testing.T) {
	li := NewLineIntersector(nil)
	li.ComputeIntersection(
		xy.Point{0, 0}, xy.Point{1, 1},
		xy.Point{5, 5}, xy.Point{6, 4},
	)
	if li.HasIntersection() {
		t.Error("disjoint segments must not intersect")
	}
}

func TestMCIndexNoderCrossing(t *testing.T) {
	a := NewSegmentString([]xy.Point{{0, 0}, {10, 10}}, nil)
	b := NewSegmentString([]xy.Point{{0, 10}, {10, 0}}, nil)

	li := NewLineIntersector(nil)
	noder := NewMCIndexNoder(NewIntersectionAdder(li))
	noder.ComputeNodes([]*SegmentString{a, b})

	subs := noder.NodedSubstrings()
	if len(subs) != 4 {
		t.Fatalf("got %d substrings, want 4", len(subs))
	}
	mid := xy.Point{5, 5}
	for _, ss := range subs {
		pts := ss.Coordinates()
		first, last := pts[0], pts[len(pts)-1]
		if first != mid && last != mid {
			t.Errorf("substring %v does not end at the crossing point", pts)
		}
	}
}

func TestMCIndexNoderSelfIntersection(t *testing.T) {
	// A bowtie shape crossing itself at (5, 5).
	ss := NewSegmentString([]xy.Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}}, nil)

	li := NewLineIntersector(nil)
	noder := NewMCIndexNoder(NewIntersectionAdder(li))
	noder.ComputeNodes([]*SegmentString{ss})

	// The crossing point splits the string into three substrings: before
	// the first passage, the loop between the two passages, and after.
	subs := noder.NodedSubstrings()
	if len(subs) != 3 {
		t.Fatalf("got %d substrings, want 3", len(subs))
	}
}

func TestMCIndexNoderNoFalseNodes(t *testing.T) {
	// Adjacent segments share endpoints; no nodes should be inserted.
	ss := NewSegmentString([]xy.Point{{0, 0}, {5, 0}, {10, 1}}, nil)

	li := NewLineIntersector(nil)
	noder := NewMCIndexNoder(NewIntersectionAdder(li))
	noder.ComputeNodes([]*SegmentString{ss})

	subs := noder.NodedSubstrings()
	if len(subs) != 1 {
		t.Fatalf("got %d substrings, want 1", len(subs))
	}
	if len(subs[0].Coordinates()) != 3 {
		t.Errorf("substring has %d coordinates, want 3", len(subs[0].Coordinates()))
	}
}

func TestFixedPrecisionRounding(t *testing.T) {
	pm := xy.FixedPrecision(1)
	li := NewLineIntersector(pm)
	li.ComputeIntersection(
		xy.Point{0, 0}, xy.Point{10, 3},
		xy.Point{0, 3}, xy.Point{10, 0},
	)
	if !li.HasIntersection() {
		t.Fatal("expected an intersection")
	}
	got := li.Intersection(0)
	if got.X != 5 || got.Y != 2 {
		t.Errorf("intersection = %v, want the grid point (5, 2)", got)
	}
}
