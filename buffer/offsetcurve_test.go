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

package buffer

import (
	"math"
	"testing"

	"github.com/akhenakh/planar/geomgraph"
	"github.com/akhenakh/planar/xy"
)

func TestPointCurveVertexCount(t *testing.T) {
	tests := []struct {
		qsegs int
		want  int
	}{
		{8, 33},
		{4, 17},
		{1, 5},
	}
	for _, test := range tests {
		params := DefaultParams()
		params.QuadrantSegments = test.qsegs
		builder := NewOffsetCurveBuilder(xy.FloatingPrecision(), params)
		curve := builder.PointCurve(xy.Point{0, 0}, 1.0)
		if len(curve) != test.want {
			t.Errorf("qsegs=%d: got %d vertices, want %d", test.qsegs, len(curve), test.want)
		}
		for _, v := range curve {
			if math.Abs(v.Distance(xy.Point{0, 0})-1.0) > 1e-9 {
				t.Errorf("qsegs=%d: vertex %v off the circle", test.qsegs, v)
			}
		}
	}
}

func TestLineCurveFlatCapIsRectangle(t *testing.T) {
	params := DefaultParams()
	params.EndCapStyle = CapFlat
	builder := NewOffsetCurveBuilder(xy.FloatingPrecision(), params)

	curve := builder.LineCurve([]xy.Point{{0, 0}, {10, 0}}, 1.0)
	if len(curve) != 5 {
		t.Fatalf("got %d vertices, want 5 (closed rectangle)", len(curve))
	}
	if curve[0] != curve[len(curve)-1] {
		t.Error("curve must close")
	}
	if math.Abs(math.Abs(xy.SignedArea(curve)/2)-20.0) > 1e-9 {
		t.Errorf("rectangle area = %v, want 20", math.Abs(xy.SignedArea(curve)/2))
	}
}

func TestLineCurveZeroDistance(t *testing.T) {
	builder := NewOffsetCurveBuilder(xy.FloatingPrecision(), DefaultParams())
	if curve := builder.LineCurve([]xy.Point{{0, 0}, {10, 0}}, 0); curve != nil {
		t.Errorf("zero-distance line curve should be nil, got %d points", len(curve))
	}
	if curve := builder.LineCurve([]xy.Point{{0, 0}, {10, 0}}, -1); curve != nil {
		t.Errorf("negative-distance line curve should be nil, got %d points", len(curve))
	}
}

func TestRingCurveZeroDistanceIsCopy(t *testing.T) {
	ring := []xy.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	builder := NewOffsetCurveBuilder(xy.FloatingPrecision(), DefaultParams())
	curve := builder.RingCurve(ring, geomgraph.PosLeft, 0)
	if len(curve) != len(ring) {
		t.Fatalf("got %d vertices, want %d", len(curve), len(ring))
	}
	for i := range ring {
		if curve[i] != ring[i] {
			t.Errorf("vertex %d = %v, want %v", i, curve[i], ring[i])
		}
	}
}

func TestSingleSidedLineCurveStaysOneSide(t *testing.T) {
	builder := NewOffsetCurveBuilder(xy.FloatingPrecision(), DefaultParams())
	curves := builder.SingleSidedLineCurve([]xy.Point{{0, 0}, {10, 0}}, 1.0, true, false)
	if len(curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(curves))
	}
	for _, v := range curves[0] {
		if math.Abs(v.Y-1.0) > 1e-9 {
			t.Errorf("left-side curve vertex %v should lie at y=1", v)
		}
	}
}

func TestSimplifyInputLine(t *testing.T) {
	// A slight concave jog well within tolerance disappears; the convex
	// side is preserved.
	line := []xy.Point{{0, 0}, {5, -0.01}, {10, 0}}
	simplified := simplifyInputLine(line, 1.0)
	if len(simplified) != 2 {
		t.Errorf("concave-side vertex not removed: %v", simplified)
	}
	kept := simplifyInputLine(line, -1.0)
	if len(kept) != 3 {
		t.Errorf("convex-side vertex should be kept: %v", kept)
	}
}
