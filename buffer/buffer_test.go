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

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/akhenakh/planar/geomgraph"
	"github.com/akhenakh/planar/xy"
)

// polygonRings returns the rings of every polygon in g.
func polygonRings(t *testing.T, g geom.T) [][][]xy.Point {
	t.Helper()
	switch g := g.(type) {
	case *geom.Polygon:
		var rings [][]xy.Point
		for i := 0; i < g.NumLinearRings(); i++ {
			rings = append(rings, ringCoordsOf(g, i))
		}
		return [][][]xy.Point{rings}
	case *geom.MultiPolygon:
		var polys [][][]xy.Point
		for i := 0; i < g.NumPolygons(); i++ {
			polys = append(polys, polygonRings(t, g.Polygon(i))...)
		}
		return polys
	}
	t.Fatalf("expected polygonal result, got %T", g)
	return nil
}

// totalArea returns the area of a polygonal geometry: shells minus holes.
func totalArea(t *testing.T, g geom.T) float64 {
	t.Helper()
	var area float64
	for _, rings := range polygonRings(t, g) {
		area += math.Abs(xy.SignedArea(rings[0]) / 2)
		for _, hole := range rings[1:] {
			area -= math.Abs(xy.SignedArea(hole) / 2)
		}
	}
	return area
}

// containsPoint reports whether the polygonal geometry contains p.
func containsPoint(t *testing.T, g geom.T, p xy.Point) bool {
	t.Helper()
	for _, rings := range polygonRings(t, g) {
		if !xy.IsPointInRing(p, rings[0]) {
			continue
		}
		inHole := false
		for _, hole := range rings[1:] {
			if xy.IsPointInRing(p, hole) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

// ngonArea is the area of a regular n-gon inscribed in a circle of radius r.
func ngonArea(n int, r float64) float64 {
	return 0.5 * float64(n) * r * r * math.Sin(2*math.Pi/float64(n))
}

func TestBufferPoint(t *testing.T) {
	g := geom.NewPointFlat(geom.XY, []float64{0, 0})
	result, err := Buffer(g, 1.0)
	require.NoError(t, err)

	polys := polygonRings(t, result)
	require.Len(t, polys, 1)
	require.Len(t, polys[0], 1)

	// Round cap with 8 quadrant segments: 32 distinct vertices plus the
	// closing coordinate.
	ring := polys[0][0]
	require.Len(t, ring, 33)

	require.InDelta(t, ngonArea(32, 1.0), totalArea(t, result), 1e-9)
	require.True(t, containsPoint(t, result, xy.Point{0, 0}))

	for _, v := range ring {
		require.InDelta(t, 1.0, v.Distance(xy.Point{0, 0}), 1e-9)
	}
}

func TestBufferLineRoundCap(t *testing.T) {
	g := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 10, 0})
	result, err := Buffer(g, 1.0)
	require.NoError(t, err)

	// A stadium: the rectangle plus two half circles (quantized).
	want := 20 + ngonArea(32, 1.0)
	require.InDelta(t, want, totalArea(t, result), 0.01)

	require.True(t, containsPoint(t, result, xy.Point{0, 0}))
	require.True(t, containsPoint(t, result, xy.Point{10, 0}))
	require.True(t, containsPoint(t, result, xy.Point{5, 0.99}))
	require.False(t, containsPoint(t, result, xy.Point{5, 1.01}))
}

func TestBufferLineFlatCap(t *testing.T) {
	g := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 10, 0})
	params := DefaultParams()
	params.EndCapStyle = CapFlat
	result, err := BufferWithParams(g, 1.0, params)
	require.NoError(t, err)

	require.InDelta(t, 20.0, totalArea(t, result), 1e-9)
	require.False(t, containsPoint(t, result, xy.Point{-0.01, 0}))
	require.False(t, containsPoint(t, result, xy.Point{10.01, 0}))
}

func TestBufferLineSquareCap(t *testing.T) {
	g := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 10, 0})
	params := DefaultParams()
	params.EndCapStyle = CapSquare
	result, err := BufferWithParams(g, 1.0, params)
	require.NoError(t, err)

	// Square caps extend the rectangle by the distance at each end.
	require.InDelta(t, 24.0, totalArea(t, result), 1e-9)
	require.True(t, containsPoint(t, result, xy.Point{-0.99, 0}))
	require.True(t, containsPoint(t, result, xy.Point{10.99, 0}))
}

func TestBufferNegativeSquare(t *testing.T) {
	g := geom.NewPolygonFlat(geom.XY, []float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0}, []int{10})
	result, err := Buffer(g, -1.0)
	require.NoError(t, err)

	polys := polygonRings(t, result)
	require.Len(t, polys, 1)
	require.Len(t, polys[0], 1)
	require.InDelta(t, 64.0, totalArea(t, result), 1e-9)

	env := xy.EnvelopeOf(polys[0][0])
	require.InDelta(t, 1.0, env.MinX, 1e-9)
	require.InDelta(t, 9.0, env.MaxX, 1e-9)
	require.InDelta(t, 1.0, env.MinY, 1e-9)
	require.InDelta(t, 9.0, env.MaxY, 1e-9)
}

func TestBufferNegativeCollapse(t *testing.T) {
	g := geom.NewPolygonFlat(geom.XY, []float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0}, []int{10})
	result, err := Buffer(g, -6.0)
	require.NoError(t, err)
	require.True(t, isEmptyGeom(result))
}

func TestBufferPolygonWithHole(t *testing.T) {
	g := geom.NewPolygonFlat(geom.XY,
		[]float64{
			0, 0, 10, 0, 10, 10, 0, 10, 0, 0,
			4, 4, 6, 4, 6, 6, 4, 6, 4, 4,
		},
		[]int{10, 20})
	result, err := Buffer(g, -0.5)
	require.NoError(t, err)

	polys := polygonRings(t, result)
	require.Len(t, polys, 1)
	require.Len(t, polys[0], 2, "expected a shell and one hole")

	// Outer shrunk to 9x9; hole grown to 3x3 with rounded corners.
	holeCornerArea := 1.0 - ngonArea(32, 1.0)/4 // per corner, radius 0.5 scaled
	wantHole := 9.0 - 4*0.25*holeCornerArea
	want := 81.0 - wantHole
	require.InDelta(t, want, totalArea(t, result), 0.01)

	require.True(t, containsPoint(t, result, xy.Point{2, 2}))
	require.False(t, containsPoint(t, result, xy.Point{5, 5}))
	require.False(t, containsPoint(t, result, xy.Point{0.25, 0.25}))
}

func TestBufferZeroDistanceLine(t *testing.T) {
	g := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 10, 0})
	result, err := Buffer(g, 0)
	require.NoError(t, err)
	require.True(t, isEmptyGeom(result))
}

func TestBufferZeroDistanceAreaIdentity(t *testing.T) {
	g := geom.NewPolygonFlat(geom.XY, []float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0}, []int{10})
	result, err := Buffer(g, 0)
	require.NoError(t, err)
	require.InDelta(t, 100.0, totalArea(t, result), 1e-9)
}

func TestBufferEmptyInput(t *testing.T) {
	g := geom.NewLineString(geom.XY)
	result, err := Buffer(g, 1.0)
	require.NoError(t, err)
	require.True(t, isEmptyGeom(result))
}

func TestBufferMultiPoint(t *testing.T) {
	g := geom.NewMultiPointFlat(geom.XY, []float64{0, 0, 100, 0})
	result, err := Buffer(g, 1.0)
	require.NoError(t, err)

	polys := polygonRings(t, result)
	require.Len(t, polys, 2, "disjoint buffers should stay separate polygons")
	require.InDelta(t, 2*ngonArea(32, 1.0), totalArea(t, result), 1e-9)
}

func TestBufferOverlappingMultiPoint(t *testing.T) {
	// Overlapping point buffers must union into a single polygon, via
	// the additive depth of the merged arrangement.
	g := geom.NewMultiPointFlat(geom.XY, []float64{0, 0, 1, 0})
	result, err := Buffer(g, 1.0)
	require.NoError(t, err)

	polys := polygonRings(t, result)
	require.Len(t, polys, 1)
	area := totalArea(t, result)
	require.Greater(t, area, ngonArea(32, 1.0))
	require.Less(t, area, 2*ngonArea(32, 1.0))
}

func TestBufferMonotonicity(t *testing.T) {
	g := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 4, 3, 9, 1})
	small, err := Buffer(g, 0.5)
	require.NoError(t, err)
	large, err := Buffer(g, 2.0)
	require.NoError(t, err)

	// Every vertex of the smaller buffer lies in the larger one.
	for _, rings := range polygonRings(t, small) {
		for _, ring := range rings {
			for _, v := range ring {
				require.True(t, containsPoint(t, large, v), "vertex %v escapes larger buffer", v)
			}
		}
	}
	require.Less(t, totalArea(t, small), totalArea(t, large))
}

func TestBufferExtent(t *testing.T) {
	input := []xy.Point{{0, 0}, {4, 3}, {9, 1}}
	g := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 4, 3, 9, 1})
	result, err := Buffer(g, 2.0)
	require.NoError(t, err)

	// No result vertex may lie farther than the distance from the input.
	for _, rings := range polygonRings(t, result) {
		for _, ring := range rings {
			for _, v := range ring {
				minDist := math.Inf(1)
				for i := 0; i+1 < len(input); i++ {
					if d := xy.DistancePointToSegment(v, input[i], input[i+1]); d < minDist {
						minDist = d
					}
				}
				require.LessOrEqual(t, minDist, 2.0+1e-9)
			}
		}
	}
}

func TestBufferMitreJoin(t *testing.T) {
	g := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 5, 0, 5, 5})
	params := DefaultParams()
	params.JoinStyle = JoinMitre
	params.EndCapStyle = CapFlat
	result, err := BufferWithParams(g, 1.0, params)
	require.NoError(t, err)

	// The mitred outside corner reaches the exact corner point (6, -1).
	found := false
	for _, rings := range polygonRings(t, result) {
		for _, v := range rings[0] {
			if v.Distance(xy.Point{6, -1}) < 1e-6 {
				found = true
			}
		}
	}
	require.True(t, found, "mitre corner vertex missing")
}

func TestDepthDelta(t *testing.T) {
	tests := []struct {
		left, right geomgraph.Location
		want        int
	}{
		{geomgraph.LocInterior, geomgraph.LocExterior, 1},
		{geomgraph.LocExterior, geomgraph.LocInterior, -1},
		{geomgraph.LocExterior, geomgraph.LocExterior, 0},
		{geomgraph.LocInterior, geomgraph.LocInterior, 0},
	}
	for _, test := range tests {
		label := geomgraph.NewLabel(0, geomgraph.LocBoundary, test.left, test.right)
		if got := DepthDelta(label); got != test.want {
			t.Errorf("DepthDelta(%v/%v) = %d, want %d", test.left, test.right, got, test.want)
		}
	}
}
