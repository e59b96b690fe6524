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

	"github.com/akhenakh/planar/util"
	"github.com/akhenakh/planar/xy"
)

func lineStringPoints(t *testing.T, g geom.T) [][]xy.Point {
	t.Helper()
	switch g := g.(type) {
	case *geom.LineString:
		if len(g.FlatCoords()) == 0 {
			return nil
		}
		return [][]xy.Point{lineCoords(g)}
	case *geom.MultiLineString:
		var out [][]xy.Point
		for i := 0; i < g.NumLineStrings(); i++ {
			out = append(out, lineCoords(g.LineString(i)))
		}
		return out
	}
	t.Fatalf("expected a linear result, got %T", g)
	return nil
}

func TestSingleSidedLeft(t *testing.T) {
	g := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 10, 0})
	result, err := BufferLineSingleSided(g, 1.0, true)
	require.NoError(t, err)

	lines := lineStringPoints(t, result)
	require.Len(t, lines, 1)

	// The left offset of a west-east line lies along y = 1, spanning the
	// input without cap remnants.
	for _, v := range lines[0] {
		require.InDelta(t, 1.0, v.Y, 1e-6)
		require.GreaterOrEqual(t, v.X, -1e-6)
		require.LessOrEqual(t, v.X, 10.0+1e-6)
	}
	require.InDelta(t, 0.0, lines[0][0].X, 1e-6)
	require.InDelta(t, 10.0, lines[0][len(lines[0])-1].X, 1e-6)
}

func TestSingleSidedRight(t *testing.T) {
	g := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 10, 0})
	result, err := BufferLineSingleSided(g, 1.0, false)
	require.NoError(t, err)

	lines := lineStringPoints(t, result)
	require.Len(t, lines, 1)
	for _, v := range lines[0] {
		require.InDelta(t, -1.0, v.Y, 1e-6)
	}
}

func TestSingleSidedZeroDistanceClones(t *testing.T) {
	g := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 10, 0})
	result, err := BufferLineSingleSided(g, 0, true)
	require.NoError(t, err)

	ls, ok := result.(*geom.LineString)
	require.True(t, ok)
	require.Equal(t, g.FlatCoords(), ls.FlatCoords())
	require.NotSame(t, &g.FlatCoords()[0], &ls.FlatCoords()[0])
}

func TestSingleSidedRejectsNonLine(t *testing.T) {
	g := geom.NewPointFlat(geom.XY, []float64{0, 0})
	_, err := BufferLineSingleSided(g, 1.0, true)
	require.ErrorIs(t, err, util.ErrIllegalArgument)
}

func TestSingleSidedBentLine(t *testing.T) {
	// An L-shaped line: the left offset follows the outside of the bend.
	g := geom.NewLineStringFlat(geom.XY, []float64{0, 0, 5, 0, 5, -5})
	result, err := BufferLineSingleSided(g, 1.0, true)
	require.NoError(t, err)

	lines := lineStringPoints(t, result)
	require.NotEmpty(t, lines)

	// Every vertex of the offset stays at distance ~1 from the input.
	input := []xy.Point{{0, 0}, {5, 0}, {5, -5}}
	for _, line := range lines {
		for _, v := range line {
			minDist := math.Inf(1)
			for i := 0; i+1 < len(input); i++ {
				if d := xy.DistancePointToSegment(v, input[i], input[i+1]); d < minDist {
					minDist = d
				}
			}
			require.InDelta(t, 1.0, minDist, 0.05)
		}
	}
}

func TestSingleSidedMultiLineUnion(t *testing.T) {
	// A single-sided buffer of a multi-part input buffers each part and
	// unions the results.
	g := geom.NewMultiLineStringFlat(geom.XY,
		[]float64{0, 0, 10, 0, 0, 50, 10, 50}, []int{4, 8})

	params := DefaultParams()
	params.SingleSided = true
	result, err := BufferWithParams(g, 1.0, params)
	require.NoError(t, err)

	polys := polygonRings(t, result)
	require.Len(t, polys, 2)
	// Each part contributes a one-sided strip of area ~10.
	require.InDelta(t, 20.0, totalArea(t, result), 0.5)
}
