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
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/akhenakh/planar/geomgraph"
	"github.com/akhenakh/planar/util"
	"github.com/akhenakh/planar/xy"
)

func bufferLabel() *geomgraph.Label {
	return geomgraph.NewLabel(0, geomgraph.LocBoundary, geomgraph.LocExterior, geomgraph.LocInterior)
}

func TestInsertUniqueEdgeMergesSameDirection(t *testing.T) {
	b := NewBuilder(DefaultParams())
	b.edgeList = geomgraph.NewEdgeList()

	pts := []xy.Point{{0, 0}, {5, 1}, {10, 0}}
	e1 := geomgraph.NewEdge(append([]xy.Point(nil), pts...), bufferLabel())
	e2 := geomgraph.NewEdge(append([]xy.Point(nil), pts...), bufferLabel())

	b.insertUniqueEdge(e1)
	b.insertUniqueEdge(e2)

	edges := b.edgeList.Edges()
	require.Len(t, edges, 1)
	// Inserting the same edge twice doubles its depth delta.
	require.Equal(t, 2*DepthDelta(bufferLabel()), edges[0].DepthDelta())
}

func TestInsertUniqueEdgeCancelsReversed(t *testing.T) {
	b := NewBuilder(DefaultParams())
	b.edgeList = geomgraph.NewEdgeList()

	pts := []xy.Point{{0, 0}, {5, 1}, {10, 0}}
	e1 := geomgraph.NewEdge(append([]xy.Point(nil), pts...), bufferLabel())
	e2 := geomgraph.NewEdge(xy.Reverse(pts), bufferLabel())

	b.insertUniqueEdge(e1)
	b.insertUniqueEdge(e2)

	edges := b.edgeList.Edges()
	require.Len(t, edges, 1)
	// A reversed duplicate contributes the opposite delta.
	require.Equal(t, 0, edges[0].DepthDelta())
}

func TestCreateSubgraphsOrdering(t *testing.T) {
	// Three disjoint point buffers produce three subgraphs; after
	// partitioning they must be ordered by descending rightmost x.
	g := geom.NewMultiPointFlat(geom.XY, []float64{0, 0, 50, 0, 100, 0})

	b := NewBuilder(DefaultParams())
	pm := xy.FloatingPrecision()
	curves := NewCurveSetBuilder(g, 1.0, pm, b.bufParams).Curves()
	require.NotEmpty(t, curves)
	require.NoError(t, b.computeNodedEdges(curves, pm))

	graph := geomgraph.NewPlanarGraph()
	graph.AddEdges(b.edgeList.Edges())

	subgraphs, err := createSubgraphs(graph)
	require.NoError(t, err)
	require.Len(t, subgraphs, 3)

	for i := 1; i < len(subgraphs); i++ {
		require.GreaterOrEqual(t,
			subgraphs[i-1].RightmostCoordinate().X,
			subgraphs[i].RightmostCoordinate().X,
			"subgraphs out of descending rightmost order")
	}
}

func TestBuilderReuse(t *testing.T) {
	b := NewBuilder(DefaultParams())
	g := geom.NewPointFlat(geom.XY, []float64{0, 0})

	first, err := b.Buffer(g, 1.0)
	require.NoError(t, err)
	second, err := b.Buffer(g, 1.0)
	require.NoError(t, err)

	require.InDelta(t, totalArea(t, first), totalArea(t, second), 1e-12)
}

func TestBufferInterrupt(t *testing.T) {
	util.RequestInterrupt()
	defer util.CancelInterrupt()

	g := geom.NewPointFlat(geom.XY, []float64{0, 0})
	_, err := Buffer(g, 1.0)
	require.ErrorIs(t, err, util.ErrInterrupted)
}

func TestWorkingPrecisionModel(t *testing.T) {
	g := geom.NewPointFlat(geom.XY, []float64{0, 0})
	b := NewBuilder(DefaultParams())
	b.SetWorkingPrecisionModel(xy.FixedPrecision(1))

	result, err := b.Buffer(g, 10.0)
	require.NoError(t, err)

	// All result coordinates lie on the integer grid.
	for _, rings := range polygonRings(t, result) {
		for _, ring := range rings {
			for _, v := range ring {
				require.Equal(t, float64(int(v.X)), v.X)
				require.Equal(t, float64(int(v.Y)), v.Y)
			}
		}
	}
}
