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
	"sort"

	geom "github.com/twpayne/go-geom"

	"github.com/akhenakh/planar/geomgraph"
	"github.com/akhenakh/planar/noding"
	"github.com/akhenakh/planar/util"
	"github.com/akhenakh/planar/xy"
)

// Builder computes the buffer of a geometry for a given distance, driving
// the full pipeline: offset curve generation, noding, edge merging, depth
// assignment and polygon assembly.
//
// A Builder is not safe for concurrent use; it may be reused for
// sequential calls. The intersector backing the default noder is cached
// across calls.
type Builder struct {
	bufParams Params

	workingPrecisionModel *xy.PrecisionModel
	workingNoder          noding.Noder
	isInvertOrientation   bool

	li                *noding.LineIntersector
	intersectionAdder *noding.IntersectionAdder

	edgeList *geomgraph.EdgeList
}

// NewBuilder creates a builder with the given parameters.
func NewBuilder(bufParams Params) *Builder {
	return &Builder{bufParams: bufParams}
}

// SetWorkingPrecisionModel overrides the precision model used for noding.
// If not set, full floating precision is used.
func (b *Builder) SetWorkingPrecisionModel(pm *xy.PrecisionModel) {
	b.workingPrecisionModel = pm
}

// SetNoder overrides the noder. The caller retains ownership; the builder
// never mutates a supplied noder's configuration.
func (b *Builder) SetNoder(noder noding.Noder) { b.workingNoder = noder }

// SetInvertOrientation sets whether input ring orientations are interpreted
// as inverted.
func (b *Builder) SetInvertOrientation(invert bool) { b.isInvertOrientation = invert }

// DepthDelta returns the change in depth implied by crossing the labeled
// edge from left to right: +1 when crossing from the buffer interior to the
// exterior, -1 for the reverse, 0 otherwise.
func DepthDelta(label *geomgraph.Label) int {
	lLoc := label.Location(0, geomgraph.PosLeft)
	rLoc := label.Location(0, geomgraph.PosRight)
	if lLoc == geomgraph.LocInterior && rLoc == geomgraph.LocExterior {
		return 1
	}
	if lLoc == geomgraph.LocExterior && rLoc == geomgraph.LocInterior {
		return -1
	}
	return 0
}

// Buffer returns the buffer polygon of g at the given signed distance.
func (b *Builder) Buffer(g geom.T, distance float64) (geom.T, error) {
	// A single-sided buffer is only defined for a single component;
	// buffer each component separately and union the results.
	if b.bufParams.SingleSided && numComponents(g) > 1 {
		var parts []geom.T
		for i, n := 0, numComponents(g); i < n; i++ {
			sub := NewBuilder(b.bufParams)
			sub.workingPrecisionModel = b.workingPrecisionModel
			sub.isInvertOrientation = b.isInvertOrientation
			part, err := sub.Buffer(componentAt(g, i), distance)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
		return unaryUnion(parts)
	}

	pm := b.workingPrecisionModel
	if pm == nil {
		pm = xy.FloatingPrecision()
	}

	curveSetBuilder := NewCurveSetBuilder(g, distance, pm, b.bufParams)
	curveSetBuilder.SetInvertOrientation(b.isInvertOrientation)

	if err := util.CheckForInterrupts(); err != nil {
		return nil, err
	}

	curves := curveSetBuilder.Curves()
	if len(curves) == 0 {
		return emptyPolygon(), nil
	}

	if err := b.computeNodedEdges(curves, pm); err != nil {
		return nil, util.WrapGeom(err, "noding buffer curves")
	}

	if err := util.CheckForInterrupts(); err != nil {
		return nil, err
	}

	resultGeom, err := b.buildResult()
	if err != nil {
		return nil, err
	}

	if b.bufParams.SingleSided {
		cleaned, err := cleanupSingleSidedArtifacts(g, resultGeom)
		if err != nil {
			return nil, err
		}
		resultGeom = cleaned
	}
	return resultGeom, nil
}

// buildResult runs the topology phase over the noded edge list: graph
// construction, subgraph partition, depth assignment and polygon assembly.
func (b *Builder) buildResult() (geom.T, error) {
	graph := geomgraph.NewPlanarGraph()
	graph.AddEdges(b.edgeList.Edges())

	if err := util.CheckForInterrupts(); err != nil {
		return nil, err
	}

	subgraphs, err := createSubgraphs(graph)
	if err != nil {
		return nil, util.WrapGeom(err, "creating buffer subgraphs")
	}

	if err := util.CheckForInterrupts(); err != nil {
		return nil, err
	}

	var polyBuilder PolygonBuilder
	if err := buildSubgraphs(subgraphs, &polyBuilder); err != nil {
		return nil, util.WrapGeom(err, "computing subgraph depths")
	}

	polys := polyBuilder.Polygons()
	if len(polys) == 0 {
		return emptyPolygon(), nil
	}
	if len(polys) == 1 {
		return newPolygon(polys[0]), nil
	}
	return newMultiPolygon(polys), nil
}

// noder returns the working noder if one is installed, else a fast
// monotone-chain noder over a cached intersector configured with pm.
func (b *Builder) noder(pm *xy.PrecisionModel) noding.Noder {
	if b.workingNoder != nil {
		return b.workingNoder
	}
	if b.li == nil {
		b.li = noding.NewLineIntersector(pm)
		b.intersectionAdder = noding.NewIntersectionAdder(b.li)
	} else {
		b.li.SetPrecisionModel(pm)
	}
	return noding.NewMCIndexNoder(b.intersectionAdder)
}

// computeNodedEdges nodes the curves and merges the noded substrings into
// the unique edge list.
func (b *Builder) computeNodedEdges(curves []*noding.SegmentString, pm *xy.PrecisionModel) error {
	b.edgeList = geomgraph.NewEdgeList()

	noder := b.noder(pm)
	noder.ComputeNodes(curves)
	nodedSegStrings := noder.NodedSubstrings()

	for _, segStr := range nodedSegStrings {
		pts := xy.RemoveRepeatedPoints(segStr.Coordinates())
		if len(pts) < 2 {
			// Don't insert collapsed edges.
			continue
		}
		edge := geomgraph.NewEdge(pts, segStr.Label.Clone())
		b.insertUniqueEdge(edge)
	}
	return nil
}

// insertUniqueEdge adds e to the edge list, or merges it into an existing
// geometrically equal edge: labels merge (flipped if the directions
// differ) and depth deltas add.
func (b *Builder) insertUniqueEdge(e *geomgraph.Edge) {
	existingEdge := b.edgeList.FindEqualEdge(e)
	if existingEdge == nil {
		b.edgeList.Add(e)
		e.SetDepthDelta(DepthDelta(e.Label()))
		return
	}
	labelToMerge := e.Label().Clone()
	if !existingEdge.IsPointwiseEqual(e) {
		labelToMerge.Flip()
	}
	existingEdge.Label().Merge(labelToMerge)

	mergeDelta := DepthDelta(labelToMerge)
	existingEdge.SetDepthDelta(existingEdge.DepthDelta() + mergeDelta)
}

// createSubgraphs partitions the graph into connected subgraphs, sorted in
// descending order of their rightmost coordinate. The order is a
// topological order for containment: a subgraph can only be enclosed by one
// processed before it.
func createSubgraphs(graph *geomgraph.PlanarGraph) ([]*Subgraph, error) {
	var subgraphs []*Subgraph
	for _, node := range graph.Nodes() {
		if node.IsVisited() {
			continue
		}
		sg := &Subgraph{}
		if err := sg.Create(node); err != nil {
			return nil, err
		}
		subgraphs = append(subgraphs, sg)
	}
	sort.SliceStable(subgraphs, func(i, j int) bool {
		return subgraphs[i].RightmostCoordinate().X > subgraphs[j].RightmostCoordinate().X
	})
	return subgraphs, nil
}

// buildSubgraphs assigns depths to each subgraph in sweep order and feeds
// the in-result edges to the polygon builder.
func buildSubgraphs(subgraphs []*Subgraph, polyBuilder *PolygonBuilder) error {
	var processed []*Subgraph
	for _, sg := range subgraphs {
		p := sg.RightmostCoordinate()
		locater := NewSubgraphDepthLocater(processed)
		outsideDepth := locater.GetDepth(p)
		if err := sg.ComputeDepth(outsideDepth); err != nil {
			return err
		}
		sg.FindResultEdges()
		processed = append(processed, sg)
		if err := polyBuilder.Add(sg.DirectedEdges(), sg.Nodes()); err != nil {
			return err
		}
	}
	return nil
}

func emptyPolygon() geom.T { return geom.NewPolygon(geom.XY) }

func numComponents(g geom.T) int {
	switch g := g.(type) {
	case *geom.MultiPoint:
		return g.NumPoints()
	case *geom.MultiLineString:
		return g.NumLineStrings()
	case *geom.MultiPolygon:
		return g.NumPolygons()
	case *geom.GeometryCollection:
		return g.NumGeoms()
	}
	return 1
}

func componentAt(g geom.T, i int) geom.T {
	switch g := g.(type) {
	case *geom.MultiPoint:
		return g.Point(i)
	case *geom.MultiLineString:
		return g.LineString(i)
	case *geom.MultiPolygon:
		return g.Polygon(i)
	case *geom.GeometryCollection:
		return g.Geom(i)
	}
	return g
}
