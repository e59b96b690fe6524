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

package geomgraph

import (
	"github.com/akhenakh/planar/util"
	"github.com/akhenakh/planar/xy"
)

// DirectedEdge is one direction of an Edge, anchored at the node at its
// origin. It carries the depth values on each side, the result flag, and the
// ring links used during polygon assembly.
type DirectedEdge struct {
	edge      *Edge
	isForward bool
	label     *Label

	p0, p1   xy.Point
	dx, dy   float64
	quadrant int

	node *Node
	sym  *DirectedEdge

	// next is the next result edge around the ring (maximal rings); nextMin
	// the next around a minimal ring.
	next    *DirectedEdge
	nextMin *DirectedEdge

	edgeRing    *EdgeRing
	minEdgeRing *EdgeRing

	depth    [3]int
	depthSet [3]bool

	visited  bool
	inResult bool
}

func newDirectedEdge(edge *Edge, isForward bool) *DirectedEdge {
	de := &DirectedEdge{edge: edge, isForward: isForward}
	if isForward {
		de.init(edge.Coordinate(0), edge.Coordinate(1))
	} else {
		n := edge.NumPoints() - 1
		de.init(edge.Coordinate(n), edge.Coordinate(n-1))
	}
	de.label = edge.Label().Clone()
	if !isForward {
		de.label.Flip()
	}
	return de
}

func (de *DirectedEdge) init(p0, p1 xy.Point) {
	de.p0 = p0
	de.p1 = p1
	de.dx = p1.X - p0.X
	de.dy = p1.Y - p0.Y
	de.quadrant = xy.Quadrant(de.dx, de.dy)
}

// Edge returns the underlying undirected edge.
func (de *DirectedEdge) Edge() *Edge { return de.edge }

// IsForward reports whether this direction follows the edge's coordinate
// order.
func (de *DirectedEdge) IsForward() bool { return de.isForward }

// Label returns the directed label (flipped from the edge label for the
// reverse direction).
func (de *DirectedEdge) Label() *Label { return de.label }

// Coordinate returns the origin of the directed edge.
func (de *DirectedEdge) Coordinate() xy.Point { return de.p0 }

// DirectedCoordinate returns the second point along the directed edge.
func (de *DirectedEdge) DirectedCoordinate() xy.Point { return de.p1 }

// Node returns the node at the edge origin.
func (de *DirectedEdge) Node() *Node { return de.node }

// Sym returns the opposite directed edge of the same Edge.
func (de *DirectedEdge) Sym() *DirectedEdge { return de.sym }

// Next returns the next result edge around the maximal ring.
func (de *DirectedEdge) Next() *DirectedEdge { return de.next }

// SetNext links the next result edge around the maximal ring.
func (de *DirectedEdge) SetNext(next *DirectedEdge) { de.next = next }

// NextMin returns the next edge around the minimal ring.
func (de *DirectedEdge) NextMin() *DirectedEdge { return de.nextMin }

// SetNextMin links the next edge around the minimal ring.
func (de *DirectedEdge) SetNextMin(next *DirectedEdge) { de.nextMin = next }

// EdgeRing returns the maximal ring this edge belongs to, or nil.
func (de *DirectedEdge) EdgeRing() *EdgeRing { return de.edgeRing }

// SetEdgeRing assigns the maximal ring.
func (de *DirectedEdge) SetEdgeRing(er *EdgeRing) { de.edgeRing = er }

// MinEdgeRing returns the minimal ring this edge belongs to, or nil.
func (de *DirectedEdge) MinEdgeRing() *EdgeRing { return de.minEdgeRing }

// SetMinEdgeRing assigns the minimal ring.
func (de *DirectedEdge) SetMinEdgeRing(er *EdgeRing) { de.minEdgeRing = er }

// IsVisited reports the traversal mark.
func (de *DirectedEdge) IsVisited() bool { return de.visited }

// SetVisited sets the traversal mark.
func (de *DirectedEdge) SetVisited(v bool) { de.visited = v }

// IsInResult reports whether the edge bounds the result area.
func (de *DirectedEdge) IsInResult() bool { return de.inResult }

// SetInResult marks the edge as bounding the result area.
func (de *DirectedEdge) SetInResult(v bool) { de.inResult = v }

// Depth returns the depth on the given side.
func (de *DirectedEdge) Depth(pos Position) int { return de.depth[pos] }

// HasDepth reports whether the depth on the given side has been assigned.
func (de *DirectedEdge) HasDepth(pos Position) bool { return de.depthSet[pos] }

// SetDepth assigns the depth on one side. Assigning a different value to an
// already-assigned side indicates an inconsistent arrangement.
func (de *DirectedEdge) SetDepth(pos Position, depth int) error {
	if de.depthSet[pos] && de.depth[pos] != depth {
		return util.Topologyf(de.p0.X, de.p0.Y, "assigned depths do not match")
	}
	de.depth[pos] = depth
	de.depthSet[pos] = true
	return nil
}

// SetEdgeDepths assigns the depth on one side and derives the opposite side
// from the edge's depth delta. The delta is applied with the edge direction:
// left depth = right depth + delta for a forward edge.
func (de *DirectedEdge) SetEdgeDepths(pos Position, depth int) error {
	depthDelta := de.edge.DepthDelta()
	if !de.isForward {
		depthDelta = -depthDelta
	}
	directionFactor := 1
	if pos == PosLeft {
		directionFactor = -1
	}
	opposite := pos.Opposite()
	oppositeDepth := depth + depthDelta*directionFactor
	if err := de.SetDepth(pos, depth); err != nil {
		return err
	}
	return de.SetDepth(opposite, oppositeDepth)
}

// IsInteriorAreaEdge reports whether the edge is in the interior of the area
// of both parent geometries.
func (de *DirectedEdge) IsInteriorAreaEdge() bool {
	for i := 0; i < 2; i++ {
		if de.label.Location(i, PosLeft) != LocInterior ||
			de.label.Location(i, PosRight) != LocInterior {
			return false
		}
	}
	return true
}

// compareDirection orders directed edges by the angle of their direction
// vector with the positive x axis, measured counter-clockwise.
func (de *DirectedEdge) compareDirection(e *DirectedEdge) int {
	if de.dx == e.dx && de.dy == e.dy {
		return 0
	}
	if de.quadrant > e.quadrant {
		return 1
	}
	if de.quadrant < e.quadrant {
		return -1
	}
	// Same quadrant: check relative orientation of the direction vectors.
	return xy.OrientationIndex(e.p0, e.p1, de.p1)
}
