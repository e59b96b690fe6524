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
	"sort"

	"github.com/akhenakh/planar/util"
	"github.com/akhenakh/planar/xy"
)

// DirectedEdgeStar is the ordered set of directed edges leaving a node,
// sorted counter-clockwise by direction angle starting from the positive
// x axis.
type DirectedEdgeStar struct {
	edges  []*DirectedEdge
	sorted bool

	resultAreaEdges []*DirectedEdge
}

func newDirectedEdgeStar() *DirectedEdgeStar {
	return &DirectedEdgeStar{}
}

func (s *DirectedEdgeStar) insert(de *DirectedEdge) {
	s.edges = append(s.edges, de)
	s.sorted = false
	s.resultAreaEdges = nil
}

// Edges returns the directed edges in counter-clockwise order.
func (s *DirectedEdgeStar) Edges() []*DirectedEdge {
	if !s.sorted {
		sort.SliceStable(s.edges, func(i, j int) bool {
			return s.edges[i].compareDirection(s.edges[j]) < 0
		})
		s.sorted = true
	}
	return s.edges
}

// Degree returns the number of directed edges leaving the node.
func (s *DirectedEdgeStar) Degree() int { return len(s.edges) }

// RightmostEdge returns the edge used to start depth assignment at the
// rightmost node: the first edge in counter-clockwise order when the first
// and last edges both point upward, the last edge when both point downward,
// and otherwise whichever of the two is not horizontal (nil if both are).
func (s *DirectedEdgeStar) RightmostEdge() *DirectedEdge {
	edges := s.Edges()
	if len(edges) == 0 {
		return nil
	}
	de0 := edges[0]
	if len(edges) == 1 {
		return de0
	}
	deLast := edges[len(edges)-1]
	quad0 := de0.quadrant
	quad1 := deLast.quadrant
	switch {
	case xy.QuadrantIsNorthern(quad0) && xy.QuadrantIsNorthern(quad1):
		return de0
	case !xy.QuadrantIsNorthern(quad0) && !xy.QuadrantIsNorthern(quad1):
		return deLast
	default:
		// The edges are in different hemispheres; return one that is
		// non-horizontal.
		if de0.dy != 0 {
			return de0
		}
		if deLast.dy != 0 {
			return deLast
		}
	}
	return nil
}

// ComputeDepths propagates side depths around the star starting from the
// assigned depths of de: walking counter-clockwise, the left depth of one
// edge becomes the right depth of the next.
func (s *DirectedEdgeStar) ComputeDepths(de *DirectedEdge) error {
	edges := s.Edges()
	edgeIndex := -1
	for i, e := range edges {
		if e == de {
			edgeIndex = i
			break
		}
	}
	if edgeIndex < 0 {
		return util.Topologyf(de.p0.X, de.p0.Y, "edge not present in star")
	}
	startDepth := de.Depth(PosLeft)
	targetLastDepth := de.Depth(PosRight)
	nextDepth, err := s.computeDepthRange(edgeIndex+1, len(edges), startDepth)
	if err != nil {
		return err
	}
	lastDepth, err := s.computeDepthRange(0, edgeIndex, nextDepth)
	if err != nil {
		return err
	}
	if lastDepth != targetLastDepth {
		return util.Topologyf(de.p0.X, de.p0.Y, "depth mismatch")
	}
	return nil
}

func (s *DirectedEdgeStar) computeDepthRange(start, end, startDepth int) (int, error) {
	currDepth := startDepth
	for i := start; i < end; i++ {
		nextDe := s.edges[i]
		if err := nextDe.SetEdgeDepths(PosRight, currDepth); err != nil {
			return 0, err
		}
		currDepth = nextDe.Depth(PosLeft)
	}
	return currDepth, nil
}

// ResultAreaEdges returns the edges for which either direction is marked
// in-result, in counter-clockwise order.
func (s *DirectedEdgeStar) ResultAreaEdges() []*DirectedEdge {
	if s.resultAreaEdges != nil {
		return s.resultAreaEdges
	}
	for _, de := range s.Edges() {
		if de.IsInResult() || de.Sym().IsInResult() {
			s.resultAreaEdges = append(s.resultAreaEdges, de)
		}
	}
	return s.resultAreaEdges
}

const (
	scanningForIncoming = 1
	linkingToOutgoing   = 2
)

// LinkResultDirectedEdges links the in-result edges around the node so that
// each incoming result edge points to the next outgoing result edge in ring
// order.
func (s *DirectedEdgeStar) LinkResultDirectedEdges() error {
	area := s.ResultAreaEdges()
	var firstOut, incoming *DirectedEdge
	state := scanningForIncoming
	for _, nextOut := range area {
		nextIn := nextOut.Sym()
		if !nextOut.Label().IsArea() {
			continue
		}
		if firstOut == nil && nextOut.IsInResult() {
			firstOut = nextOut
		}
		switch state {
		case scanningForIncoming:
			if !nextIn.IsInResult() {
				continue
			}
			incoming = nextIn
			state = linkingToOutgoing
		case linkingToOutgoing:
			if !nextOut.IsInResult() {
				continue
			}
			incoming.SetNext(nextOut)
			state = scanningForIncoming
		}
	}
	if state == linkingToOutgoing {
		if firstOut == nil {
			p := s.edges[0].p0
			return util.Topologyf(p.X, p.Y, "no outgoing dirEdge found")
		}
		incoming.SetNext(firstOut)
	}
	return nil
}

// LinkMinimalDirectedEdges links the edges of a single maximal ring into
// minimal rings, scanning clockwise.
func (s *DirectedEdgeStar) LinkMinimalDirectedEdges(er *EdgeRing) {
	area := s.ResultAreaEdges()
	var firstOut, incoming *DirectedEdge
	state := scanningForIncoming
	for i := len(area) - 1; i >= 0; i-- {
		nextOut := area[i]
		nextIn := nextOut.Sym()
		if firstOut == nil && nextOut.EdgeRing() == er {
			firstOut = nextOut
		}
		switch state {
		case scanningForIncoming:
			if nextIn.EdgeRing() != er {
				continue
			}
			incoming = nextIn
			state = linkingToOutgoing
		case linkingToOutgoing:
			if nextOut.EdgeRing() != er {
				continue
			}
			incoming.SetNextMin(nextOut)
			state = scanningForIncoming
		}
	}
	if state == linkingToOutgoing && firstOut != nil {
		incoming.SetNextMin(firstOut)
	}
}

// OutgoingDegree returns the number of outgoing edges assigned to er.
func (s *DirectedEdgeStar) OutgoingDegree(er *EdgeRing) int {
	degree := 0
	for _, de := range s.Edges() {
		if de.EdgeRing() == er {
			degree++
		}
	}
	return degree
}
