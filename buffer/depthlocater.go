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

	"github.com/akhenakh/planar/geomgraph"
	"github.com/akhenakh/planar/xy"
)

// SubgraphDepthLocater computes the depth of a point relative to a set of
// already depth-assigned subgraphs, by stabbing a horizontal ray to the
// right of the point and reading the depth of the nearest crossed segment.
type SubgraphDepthLocater struct {
	subgraphs []*Subgraph
}

// NewSubgraphDepthLocater creates a locater over the given subgraphs.
func NewSubgraphDepthLocater(subgraphs []*Subgraph) *SubgraphDepthLocater {
	return &SubgraphDepthLocater{subgraphs: subgraphs}
}

// depthSegment is a segment crossed by the stabbing ray, normalized to
// point upward, with the depth on its left (west) side.
type depthSegment struct {
	p0, p1    xy.Point
	leftDepth int
	// xAt is the x ordinate where the segment crosses the stabbing line.
	xAt float64
}

// GetDepth returns the depth at p: 0 if p is not enclosed by any subgraph.
func (l *SubgraphDepthLocater) GetDepth(p xy.Point) int {
	var stabbed []depthSegment
	for _, sg := range l.subgraphs {
		env := sg.Envelope()
		if !env.IsEmpty() && (p.Y < env.MinY || p.Y > env.MaxY || p.X > env.MaxX) {
			continue
		}
		stabbed = l.findStabbedSegments(p, sg.DirectedEdges(), stabbed)
	}
	if len(stabbed) == 0 {
		return 0
	}
	// The nearest crossing to the right carries the depth at p.
	sort.Slice(stabbed, func(i, j int) bool {
		if stabbed[i].xAt != stabbed[j].xAt {
			return stabbed[i].xAt < stabbed[j].xAt
		}
		// Crossings through a shared vertex: prefer the segment that
		// swings further left.
		return xy.OrientationIndex(stabbed[i].p0, stabbed[i].p1, stabbed[j].p1) > 0
	})
	return stabbed[0].leftDepth
}

// findStabbedSegments collects the segments of the given directed edges
// crossed by the rightward horizontal ray from p.
func (l *SubgraphDepthLocater) findStabbedSegments(p xy.Point, dirEdges []*geomgraph.DirectedEdge, stabbed []depthSegment) []depthSegment {
	for _, de := range dirEdges {
		if !de.IsForward() {
			continue
		}
		pts := de.Edge().Coordinates()
		for i := 0; i+1 < len(pts); i++ {
			s0, s1 := pts[i], pts[i+1]
			// Normalize the segment to point upward.
			flipped := false
			if s0.Y > s1.Y {
				s0, s1 = s1, s0
				flipped = true
			}
			// Skip horizontal segments: a non-horizontal segment with the
			// same depth also crosses the ray.
			if s0.Y == s1.Y {
				continue
			}
			// Skip segments entirely left of, above, or below the ray.
			if s0.X < p.X && s1.X < p.X {
				continue
			}
			if p.Y < s0.Y || p.Y > s1.Y {
				continue
			}
			// Skip if the ray origin is right of the segment.
			if xy.OrientationIndex(s0, s1, p) == xy.Clockwise {
				continue
			}
			// Read the depth on the west side of the upward segment.
			depth := de.Depth(geomgraph.PosLeft)
			if flipped {
				depth = de.Depth(geomgraph.PosRight)
			}
			xAt := s0.X + (p.Y-s0.Y)*(s1.X-s0.X)/(s1.Y-s0.Y)
			stabbed = append(stabbed, depthSegment{p0: s0, p1: s1, leftDepth: depth, xAt: xAt})
		}
	}
	return stabbed
}
