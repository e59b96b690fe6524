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

// Package noding splits collections of segment strings at all mutual
// intersections, producing substrings whose interiors are interaction-free.
package noding

import (
	"github.com/akhenakh/planar/geomgraph"
	"github.com/akhenakh/planar/xy"
)

// SegmentString is an ordered coordinate sequence representing a polyline,
// annotated with an optional topology label and carrying the intersection
// nodes discovered during noding.
type SegmentString struct {
	pts []xy.Point

	// Label is the topological annotation of the curve, if any.
	Label *geomgraph.Label

	nodeList segmentNodeList
}

// NewSegmentString creates a segment string taking ownership of pts.
func NewSegmentString(pts []xy.Point, label *geomgraph.Label) *SegmentString {
	ss := &SegmentString{pts: pts, Label: label}
	ss.nodeList.edge = ss
	return ss
}

// Coordinates returns the coordinate sequence. Owned by the segment string.
func (ss *SegmentString) Coordinates() []xy.Point { return ss.pts }

// NumPoints returns the number of coordinates.
func (ss *SegmentString) NumPoints() int { return len(ss.pts) }

// Coordinate returns the i'th coordinate.
func (ss *SegmentString) Coordinate(i int) xy.Point { return ss.pts[i] }

// IsClosed reports whether the first and last coordinates coincide.
func (ss *SegmentString) IsClosed() bool {
	return len(ss.pts) > 1 && ss.pts[0] == ss.pts[len(ss.pts)-1]
}

// AddIntersection records an intersection point lying on the segment with
// the given index.
func (ss *SegmentString) AddIntersection(intPt xy.Point, segmentIndex int) {
	normalizedIndex := segmentIndex
	// Normalize the node to the segment start vertex if it falls on the
	// next vertex.
	if next := segmentIndex + 1; next < len(ss.pts) && intPt == ss.pts[next] {
		normalizedIndex = next
	}
	ss.nodeList.add(intPt, normalizedIndex)
}

// splitEdges appends the substrings of ss delimited by its intersection
// nodes.
func (ss *SegmentString) splitEdges(out []*SegmentString) []*SegmentString {
	return ss.nodeList.addSplitEdges(out)
}
