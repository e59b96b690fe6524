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
	"sort"

	"github.com/akhenakh/planar/xy"
)

// segmentNode is an intersection point on a segment string.
type segmentNode struct {
	coord        xy.Point
	segmentIndex int
	// distSq orders nodes lying on the same segment.
	distSq   float64
	interior bool
}

// segmentNodeList holds the intersection nodes of one segment string, in
// order along the string.
type segmentNodeList struct {
	edge  *SegmentString
	nodes []segmentNode
}

func (l *segmentNodeList) add(intPt xy.Point, segmentIndex int) {
	node := segmentNode{
		coord:        intPt,
		segmentIndex: segmentIndex,
		distSq:       intPt.DistanceSq(l.edge.pts[segmentIndex]),
		interior:     intPt != l.edge.pts[segmentIndex],
	}
	for _, n := range l.nodes {
		if n.segmentIndex == segmentIndex && n.coord == intPt {
			return
		}
	}
	l.nodes = append(l.nodes, node)
}

func (l *segmentNodeList) addEndpoints() {
	maxSegIndex := len(l.edge.pts) - 1
	l.add(l.edge.pts[0], 0)
	l.add(l.edge.pts[maxSegIndex], maxSegIndex)
}

// addSplitEdges appends the complete set of substrings delimited by the
// nodes to out.
func (l *segmentNodeList) addSplitEdges(out []*SegmentString) []*SegmentString {
	l.addEndpoints()
	sort.SliceStable(l.nodes, func(i, j int) bool {
		a, b := l.nodes[i], l.nodes[j]
		if a.segmentIndex != b.segmentIndex {
			return a.segmentIndex < b.segmentIndex
		}
		return a.distSq < b.distSq
	})
	for i := 0; i+1 < len(l.nodes); i++ {
		out = append(out, l.createSplitEdge(l.nodes[i], l.nodes[i+1]))
	}
	return out
}

func (l *segmentNodeList) createSplitEdge(ei0, ei1 segmentNode) *SegmentString {
	lastSegStartPt := l.edge.pts[ei1.segmentIndex]
	useIntPt1 := ei1.interior || ei1.coord != lastSegStartPt

	pts := make([]xy.Point, 0, ei1.segmentIndex-ei0.segmentIndex+2)
	pts = append(pts, ei0.coord)
	pts = append(pts, l.edge.pts[ei0.segmentIndex+1:ei1.segmentIndex+1]...)
	if useIntPt1 {
		pts = append(pts, ei1.coord)
	}
	return NewSegmentString(pts, l.edge.Label)
}
