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

// SegmentIntersector processes candidate segment pairs found by a noder.
type SegmentIntersector interface {
	ProcessIntersections(e0 *SegmentString, segIndex0 int, e1 *SegmentString, segIndex1 int)
}

// IntersectionAdder computes the intersections of candidate segment pairs
// and records them as nodes on both segment strings.
type IntersectionAdder struct {
	li *LineIntersector
}

// NewIntersectionAdder creates an adder using the given intersector.
func NewIntersectionAdder(li *LineIntersector) *IntersectionAdder {
	return &IntersectionAdder{li: li}
}

// LineIntersector returns the underlying intersector.
func (ia *IntersectionAdder) LineIntersector() *LineIntersector { return ia.li }

// ProcessIntersections implements SegmentIntersector.
func (ia *IntersectionAdder) ProcessIntersections(e0 *SegmentString, segIndex0 int, e1 *SegmentString, segIndex1 int) {
	if e0 == e1 && segIndex0 == segIndex1 {
		return
	}
	p00 := e0.pts[segIndex0]
	p01 := e0.pts[segIndex0+1]
	p10 := e1.pts[segIndex1]
	p11 := e1.pts[segIndex1+1]

	ia.li.ComputeIntersection(p00, p01, p10, p11)
	if !ia.li.HasIntersection() {
		return
	}
	if ia.isTrivialIntersection(e0, segIndex0, e1, segIndex1) {
		return
	}
	for i := 0; i < ia.li.IntersectionNum(); i++ {
		e0.AddIntersection(ia.li.Intersection(i), segIndex0)
		e1.AddIntersection(ia.li.Intersection(i), segIndex1)
	}
}

// isTrivialIntersection reports an intersection that is simply the shared
// vertex of adjacent segments of the same string (or the closing vertex of
// a ring).
func (ia *IntersectionAdder) isTrivialIntersection(e0 *SegmentString, segIndex0 int, e1 *SegmentString, segIndex1 int) bool {
	if e0 != e1 || ia.li.IntersectionNum() != 1 {
		return false
	}
	if isAdjacentSegments(segIndex0, segIndex1) {
		return true
	}
	if e0.IsClosed() {
		maxSegIndex := e0.NumPoints() - 1
		if (segIndex0 == 0 && segIndex1 == maxSegIndex-1) ||
			(segIndex1 == 0 && segIndex0 == maxSegIndex-1) {
			return true
		}
	}
	return false
}

func isAdjacentSegments(i0, i1 int) bool {
	d := i0 - i1
	return d == 1 || d == -1
}
