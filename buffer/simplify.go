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

	"github.com/akhenakh/planar/xy"
)

// simplifyInputLine removes vertices which are within the tolerance on the
// concave side of the line, since they cannot affect the offset curve on
// the opposite side. The sign of distanceTol selects the side: positive
// simplifies for a left-side offset, negative for a right-side one. The
// endpoints and the first interior vertex are never removed, so the first
// segment of the line is kept as given.
//
// Simplifying first keeps narrow input wiggles from producing join
// artifacts in the raw curve, and shrinks the noding workload.
func simplifyInputLine(inputLine []xy.Point, distanceTol float64) []xy.Point {
	s := inputLineSimplifier{
		inputLine:   inputLine,
		distanceTol: math.Abs(distanceTol),
		isDeleted:   make([]bool, len(inputLine)),
	}
	s.angleOrientation = xy.CounterClockwise
	if distanceTol < 0 {
		s.angleOrientation = xy.Clockwise
	}
	for s.deleteShallowConcavities() {
	}
	return s.collapseLine()
}

type inputLineSimplifier struct {
	inputLine        []xy.Point
	distanceTol      float64
	angleOrientation int
	isDeleted        []bool
}

// deleteShallowConcavities scans the line, deleting middle vertices of
// shallow concave triples. Returns whether anything was deleted.
func (s *inputLineSimplifier) deleteShallowConcavities() bool {
	index := 1
	midIndex := s.findNextNonDeleted(index)
	lastIndex := s.findNextNonDeleted(midIndex)

	changed := false
	for lastIndex < len(s.inputLine) {
		midVertexDeleted := false
		if s.isDeletable(index, midIndex, lastIndex) {
			s.isDeleted[midIndex] = true
			midVertexDeleted = true
			changed = true
		}
		if midVertexDeleted {
			index = lastIndex
		} else {
			index = midIndex
		}
		midIndex = s.findNextNonDeleted(index)
		lastIndex = s.findNextNonDeleted(midIndex)
	}
	return changed
}

func (s *inputLineSimplifier) findNextNonDeleted(index int) int {
	next := index + 1
	for next < len(s.inputLine) && s.isDeleted[next] {
		next++
	}
	return next
}

func (s *inputLineSimplifier) isDeletable(i0, i1, i2 int) bool {
	p0 := s.inputLine[i0]
	p1 := s.inputLine[i1]
	p2 := s.inputLine[i2]
	if xy.OrientationIndex(p0, p1, p2) != s.angleOrientation {
		return false
	}
	return xy.DistancePointToSegment(p1, p0, p2) < s.distanceTol
}

func (s *inputLineSimplifier) collapseLine() []xy.Point {
	out := make([]xy.Point, 0, len(s.inputLine))
	for i, p := range s.inputLine {
		if !s.isDeleted[i] {
			out = append(out, p)
		}
	}
	return out
}
