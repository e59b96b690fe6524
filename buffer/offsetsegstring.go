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
	"github.com/akhenakh/planar/xy"
)

// offsetSegmentString accumulates the vertices of an offset curve, rounding
// them to the precision model and dropping vertices closer together than
// the minimum vertex distance.
type offsetSegmentString struct {
	pts           []xy.Point
	pm            *xy.PrecisionModel
	minVertexDist float64
}

func (s *offsetSegmentString) addPt(p xy.Point) {
	bufPt := s.pm.MakePrecise(p)
	if s.isRedundant(bufPt) {
		return
	}
	s.pts = append(s.pts, bufPt)
}

func (s *offsetSegmentString) addPts(pts []xy.Point, forward bool) {
	if forward {
		for _, p := range pts {
			s.addPt(p)
		}
		return
	}
	for i := len(pts) - 1; i >= 0; i-- {
		s.addPt(pts[i])
	}
}

// isRedundant reports whether the point is so close to the last one that it
// would add no information.
func (s *offsetSegmentString) isRedundant(p xy.Point) bool {
	if len(s.pts) == 0 {
		return false
	}
	return p.Distance(s.pts[len(s.pts)-1]) < s.minVertexDist
}

func (s *offsetSegmentString) closeRing() {
	if len(s.pts) < 1 {
		return
	}
	start := s.pts[0]
	last := s.pts[len(s.pts)-1]
	if start == last {
		return
	}
	s.pts = append(s.pts, start)
}

func (s *offsetSegmentString) coordinates() []xy.Point { return s.pts }
