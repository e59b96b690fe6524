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

package overlay

import (
	"encoding/binary"
	"math"

	"github.com/akhenakh/planar/noding"
	"github.com/akhenakh/planar/xy"
)

// IntersectionLines returns the linework common to the two line sets: after
// snapping a to b and noding both together, the segments of a that also
// occur in b. The result segments are unmerged.
func IntersectionLines(a, b [][]xy.Point) [][]xy.Point {
	tol := snapTolerance(a, b)

	aSnapped := snapLinesTo(a, newVertexIndex(b), tol)
	bSnapped := snapLinesTo(b, newVertexIndex(aSnapped), tol)

	aNoded, bNoded := nodeTogether(aSnapped, bSnapped)

	bSegs := make(map[segKey]bool)
	for _, line := range bNoded {
		for i := 0; i+1 < len(line); i++ {
			bSegs[newSegKey(line[i], line[i+1])] = true
		}
	}

	var out [][]xy.Point
	for _, line := range aNoded {
		for i := 0; i+1 < len(line); i++ {
			if bSegs[newSegKey(line[i], line[i+1])] {
				out = append(out, []xy.Point{line[i], line[i+1]})
			}
		}
	}
	return out
}

// UnionLines returns the noded union of the two line sets: all input
// linework split at every intersection, with duplicate segments removed.
// The result segments are unmerged. b may be nil.
func UnionLines(a, b [][]xy.Point) [][]xy.Point {
	aNoded, bNoded := nodeTogether(a, b)

	seen := make(map[segKey]bool)
	var out [][]xy.Point
	collect := func(lines [][]xy.Point) {
		for _, line := range lines {
			for i := 0; i+1 < len(line); i++ {
				key := newSegKey(line[i], line[i+1])
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, []xy.Point{line[i], line[i+1]})
			}
		}
	}
	collect(aNoded)
	collect(bNoded)
	return out
}

// nodeTogether nodes the combined linework of the two sets and returns the
// noded substrings of each set separately.
func nodeTogether(a, b [][]xy.Point) (aNoded, bNoded [][]xy.Point) {
	var segStrings []*noding.SegmentString
	aCount := 0
	for _, line := range a {
		line = xy.RemoveRepeatedPoints(line)
		if len(line) < 2 {
			continue
		}
		segStrings = append(segStrings, noding.NewSegmentString(line, nil))
		aCount++
	}
	for _, line := range b {
		line = xy.RemoveRepeatedPoints(line)
		if len(line) < 2 {
			continue
		}
		segStrings = append(segStrings, noding.NewSegmentString(line, nil))
	}
	li := noding.NewLineIntersector(nil)
	noder := noding.NewMCIndexNoder(noding.NewIntersectionAdder(li))
	noder.ComputeNodes(segStrings)

	for parentIdx, parent := range segStrings {
		for _, ss := range noder.NodedSubstringsOf(parent) {
			if parentIdx < aCount {
				aNoded = append(aNoded, ss.Coordinates())
			} else {
				bNoded = append(bNoded, ss.Coordinates())
			}
		}
	}
	return aNoded, bNoded
}

// segKey is an orientation-independent key for a segment.
type segKey [32]byte

func newSegKey(p, q xy.Point) segKey {
	if q.X < p.X || (q.X == p.X && q.Y < p.Y) {
		p, q = q, p
	}
	var k segKey
	binary.LittleEndian.PutUint64(k[0:], math.Float64bits(p.X))
	binary.LittleEndian.PutUint64(k[8:], math.Float64bits(p.Y))
	binary.LittleEndian.PutUint64(k[16:], math.Float64bits(q.X))
	binary.LittleEndian.PutUint64(k[24:], math.Float64bits(q.Y))
	return k
}
