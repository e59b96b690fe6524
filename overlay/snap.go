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

// Package overlay computes snap-tolerant overlays of planar linework:
// intersection and union of noded line networks. Snapping absorbs the
// small divergences left by independent rounds of curve generation, such
// as a buffer boundary versus the raw offset curves it came from.
package overlay

import (
	"github.com/akhenakh/planar/xy"
)

// snapPrecisionFactor scales the size of the input to the snap tolerance.
const snapPrecisionFactor = 1e-9

// snapTolerance returns the tolerance for overlaying the two line sets,
// derived from the magnitude of the smaller input.
func snapTolerance(a, b [][]xy.Point) float64 {
	tolA := sizeBasedSnapTolerance(a)
	tolB := sizeBasedSnapTolerance(b)
	if tolB > 0 && (tolA == 0 || tolB < tolA) {
		return tolB
	}
	return tolA
}

func sizeBasedSnapTolerance(lines [][]xy.Point) float64 {
	var env xy.Envelope
	for _, l := range lines {
		for _, p := range l {
			env.ExpandToInclude(p)
		}
	}
	return env.Diagonal() * snapPrecisionFactor
}

// vertexIndex holds the vertices of a line set in SoA layout for fast
// nearest-vertex queries.
type vertexIndex struct {
	xs, ys []float64
	pts    []xy.Point
}

func newVertexIndex(lines [][]xy.Point) *vertexIndex {
	vi := &vertexIndex{}
	for _, l := range lines {
		for _, p := range l {
			vi.xs = append(vi.xs, p.X)
			vi.ys = append(vi.ys, p.Y)
			vi.pts = append(vi.pts, p)
		}
	}
	return vi
}

// nearestWithin returns the indexed vertex nearest to p if it lies within
// tol. The batch kernel rejects the common far-away case without a scalar
// scan.
func (vi *vertexIndex) nearestWithin(p xy.Point, tol float64) (xy.Point, bool) {
	if len(vi.pts) == 0 {
		return xy.Point{}, false
	}
	minSq := xy.BaseMinDistanceToPoint2D(p.X, p.Y, vi.xs, vi.ys)
	if minSq > tol*tol {
		return xy.Point{}, false
	}
	best := 0
	bestSq := p.DistanceSq(vi.pts[0])
	for i, q := range vi.pts {
		if d := p.DistanceSq(q); d < bestSq {
			best = i
			bestSq = d
		}
	}
	return vi.pts[best], true
}

// snapLinesTo snaps the vertices of each source line to nearby target
// vertices, and inserts target vertices lying on source segments, so the
// shared linework of the two sets becomes exactly coincident.
func snapLinesTo(src [][]xy.Point, target *vertexIndex, tol float64) [][]xy.Point {
	out := make([][]xy.Point, 0, len(src))
	for _, line := range src {
		snapped := snapVertices(line, target, tol)
		snapped = snapSegments(snapped, target, tol)
		out = append(out, snapped)
	}
	return out
}

func snapVertices(line []xy.Point, target *vertexIndex, tol float64) []xy.Point {
	out := make([]xy.Point, len(line))
	for i, p := range line {
		if q, ok := target.nearestWithin(p, tol); ok {
			out[i] = q
		} else {
			out[i] = p
		}
	}
	return xy.RemoveRepeatedPoints(out)
}

func snapSegments(line []xy.Point, target *vertexIndex, tol float64) []xy.Point {
	out := append([]xy.Point(nil), line...)
	for _, q := range target.pts {
		out = insertOnSegment(out, q, tol)
	}
	return out
}

// insertOnSegment inserts q into the first segment of line within tol of
// it, unless q is already a vertex.
func insertOnSegment(line []xy.Point, q xy.Point, tol float64) []xy.Point {
	for _, p := range line {
		if p == q {
			return line
		}
	}
	for i := 0; i+1 < len(line); i++ {
		if xy.DistancePointToSegment(q, line[i], line[i+1]) < tol {
			out := make([]xy.Point, 0, len(line)+1)
			out = append(out, line[:i+1]...)
			out = append(out, q)
			out = append(out, line[i+1:]...)
			return out
		}
	}
	return line
}
