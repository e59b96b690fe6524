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

package xy

import "math"

// Orientation values returned by OrientationIndex.
const (
	Clockwise        = -1
	Collinear        = 0
	CounterClockwise = 1
)

// OrientationIndex returns the orientation of point q relative to the
// directed segment p1->p2: CounterClockwise if q lies to the left,
// Clockwise if to the right, Collinear otherwise.
//
// A floating-point filter decides the easy cases; near-degenerate inputs
// fall through to an extended-precision determinant so the sign is exact.
func OrientationIndex(p1, p2, q Point) int {
	detLeft := (p1.X - q.X) * (p2.Y - q.Y)
	detRight := (p1.Y - q.Y) * (p2.X - q.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return sign(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return sign(det)
		}
		detSum = -detLeft - detRight
	default:
		return sign(det)
	}

	// Error bound: ten times that of Shewchuk's orient2d filter.
	const errBoundFactor = 1e-15 * 3.3306690738754716
	errBound := errBoundFactor * detSum
	if det >= errBound || -det >= errBound {
		return sign(det)
	}
	return orientationExact(p1, p2, q)
}

func sign(x float64) int {
	if x > 0 {
		return CounterClockwise
	}
	if x < 0 {
		return Clockwise
	}
	return Collinear
}

// orientationExact evaluates the orientation determinant in double-double
// arithmetic.
func orientationExact(p1, p2, q Point) int {
	dx1 := ddSub(p2.X, p1.X)
	dy1 := ddSub(p2.Y, p1.Y)
	dx2 := ddSub(q.X, p2.X)
	dy2 := ddSub(q.Y, p2.Y)
	det := dx1.mul(dy2).sub(dy1.mul(dx2))
	return det.signum()
}

// dd is an unevaluated sum of two doubles (hi + lo), giving roughly 106 bits
// of significand.
type dd struct{ hi, lo float64 }

func ddSub(a, b float64) dd {
	s := a - b
	bb := a - s
	err := (a - (s + bb)) + (bb - b)
	return dd{s, err}
}

const ddSplit = 134217729.0 // 2^27 + 1

func twoProd(a, b float64) dd {
	p := a * b
	ahi := a * ddSplit
	ahi = ahi - (ahi - a)
	alo := a - ahi
	bhi := b * ddSplit
	bhi = bhi - (bhi - b)
	blo := b - bhi
	err := ((ahi*bhi - p) + ahi*blo + alo*bhi) + alo*blo
	return dd{p, err}
}

func (a dd) add(b dd) dd {
	s := a.hi + b.hi
	bv := s - a.hi
	err := (a.hi - (s - bv)) + (b.hi - bv)
	err += a.lo + b.lo
	hi := s + err
	lo := err - (hi - s)
	return dd{hi, lo}
}

func (a dd) neg() dd { return dd{-a.hi, -a.lo} }

func (a dd) sub(b dd) dd { return a.add(b.neg()) }

func (a dd) mul(b dd) dd {
	p := twoProd(a.hi, b.hi)
	p.lo += a.hi*b.lo + a.lo*b.hi
	hi := p.hi + p.lo
	lo := p.lo - (hi - p.hi)
	return dd{hi, lo}
}

func (a dd) signum() int {
	switch {
	case a.hi > 0 || (a.hi == 0 && a.lo > 0):
		return 1
	case a.hi < 0 || (a.hi == 0 && a.lo < 0):
		return -1
	}
	return 0
}

// DistancePointToSegment returns the distance from p to the segment a-b.
func DistancePointToSegment(p, a, b Point) float64 {
	if a == b {
		return p.Distance(a)
	}
	ab := b.Sub(a)
	r := p.Sub(a).Dot(ab) / ab.Dot(ab)
	if r <= 0 {
		return p.Distance(a)
	}
	if r >= 1 {
		return p.Distance(b)
	}
	// Perpendicular distance.
	s := a.Sub(p).Cross(ab) / ab.Dot(ab)
	return math.Abs(s) * math.Sqrt(ab.Dot(ab))
}

// SignedArea returns twice the signed area of the (closed or open) ring,
// positive when the ring is counter-clockwise.
func SignedArea(ring []Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		p0 := ring[i]
		p1 := ring[(i+1)%n]
		sum += p0.X*p1.Y - p1.X*p0.Y
	}
	return sum
}

// IsCCW reports whether the ring is oriented counter-clockwise.
func IsCCW(ring []Point) bool {
	return SignedArea(ring) > 0
}

// IsPointInRing reports whether p lies inside the ring, using the crossing
// number of a ray in +x. Points exactly on the boundary may report either
// value.
func IsPointInRing(p Point, ring []Point) bool {
	crossings := 0
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		if a == b {
			continue
		}
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		// Edge straddles the horizontal line through p; count it if the
		// crossing is to the right of p.
		xInt := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if xInt > p.X {
			crossings++
		}
	}
	return crossings%2 == 1
}

// IsOnSegment reports whether p lies within tol of the segment a-b.
func IsOnSegment(p, a, b Point, tol float64) bool {
	return DistancePointToSegment(p, a, b) <= tol
}
