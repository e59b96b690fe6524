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
	"github.com/akhenakh/planar/xy"
)

// Intersection classification returned by LineIntersector.
const (
	// NoIntersection means the segments do not intersect.
	NoIntersection = 0
	// PointIntersection means the segments intersect in a single point.
	PointIntersection = 1
	// CollinearIntersection means the segments overlap in a line segment.
	CollinearIntersection = 2
)

// LineIntersector computes the intersection of two line segments, honoring
// an optional precision model: computed intersection points are snapped to
// the model's grid. Orientation decisions go through the extended-precision
// predicate so near-degenerate configurations classify consistently.
type LineIntersector struct {
	pm *xy.PrecisionModel

	p1, p2, q1, q2 xy.Point
	result         int
	isProper       bool
	intPt          [2]xy.Point
}

// NewLineIntersector creates an intersector using the given precision model
// (nil for full floating precision).
func NewLineIntersector(pm *xy.PrecisionModel) *LineIntersector {
	return &LineIntersector{pm: pm}
}

// SetPrecisionModel changes the precision model used for rounding computed
// intersection points.
func (li *LineIntersector) SetPrecisionModel(pm *xy.PrecisionModel) { li.pm = pm }

// HasIntersection reports whether the last computed segments intersect.
func (li *LineIntersector) HasIntersection() bool { return li.result != NoIntersection }

// IntersectionNum returns the number of intersection points (0, 1 or 2).
func (li *LineIntersector) IntersectionNum() int { return li.result }

// Intersection returns the i'th intersection point.
func (li *LineIntersector) Intersection(i int) xy.Point { return li.intPt[i] }

// IsProper reports whether the intersection is in the interior of both
// segments.
func (li *LineIntersector) IsProper() bool { return li.HasIntersection() && li.isProper }

// ComputeIntersection computes the intersection of segments p1-p2 and q1-q2.
func (li *LineIntersector) ComputeIntersection(p1, p2, q1, q2 xy.Point) {
	li.p1, li.p2, li.q1, li.q2 = p1, p2, q1, q2
	li.isProper = false
	li.result = li.computeIntersect(p1, p2, q1, q2)
}

func (li *LineIntersector) computeIntersect(p1, p2, q1, q2 xy.Point) int {
	// Quick envelope rejection.
	envP := xy.EnvelopeOf([]xy.Point{p1, p2})
	envQ := xy.EnvelopeOf([]xy.Point{q1, q2})
	if !envP.Intersects(envQ) {
		return NoIntersection
	}

	pq1 := xy.OrientationIndex(p1, p2, q1)
	pq2 := xy.OrientationIndex(p1, p2, q2)
	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) {
		return NoIntersection
	}
	qp1 := xy.OrientationIndex(q1, q2, p1)
	qp2 := xy.OrientationIndex(q1, q2, p2)
	if (qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		return NoIntersection
	}

	if pq1 == 0 && pq2 == 0 && qp1 == 0 && qp2 == 0 {
		return li.computeCollinearIntersection(p1, p2, q1, q2, envP, envQ)
	}

	if pq1 == 0 || pq2 == 0 || qp1 == 0 || qp2 == 0 {
		// An endpoint of one segment lies on the other. Use the exact
		// endpoint value to avoid introducing rounding.
		switch {
		case p1 == q1 || p1 == q2:
			li.intPt[0] = p1
		case p2 == q1 || p2 == q2:
			li.intPt[0] = p2
		case pq1 == 0:
			li.intPt[0] = q1
		case pq2 == 0:
			li.intPt[0] = q2
		case qp1 == 0:
			li.intPt[0] = p1
		default:
			li.intPt[0] = p2
		}
		return PointIntersection
	}

	li.isProper = true
	li.intPt[0] = li.intersectionPoint(p1, p2, q1, q2)
	return PointIntersection
}

func (li *LineIntersector) computeCollinearIntersection(p1, p2, q1, q2 xy.Point, envP, envQ xy.Envelope) int {
	q1inP := envP.Contains(q1)
	q2inP := envP.Contains(q2)
	p1inQ := envQ.Contains(p1)
	p2inQ := envQ.Contains(p2)

	switch {
	case q1inP && q2inP:
		li.intPt[0], li.intPt[1] = q1, q2
		return CollinearIntersection
	case p1inQ && p2inQ:
		li.intPt[0], li.intPt[1] = p1, p2
		return CollinearIntersection
	case q1inP && p1inQ:
		li.intPt[0], li.intPt[1] = q1, p1
		return collinearOrPoint(q1, p1, q2inP, p2inQ)
	case q1inP && p2inQ:
		li.intPt[0], li.intPt[1] = q1, p2
		return collinearOrPoint(q1, p2, q2inP, p1inQ)
	case q2inP && p1inQ:
		li.intPt[0], li.intPt[1] = q2, p1
		return collinearOrPoint(q2, p1, q1inP, p2inQ)
	case q2inP && p2inQ:
		li.intPt[0], li.intPt[1] = q2, p2
		return collinearOrPoint(q2, p2, q1inP, p1inQ)
	}
	return NoIntersection
}

func collinearOrPoint(a, b xy.Point, otherInP, otherInQ bool) int {
	if a == b && !otherInP && !otherInQ {
		return PointIntersection
	}
	return CollinearIntersection
}

// intersectionPoint computes a proper intersection point, translated toward
// the origin for numerical stability, clamped into the segment envelopes,
// and rounded to the precision model.
func (li *LineIntersector) intersectionPoint(p1, p2, q1, q2 xy.Point) xy.Point {
	pt := intersectionRaw(p1, p2, q1, q2)
	if !li.isInSegmentEnvelopes(pt) {
		pt = nearestEndpoint(p1, p2, q1, q2)
	}
	if li.pm != nil {
		pt = li.pm.MakePrecise(pt)
	}
	return pt
}

func intersectionRaw(p1, p2, q1, q2 xy.Point) xy.Point {
	// Translate so the computation happens near the origin.
	env := xy.EnvelopeOf([]xy.Point{p1, p2, q1, q2})
	centre := xy.Point{X: (env.MinX + env.MaxX) / 2, Y: (env.MinY + env.MaxY) / 2}
	p1 = p1.Sub(centre)
	p2 = p2.Sub(centre)
	q1 = q1.Sub(centre)
	q2 = q2.Sub(centre)

	// Homogeneous line intersection.
	px := p1.Y - p2.Y
	py := p2.X - p1.X
	pw := p1.X*p2.Y - p2.X*p1.Y
	qx := q1.Y - q2.Y
	qy := q2.X - q1.X
	qw := q1.X*q2.Y - q2.X*q1.Y

	x := py*qw - qy*pw
	y := qx*pw - px*qw
	w := px*qy - qx*py

	return xy.Point{X: x/w + centre.X, Y: y/w + centre.Y}
}

func (li *LineIntersector) isInSegmentEnvelopes(pt xy.Point) bool {
	envP := xy.EnvelopeOf([]xy.Point{li.p1, li.p2})
	envQ := xy.EnvelopeOf([]xy.Point{li.q1, li.q2})
	return envP.Contains(pt) && envQ.Contains(pt)
}

// nearestEndpoint returns the endpoint of one segment nearest to the other
// segment. Used as a safe fallback when the computed intersection point
// rounds outside a segment envelope.
func nearestEndpoint(p1, p2, q1, q2 xy.Point) xy.Point {
	nearest := p1
	minDist := xy.DistancePointToSegment(p1, q1, q2)
	if d := xy.DistancePointToSegment(p2, q1, q2); d < minDist {
		minDist = d
		nearest = p2
	}
	if d := xy.DistancePointToSegment(q1, p1, p2); d < minDist {
		minDist = d
		nearest = q1
	}
	if d := xy.DistancePointToSegment(q2, p1, p2); d < minDist {
		nearest = q2
	}
	return nearest
}

// IntersectionLineLine returns the intersection of the infinite lines
// through a-b and c-d, and whether the lines are not parallel. Used for
// mitred joins, where the segment intersection may lie beyond the segment
// endpoints.
func IntersectionLineLine(a, b, c, d xy.Point) (xy.Point, bool) {
	w := (b.X-a.X)*(d.Y-c.Y) - (b.Y-a.Y)*(d.X-c.X)
	if w == 0 {
		return xy.Point{}, false
	}
	t := ((c.X-a.X)*(d.Y-c.Y) - (c.Y-a.Y)*(d.X-c.X)) / w
	return xy.Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}, true
}
