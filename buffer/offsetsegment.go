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

	"github.com/akhenakh/planar/geomgraph"
	"github.com/akhenakh/planar/noding"
	"github.com/akhenakh/planar/xy"
)

// Factor controlling how close offset segments can be before their join is
// collapsed to a single point.
const offsetSegmentSeparationFactor = 1.0e-3

// Factor controlling how close curve vertices on an inside turn can be
// before they are snapped together.
const insideTurnVertexSnapDistanceFactor = 1.0e-3

// Factor relative to the buffer distance below which consecutive curve
// vertices are merged.
const curveVertexSnapDistanceFactor = 1.0e-6

// Closing-segment factor for round joins: the closing points inserted at a
// narrow concave corner lie 1/(factor+1) of the way from the offset
// endpoint toward the input vertex, so a larger factor gives shorter
// closing segments.
const maxClosingSegLenFactor = 80

// segment is a directed line segment.
type segment struct {
	p0, p1 xy.Point
}

// pointAlongOffset returns the point at fraction t along the segment,
// offset perpendicular to it by d (positive to the left).
func (s segment) pointAlongOffset(t, d float64) xy.Point {
	segx := s.p0.X + t*(s.p1.X-s.p0.X)
	segy := s.p0.Y + t*(s.p1.Y-s.p0.Y)
	dx := s.p1.X - s.p0.X
	dy := s.p1.Y - s.p0.Y
	length := math.Hypot(dx, dy)
	ux, uy := 0.0, 0.0
	if d != 0 {
		ux = d * dx / length
		uy = d * dy / length
	}
	return xy.Point{X: segx - uy, Y: segy + ux}
}

// offsetSegmentGenerator emits the raw offset curve for one side of a
// sequence of input segments, inserting the joins and caps dictated by the
// buffer parameters.
type offsetSegmentGenerator struct {
	pm        *xy.PrecisionModel
	bufParams Params
	li        *noding.LineIntersector

	distance               float64
	filletAngleQuantum     float64
	closingSegLengthFactor int
	segList                *offsetSegmentString

	s0, s1, s2       xy.Point
	seg0, seg1       segment
	offset0, offset1 segment
	side             geomgraph.Position

	hasNarrowConcaveAngle bool
}

func newOffsetSegmentGenerator(pm *xy.PrecisionModel, bufParams Params, distance float64) *offsetSegmentGenerator {
	g := &offsetSegmentGenerator{
		pm:        pm,
		bufParams: bufParams,
		li:        noding.NewLineIntersector(nil),
	}
	g.filletAngleQuantum = math.Pi / 2.0 / float64(bufParams.quadrantSegments())

	// Short closing segments are used only for round joins with enough
	// quadrant segments; other joins keep the factor of 1, which places the
	// closing points halfway to the input vertex.
	g.closingSegLengthFactor = 1
	if bufParams.quadrantSegments() >= 8 && bufParams.JoinStyle == JoinRound {
		g.closingSegLengthFactor = maxClosingSegLenFactor
	}
	g.init(distance)
	return g
}

func (g *offsetSegmentGenerator) init(distance float64) {
	g.distance = distance
	g.segList = &offsetSegmentString{
		pm:            g.pm,
		minVertexDist: distance * curveVertexSnapDistanceFactor,
	}
}

func (g *offsetSegmentGenerator) coordinates() []xy.Point {
	return g.segList.coordinates()
}

func (g *offsetSegmentGenerator) closeRing() { g.segList.closeRing() }

func (g *offsetSegmentGenerator) addSegments(pts []xy.Point, forward bool) {
	g.segList.addPts(pts, forward)
}

func (g *offsetSegmentGenerator) initSideSegments(s1, s2 xy.Point, side geomgraph.Position) {
	g.s1 = s1
	g.s2 = s2
	g.side = side
	g.seg1 = segment{s1, s2}
	g.offset1 = computeOffsetSegment(g.seg1, side, g.distance)
}

func (g *offsetSegmentGenerator) addFirstSegment() { g.segList.addPt(g.offset1.p0) }

func (g *offsetSegmentGenerator) addLastSegment() { g.segList.addPt(g.offset1.p1) }

func (g *offsetSegmentGenerator) addNextSegment(p xy.Point, addStartPoint bool) {
	g.s0 = g.s1
	g.s1 = g.s2
	g.s2 = p
	g.seg0 = segment{g.s0, g.s1}
	g.offset0 = computeOffsetSegment(g.seg0, g.side, g.distance)
	g.seg1 = segment{g.s1, g.s2}
	g.offset1 = computeOffsetSegment(g.seg1, g.side, g.distance)

	if g.s1 == g.s2 {
		return
	}

	orientation := xy.OrientationIndex(g.s0, g.s1, g.s2)
	outsideTurn := (orientation == xy.Clockwise && g.side == geomgraph.PosLeft) ||
		(orientation == xy.CounterClockwise && g.side == geomgraph.PosRight)

	switch {
	case orientation == xy.Collinear:
		g.addCollinear(addStartPoint)
	case outsideTurn:
		g.addOutsideTurn(orientation, addStartPoint)
	default:
		g.addInsideTurn(orientation, addStartPoint)
	}
}

func (g *offsetSegmentGenerator) addCollinear(addStartPoint bool) {
	g.li.ComputeIntersection(g.s0, g.s1, g.s1, g.s2)
	// A collinear intersection with two points means the segments reverse
	// direction, requiring an end-cap style fillet around the vertex.
	if g.li.IntersectionNum() >= 2 {
		if g.bufParams.JoinStyle == JoinBevel || g.bufParams.JoinStyle == JoinMitre {
			if addStartPoint {
				g.segList.addPt(g.offset0.p1)
			}
			g.segList.addPt(g.offset1.p0)
		} else {
			g.addCornerFillet(g.s1, g.offset0.p1, g.offset1.p0, xy.Clockwise, g.distance)
		}
	}
}

func (g *offsetSegmentGenerator) addOutsideTurn(orientation int, addStartPoint bool) {
	// If the offset endpoints nearly coincide, the corner needs no join at
	// all.
	if g.offset0.p1.Distance(g.offset1.p0) < g.distance*offsetSegmentSeparationFactor {
		g.segList.addPt(g.offset0.p1)
		return
	}
	switch g.bufParams.JoinStyle {
	case JoinMitre:
		g.addMitreJoin(g.s1, g.offset0, g.offset1, g.distance)
	case JoinBevel:
		g.addBevelJoin(g.offset0, g.offset1)
	default:
		if addStartPoint {
			g.segList.addPt(g.offset0.p1)
		}
		g.addCornerFillet(g.s1, g.offset0.p1, g.offset1.p0, orientation, g.distance)
		g.segList.addPt(g.offset1.p0)
	}
}

func (g *offsetSegmentGenerator) addInsideTurn(orientation int, addStartPoint bool) {
	g.li.ComputeIntersection(g.offset0.p0, g.offset0.p1, g.offset1.p0, g.offset1.p1)
	if g.li.HasIntersection() {
		g.segList.addPt(g.li.Intersection(0))
		return
	}

	// The offset segments do not intersect, which happens at very narrow
	// concave angles. Link them with closing segments pulled toward the
	// input vertex, keeping the curve inside the buffer.
	g.hasNarrowConcaveAngle = true
	if g.offset0.p1.Distance(g.offset1.p0) < g.distance*insideTurnVertexSnapDistanceFactor {
		g.segList.addPt(g.offset0.p1)
		return
	}
	g.segList.addPt(g.offset0.p1)
	if g.closingSegLengthFactor > 0 {
		f := float64(g.closingSegLengthFactor)
		mid0 := xy.Point{
			X: (f*g.offset0.p1.X + g.s1.X) / (f + 1),
			Y: (f*g.offset0.p1.Y + g.s1.Y) / (f + 1),
		}
		g.segList.addPt(mid0)
		mid1 := xy.Point{
			X: (f*g.offset1.p0.X + g.s1.X) / (f + 1),
			Y: (f*g.offset1.p0.Y + g.s1.Y) / (f + 1),
		}
		g.segList.addPt(mid1)
	} else {
		g.segList.addPt(g.s1)
	}
	g.segList.addPt(g.offset1.p0)
}

// computeOffsetSegment returns seg offset perpendicular by distance on the
// given side.
func computeOffsetSegment(seg segment, side geomgraph.Position, distance float64) segment {
	sideSign := 1.0
	if side == geomgraph.PosRight {
		sideSign = -1.0
	}
	dx := seg.p1.X - seg.p0.X
	dy := seg.p1.Y - seg.p0.Y
	length := math.Hypot(dx, dy)
	ux := sideSign * distance * dx / length
	uy := sideSign * distance * dy / length
	return segment{
		p0: xy.Point{X: seg.p0.X - uy, Y: seg.p0.Y + ux},
		p1: xy.Point{X: seg.p1.X - uy, Y: seg.p1.Y + ux},
	}
}

func (g *offsetSegmentGenerator) addLineEndCap(p0, p1 xy.Point) {
	seg := segment{p0, p1}
	offsetL := computeOffsetSegment(seg, geomgraph.PosLeft, g.distance)
	offsetR := computeOffsetSegment(seg, geomgraph.PosRight, g.distance)

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	angle := math.Atan2(dy, dx)

	switch g.bufParams.EndCapStyle {
	case CapRound:
		g.segList.addPt(offsetL.p1)
		g.addDirectedFillet(p1, angle+math.Pi/2, angle-math.Pi/2, xy.Clockwise, g.distance)
		g.segList.addPt(offsetR.p1)
	case CapFlat:
		g.segList.addPt(offsetL.p1)
		g.segList.addPt(offsetR.p1)
	case CapSquare:
		sideOffset := xy.Point{
			X: math.Abs(g.distance) * math.Cos(angle),
			Y: math.Abs(g.distance) * math.Sin(angle),
		}
		g.segList.addPt(offsetL.p1.Add(sideOffset))
		g.segList.addPt(offsetR.p1.Add(sideOffset))
	}
}

func (g *offsetSegmentGenerator) addMitreJoin(p xy.Point, offset0, offset1 segment, distance float64) {
	// The mitre apex is the intersection of the extended offset lines.
	intPt, ok := noding.IntersectionLineLine(offset0.p0, offset0.p1, offset1.p0, offset1.p1)
	if ok {
		mitreRatio := 1.0
		if distance > 0 {
			mitreRatio = intPt.Distance(p) / math.Abs(distance)
		}
		if mitreRatio <= g.bufParams.mitreLimit() {
			g.segList.addPt(intPt)
			return
		}
	}
	// Mitre is beyond the limit (or the join is nearly flat): use a bevel
	// placed at the limit distance.
	g.addLimitedMitreJoin(offset0, offset1, distance, g.bufParams.mitreLimit())
}

func (g *offsetSegmentGenerator) addLimitedMitreJoin(offset0, offset1 segment, distance, mitreLimit float64) {
	basePt := g.seg0.p1

	ang0 := xy.Angle(basePt, g.seg0.p0)

	// Oriented angle between the segments, and the bisector of the reflex
	// angle where the mitre apex would lie.
	angDiff := xy.AngleBetweenOriented(g.seg0.p0, basePt, g.seg1.p1)
	angDiffHalf := angDiff / 2
	midAng := xy.NormalizeAngle(ang0 + angDiffHalf)
	mitreMidAng := xy.NormalizeAngle(midAng + math.Pi)

	mitreDist := mitreLimit * distance
	bevelDelta := mitreDist * math.Abs(math.Sin(angDiffHalf))
	bevelHalfLen := distance - bevelDelta

	bevelMid := xy.Point{
		X: basePt.X + mitreDist*math.Cos(mitreMidAng),
		Y: basePt.Y + mitreDist*math.Sin(mitreMidAng),
	}

	mitreMidLine := segment{basePt, bevelMid}
	bevelEndLeft := mitreMidLine.pointAlongOffset(1.0, bevelHalfLen)
	bevelEndRight := mitreMidLine.pointAlongOffset(1.0, -bevelHalfLen)

	if g.side == geomgraph.PosLeft {
		g.segList.addPt(bevelEndLeft)
		g.segList.addPt(bevelEndRight)
	} else {
		g.segList.addPt(bevelEndRight)
		g.segList.addPt(bevelEndLeft)
	}
}

func (g *offsetSegmentGenerator) addBevelJoin(offset0, offset1 segment) {
	g.segList.addPt(offset0.p1)
	g.segList.addPt(offset1.p0)
}

// addCornerFillet adds a circular fillet around p from p0 to p1.
func (g *offsetSegmentGenerator) addCornerFillet(p, p0, p1 xy.Point, direction int, radius float64) {
	startAngle := math.Atan2(p0.Y-p.Y, p0.X-p.X)
	endAngle := math.Atan2(p1.Y-p.Y, p1.X-p.X)

	if direction == xy.Clockwise {
		if startAngle <= endAngle {
			startAngle += 2 * math.Pi
		}
	} else {
		if startAngle >= endAngle {
			startAngle -= 2 * math.Pi
		}
	}
	g.segList.addPt(p0)
	g.addDirectedFillet(p, startAngle, endAngle, direction, radius)
	g.segList.addPt(p1)
}

// addDirectedFillet adds the interior vertices of a fillet around p between
// the given angles.
func (g *offsetSegmentGenerator) addDirectedFillet(p xy.Point, startAngle, endAngle float64, direction int, radius float64) {
	directionFactor := 1.0
	if direction == xy.Clockwise {
		directionFactor = -1.0
	}
	totalAngle := math.Abs(startAngle - endAngle)
	nSegs := int(totalAngle/g.filletAngleQuantum + 0.5)
	if nSegs < 1 {
		return
	}
	angleInc := totalAngle / float64(nSegs)
	for i := 0; i < nSegs; i++ {
		angle := startAngle + directionFactor*float64(i)*angleInc
		g.segList.addPt(xy.Point{
			X: p.X + radius*math.Cos(angle),
			Y: p.Y + radius*math.Sin(angle),
		})
	}
}

// createCircle adds a full circle around p.
func (g *offsetSegmentGenerator) createCircle(p xy.Point) {
	g.segList.addPt(xy.Point{X: p.X + g.distance, Y: p.Y})
	g.addDirectedFillet(p, 0.0, 2*math.Pi, xy.Clockwise, g.distance)
	g.segList.closeRing()
}

// createSquare adds a square around p.
func (g *offsetSegmentGenerator) createSquare(p xy.Point) {
	g.segList.addPt(xy.Point{X: p.X + g.distance, Y: p.Y + g.distance})
	g.segList.addPt(xy.Point{X: p.X + g.distance, Y: p.Y - g.distance})
	g.segList.addPt(xy.Point{X: p.X - g.distance, Y: p.Y - g.distance})
	g.segList.addPt(xy.Point{X: p.X - g.distance, Y: p.Y + g.distance})
	g.segList.closeRing()
}
