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

	geom "github.com/twpayne/go-geom"

	"github.com/akhenakh/planar/geomgraph"
	"github.com/akhenakh/planar/noding"
	"github.com/akhenakh/planar/xy"
)

// A ring whose input has at least this many vertices cannot invert under
// offsetting.
const maxInvertedRingSize = 9

// An inverted ring curve has at most this many vertices per input vertex.
const invertedCurveVertexFactor = 4

// Fraction of the buffer distance a curve vertex must stay within for the
// curve to count as inverted.
const nearnessFactor = 0.99

// CurveSetBuilder produces the labeled raw offset curves for all components
// of the input geometry.
type CurveSetBuilder struct {
	input    geom.T
	distance float64
	bufParams Params

	curveBuilder      *OffsetCurveBuilder
	invertOrientation bool

	curves []*noding.SegmentString
}

// NewCurveSetBuilder creates a curve set builder for one buffer invocation.
func NewCurveSetBuilder(input geom.T, distance float64, pm *xy.PrecisionModel, bufParams Params) *CurveSetBuilder {
	return &CurveSetBuilder{
		input:        input,
		distance:     distance,
		bufParams:    bufParams,
		curveBuilder: NewOffsetCurveBuilder(pm, bufParams),
	}
}

// SetInvertOrientation sets whether input ring orientations are interpreted
// inverted. Used to correct inputs with known-inverted orientation.
func (b *CurveSetBuilder) SetInvertOrientation(invert bool) { b.invertOrientation = invert }

// Curves computes and returns the labeled offset curves.
func (b *CurveSetBuilder) Curves() []*noding.SegmentString {
	b.add(b.input)
	return b.curves
}

func (b *CurveSetBuilder) add(g geom.T) {
	if isEmptyGeom(g) {
		return
	}
	switch g := g.(type) {
	case *geom.Point:
		b.addPoint(xy.Point{X: g.X(), Y: g.Y()})
	case *geom.MultiPoint:
		flat := g.FlatCoords()
		for i := 0; i < len(flat); i += g.Stride() {
			b.addPoint(xy.Point{X: flat[i], Y: flat[i+1]})
		}
	case *geom.LineString:
		b.addLineString(lineCoords(g))
	case *geom.LinearRing:
		b.addLineString(lineCoords(g))
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			b.addLineString(lineCoords(g.LineString(i)))
		}
	case *geom.Polygon:
		b.addPolygon(g)
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			b.addPolygon(g.Polygon(i))
		}
	case *geom.GeometryCollection:
		for _, sub := range g.Geoms() {
			b.add(sub)
		}
	}
}

func (b *CurveSetBuilder) addPoint(p xy.Point) {
	// A zero or negative width buffer of a point is empty.
	if b.distance <= 0 {
		return
	}
	curve := b.curveBuilder.PointCurve(p, b.distance)
	b.addCurve(curve, geomgraph.LocExterior, geomgraph.LocInterior)
}

func (b *CurveSetBuilder) addLineString(coord []xy.Point) {
	if b.curveBuilder.IsLineOffsetEmpty(b.distance) {
		return
	}
	coord = xy.RemoveRepeatedPoints(coord)
	if len(coord) <= 1 {
		if len(coord) == 1 {
			b.addPoint(coord[0])
		}
		return
	}
	// Rings are generated as two continuous ring curves rather than one
	// line curve with end arcs: better linework and fewer noding issues
	// around almost-parallel end segments.
	if isRing(coord) && !b.bufParams.SingleSided {
		b.addRingBothSides(coord, b.distance)
		return
	}
	curve := b.curveBuilder.LineCurve(coord, b.distance)
	b.addCurve(curve, geomgraph.LocExterior, geomgraph.LocInterior)
}

func (b *CurveSetBuilder) addRingBothSides(coord []xy.Point, distance float64) {
	b.addRingSide(coord, distance, geomgraph.PosLeft, geomgraph.LocExterior, geomgraph.LocInterior)
	b.addRingSide(coord, distance, geomgraph.PosRight, geomgraph.LocInterior, geomgraph.LocExterior)
}

func (b *CurveSetBuilder) addPolygon(p *geom.Polygon) {
	offsetDistance := b.distance
	offsetSide := geomgraph.PosLeft
	if b.distance < 0 {
		offsetDistance = -b.distance
		offsetSide = geomgraph.PosRight
	}

	shellCoord := xy.RemoveRepeatedPoints(ringCoordsOf(p, 0))

	// A negative buffer erodes from the shell inward; if the erosion
	// swallows the whole polygon there is nothing to generate.
	if b.distance < 0 && isErodedCompletely(shellCoord, b.distance) {
		return
	}
	if b.distance <= 0 && len(shellCoord) < 3 {
		return
	}

	b.addRingSide(shellCoord, offsetDistance, offsetSide,
		geomgraph.LocExterior, geomgraph.LocInterior)

	for i := 1; i < p.NumLinearRings(); i++ {
		holeCoord := xy.RemoveRepeatedPoints(ringCoordsOf(p, i))

		// A positive buffer may close a hole completely.
		if b.distance > 0 && isErodedCompletely(holeCoord, -b.distance) {
			continue
		}
		// Holes are labeled opposite to the shell.
		b.addRingSide(holeCoord, offsetDistance, offsetSide.Opposite(),
			geomgraph.LocInterior, geomgraph.LocExterior)
	}
}

func (b *CurveSetBuilder) addRingSide(coord []xy.Point, offsetDistance float64, side geomgraph.Position, cwLeftLoc, cwRightLoc geomgraph.Location) {
	// A zero-width offset of a degenerate ring disappears from the output.
	if offsetDistance == 0 && len(coord) < 4 {
		return
	}
	leftLoc := cwLeftLoc
	rightLoc := cwRightLoc
	if len(coord) >= 4 && b.isRingCCW(coord) {
		leftLoc = cwRightLoc
		rightLoc = cwLeftLoc
		side = side.Opposite()
	}
	curve := b.curveBuilder.RingCurve(coord, side, offsetDistance)

	// If the offset curve has inverted completely it would introduce an
	// artifact ring in the result; skip it.
	if isRingCurveInverted(coord, offsetDistance, curve) {
		return
	}
	b.addCurve(curve, leftLoc, rightLoc)
}

func (b *CurveSetBuilder) isRingCCW(coord []xy.Point) bool {
	isCCW := xy.IsCCW(coord)
	if b.invertOrientation {
		return !isCCW
	}
	return isCCW
}

func (b *CurveSetBuilder) addCurve(coord []xy.Point, leftLoc, rightLoc geomgraph.Location) {
	if len(coord) < 2 {
		return
	}
	label := geomgraph.NewLabel(0, geomgraph.LocBoundary, leftLoc, rightLoc)
	b.curves = append(b.curves, noding.NewSegmentString(coord, label))
}

func isRing(coord []xy.Point) bool {
	return len(coord) >= 4 && coord[0] == coord[len(coord)-1]
}

// isErodedCompletely reports whether a ring is completely consumed by a
// negative buffer of the given distance.
func isErodedCompletely(ringCoord []xy.Point, bufferDistance float64) bool {
	// A degenerate ring has no area to erode.
	if len(ringCoord) < 4 {
		return bufferDistance < 0
	}
	if len(ringCoord) == 4 {
		return isTriangleErodedCompletely(ringCoord, bufferDistance)
	}
	env := xy.EnvelopeOf(ringCoord)
	envMinDimension := math.Min(env.Height(), env.Width())
	return bufferDistance < 0 && 2*math.Abs(bufferDistance) > envMinDimension
}

// isTriangleErodedCompletely tests a triangle via its incircle: the
// triangle erodes away iff the inradius is smaller than the erosion width.
func isTriangleErodedCompletely(triangleCoord []xy.Point, bufferDistance float64) bool {
	a, bb, c := triangleCoord[0], triangleCoord[1], triangleCoord[2]
	inCentre := triangleInCentre(a, bb, c)
	distToCentre := xy.DistancePointToSegment(inCentre, a, bb)
	return distToCentre < math.Abs(bufferDistance)
}

func triangleInCentre(a, b, c xy.Point) xy.Point {
	// The incentre is the weighted centroid with weights equal to the
	// opposite side lengths.
	la := b.Distance(c)
	lb := a.Distance(c)
	lc := a.Distance(b)
	sum := la + lb + lc
	return xy.Point{
		X: (la*a.X + lb*b.X + lc*c.X) / sum,
		Y: (la*a.Y + lb*b.Y + lc*c.Y) / sum,
	}
}

// isRingCurveInverted detects the pathological case of a small ring whose
// offset curve has turned completely inside out, which shows up as every
// curve vertex remaining closer to the input than the offset distance.
func isRingCurveInverted(inputPts []xy.Point, distance float64, curvePts []xy.Point) bool {
	if distance == 0 {
		return false
	}
	if len(inputPts) <= 3 {
		return false
	}
	if len(inputPts) >= maxInvertedRingSize {
		return false
	}
	if len(curvePts) > invertedCurveVertexFactor*len(inputPts) {
		return false
	}
	distTol := nearnessFactor * math.Abs(distance)
	maxDist := maxDistanceToLine(curvePts, inputPts)
	return maxDist < distTol
}

func maxDistanceToLine(pts, line []xy.Point) float64 {
	maxDist := 0.0
	for _, p := range pts {
		minDist := math.Inf(1)
		for i := 0; i+1 < len(line); i++ {
			if d := xy.DistancePointToSegment(p, line[i], line[i+1]); d < minDist {
				minDist = d
			}
		}
		if minDist > maxDist {
			maxDist = minDist
		}
	}
	return maxDist
}
