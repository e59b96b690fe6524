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
	"github.com/akhenakh/planar/xy"
)

// OffsetCurveBuilder computes the raw offset curve for geometry components
// at a given distance. Raw curves are unnoded and may self-intersect; the
// buffer pipeline nodes them afterwards.
type OffsetCurveBuilder struct {
	pm        *xy.PrecisionModel
	bufParams Params
	distance  float64
}

// NewOffsetCurveBuilder creates a builder for the given precision model and
// parameters.
func NewOffsetCurveBuilder(pm *xy.PrecisionModel, bufParams Params) *OffsetCurveBuilder {
	return &OffsetCurveBuilder{pm: pm, bufParams: bufParams}
}

// IsLineOffsetEmpty reports whether a line buffer at the given distance is
// necessarily empty: zero width, or negative width without single-siding.
func (b *OffsetCurveBuilder) IsLineOffsetEmpty(distance float64) bool {
	if distance == 0 {
		return true
	}
	if distance < 0 && !b.bufParams.SingleSided {
		return true
	}
	return false
}

func (b *OffsetCurveBuilder) simplifyTolerance(bufDistance float64) float64 {
	return bufDistance * b.bufParams.simplifyFactor()
}

func (b *OffsetCurveBuilder) segGen(distance float64) *offsetSegmentGenerator {
	return newOffsetSegmentGenerator(b.pm, b.bufParams, distance)
}

// PointCurve returns the closed curve around a single point, or nil for a
// non-positive distance.
func (b *OffsetCurveBuilder) PointCurve(p xy.Point, distance float64) []xy.Point {
	if distance <= 0 {
		return nil
	}
	b.distance = distance
	segGen := b.segGen(distance)
	switch b.bufParams.EndCapStyle {
	case CapRound:
		segGen.createCircle(p)
	case CapSquare:
		segGen.createSquare(p)
	default:
		// A flat cap leaves a point curve empty.
	}
	return segGen.coordinates()
}

// LineCurve returns the closed curve at the given signed distance around a
// line, or nil if the buffer is empty.
func (b *OffsetCurveBuilder) LineCurve(inputPts []xy.Point, distance float64) []xy.Point {
	b.distance = distance
	if b.IsLineOffsetEmpty(distance) {
		return nil
	}
	posDistance := math.Abs(distance)
	segGen := b.segGen(posDistance)
	if len(inputPts) <= 1 {
		return b.PointCurve(inputPts[0], posDistance)
	}
	if b.bufParams.SingleSided {
		isRightSide := distance < 0
		b.computeSingleSidedBufferCurve(inputPts, isRightSide, segGen)
	} else {
		b.computeLineBufferCurve(inputPts, segGen)
	}
	return segGen.coordinates()
}

// RingCurve returns the curve at the given distance on one side of a ring.
// A zero distance returns a copy of the ring itself.
func (b *OffsetCurveBuilder) RingCurve(inputPts []xy.Point, side geomgraph.Position, distance float64) []xy.Point {
	b.distance = distance
	if len(inputPts) <= 2 {
		return b.LineCurve(inputPts, distance)
	}
	if distance == 0 {
		return append([]xy.Point(nil), inputPts...)
	}
	segGen := b.segGen(distance)
	b.computeRingBufferCurve(inputPts, side, segGen)
	return segGen.coordinates()
}

// SingleSidedLineCurve returns the raw offset curve on the requested
// side(s) of a line, without end caps, as an open linestring.
func (b *OffsetCurveBuilder) SingleSidedLineCurve(inputPts []xy.Point, distance float64, leftSide, rightSide bool) [][]xy.Point {
	if distance == 0 || len(inputPts) < 2 {
		return nil
	}
	distTol := b.simplifyTolerance(distance)
	segGen := b.segGen(distance)

	if leftSide {
		simp1 := simplifyInputLine(inputPts, distTol)
		n1 := len(simp1) - 1
		segGen.initSideSegments(simp1[0], simp1[1], geomgraph.PosLeft)
		segGen.addFirstSegment()
		for i := 2; i <= n1; i++ {
			segGen.addNextSegment(simp1[i], true)
		}
		segGen.addLastSegment()
	}
	if rightSide {
		simp2 := simplifyInputLine(inputPts, -distTol)
		n2 := len(simp2) - 1
		segGen.initSideSegments(simp2[n2], simp2[n2-1], geomgraph.PosLeft)
		segGen.addFirstSegment()
		for i := n2 - 2; i >= 0; i-- {
			segGen.addNextSegment(simp2[i], true)
		}
		segGen.addLastSegment()
	}

	pts := segGen.coordinates()
	if len(pts) < 2 {
		return nil
	}
	return [][]xy.Point{pts}
}

func (b *OffsetCurveBuilder) computeLineBufferCurve(inputPts []xy.Point, segGen *offsetSegmentGenerator) {
	distTol := b.simplifyTolerance(b.distance)

	// Compute points for the left side of the line.
	simp1 := simplifyInputLine(inputPts, distTol)
	n1 := len(simp1) - 1
	segGen.initSideSegments(simp1[0], simp1[1], geomgraph.PosLeft)
	for i := 2; i <= n1; i++ {
		segGen.addNextSegment(simp1[i], true)
	}
	segGen.addLastSegment()
	segGen.addLineEndCap(simp1[n1-1], simp1[n1])

	// Compute points for the right side of the line.
	simp2 := simplifyInputLine(inputPts, -distTol)
	n2 := len(simp2) - 1
	segGen.initSideSegments(simp2[n2], simp2[n2-1], geomgraph.PosLeft)
	for i := n2 - 2; i >= 0; i-- {
		segGen.addNextSegment(simp2[i], true)
	}
	segGen.addLastSegment()
	segGen.addLineEndCap(simp2[1], simp2[0])

	segGen.closeRing()
}

func (b *OffsetCurveBuilder) computeSingleSidedBufferCurve(inputPts []xy.Point, isRightSide bool, segGen *offsetSegmentGenerator) {
	distTol := b.simplifyTolerance(math.Abs(b.distance))

	if isRightSide {
		// Add the original line along the opposite (left) side.
		segGen.addSegments(inputPts, true)

		simp2 := simplifyInputLine(inputPts, -distTol)
		n2 := len(simp2) - 1
		segGen.initSideSegments(simp2[n2], simp2[n2-1], geomgraph.PosLeft)
		segGen.addFirstSegment()
		for i := n2 - 2; i >= 0; i-- {
			segGen.addNextSegment(simp2[i], true)
		}
	} else {
		segGen.addSegments(inputPts, false)

		simp1 := simplifyInputLine(inputPts, distTol)
		n1 := len(simp1) - 1
		segGen.initSideSegments(simp1[0], simp1[1], geomgraph.PosLeft)
		segGen.addFirstSegment()
		for i := 2; i <= n1; i++ {
			segGen.addNextSegment(simp1[i], true)
		}
	}
	segGen.addLastSegment()
	segGen.closeRing()
}

func (b *OffsetCurveBuilder) computeRingBufferCurve(inputPts []xy.Point, side geomgraph.Position, segGen *offsetSegmentGenerator) {
	distTol := b.simplifyTolerance(b.distance)
	if side == geomgraph.PosRight {
		distTol = -distTol
	}
	simp := simplifyInputLine(inputPts, distTol)
	n := len(simp) - 1

	segGen.initSideSegments(simp[n-1], simp[0], side)
	for i := 1; i <= n; i++ {
		addStartPoint := i != 1
		segGen.addNextSegment(simp[i], addStartPoint)
	}
	segGen.closeRing()
}
