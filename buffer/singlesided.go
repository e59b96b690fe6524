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

	"github.com/akhenakh/planar/linemerge"
	"github.com/akhenakh/planar/noding"
	"github.com/akhenakh/planar/overlay"
	"github.com/akhenakh/planar/polygonize"
	"github.com/akhenakh/planar/util"
	"github.com/akhenakh/planar/xy"
)

// BufferLineSingleSided returns the line offset to one side of a
// linestring by the given distance: the left side if leftSide is set, else
// the right side. The result is a linestring (or multi-linestring), not a
// polygon.
func (b *Builder) BufferLineSingleSided(g geom.T, distance float64, leftSide bool) (geom.T, error) {
	l, ok := g.(*geom.LineString)
	if !ok {
		return nil, util.IllegalArgf("single-sided line buffer accepts only linestrings, got %T", g)
	}

	// Nothing to do for a distance of zero.
	if distance == 0 {
		return geom.NewLineStringFlat(l.Layout(), append([]float64(nil), l.FlatCoords()...)), nil
	}
	if len(l.FlatCoords()) < 2*l.Stride() {
		return geom.NewLineString(geom.XY), nil
	}

	pm := b.workingPrecisionModel
	if pm == nil {
		pm = xy.FloatingPrecision()
	}

	// First, generate the two-sided buffer using a flat cap. Parameters
	// are value objects, so the override copies cheaply.
	modParams := b.bufParams
	modParams.EndCapStyle = CapFlat
	modParams.SingleSided = false

	tmpBB := NewBuilder(modParams)
	tmpBB.workingPrecisionModel = b.workingPrecisionModel
	buf, err := tmpBB.Buffer(l, distance)
	if err != nil {
		return nil, err
	}
	bufBoundary := boundaryLines(buf)

	// Then get the raw (unnoded) single-sided offset curve.
	curveBuilder := NewOffsetCurveBuilder(pm, modParams)
	inputPts := lineCoords(l)
	lineList := curveBuilder.SingleSidedLineCurve(inputPts, distance, leftSide, !leftSide)

	// Node the raw curves.
	curveList := make([]*noding.SegmentString, 0, len(lineList))
	for _, pts := range lineList {
		curveList = append(curveList, noding.NewSegmentString(pts, nil))
	}
	noder := b.noder(pm)
	noder.ComputeNodes(curveList)

	var offsetLines [][]xy.Point
	for _, ss := range noder.NodedSubstrings() {
		offsetLines = append(offsetLines, ss.Coordinates())
	}

	// Intersect with the buffer boundary using the snap-tolerant overlay:
	// the boundary may diverge from the raw offset curves where cap and
	// join curves introduced intersections.
	intersected := overlay.IntersectionLines(offsetLines, bufBoundary)

	// Merge the fragments into maximal lines.
	var merger linemerge.Merger
	for _, line := range intersected {
		merger.Add(line)
	}
	mergedLines := merger.MergedLines()

	startPoint := inputPts[0]
	endPoint := inputPts[len(inputPts)-1]
	inputLen := lineLength(inputPts)

	var resultLines [][]xy.Point
	for _, coords := range mergedLines {
		if trimmed, ok := trimCapArtifacts(coords, startPoint, endPoint, distance, inputLen); ok {
			resultLines = append(resultLines, trimmed)
		}
	}

	switch len(resultLines) {
	case 0:
		return geom.NewLineString(geom.XY), nil
	case 1:
		return newLineString(resultLines[0]), nil
	default:
		return newMultiLineString(resultLines), nil
	}
}

// trimCapArtifacts removes leftover flat-cap fragments from the ends of a
// merged offset line. Cap remnants are short segments lying at distance
// from the input endpoints; legitimate offset geometry is either longer or
// farther away.
func trimCapArtifacts(coords []xy.Point, startPoint, endPoint xy.Point, distance, inputLen float64) ([]xy.Point, bool) {
	// Use 98% of the buffer width as the point-distance requirement, so a
	// point at distance +/- epsilon is caught. At large widths that
	// epsilon grows, so the input length contributes a tighter bound.
	ptDistAllowance := math.Max(distance-inputLen*0.1, distance*0.98)
	// Use 102% of the buffer width as the segment-length requirement, so
	// segments of length distance +/- epsilon are removed.
	segLengthAllowance := 1.02 * distance

	front := 0
	back := len(coords) - 1
	sz := back - front + 1

	// Clean up the front of the list: drop vertices inside the cap
	// region around the start point, then around the end point.
	for sz > 1 && coords[front].Distance(startPoint) < ptDistAllowance {
		segLength := coords[front].Distance(coords[front+1])
		if segLength > segLengthAllowance {
			break
		}
		front++
		sz--
	}
	for sz > 1 && coords[front].Distance(endPoint) < ptDistAllowance {
		segLength := coords[front].Distance(coords[front+1])
		if segLength > segLengthAllowance {
			break
		}
		front++
		sz--
	}
	// Clean up the back of the list.
	for sz > 1 && coords[back].Distance(startPoint) < ptDistAllowance {
		segLength := coords[back].Distance(coords[back-1])
		if segLength > segLengthAllowance {
			break
		}
		back--
		sz--
	}
	for sz > 1 && coords[back].Distance(endPoint) < ptDistAllowance {
		segLength := coords[back].Distance(coords[back-1])
		if segLength > segLengthAllowance {
			break
		}
		back--
		sz--
	}

	if sz <= 1 {
		return nil, false
	}
	return coords[front : back+1], true
}

func lineLength(pts []xy.Point) float64 {
	var length float64
	for i := 0; i+1 < len(pts); i++ {
		length += pts[i].Distance(pts[i+1])
	}
	return length
}

// cleanupSingleSidedArtifacts post-processes a single-sided buffer of an
// areal input: the two-sided machinery leaves a sliver on the unbuffered
// side, which is removed by polygonizing the union of the input and result
// boundaries and keeping only the largest face.
func cleanupSingleSidedArtifacts(input, result geom.T) (geom.T, error) {
	if isEmptyGeom(result) {
		return result, nil
	}

	inputLinework := boundaryLines(input)
	resultBoundary := boundaryLines(result)

	noded := overlay.UnionLines(inputLinework, resultBoundary)

	var plgnzr polygonize.Polygonizer
	for _, line := range noded {
		plgnzr.Add(line)
	}
	polys, err := plgnzr.Polygons()
	if err != nil {
		return nil, err
	}
	if len(polys) <= 1 {
		return result, nil
	}

	best := -1
	maxArea := 0.0
	for i, rings := range polys {
		area := math.Abs(xy.SignedArea(rings[0]) / 2)
		if area > maxArea {
			maxArea = area
			best = i
		}
	}
	if best < 0 {
		return result, nil
	}
	return newPolygon(polys[best]), nil
}
