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
	geom "github.com/twpayne/go-geom"

	"github.com/akhenakh/planar/xy"
)

// coordsFromFlat extracts the x/y coordinates of a flat coordinate span.
// Z and M ordinates are dropped: buffering is defined in the x/y plane.
func coordsFromFlat(flat []float64, stride, start, end int) []xy.Point {
	pts := make([]xy.Point, 0, (end-start)/stride)
	for i := start; i < end; i += stride {
		pts = append(pts, xy.Point{X: flat[i], Y: flat[i+1]})
	}
	return pts
}

// lineCoords returns the x/y coordinates of a single-run geometry.
func lineCoords(g geom.T) []xy.Point {
	return coordsFromFlat(g.FlatCoords(), g.Stride(), 0, len(g.FlatCoords()))
}

func ringCoordsOf(p *geom.Polygon, i int) []xy.Point {
	r := p.LinearRing(i)
	return coordsFromFlat(r.FlatCoords(), r.Stride(), 0, len(r.FlatCoords()))
}

func flatCoords(pts []xy.Point) []float64 {
	flat := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}

// newLineString builds an XY linestring from pts.
func newLineString(pts []xy.Point) *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, flatCoords(pts))
}

// newMultiLineString builds an XY multi-linestring from the given lines.
func newMultiLineString(lines [][]xy.Point) *geom.MultiLineString {
	var flat []float64
	var ends []int
	for _, l := range lines {
		flat = append(flat, flatCoords(l)...)
		ends = append(ends, len(flat))
	}
	return geom.NewMultiLineStringFlat(geom.XY, flat, ends)
}

// newPolygon builds an XY polygon from a shell and holes, closing any
// unclosed ring.
func newPolygon(rings [][]xy.Point) *geom.Polygon {
	var flat []float64
	var ends []int
	for _, r := range rings {
		r = closeRing(r)
		flat = append(flat, flatCoords(r)...)
		ends = append(ends, len(flat))
	}
	return geom.NewPolygonFlat(geom.XY, flat, ends)
}

// newMultiPolygon builds an XY multipolygon from per-polygon ring lists.
func newMultiPolygon(polys [][][]xy.Point) *geom.MultiPolygon {
	var flat []float64
	endss := make([][]int, 0, len(polys))
	for _, rings := range polys {
		var ends []int
		for _, r := range rings {
			r = closeRing(r)
			flat = append(flat, flatCoords(r)...)
			ends = append(ends, len(flat))
		}
		endss = append(endss, ends)
	}
	return geom.NewMultiPolygonFlat(geom.XY, flat, endss)
}

func closeRing(r []xy.Point) []xy.Point {
	if len(r) > 0 && r[0] != r[len(r)-1] {
		return append(append([]xy.Point(nil), r...), r[0])
	}
	return r
}

// isEmptyGeom reports whether g has no coordinates at all.
func isEmptyGeom(g geom.T) bool {
	if gc, ok := g.(*geom.GeometryCollection); ok {
		for _, sub := range gc.Geoms() {
			if !isEmptyGeom(sub) {
				return false
			}
		}
		return true
	}
	return len(g.FlatCoords()) == 0
}

// boundaryLines returns the linework of a geometry: linestrings unchanged,
// polygon rings as closed lines.
func boundaryLines(g geom.T) [][]xy.Point {
	switch g := g.(type) {
	case *geom.LineString:
		return [][]xy.Point{lineCoords(g)}
	case *geom.LinearRing:
		return [][]xy.Point{lineCoords(g)}
	case *geom.MultiLineString:
		var out [][]xy.Point
		for i := 0; i < g.NumLineStrings(); i++ {
			out = append(out, lineCoords(g.LineString(i)))
		}
		return out
	case *geom.Polygon:
		var out [][]xy.Point
		for i := 0; i < g.NumLinearRings(); i++ {
			out = append(out, ringCoordsOf(g, i))
		}
		return out
	case *geom.MultiPolygon:
		var out [][]xy.Point
		for i := 0; i < g.NumPolygons(); i++ {
			out = append(out, boundaryLines(g.Polygon(i))...)
		}
		return out
	case *geom.GeometryCollection:
		var out [][]xy.Point
		for _, sub := range g.Geoms() {
			out = append(out, boundaryLines(sub)...)
		}
		return out
	}
	return nil
}
