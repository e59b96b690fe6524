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

	"github.com/akhenakh/planar/linemerge"
	"github.com/akhenakh/planar/overlay"
	"github.com/akhenakh/planar/xy"
)

// unaryUnion unions a list of buffer results. Polygonal parts are unioned
// by buffering their collection at distance zero, which runs them through
// the same depth machinery that defines the buffer interior. Linear parts
// are noded and merged.
func unaryUnion(parts []geom.T) (geom.T, error) {
	var polys []geom.T
	var lines []geom.T
	for _, p := range parts {
		if p == nil || isEmptyGeom(p) {
			continue
		}
		switch p.(type) {
		case *geom.Polygon, *geom.MultiPolygon:
			polys = append(polys, p)
		default:
			lines = append(lines, p)
		}
	}

	var polyResult geom.T
	switch {
	case len(polys) == 1:
		polyResult = polys[0]
	case len(polys) > 1:
		coll := geom.NewGeometryCollection()
		for _, p := range polys {
			coll.MustPush(p)
		}
		zeroBuf := NewBuilder(DefaultParams())
		union, err := zeroBuf.Buffer(coll, 0)
		if err != nil {
			return nil, err
		}
		polyResult = union
	}

	var lineResult geom.T
	if len(lines) > 0 {
		lineResult = unionLineParts(lines)
	}

	switch {
	case polyResult != nil && lineResult == nil:
		return polyResult, nil
	case polyResult == nil && lineResult != nil:
		return lineResult, nil
	case polyResult == nil && lineResult == nil:
		return emptyPolygon(), nil
	}
	coll := geom.NewGeometryCollection()
	coll.MustPush(polyResult)
	coll.MustPush(lineResult)
	return coll, nil
}

// unionLineParts nodes the linework of the parts together and merges it
// into maximal linestrings.
func unionLineParts(lines []geom.T) geom.T {
	var allLines [][]xy.Point
	for _, g := range lines {
		allLines = append(allLines, boundaryLines(g)...)
	}
	noded := overlay.UnionLines(allLines, nil)

	var merger linemerge.Merger
	for _, l := range noded {
		merger.Add(l)
	}
	mergedLines := merger.MergedLines()

	switch len(mergedLines) {
	case 0:
		return geom.NewLineString(geom.XY)
	case 1:
		return newLineString(mergedLines[0])
	default:
		return newMultiLineString(mergedLines)
	}
}
