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

package polygonize

import (
	"math"
	"testing"

	"github.com/akhenakh/planar/xy"
)

func ringArea(ring []xy.Point) float64 {
	return math.Abs(xy.SignedArea(ring) / 2)
}

func TestPolygonizeSquare(t *testing.T) {
	var p Polygonizer
	p.Add([]xy.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}})

	polys, err := p.Polygons()
	if err != nil {
		t.Fatal(err)
	}
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if got := ringArea(polys[0][0]); math.Abs(got-100) > 1e-9 {
		t.Errorf("area = %v, want 100", got)
	}
}

func TestPolygonizeIgnoresDangle(t *testing.T) {
	var p Polygonizer
	p.Add([]xy.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}})
	// A dangling line attached to the square.
	p.Add([]xy.Point{{10, 0}, {20, 0}})

	polys, err := p.Polygons()
	if err != nil {
		t.Fatal(err)
	}
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
}

func TestPolygonizeTwoFaces(t *testing.T) {
	// Two squares sharing an edge: three noded lines forming two faces.
	var p Polygonizer
	p.Add([]xy.Point{{10, 0}, {0, 0}, {0, 10}, {10, 10}})
	p.Add([]xy.Point{{10, 0}, {20, 0}, {20, 10}, {10, 10}})
	p.Add([]xy.Point{{10, 10}, {10, 0}})

	polys, err := p.Polygons()
	if err != nil {
		t.Fatal(err)
	}
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}
	for _, rings := range polys {
		if got := ringArea(rings[0]); math.Abs(got-100) > 1e-9 {
			t.Errorf("face area = %v, want 100", got)
		}
	}
}

func TestPolygonizeNestedHole(t *testing.T) {
	var p Polygonizer
	p.Add([]xy.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}})
	p.Add([]xy.Point{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}})

	polys, err := p.Polygons()
	if err != nil {
		t.Fatal(err)
	}
	// The outer face with the inner ring as hole, plus the inner face.
	var outer [][]xy.Point
	for _, rings := range polys {
		if ringArea(rings[0]) > 50 {
			outer = rings
		}
	}
	if outer == nil {
		t.Fatal("outer face missing")
	}
	if len(outer) != 2 {
		t.Fatalf("outer face has %d rings, want shell + hole", len(outer))
	}
}

func TestPolygonizeNothingFromOpenLines(t *testing.T) {
	var p Polygonizer
	p.Add([]xy.Point{{0, 0}, {10, 0}})
	p.Add([]xy.Point{{10, 0}, {10, 10}})

	polys, err := p.Polygons()
	if err != nil {
		t.Fatal(err)
	}
	if len(polys) != 0 {
		t.Fatalf("open linework should produce no polygons, got %d", len(polys))
	}
}
