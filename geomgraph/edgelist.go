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

package geomgraph

import (
	"encoding/binary"
	"math"

	"github.com/akhenakh/planar/xy"
)

// EdgeList is an append-only collection of edges with fast lookup of a
// geometrically equal edge (same vertices, either direction).
type EdgeList struct {
	edges []*Edge
	index map[string]*Edge
}

// NewEdgeList creates an empty edge list.
func NewEdgeList() *EdgeList {
	return &EdgeList{index: make(map[string]*Edge)}
}

// Add appends e to the list.
func (l *EdgeList) Add(e *Edge) {
	l.edges = append(l.edges, e)
	l.index[orientedKey(e.Coordinates())] = e
}

// Edges returns the edges in insertion order.
func (l *EdgeList) Edges() []*Edge { return l.edges }

// FindEqualEdge returns an edge with the same coordinates as e (in either
// direction), or nil.
func (l *EdgeList) FindEqualEdge(e *Edge) *Edge {
	return l.index[orientedKey(e.Coordinates())]
}

// orientedKey serializes pts in a canonical orientation, so that an edge and
// its reverse map to the same key.
func orientedKey(pts []xy.Point) string {
	fwd := true
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		if c := comparePoints(pts[i], pts[j]); c != 0 {
			fwd = c < 0
			break
		}
	}
	buf := make([]byte, 0, 16*len(pts))
	var scratch [8]byte
	appendFloat := func(v float64) {
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v))
		buf = append(buf, scratch[:]...)
	}
	if fwd {
		for _, p := range pts {
			appendFloat(p.X)
			appendFloat(p.Y)
		}
	} else {
		for i := len(pts) - 1; i >= 0; i-- {
			appendFloat(pts[i].X)
			appendFloat(pts[i].Y)
		}
	}
	return string(buf)
}

func comparePoints(a, b xy.Point) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}
