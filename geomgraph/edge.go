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
	"github.com/akhenakh/planar/xy"
)

// Edge is an undirected labeled polyline in the planar graph. It owns its
// coordinate sequence. The depth delta accumulates the contributions of all
// identical input edges merged into this one.
type Edge struct {
	pts        []xy.Point
	label      *Label
	depthDelta int
	env        xy.Envelope
}

// NewEdge creates an edge taking ownership of pts. The label is stored as
// given (callers pass a copy if they retain theirs).
func NewEdge(pts []xy.Point, label *Label) *Edge {
	return &Edge{
		pts:   pts,
		label: label,
		env:   xy.EnvelopeOf(pts),
	}
}

// Coordinates returns the edge's coordinate sequence. The slice is owned by
// the edge and must not be modified.
func (e *Edge) Coordinates() []xy.Point { return e.pts }

// Coordinate returns the i'th coordinate.
func (e *Edge) Coordinate(i int) xy.Point { return e.pts[i] }

// NumPoints returns the number of coordinates.
func (e *Edge) NumPoints() int { return len(e.pts) }

// Label returns the edge's label.
func (e *Edge) Label() *Label { return e.label }

// Envelope returns the edge's bounding envelope.
func (e *Edge) Envelope() xy.Envelope { return e.env }

// DepthDelta returns the accumulated depth delta.
func (e *Edge) DepthDelta() int { return e.depthDelta }

// SetDepthDelta sets the accumulated depth delta.
func (e *Edge) SetDepthDelta(d int) { e.depthDelta = d }

// IsPointwiseEqual reports whether o has the same coordinates in the same
// order.
func (e *Edge) IsPointwiseEqual(o *Edge) bool {
	if len(e.pts) != len(o.pts) {
		return false
	}
	for i, p := range e.pts {
		if p != o.pts[i] {
			return false
		}
	}
	return true
}

// EqualsAnyDirection reports whether o has the same coordinates in either
// direction.
func (e *Edge) EqualsAnyDirection(o *Edge) bool {
	if e.IsPointwiseEqual(o) {
		return true
	}
	n := len(e.pts)
	if n != len(o.pts) {
		return false
	}
	for i, p := range e.pts {
		if p != o.pts[n-1-i] {
			return false
		}
	}
	return true
}
