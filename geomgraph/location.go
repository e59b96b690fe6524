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

// Package geomgraph implements the labeled planar topology graph used to
// reconstruct polygons from noded linework: edges annotated with side
// locations, nodes with angle-ordered directed edge stars, and edge rings.
package geomgraph

// Location identifies the position of a point relative to a geometry.
type Location int8

const (
	// LocNone means the location is unknown or unset.
	LocNone Location = iota - 1
	// LocInterior is the interior of a geometry.
	LocInterior
	// LocBoundary is the boundary of a geometry.
	LocBoundary
	// LocExterior is the exterior of a geometry.
	LocExterior
)

func (l Location) String() string {
	switch l {
	case LocInterior:
		return "i"
	case LocBoundary:
		return "b"
	case LocExterior:
		return "e"
	}
	return "-"
}

// Position identifies a side of an edge, viewed along its direction.
type Position int

const (
	// PosOn is on the edge itself.
	PosOn Position = 0
	// PosLeft is the left side of the edge.
	PosLeft Position = 1
	// PosRight is the right side of the edge.
	PosRight Position = 2
)

// Opposite returns the opposite side. PosOn maps to itself.
func (p Position) Opposite() Position {
	switch p {
	case PosLeft:
		return PosRight
	case PosRight:
		return PosLeft
	}
	return p
}
