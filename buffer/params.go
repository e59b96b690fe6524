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

// Package buffer computes buffers of planar geometries: the set of points
// within a given distance of the input, as a valid polygonal geometry, or
// the one-sided offset of a linestring.
package buffer

// EndCapStyle specifies how the ends of buffered lines are closed.
type EndCapStyle int

const (
	// CapRound closes line ends with a semicircle.
	CapRound EndCapStyle = iota
	// CapFlat closes line ends with a straight line at the endpoints.
	CapFlat
	// CapSquare closes line ends with a square projecting past the
	// endpoints.
	CapSquare
)

// JoinStyle specifies how outside corners between segments are filled.
type JoinStyle int

const (
	// JoinRound fills corners with a circular fillet.
	JoinRound JoinStyle = iota
	// JoinMitre extends corners to their intersection, limited by the
	// mitre limit.
	JoinMitre
	// JoinBevel cuts corners with a straight line.
	JoinBevel
)

// Params controls the behavior of a buffer operation. The zero value is not
// usable; use DefaultParams. Params are value objects: pipeline stages that
// need a variant copy the struct and override a field.
type Params struct {
	// EndCapStyle specifies the line end cap style.
	EndCapStyle EndCapStyle
	// JoinStyle specifies the corner join style.
	JoinStyle JoinStyle
	// MitreLimit bounds the ratio of mitre length to buffer distance
	// before a mitred join falls back to a bevel.
	MitreLimit float64
	// QuadrantSegments is the number of line segments used to approximate
	// a quarter circle in round joins and caps.
	QuadrantSegments int
	// SingleSided requests a buffer on only one side of the input line:
	// the left side for a positive distance, the right for a negative one.
	SingleSided bool
	// SimplifyFactor is the fraction of the buffer distance within which
	// the input may be simplified before offsetting.
	SimplifyFactor float64
}

// DefaultQuadrantSegments is the default round-join quantization.
const DefaultQuadrantSegments = 8

// DefaultMitreLimit is the default limit on mitre length.
const DefaultMitreLimit = 5.0

// DefaultSimplifyFactor is the default input simplification factor.
const DefaultSimplifyFactor = 0.01

// DefaultParams returns the default buffer parameters.
func DefaultParams() Params {
	return Params{
		EndCapStyle:      CapRound,
		JoinStyle:        JoinRound,
		MitreLimit:       DefaultMitreLimit,
		QuadrantSegments: DefaultQuadrantSegments,
		SimplifyFactor:   DefaultSimplifyFactor,
	}
}

func (p Params) quadrantSegments() int {
	if p.QuadrantSegments <= 0 {
		return DefaultQuadrantSegments
	}
	return p.QuadrantSegments
}

func (p Params) mitreLimit() float64 {
	if p.MitreLimit <= 0 {
		return DefaultMitreLimit
	}
	return p.MitreLimit
}

func (p Params) simplifyFactor() float64 {
	if p.SimplifyFactor < 0 {
		return 0
	}
	return p.SimplifyFactor
}
