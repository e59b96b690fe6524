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
)

// Buffer returns the buffer of g at the given signed distance, using the
// default parameters: the set of all points within the distance of g for a
// positive distance, or the erosion of an areal g for a negative one.
func Buffer(g geom.T, distance float64) (geom.T, error) {
	return BufferWithParams(g, distance, DefaultParams())
}

// BufferWithParams returns the buffer of g at the given signed distance
// with explicit parameters.
func BufferWithParams(g geom.T, distance float64, params Params) (geom.T, error) {
	return NewBuilder(params).Buffer(g, distance)
}

// BufferLineSingleSided returns the single-sided offset line of a
// linestring: the line at the given distance on the left (or right) side of
// g, with cap artifacts trimmed.
func BufferLineSingleSided(g geom.T, distance float64, leftSide bool) (geom.T, error) {
	return NewBuilder(DefaultParams()).BufferLineSingleSided(g, distance, leftSide)
}
