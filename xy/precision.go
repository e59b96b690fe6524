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

package xy

import "math"

// PrecisionModel defines how coordinates are rounded. A floating model keeps
// full IEEE-754 double precision; a fixed model snaps coordinates to a grid
// of spacing 1/scale.
type PrecisionModel struct {
	scale float64
}

// FloatingPrecision returns the full double-precision model.
func FloatingPrecision() *PrecisionModel { return &PrecisionModel{} }

// FixedPrecision returns a model snapping coordinates to a grid with the
// given scale factor (grid spacing 1/scale). Scale must be positive.
func FixedPrecision(scale float64) *PrecisionModel { return &PrecisionModel{scale: scale} }

// IsFloating reports whether the model performs no rounding.
func (pm *PrecisionModel) IsFloating() bool { return pm == nil || pm.scale == 0 }

// Scale returns the grid scale factor, or 0 for a floating model.
func (pm *PrecisionModel) Scale() float64 {
	if pm == nil {
		return 0
	}
	return pm.scale
}

// MakePrecise rounds p onto the model grid.
func (pm *PrecisionModel) MakePrecise(p Point) Point {
	if pm.IsFloating() {
		return p
	}
	return Point{
		X: math.Round(p.X*pm.scale) / pm.scale,
		Y: math.Round(p.Y*pm.scale) / pm.scale,
	}
}
