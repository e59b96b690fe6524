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

// Package util holds the error kinds and the cooperative interrupt flag
// shared by the geometry pipeline packages.
package util

import (
	"github.com/cockroachdb/errors"
)

// Error kinds. Callers test for them with errors.Is; pipeline code attaches
// them with errors.Mark so wrapping context is preserved.
var (
	// ErrIllegalArgument reports an operation invoked on an unsupported
	// geometry type or with out-of-range parameters.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrTopology reports an inconsistent planar arrangement that the
	// topology code could not resolve.
	ErrTopology = errors.New("topology error")

	// ErrInterrupted reports that the cooperative interrupt flag fired.
	ErrInterrupted = errors.New("interrupted")

	// ErrGeometry is the generic wrapper for internal invariant violations.
	ErrGeometry = errors.New("geometry error")
)

// IllegalArgf creates an argument error.
func IllegalArgf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrIllegalArgument)
}

// Topologyf creates a topology error. The x/y arguments name the offending
// location, matching the convention of reporting a coordinate with every
// topology failure.
func Topologyf(x, y float64, format string, args ...interface{}) error {
	err := errors.Newf(format, args...)
	err = errors.WithDetailf(err, "at or near point (%v, %v)", x, y)
	return errors.Mark(err, ErrTopology)
}

// WrapGeom marks err as a generic geometry error, adding context.
func WrapGeom(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, msg), ErrGeometry)
}
