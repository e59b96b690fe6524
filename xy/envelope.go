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

// Envelope is an axis-aligned bounding rectangle. The zero value is the
// empty envelope.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
	nonEmpty               bool
}

// EmptyEnvelope returns an envelope containing nothing.
func EmptyEnvelope() Envelope { return Envelope{} }

// EnvelopeOf returns the bounding envelope of pts.
func EnvelopeOf(pts []Point) Envelope {
	var e Envelope
	for _, p := range pts {
		e.ExpandToInclude(p)
	}
	return e
}

// EnvelopeOfXY returns the bounding envelope of parallel coordinate spans,
// using the batch min/max kernel.
func EnvelopeOfXY(xs, ys []float64) Envelope {
	if len(xs) == 0 || len(ys) == 0 {
		return Envelope{}
	}
	minX, maxX := BaseBatchMinMax(xs)
	minY, maxY := BaseBatchMinMax(ys)
	return Envelope{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, nonEmpty: true}
}

// IsEmpty reports whether the envelope contains no points.
func (e Envelope) IsEmpty() bool { return !e.nonEmpty }

// ExpandToInclude grows the envelope to cover p.
func (e *Envelope) ExpandToInclude(p Point) {
	if !e.nonEmpty {
		e.MinX, e.MaxX = p.X, p.X
		e.MinY, e.MaxY = p.Y, p.Y
		e.nonEmpty = true
		return
	}
	e.MinX = math.Min(e.MinX, p.X)
	e.MaxX = math.Max(e.MaxX, p.X)
	e.MinY = math.Min(e.MinY, p.Y)
	e.MaxY = math.Max(e.MaxY, p.Y)
}

// ExpandToIncludeEnvelope grows the envelope to cover o.
func (e *Envelope) ExpandToIncludeEnvelope(o Envelope) {
	if o.IsEmpty() {
		return
	}
	e.ExpandToInclude(Point{o.MinX, o.MinY})
	e.ExpandToInclude(Point{o.MaxX, o.MaxY})
}

// ExpandBy grows the envelope by d on every side.
func (e *Envelope) ExpandBy(d float64) {
	if !e.nonEmpty {
		return
	}
	e.MinX -= d
	e.MinY -= d
	e.MaxX += d
	e.MaxY += d
}

// Intersects reports whether the two envelopes overlap.
func (e Envelope) Intersects(o Envelope) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}
	return e.MinX <= o.MaxX && e.MaxX >= o.MinX && e.MinY <= o.MaxY && e.MaxY >= o.MinY
}

// Contains reports whether p lies inside or on the envelope.
func (e Envelope) Contains(p Point) bool {
	return e.nonEmpty && p.X >= e.MinX && p.X <= e.MaxX && p.Y >= e.MinY && p.Y <= e.MaxY
}

// ContainsEnvelope reports whether o lies entirely within e.
func (e Envelope) ContainsEnvelope(o Envelope) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.MinX >= e.MinX && o.MaxX <= e.MaxX && o.MinY >= e.MinY && o.MaxY <= e.MaxY
}

// Width returns the x extent.
func (e Envelope) Width() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.MaxX - e.MinX
}

// Height returns the y extent.
func (e Envelope) Height() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.MaxY - e.MinY
}

// Diagonal returns the length of the envelope diagonal.
func (e Envelope) Diagonal() float64 {
	return math.Hypot(e.Width(), e.Height())
}
