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

package noding

import (
	"sort"

	"github.com/akhenakh/planar/xy"
)

// Noder computes all self-intersections of a collection of segment strings
// and exposes the fully noded substrings.
type Noder interface {
	ComputeNodes(segStrings []*SegmentString)
	NodedSubstrings() []*SegmentString
}

// MCIndexNoder nodes segment strings using monotone chains swept along the
// x axis. It is fast but relies on the robustness of the underlying
// intersector; it performs no snap-rounding of its own.
type MCIndexNoder struct {
	si     SegmentIntersector
	inputs []*SegmentString
}

// NewMCIndexNoder creates a noder delivering candidate segment pairs to si.
func NewMCIndexNoder(si SegmentIntersector) *MCIndexNoder {
	return &MCIndexNoder{si: si}
}

// monotoneChain is a run of segments of one string whose direction vectors
// share a quadrant. Chains cannot self-intersect, so only inter-chain
// overlaps need testing.
type monotoneChain struct {
	ss         *SegmentString
	start, end int // vertex index range [start, end]
	env        xy.Envelope
}

// ComputeNodes implements Noder.
func (n *MCIndexNoder) ComputeNodes(segStrings []*SegmentString) {
	n.inputs = segStrings

	var chains []monotoneChain
	for _, ss := range segStrings {
		chains = append(chains, chainsOf(ss)...)
	}

	// Sweep chains in order of increasing MinX, testing each overlapping
	// envelope pair once.
	sort.Slice(chains, func(i, j int) bool { return chains[i].env.MinX < chains[j].env.MinX })
	for i := range chains {
		ci := &chains[i]
		for j := i + 1; j < len(chains); j++ {
			cj := &chains[j]
			if cj.env.MinX > ci.env.MaxX {
				break
			}
			if !ci.env.Intersects(cj.env) {
				continue
			}
			n.computeOverlaps(ci, cj)
		}
	}
}

// NodedSubstrings implements Noder.
func (n *MCIndexNoder) NodedSubstrings() []*SegmentString {
	var out []*SegmentString
	for _, ss := range n.inputs {
		out = ss.splitEdges(out)
	}
	return out
}

// NodedSubstringsOf returns the noded substrings of one input string.
func (n *MCIndexNoder) NodedSubstringsOf(ss *SegmentString) []*SegmentString {
	return ss.splitEdges(nil)
}

// chainsOf splits a segment string into monotone chains, computing each
// chain envelope with the batch min/max kernel over the string's coordinate
// spans.
func chainsOf(ss *SegmentString) []monotoneChain {
	pts := ss.Coordinates()
	if len(pts) < 2 {
		return nil
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}

	var chains []monotoneChain
	chainStart := 0
	for chainStart < len(pts)-1 {
		chainEnd := findChainEnd(pts, chainStart)
		chains = append(chains, monotoneChain{
			ss:    ss,
			start: chainStart,
			end:   chainEnd,
			env:   xy.EnvelopeOfXY(xs[chainStart:chainEnd+1], ys[chainStart:chainEnd+1]),
		})
		chainStart = chainEnd
	}
	return chains
}

func findChainEnd(pts []xy.Point, start int) int {
	// Skip any zero-length opening segments.
	safeStart := start
	for safeStart < len(pts)-1 && pts[safeStart] == pts[safeStart+1] {
		safeStart++
	}
	if safeStart >= len(pts)-1 {
		return len(pts) - 1
	}
	chainQuad := xy.Quadrant(pts[safeStart+1].X-pts[safeStart].X, pts[safeStart+1].Y-pts[safeStart].Y)
	last := start + 1
	for last < len(pts) {
		if pts[last-1] != pts[last] {
			quad := xy.Quadrant(pts[last].X-pts[last-1].X, pts[last].Y-pts[last-1].Y)
			if quad != chainQuad {
				break
			}
		}
		last++
	}
	return last - 1
}

func (n *MCIndexNoder) computeOverlaps(c0, c1 *monotoneChain) {
	if c0.ss == c1.ss && c0.start == c1.start {
		return
	}
	for i := c0.start; i < c0.end; i++ {
		e0 := xy.EnvelopeOf(c0.ss.pts[i : i+2])
		for j := c1.start; j < c1.end; j++ {
			e1 := xy.EnvelopeOf(c1.ss.pts[j : j+2])
			if !e0.Intersects(e1) {
				continue
			}
			n.si.ProcessIntersections(c0.ss, i, c1.ss, j)
		}
	}
}
