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

// Package linemerge sews a collection of fully noded linestrings into
// maximal linestrings: chains are extended through nodes of degree two and
// stop at higher-degree nodes and free ends.
package linemerge

import (
	"github.com/akhenakh/planar/xy"
)

type mergeEdge struct {
	pts  []xy.Point
	used bool
}

type endRef struct {
	e       *mergeEdge
	atStart bool
}

// Merger accumulates linestrings and merges them into maximal chains.
type Merger struct {
	edges []*mergeEdge
}

// Add contributes one linestring. Degenerate lines (fewer than 2 distinct
// points) are ignored.
func (m *Merger) Add(pts []xy.Point) {
	pts = xy.RemoveRepeatedPoints(pts)
	if len(pts) < 2 {
		return
	}
	m.edges = append(m.edges, &mergeEdge{pts: pts})
}

// MergedLines returns the maximal merged linestrings.
func (m *Merger) MergedLines() [][]xy.Point {
	adj := make(map[xy.Point][]endRef)
	for _, e := range m.edges {
		adj[e.pts[0]] = append(adj[e.pts[0]], endRef{e, true})
		adj[e.pts[len(e.pts)-1]] = append(adj[e.pts[len(e.pts)-1]], endRef{e, false})
	}

	var out [][]xy.Point
	for _, e := range m.edges {
		if e.used {
			continue
		}
		e.used = true
		line := append([]xy.Point(nil), e.pts...)

		// Grow at the tail, then at the head, joining only through
		// degree-2 nodes.
		line = growChain(line, adj)
		line = xy.Reverse(line)
		line = growChain(line, adj)
		line = xy.Reverse(line)

		out = append(out, line)
	}
	return out
}

func growChain(line []xy.Point, adj map[xy.Point][]endRef) []xy.Point {
	for {
		node := line[len(line)-1]
		refs := adj[node]
		if len(refs) != 2 {
			return line
		}
		var next *mergeEdge
		var nextAtStart bool
		for _, r := range refs {
			if !r.e.used {
				next = r.e
				nextAtStart = r.atStart
			}
		}
		if next == nil {
			return line
		}
		next.used = true
		pts := next.pts
		if !nextAtStart {
			pts = xy.Reverse(pts)
		}
		line = append(line, pts[1:]...)
	}
}
