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

// Package polygonize extracts the polygonal faces formed by a collection
// of fully noded linework.
package polygonize

import (
	"github.com/akhenakh/planar/geomgraph"
	"github.com/akhenakh/planar/xy"
)

// Polygonizer accumulates noded linework and forms the polygons it
// encloses. Dangling lines and bridges are discarded.
type Polygonizer struct {
	lines [][]xy.Point
}

// Add contributes one line of the noded linework.
func (p *Polygonizer) Add(line []xy.Point) {
	line = xy.RemoveRepeatedPoints(line)
	if len(line) < 2 {
		return
	}
	p.lines = append(p.lines, line)
}

// Polygons returns the faces as ring lists (shell first, then holes).
func (p *Polygonizer) Polygons() ([][][]xy.Point, error) {
	lines := removeDangles(p.lines)

	// Bridges (cut edges) connect a face boundary to itself; they show up
	// as an edge whose two directions land in the same ring. Each pass
	// removes the detected bridges, freeing new dangles.
	for len(lines) > 0 {
		shells, holes, cutLines, err := buildRings(lines)
		if err != nil {
			return nil, err
		}
		if len(cutLines) == 0 {
			return assemblePolygons(shells, holes), nil
		}
		lines = removeDangles(removeLines(lines, cutLines))
	}
	return nil, nil
}

// removeDangles strips lines with a free endpoint until none remain.
func removeDangles(lines [][]xy.Point) [][]xy.Point {
	for {
		degree := make(map[xy.Point]int)
		for _, l := range lines {
			degree[l[0]]++
			degree[l[len(l)-1]]++
		}
		var kept [][]xy.Point
		for _, l := range lines {
			if l[0] != l[len(l)-1] && (degree[l[0]] == 1 || degree[l[len(l)-1]] == 1) {
				continue
			}
			kept = append(kept, l)
		}
		if len(kept) == len(lines) {
			return kept
		}
		lines = kept
	}
}

func removeLines(lines [][]xy.Point, remove map[int]bool) [][]xy.Point {
	var kept [][]xy.Point
	for i, l := range lines {
		if !remove[i] {
			kept = append(kept, l)
		}
	}
	return kept
}

// buildRings builds the edge rings of the linework. It returns the shell
// and hole rings, plus the indexes of detected cut lines (whose both sides
// bound the same ring).
func buildRings(lines [][]xy.Point) (shells, holes []*geomgraph.EdgeRing, cutLines map[int]bool, err error) {
	graph := geomgraph.NewPlanarGraph()
	edges := make([]*geomgraph.Edge, 0, len(lines))
	edgeIndex := make(map[*geomgraph.Edge]int, len(lines))
	for i, l := range lines {
		label := geomgraph.NewLabel(0, geomgraph.LocBoundary, geomgraph.LocInterior, geomgraph.LocExterior)
		e := geomgraph.NewEdge(append([]xy.Point(nil), l...), label)
		edges = append(edges, e)
		edgeIndex[e] = i
	}
	graph.AddEdges(edges)

	var dirEdges []*geomgraph.DirectedEdge
	for _, n := range graph.Nodes() {
		for _, de := range n.Edges().Edges() {
			de.SetInResult(true)
			dirEdges = append(dirEdges, de)
		}
	}
	// Every directed edge bounds a face, so each incoming edge is linked to
	// the next outgoing edge counter-clockwise around its node.
	for _, n := range graph.Nodes() {
		out := n.Edges().Edges()
		for i, de := range out {
			de.Sym().SetNext(out[(i+1)%len(out)])
		}
	}

	var maxRings []*geomgraph.EdgeRing
	for _, de := range dirEdges {
		if de.EdgeRing() != nil {
			continue
		}
		er, err := geomgraph.NewMaximalEdgeRing(de)
		if err != nil {
			return nil, nil, nil, err
		}
		maxRings = append(maxRings, er)
	}

	cutLines = make(map[int]bool)
	for _, de := range dirEdges {
		if de.EdgeRing() != nil && de.EdgeRing() == de.Sym().EdgeRing() {
			cutLines[edgeIndex[de.Edge()]] = true
		}
	}
	if len(cutLines) > 0 {
		return nil, nil, cutLines, nil
	}

	for _, er := range maxRings {
		var rings []*geomgraph.EdgeRing
		if er.MaxNodeDegree() > 2 {
			er.LinkDirectedEdgesForMinimalEdgeRings()
			minRings, err := er.BuildMinimalRings()
			if err != nil {
				return nil, nil, nil, err
			}
			rings = minRings
		} else {
			rings = []*geomgraph.EdgeRing{er}
		}
		for _, r := range rings {
			if r.IsHole() {
				holes = append(holes, r)
			} else {
				shells = append(shells, r)
			}
		}
	}
	return shells, holes, nil, nil
}

// assemblePolygons nests each hole into the smallest shell containing it
// and emits the rings per polygon.
func assemblePolygons(shells, holes []*geomgraph.EdgeRing) [][][]xy.Point {
	for _, hole := range holes {
		if shell := findShellContaining(hole, shells); shell != nil {
			hole.SetShell(shell)
		}
	}
	var polys [][][]xy.Point
	for _, shell := range shells {
		rings := [][]xy.Point{shell.Coordinates()}
		for _, hole := range shell.Holes() {
			rings = append(rings, hole.Coordinates())
		}
		polys = append(polys, rings)
	}
	return polys
}

func findShellContaining(hole *geomgraph.EdgeRing, shells []*geomgraph.EdgeRing) *geomgraph.EdgeRing {
	holeEnv := hole.Envelope()
	holePts := hole.Coordinates()

	var minShell *geomgraph.EdgeRing
	var minShellEnv xy.Envelope
	for _, shell := range shells {
		shellEnv := shell.Envelope()
		if shellEnv == holeEnv || !shellEnv.ContainsEnvelope(holeEnv) {
			continue
		}
		pt, ok := pointNotOnRing(holePts, shell.Coordinates())
		if !ok || !xy.IsPointInRing(pt, shell.Coordinates()) {
			continue
		}
		if minShell == nil || minShellEnv.ContainsEnvelope(shellEnv) {
			minShell = shell
			minShellEnv = shellEnv
		}
	}
	return minShell
}

func pointNotOnRing(pts, ring []xy.Point) (xy.Point, bool) {
	onRing := make(map[xy.Point]bool, len(ring))
	for _, p := range ring {
		onRing[p] = true
	}
	for _, p := range pts {
		if !onRing[p] {
			return p, true
		}
	}
	return xy.Point{}, false
}
