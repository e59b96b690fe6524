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
	"github.com/akhenakh/planar/geomgraph"
	"github.com/akhenakh/planar/util"
	"github.com/akhenakh/planar/xy"
)

// PolygonBuilder assembles polygons from the in-result directed edges of
// the buffer subgraphs: maximal edge rings are split into minimal rings,
// shells are identified, and holes are nested into the smallest containing
// shell.
type PolygonBuilder struct {
	shells []*geomgraph.EdgeRing
}

// Add contributes the directed edges and nodes of one subgraph. Subgraphs
// must be added in descending rightmost-coordinate order, so that shells
// are seen before the holes they contain.
func (pb *PolygonBuilder) Add(dirEdges []*geomgraph.DirectedEdge, nodes []*geomgraph.Node) error {
	if err := geomgraph.LinkResultDirectedEdges(nodes); err != nil {
		return err
	}
	maxEdgeRings, err := buildMaximalEdgeRings(dirEdges)
	if err != nil {
		return err
	}
	var freeHoles []*geomgraph.EdgeRing
	edgeRings, err := pb.buildMinimalEdgeRings(maxEdgeRings, &freeHoles)
	if err != nil {
		return err
	}
	pb.sortShellsAndHoles(edgeRings, &freeHoles)
	return pb.placeFreeHoles(freeHoles)
}

// Polygons returns the assembled polygons as ring lists (shell first).
func (pb *PolygonBuilder) Polygons() [][][]xy.Point {
	var polys [][][]xy.Point
	for _, shell := range pb.shells {
		rings := [][]xy.Point{shell.Coordinates()}
		for _, hole := range shell.Holes() {
			rings = append(rings, hole.Coordinates())
		}
		polys = append(polys, rings)
	}
	return polys
}

func buildMaximalEdgeRings(dirEdges []*geomgraph.DirectedEdge) ([]*geomgraph.EdgeRing, error) {
	var maxEdgeRings []*geomgraph.EdgeRing
	for _, de := range dirEdges {
		if !de.IsInResult() || !de.Label().IsArea() {
			continue
		}
		if de.EdgeRing() != nil {
			continue
		}
		er, err := geomgraph.NewMaximalEdgeRing(de)
		if err != nil {
			return nil, err
		}
		maxEdgeRings = append(maxEdgeRings, er)
	}
	return maxEdgeRings, nil
}

func (pb *PolygonBuilder) buildMinimalEdgeRings(maxEdgeRings []*geomgraph.EdgeRing, freeHoles *[]*geomgraph.EdgeRing) ([]*geomgraph.EdgeRing, error) {
	var edgeRings []*geomgraph.EdgeRing
	for _, er := range maxEdgeRings {
		if er.MaxNodeDegree() <= 2 {
			edgeRings = append(edgeRings, er)
			continue
		}
		// A maximal ring passing through a node more than once encloses
		// several faces; relink it into minimal rings.
		er.LinkDirectedEdgesForMinimalEdgeRings()
		minEdgeRings, err := er.BuildMinimalRings()
		if err != nil {
			return nil, err
		}
		shell := findShell(minEdgeRings)
		if shell != nil {
			placePolygonHoles(shell, minEdgeRings)
			pb.shells = append(pb.shells, shell)
		} else {
			*freeHoles = append(*freeHoles, minEdgeRings...)
		}
	}
	return edgeRings, nil
}

// findShell returns the single non-hole ring among the minimal rings of one
// maximal ring, or nil if all are holes.
func findShell(minEdgeRings []*geomgraph.EdgeRing) *geomgraph.EdgeRing {
	for _, er := range minEdgeRings {
		if !er.IsHole() {
			return er
		}
	}
	return nil
}

// placePolygonHoles assigns the hole rings split off a maximal ring to its
// shell.
func placePolygonHoles(shell *geomgraph.EdgeRing, minEdgeRings []*geomgraph.EdgeRing) {
	for _, er := range minEdgeRings {
		if er.IsHole() {
			er.SetShell(shell)
		}
	}
}

func (pb *PolygonBuilder) sortShellsAndHoles(edgeRings []*geomgraph.EdgeRing, freeHoles *[]*geomgraph.EdgeRing) {
	for _, er := range edgeRings {
		if er.IsHole() {
			*freeHoles = append(*freeHoles, er)
		} else {
			pb.shells = append(pb.shells, er)
		}
	}
}

// placeFreeHoles nests each unassigned hole into the smallest shell
// containing it.
func (pb *PolygonBuilder) placeFreeHoles(freeHoles []*geomgraph.EdgeRing) error {
	for _, hole := range freeHoles {
		if hole.Shell() != nil {
			continue
		}
		shell := findEdgeRingContaining(hole, pb.shells)
		if shell == nil {
			p := hole.Coordinates()[0]
			return util.Topologyf(p.X, p.Y, "unable to assign hole to a shell")
		}
		hole.SetShell(shell)
	}
	return nil
}

// findEdgeRingContaining returns the smallest shell whose ring contains the
// test ring, or nil.
func findEdgeRingContaining(testEr *geomgraph.EdgeRing, shells []*geomgraph.EdgeRing) *geomgraph.EdgeRing {
	testPts := testEr.Coordinates()
	testEnv := testEr.Envelope()

	var minShell *geomgraph.EdgeRing
	var minShellEnv xy.Envelope
	for _, tryShell := range shells {
		tryShellEnv := tryShell.Envelope()
		// A hole must be properly contained.
		if tryShellEnv == testEnv || !tryShellEnv.ContainsEnvelope(testEnv) {
			continue
		}
		testPt, ok := pointNotInList(testPts, tryShell.Coordinates())
		if !ok {
			continue
		}
		if !xy.IsPointInRing(testPt, tryShell.Coordinates()) {
			continue
		}
		if minShell == nil || minShellEnv.ContainsEnvelope(tryShellEnv) {
			minShell = tryShell
			minShellEnv = tryShellEnv
		}
	}
	return minShell
}

// pointNotInList returns a point of pts which does not appear in excluded.
func pointNotInList(pts, excluded []xy.Point) (xy.Point, bool) {
	set := make(map[xy.Point]bool, len(excluded))
	for _, p := range excluded {
		set[p] = true
	}
	for _, p := range pts {
		if !set[p] {
			return p, true
		}
	}
	return xy.Point{}, false
}
