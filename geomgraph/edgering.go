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

package geomgraph

import (
	"github.com/akhenakh/planar/util"
	"github.com/akhenakh/planar/xy"
)

// EdgeRing is a closed ring of directed edges assembled during polygon
// building. A maximal ring follows the Next links laid down by
// LinkResultDirectedEdges; a minimal ring follows the NextMin links and
// bounds a single face.
type EdgeRing struct {
	startDe *DirectedEdge
	minimal bool

	pts    []xy.Point
	edges  []*DirectedEdge
	isHole bool

	shell *EdgeRing
	holes []*EdgeRing

	maxNodeDegree int
}

// NewMaximalEdgeRing walks the Next links from start and collects the
// maximal ring.
func NewMaximalEdgeRing(start *DirectedEdge) (*EdgeRing, error) {
	er := &EdgeRing{startDe: start, maxNodeDegree: -1}
	if err := er.computePoints(start); err != nil {
		return nil, err
	}
	er.isHole = xy.IsCCW(er.pts)
	return er, nil
}

// NewMinimalEdgeRing walks the NextMin links from start and collects a
// minimal ring.
func NewMinimalEdgeRing(start *DirectedEdge) (*EdgeRing, error) {
	er := &EdgeRing{startDe: start, minimal: true, maxNodeDegree: -1}
	if err := er.computePoints(start); err != nil {
		return nil, err
	}
	er.isHole = xy.IsCCW(er.pts)
	return er, nil
}

func (er *EdgeRing) next(de *DirectedEdge) *DirectedEdge {
	if er.minimal {
		return de.NextMin()
	}
	return de.Next()
}

func (er *EdgeRing) setRing(de *DirectedEdge) {
	if er.minimal {
		de.SetMinEdgeRing(er)
	} else {
		de.SetEdgeRing(er)
	}
}

func (er *EdgeRing) ring(de *DirectedEdge) *EdgeRing {
	if er.minimal {
		return de.MinEdgeRing()
	}
	return de.EdgeRing()
}

func (er *EdgeRing) computePoints(start *DirectedEdge) error {
	de := start
	isFirstEdge := true
	for {
		if de == nil {
			p := start.Coordinate()
			return util.Topologyf(p.X, p.Y, "found null directed edge in ring")
		}
		if er.ring(de) == er {
			p := de.Coordinate()
			return util.Topologyf(p.X, p.Y, "directed edge visited twice during ring building")
		}
		er.edges = append(er.edges, de)
		er.addPoints(de.Edge(), de.IsForward(), isFirstEdge)
		er.setRing(de)
		isFirstEdge = false
		de = er.next(de)
		if de == start {
			break
		}
	}
	return nil
}

func (er *EdgeRing) addPoints(edge *Edge, isForward, isFirstEdge bool) {
	pts := edge.Coordinates()
	if isForward {
		startIndex := 1
		if isFirstEdge {
			startIndex = 0
		}
		er.pts = append(er.pts, pts[startIndex:]...)
		return
	}
	startIndex := len(pts) - 2
	if isFirstEdge {
		startIndex = len(pts) - 1
	}
	for i := startIndex; i >= 0; i-- {
		er.pts = append(er.pts, pts[i])
	}
}

// Coordinates returns the ring's closed coordinate sequence.
func (er *EdgeRing) Coordinates() []xy.Point { return er.pts }

// IsHole reports whether the ring is counter-clockwise, i.e. bounds a hole.
func (er *EdgeRing) IsHole() bool { return er.isHole }

// Shell returns the shell this hole has been assigned to, or nil.
func (er *EdgeRing) Shell() *EdgeRing { return er.shell }

// SetShell assigns the hole to a shell.
func (er *EdgeRing) SetShell(shell *EdgeRing) {
	er.shell = shell
	if shell != nil {
		shell.holes = append(shell.holes, er)
	}
}

// Holes returns the holes assigned to this shell.
func (er *EdgeRing) Holes() []*EdgeRing { return er.holes }

// Envelope returns the ring's bounding envelope.
func (er *EdgeRing) Envelope() xy.Envelope { return xy.EnvelopeOf(er.pts) }

// ContainsPoint reports whether p lies inside the ring (but not inside any
// of its holes).
func (er *EdgeRing) ContainsPoint(p xy.Point) bool {
	if !er.Envelope().Contains(p) {
		return false
	}
	if !xy.IsPointInRing(p, er.pts) {
		return false
	}
	for _, hole := range er.holes {
		if hole.ContainsPoint(p) {
			return false
		}
	}
	return true
}

// MaxNodeDegree returns twice the maximum number of ring edges leaving any
// node of the ring.
func (er *EdgeRing) MaxNodeDegree() int {
	if er.maxNodeDegree < 0 {
		er.computeMaxNodeDegree()
	}
	return er.maxNodeDegree
}

func (er *EdgeRing) computeMaxNodeDegree() {
	er.maxNodeDegree = 0
	de := er.startDe
	for {
		degree := de.Node().Edges().OutgoingDegree(er)
		if degree > er.maxNodeDegree {
			er.maxNodeDegree = degree
		}
		de = er.next(de)
		if de == er.startDe {
			break
		}
	}
	er.maxNodeDegree *= 2
}

// LinkDirectedEdgesForMinimalEdgeRings relinks the edges of this maximal
// ring into minimal ring cycles.
func (er *EdgeRing) LinkDirectedEdgesForMinimalEdgeRings() {
	de := er.startDe
	for {
		de.Node().Edges().LinkMinimalDirectedEdges(er)
		de = de.Next()
		if de == er.startDe {
			break
		}
	}
}

// BuildMinimalRings returns the minimal rings contained in this maximal
// ring.
func (er *EdgeRing) BuildMinimalRings() ([]*EdgeRing, error) {
	var minRings []*EdgeRing
	de := er.startDe
	for {
		if de.MinEdgeRing() == nil {
			minEr, err := NewMinimalEdgeRing(de)
			if err != nil {
				return nil, err
			}
			minRings = append(minRings, minEr)
		}
		de = de.Next()
		if de == er.startDe {
			break
		}
	}
	return minRings, nil
}
