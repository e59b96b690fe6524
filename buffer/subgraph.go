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

// Subgraph is a connected component of the buffer planar graph. It records
// its rightmost coordinate, which is guaranteed to lie on the outer
// boundary, so that subgraphs can be depth-located in +x sweep order.
type Subgraph struct {
	dirEdges []*geomgraph.DirectedEdge
	nodes    []*geomgraph.Node

	rightmostCoord xy.Point
	finder         rightmostEdgeFinder

	env xy.Envelope
}

// Create traverses the graph from node, collecting every reachable directed
// edge and node and marking them visited.
func (sg *Subgraph) Create(node *geomgraph.Node) error {
	sg.addReachable(node)
	if err := sg.finder.findEdge(sg.dirEdges); err != nil {
		return err
	}
	sg.rightmostCoord = sg.finder.minCoord
	return nil
}

func (sg *Subgraph) addReachable(startNode *geomgraph.Node) {
	stack := []*geomgraph.Node{startNode}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.IsVisited() {
			continue
		}
		node.SetVisited(true)
		sg.nodes = append(sg.nodes, node)
		for _, de := range node.Edges().Edges() {
			sg.dirEdges = append(sg.dirEdges, de)
			symNode := de.Sym().Node()
			if !symNode.IsVisited() {
				stack = append(stack, symNode)
			}
		}
	}
}

// DirectedEdges returns the directed edges of the subgraph.
func (sg *Subgraph) DirectedEdges() []*geomgraph.DirectedEdge { return sg.dirEdges }

// Nodes returns the nodes of the subgraph.
func (sg *Subgraph) Nodes() []*geomgraph.Node { return sg.nodes }

// RightmostCoordinate returns the vertex of the subgraph with maximum x.
func (sg *Subgraph) RightmostCoordinate() xy.Point { return sg.rightmostCoord }

// Envelope returns the bounding envelope of the subgraph edges.
func (sg *Subgraph) Envelope() xy.Envelope {
	if sg.env.IsEmpty() {
		for _, de := range sg.dirEdges {
			sg.env.ExpandToIncludeEnvelope(de.Edge().Envelope())
		}
	}
	return sg.env
}

// ComputeDepth assigns side depths to every edge of the subgraph, starting
// from the known depth outside the rightmost edge and propagating through
// each node star using the edge depth deltas.
func (sg *Subgraph) ComputeDepth(outsideDepth int) error {
	sg.clearVisitedEdges()
	de := sg.finder.orientedDe
	// The right side of the oriented rightmost edge faces outward.
	if err := de.SetEdgeDepths(geomgraph.PosRight, outsideDepth); err != nil {
		return err
	}
	if err := copySymDepths(de); err != nil {
		return err
	}
	return sg.computeDepths(de)
}

func (sg *Subgraph) clearVisitedEdges() {
	for _, de := range sg.dirEdges {
		de.SetVisited(false)
	}
}

// computeDepths performs a breadth-first propagation of depths through the
// node stars, starting at the given edge.
func (sg *Subgraph) computeDepths(startEdge *geomgraph.DirectedEdge) error {
	nodesVisited := make(map[*geomgraph.Node]bool)
	startNode := startEdge.Node()
	queue := []*geomgraph.Node{startNode}
	nodesVisited[startNode] = true
	startEdge.SetVisited(true)

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if err := sg.computeNodeDepth(n); err != nil {
			return err
		}
		for _, de := range n.Edges().Edges() {
			sym := de.Sym()
			if sym.IsVisited() {
				continue
			}
			adjNode := sym.Node()
			if !nodesVisited[adjNode] {
				queue = append(queue, adjNode)
				nodesVisited[adjNode] = true
			}
		}
	}
	return nil
}

func (sg *Subgraph) computeNodeDepth(n *geomgraph.Node) error {
	// Find a visited dirEdge to start at.
	var startEdge *geomgraph.DirectedEdge
	for _, de := range n.Edges().Edges() {
		if de.IsVisited() || de.Sym().IsVisited() {
			startEdge = de
			break
		}
	}
	if startEdge == nil {
		p := n.Coordinate()
		return util.Topologyf(p.X, p.Y, "unable to find edge to compute depths")
	}
	if err := n.Edges().ComputeDepths(startEdge); err != nil {
		return err
	}
	for _, de := range n.Edges().Edges() {
		de.SetVisited(true)
		if err := copySymDepths(de); err != nil {
			return err
		}
	}
	return nil
}

// copySymDepths mirrors the depths of de onto its sym. A disagreement with
// previously assigned depths indicates an inconsistent arrangement.
func copySymDepths(de *geomgraph.DirectedEdge) error {
	sym := de.Sym()
	if err := sym.SetDepth(geomgraph.PosLeft, de.Depth(geomgraph.PosRight)); err != nil {
		return err
	}
	return sym.SetDepth(geomgraph.PosRight, de.Depth(geomgraph.PosLeft))
}

// FindResultEdges marks the directed edges bounding the buffer interior:
// edges with positive area depth on the right and none on the left.
func (sg *Subgraph) FindResultEdges() {
	for _, de := range sg.dirEdges {
		if de.Depth(geomgraph.PosRight) >= 1 &&
			de.Depth(geomgraph.PosLeft) <= 0 &&
			!de.IsInteriorAreaEdge() {
			de.SetInResult(true)
		}
	}
}

// rightmostEdgeFinder locates the directed edge at the rightmost coordinate
// of a set of directed edges, oriented so its right side faces outward.
type rightmostEdgeFinder struct {
	minIndex   int
	minCoord   xy.Point
	haveCoord  bool
	minDe      *geomgraph.DirectedEdge
	orientedDe *geomgraph.DirectedEdge
}

func (f *rightmostEdgeFinder) findEdge(dirEdges []*geomgraph.DirectedEdge) error {
	// Check all forward directed edges only; this is still general since
	// each edge has a forward direction.
	for _, de := range dirEdges {
		if !de.IsForward() {
			continue
		}
		f.checkForRightmostCoordinate(de)
	}
	if f.minDe == nil {
		return util.Topologyf(0, 0, "unable to find rightmost edge of empty subgraph")
	}

	if f.minIndex == 0 {
		f.findRightmostEdgeAtNode()
	} else {
		f.findRightmostEdgeAtVertex()
	}

	// The extreme side must be the right side; if not, use the sym.
	f.orientedDe = f.minDe
	if f.rightmostSide(f.minDe, f.minIndex) == geomgraph.PosLeft {
		f.orientedDe = f.minDe.Sym()
	}
	return nil
}

func (f *rightmostEdgeFinder) findRightmostEdgeAtNode() {
	node := f.minDe.Node()
	f.minDe = node.Edges().RightmostEdge()
	// The rightmost edge of the star is not necessarily forward; the
	// rightmost coordinate tracking assumes forward edges.
	if !f.minDe.IsForward() {
		f.minDe = f.minDe.Sym()
		f.minIndex = f.minDe.Edge().NumPoints() - 1
	}
}

func (f *rightmostEdgeFinder) findRightmostEdgeAtVertex() {
	// The rightmost point is an interior vertex, so it has a segment on
	// either side. If both segments lie on one side of the vertical
	// through it, their relative orientation decides which is rightmost.
	pts := f.minDe.Edge().Coordinates()
	pPrev := pts[f.minIndex-1]
	pNext := pts[f.minIndex+1]
	orientation := xy.OrientationIndex(f.minCoord, pNext, pPrev)
	usePrev := false
	if pPrev.Y < f.minCoord.Y && pNext.Y < f.minCoord.Y && orientation == xy.CounterClockwise {
		usePrev = true
	} else if pPrev.Y > f.minCoord.Y && pNext.Y > f.minCoord.Y && orientation == xy.Clockwise {
		usePrev = true
	}
	// If the segments straddle the vertex vertically, either is safe.
	if usePrev {
		f.minIndex--
	}
}

func (f *rightmostEdgeFinder) checkForRightmostCoordinate(de *geomgraph.DirectedEdge) {
	pts := de.Edge().Coordinates()
	// The last vertex is skipped: it is the first vertex of another edge.
	for i := 0; i < len(pts)-1; i++ {
		if !f.haveCoord || pts[i].X > f.minCoord.X {
			f.minDe = de
			f.minIndex = i
			f.minCoord = pts[i]
			f.haveCoord = true
		}
	}
}

func (f *rightmostEdgeFinder) rightmostSide(de *geomgraph.DirectedEdge, index int) geomgraph.Position {
	side, ok := f.rightmostSideOfSegment(de, index)
	if !ok {
		side, ok = f.rightmostSideOfSegment(de, index-1)
	}
	if !ok {
		// An edge parallel to the x axis on both sides of the extreme
		// vertex; rescan for a usable coordinate.
		f.haveCoord = false
		f.checkForRightmostCoordinate(de)
		side = geomgraph.PosLeft
	}
	return side
}

func (f *rightmostEdgeFinder) rightmostSideOfSegment(de *geomgraph.DirectedEdge, i int) (geomgraph.Position, bool) {
	pts := de.Edge().Coordinates()
	if i < 0 || i+1 >= len(pts) {
		return 0, false
	}
	if pts[i].Y == pts[i+1].Y {
		return 0, false
	}
	pos := geomgraph.PosLeft
	if pts[i].Y < pts[i+1].Y {
		pos = geomgraph.PosRight
	}
	return pos, true
}
