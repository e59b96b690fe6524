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

// PlanarGraph is the planar arrangement built from an edge list: nodes
// interned by coordinate, with a pair of directed edges per edge inserted
// into the angle-ordered stars of their origin nodes.
type PlanarGraph struct {
	edges    []*Edge
	nodes    *NodeMap
	dirEdges []*DirectedEdge
}

// NewPlanarGraph creates an empty graph.
func NewPlanarGraph() *PlanarGraph {
	return &PlanarGraph{nodes: NewNodeMap()}
}

// AddEdges adds each edge to the graph, creating its two directed edges and
// interning their origin nodes.
func (g *PlanarGraph) AddEdges(edges []*Edge) {
	for _, e := range edges {
		g.edges = append(g.edges, e)
		de1 := newDirectedEdge(e, true)
		de2 := newDirectedEdge(e, false)
		de1.sym = de2
		de2.sym = de1
		g.add(de1)
		g.add(de2)
	}
}

func (g *PlanarGraph) add(de *DirectedEdge) {
	n := g.nodes.AddNode(de.Coordinate())
	de.node = n
	n.star.insert(de)
	g.dirEdges = append(g.dirEdges, de)
}

// Nodes returns the graph nodes ordered by coordinate.
func (g *PlanarGraph) Nodes() []*Node { return g.nodes.Nodes() }

// Edges returns the underlying edges.
func (g *PlanarGraph) Edges() []*Edge { return g.edges }

// LinkResultDirectedEdges links the in-result directed edges at each of the
// given nodes.
func LinkResultDirectedEdges(nodes []*Node) error {
	for _, n := range nodes {
		if err := n.Edges().LinkResultDirectedEdges(); err != nil {
			return err
		}
	}
	return nil
}
