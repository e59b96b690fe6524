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
	"sort"

	"github.com/akhenakh/planar/xy"
)

// Node is a vertex of the planar graph. It carries the angle-ordered star of
// directed edges incident on it, and can track per-side depths during
// buffering.
type Node struct {
	coord   xy.Point
	star    *DirectedEdgeStar
	visited bool
}

// Coordinate returns the node's location.
func (n *Node) Coordinate() xy.Point { return n.coord }

// Edges returns the star of directed edges incident on the node.
func (n *Node) Edges() *DirectedEdgeStar { return n.star }

// IsVisited reports the traversal mark.
func (n *Node) IsVisited() bool { return n.visited }

// SetVisited sets the traversal mark.
func (n *Node) SetVisited(v bool) { n.visited = v }

// NodeMap interns nodes by coordinate.
type NodeMap struct {
	nodes map[xy.Point]*Node
}

// NewNodeMap creates an empty node map.
func NewNodeMap() *NodeMap {
	return &NodeMap{nodes: make(map[xy.Point]*Node)}
}

// AddNode returns the node at coord, creating it if needed.
func (m *NodeMap) AddNode(coord xy.Point) *Node {
	n := m.nodes[coord]
	if n == nil {
		n = &Node{coord: coord, star: newDirectedEdgeStar()}
		m.nodes[coord] = n
	}
	return n
}

// Find returns the node at coord, or nil.
func (m *NodeMap) Find(coord xy.Point) *Node { return m.nodes[coord] }

// Nodes returns all nodes ordered by coordinate, for deterministic
// traversal.
func (m *NodeMap) Nodes() []*Node {
	out := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return comparePoints(out[i].coord, out[j].coord) < 0
	})
	return out
}
