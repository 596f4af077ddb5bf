/*
 * graph.go, part of gouff.
 *
 * Copyright 2024 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package top

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//graphView implements gonum's graph.Undirected over a Topology.
//The bond in hidden, if not nil, is left out of the graph.
type graphView struct {
	t      *Topology
	hidden *Bond
}

//Graph returns a read-only gonum view of the topology, where atoms are
//nodes (ID = Index) and bonds are undirected edges.
func (T *Topology) Graph() graph.Undirected {
	return graphView{t: T}
}

func (G graphView) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(G.t.atoms)) {
		return nil
	}
	return G.t.atoms[id]
}

func (G graphView) Nodes() graph.Nodes {
	if len(G.t.atoms) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(G.t.atoms))
	for i, v := range G.t.atoms {
		nodes[i] = v
	}
	return iterator.NewOrderedNodes(nodes)
}

func (G graphView) From(id int64) graph.Nodes {
	at, ok := G.Node(id).(*Atom)
	if !ok || at == nil {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(at.Bonds))
	for _, b := range at.Bonds {
		if b == G.hidden {
			continue
		}
		nodes = append(nodes, b.Cross(at))
	}
	if len(nodes) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(nodes)
}

func (G graphView) bond(xid, yid int64) *Bond {
	b := G.t.Bond(int(xid), int(yid))
	if b == nil || b == G.hidden {
		return nil
	}
	return b
}

func (G graphView) HasEdgeBetween(xid, yid int64) bool {
	return G.bond(xid, yid) != nil
}

func (G graphView) Edge(uid, vid int64) graph.Edge {
	return G.EdgeBetween(uid, vid)
}

func (G graphView) EdgeBetween(xid, yid int64) graph.Edge {
	if G.bond(xid, yid) == nil {
		return nil
	}
	return simple.Edge{F: G.Node(xid), T: G.Node(yid)}
}

//BondInRing returns true if b is part of a cycle, that is, if its atoms
//are still connected when b is removed from the graph.
func (T *Topology) BondInRing(b *Bond) bool {
	g := graphView{t: T, hidden: b}
	return topo.PathExistsIn(g, b.At1, b.At2)
}

//InRing returns true if at is part of a cycle.
func (T *Topology) InRing(at *Atom) bool {
	for _, b := range at.Bonds {
		if T.BondInRing(b) {
			return true
		}
	}
	return false
}

//Components returns the connected components of the topology, each as
//a slice of atom indexes in increasing order.
func (T *Topology) Components() [][]int {
	cc := topo.ConnectedComponents(T.Graph())
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		idx := make([]int, 0, len(c))
		for _, n := range c {
			idx = append(idx, int(n.ID()))
		}
		sort.Ints(idx)
		ret = append(ret, idx)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}
