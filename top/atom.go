/*
 * atom.go, part of gouff.
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
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

//Atom is a node of a Topology.
type Atom struct {
	Index    int //position in the topology, filled by AddAtom
	Symbol   string
	Z        int
	Name     string
	Pos      r3.Vec
	HasPos   bool   //false if the coordinates are unknown
	Type     string //UFF label, "" means the atom is untyped
	Selected bool
	Bonds    []*Bond
}

//NewAtom returns an untyped atom for the element symbol sym, with
//no coordinates. It returns an error if sym is not an element.
func NewAtom(sym string) (*Atom, error) {
	z := ZBySymbol(sym)
	if z == 0 {
		return nil, Error{fmt.Sprintf("Unknown element symbol %q", sym), []string{"NewAtom"}}
	}
	return &Atom{Symbol: Symbol(z), Z: z}, nil
}

//SetPos sets the atom's coordinates and marks them as known.
func (A *Atom) SetPos(p r3.Vec) {
	A.Pos = p
	A.HasPos = true
}

//ID implements gonum's graph.Node
func (A *Atom) ID() int64 {
	return int64(A.Index)
}

//Typed returns true if the atom has a UFF label assigned.
func (A *Atom) Typed() bool {
	return A.Type != ""
}

//Neighbors returns the atoms bonded to A, in bond order.
func (A *Atom) Neighbors() []*Atom {
	ret := make([]*Atom, 0, len(A.Bonds))
	for _, b := range A.Bonds {
		ret = append(ret, b.Cross(A))
	}
	return ret
}

func (A *Atom) String() string {
	if A.Name != "" {
		return fmt.Sprintf("%s%d(%s)", A.Symbol, A.Index, A.Name)
	}
	return fmt.Sprintf("%s%d", A.Symbol, A.Index)
}
