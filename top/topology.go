/*
 * topology.go, part of gouff.
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
)

//Topology is a molecular graph: atoms, the bonds joining them, and the
//angle and torsion terms derived from the bonds.
type Topology struct {
	Name     string
	atoms    []*Atom
	bonds    []*Bond
	angles   []*Angle
	torsions []*Torsion
	bondmap  map[[2]int]*Bond
}

//NewTopology returns an empty topology.
func NewTopology(name string) *Topology {
	return &Topology{Name: name, bondmap: make(map[[2]int]*Bond)}
}

func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

//AddAtom appends at to the topology, setting its Index. It returns at.
func (T *Topology) AddAtom(at *Atom) *Atom {
	at.Index = len(T.atoms)
	T.atoms = append(T.atoms, at)
	return at
}

//AddBond joins the atoms with indexes i and j with a bond of the given order.
//It returns an error for out-of-range indexes, self bonds and duplicated bonds.
func (T *Topology) AddBond(i, j int, order float64) (*Bond, error) {
	if i < 0 || j < 0 || i >= len(T.atoms) || j >= len(T.atoms) {
		return nil, Error{fmt.Sprintf("Bond %d-%d: atom index out of range (%d atoms)", i, j, len(T.atoms)), []string{"AddBond"}}
	}
	if i == j {
		return nil, Error{fmt.Sprintf("Bond %d-%d: an atom can't be bonded to itself", i, j), []string{"AddBond"}}
	}
	if T.bondmap == nil {
		T.bondmap = make(map[[2]int]*Bond)
	}
	key := pairKey(i, j)
	if _, ok := T.bondmap[key]; ok {
		return nil, Error{fmt.Sprintf("Bond %d-%d already exists", i, j), []string{"AddBond"}}
	}
	at1, at2 := T.atoms[i], T.atoms[j]
	b := &Bond{Index: len(T.bonds), At1: at1, At2: at2, Order: order}
	at1.Bonds = append(at1.Bonds, b)
	at2.Bonds = append(at2.Bonds, b)
	T.bonds = append(T.bonds, b)
	T.bondmap[key] = b
	return b, nil
}

//Bond returns the bond between the atoms with indexes i and j, or nil if there is none.
func (T *Topology) Bond(i, j int) *Bond {
	return T.bondmap[pairKey(i, j)]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.atoms)
}

//Atom returns the ith atom. It panics if i is out of range.
func (T *Topology) Atom(i int) *Atom {
	if i < 0 || i >= len(T.atoms) {
		panic(ErrIndexOutOfRange)
	}
	return T.atoms[i]
}

func (T *Topology) Atoms() []*Atom       { return T.atoms }
func (T *Topology) Bonds() []*Bond       { return T.bonds }
func (T *Topology) Angles() []*Angle     { return T.angles }
func (T *Topology) Torsions() []*Torsion { return T.torsions }

//GenerateAngles builds one angle term for every i-j-k path in the bond
//graph. It replaces any previous angles, and returns the number generated.
func (T *Topology) GenerateAngles() int {
	T.angles = T.angles[:0]
	for _, j := range T.atoms {
		for a := 0; a < len(j.Bonds); a++ {
			for b := a + 1; b < len(j.Bonds); b++ {
				i := j.Bonds[a].Cross(j)
				k := j.Bonds[b].Cross(j)
				if i.Index > k.Index {
					i, k = k, i
				}
				T.angles = append(T.angles, &Angle{Index: len(T.angles), I: i, J: j, K: k})
			}
		}
	}
	return len(T.angles)
}

//GenerateTorsions builds one torsion term for every i-j-k-l path in the
//bond graph with 4 different atoms. Each path is generated once.
//It replaces any previous torsions, and returns the number generated.
func (T *Topology) GenerateTorsions() int {
	T.torsions = T.torsions[:0]
	for _, central := range T.bonds {
		j, k := central.At1, central.At2
		for _, bi := range j.Bonds {
			if bi == central {
				continue
			}
			i := bi.Cross(j)
			for _, bl := range k.Bonds {
				if bl == central {
					continue
				}
				l := bl.Cross(k)
				if l.Index == i.Index || l.Index == j.Index || i.Index == k.Index {
					continue //3-membered rings
				}
				T.torsions = append(T.torsions, &Torsion{Index: len(T.torsions), I: i, J: j, K: k, L: l})
			}
		}
	}
	return len(T.torsions)
}

//GenerateTerms generates both angles and torsions.
func (T *Topology) GenerateTerms() {
	T.GenerateAngles()
	T.GenerateTorsions()
}

//Select marks the atoms with the given indexes as selected, and every other
//atom as unselected. A bond, angle or torsion is selected if all its atoms are.
//If any index is out of range, nothing is changed.
func (T *Topology) Select(indexes ...int) error {
	for _, i := range indexes {
		if i < 0 || i >= len(T.atoms) {
			return Error{fmt.Sprintf("Can't select atom %d, topology has %d atoms", i, len(T.atoms)), []string{"Select"}}
		}
	}
	for _, at := range T.atoms {
		at.Selected = false
	}
	for _, i := range indexes {
		T.atoms[i].Selected = true
	}
	for _, b := range T.bonds {
		b.Selected = b.At1.Selected && b.At2.Selected
	}
	for _, a := range T.angles {
		a.Selected = a.I.Selected && a.J.Selected && a.K.Selected
	}
	for _, t := range T.torsions {
		t.Selected = t.I.Selected && t.J.Selected && t.K.Selected && t.L.Selected
	}
	return nil
}

//Selection returns the indexes of the selected atoms.
func (T *Topology) Selection() []int {
	ret := make([]int, 0, len(T.atoms))
	for _, at := range T.atoms {
		if at.Selected {
			ret = append(ret, at.Index)
		}
	}
	return ret
}

//ClearTypes removes the UFF label from every atom.
func (T *Topology) ClearTypes() {
	for _, at := range T.atoms {
		at.Type = ""
	}
}
