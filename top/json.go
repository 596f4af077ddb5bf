/*
 * json.go, part of gouff.
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
	"encoding/json"
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

//JSONAtom is a ready-to-serialize container for an atom.
type JSONAtom struct {
	Symbol string    `json:"symbol"`
	Name   string    `json:"name,omitempty"`
	Pos    []float64 `json:"pos,omitempty"` //nil or empty means no coordinates
	Type   string    `json:"type,omitempty"`
}

//JSONTerm is a ready-to-serialize container for a bonded term.
//Atoms has 2, 3 or 4 indexes for bonds, angles and torsions. Order is
//only used for bonds. A bond without an order is read as a single bond,
//and any explicit order is kept as it is.
type JSONTerm struct {
	Atoms  []int     `json:"atoms"`
	Order  *float64  `json:"order,omitempty"`
	Form   string    `json:"form,omitempty"`
	Params []float64 `json:"params,omitempty"`
}

//JSONTopology is the serialized form of a Topology.
type JSONTopology struct {
	Name     string     `json:"name,omitempty"`
	Atoms    []JSONAtom `json:"atoms"`
	Bonds    []JSONTerm `json:"bonds"`
	Angles   []JSONTerm `json:"angles,omitempty"`
	Torsions []JSONTerm `json:"torsions,omitempty"`
}

func termToJSON(t Term, atoms []*Atom) JSONTerm {
	ret := JSONTerm{Atoms: make([]int, len(atoms))}
	for i, v := range atoms {
		ret.Atoms[i] = v.Index
	}
	if t.Parametrized() {
		ret.Form = t.Form.String()
		ret.Params = t.Params
	}
	return ret
}

//ToJSON returns a ready-to-serialize copy of the topology, including the
//atom types and term parameters.
func (T *Topology) ToJSON() *JSONTopology {
	ret := &JSONTopology{Name: T.Name}
	for _, at := range T.atoms {
		ja := JSONAtom{Symbol: at.Symbol, Name: at.Name, Type: at.Type}
		if at.HasPos {
			ja.Pos = []float64{at.Pos.X, at.Pos.Y, at.Pos.Z}
		}
		ret.Atoms = append(ret.Atoms, ja)
	}
	for _, b := range T.bonds {
		jb := termToJSON(b.Term, []*Atom{b.At1, b.At2})
		order := b.Order
		jb.Order = &order
		ret.Bonds = append(ret.Bonds, jb)
	}
	for _, a := range T.angles {
		ret.Angles = append(ret.Angles, termToJSON(a.Term, a.Atoms()))
	}
	for _, t := range T.torsions {
		ret.Torsions = append(ret.Torsions, termToJSON(t.Term, t.Atoms()))
	}
	return ret
}

//WriteJSON serializes the topology to out.
func (T *Topology) WriteJSON(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(T.ToJSON()); err != nil {
		return errDecorate(err, "WriteJSON")
	}
	return nil
}

//ReadJSON reads a topology in the format written by WriteJSON. Atom types
//are kept. Angles and torsions in the input are ignored and generated again
//from the bonds, without parameters.
func ReadJSON(r io.Reader) (*Topology, error) {
	var jt JSONTopology
	dec := json.NewDecoder(r)
	if err := dec.Decode(&jt); err != nil {
		return nil, errDecorate(err, "ReadJSON")
	}
	T := NewTopology(jt.Name)
	for i, ja := range jt.Atoms {
		at, err := NewAtom(ja.Symbol)
		if err != nil {
			return nil, Error{fmt.Sprintf("Atom %d: %s", i, err.Error()), []string{"NewAtom", "ReadJSON"}}
		}
		at.Name = ja.Name
		at.Type = ja.Type
		switch len(ja.Pos) {
		case 0:
		case 3:
			at.SetPos(r3.Vec{X: ja.Pos[0], Y: ja.Pos[1], Z: ja.Pos[2]})
		default:
			return nil, Error{fmt.Sprintf("Atom %d: position must have 3 components, has %d", i, len(ja.Pos)), []string{"ReadJSON"}}
		}
		T.AddAtom(at)
	}
	for i, jb := range jt.Bonds {
		if len(jb.Atoms) != 2 {
			return nil, Error{fmt.Sprintf("Bond %d: must have 2 atoms, has %d", i, len(jb.Atoms)), []string{"ReadJSON"}}
		}
		order := 1.0
		if jb.Order != nil {
			order = *jb.Order
		}
		if _, err := T.AddBond(jb.Atoms[0], jb.Atoms[1], order); err != nil {
			return nil, errDecorate(err, "ReadJSON")
		}
	}
	T.GenerateTerms()
	return T, nil
}
