/*
 * fixtures_test.go, part of gouff.
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

package uff

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rmera/gouff/top"
)

type bnd struct {
	i, j  int
	order float64
}

//build makes a topology from element symbols, optional positions (nil for
//none) and bonds, and generates its angles and torsions.
func build(Te *testing.T, name string, syms []string, pos []r3.Vec, bonds ...bnd) *top.Topology {
	Te.Helper()
	T := top.NewTopology(name)
	for i, s := range syms {
		at, err := top.NewAtom(s)
		if err != nil {
			Te.Fatal(err)
		}
		if pos != nil {
			at.SetPos(pos[i])
		}
		T.AddAtom(at)
	}
	for _, b := range bonds {
		if _, err := T.AddBond(b.i, b.j, b.order); err != nil {
			Te.Fatal(err)
		}
	}
	T.GenerateTerms()
	return T
}

//tetra returns the 4 tetrahedral directions around c, scaled to length d.
func tetra(c r3.Vec, d float64) []r3.Vec {
	s := d / math.Sqrt(3)
	dirs := []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}}
	ret := make([]r3.Vec, 4)
	for i, v := range dirs {
		ret[i] = r3.Add(c, r3.Scale(s, v))
	}
	return ret
}

//planar returns n directions evenly spaced in the xy plane around c, starting at phase degrees.
func planar(c r3.Vec, d float64, n int, phase float64) []r3.Vec {
	ret := make([]r3.Vec, n)
	for i := range ret {
		a := (phase + float64(i)*360/float64(n)) * math.Pi / 180
		ret[i] = r3.Add(c, r3.Vec{X: d * math.Cos(a), Y: d * math.Sin(a)})
	}
	return ret
}

func methane(Te *testing.T) *top.Topology {
	pos := append([]r3.Vec{{}}, tetra(r3.Vec{}, 1.09)...)
	return build(Te, "methane", []string{"C", "H", "H", "H", "H"}, pos,
		bnd{0, 1, 1}, bnd{0, 2, 1}, bnd{0, 3, 1}, bnd{0, 4, 1})
}

//ethane with a staggered-ish geometry good enough for classification
func ethane(Te *testing.T) *top.Topology {
	c1 := r3.Vec{}
	c2 := r3.Vec{X: 1.54 / math.Sqrt(3), Y: 1.54 / math.Sqrt(3), Z: 1.54 / math.Sqrt(3)}
	h1 := tetra(c1, 1.09)[1:]
	h2 := tetra(c2, -1.09)[1:]
	pos := []r3.Vec{c1, c2}
	pos = append(pos, h1...)
	pos = append(pos, h2...)
	return build(Te, "ethane", []string{"C", "C", "H", "H", "H", "H", "H", "H"}, pos,
		bnd{0, 1, 1}, bnd{0, 2, 1}, bnd{0, 3, 1}, bnd{0, 4, 1}, bnd{1, 5, 1}, bnd{1, 6, 1}, bnd{1, 7, 1})
}

//benzene, aromatic bonds, in the xy plane
func benzene(Te *testing.T) *top.Topology {
	pos := planar(r3.Vec{}, 1.39, 6, 0)
	pos = append(pos, planar(r3.Vec{}, 2.48, 6, 0)...)
	syms := []string{"C", "C", "C", "C", "C", "C", "H", "H", "H", "H", "H", "H"}
	bonds := []bnd{}
	for i := 0; i < 6; i++ {
		bonds = append(bonds, bnd{i, (i + 1) % 6, top.AromaticOrder}, bnd{i, i + 6, 1})
	}
	return build(Te, "benzene", syms, pos, bonds...)
}

//ethylene, planar
func ethylene(Te *testing.T) *top.Topology {
	c1 := r3.Vec{}
	c2 := r3.Vec{X: 1.33}
	h := planar(c1, 1.08, 3, 0)[1:]
	h2 := planar(c2, 1.08, 3, 180)[1:]
	pos := []r3.Vec{c1, c2, h[0], h[1], h2[0], h2[1]}
	return build(Te, "ethylene", []string{"C", "C", "H", "H", "H", "H"}, pos,
		bnd{0, 1, 2}, bnd{0, 2, 1}, bnd{0, 3, 1}, bnd{1, 4, 1}, bnd{1, 5, 1})
}

//acetamide, CH3-C(=O)-NH2, no coordinates
func acetamide(Te *testing.T) *top.Topology {
	return build(Te, "acetamide", []string{"C", "C", "O", "N", "H", "H", "H", "H", "H"}, nil,
		bnd{0, 1, 1}, bnd{1, 2, 2}, bnd{1, 3, 1}, bnd{3, 4, 1}, bnd{3, 5, 1}, bnd{0, 6, 1}, bnd{0, 7, 1}, bnd{0, 8, 1})
}

//carbonyl is the two-atom C=O topology
func carbonyl(Te *testing.T) *top.Topology {
	return build(Te, "CO", []string{"C", "O"}, nil, bnd{0, 1, 2})
}
