/*
 * rules.go, part of gouff.
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

//Atomic numbers used by the typing rules.
const (
	zH  = 1
	zB  = 5
	zC  = 6
	zN  = 7
	zO  = 8
	zSi = 14
	zP  = 15
	zS  = 16
	zTi = 22
	zFe = 26
	zMo = 42
	zW  = 74
	zRe = 75
)

//resonant is true for atoms with only aromatic bonds (at least one), or
//with resonant geometry.
var resonant = AnyOf(
	All(Pattern(AromaticOnly), Not(NBonds(0))),
	GeometryIs(GeomResonant),
)

//triple or linear
var sp = AnyOf(Pattern(OneTriple), GeometryIs(GeomLinear))

//hasTerminalO is true if the neighbor n has an O neighbor with no other bonds.
func hasTerminalO(n Neighbor) bool {
	for _, b := range n.Atom.Bonds {
		p := b.Cross(n.Atom)
		if p.Z == zO && len(p.Bonds) == 1 {
			return true
		}
	}
	return false
}

//amideC is a carbon with 3 bonds, one to a terminal O and one to an N.
var amideC = All(NBonds(3), Custom(func(c *ClassificationContext) bool {
	var o, n bool
	for _, v := range c.Neighbors {
		switch {
		case v.Element == zO && v.Bonds == 1:
			o = true
		case v.Element == zN:
			n = true
		}
	}
	return o && n
}))

//amideN is a nitrogen with 3 bonds, one of them to a carbon bearing a terminal O.
var amideN = All(NBonds(3), Custom(func(c *ClassificationContext) bool {
	for _, v := range c.Neighbors {
		if v.Element == zC && hasTerminalO(v) {
			return true
		}
	}
	return false
}))

//octahedralOr types an atom as oct if octahedral, and as other otherwise.
func octahedralOr(oct, other string) []Rule {
	return []Rule{
		{GeometryIs(GeomOctahedral), oct},
		{nil, other},
	}
}

var defaultRules = map[int][]Rule{
	zH: {
		{BoundTo(zB, 2), "H_b"},
		{nil, "H_"},
	},
	zB: {
		{GeometryIs(GeomTetrahedral), "B_3"},
		{nil, "B_2"},
	},
	zC: {
		{resonant, "C_R"},
		{amideC, "C_am"},
		{Pattern(OneDouble), "C_2"},
		{sp, "C_1"},
		{nil, "C_3"},
	},
	zN: {
		{resonant, "N_R"},
		{amideN, "N_am"},
		{Pattern(OneDouble), "N_2"},
		{sp, "N_1"},
		{nil, "N_3"},
	},
	zO: {
		{resonant, "O_R"},
		{Pattern(OnlyOneDouble), "O_2"},
		{sp, "O_1"},
		{BoundTo(zSi, 2), "O_3_z"},
		{nil, "O_3"},
	},
	zP: {
		{Valence(5), "P_3+5"},
		{Valence(3), "P_3+3"},
		{All(NBonds(4), GeometryIs(GeomTetrahedral)), "P_3+q"},
	},
	zS: {
		{Valence(2), "S_3+2"},
		{Valence(4), "S_3+4"},
		{Valence(6), "S_3+6"},
		{resonant, "S_R"},
		{GeometryIs(GeomTrigonalPlanar), "S_2"},
		//thioethers and disulfides, whose oxidation state guess is 0
		{All(NBonds(2), Pattern(BondPattern{Any, Any, Any, Any, 0})), "S_3+2"},
	},
	zTi: octahedralOr("Ti6+4", "Ti3+4"),
	zFe: octahedralOr("Fe6+2", "Fe3+2"),
	zMo: octahedralOr("Mo6+6", "Mo3+6"),
	zW: {
		{GeometryIs(GeomOctahedral), "W_6+6"},
		{Valence(4), "W_3+4"},
		{nil, "W_3+6"},
	},
	zRe: octahedralOr("Re6+5", "Re3+7"),
}

func init() {
	for _, v := range defaultRules {
		checkRules(v)
	}
}
