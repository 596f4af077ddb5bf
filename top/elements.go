/*
 * elements.go, part of gouff.
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

import "strings"

//Element symbols, indexed by atomic number. Index 0 is a placeholder
//for "no element".
var symbols = [...]string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
}

var symbolZ map[string]int

func init() {
	symbolZ = make(map[string]int, len(symbols))
	for z, s := range symbols {
		if z == 0 {
			continue
		}
		symbolZ[s] = z
	}
}

//MaxZ is the largest atomic number known to the package.
const MaxZ = len(symbols) - 1

//NormalizeSymbol returns s with the first letter in upper case and
//the rest in lower case, so "CL", "cl" and "Cl" are all "Cl".
func NormalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

//ZBySymbol returns the atomic number for the element symbol s,
//or 0 if s is not an element.
func ZBySymbol(s string) int {
	return symbolZ[NormalizeSymbol(s)]
}

//Symbol returns the element symbol for atomic number z,
//or "" if z is out of range.
func Symbol(z int) string {
	if z < 1 || z > MaxZ {
		return ""
	}
	return symbols[z]
}

//Group returns the periodic table group (1-18) of the element with
//atomic number z. Lanthanides and actinides are reported as group 3.
//It returns 0 for an unknown z.
func Group(z int) int {
	switch {
	case z < 1 || z > MaxZ:
		return 0
	case z == 1:
		return 1
	case z == 2:
		return 18
	case z <= 10:
		return period2or3(z, 2)
	case z <= 18:
		return period2or3(z, 10)
	case z <= 36:
		return z - 18
	case z <= 54:
		return z - 36
	case z <= 56:
		return z - 54
	case z <= 71:
		return 3
	case z <= 86:
		return z - 68
	case z <= 88:
		return z - 86
	default:
		return 3
	}
}

//period2or3 handles the short periods, where groups 3-12 are missing.
//offset is the atomic number of the previous noble gas.
func period2or3(z, offset int) int {
	g := z - offset
	if g <= 2 {
		return g
	}
	return g + 10
}
