/*
 * doc.go, part of gouff.
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

/*
Package uff assigns Universal Force Field (Rappe et al., 1992) atom types
to the atoms of a molecular topology, and derives the parameters of its
bonds, angles and torsions from the UFF combination rules.

	**gouff Capabilities**

	The full UFF reference table, with the amide types C_am and N_am.
	Lookup by label and by element.

	Geometry classification of atoms from their bonds and coordinates
	(linear, trigonal planar, tetrahedral, square planar, ...), bond-pattern
	matching and a heuristic oxidation state.

	Rule-based atom typing. Each element has an ordered list of
	(predicate, label) rules, and the first match wins. The rules
	can be replaced per element.

	Harmonic bonds, cosine and two-term cosine angles and UFF cosine
	torsions (the seven UFF torsion cases).

	A per-session registry of Lennard-Jones parameters, one entry per label.

A typical use:

	mol, err := top.ReadMol(f)
	if err != nil {
		...
	}
	reg := uff.NewRegistry()
	a := uff.NewAssigner()
	a.AssignAtomTypes(mol, reg, false)
	ok, failed := a.AssignIntramolecular(mol, uff.IntraOptions{})

Atoms that can't be typed are left untyped, and terms that can't be
parametrized are reported, while the rest of the topology is processed.
An Assigner can be shared between goroutines, but a Registry can't.
*/
package uff
