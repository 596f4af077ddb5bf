/*
 * interfaces.go, part of gouff.
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

import "github.com/rmera/gouff/top"

//AtomSource is anything with indexed atoms.
type AtomSource interface {
	Len() int
	Atom(i int) *top.Atom
}

//Topology is what the assigner needs from a molecular topology.
//*top.Topology implements it.
type Topology interface {
	AtomSource
	RingQuerier
	Bonds() []*top.Bond
	Angles() []*top.Angle
	Torsions() []*top.Torsion
	//Bond returns the bond between atoms i and j, or nil.
	Bond(i, j int) *top.Bond
}
