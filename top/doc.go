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
Package top is the molecular topology used by gouff: atoms with optional
coordinates, the bonds joining them, and the angle and torsion terms that
follow from the bonds. Each bond, angle and torsion carries a Term, where
a forcefield assigner can store a functional form and its parameters.

The package also provides ring queries over a gonum graph view of the
topology, atom selections, and readers for MDL molfiles (V2000) and a
simple JSON format.
*/
package top
