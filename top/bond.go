/*
 * bond.go, part of gouff.
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
	"math"
)

//BondType is the discrete classification of a bond order.
type BondType int

const (
	Unknown BondType = iota
	Single
	Double
	Triple
	Quadruple
	Aromatic
)

//The bond order of an aromatic bond.
const AromaticOrder = 1.5

const orderTol = 1e-3

func (b BondType) String() string {
	switch b {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Quadruple:
		return "quadruple"
	case Aromatic:
		return "aromatic"
	default:
		return "unknown"
	}
}

//TypeOfOrder maps a real bond order to a BondType. Orders that are
//not within 1e-3 of 1, 1.5, 2, 3 or 4 are Unknown.
func TypeOfOrder(order float64) BondType {
	switch {
	case math.Abs(order-1) < orderTol:
		return Single
	case math.Abs(order-AromaticOrder) < orderTol:
		return Aromatic
	case math.Abs(order-2) < orderTol:
		return Double
	case math.Abs(order-3) < orderTol:
		return Triple
	case math.Abs(order-4) < orderTol:
		return Quadruple
	default:
		return Unknown
	}
}

//Bond joins two atoms. The parameters are filled by the forcefield
//assigner.
type Bond struct {
	Index    int
	At1      *Atom
	At2      *Atom
	Order    float64
	Selected bool
	Term
}

//Cross returns the atom at the other end of the bond from origin.
//It panics if origin is not in the bond, which can only be a programming error.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic(ErrNotInBond)
}

//Type returns the classification of the bond's order.
func (B *Bond) Type() BondType {
	return TypeOfOrder(B.Order)
}

func (B *Bond) String() string {
	return fmt.Sprintf("%s-%s(%.2f)", B.At1, B.At2, B.Order)
}
