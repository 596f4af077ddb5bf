/*
 * geometry.go, part of gouff.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/gouff/top"
)

//Geometry is the local coordination geometry of an atom, as measured
//from its bonds and the positions of its neighbors.
type Geometry int

const (
	GeomUnresolved Geometry = iota
	GeomUnbound
	GeomTerminal
	GeomLinear
	GeomTShape
	GeomTrigonalPlanar
	GeomTetrahedral
	GeomSquarePlanar
	GeomTrigonalBipyramidal
	GeomOctahedral
	GeomResonant
)

var geomNames = [...]string{"unresolved", "unbound", "terminal", "linear", "T-shape", "trigonal planar",
	"tetrahedral", "square planar", "trigonal bipyramidal", "octahedral", "resonant"}

func (g Geometry) String() string {
	if g < 0 || int(g) >= len(geomNames) {
		return "unresolved"
	}
	return geomNames[g]
}

//Angle thresholds, in degrees, for the geometry classification.
const (
	linearMin      = 150.0
	trigonalMin    = 115.0
	trigonalMax    = 125.0
	tetrahedralMin = 100.0
	tetrahedralMax = 115.0
)

//RingQuerier tells whether an atom is part of a ring.
type RingQuerier interface {
	InRing(at *top.Atom) bool
}

//bondAngle returns the angle a-center-b in degrees.
func bondAngle(a, center, b *top.Atom) float64 {
	cos := r3.Cos(r3.Sub(a.Pos, center.Pos), r3.Sub(b.Pos, center.Pos))
	//rounding can take the cosine slightly out of [-1,1]
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

//neighborAngles returns all the angles between pairs of bonds of at, in degrees,
//and false if any of the atoms involved lacks coordinates.
func neighborAngles(at *top.Atom) ([]float64, bool) {
	if !at.HasPos {
		return nil, false
	}
	nb := at.Neighbors()
	for _, v := range nb {
		if !v.HasPos {
			return nil, false
		}
	}
	angles := make([]float64, 0, len(nb)*(len(nb)-1)/2)
	for i := 0; i < len(nb); i++ {
		for j := i + 1; j < len(nb); j++ {
			angles = append(angles, bondAngle(nb[i], at, nb[j]))
		}
	}
	return angles, true
}

//isResonant returns true if at has 2 or 3 bonds, at least one of them
//aromatic, and is in a ring. If rings is nil, ring membership is not checked.
func isResonant(at *top.Atom, rings RingQuerier) bool {
	if len(at.Bonds) < 2 || len(at.Bonds) > 3 {
		return false
	}
	aromatic := false
	for _, b := range at.Bonds {
		if b.Type() == top.Aromatic {
			aromatic = true
			break
		}
	}
	if !aromatic {
		return false
	}
	return rings == nil || rings.InRing(at)
}

//Classify returns the coordination geometry of at. Atoms with 2 to 4 bonds
//are classified from the angles between their bonds, so they need coordinates
//for themselves and their neighbors. rings is used to detect resonant atoms,
//and can be nil.
func Classify(at *top.Atom, rings RingQuerier) Geometry {
	if isResonant(at, rings) {
		return GeomResonant
	}
	switch len(at.Bonds) {
	case 0:
		return GeomUnbound
	case 1:
		return GeomTerminal
	case 5:
		return GeomTrigonalBipyramidal
	case 6:
		return GeomOctahedral
	case 2, 3, 4:
	default:
		return GeomUnresolved
	}
	angles, ok := neighborAngles(at)
	if !ok {
		return GeomUnresolved
	}
	switch len(at.Bonds) {
	case 2:
		if angles[0] > linearMin {
			return GeomLinear
		}
		return GeomTetrahedral
	case 3:
		largest := floats.Max(angles)
		if largest > linearMin {
			return GeomTShape
		}
		if largest > trigonalMin && largest < trigonalMax {
			return GeomTrigonalPlanar
		}
		return GeomTetrahedral
	default:
		//a tetrahedron averages ~109.5 degrees, a square plane 120
		mean := stat.Mean(angles, nil)
		if mean > tetrahedralMin && mean < tetrahedralMax {
			return GeomTetrahedral
		}
		return GeomSquarePlanar
	}
}

//Any matches any number of bonds of a type, in a BondPattern.
const Any = -1

//BondPattern is the number of bonds of each type an atom must have.
//A field set to Any matches any number of bonds of that type.
type BondPattern struct {
	Single, Double, Triple, Quadruple, Aromatic int
}

//Some patterns used by the typing rules.
var (
	AromaticOnly  = BondPattern{0, 0, 0, 0, Any}
	OneDouble     = BondPattern{Any, 1, 0, Any, 0}
	OnlyOneDouble = BondPattern{0, 1, 0, 0, 0}
	OneTriple     = BondPattern{Any, Any, 1, Any, Any}
)

func matchCount(want, got int) bool {
	return want == Any || want == got
}

//MatchesBondPattern returns true if the bonds of at match p exactly. A bond
//whose order is not one of the known types never matches.
func MatchesBondPattern(at *top.Atom, p BondPattern) bool {
	var got BondPattern
	for _, b := range at.Bonds {
		switch b.Type() {
		case top.Single:
			got.Single++
		case top.Double:
			got.Double++
		case top.Triple:
			got.Triple++
		case top.Quadruple:
			got.Quadruple++
		case top.Aromatic:
			got.Aromatic++
		default:
			return false
		}
	}
	return matchCount(p.Single, got.Single) &&
		matchCount(p.Double, got.Double) &&
		matchCount(p.Triple, got.Triple) &&
		matchCount(p.Quadruple, got.Quadruple) &&
		matchCount(p.Aromatic, got.Aromatic)
}

//GuessOxidationState estimates the oxidation state of at from its neighbors.
//H, alkali and alkaline earth neighbors count +1. Halogens count -1. O counts
//-2 if double bonded and -1 otherwise, so an OR group is taken as a whole.
//The result is the negative of the sum, or 0 if all the neighbors are of at's element.
func GuessOxidationState(at *top.Atom) int {
	bound := 0
	same := 0
	for _, b := range at.Bonds {
		p := b.Cross(at)
		switch {
		case p.Z == 8:
			if b.Type() == top.Double {
				bound -= 2
			} else {
				bound--
			}
		case p.Z == 9 || p.Z == 17 || p.Z == 35 || p.Z == 53:
			bound--
		case top.Group(p.Z) == 1 || top.Group(p.Z) == 2:
			bound++
		}
		if p.Z == at.Z {
			same++
		}
	}
	if same == len(at.Bonds) {
		return 0
	}
	return -bound
}

//Neighbor is a bonded partner of an atom, as seen from that atom.
type Neighbor struct {
	Element int
	Order   float64
	Bonds   int //number of bonds of the partner
	Atom    *top.Atom
}

//ClassificationContext gathers what the typing rules look at for one
//atom. It is built for each resolution and not kept.
type ClassificationContext struct {
	Atom           *top.Atom
	Element        int
	Neighbors      []Neighbor
	Geometry       Geometry
	OxidationState int
}

//NewContext builds the classification context of at.
func NewContext(at *top.Atom, rings RingQuerier) *ClassificationContext {
	c := &ClassificationContext{
		Atom:           at,
		Element:        at.Z,
		Neighbors:      make([]Neighbor, 0, len(at.Bonds)),
		Geometry:       Classify(at, rings),
		OxidationState: GuessOxidationState(at),
	}
	for _, b := range at.Bonds {
		p := b.Cross(at)
		c.Neighbors = append(c.Neighbors, Neighbor{Element: p.Z, Order: b.Order, Bonds: len(p.Bonds), Atom: p})
	}
	return c
}

//NBonds returns the number of bonds of the atom.
func (c *ClassificationContext) NBonds() int {
	return len(c.Neighbors)
}

//Count returns how many neighbors are of the element z.
func (c *ClassificationContext) Count(z int) int {
	n := 0
	for _, v := range c.Neighbors {
		if v.Element == z {
			n++
		}
	}
	return n
}
