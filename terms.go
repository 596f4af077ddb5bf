/*
 * terms.go, part of gouff.
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

	"github.com/rmera/gouff/top"
)

const (
	KcalToKJ = 4.184
	//force constant prefactor, kcal/mol
	forcePrefactor = 664.12
	//bond order correction parameter
	lambda = 0.1332
	//bond order of the amide C-N bond
	AmideOrder = 1.41
)

//Params is a functional form with its coefficients. Energies are in kJ/mol,
//distances in Angstrom, and angles in degrees.
type Params struct {
	Form   top.Form
	Coeffs []float64
}

//Apply writes the parameters into t.
func (p Params) Apply(t *top.Term) {
	t.SetParams(p.Form, p.Coeffs)
}

func validOrder(order float64) bool {
	return order > 0 && !math.IsNaN(order) && !math.IsInf(order, 0)
}

//bondLength returns the UFF natural bond length between i and j with the
//given bond order: ri + rj + rBO - rEN.
func bondLength(i, j Record, order float64) float64 {
	rBO := -lambda * (i.R + j.R) * math.Log(order)
	chi := math.Sqrt(i.Chi) - math.Sqrt(j.Chi)
	rEN := i.R * j.R * chi * chi / (i.Chi*i.R + j.Chi*j.R)
	return i.R + j.R + rBO - rEN
}

//BondLength returns the UFF natural length of a bond of the given order
//between atoms of types i and j.
func BondLength(i, j Record, order float64) (float64, error) {
	if !validOrder(order) {
		return 0, newError(ErrInvalidBondOrder, "BondLength", "%s-%s bond order %g", i.Label, j.Label, order)
	}
	return bondLength(i, j, order), nil
}

//GenerateBond returns the harmonic parameters [k, r0] for a bond of the given
//order between atoms of types i and j. The result doesn't depend on the order of i and j.
func GenerateBond(i, j Record, order float64) (Params, error) {
	rij, err := BondLength(i, j, order)
	if err != nil {
		return Params{}, errDecorate(err, "GenerateBond")
	}
	k := forcePrefactor * KcalToKJ * i.Z * j.Z / (rij * rij * rij)
	return Params{Form: top.Harmonic, Coeffs: []float64{k, rij}}, nil
}

//GenerateAngle returns the parameters for the angle i-j-k, where the i-j
//and j-k bonds have orders orderIJ and orderJK. The form depends on the
//hybrid of j: linear, trigonal, square planar, octahedral and tetrahedral with
//a natural angle of 90 degrees get a Cosine form [k/n^2, n, 0, -1], the
//rest a Cos2 form [k, C0, C1, C2].
func GenerateAngle(i, j, k Record, orderIJ, orderJK float64) (Params, error) {
	if !validOrder(orderIJ) || !validOrder(orderJK) {
		return Params{}, newError(ErrInvalidBondOrder, "GenerateAngle", "%s-%s-%s bond orders %g and %g", i.Label, j.Label, k.Label, orderIJ, orderJK)
	}
	if j.Hybrid == NoHybrid {
		return Params{}, newError(ErrUnresolvedGeometry, "GenerateAngle", "no angle function around central type %s", j.Label)
	}
	rij := bondLength(i, j, orderIJ)
	rjk := bondLength(j, k, orderJK)
	theta := j.Theta * math.Pi / 180
	cos := math.Cos(theta)
	rik2 := rij*rij + rjk*rjk - 2*rij*rjk*cos
	rik5 := rik2 * rik2 * math.Sqrt(rik2)
	forcek := forcePrefactor * KcalToKJ * (i.Z * k.Z / rik5) * (3*rij*rjk*(1-cos*cos) - rik2*cos)

	var n float64
	switch {
	case j.Hybrid == Linear:
		n = 1
	case j.Hybrid == Trigonal:
		n = 3
	case j.Hybrid == Tetrahedral && j.Theta < 90.1:
		n = 2
	case j.Hybrid == SquarePlanar || j.Hybrid == Octahedral:
		n = 4
	default:
		sin := math.Sin(theta)
		c2 := 1 / (4 * sin * sin)
		c1 := -4 * c2 * cos
		c0 := c2 * (2*cos*cos + 1)
		return Params{Form: top.Cos2, Coeffs: []float64{forcek, c0, c1, c2}}, nil
	}
	return Params{Form: top.Cosine, Coeffs: []float64{forcek / (n * n), n, 0, -1}}, nil
}

//TorsionCase identifies which of the UFF torsion rules produced a set of
//torsion parameters.
type TorsionCase byte

const (
	TorsionGroup16Sp3 TorsionCase = 'a' //both central atoms group 16 and sp3
	TorsionGroup16Sp2 TorsionCase = 'b' //a group 16 sp3 atom and an sp2 one
	TorsionSp3Sp2Conj TorsionCase = 'c' //sp3-sp2, with the sp2 atom bonded to another sp2
	TorsionSp3Sp3     TorsionCase = 'd'
	TorsionSp2Sp2     TorsionCase = 'e'
	TorsionSp3Sp2     TorsionCase = 'f'
	TorsionNoBarrier  TorsionCase = 'g'
)

func (t TorsionCase) String() string {
	return string(rune(t))
}

//group16sp3V is the sp3 barrier for group 16 atoms: 2 kcal/mol for O, 6.8 for the rest.
func group16sp3V(r Record) float64 {
	if r.Element == zO {
		return 2.0
	}
	return 6.8
}

//ClassifyTorsion returns the rule that applies to the torsion i-j-k-l.
//Resonant atoms count as trigonal.
func ClassifyTorsion(i, j, k, l Record) TorsionCase {
	gi := i.Hybrid.trigonalLike()
	gj := j.Hybrid.trigonalLike()
	gk := k.Hybrid.trigonalLike()
	gl := l.Hybrid.trigonalLike()
	g16j := top.Group(j.Element) == 16
	g16k := top.Group(k.Element) == 16
	switch {
	case g16j && g16k && gj == Tetrahedral && gk == Tetrahedral:
		return TorsionGroup16Sp3
	case (g16j && gj == Tetrahedral && gk == Trigonal) || (g16k && gk == Tetrahedral && gj == Trigonal):
		return TorsionGroup16Sp2
	case (gj == Tetrahedral && gk == Trigonal && gl == Trigonal) || (gk == Tetrahedral && gj == Trigonal && gi == Trigonal):
		return TorsionSp3Sp2Conj
	case gj == Tetrahedral && gk == Tetrahedral:
		return TorsionSp3Sp3
	case gj == Trigonal && gk == Trigonal:
		return TorsionSp2Sp2
	case (gj == Tetrahedral && gk == Trigonal) || (gk == Tetrahedral && gj == Trigonal):
		return TorsionSp3Sp2
	default:
		return TorsionNoBarrier
	}
}

//GenerateTorsion returns the UFF cosine parameters [V, n, phi0] for the
//torsion i-j-k-l. orderJK is the order of the central bond, and hasJK tells
//whether that bond exists. It is only needed when both j and k are sp2, and
//then its absence is an error wrapping ErrMissingBond.
func GenerateTorsion(i, j, k, l Record, orderJK float64, hasJK bool) (Params, error) {
	var V, n, phi0 float64
	switch ClassifyTorsion(i, j, k, l) {
	case TorsionGroup16Sp3:
		V = math.Sqrt(group16sp3V(j) * group16sp3V(k))
		n, phi0 = 2, 90
	case TorsionGroup16Sp2:
		V = 5 * math.Sqrt(j.U*k.U)
		n, phi0 = 2, 90
	case TorsionSp3Sp2Conj:
		V = 2
		n, phi0 = 3, 180
	case TorsionSp3Sp3:
		V = math.Sqrt(j.V * k.V)
		n, phi0 = 3, 180
	case TorsionSp2Sp2:
		if !hasJK {
			return Params{}, newError(ErrMissingBond, "GenerateTorsion", "%s-%s-%s-%s needs the central bond order", i.Label, j.Label, k.Label, l.Label)
		}
		if !validOrder(orderJK) {
			return Params{}, newError(ErrInvalidBondOrder, "GenerateTorsion", "%s-%s-%s-%s central bond order %g", i.Label, j.Label, k.Label, l.Label, orderJK)
		}
		V = 5 * math.Sqrt(j.U*k.U) * (1 + 4.18*math.Log(orderJK))
		n, phi0 = 2, 180
	case TorsionSp3Sp2:
		V = 1
		n, phi0 = 6, 0
	default:
		V = 0
		n, phi0 = 1, 0
	}
	return Params{Form: top.UFFCosine, Coeffs: []float64{V * KcalToKJ, n, phi0}}, nil
}

//VdW returns the Lennard-Jones parameters of the type r: epsilon in kJ/mol
//and sigma in Angstrom.
func VdW(r Record) (epsilon, sigma float64) {
	return r.D * KcalToKJ, r.X / math.Pow(2, 1.0/6.0)
}
