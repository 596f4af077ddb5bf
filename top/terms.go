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

package top

import "fmt"

//Form tags the functional form of a bonded term's parameters.
type Form int

const (
	NoForm    Form = iota //the term has no parameters yet
	Harmonic              //[k, r0]
	Cosine                //[k, n, 0, -1]
	Cos2                  //[k, C0, C1, C2]
	UFFCosine             //[V, n, phi0]
)

func (f Form) String() string {
	switch f {
	case Harmonic:
		return "harmonic"
	case Cosine:
		return "cosine"
	case Cos2:
		return "cos2"
	case UFFCosine:
		return "uffcosine"
	default:
		return "none"
	}
}

//Term holds the parametrization of a bonded term.
//A Term with Form NoForm has no parameters.
type Term struct {
	Form   Form
	Params []float64
}

//SetParams replaces the term's form and parameters.
func (T *Term) SetParams(f Form, params []float64) {
	T.Form = f
	T.Params = append(T.Params[:0], params...)
}

//Parametrized returns true if the term has a form assigned.
func (T *Term) Parametrized() bool {
	return T.Form != NoForm
}

//Angle is the i-j-k bond angle term, j being the central atom.
type Angle struct {
	Index    int
	I, J, K  *Atom
	Selected bool
	Term
}

//Atoms returns the atoms in the angle, in order.
func (A *Angle) Atoms() []*Atom {
	return []*Atom{A.I, A.J, A.K}
}

func (A *Angle) String() string {
	return fmt.Sprintf("%s-%s-%s", A.I, A.J, A.K)
}

//Torsion is the i-j-k-l proper dihedral term, j-k being the central bond.
type Torsion struct {
	Index      int
	I, J, K, L *Atom
	Selected   bool
	Term
}

//Atoms returns the atoms in the torsion, in order.
func (T *Torsion) Atoms() []*Atom {
	return []*Atom{T.I, T.J, T.K, T.L}
}

func (T *Torsion) String() string {
	return fmt.Sprintf("%s-%s-%s-%s", T.I, T.J, T.K, T.L)
}
