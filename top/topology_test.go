/*
 * topology_test.go, part of gouff.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//chain builds a linear chain of n atoms of element sym, joined by single bonds.
func chain(t *testing.T, sym string, n int) *Topology {
	T := NewTopology(sym + "-chain")
	for i := 0; i < n; i++ {
		at, err := NewAtom(sym)
		require.NoError(t, err)
		T.AddAtom(at)
	}
	for i := 1; i < n; i++ {
		_, err := T.AddBond(i-1, i, 1)
		require.NoError(t, err)
	}
	return T
}

//ring builds a ring of n atoms of element sym, all bonds of the given order.
func ring(t *testing.T, sym string, n int, order float64) *Topology {
	T := chain(t, sym, n)
	for _, b := range T.Bonds() {
		b.Order = order
	}
	_, err := T.AddBond(n-1, 0, order)
	require.NoError(t, err)
	return T
}

func TestAddBond(t *testing.T) {
	T := chain(t, "C", 3)
	_, err := T.AddBond(0, 0, 1)
	assert.Error(t, err, "self bond")
	_, err = T.AddBond(1, 0, 1)
	assert.Error(t, err, "duplicate bond")
	_, err = T.AddBond(0, 7, 1)
	assert.Error(t, err, "out of range")
	b := T.Bond(1, 0)
	require.NotNil(t, b)
	assert.Same(t, b, T.Bond(0, 1))
	assert.Nil(t, T.Bond(0, 2))
	assert.Same(t, T.Atom(1), b.Cross(T.Atom(0)))
	assert.Panics(t, func() { b.Cross(T.Atom(2)) })
	assert.Len(t, T.Atom(1).Neighbors(), 2)
}

func TestBondType(t *testing.T) {
	cases := map[float64]BondType{
		1:      Single,
		1.0005: Single,
		1.5:    Aromatic,
		2:      Double,
		3:      Triple,
		4:      Quadruple,
		1.41:   Unknown,
		0:      Unknown,
		-1:     Unknown,
	}
	for order, want := range cases {
		assert.Equal(t, want, TypeOfOrder(order), "order %g", order)
	}
}

func TestGenerateTerms(t *testing.T) {
	butane := chain(t, "C", 4)
	assert.Equal(t, 2, butane.GenerateAngles())
	assert.Equal(t, 1, butane.GenerateTorsions())
	tor := butane.Torsions()[0]
	assert.Equal(t, []int{0, 1, 2, 3}, []int{tor.I.Index, tor.J.Index, tor.K.Index, tor.L.Index})

	benzene := ring(t, "C", 6, AromaticOrder)
	assert.Equal(t, 6, benzene.GenerateAngles())
	assert.Equal(t, 6, benzene.GenerateTorsions())

	cyclopropane := ring(t, "C", 3, 1)
	assert.Equal(t, 3, cyclopropane.GenerateAngles())
	assert.Equal(t, 0, cyclopropane.GenerateTorsions())

	//neopentane skeleton: 4 carbons around a central one
	neo := chain(t, "C", 2)
	for i := 0; i < 3; i++ {
		at, _ := NewAtom("C")
		neo.AddAtom(at)
		_, err := neo.AddBond(0, at.Index, 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 6, neo.GenerateAngles())
	assert.Equal(t, 0, neo.GenerateTorsions())
	//calling again does not duplicate
	assert.Equal(t, 6, neo.GenerateAngles())
	assert.Len(t, neo.Angles(), 6)
}

func TestRings(t *testing.T) {
	hexane := chain(t, "C", 6)
	for _, at := range hexane.Atoms() {
		assert.False(t, hexane.InRing(at))
	}
	cyclohexane := ring(t, "C", 6, 1)
	for _, at := range cyclohexane.Atoms() {
		assert.True(t, cyclohexane.InRing(at))
	}
	//methylcyclohexane
	at, _ := NewAtom("C")
	cyclohexane.AddAtom(at)
	b, err := cyclohexane.AddBond(0, at.Index, 1)
	require.NoError(t, err)
	assert.False(t, cyclohexane.BondInRing(b))
	assert.False(t, cyclohexane.InRing(at))
	assert.True(t, cyclohexane.InRing(cyclohexane.Atom(0)))
	assert.Len(t, cyclohexane.Components(), 1)
}

func TestComponents(t *testing.T) {
	T := chain(t, "C", 2)
	for _, s := range []string{"O", "H", "H"} {
		at, err := NewAtom(s)
		require.NoError(t, err)
		T.AddAtom(at)
	}
	_, err := T.AddBond(2, 3, 1)
	require.NoError(t, err)
	_, err = T.AddBond(2, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3, 4}}, T.Components())
}

func TestSelect(t *testing.T) {
	T := chain(t, "C", 4)
	T.GenerateTerms()
	require.NoError(t, T.Select(0, 1, 2))
	assert.Equal(t, []int{0, 1, 2}, T.Selection())
	assert.True(t, T.Bond(0, 1).Selected)
	assert.False(t, T.Bond(2, 3).Selected)
	assert.True(t, T.Angles()[0].Selected)
	assert.False(t, T.Angles()[1].Selected)
	assert.False(t, T.Torsions()[0].Selected)

	//a bad index leaves the previous selection untouched
	assert.Error(t, T.Select(3, 9))
	assert.Equal(t, []int{0, 1, 2}, T.Selection())
	assert.True(t, T.Bond(0, 1).Selected)
	assert.False(t, T.Bond(2, 3).Selected)
	assert.True(t, T.Angles()[0].Selected)
}

func TestElements(t *testing.T) {
	assert.Equal(t, 6, ZBySymbol("c"))
	assert.Equal(t, 17, ZBySymbol("CL"))
	assert.Equal(t, 0, ZBySymbol("Xx"))
	assert.Equal(t, "W", Symbol(74))
	assert.Equal(t, "", Symbol(0))
	groups := map[string]int{"H": 1, "He": 18, "B": 13, "O": 16, "S": 16, "Se": 16, "Te": 16, "Po": 16,
		"Na": 1, "Mg": 2, "Ti": 4, "Fe": 8, "Br": 17, "Cs": 1, "La": 3, "Gd": 3, "W": 6, "Rn": 18, "U": 3}
	for s, g := range groups {
		assert.Equal(t, g, Group(ZBySymbol(s)), s)
	}
	_, err := NewAtom("Qq")
	assert.Error(t, err)
}
