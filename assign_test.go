/*
 * assign_test.go, part of gouff.
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
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rmera/gouff/internal/logging"
	"github.com/rmera/gouff/top"
)

//Carbon monoxide with a double bond: the assigner must type C_2 and O_2
//and give the bond the hand-computed harmonic parameters.
func TestCarbonylEndToEnd(Te *testing.T) {
	T := carbonyl(Te)
	R := NewRegistry()
	if n := AssignAtomTypes(T, R, false); n != 2 {
		Te.Fatalf("Expected 2 typed atoms, got %d", n)
	}
	if T.Atom(0).Type != "C_2" || T.Atom(1).Type != "O_2" {
		Te.Fatalf("Expected C_2 and O_2, got %s and %s", T.Atom(0).Type, T.Atom(1).Type)
	}
	ok, failed := AssignIntramolecular(T, IntraOptions{})
	if !ok || len(failed) != 0 {
		Te.Fatalf("Intramolecular assignment failed: %v", failed)
	}
	b := T.Bond(0, 1)
	if b.Form != top.Harmonic {
		Te.Fatalf("Bond form should be harmonic, is %s", b.Form)
	}
	if !near(b.Params[0], 6737.816067490367) || !near(b.Params[1], 1.2194547241544453) {
		Te.Errorf("Bad C=O parameters %v", b.Params)
	}
}

func TestAssignIdempotent(Te *testing.T) {
	T := ethane(Te)
	R := NewRegistry()
	n1 := AssignAtomTypes(T, R, true)
	l1 := R.Len()
	p1 := R.ByLabel("C_3")
	n2 := AssignAtomTypes(T, R, true)
	if n1 != n2 || n1 != T.Len() {
		Te.Errorf("Typed atom count changed: %d then %d", n1, n2)
	}
	if R.Len() != l1 || R.ByLabel("C_3") != p1 {
		Te.Error("Second assignment created new parameters")
	}
}

func TestKeepExisting(Te *testing.T) {
	T := methane(Te)
	T.Atom(0).Type = "C_R" //wrong, but kept
	T.Atom(1).Type = "bogus"
	R := NewRegistry()
	AssignAtomTypes(T, R, true)
	if T.Atom(0).Type != "C_R" {
		Te.Errorf("Existing type not kept: %s", T.Atom(0).Type)
	}
	if T.Atom(1).Type != "H_" {
		Te.Errorf("Unknown type should be replaced, got %s", T.Atom(1).Type)
	}
	if R.ByLabel("C_R") == nil {
		Te.Error("Kept types should be in the registry")
	}
	AssignAtomTypes(T, R, false)
	if T.Atom(0).Type != "C_3" {
		Te.Errorf("Type not replaced: %s", T.Atom(0).Type)
	}
}

func TestTypeSelection(Te *testing.T) {
	T := methane(Te)
	if err := T.Select(0, 1); err != nil {
		Te.Fatal(err)
	}
	A := NewAssigner()
	if n := A.AssignAtomTypesWith(T, NewRegistry(), TypeSelection); n != 2 {
		Te.Errorf("Expected 2 typed atoms, got %d", n)
	}
	if !T.Atom(1).Typed() || T.Atom(2).Typed() {
		Te.Error("Only selected atoms should be typed")
	}
}

func TestUntypedAtoms(Te *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	//P only typed when it has 5 bonds
	res := NewResolverWithRules(map[int][]Rule{15: {{NBonds(5), "P_3+5"}}})
	A := NewAssigner(WithLogger(logging.NewLoggerFromCore(core)), WithResolver(res))
	//two P atoms no rule can type, on a C chain
	T := build(Te, "CP2", []string{"P", "C", "P", "H", "H"}, nil, bnd{0, 1, 1}, bnd{1, 2, 1}, bnd{0, 3, 1}, bnd{2, 4, 1})
	R := NewRegistry()
	n := A.AssignAtomTypes(T, R, false)
	if n != 3 {
		Te.Errorf("Expected 3 typed atoms, got %d", n)
	}
	if T.Atom(0).Typed() || T.Atom(2).Typed() {
		Te.Error("P atoms should be untyped")
	}
	if w := logs.FilterMessage("atom left untyped").Len(); w != 2 {
		Te.Errorf("Expected 2 warnings for untyped atoms, got %d", w)
	}
	if logs.FilterMessage("new atom type parameters").Len() != R.Len() {
		Te.Error("Expected one debug message per created parameter set")
	}
	ok, failed := A.AssignIntramolecular(T, IntraOptions{})
	if ok {
		Te.Fatal("Terms with untyped atoms should fail")
	}
	//every bond and angle has a P, and so does the only torsion
	if len(failed) != len(T.Bonds())+len(T.Angles())+len(T.Torsions()) {
		Te.Errorf("Expected every term to fail, %d failed", len(failed))
	}
	for _, f := range failed {
		if !errors.Is(f, ErrMissingType) {
			Te.Errorf("Expected missing type errors, got %v", f)
		}
	}
	if k := FailedKinds(failed); k[ErrMissingType.Error()] != len(failed) {
		Te.Errorf("Bad failure count %v", k)
	}
	//inline, the error is the unresolved type itself
	_, failed = A.AssignIntramolecular(T, IntraOptions{DetermineTypesInline: true})
	if len(failed) == 0 || !errors.Is(failed[0], ErrUnresolvedAtomType) {
		Te.Errorf("Expected unresolved atom type errors, got %v", failed)
	}
}

func TestPartialSuccess(Te *testing.T) {
	T := ethylene(Te)
	AssignAtomTypes(T, NewRegistry(), false)
	//a zero order in one C-H bond makes it, and its angles, fail
	T.Bond(0, 2).Order = 0
	ok, failed := AssignIntramolecular(T, IntraOptions{})
	if ok {
		Te.Fatal("Expected failures")
	}
	kinds := map[TermKind]int{}
	for _, f := range failed {
		if !errors.Is(f, ErrInvalidBondOrder) {
			Te.Errorf("Unexpected error %v", f)
		}
		kinds[f.Kind]++
	}
	//the bond, and the H-C-C and H-C-H angles around atom 0
	if kinds[BondTerm] != 1 || kinds[AngleTerm] != 2 || kinds[TorsionTerm] != 0 {
		Te.Errorf("Unexpected failures %v", kinds)
	}
	if T.Bond(0, 2).Parametrized() {
		Te.Error("Failed bond should not have parameters")
	}
	for _, b := range T.Bonds() {
		if b != T.Bond(0, 2) && b.Form != top.Harmonic {
			Te.Errorf("Bond %s not parametrized", b)
		}
	}
	for _, t := range T.Torsions() {
		if t.Form != top.UFFCosine || t.Params[1] != 2 {
			Te.Errorf("Torsion %s should be sp2-sp2, got %s %v", t, t.Form, t.Params)
		}
	}
}

//An explicit zero order in a JSON topology reaches the term generators as it is.
func TestZeroOrderFromJSON(Te *testing.T) {
	in := `{"name":"propane skeleton","atoms":[{"symbol":"C"},{"symbol":"C"},{"symbol":"C"}],
"bonds":[{"atoms":[0,1],"order":0},{"atoms":[1,2]}]}`
	T, err := top.ReadJSON(strings.NewReader(in))
	if err != nil {
		Te.Fatal(err)
	}
	AssignAtomTypes(T, NewRegistry(), false)
	ok, failed := AssignIntramolecular(T, IntraOptions{})
	if ok {
		Te.Fatal("A zero bond order should fail")
	}
	kinds := map[TermKind]int{}
	for _, f := range failed {
		if !errors.Is(f, ErrInvalidBondOrder) {
			Te.Errorf("Expected an invalid bond order error, got %v", f)
		}
		kinds[f.Kind]++
	}
	if kinds[BondTerm] != 1 || kinds[AngleTerm] != 1 {
		Te.Errorf("Expected the 0-1 bond and the angle to fail, got %v", kinds)
	}
	if T.Bond(0, 1).Parametrized() || !T.Bond(1, 2).Parametrized() {
		Te.Error("Only the bond with a valid order should be parametrized")
	}
}

func TestMissingBondInAngle(Te *testing.T) {
	//an angle whose atoms are not all bonded, as a hand-edited topology could have
	fake := build(Te, "fake", []string{"C", "C", "C"}, nil, bnd{0, 1, 1})
	for _, at := range fake.Atoms() {
		at.Type = "C_3"
	}
	tp := &fakeTopology{Topology: fake, angles: []*top.Angle{{I: fake.Atom(0), J: fake.Atom(1), K: fake.Atom(2)}}}
	ok, failed := AssignIntramolecular(tp, IntraOptions{})
	if ok || len(failed) != 1 || !errors.Is(failed[0], ErrMissingBond) || failed[0].Kind != AngleTerm {
		Te.Errorf("Expected one missing bond failure, got %v", failed)
	}
	if fake.Bond(0, 1).Form != top.Harmonic {
		Te.Error("Bond should be parametrized despite the angle failure")
	}
}

//fakeTopology replaces the angles of a topology.
type fakeTopology struct {
	*top.Topology
	angles []*top.Angle
}

func (f *fakeTopology) Angles() []*top.Angle { return f.angles }

func TestAmideOrder(Te *testing.T) {
	T := acetamide(Te)
	AssignAtomTypes(T, NewRegistry(), false)
	ok, failed := AssignIntramolecular(T, IntraOptions{})
	if !ok {
		Te.Fatalf("Acetamide failed: %v", failed)
	}
	want, _ := GenerateBond(MustTypeByLabel("C_am"), MustTypeByLabel("N_am"), AmideOrder)
	cn := T.Bond(1, 3)
	if !near(cn.Params[1], want.Coeffs[1]) {
		Te.Errorf("Amide C-N should use order %v: got r=%v, want %v", AmideOrder, cn.Params[1], want.Coeffs[1])
	}
}

func TestSelectionOnly(Te *testing.T) {
	T := ethane(Te)
	AssignAtomTypes(T, NewRegistry(), false)
	if err := T.Select(0, 1, 2); err != nil {
		Te.Fatal(err)
	}
	ok, _ := AssignIntramolecular(T, IntraOptions{SelectionOnly: true})
	if !ok {
		Te.Fatal("Selection failed")
	}
	if !T.Bond(0, 1).Parametrized() || !T.Bond(0, 2).Parametrized() || T.Bond(0, 3).Parametrized() {
		Te.Error("Only selected bonds should be parametrized")
	}
	for _, t := range T.Torsions() {
		if t.Parametrized() {
			Te.Error("No torsion is fully selected")
		}
	}
}

func TestBenzeneInline(Te *testing.T) {
	T := benzene(Te)
	ok, failed := AssignIntramolecular(T, IntraOptions{DetermineTypesInline: true})
	if !ok {
		Te.Fatalf("Benzene failed: %v", failed)
	}
	for _, at := range T.Atoms() {
		if at.Typed() {
			Te.Error("Inline typing should not change atom types")
		}
	}
	for _, a := range T.Angles() {
		if a.Form != top.Cos2 {
			Te.Errorf("Angle %s around C_R should be Cos2, is %s", a, a.Form)
		}
	}
	cr := MustTypeByLabel("C_R")
	if tc := ClassifyTorsion(cr, cr, cr, cr); tc != TorsionSp2Sp2 {
		Te.Errorf("C_R-C_R torsions should be sp2-sp2, got %c", tc)
	}
	for _, t := range T.Torsions() {
		if t.Form != top.UFFCosine {
			Te.Errorf("Torsion %s: %s", t, t.Form)
		}
	}
}

//Independent topologies, each with its own registry, can be processed concurrently.
func TestConcurrentAssign(Te *testing.T) {
	A := NewAssigner()
	makers := []func(*testing.T) *top.Topology{methane, ethane, benzene, ethylene, acetamide, carbonyl}
	tops := make([]*top.Topology, 24)
	for i := range tops {
		tops[i] = makers[i%len(makers)](Te)
	}
	var wg sync.WaitGroup
	errs := make(chan error, len(tops))
	for i, t := range tops {
		wg.Add(1)
		go func(i int, t *top.Topology) {
			defer wg.Done()
			R := NewRegistry()
			A.AssignAtomTypes(t, R, false)
			if ok, failed := A.AssignIntramolecular(t, IntraOptions{}); !ok {
				errs <- fmt.Errorf("topology %d (%s): %v", i, t.Name, failed)
			}
		}(i, t)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		Te.Error(err)
	}
	for i := len(makers); i < len(tops); i++ {
		a, b := tops[i], tops[i%len(makers)]
		for j, at := range a.Atoms() {
			if at.Type != b.Atom(j).Type {
				Te.Errorf("Topology %d atom %d typed %s, but %s in its twin", i, j, at.Type, b.Atom(j).Type)
			}
		}
	}
}
