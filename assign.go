/*
 * assign.go, part of gouff.
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

	"github.com/rmera/gouff/internal/logging"
	"github.com/rmera/gouff/top"
)

//Strategy selects which atoms AssignAtomTypesWith types.
type Strategy int

const (
	TypeAll       Strategy = iota //every atom, replacing existing types
	TypeMissing                   //only atoms without a known type
	TypeSelection                 //only selected atoms, replacing existing types
)

func (s Strategy) String() string {
	switch s {
	case TypeAll:
		return "all"
	case TypeMissing:
		return "missing"
	case TypeSelection:
		return "selection"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

//Assigner types the atoms of topologies and parametrizes their bonded
//terms with UFF. An Assigner keeps no state between calls, so one can be
//used from several goroutines, as long as each call gets its own Registry.
type Assigner struct {
	resolver *Resolver
	log      logging.Logger
}

//Option configures an Assigner.
type Option func(*Assigner)

//WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(a *Assigner) {
		if l != nil {
			a.log = l
		}
	}
}

//WithResolver replaces the standard typing rules.
func WithResolver(r *Resolver) Option {
	return func(a *Assigner) {
		if r != nil {
			a.resolver = r
		}
	}
}

//NewAssigner returns an Assigner with the standard UFF rules.
func NewAssigner(opts ...Option) *Assigner {
	a := &Assigner{resolver: NewResolver(), log: logging.NewNopLogger()}
	for _, o := range opts {
		o(a)
	}
	return a
}

//Resolver returns the resolver used by the assigner.
func (A *Assigner) Resolver() *Resolver { return A.resolver }

//AssignAtomTypes types the atoms of t, creating parameters in reg for each
//new label. If keepExisting is true, atoms that already have a known type
//keep it. It returns the number of typed atoms after the call.
func (A *Assigner) AssignAtomTypes(t Topology, reg *Registry, keepExisting bool) int {
	s := TypeAll
	if keepExisting {
		s = TypeMissing
	}
	return A.AssignAtomTypesWith(t, reg, s)
}

//AssignAtomTypesWith types the atoms of t chosen by s. Atoms no rule matches
//are logged and left untyped, and the rest are processed normally. It returns
//the number of atoms, among those s considers, that have a type after the call.
func (A *Assigner) AssignAtomTypesWith(t Topology, reg *Registry, s Strategy) int {
	log := A.log.With(logging.String("session", reg.Session()), logging.String("strategy", s.String()))
	typed, untyped := 0, 0
	for i := 0; i < t.Len(); i++ {
		at := t.Atom(i)
		if s == TypeSelection && !at.Selected {
			continue
		}
		if s == TypeMissing && at.Typed() {
			if rec, ok := TypeByLabel(at.Type); ok {
				A.register(log, reg, rec)
				typed++
				continue
			}
			log.Warn("atom has an unknown type, re-typing", logging.Int("atom", at.Index), logging.String("type", at.Type))
		}
		rec, err := A.resolver.Resolve(at, t)
		if err != nil {
			at.Type = ""
			untyped++
			log.Warn("atom left untyped", logging.Int("atom", at.Index), logging.String("element", at.Symbol), logging.Err(err))
			continue
		}
		at.Type = rec.Label
		A.register(log, reg, rec)
		typed++
	}
	log.Info("atom typing done", logging.Int("typed", typed), logging.Int("untyped", untyped), logging.Int("registry", reg.Len()))
	return typed
}

func (A *Assigner) register(log logging.Logger, reg *Registry, rec Record) {
	if _, created := reg.LookupOrCreate(rec); created {
		p := reg.ByLabel(rec.Label)
		log.Debug("new atom type parameters", logging.String("label", rec.Label),
			logging.Float64("epsilon", p.Epsilon), logging.Float64("sigma", p.Sigma))
	}
}

//TermKind tells the kind of bonded term.
type TermKind int

const (
	BondTerm TermKind = iota
	AngleTerm
	TorsionTerm
)

func (k TermKind) String() string {
	switch k {
	case BondTerm:
		return "bond"
	case AngleTerm:
		return "angle"
	case TorsionTerm:
		return "torsion"
	default:
		return "unknown"
	}
}

//TermError reports a bonded term that could not be parametrized.
type TermError struct {
	Kind  TermKind
	Atoms []int //indexes of the atoms in the term
	Err   error
}

func (e *TermError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Kind, e.Atoms, e.Err.Error())
}

func (e *TermError) Unwrap() error { return e.Err }

//IntraOptions control AssignIntramolecular.
type IntraOptions struct {
	DetermineTypesInline bool //resolve types from the topology instead of using the atoms' labels
	SelectionOnly        bool //only parametrize selected terms
}

//typeCache resolves the type of each atom at most once per call.
type typeCache struct {
	a      *Assigner
	t      Topology
	inline bool
	recs   map[int]Record
	errs   map[int]error
}

func (c *typeCache) get(at *top.Atom) (Record, error) {
	if r, ok := c.recs[at.Index]; ok {
		return r, nil
	}
	if err, ok := c.errs[at.Index]; ok {
		return Record{}, err
	}
	var rec Record
	var err error
	switch {
	case c.inline:
		if rec, err = c.a.resolver.Resolve(at, c.t); err != nil {
			err = errDecorate(err, "AssignIntramolecular")
		}
	case !at.Typed():
		err = newError(ErrMissingType, "AssignIntramolecular", "atom %d (%s) has no type", at.Index, at.Symbol)
	default:
		var ok bool
		if rec, ok = TypeByLabel(at.Type); !ok {
			err = newError(ErrUnknownLabel, "AssignIntramolecular", "atom %d has type %q", at.Index, at.Type)
		}
	}
	if err != nil {
		c.errs[at.Index] = err
		return Record{}, err
	}
	c.recs[at.Index] = rec
	return rec, nil
}

func (c *typeCache) all(atoms ...*top.Atom) ([]Record, error) {
	ret := make([]Record, len(atoms))
	for i, at := range atoms {
		r, err := c.get(at)
		if err != nil {
			return nil, err
		}
		ret[i] = r
	}
	return ret, nil
}

func isAmidePair(i, j Record) bool {
	return (i.Label == "C_am" && j.Label == "N_am") || (i.Label == "N_am" && j.Label == "C_am")
}

//effectiveOrder is the bond order used for the parameters, which is the order
//of b except for amide C-N bonds.
func effectiveOrder(b *top.Bond, i, j Record) float64 {
	if isAmidePair(i, j) {
		return AmideOrder
	}
	return b.Order
}

func indexes(atoms ...*top.Atom) []int {
	ret := make([]int, len(atoms))
	for i, v := range atoms {
		ret[i] = v.Index
	}
	return ret
}

//AssignIntramolecular parametrizes the bonds, angles and torsions of t, in
//that order. A term that can't be parametrized is left as it was and reported
//in the returned slice, and the rest are still processed. Terms parametrized
//before a failure keep their parameters. The bool is true if no term failed.
func (A *Assigner) AssignIntramolecular(t Topology, opts IntraOptions) (bool, []*TermError) {
	c := &typeCache{a: A, t: t, inline: opts.DetermineTypesInline, recs: make(map[int]Record), errs: make(map[int]error)}
	var failed []*TermError
	fail := func(kind TermKind, err error, atoms ...*top.Atom) {
		te := &TermError{Kind: kind, Atoms: indexes(atoms...), Err: err}
		A.log.Warn("term not parametrized", logging.String("kind", kind.String()), logging.Any("atoms", te.Atoms), logging.Err(err))
		failed = append(failed, te)
	}
	done := [3]int{}
	for _, b := range t.Bonds() {
		if opts.SelectionOnly && !b.Selected {
			continue
		}
		r, err := c.all(b.At1, b.At2)
		if err != nil {
			fail(BondTerm, err, b.At1, b.At2)
			continue
		}
		p, err := GenerateBond(r[0], r[1], effectiveOrder(b, r[0], r[1]))
		if err != nil {
			fail(BondTerm, err, b.At1, b.At2)
			continue
		}
		p.Apply(&b.Term)
		done[BondTerm]++
	}
	for _, a := range t.Angles() {
		if opts.SelectionOnly && !a.Selected {
			continue
		}
		r, err := c.all(a.I, a.J, a.K)
		if err != nil {
			fail(AngleTerm, err, a.Atoms()...)
			continue
		}
		bij, bjk := t.Bond(a.I.Index, a.J.Index), t.Bond(a.J.Index, a.K.Index)
		if bij == nil || bjk == nil {
			fail(AngleTerm, newError(ErrMissingBond, "AssignIntramolecular", "angle %s lacks a bond", a), a.Atoms()...)
			continue
		}
		p, err := GenerateAngle(r[0], r[1], r[2], effectiveOrder(bij, r[0], r[1]), effectiveOrder(bjk, r[1], r[2]))
		if err != nil {
			fail(AngleTerm, err, a.Atoms()...)
			continue
		}
		p.Apply(&a.Term)
		done[AngleTerm]++
	}
	for _, tor := range t.Torsions() {
		if opts.SelectionOnly && !tor.Selected {
			continue
		}
		r, err := c.all(tor.I, tor.J, tor.K, tor.L)
		if err != nil {
			fail(TorsionTerm, err, tor.Atoms()...)
			continue
		}
		var order float64
		bjk := t.Bond(tor.J.Index, tor.K.Index)
		if bjk != nil {
			order = effectiveOrder(bjk, r[1], r[2])
		}
		p, err := GenerateTorsion(r[0], r[1], r[2], r[3], order, bjk != nil)
		if err != nil {
			fail(TorsionTerm, err, tor.Atoms()...)
			continue
		}
		p.Apply(&tor.Term)
		done[TorsionTerm]++
	}
	A.log.Info("intramolecular terms done", logging.Int("bonds", done[BondTerm]), logging.Int("angles", done[AngleTerm]),
		logging.Int("torsions", done[TorsionTerm]), logging.Int("failed", len(failed)))
	return len(failed) == 0, failed
}

//FailedKinds counts the failures in errs by error kind, for reporting.
func FailedKinds(errs []*TermError) map[string]int {
	kinds := []error{ErrMissingType, ErrUnknownLabel, ErrUnresolvedAtomType, ErrMissingBond, ErrUnresolvedGeometry, ErrInvalidBondOrder}
	ret := make(map[string]int)
	for _, e := range errs {
		name := "other"
		for _, k := range kinds {
			if errors.Is(e, k) {
				name = k.Error()
				break
			}
		}
		ret[name]++
	}
	return ret
}

//Default assigner, for the package-level functions.
var defaultAssigner = NewAssigner()

//AssignAtomTypes types the atoms of t with the default Assigner.
func AssignAtomTypes(t Topology, reg *Registry, keepExisting bool) int {
	return defaultAssigner.AssignAtomTypes(t, reg, keepExisting)
}

//AssignIntramolecular parametrizes the terms of t with the default Assigner.
func AssignIntramolecular(t Topology, opts IntraOptions) (bool, []*TermError) {
	return defaultAssigner.AssignIntramolecular(t, opts)
}
