/*
 * resolver.go, part of gouff.
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
	"github.com/rmera/gouff/top"
)

//Predicate is a test on the local environment of an atom.
type Predicate func(c *ClassificationContext) bool

//Rule assigns Label to any atom for which When is true. A nil When
//always matches, and works as the default of a rule list.
type Rule struct {
	When  Predicate
	Label string
}

//All is true if all the predicates are true.
func All(p ...Predicate) Predicate {
	return func(c *ClassificationContext) bool {
		for _, v := range p {
			if !v(c) {
				return false
			}
		}
		return true
	}
}

//AnyOf is true if at least one of the predicates is true.
func AnyOf(p ...Predicate) Predicate {
	return func(c *ClassificationContext) bool {
		for _, v := range p {
			if v(c) {
				return true
			}
		}
		return false
	}
}

//Not negates p.
func Not(p Predicate) Predicate {
	return func(c *ClassificationContext) bool { return !p(c) }
}

//Pattern is true if the atom's bonds match bp.
func Pattern(bp BondPattern) Predicate {
	return func(c *ClassificationContext) bool { return MatchesBondPattern(c.Atom, bp) }
}

//GeometryIs is true if the atom has geometry g.
func GeometryIs(g Geometry) Predicate {
	return func(c *ClassificationContext) bool { return c.Geometry == g }
}

//Valence is true if the absolute value of the atom's guessed oxidation state is n.
func Valence(n int) Predicate {
	return func(c *ClassificationContext) bool {
		os := c.OxidationState
		if os < 0 {
			os = -os
		}
		return os == n
	}
}

//NBonds is true if the atom has exactly n bonds.
func NBonds(n int) Predicate {
	return func(c *ClassificationContext) bool { return c.NBonds() == n }
}

//BoundTo is true if exactly count neighbors of the atom are of element z.
func BoundTo(z, count int) Predicate {
	return func(c *ClassificationContext) bool { return c.Count(z) == count }
}

//Custom turns any function on the context into a Predicate.
func Custom(f func(c *ClassificationContext) bool) Predicate {
	return Predicate(f)
}

//Resolver assigns UFF reference types to atoms. For each element it
//tries an ordered list of rules, the first match wins. Elements without
//rules get their only entry in the table.
type Resolver struct {
	rules map[int][]Rule
}

//NewResolver returns a Resolver with the standard UFF rules.
func NewResolver() *Resolver {
	return &Resolver{rules: defaultRules}
}

//NewResolverWithRules returns a Resolver with the standard rules, where the
//lists for the elements in extra replace the standard ones. It panics if a
//rule refers to a label that doesn't exist.
func NewResolverWithRules(extra map[int][]Rule) *Resolver {
	rules := make(map[int][]Rule, len(defaultRules)+len(extra))
	for k, v := range defaultRules {
		rules[k] = v
	}
	for k, v := range extra {
		checkRules(v)
		rules[k] = v
	}
	return &Resolver{rules: rules}
}

func checkRules(rules []Rule) {
	for _, r := range rules {
		MustTypeByLabel(r.Label)
	}
}

//Rules returns the rule list for the element with atomic number z, or nil.
func (R *Resolver) Rules(z int) []Rule {
	return R.rules[z]
}

//Resolve returns the reference type for at. rings is used to detect resonant
//atoms, and can be nil. If no rule matches, the error wraps ErrUnresolvedAtomType.
func (R *Resolver) Resolve(at *top.Atom, rings RingQuerier) (Record, error) {
	rules, ok := R.rules[at.Z]
	if !ok {
		types := TypesForElement(at.Z)
		if len(types) == 0 {
			return Record{}, newError(ErrUnresolvedAtomType, "Resolve", "atom %d: no UFF types for element %q", at.Index, at.Symbol)
		}
		return types[0], nil
	}
	c := NewContext(at, rings)
	for _, r := range rules {
		if r.When == nil || r.When(c) {
			return MustTypeByLabel(r.Label), nil
		}
	}
	return Record{}, newError(ErrUnresolvedAtomType, "Resolve", "atom %d (%s): no rule matches %d bonds, %s geometry, oxidation state %d",
		at.Index, at.Symbol, c.NBonds(), c.Geometry, c.OxidationState)
}
