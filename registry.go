/*
 * registry.go, part of gouff.
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
	"github.com/google/uuid"
)

//AtomTypeParameters are the Lennard-Jones parameters shared by every atom
//with the same UFF label.
type AtomTypeParameters struct {
	Label   string
	Element int
	Epsilon float64 //kJ/mol
	Sigma   float64 //Angstrom
}

//Handle addresses an AtomTypeParameters in a Registry.
type Handle int

//NoHandle is returned when a label is not in a Registry.
const NoHandle Handle = -1

//Registry holds at most one AtomTypeParameters per label, created the
//first time the label is used. It is not safe for concurrent use: give each
//goroutine its own Registry, or guard a shared one with a lock.
type Registry struct {
	session uuid.UUID
	params  []*AtomTypeParameters
	index   map[string]Handle
}

//NewRegistry returns an empty Registry with a new session ID.
func NewRegistry() *Registry {
	return &Registry{session: uuid.New(), index: make(map[string]Handle)}
}

//Session returns the ID of the registry, for logging.
func (R *Registry) Session() string {
	return R.session.String()
}

//LookupOrCreate returns the handle for the parameters of rec's label, creating
//them if needed. created is true if a new entry was made.
func (R *Registry) LookupOrCreate(rec Record) (h Handle, created bool) {
	if R.index == nil {
		R.index = make(map[string]Handle)
	}
	if h, ok := R.index[rec.Label]; ok {
		return h, false
	}
	eps, sigma := VdW(rec)
	h = Handle(len(R.params))
	R.params = append(R.params, &AtomTypeParameters{Label: rec.Label, Element: rec.Element, Epsilon: eps, Sigma: sigma})
	R.index[rec.Label] = h
	return h, true
}

//Params returns the parameters with handle h. It panics if h is not valid.
func (R *Registry) Params(h Handle) *AtomTypeParameters {
	if h < 0 || int(h) >= len(R.params) {
		panic(ErrNilHandle)
	}
	return R.params[h]
}

//ByLabel returns the parameters for label, or nil if the registry has none.
func (R *Registry) ByLabel(label string) *AtomTypeParameters {
	h, ok := R.index[label]
	if !ok {
		return nil
	}
	return R.params[h]
}

//Handle returns the handle for label, or NoHandle.
func (R *Registry) Handle(label string) Handle {
	if h, ok := R.index[label]; ok {
		return h
	}
	return NoHandle
}

//Len returns the number of parameter sets in the registry.
func (R *Registry) Len() int {
	return len(R.params)
}

//Labels returns the labels in the registry, in creation order.
func (R *Registry) Labels() []string {
	ret := make([]string, len(R.params))
	for i, v := range R.params {
		ret[i] = v.Label
	}
	return ret
}

//Prune removes the parameters whose label is not used by any atom of the
//given topologies, and returns how many were removed. All handles obtained
//before the call become invalid.
func (R *Registry) Prune(tops ...AtomSource) int {
	used := make(map[string]bool)
	for _, t := range tops {
		for i := 0; i < t.Len(); i++ {
			if l := t.Atom(i).Type; l != "" {
				used[l] = true
			}
		}
	}
	kept := R.params[:0]
	index := make(map[string]Handle, len(used))
	removed := 0
	for _, p := range R.params {
		if !used[p.Label] {
			removed++
			continue
		}
		index[p.Label] = Handle(len(kept))
		kept = append(kept, p)
	}
	for i := len(kept); i < len(R.params); i++ {
		R.params[i] = nil
	}
	R.params = kept
	R.index = index
	return removed
}
