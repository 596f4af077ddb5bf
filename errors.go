/*
 * errors.go, part of gouff.
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
)

//The kinds of error the package returns. Use errors.Is to check for them.
var (
	//No rule matched the atom, so it has no UFF type.
	ErrUnresolvedAtomType = errors.New("unresolved atom type")
	//A term needs a bond that is not in the topology.
	ErrMissingBond = errors.New("missing bond")
	//A term's central atom has no geometry code.
	ErrUnresolvedGeometry = errors.New("unresolved geometry")
	//A bond order is zero, negative or NaN.
	ErrInvalidBondOrder = errors.New("invalid bond order")
	//A label is not in the reference table.
	ErrUnknownLabel = errors.New("unknown type label")
	//An atom in a term has no type, and types are not determined inline.
	ErrMissingType = errors.New("missing atom type")
)

//Error is the error type returned by gouff functions. It carries one of the
//package's error kinds, which errors.Is can find.
type Error struct {
	message string
	deco    []string
	kind    error
}

func newError(kind error, caller, format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...), deco: []string{caller}, kind: kind}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	if err.kind == nil {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.kind.Error(), err.message)
}

//Unwrap returns the kind of the error.
func (err *Error) Unwrap() error { return err.kind }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Decorations returns the names of the functions the error went through,
//innermost first.
func (err *Error) Decorations() []string { return err.deco }

//errDecorate is a helper function that decorates the error with the caller's
//name before returning it, if it is an *Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrBadLabel  = PanicMsg("gouff: label not present in the UFF table")
	ErrNilHandle = PanicMsg("gouff: invalid registry handle")
)
