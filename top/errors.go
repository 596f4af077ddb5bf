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

package top

import "fmt"

//Error is the error type of the package. It is the same as
//gouff's Error, repeated here to avoid a circular import.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

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
func (err Error) Decorations() []string { return err.deco }

//errDecorate adds caller to the decorations of err, if err is an Error.
//Other errors are wrapped in an Error.
func errDecorate(err error, caller string) error {
	switch e := err.(type) {
	case Error:
		e.Decorate(caller)
		return e
	case *Error:
		e.Decorate(caller)
		return e
	default:
		return Error{fmt.Sprintf("%s: %s", caller, err.Error()), []string{caller}}
	}
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotInBond       = PanicMsg("gouff/top: Trying to cross a bond from an atom not present in it")
	ErrIndexOutOfRange = PanicMsg("gouff/top: atom index out of range")
)
