/*
 * mol.go, part of gouff.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

//molBondOrders maps the MDL bond type field to a bond order.
//Types 5-8 (query bonds) are not supported.
var molBondOrders = map[int]float64{
	1: 1,
	2: 2,
	3: 3,
	4: AromaticOrder,
}

//ReadMol reads the first molecule in an MDL molfile (V2000) or SD file
//from r. Atoms get the coordinates in the file. Angles and torsions are
//generated from the bonds read.
func ReadMol(r io.Reader) (*Topology, error) {
	sc := bufio.NewScanner(r)
	lineno := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineno++
		return sc.Text(), true
	}
	name, ok := next()
	if !ok {
		return nil, Error{"Empty molfile", []string{"ReadMol"}}
	}
	//program and comment lines, we don't use them
	for i := 0; i < 2; i++ {
		if _, ok := next(); !ok {
			return nil, Error{"Unexpected end of file in molfile header", []string{"ReadMol"}}
		}
	}
	counts, ok := next()
	if !ok {
		return nil, Error{"Missing counts line in molfile", []string{"ReadMol"}}
	}
	if strings.Contains(counts, "V3000") {
		return nil, Error{"V3000 molfiles are not supported", []string{"ReadMol"}}
	}
	natoms, err1 := fixedInt(counts, 0, 3)
	nbonds, err2 := fixedInt(counts, 3, 6)
	if err1 != nil || err2 != nil {
		return nil, Error{fmt.Sprintf("Ill formatted counts line: %q", counts), []string{"ReadMol"}}
	}
	T := NewTopology(strings.TrimSpace(name))
	for i := 0; i < natoms; i++ {
		line, ok := next()
		if !ok {
			return nil, Error{fmt.Sprintf("Unexpected end of file reading atom %d of %d", i+1, natoms), []string{"ReadMol"}}
		}
		at, err := molAtom(line)
		if err != nil {
			return nil, Error{fmt.Sprintf("Line %d: %s", lineno, err.Error()), []string{"ReadMol"}}
		}
		T.AddAtom(at)
	}
	for i := 0; i < nbonds; i++ {
		line, ok := next()
		if !ok {
			return nil, Error{fmt.Sprintf("Unexpected end of file reading bond %d of %d", i+1, nbonds), []string{"ReadMol"}}
		}
		a1, e1 := fixedInt(line, 0, 3)
		a2, e2 := fixedInt(line, 3, 6)
		bt, e3 := fixedInt(line, 6, 9)
		if e1 != nil || e2 != nil || e3 != nil {
			return nil, Error{fmt.Sprintf("Line %d: ill formatted bond line %q", lineno, line), []string{"ReadMol"}}
		}
		order, ok := molBondOrders[bt]
		if !ok {
			return nil, Error{fmt.Sprintf("Line %d: unsupported bond type %d", lineno, bt), []string{"ReadMol"}}
		}
		if _, err := T.AddBond(a1-1, a2-1, order); err != nil {
			return nil, errDecorate(err, "ReadMol")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errDecorate(err, "ReadMol")
	}
	T.GenerateTerms()
	return T, nil
}

func molAtom(line string) (*Atom, error) {
	if len(line) < 34 {
		return nil, fmt.Errorf("atom line too short: %q", line)
	}
	var c [3]float64
	for i := range c {
		v, err := strconv.ParseFloat(strings.TrimSpace(line[i*10:i*10+10]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate in %q", line)
		}
		c[i] = v
	}
	at, err := NewAtom(line[31:34])
	if err != nil {
		return nil, err
	}
	at.SetPos(r3.Vec{X: c[0], Y: c[1], Z: c[2]})
	return at, nil
}

//fixedInt parses the integer in the columns [from,to) of line.
func fixedInt(line string, from, to int) (int, error) {
	if len(line) < to {
		if len(line) <= from {
			return 0, fmt.Errorf("line too short")
		}
		to = len(line)
	}
	return strconv.Atoi(strings.TrimSpace(line[from:to]))
}
