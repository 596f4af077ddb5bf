/*
 * table_test.go, part of gouff.
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
	"testing"

	"github.com/rmera/gouff/top"
)

func TestTable(Te *testing.T) {
	all := Types()
	if len(all) != 129 {
		Te.Errorf("Expected 129 reference types, got %d", len(all))
	}
	seen := make(map[string]bool)
	for i, r := range all {
		if seen[r.Label] {
			Te.Errorf("Label %s repeated", r.Label)
		}
		seen[r.Label] = true
		if i > 0 && all[i-1].ID >= r.ID {
			Te.Errorf("Types not sorted by ID at %s", r.Label)
		}
		if top.Symbol(r.Element) == "" {
			Te.Errorf("Type %s has an invalid element %d", r.Label, r.Element)
		}
	}
	c, ok := TypeByLabel("C_R")
	if !ok || c.Hybrid != Resonant || c.Element != 6 {
		Te.Errorf("Bad C_R record: %v", c)
	}
	if _, ok := TypeByLabel("C_9"); ok {
		Te.Error("Found a label that doesn't exist")
	}
	carbons := TypesForElement(6)
	if len(carbons) != 5 {
		Te.Errorf("Expected 5 carbon types, got %d", len(carbons))
	}
	carbons[0].Label = "mutated"
	if TypesForElement(6)[0].Label != "C_3" {
		Te.Error("TypesForElement returned the table itself")
	}
	if len(TypesForElement(0)) != 0 {
		Te.Error("Types for element 0")
	}
}

func TestMustTypeByLabel(Te *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			Te.Error("MustTypeByLabel didn't panic with an unknown label")
		}
	}()
	if MustTypeByLabel("O_3_z").Element != 8 {
		Te.Error("Bad O_3_z")
	}
	MustTypeByLabel("Xx_3")
}

func TestHybrid(Te *testing.T) {
	if Resonant.trigonalLike() != Trigonal || Tetrahedral.trigonalLike() != Tetrahedral {
		Te.Error("trigonalLike")
	}
	if Resonant.Code() != 9 || Bridging.Code() != 8 {
		Te.Error("Hybrid codes changed")
	}
	if MustTypeByLabel("H_b").Hybrid != Bridging {
		Te.Error("H_b should be bridging")
	}
}
