/*
 * types.go, part of gouff.
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

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	uff "github.com/rmera/gouff"
	"github.com/rmera/gouff/top"
)

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types [ELEMENT|LABEL]",
		Short: "List the UFF reference types",
		Long: `types prints the UFF reference table. With an argument, only the types
with that label, or those of that element, are printed.

Example:
  uffgen types
  uffgen types C
  uffgen types N_am`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs := uff.Types()
			if len(args) == 1 {
				var err error
				if recs, err = lookupTypes(args[0]); err != nil {
					return err
				}
			}
			return writeTypes(cmd.OutOrStdout(), recs)
		},
	}
}

//lookupTypes returns the type with label s or, if there is none, the types
//of the element with symbol s.
func lookupTypes(s string) ([]uff.Record, error) {
	if r, ok := uff.TypeByLabel(s); ok {
		return []uff.Record{r}, nil
	}
	z := top.ZBySymbol(s)
	if z == 0 {
		return nil, fmt.Errorf("%q is neither a UFF type nor an element", s)
	}
	recs := uff.TypesForElement(z)
	if len(recs) == 0 {
		return nil, fmt.Errorf("no UFF types for element %s", top.Symbol(z))
	}
	return recs, nil
}

func writeTypes(out io.Writer, recs []uff.Record) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tELEMENT\tHYBRID\tR\tTHETA\tX\tD\tZETA\tZ\tCHI\tV\tU\tDESCRIPTION")
	for _, r := range recs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.4f\t%.2f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%s\n",
			r.ID, r.Label, top.Symbol(r.Element), r.Hybrid, r.R, r.Theta, r.X, r.D, r.Zeta, r.Z, r.Chi, r.V, r.U, r.Description)
	}
	return w.Flush()
}
