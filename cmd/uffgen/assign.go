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

package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	uff "github.com/rmera/gouff"
	"github.com/rmera/gouff/internal/logging"
	"github.com/rmera/gouff/top"
)

//failedTermsError is returned when some terms could not be parametrized,
//so the process exits with a non-zero code after printing the results.
type failedTermsError struct {
	failed []*uff.TermError
}

func (e failedTermsError) Error() string {
	kinds := uff.FailedKinds(e.failed)
	names := make([]string, 0, len(kinds))
	for k, n := range kinds {
		names = append(names, fmt.Sprintf("%s: %d", k, n))
	}
	sort.Strings(names)
	return fmt.Sprintf("%d terms not parametrized (%s)", len(e.failed), strings.Join(names, ", "))
}

func (a *app) assignCmd() *cobra.Command {
	var sel []int
	cmd := &cobra.Command{
		Use:   "assign FILE",
		Short: "Type the atoms of a molecule and parametrize its bonded terms",
		Long: `assign reads a molecule, assigns UFF types to its atoms and computes the
parameters of its bonds, angles and torsions.

FILE can be an MDL molfile (.mol, .sdf) or a gouff JSON topology (.json),
optionally compressed with gzip (.gz) or zstd (.zst). The exit code is
non-zero if any term could not be parametrized.

Example:
  uffgen assign benzene.mol
  uffgen assign --format json --keep-existing typed.json.gz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAssign(cmd.OutOrStdout(), args[0], sel)
		},
	}
	f := cmd.Flags()
	f.Bool("keep-existing", false, "keep the atom types already in the input")
	f.Bool("inline", false, "determine types while parametrizing, without storing them in the atoms")
	f.String("format", "table", "output format: table or json")
	f.IntSliceVar(&sel, "select", nil, "only type and parametrize these atoms (0-based indexes)")
	_ = a.v.BindPFlag(keyKeepExisting, f.Lookup("keep-existing"))
	_ = a.v.BindPFlag(keyInline, f.Lookup("inline"))
	_ = a.v.BindPFlag(keyOutput, f.Lookup("format"))
	return cmd
}

func (a *app) runAssign(out io.Writer, path string, sel []int) error {
	format := a.v.GetString(keyOutput)
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown output format %q, use table or json", format)
	}
	t, err := readTopology(path)
	if err != nil {
		return err
	}
	keep := a.v.GetBool(keyKeepExisting)
	if keep && len(sel) > 0 {
		return fmt.Errorf("--select types only the selected atoms, replacing their types, and can't be used with --keep-existing")
	}
	log := a.log.With(logging.String("molecule", t.Name))
	fragments := len(t.Components())
	log.Info("topology read", logging.Int("atoms", t.Len()), logging.Int("bonds", len(t.Bonds())),
		logging.Int("angles", len(t.Angles())), logging.Int("torsions", len(t.Torsions())),
		logging.Int("fragments", fragments))
	if fragments > 1 {
		log.Warn("topology has disconnected fragments", logging.Int("fragments", fragments))
	}

	A := uff.NewAssigner(uff.WithLogger(log))
	reg := uff.NewRegistry()
	opts := uff.IntraOptions{DetermineTypesInline: a.v.GetBool(keyInline)}
	strategy := uff.TypeAll
	if keep {
		strategy = uff.TypeMissing
	}
	if len(sel) > 0 {
		if err := t.Select(sel...); err != nil {
			return err
		}
		strategy = uff.TypeSelection
		opts.SelectionOnly = true
	}
	var labels []string
	if opts.DetermineTypesInline {
		labels = inlineTypes(A, t, reg, opts.SelectionOnly)
	} else {
		A.AssignAtomTypesWith(t, reg, strategy)
		reg.Prune(t)
		labels = make([]string, t.Len())
		for i, at := range t.Atoms() {
			labels[i] = at.Type
		}
	}
	ok, failed := A.AssignIntramolecular(t, opts)
	if format == "json" {
		err = t.WriteJSON(out)
	} else {
		err = writeTable(out, t, labels, fragments, reg, failed)
	}
	if err != nil {
		return err
	}
	if !ok {
		return failedTermsError{failed}
	}
	return nil
}

//inlineTypes resolves the type of each atom for display, without storing it
//in the atom, and registers the parameters of the types found.
func inlineTypes(A *uff.Assigner, t *top.Topology, reg *uff.Registry, selectedOnly bool) []string {
	labels := make([]string, t.Len())
	for i, at := range t.Atoms() {
		if selectedOnly && !at.Selected {
			continue
		}
		rec, err := A.Resolver().Resolve(at, t)
		if err != nil {
			continue
		}
		labels[i] = rec.Label
		reg.LookupOrCreate(rec)
	}
	return labels
}

func joinInts(ints []int) string {
	s := make([]string, len(ints))
	for i, v := range ints {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, "-")
}

func joinFloats(fs []float64) string {
	s := make([]string, len(fs))
	for i, v := range fs {
		s[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return strings.Join(s, " ")
}

func atomIndexes(atoms []*top.Atom) []int {
	ret := make([]int, len(atoms))
	for i, v := range atoms {
		ret[i] = v.Index
	}
	return ret
}

func termRow(w io.Writer, atoms []*top.Atom, t top.Term) {
	form, params := "-", "-"
	if t.Parametrized() {
		form, params = t.Form.String(), joinFloats(t.Params)
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n", joinInts(atomIndexes(atoms)), form, params)
}

//writeTable prints the atoms with the types in labels, the van der Waals
//parameters of the types used, and every bonded term with its parameters.
func writeTable(out io.Writer, t *top.Topology, labels []string, fragments int, reg *uff.Registry, failed []*uff.TermError) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "# %s\n", t.Name)
	if fragments > 1 {
		fmt.Fprintf(w, "# %d disconnected fragments\n", fragments)
	}
	fmt.Fprintln(w, "ATOM\tELEMENT\tTYPE")
	for i, at := range t.Atoms() {
		typ := labels[i]
		if typ == "" {
			typ = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", at.Index, at.Symbol, typ)
	}
	if reg.Len() > 0 {
		fmt.Fprintln(w, "\nTYPE\tEPSILON\tSIGMA")
		for _, l := range reg.Labels() {
			p := reg.ByLabel(l)
			fmt.Fprintf(w, "%s\t%.6g\t%.6g\n", p.Label, p.Epsilon, p.Sigma)
		}
	}
	fmt.Fprintln(w, "\nBOND\tFORM\tPARAMS")
	for _, b := range t.Bonds() {
		termRow(w, []*top.Atom{b.At1, b.At2}, b.Term)
	}
	if len(t.Angles()) > 0 {
		fmt.Fprintln(w, "\nANGLE\tFORM\tPARAMS")
		for _, an := range t.Angles() {
			termRow(w, an.Atoms(), an.Term)
		}
	}
	if len(t.Torsions()) > 0 {
		fmt.Fprintln(w, "\nTORSION\tFORM\tPARAMS")
		for _, tor := range t.Torsions() {
			termRow(w, tor.Atoms(), tor.Term)
		}
	}
	if len(failed) > 0 {
		fmt.Fprintln(w, "\nFAILED\tKIND\tERROR")
		for _, f := range failed {
			fmt.Fprintf(w, "%s\t%s\t%s\n", joinInts(f.Atoms), f.Kind, f.Err)
		}
	}
	return w.Flush()
}
