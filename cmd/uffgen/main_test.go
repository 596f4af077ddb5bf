/*
 * main_test.go, part of gouff.
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
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gouff/top"
)

const formaldehydeMol = `formaldehyde
  gouff

  4  3  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
    1.2050    0.0000    0.0000 O   0  0  0  0  0  0  0  0  0  0  0  0
   -0.5600    0.9400    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
   -0.5600   -0.9400    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
  1  2  2  0
  1  3  1  0
  1  4  1  0
M  END
$$$$
`

//run executes uffgen with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func decodeTopology(t *testing.T, out string) *top.JSONTopology {
	t.Helper()
	var jt top.JSONTopology
	require.NoError(t, json.Unmarshal([]byte(out), &jt))
	return &jt
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "uffgen "+version+"\n", out)
}

func TestTypes(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	assert.Equal(t, 130, strings.Count(out, "\n")) //header and 129 types

	out, err = run(t, "types", "c")
	require.NoError(t, err)
	for _, l := range []string{"C_3", "C_R", "C_2", "C_1", "C_am"} {
		assert.Contains(t, out, l)
	}
	assert.NotContains(t, out, "H_")

	out, err = run(t, "types", "N_am")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "trigonal")

	_, err = run(t, "types", "Xx")
	assert.Error(t, err)
	_, err = run(t, "types", "C", "N")
	assert.Error(t, err)
}

func TestAssignTable(t *testing.T) {
	path := writeFile(t, "formaldehyde.mol", []byte(formaldehydeMol))
	out, err := run(t, "assign", path)
	require.NoError(t, err)
	for _, s := range []string{"# formaldehyde", "C_2", "O_2", "H_", "EPSILON", "harmonic", "cosine"} {
		assert.Contains(t, out, s)
	}
	assert.NotContains(t, out, "FAILED")
	assert.NotContains(t, out, "TORSION")
}

func TestAssignJSON(t *testing.T) {
	path := writeFile(t, "formaldehyde.sdf", []byte(formaldehydeMol))
	out, err := run(t, "assign", "--format", "json", path)
	require.NoError(t, err)
	jt := decodeTopology(t, out)
	require.Len(t, jt.Atoms, 4)
	assert.Equal(t, "C_2", jt.Atoms[0].Type)
	assert.Equal(t, "O_2", jt.Atoms[1].Type)
	require.Len(t, jt.Bonds, 3)
	for _, b := range jt.Bonds {
		assert.Equal(t, "harmonic", b.Form)
		assert.Len(t, b.Params, 2)
	}
	require.Len(t, jt.Angles, 3)
	for _, a := range jt.Angles {
		assert.Equal(t, "cosine", a.Form)
		assert.Equal(t, 3.0, a.Params[1])
	}

	//the JSON output is a valid input, compressed or not
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err = zw.Write([]byte(out))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	out2, err := run(t, "assign", "--format", "json", "--keep-existing", writeFile(t, "typed.json.gz", gz.Bytes()))
	require.NoError(t, err)
	assert.JSONEq(t, out, out2)

	var zs bytes.Buffer
	enc, err := zstd.NewWriter(&zs)
	require.NoError(t, err)
	_, err = enc.Write([]byte(out))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	out3, err := run(t, "assign", "--format", "json", "--inline", writeFile(t, "typed.JSON.zst", zs.Bytes()))
	require.NoError(t, err)
	jt3 := decodeTopology(t, out3)
	assert.Equal(t, jt.Bonds, jt3.Bonds)
}

func TestAssignSelection(t *testing.T) {
	path := writeFile(t, "formaldehyde.mol", []byte(formaldehydeMol))
	out, err := run(t, "assign", "--format", "json", "--select", "0,1", path)
	require.NoError(t, err)
	jt := decodeTopology(t, out)
	assert.Equal(t, "C_2", jt.Atoms[0].Type)
	assert.Equal(t, "", jt.Atoms[2].Type)
	assert.Equal(t, "harmonic", jt.Bonds[0].Form)
	assert.Empty(t, jt.Bonds[1].Params)
	for _, a := range jt.Angles {
		assert.Empty(t, a.Form)
	}

	_, err = run(t, "assign", "--select", "7", path)
	assert.Error(t, err)
}

func TestAssignFailures(t *testing.T) {
	in := `{"name": "bad", "atoms": [{"symbol": "C"}, {"symbol": "C"}], "bonds": [{"atoms": [0, 1], "order": -1}]}`
	out, err := run(t, "assign", writeFile(t, "bad.json", []byte(in)))
	require.Error(t, err)
	var fe failedTermsError
	require.True(t, errors.As(err, &fe))
	assert.Len(t, fe.failed, 1)
	assert.Contains(t, err.Error(), "1 terms not parametrized")
	assert.Contains(t, out, "FAILED")
}

func TestAssignErrors(t *testing.T) {
	_, err := run(t, "assign", filepath.Join(t.TempDir(), "nothere.mol"))
	assert.Error(t, err)
	_, err = run(t, "assign", writeFile(t, "x.pdb", []byte("ATOM")))
	assert.ErrorContains(t, err, "unknown format")
	_, err = run(t, "assign", writeFile(t, "x.mol.gz", []byte("not gzip")))
	assert.Error(t, err)
	_, err = run(t, "assign", "--format", "xml", writeFile(t, "x.mol", []byte(formaldehydeMol)))
	assert.ErrorContains(t, err, "unknown output format")
	_, err = run(t, "assign")
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	mol := writeFile(t, "formaldehyde.mol", []byte(formaldehydeMol))
	cfg := writeFile(t, "uffgen.yaml", []byte("log:\n  level: error\noutput:\n  format: json\n"))
	out, err := run(t, "--config", cfg, "assign", mol)
	require.NoError(t, err)
	assert.Equal(t, "C_2", decodeTopology(t, out).Atoms[0].Type)

	//flags win over the config file
	out, err = run(t, "--config", cfg, "assign", "--format", "table", mol)
	require.NoError(t, err)
	assert.Contains(t, out, "# formaldehyde")

	t.Setenv("UFFGEN_OUTPUT_FORMAT", "json")
	out, err = run(t, "assign", mol)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"))

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "version")
	assert.Error(t, err)
}

func TestAssignInlineTable(t *testing.T) {
	path := writeFile(t, "formaldehyde.mol", []byte(formaldehydeMol))
	out, err := run(t, "assign", "--inline", path)
	require.NoError(t, err)
	for _, s := range []string{"C_2", "O_2", "H_", "EPSILON", "harmonic"} {
		assert.Contains(t, out, s)
	}
	//types resolved inline are shown but not stored
	out, err = run(t, "assign", "--inline", "--format", "json", path)
	require.NoError(t, err)
	assert.Empty(t, decodeTopology(t, out).Atoms[0].Type)
}

func TestAssignFlagConflict(t *testing.T) {
	path := writeFile(t, "formaldehyde.mol", []byte(formaldehydeMol))
	_, err := run(t, "assign", "--select", "0,1", "--keep-existing", path)
	assert.ErrorContains(t, err, "--keep-existing")
}

func TestAssignFragments(t *testing.T) {
	in := `{"name": "two waters", "atoms": [{"symbol": "O"}, {"symbol": "H"}, {"symbol": "H"},
{"symbol": "O"}, {"symbol": "H"}, {"symbol": "H"}],
"bonds": [{"atoms": [0, 1]}, {"atoms": [0, 2]}, {"atoms": [3, 4]}, {"atoms": [3, 5]}]}`
	out, err := run(t, "assign", writeFile(t, "waters.json", []byte(in)))
	require.NoError(t, err)
	assert.Contains(t, out, "# 2 disconnected fragments")

	out, err = run(t, "assign", writeFile(t, "formaldehyde.mol", []byte(formaldehydeMol)))
	require.NoError(t, err)
	assert.NotContains(t, out, "fragments")
}
