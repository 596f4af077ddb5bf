/*
 * input.go, part of gouff.
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
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/rmera/gouff/top"
)

//zstdReader wraps a zstd decoder so it can be closed as an io.ReadCloser.
type zstdReader struct {
	*zstd.Decoder
}

func (z zstdReader) Close() error {
	z.Decoder.Close()
	return nil
}

//decompress wraps r in the decompressor for ext (".gz" or ".zst"). ok is
//false if ext is not a compression extension.
func decompress(r io.Reader, ext string) (rc io.ReadCloser, ok bool, err error) {
	switch ext {
	case ".gz":
		g, err := gzip.NewReader(r)
		if err != nil {
			return nil, true, err
		}
		return g, true, nil
	case ".zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, true, err
		}
		return zstdReader{d}, true, nil
	}
	return nil, false, nil
}

//readTopology reads a topology from path. The format is taken from the
//extension: .mol or .sdf for MDL molfiles, .json for gouff JSON, any of
//them optionally followed by .gz or .zst.
func readTopology(path string) (*top.Topology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var in io.Reader = f
	name := strings.ToLower(filepath.Base(path))
	ext := filepath.Ext(name)
	dec, ok, err := decompress(f, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if ok {
		defer dec.Close()
		in = dec
		name = strings.TrimSuffix(name, ext)
		ext = filepath.Ext(name)
	}
	var t *top.Topology
	switch ext {
	case ".mol", ".sdf":
		t, err = top.ReadMol(in)
	case ".json":
		t, err = top.ReadJSON(in)
	default:
		return nil, fmt.Errorf("%s: unknown format %q, use .mol, .sdf or .json", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(name, ext)
	}
	return t, nil
}
