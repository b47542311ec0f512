// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gopdf/pathsearch"
)

func Test_parseIndex01(tst *testing.T) {
	chk.PrintTitle("factory01: pdfsets.index parsing, both row shapes")
	doc := strings.Join([]string{
		"# comment",
		"11000 NNPDF31_nnlo_as_0118 0",
		"11001 NNPDF31_nnlo_as_0118_1000",
		"",
	}, "\n")
	idx, err := ParseIndex(strings.NewReader(doc))
	if err != nil {
		tst.Fatalf("ParseIndex: %v", err)
	}
	e, err := idx.ByID(11000)
	if err != nil {
		tst.Fatalf("ByID: %v", err)
	}
	if e.SetName != "NNPDF31_nnlo_as_0118" || e.Member != 0 {
		tst.Fatalf("unexpected entry: %+v", e)
	}
	e2, err := idx.ByID(11001)
	if err != nil {
		tst.Fatalf("ByID: %v", err)
	}
	if e2.SetName != "NNPDF31_nnlo_as_0118" || e2.Member != 1000 {
		tst.Fatalf("unexpected legacy-name entry: %+v", e2)
	}
}

func Test_parseIndex02_unknownID(tst *testing.T) {
	chk.PrintTitle("factory02: unknown LHAID is IndexLookup error")
	idx, _ := ParseIndex(strings.NewReader("1 foo 0\n"))
	if _, err := idx.ByID(999); err == nil {
		tst.Fatalf("expected IndexLookup error")
	}
}

func Test_build01_fromDisk(tst *testing.T) {
	chk.PrintTitle("factory03: Builder decodes a toy set directory end to end")
	base := tst.TempDir()
	setDir := filepath.Join(base, "toyset")
	if err := os.MkdirAll(setDir, 0755); err != nil {
		tst.Fatalf("MkdirAll: %v", err)
	}

	info := "SetDesc: toy\nNumMembers: 1\n"
	if err := os.WriteFile(filepath.Join(setDir, "toyset.info"), []byte(info), 0644); err != nil {
		tst.Fatalf("WriteFile: %v", err)
	}

	member := strings.Join([]string{
		"PdfType: central",
		"Interpolator: linear",
		"Extrapolator: nearest",
		"---",
		"0.1 0.5",
		"10 100",
		"21",
		"1.0",
		"3.0",
		"2.0",
		"4.0",
		"---",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(setDir, "toyset_0000.dat"), []byte(member), 0644); err != nil {
		tst.Fatalf("WriteFile: %v", err)
	}

	b := NewBuilder(pathsearch.FromString(base))
	p, err := b.Build("toyset", 0)
	if err != nil {
		tst.Fatalf("Build: %v", err)
	}
	// the Q line "10 100" gives Q2 knots 100 and 10000; 5050 is their midpoint
	v, err := p.XfxQ2(21, 0.3, 5050)
	if err != nil {
		tst.Fatalf("XfxQ2: %v", err)
	}
	chk.Scalar(tst, "xf(21,0.3,5050)", 1e-12, v, 2.5)
}
