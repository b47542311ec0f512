// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package info

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cascade01_memberWinsOverSet(tst *testing.T) {
	chk.PrintTitle("info01: member-level key shadows set-level")
	c := Cascade{
		Member: Store{"Flavors": []interface{}{"21"}},
		Set:    Store{"Flavors": []interface{}{"1", "2", "21"}, "OrderQCD": 1},
		Global: Store{"Format": "1.0"},
	}
	v, err := c.StringSlice("Flavors")
	if err != nil {
		tst.Fatalf("StringSlice: %v", err)
	}
	if len(v) != 1 || v[0] != "21" {
		tst.Fatalf("expected member-level override, got %v", v)
	}
}

func Test_cascade02_fallsBackToSetThenGlobal(tst *testing.T) {
	chk.PrintTitle("info02: missing at member falls back to set, then global")
	c := Cascade{
		Member: Store{},
		Set:    Store{"OrderQCD": 1},
		Global: Store{"Format": "1.0"},
	}
	n, err := c.Int("OrderQCD")
	if err != nil || n != 1 {
		tst.Fatalf("Int(OrderQCD): n=%d err=%v", n, err)
	}
	s, err := c.String("Format")
	if err != nil || s != "1.0" {
		tst.Fatalf("String(Format): s=%q err=%v", s, err)
	}
}

func Test_cascade03_missingEverywhereErrors(tst *testing.T) {
	chk.PrintTitle("info03: key absent at all three levels is MetadataMissing")
	c := Cascade{Member: Store{}, Set: Store{}, Global: Store{}}
	if _, err := c.Float64("XMin"); err == nil {
		tst.Fatalf("expected MetadataMissing error")
	}
}

func Test_cascade04_wrongTypeErrors(tst *testing.T) {
	chk.PrintTitle("info04: wrong stored type is MetadataBadType")
	c := Cascade{Global: Store{"XMin": "not-a-number"}}
	if _, err := c.Float64("XMin"); err == nil {
		tst.Fatalf("expected MetadataBadType error")
	}
}

func Test_cascade05_float64SliceOrDefault(tst *testing.T) {
	chk.PrintTitle("info05: optional float slice falls back to default")
	c := Cascade{}
	got := c.Float64SliceOr("QBins", []float64{1, 2, 3})
	if len(got) != 3 || got[2] != 3 {
		tst.Fatalf("expected default slice, got %v", got)
	}
}
