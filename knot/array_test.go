// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knot

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_array01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("array01: NewArray1F + Ibelow")

	x := []float64{0.1, 0.5}
	q := []float64{10, 100} // stored as Q, interpreted as Q²
	xf := [][]float64{{1, 2}, {3, 4}}

	arr, err := NewArray1F(x, q, xf)
	if err != nil {
		tst.Fatalf("NewArray1F failed: %v", err)
	}
	chk.Scalar(tst, "q2[0]", 1e-15, arr.Q2()[0], 100)
	chk.Scalar(tst, "q2[1]", 1e-15, arr.Q2()[1], 10000)
	chk.Scalar(tst, "xmin", 1e-15, arr.XMin(), 0.1)
	chk.Scalar(tst, "xmax", 1e-15, arr.XMax(), 0.5)

	ix, ok := Ibelow(arr.X(), 0.3)
	if !ok || ix != 0 {
		tst.Fatalf("Ibelow(0.3) should be (0,true), got (%d,%v)", ix, ok)
	}
	ix, ok = Ibelow(arr.X(), 0.5)
	if !ok || ix != 0 {
		tst.Fatalf("Ibelow(0.5) clamped to last-1 should be (0,true), got (%d,%v)", ix, ok)
	}
	_, ok = Ibelow(arr.X(), 0.05)
	if ok {
		tst.Fatalf("Ibelow(0.05) should be out of range")
	}
	_, ok = Ibelow(arr.X(), 0.6)
	if ok {
		tst.Fatalf("Ibelow(0.6) should be out of range")
	}
}

func Test_array02_badmonotone(tst *testing.T) {
	chk.PrintTitle("array02: non-monotone x rejected")
	_, err := NewArray1F([]float64{0.5, 0.1}, []float64{10, 100}, [][]float64{{1, 2}, {3, 4}})
	if err == nil {
		tst.Fatalf("expected error for non-increasing x knots")
	}
}

func Test_subgrid01(tst *testing.T) {
	chk.PrintTitle("subgrid01: SubgridNF.Add + First")
	sg := NewSubgridNF()
	a21, _ := NewArray1F([]float64{0.1, 0.5}, []float64{10, 100}, [][]float64{{1, 2}, {3, 4}})
	if err := sg.Add(21, a21); err != nil {
		tst.Fatalf("Add(21): %v", err)
	}
	a2, _ := NewArray1F([]float64{0.1, 0.5}, []float64{10, 100}, [][]float64{{5, 6}, {7, 8}})
	if err := sg.Add(2, a2); err != nil {
		tst.Fatalf("Add(2): %v", err)
	}
	chk.Ints(tst, "flavors", sg.Flavors(), []int{21, 2})
	if sg.First() != a21 {
		tst.Fatalf("First() should return the first-added flavour's array")
	}
	bad, _ := NewArray1F([]float64{0.1, 0.2, 0.5}, []float64{10, 50, 100}, [][]float64{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}})
	if err := sg.Add(1, bad); err == nil {
		tst.Fatalf("expected error adding flavour with inconsistent knot axes")
	}
}
