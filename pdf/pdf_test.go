// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_canonicalID01(tst *testing.T) {
	chk.PrintTitle("canonicalID01: 0 maps to gluon")
	if CanonicalID(0) != Gluon {
		tst.Fatalf("CanonicalID(0) should be Gluon")
	}
	if CanonicalID(5) != 5 {
		tst.Fatalf("CanonicalID(5) should pass through")
	}
}

func Test_analytic01(tst *testing.T) {
	chk.PrintTitle("analytic01: formula PDF")
	a := NewAnalytic(func(id int, x, q2 float64) float64 { return x * q2 }, 0, 1, 1, 100, []int{21, 2})
	v, err := a.XfxQ2(0, 0.5, 10)
	if err != nil {
		tst.Fatalf("XfxQ2: %v", err)
	}
	chk.Scalar(tst, "xf(0,...)==xf(21,...)", 1e-15, v, 5)
	if !a.HasFlavor(0) {
		tst.Fatalf("id 0 should canonicalise to a supported flavour")
	}
	if a.HasFlavor(3) {
		tst.Fatalf("id 3 should not be supported")
	}
	vq, err := a.XfxQ(21, 0.5, 10)
	if err != nil {
		tst.Fatalf("XfxQ: %v", err)
	}
	chk.Scalar(tst, "xfxQ == xfxQ2(Q*Q)", 1e-15, vq, 0.5*100)
}

func Test_composite01(tst *testing.T) {
	chk.PrintTitle("composite01: pointwise mean of members")
	a := NewAnalytic(func(id int, x, q2 float64) float64 { return 1 }, 0, 1, 1, 100, []int{21})
	b := NewAnalytic(func(id int, x, q2 float64) float64 { return 3 }, 0, 1, 1, 100, []int{21})
	c, err := NewComposite(a, b)
	if err != nil {
		tst.Fatalf("NewComposite: %v", err)
	}
	v, err := c.XfxQ2(21, 0.5, 10)
	if err != nil {
		tst.Fatalf("XfxQ2: %v", err)
	}
	chk.Scalar(tst, "mean", 1e-15, v, 2)
}
