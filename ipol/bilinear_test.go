// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipol

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gopdf/knot"
)

// minimalSubgrid builds the spec.md §8 scenario-1 grid: x=[0.1,0.5],
// Q²=[10,100], flavour 21 with corner values
// f(0.1,10)=1, f(0.5,10)=2, f(0.1,100)=3, f(0.5,100)=4.
func minimalSubgrid(tst *testing.T) *knot.SubgridNF {
	arr := &knot.Array1F{}
	if err := arr.Init([]float64{0.1, 0.5}, []float64{10, 100}, [][]float64{{1, 3}, {2, 4}}); err != nil {
		tst.Fatalf("Init: %v", err)
	}
	sg := knot.NewSubgridNF()
	if err := sg.Add(21, arr); err != nil {
		tst.Fatalf("Add: %v", err)
	}
	return sg
}

func Test_bilinear01_midpoint(tst *testing.T) {
	chk.PrintTitle("bilinear01: scenario-1 midpoint = 2.5")
	sg := minimalSubgrid(tst)
	ip := &Bilinear{}
	v, err := ip.InterpolateXQ2(sg, 21, 0.3, 55)
	if err != nil {
		tst.Fatalf("InterpolateXQ2: %v", err)
	}
	chk.Scalar(tst, "xf(21,0.3,55)", 1e-13, v, 2.5)
}

func Test_bilinear02_exactAtKnots(tst *testing.T) {
	chk.PrintTitle("bilinear02: exact at every stored knot")
	sg := minimalSubgrid(tst)
	ip := &Bilinear{}
	cases := []struct {
		x, q2, want float64
	}{
		{0.1, 10, 1}, {0.5, 10, 2}, {0.1, 100, 3}, {0.5, 100, 4},
	}
	for _, c := range cases {
		v, err := ip.InterpolateXQ2(sg, 21, c.x, c.q2)
		if err != nil {
			tst.Fatalf("InterpolateXQ2(%g,%g): %v", c.x, c.q2, err)
		}
		chk.Scalar(tst, "knot value", 1e-13, v, c.want)
	}
}

func Test_loglinear01_sane(tst *testing.T) {
	chk.PrintTitle("loglinear01: interior value lies between corner extremes")
	sg := minimalSubgrid(tst)
	ip := &LogBilinear{}
	v, err := ip.InterpolateXQ2(sg, 21, 0.3, 55)
	if err != nil {
		tst.Fatalf("InterpolateXQ2: %v", err)
	}
	if v < 1 || v > 4 {
		tst.Fatalf("loglinear interior value %g outside corner bounds [1,4]", v)
	}
}

func Test_bilinear03_missingFlavor(tst *testing.T) {
	chk.PrintTitle("bilinear03: unregistered flavour returns 0, no error")
	sg := minimalSubgrid(tst)
	ip := &Bilinear{}
	v, err := ip.InterpolateXQ2(sg, 5, 0.3, 55)
	if err != nil {
		tst.Fatalf("InterpolateXQ2: %v", err)
	}
	chk.Scalar(tst, "xf(5,...)", 1e-13, v, 0)
}

func Test_newInterpolator_factory(tst *testing.T) {
	chk.PrintTitle("factory: New() dispatches by name")
	for _, name := range []string{"linear", "loglinear", "cubic", "logcubic"} {
		ip, err := New(name)
		if err != nil {
			tst.Fatalf("New(%q): %v", name, err)
		}
		if ip.Name() != name {
			tst.Fatalf("New(%q).Name() = %q", name, ip.Name())
		}
	}
	if _, err := New("bogus"); err == nil {
		tst.Fatalf("expected error for unknown interpolator name")
	}
}
