// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfset

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gopdf/pdf"
)

func constPDF(v float64) pdf.PDF {
	return pdf.NewAnalytic(func(id int, x, q2 float64) float64 { return v }, 0, 1, 1, 1e8, []int{21})
}

func Test_set01_replicasUncertainty(tst *testing.T) {
	chk.PrintTitle("pdfset01: replica-set standard deviation at 68%% CL")
	members := []pdf.PDF{constPDF(10), constPDF(9), constPDF(11), constPDF(10), constPDF(10)}
	s, err := NewSet("toy", members, ErrorReplicas, 0)
	if err != nil {
		tst.Fatalf("NewSet: %v", err)
	}
	central, ep, em, es, scale, err := s.Uncertainty(21, 0.1, 100, 0, false)
	if err != nil {
		tst.Fatalf("Uncertainty: %v", err)
	}
	chk.Scalar(tst, "central", 1e-12, central, 10)
	chk.Scalar(tst, "scale at native CL", 1e-9, scale, 1)
	if ep != em || ep != es {
		tst.Fatalf("replica errors should be symmetric: +%g -%g sym%g", ep, em, es)
	}
	if es <= 0 {
		tst.Fatalf("expected nonzero spread, got %g", es)
	}
}

func Test_set02_hessianUncertainty(tst *testing.T) {
	chk.PrintTitle("pdfset02: Hessian +/- eigenvector pair uncertainty")
	members := []pdf.PDF{constPDF(100), constPDF(103), constPDF(98)}
	s, err := NewSet("toyhessian", members, ErrorHessian, 0)
	if err != nil {
		tst.Fatalf("NewSet: %v", err)
	}
	central, ep, em, _, scale, err := s.Uncertainty(21, 0.1, 100, 0, false)
	if err != nil {
		tst.Fatalf("Uncertainty: %v", err)
	}
	chk.Scalar(tst, "central", 1e-12, central, 100)
	chk.Scalar(tst, "scale at native CL", 1e-9, scale, 1)
	chk.Scalar(tst, "errplus", 1e-12, ep, 3)
	chk.Scalar(tst, "errminus", 1e-12, em, 2)
}

func Test_set05_replicasMedianMode(tst *testing.T) {
	chk.PrintTitle("pdfset05: replica median + quantile-interval mode")
	members := []pdf.PDF{constPDF(10), constPDF(8), constPDF(9), constPDF(10), constPDF(11), constPDF(12)}
	s, err := NewSet("toy", members, ErrorReplicas, 0)
	if err != nil {
		tst.Fatalf("NewSet: %v", err)
	}
	central, ep, em, es, scale, err := s.Uncertainty(21, 0.1, 100, 0, true)
	if err != nil {
		tst.Fatalf("Uncertainty: %v", err)
	}
	chk.Scalar(tst, "median scale", 1e-12, scale, 1)
	if ep < 0 || em < 0 {
		tst.Fatalf("expected non-negative quantile-interval half-widths: +%g -%g", ep, em)
	}
	chk.Scalar(tst, "errsymm == mean of errplus/errminus", 1e-12, es, 0.5*(ep+em))
	if central < 8 || central > 12 {
		tst.Fatalf("median central out of replica range: %g", central)
	}
}

func Test_set06_uncertaintyScaleAtNonNativeCL(tst *testing.T) {
	chk.PrintTitle("pdfset06: Hessian scale is 1 at a set's own confidence level, != 1 at another")
	members := []pdf.PDF{constPDF(100), constPDF(103), constPDF(98)}
	s, err := NewSet("toy90", members, ErrorHessian, 90)
	if err != nil {
		tst.Fatalf("NewSet: %v", err)
	}
	_, _, _, _, scaleNative, err := s.Uncertainty(21, 0.1, 100, 0, false)
	if err != nil {
		tst.Fatalf("Uncertainty: %v", err)
	}
	chk.Scalar(tst, "scale at native 90%% CL", 1e-9, scaleNative, 1)
	_, _, _, _, scale68, err := s.Uncertainty(21, 0.1, 100, 68.268949, false)
	if err != nil {
		tst.Fatalf("Uncertainty: %v", err)
	}
	if scale68 >= 1 {
		tst.Fatalf("rescaling a 90%% CL set down to 1-sigma should shrink the errors, got scale=%g", scale68)
	}
}

func Test_set03_correlationPerfectPositive(tst *testing.T) {
	chk.PrintTitle("pdfset03: proportional replica series correlate perfectly")
	members := []pdf.PDF{constPDF(1)}
	s, _ := NewSet("toy", members, ErrorReplicas, 0)
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 4, 6, 8, 10}
	r, err := s.Correlation(a, b)
	if err != nil {
		tst.Fatalf("Correlation: %v", err)
	}
	chk.Scalar(tst, "correlation", 1e-12, r, 1)
}

func Test_set04_randomValueHessianReproducible(tst *testing.T) {
	chk.PrintTitle("pdfset04: RandomValue is reproducible under a fixed seed")
	members := []pdf.PDF{constPDF(100), constPDF(103), constPDF(98)}
	s, _ := NewSet("toyhessian", members, ErrorHessian, 0)
	v1, err := s.RandomValue(21, 0.1, 100, 42, true)
	if err != nil {
		tst.Fatalf("RandomValue: %v", err)
	}
	v2, err := s.RandomValue(21, 0.1, 100, 42, true)
	if err != nil {
		tst.Fatalf("RandomValue: %v", err)
	}
	chk.Scalar(tst, "same seed => same draw", 1e-12, v1, v2)
}
