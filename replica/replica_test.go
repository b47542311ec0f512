// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replica

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gopdf/pdf"
)

func constPDF(v float64) pdf.PDF {
	return pdf.NewAnalytic(func(id int, x, q2 float64) float64 { return v }, 0, 1, 1, 1e8, []int{21})
}

func Test_fromHessian01_deterministicUnderSeed(tst *testing.T) {
	chk.PrintTitle("replica01: same seed reproduces the same replica set")
	central := constPDF(100)
	eigen := []EigenPair{{Plus: constPDF(103), Minus: constPDF(97)}}

	a, err := FromHessian(central, eigen, 5, 7)
	if err != nil {
		tst.Fatalf("FromHessian: %v", err)
	}
	b, err := FromHessian(central, eigen, 5, 7)
	if err != nil {
		tst.Fatalf("FromHessian: %v", err)
	}
	for i := range a {
		va, _ := a[i].XfxQ2(21, 0.1, 100)
		vb, _ := b[i].XfxQ2(21, 0.1, 100)
		chk.Scalar(tst, "replica value reproducible", 1e-12, va, vb)
	}
}

func Test_fromHessian02_member0IsRunningMean(tst *testing.T) {
	chk.PrintTitle("replica02: member 0 carries the running mean of the other draws")
	central := constPDF(100)
	eigen := []EigenPair{{Plus: constPDF(102), Minus: constPDF(98)}}

	members, err := FromHessian(central, eigen, 4, 99)
	if err != nil {
		tst.Fatalf("FromHessian: %v", err)
	}
	var sum float64
	for r := 1; r < len(members); r++ {
		sum += members[r].Coeffs[0]
	}
	mean := sum / float64(len(members)-1)
	chk.Scalar(tst, "member0 coeff == mean of draws", 1e-12, members[0].Coeffs[0], mean)
}
