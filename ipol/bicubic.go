// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipol

import "github.com/cpmech/gopdf/knot"

// Bicubic interpolates xf with a cubic Hermite spline in native (x,Q²)
// coordinates (spec.md §4.3).
type Bicubic struct{}

// Name implements Interpolator.
func (o *Bicubic) Name() string { return "cubic" }

// InterpolateXQ2 implements Interpolator.
func (o *Bicubic) InterpolateXQ2(sg *knot.SubgridNF, id int, x, q2 float64) (float64, error) {
	arr, ix, iq2, err := findIndices(sg, x, q2)
	if err != nil {
		return 0, err
	}
	f := sg.Get(id)
	if f == nil {
		return 0, nil
	}
	return bicubicCore(arr.X(), arr.Q2(), f, ix, iq2, x, q2), nil
}

// bicubicCore runs the two-stage cubic-Hermite evaluation of spec.md
// §4.3: cubic-in-x "line values" vL,vH at the two bracketing Q² rows,
// then a cubic-in-Q² combination of those lines using derivatives
// computed (via central/one-sided differences restricted to this
// subgrid's own Q² axis) at the two bracketing rows. xk/qk are the
// coordinate axes the Hermite parameter is built from — native
// (x, Q²) for Bicubic, (log x, log Q²) for LogBicubic; f.XF is always
// indexed by raw knot position regardless of which coordinate space is
// used for interpolation.
func bicubicCore(xk, qk []float64, f *knot.Array1F, ix, iq2 int, xv, qv float64) float64 {
	nq2 := len(qk)

	rowValue := func(j int) float64 {
		dx := xk[ix+1] - xk[ix]
		tx := (xv - xk[ix]) / dx
		m0 := slopeAtFn(xk, func(i int) float64 { return f.XF(i, j) }, ix) * dx
		m1 := slopeAtFn(xk, func(i int) float64 { return f.XF(i, j) }, ix+1) * dx
		return cubicHermite(tx, f.XF(ix, j), f.XF(ix+1, j), m0, m1)
	}

	vL := rowValue(iq2)
	vH := rowValue(iq2 + 1)

	var vdL, vdH float64
	if iq2 == 0 {
		vdL = (rowValue(1) - rowValue(0)) / (qk[1] - qk[0])
	} else {
		vdL = (rowValue(iq2+1) - rowValue(iq2-1)) / (qk[iq2+1] - qk[iq2-1])
	}
	if iq2+1 == nq2-1 {
		vdH = (rowValue(iq2+1) - rowValue(iq2)) / (qk[iq2+1] - qk[iq2])
	} else {
		vdH = (rowValue(iq2+2) - rowValue(iq2)) / (qk[iq2+2] - qk[iq2])
	}

	dq2 := qk[iq2+1] - qk[iq2]
	tq := (qv - qk[iq2]) / dq2
	return cubicHermite(tq, vL, vH, vdL*dq2, vdH*dq2)
}
