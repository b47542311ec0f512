// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipol

import "github.com/cpmech/gopdf/knot"

// Bilinear interpolates xf linearly in native x and Q² over the
// rectangle [x_ix,x_ix+1] x [Q2_iq2,Q2_iq2+1] (spec.md §4.3).
type Bilinear struct{}

// Name implements Interpolator.
func (o *Bilinear) Name() string { return "linear" }

// InterpolateXQ2 implements Interpolator.
func (o *Bilinear) InterpolateXQ2(sg *knot.SubgridNF, id int, x, q2 float64) (float64, error) {
	arr, ix, iq2, err := findIndices(sg, x, q2)
	if err != nil {
		return 0, err
	}
	f := sg.Get(id)
	if f == nil {
		return 0, nil
	}
	tx := (x - arr.X()[ix]) / (arr.X()[ix+1] - arr.X()[ix])
	tq := (q2 - arr.Q2()[iq2]) / (arr.Q2()[iq2+1] - arr.Q2()[iq2])
	return bilinearEval(f, ix, iq2, tx, tq), nil
}

func bilinearEval(f *knot.Array1F, ix, iq2 int, tx, tq float64) float64 {
	f00 := f.XF(ix, iq2)
	f10 := f.XF(ix+1, iq2)
	f01 := f.XF(ix, iq2+1)
	f11 := f.XF(ix+1, iq2+1)
	return f00*(1-tx)*(1-tq) + f10*tx*(1-tq) + f01*(1-tx)*tq + f11*tx*tq
}

// LogBilinear is Bilinear but with the interpolation fraction computed
// in (log x, log Q²) rather than native coordinates — the common case,
// since PDFs behave more linearly in log variables (spec.md §4.3).
type LogBilinear struct{}

// Name implements Interpolator.
func (o *LogBilinear) Name() string { return "loglinear" }

// InterpolateXQ2 implements Interpolator.
func (o *LogBilinear) InterpolateXQ2(sg *knot.SubgridNF, id int, x, q2 float64) (float64, error) {
	arr, ix, iq2, err := findIndices(sg, x, q2)
	if err != nil {
		return 0, err
	}
	f := sg.Get(id)
	if f == nil {
		return 0, nil
	}
	logX := logOf(x)
	logQ2 := logOf(q2)
	tx := (logX - arr.LogX()[ix]) / (arr.LogX()[ix+1] - arr.LogX()[ix])
	tq := (logQ2 - arr.LogQ2()[iq2]) / (arr.LogQ2()[iq2+1] - arr.LogQ2()[iq2])
	return bilinearEval(f, ix, iq2, tx, tq), nil
}
