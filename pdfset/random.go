// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfset

import (
	"math"

	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gopdf/pdferr"
)

// RandomValue draws one Gaussian-distributed sample of xf(id,x,Q²) from
// a Hessian set's eigenvector directions (spec.md §4.7): each
// eigenvector pair contributes one standard-normal coordinate, and the
// displacement from the central value is added as a linearised
// Hessian step. symmetrise folds each +/- pair into a single symmetric
// eigenvector displacement; unset it to sample the two sides
// independently using their own one-sided directions.
//
// seed fixes gosl/rnd's generator so the draw is reproducible; the
// Box-Muller transform is applied to its uniform output rather than
// relying on any particular gosl/rnd sampler name, since the pack
// shows gosl/rnd used only for distribution bookkeeping
// (inp.Data.AdjRandom / rnd.GetDistribution), never a plain seeded
// normal draw.
//
// Every term is scaled by the factor that takes the set's native
// ConfLevel to 1-sigma confidence (spec.md §4.7), so draws from a set
// quoted at a non-68.3%% confidence level are not over- or
// under-dispersed.
func (o *Set) RandomValue(id int, x, q2 float64, seed int64, symmetrise bool) (float64, error) {
	if o.Type != ErrorHessian && o.Type != ErrorSymmHessian {
		return 0, pdferr.UserErr("pdfset: RandomValue requires a Hessian or symmetric-Hessian error set")
	}
	central, v, err := o.values(id, x, q2)
	if err != nil {
		return 0, err
	}

	rnd.Init(seed)
	result := central
	scale := o.scale(defaultConfLevel)

	if o.Type == ErrorSymmHessian {
		for _, vi := range v {
			z := stdNormal()
			result += z * math.Abs(vi-central) * scale
		}
		return result, nil
	}

	for i := 0; i+1 < len(v); i += 2 {
		up, down := v[i]-central, v[i+1]-central
		z := stdNormal()
		if symmetrise {
			result += z * 0.5 * math.Abs(up-down) * scale
		} else if z >= 0 {
			result += z * up * scale
		} else {
			result += -z * down * scale
		}
	}
	return result, nil
}

// stdNormal draws one standard-normal variate from gosl/rnd's seeded
// uniform generator via the Box-Muller transform.
func stdNormal() float64 {
	u1 := rnd.Float64(1e-12, 1)
	u2 := rnd.Float64(0, 1)
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
