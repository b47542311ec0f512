// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipol

import (
	"math"

	"github.com/cpmech/gopdf/knot"
)

// logCache holds the evaluator-local memo of spec.md §4.3: consecutive
// evaluations at the same (x,ix) or (Q²,iq2) reuse the already-computed
// logarithms instead of recomputing math.Log. The cache is only ever
// read/written by the LogBicubic value that owns it — it is NOT safe
// to share one LogBicubic across goroutines (spec.md §5); use Clone
// to give each goroutine its own evaluator.
type logCache struct {
	valid       bool
	x, q2       float64
	ix, iq2     int
	logX, logQ2 float64
}

// LogBicubic interpolates xf with a cubic Hermite spline in (log x,
// log Q²) coordinates — the common case for PDF grids (spec.md §4.3).
// A LogBicubic value is not safe for concurrent use; see Clone.
type LogBicubic struct {
	cache logCache
}

// Name implements Interpolator.
func (o *LogBicubic) Name() string { return "logcubic" }

// Clone returns a fresh LogBicubic with an empty cache, for use by a
// second goroutine/worker (spec.md §5).
func (o *LogBicubic) Clone() *LogBicubic { return &LogBicubic{} }

// InterpolateXQ2 implements Interpolator.
func (o *LogBicubic) InterpolateXQ2(sg *knot.SubgridNF, id int, x, q2 float64) (float64, error) {
	arr, ix, iq2, err := findIndices(sg, x, q2)
	if err != nil {
		return 0, err
	}
	f := sg.Get(id)
	if f == nil {
		return 0, nil
	}

	var logX, logQ2 float64
	if o.cache.valid && o.cache.x == x && o.cache.ix == ix {
		logX = o.cache.logX
	} else {
		logX = math.Log(x)
	}
	if o.cache.valid && o.cache.q2 == q2 && o.cache.iq2 == iq2 {
		logQ2 = o.cache.logQ2
	} else {
		logQ2 = math.Log(q2)
	}
	o.cache = logCache{valid: true, x: x, q2: q2, ix: ix, iq2: iq2, logX: logX, logQ2: logQ2}

	return bicubicCore(arr.LogX(), arr.LogQ2(), f, ix, iq2, logX, logQ2), nil
}
