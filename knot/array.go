// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package knot implements the tabulated-grid data model shared by every
// interpolator/extrapolator: the ordered knot axes (x, Q²), their
// logarithms, and the dense xf table of one subgrid.
package knot

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Array1F owns the knot axes and the dense xf table for a single
// flavour over a single subgrid. x and q2 are strictly increasing;
// logX/logQ2 are their elementwise natural logarithms, kept in sync by
// Init. xf is indexed [ix][iq2], so len(xf) == len(x) and
// len(xf[ix]) == len(q2) for every ix.
type Array1F struct {
	x, q2       []float64
	logX, logQ2 []float64
	xf          [][]float64
}

// NewArray1F builds an Array1F from ascending x and Q knot lists (Q, not
// Q², per the on-disk convention — spec.md §6) and the xf table ordered
// [ix][iq2]. Q values are squared on the way in.
func NewArray1F(x, q []float64, xf [][]float64) (*Array1F, error) {
	o := &Array1F{}
	q2 := make([]float64, len(q))
	for i, qq := range q {
		q2[i] = qq * qq
	}
	if err := o.Init(x, q2, xf); err != nil {
		return nil, err
	}
	return o, nil
}

// Init (re)initialises the knot arrays, validating monotonicity and the
// x ∈ (0,1], Q² > 0 invariants, and synchronising the log arrays.
func (o *Array1F) Init(x, q2 []float64, xf [][]float64) error {
	if len(xf) != len(x) {
		return chk.Err("knot: len(xf)=%d must equal len(x)=%d", len(xf), len(x))
	}
	for _, row := range xf {
		if len(row) != len(q2) {
			return chk.Err("knot: every xf row must have len(q2)=%d entries, got %d", len(q2), len(row))
		}
	}
	if err := checkAscending("x", x, 0, 1); err != nil {
		return err
	}
	if err := checkAscending("q2", q2, 0, math.Inf(1)); err != nil {
		return err
	}
	o.x = append([]float64{}, x...)
	o.q2 = append([]float64{}, q2...)
	o.xf = xf
	o.logX = make([]float64, len(x))
	o.logQ2 = make([]float64, len(q2))
	for i, v := range o.x {
		o.logX[i] = math.Log(v)
	}
	for i, v := range o.q2 {
		o.logQ2[i] = math.Log(v)
	}
	return nil
}

func checkAscending(name string, v []float64, lo, hi float64) error {
	if len(v) < 2 {
		return chk.Err("knot: %s must have at least 2 knots, got %d", name, len(v))
	}
	for i, vi := range v {
		if vi <= lo || vi > hi {
			return chk.Err("knot: %s[%d]=%g out of allowed range (%g,%g]", name, i, vi, lo, hi)
		}
		if i > 0 && vi <= v[i-1] {
			return chk.Err("knot: %s must be strictly increasing; %s[%d]=%g <= %s[%d]=%g", name, name, i, vi, name, i-1, v[i-1])
		}
	}
	return nil
}

// X returns the x knot axis (read-only view).
func (o *Array1F) X() []float64 { return o.x }

// Q2 returns the Q² knot axis (read-only view).
func (o *Array1F) Q2() []float64 { return o.q2 }

// LogX returns log(x) for every x knot.
func (o *Array1F) LogX() []float64 { return o.logX }

// LogQ2 returns log(Q²) for every Q² knot.
func (o *Array1F) LogQ2() []float64 { return o.logQ2 }

// XF returns the stored xf value at knot indices (ix, iq2).
func (o *Array1F) XF(ix, iq2 int) float64 { return o.xf[ix][iq2] }

// NX is the number of x knots.
func (o *Array1F) NX() int { return len(o.x) }

// NQ2 is the number of Q² knots.
func (o *Array1F) NQ2() int { return len(o.q2) }

// XMin/XMax/Q2Min/Q2Max are the axis endpoints.
func (o *Array1F) XMin() float64  { return o.x[0] }
func (o *Array1F) XMax() float64  { return o.x[len(o.x)-1] }
func (o *Array1F) Q2Min() float64 { return o.q2[0] }
func (o *Array1F) Q2Max() float64 { return o.q2[len(o.q2)-1] }

// Ibelow implements spec.md §4.1: for a sorted, strictly increasing
// knot sequence k and a query value v, returns the largest index i with
// k[i] <= v, clamped so i <= len(k)-2 (a right neighbour always
// exists). The second result is false when v is outside
// [k[0], k[len(k)-1]]; callers turn that into their own error.
func Ibelow(k []float64, v float64) (int, bool) {
	n := len(k)
	if v < k[0] || v > k[n-1] {
		return 0, false
	}
	// sort.Search finds the first index i such that k[i] > v; the knot
	// below v is therefore i-1.
	i := sort.Search(n, func(i int) bool { return k[i] > v })
	i--
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}
	return i, true
}
