// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alphas

import (
	"math"
	"sort"

	"github.com/cpmech/gopdf/pdferr"
)

// Ipol evaluates α_s(Q²) from a tabulated (Q, α_s) sequence: linear
// interpolation in the two end intervals, monotone cubic (the
// central/one-sided slope rule of ipol/hermite.go's slopeAt, then
// Fritsch-Carlson slope limiting) in log(Q²) everywhere in between. Open Question
// (i) resolves this variant fully rather than stubbing it: a PDF set
// with an AlphaS_Type: ipol header must be usable out of the box.
type Ipol struct {
	q   []float64 // ascending
	lnQ2 []float64
	as  []float64
}

// NewIpolEngine builds an Ipol engine from parallel (Q, alpha_s)
// arrays. q must be strictly ascending and have at least two points.
func NewIpolEngine(q, as []float64) (*Ipol, error) {
	if len(q) < 2 || len(q) != len(as) {
		return nil, pdferr.UserErr("alphas: Ipol requires >=2 points with matching Q and AlphaS lengths")
	}
	lnQ2 := make([]float64, len(q))
	for i, v := range q {
		if i > 0 && v <= q[i-1] {
			return nil, pdferr.UserErr("alphas: Ipol Q table must be strictly ascending")
		}
		lnQ2[i] = math.Log(v * v)
	}
	return &Ipol{q: append([]float64{}, q...), lnQ2: lnQ2, as: append([]float64{}, as...)}, nil
}

func init() {
	allocators["ipol"] = func(cfg Config, params map[string]interface{}) (Engine, error) {
		q, _ := params["q"].([]float64)
		as, _ := params["alphas"].([]float64)
		return NewIpolEngine(q, as)
	}
}

// AlphaS implements Engine.
func (o *Ipol) AlphaS(q2 float64) (float64, error) {
	if q2 < 0 {
		return 0, pdferr.UnphysicalQ2Err(q2)
	}
	l := math.Log(q2)
	n := len(o.lnQ2)
	i := sort.Search(n, func(i int) bool { return o.lnQ2[i] > l })
	switch {
	case i == 0:
		return o.lerp(0, 1, l), nil
	case i >= n:
		return o.lerp(n-2, n-1, l), nil
	default:
		lo := i - 1
		if lo == 0 || i == n-1 {
			return o.lerp(lo, i, l), nil
		}
		return o.cubicAt(lo, i, l), nil
	}
}

func (o *Ipol) lerp(i, j int, l float64) float64 {
	t := (l - o.lnQ2[i]) / (o.lnQ2[j] - o.lnQ2[i])
	return o.as[i] + t*(o.as[j]-o.as[i])
}

func (o *Ipol) cubicAt(i, j int, l float64) float64 {
	t := (l - o.lnQ2[i]) / (o.lnQ2[j] - o.lnQ2[i])
	mi := slopeAt(o.lnQ2, o.as, i)
	mj := slopeAt(o.lnQ2, o.as, j)
	di := o.lnQ2[j] - o.lnQ2[i]
	// Fritsch-Carlson limiting keeps the cubic monotone on this interval
	delta := (o.as[j] - o.as[i]) / di
	if delta == 0 {
		mi, mj = 0, 0
	} else {
		a, b := math.Max(0, mi/delta), math.Max(0, mj/delta)
		if s := a*a + b*b; s > 9 {
			tau := 3 / math.Sqrt(s)
			a, b = tau*a, tau*b
		}
		mi, mj = a*delta, b*delta
	}
	return cubicHermite(t, o.as[i], o.as[j], mi*di, mj*di)
}

// cubicHermite and slopeAt mirror ipol/hermite.go's central/one-sided
// finite-difference rule (spec.md §4.3), reimplemented here since that
// package keeps them unexported for its own 2-D table shape.
func cubicHermite(t, p0, p1, m0, m1 float64) float64 {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*p0 + h10*m0 + h01*p1 + h11*m1
}

func slopeAt(k, y []float64, i int) float64 {
	n := len(k)
	switch {
	case n == 1:
		return 0
	case i == 0:
		return (y[1] - y[0]) / (k[1] - k[0])
	case i == n-1:
		return (y[n-1] - y[n-2]) / (k[n-1] - k[n-2])
	default:
		return (y[i+1] - y[i-1]) / (k[i+1] - k[i-1])
	}
}
