// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alphas

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"

	"github.com/cpmech/gopdf/pdferr"
)

// ODE evaluates α_s(Q²) by integrating the QCD renormalisation-group
// equation dα/d(ln μ²) = −(b0α² + b1α³ + b2α⁴ + b3α⁵) directly with an
// implicit Runge-Kutta solver, the same gosl/ode.Solver machinery the
// liquid-retention model uses to integrate ∂sl/∂pc (mdl/retention).
// Unlike the Analytic variant it needs no Λ_QCD table: it starts from
// a single reference point (MZ², α_s(MZ²) by default) and integrates
// out to the requested Q², re-solving piecewise across every
// flavour-threshold it crosses so α_s stays continuous there.
type ODE struct {
	Config
	Q2Ref    float64 // reference scale, e.g. M_Z^2
	AlphaRef float64 // alpha_s at Q2Ref
}

// NewODEEngine builds an ODE engine anchored at (q2Ref, alphaRef).
func NewODEEngine(cfg Config, q2Ref, alphaRef float64) (*ODE, error) {
	if q2Ref <= 0 || alphaRef <= 0 {
		return nil, pdferr.UserErr("alphas: ODE reference point must have Q2Ref>0 and AlphaRef>0")
	}
	if cfg.LoopOrder < 1 || cfg.LoopOrder > 4 {
		cfg.LoopOrder = 4
	}
	return &ODE{Config: cfg, Q2Ref: q2Ref, AlphaRef: alphaRef}, nil
}

func init() {
	allocators["ode"] = func(cfg Config, params map[string]interface{}) (Engine, error) {
		q2ref, _ := params["q2ref"].(float64)
		aref, _ := params["alpharef"].(float64)
		return NewODEEngine(cfg, q2ref, aref)
	}
}

// thresholdsBetween returns the sorted ln(m²) thresholds strictly
// between lnA and lnB (in either order), used to split the integration
// path so each segment runs at a fixed flavour count.
func (o *ODE) thresholdsBetween(lnA, lnB float64) []float64 {
	lo, hi := lnA, lnB
	if lo > hi {
		lo, hi = hi, lo
	}
	var pts []float64
	for nf := 1; nf <= 6; nf++ {
		m := o.QuarkMasses[nf]
		if m <= 0 {
			continue
		}
		ln := math.Log(m * m)
		if ln > lo && ln < hi {
			pts = append(pts, ln)
		}
	}
	sort.Float64s(pts)
	if lnA > lnB {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

// integrateSegment runs the RGE at a fixed nf from (tStart,alphaStart)
// to tEnd and returns alpha(tEnd).
func (o *ODE) integrateSegment(nf int, tStart, tEnd, alphaStart float64) (float64, error) {
	if tStart == tEnd {
		return alphaStart, nil
	}
	b0, b1, b2, b3 := betaCoeffs(nf)
	fcn := func(f []float64, dx, t float64, y []float64) error {
		a := y[0]
		f[0] = -(b0*a*a + b1*a*a*a + b2*a*a*a*a + b3*a*a*a*a*a)
		return nil
	}
	jac := func(dfdy *la.Triplet, dx, t float64, y []float64) error {
		if dfdy.Max() == 0 {
			dfdy.Init(1, 1, 1)
		}
		a := y[0]
		d := -(2*b0*a + 3*b1*a*a + 4*b2*a*a*a + 5*b3*a*a*a*a)
		dfdy.Start()
		dfdy.Put(0, 0, d)
		return nil
	}
	var solver ode.Solver
	solver.Init("Radau5", 1, fcn, jac, nil, nil)
	solver.SetTol(1e-12, 1e-10)
	solver.Distr = false
	y := []float64{alphaStart}
	if err := solver.Solve(y, tStart, tEnd, tEnd-tStart, false); err != nil {
		return 0, pdferr.Wrap(pdferr.ReadFailure, err, "alphas: ODE integration failed")
	}
	return y[0], nil
}

// AlphaS implements Engine.
func (o *ODE) AlphaS(q2 float64) (float64, error) {
	if q2 <= 0 {
		return 0, pdferr.UnphysicalQ2Err(q2)
	}
	lnStart := math.Log(o.Q2Ref)
	lnEnd := math.Log(q2)
	bounds := o.thresholdsBetween(lnStart, lnEnd)

	ts := append([]float64{lnStart}, bounds...)
	ts = append(ts, lnEnd)

	alpha := o.AlphaRef
	for i := 0; i+1 < len(ts); i++ {
		mid := 0.5 * (ts[i] + ts[i+1])
		nfmin, nfmax := 1, 6
		nf := numFlavorsQ2(o.QuarkMasses, math.Exp(mid), nfmin, nfmax)
		var err error
		alpha, err = o.integrateSegment(nf, ts[i], ts[i+1], alpha)
		if err != nil {
			return 0, err
		}
	}
	return alpha, nil
}
