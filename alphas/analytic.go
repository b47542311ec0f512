// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alphas

import (
	"math"

	"github.com/cpmech/gopdf/pdferr"
)

// Analytic evaluates α_s(Q²) from the closed-form truncated series
// (PDG "Quantum Chromodynamics" review, eq. 9.5), one Λ_QCD value per
// active-flavour count. LoopOrder selects how many bracket terms are
// kept: 1 is leading order, 4 is the full four-loop expression.
type Analytic struct {
	Config
	Lambda       map[int]float64 // Λ_QCD (GeV) keyed by nf
	nfmin, nfmax int
}

// NewAnalyticEngine builds an Analytic engine. Lambda must carry at
// least one entry; its key range fixes [nfmin,nfmax] for the
// flavour-threshold lookup (spec.md §4.6: nfmin and
// nfmax are derived from which Λ values the caller actually supplied,
// not hardcoded to 3..6).
func NewAnalyticEngine(cfg Config, lambda map[int]float64) (*Analytic, error) {
	if len(lambda) == 0 {
		return nil, pdferr.UserErr("alphas: Analytic requires at least one Lambda_QCD entry")
	}
	nfmin, nfmax := 1<<30, -(1 << 30)
	for nf := range lambda {
		if nf < nfmin {
			nfmin = nf
		}
		if nf > nfmax {
			nfmax = nf
		}
	}
	if cfg.LoopOrder < 1 || cfg.LoopOrder > 4 {
		cfg.LoopOrder = 4
	}
	return &Analytic{Config: cfg, Lambda: lambda, nfmin: nfmin, nfmax: nfmax}, nil
}

func init() {
	allocators["analytic"] = func(cfg Config, params map[string]interface{}) (Engine, error) {
		lam, _ := params["lambda"].(map[int]float64)
		return NewAnalyticEngine(cfg, lam)
	}
}

// AlphaS implements Engine.
func (o *Analytic) AlphaS(q2 float64) (float64, error) {
	nf := numFlavorsQ2(o.QuarkMasses, q2, o.nfmin, o.nfmax)
	lam, ok := o.Lambda[nf]
	if !ok {
		// fall back to the nearest flavour count with a known Lambda
		best := o.nfmin
		for n := range o.Lambda {
			if abs(n-nf) < abs(best-nf) {
				best = n
			}
		}
		nf, lam = best, o.Lambda[best]
	}
	lambda2 := lam * lam
	if q2 <= lambda2 {
		return 0, pdferr.AlphaSRunawayErr(q2, lambda2)
	}

	t := math.Log(q2 / lambda2)
	lnT := math.Log(t)
	b0, b1, b2, b3 := betaCoeffs(nf)

	bracket := 1.0
	if o.LoopOrder >= 2 {
		bracket -= (b1 * lnT) / (b0 * b0 * t)
	}
	if o.LoopOrder >= 3 {
		bracket += (b1*b1*(lnT*lnT-lnT-1) + b0*b2) / (math.Pow(b0, 4) * t * t)
	}
	if o.LoopOrder >= 4 {
		bracket -= (b1*b1*b1*(lnT*lnT*lnT-2.5*lnT*lnT-2*lnT+0.5) + 3*b0*b1*b2*lnT - 0.5*b0*b0*b3) / (math.Pow(b0, 6) * t * t * t)
	}
	return bracket / (b0 * t), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
