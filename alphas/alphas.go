// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alphas

import "github.com/cpmech/gopdf/pdferr"

// Engine computes the running strong coupling α_s(Q²). Three variants
// are provided: Analytic (truncated perturbative series), ODE (direct
// RGE integration) and Ipol (tabulated Q,α_s pairs).
type Engine interface {
	AlphaS(q2 float64) (float64, error)
}

// allocators holds the named Engine constructors, following the same
// package-level factory idiom as mreten and mdl/generic: a model is
// registered by name in an init() and built later by New.
var allocators = map[string]func(Config, map[string]interface{}) (Engine, error){}

// New builds a named Engine variant from Config and a loosely-typed
// parameter bag. Keys read per variant: "analytic" reads "lambda"
// (map[int]float64); "ode" reads "q2ref" and "alpharef" (float64);
// "ipol" reads "q" and "alphas" ([]float64).
func New(name string, cfg Config, params map[string]interface{}) (Engine, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, pdferr.FactoryUnknownErr("alphas", name)
	}
	return allocator(cfg, params)
}
