// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ipol implements the piecewise 2-D interpolation strategies
// (bilinear, log-bilinear, bicubic Hermite, log-bicubic Hermite) that
// evaluate xf(id, x, Q²) inside a grid subgrid (spec.md §4.3).
package ipol

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gopdf/knot"
	"github.com/cpmech/gopdf/pdferr"
)

// Interpolator is the strategy interface a grid.PDF delegates to for
// in-range evaluation. Implementations never own the subgrid they are
// handed (spec.md §9: "pass the GridPDF ... as an argument to the
// strategy's evaluate method" — no back-pointers).
type Interpolator interface {
	// InterpolateXQ2 evaluates xf for flavour id at (x, Q²), which the
	// caller has already established lies within sg's knot rectangle.
	InterpolateXQ2(sg *knot.SubgridNF, id int, x, q2 float64) (float64, error)

	// Name returns the short name this strategy is registered under.
	Name() string
}

// allocator builds a fresh Interpolator instance. Each grid.PDF that
// never has a non-default strategy set lazily instantiates one of
// these from metadata (spec.md §3 "Lifecycles").
type allocator func() Interpolator

// allocators holds all available interpolator constructors, keyed by
// the short names used in the .info file's Interpolator key
// (spec.md §6).
var allocators = map[string]allocator{}

func init() {
	allocators["linear"] = func() Interpolator { return &Bilinear{} }
	allocators["loglinear"] = func() Interpolator { return &LogBilinear{} }
	allocators["cubic"] = func() Interpolator { return &Bicubic{} }
	allocators["logcubic"] = func() Interpolator { return &LogBicubic{} }
}

// New constructs the named interpolator, or a FactoryUnknown error if
// name isn't registered.
func New(name string) (Interpolator, error) {
	a, ok := allocators[name]
	if !ok {
		return nil, pdferr.FactoryUnknownErr("interpolator", name)
	}
	return a(), nil
}

// findIndices locates the subgrid cell (ix, iq2) below (x, Q²) using
// the shared flavour-independent knot axes of sg (spec.md §4.1-4.2);
// every concrete interpolator calls this before evaluating, matching
// the "default implementation isolates the subgrid + knot index
// computation" structure of spec.md §4.3.
func findIndices(sg *knot.SubgridNF, x, q2 float64) (arr *knot.Array1F, ix, iq2 int, err error) {
	arr = sg.First()
	if arr == nil {
		err = chk.Err("ipol: empty subgrid has no knot axes")
		return
	}
	var ok bool
	ix, ok = knot.Ibelow(arr.X(), x)
	if !ok {
		err = chk.Err("ipol: x=%g out of grid range [%g,%g]", x, arr.XMin(), arr.XMax())
		return
	}
	iq2, ok = knot.Ibelow(arr.Q2(), q2)
	if !ok {
		err = chk.Err("ipol: Q2=%g out of grid range [%g,%g]", q2, arr.Q2Min(), arr.Q2Max())
		return
	}
	return
}
