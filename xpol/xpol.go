// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xpol implements the extrapolation strategies used for
// (x, Q²) points outside a grid's knot rectangle (spec.md §4.4).
package xpol

import (
	"github.com/cpmech/gopdf/pdferr"
)

// GridAccessor is the narrow view of a grid.PDF an Extrapolator needs:
// the overall knot range and a way to re-enter the configured
// interpolator at an in-range point. Strategies never own the grid
// they extrapolate for — it is passed in on every call (spec.md §9: no
// back-pointers).
type GridAccessor interface {
	XMin() float64
	XMax() float64
	Q2Min() float64
	Q2Max() float64
	InterpolateInRange(id int, x, q2 float64) (float64, error)
}

// Extrapolator is the strategy interface a grid.PDF delegates to when
// (x, Q²) falls outside its knot rectangle.
type Extrapolator interface {
	Extrapolate(g GridAccessor, id int, x, q2 float64) (float64, error)
	Name() string
}

type allocator func() Extrapolator

var allocators = map[string]allocator{}

func init() {
	allocators["error"] = func() Extrapolator { return &ErrorExtrapolator{} }
	allocators["nearest"] = func() Extrapolator { return &NearestPointExtrapolator{} }
}

// New constructs the named extrapolator, or a FactoryUnknown error if
// name isn't registered.
func New(name string) (Extrapolator, error) {
	a, ok := allocators[name]
	if !ok {
		return nil, pdferr.FactoryUnknownErr("extrapolator", name)
	}
	return a(), nil
}

// ErrorExtrapolator fails on any call (spec.md §4.4).
type ErrorExtrapolator struct{}

// Name implements Extrapolator.
func (o *ErrorExtrapolator) Name() string { return "error" }

// Extrapolate implements Extrapolator.
func (o *ErrorExtrapolator) Extrapolate(g GridAccessor, id int, x, q2 float64) (float64, error) {
	return 0, pdferr.ExtrapolationDisabledErr()
}

// NearestPointExtrapolator clamps x and Q² to the grid's own ranges
// and re-enters the configured interpolator at the clamped point
// (spec.md §4.4): extrapolation beyond the grid is physically
// ill-defined, but clamping gives a finite, monotone continuation.
type NearestPointExtrapolator struct{}

// Name implements Extrapolator.
func (o *NearestPointExtrapolator) Name() string { return "nearest" }

// Extrapolate implements Extrapolator.
func (o *NearestPointExtrapolator) Extrapolate(g GridAccessor, id int, x, q2 float64) (float64, error) {
	xc := clamp(x, g.XMin(), g.XMax())
	q2c := clamp(q2, g.Q2Min(), g.Q2Max())
	return g.InterpolateInRange(id, xc, q2c)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
