// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import "github.com/cpmech/gopdf/pdferr"

// Formula is a closed-form xf(id,x,Q²) definition.
type Formula func(id int, x, q2 float64) float64

// Analytic is the second concrete PDF variant spec.md §9 calls for: a
// PDF whose xfxQ2 is a numeric formula rather than a table lookup, so
// the PDF interface is genuinely polymorphic over dispatch mechanism.
// spec.md documents no particular closed-form PDF, so this type is
// kept deliberately small — a typed home for "xf defined by a
// function", not a physics model.
type Analytic struct {
	Formula  Formula
	XLo, XHi   float64
	Q2Lo, Q2Hi float64
	SupportedFlavors []int
}

// NewAnalytic builds an Analytic PDF valid on [xlo,xhi] x [q2lo,q2hi]
// for the given flavour list.
func NewAnalytic(f Formula, xlo, xhi, q2lo, q2hi float64, flavors []int) *Analytic {
	return &Analytic{Formula: f, XLo: xlo, XHi: xhi, Q2Lo: q2lo, Q2Hi: q2hi, SupportedFlavors: flavors}
}

// XfxQ2 implements PDF.
func (o *Analytic) XfxQ2(id int, x, q2 float64) (float64, error) {
	if x < 0 || x > 1 {
		return 0, pdferr.UnphysicalXErr(x)
	}
	if q2 < 0 {
		return 0, pdferr.UnphysicalQ2Err(q2)
	}
	id = CanonicalID(id)
	if !o.HasFlavor(id) {
		return 0, nil
	}
	return o.Formula(id, x, q2), nil
}

// XfxQ implements PDF.
func (o *Analytic) XfxQ(id int, x, q float64) (float64, error) { return XfxQ2ToXfxQ(o, id, x, q) }

// InRangeX implements PDF.
func (o *Analytic) InRangeX(x float64) bool { return x >= o.XLo && x <= o.XHi }

// InRangeQ2 implements PDF.
func (o *Analytic) InRangeQ2(q2 float64) bool { return q2 >= o.Q2Lo && q2 <= o.Q2Hi }

// HasFlavor implements PDF.
func (o *Analytic) HasFlavor(id int) bool { return isSupportedFlavor(o.SupportedFlavors, CanonicalID(id)) }

// Flavors implements PDF.
func (o *Analytic) Flavors() []int { return o.SupportedFlavors }
