// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdf defines the capability-set interface every PDF
// implementation (grid-tabulated or analytic) presents to callers
// (spec.md §9).
package pdf

import "github.com/cpmech/gopdf/pdferr"

// Gluon is the canonical PDG code for the gluon. Public entry points
// canonicalise id==0 to Gluon everywhere (spec.md §3, §4.5).
const Gluon = 21

// CanonicalID maps the legacy id==0 alias to the gluon PDG code; every
// other id passes through unchanged.
func CanonicalID(id int) int {
	if id == 0 {
		return Gluon
	}
	return id
}

// PDF is the public capability set of spec.md §9: every evaluator —
// grid-tabulated or analytic — presents exactly this surface, so
// set-level statistics (pdfset.Set) and factories can treat them
// interchangeably.
type PDF interface {
	// XfxQ2 evaluates xf(id, x, Q²). id==0 is canonicalised to the
	// gluon (21) before any other processing (spec.md §4.5).
	XfxQ2(id int, x, q2 float64) (float64, error)

	// XfxQ evaluates xf(id, x, Q) = XfxQ2(id, x, Q*Q).
	XfxQ(id int, x, q float64) (float64, error)

	// InRangeX reports whether x lies within this PDF's tabulated or
	// defined x domain.
	InRangeX(x float64) bool

	// InRangeQ2 reports whether Q² lies within this PDF's tabulated or
	// defined Q² domain.
	InRangeQ2(q2 float64) bool

	// HasFlavor reports whether id (after canonicalisation) is a
	// supported flavour of this PDF.
	HasFlavor(id int) bool

	// Flavors returns the supported flavour ids, in the order declared
	// by the set's metadata.
	Flavors() []int
}

// XfxQ2ToXfxQ implements the XfxQ = XfxQ2(x, Q*Q) relation (spec.md
// §4.5) for any PDF that only natively implements XfxQ2; embedders
// promote it via this helper instead of duplicating the Q->Q² step.
func XfxQ2ToXfxQ(p PDF, id int, x, q float64) (float64, error) {
	return p.XfxQ2(id, x, q*q)
}

// FillAll13 fills buf (which must have length 13, one entry per PDG id
// in [-6..6], 0 mapping to the gluon) with xf(id,x,Q²) for every id
// (spec.md §4.5).
func FillAll13(p PDF, x, q2 float64, buf []float64) error {
	if len(buf) != 13 {
		return pdferr.UserErr("pdf: FillAll13 requires a 13-entry buffer, got %d", len(buf))
	}
	for i := -6; i <= 6; i++ {
		v, err := p.XfxQ2(i, x, q2)
		if err != nil {
			return err
		}
		buf[i+6] = v
	}
	return nil
}

// ForcePositivePolicy controls how a non-positive xf result is clamped
// (spec.md §4.5).
type ForcePositivePolicy int

// force-positive policies
const (
	ForcePositiveOff     ForcePositivePolicy = 0
	ForcePositiveZero    ForcePositivePolicy = 1 // clamp to >= 0
	ForcePositiveEpsilon ForcePositivePolicy = 2 // clamp to >= 1e-10
)

// forcePositiveFloor is the spec.md §4.5 epsilon floor for policy 2.
const forcePositiveFloor = 1e-10

// ApplyForcePositive applies policy to v.
func ApplyForcePositive(policy ForcePositivePolicy, v float64) float64 {
	switch policy {
	case ForcePositiveZero:
		if v < 0 {
			return 0
		}
	case ForcePositiveEpsilon:
		if v < forcePositiveFloor {
			return forcePositiveFloor
		}
	}
	return v
}

// isSupportedFlavor is a small helper shared by grid.PDF/Analytic to
// test membership without importing sort for tiny flavour lists.
func isSupportedFlavor(flavors []int, id int) bool {
	for _, f := range flavors {
		if f == id {
			return true
		}
	}
	return false
}
