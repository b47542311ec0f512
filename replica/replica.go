// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replica converts a Hessian (or symmetric-Hessian) PDF error
// set into a Monte-Carlo replica set: spec.md §4.8's "alternative
// error representation" operation. Every replica applies the same
// linearised eigenvector displacement at every kinematic point it is
// queried at, so two calls to the same replica's XfxQ2 with the same
// arguments always agree.
package replica

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/gopdf/pdf"
	"github.com/cpmech/gopdf/pdferr"
)

// EigenPair is one Hessian eigenvector direction: the PDF evaluated at
// +1 sigma and at -1 sigma along that direction.
type EigenPair struct {
	Plus, Minus pdf.PDF
}

// Member is one generated replica: the central PDF displaced by a
// fixed per-eigenvector random coefficient, frozen at construction
// time so repeated evaluation is deterministic.
type Member struct {
	Central pdf.PDF
	Eigen   []EigenPair
	Coeffs  la.Vector
}

// XfxQ2 implements pdf.PDF: the central value plus the linearised
// eigenvector displacement spec.md §4.8 describes.
func (o *Member) XfxQ2(id int, x, q2 float64) (float64, error) {
	c, err := o.Central.XfxQ2(id, x, q2)
	if err != nil {
		return 0, err
	}
	result := c
	for k, pair := range o.Eigen {
		up, e := pair.Plus.XfxQ2(id, x, q2)
		if e != nil {
			return 0, e
		}
		down, e := pair.Minus.XfxQ2(id, x, q2)
		if e != nil {
			return 0, e
		}
		result += o.Coeffs[k] * 0.5 * (up - down)
	}
	return result, nil
}

// XfxQ implements pdf.PDF.
func (o *Member) XfxQ(id int, x, q float64) (float64, error) { return pdf.XfxQ2ToXfxQ(o, id, x, q) }

// InRangeX implements pdf.PDF.
func (o *Member) InRangeX(x float64) bool { return o.Central.InRangeX(x) }

// InRangeQ2 implements pdf.PDF.
func (o *Member) InRangeQ2(q2 float64) bool { return o.Central.InRangeQ2(q2) }

// HasFlavor implements pdf.PDF.
func (o *Member) HasFlavor(id int) bool { return o.Central.HasFlavor(id) }

// Flavors implements pdf.PDF.
func (o *Member) Flavors() []int { return o.Central.Flavors() }

// FromHessian draws numReplicas Monte-Carlo replicas from a Hessian
// error set (central + eigenvector pairs), seeded for reproducibility.
// The returned slice has numReplicas+1 entries: members 1..numReplicas
// are the draws, and member 0 carries, instead of an independent
// draw, the running mean of every other replica's coefficient vector
// (spec.md §4.8: "member 0 must be written last, from the accumulated
// mean, not from its own draw").
func FromHessian(central pdf.PDF, eigen []EigenPair, numReplicas int, seed int64) ([]*Member, error) {
	if numReplicas < 1 {
		return nil, pdferr.UserErr("replica: numReplicas must be >= 1")
	}
	if len(eigen) == 0 {
		return nil, pdferr.UserErr("replica: at least one eigenvector pair is required")
	}

	rnd.Init(seed)
	n := len(eigen)
	running := make(la.Vector, n)

	out := make([]*Member, numReplicas+1)
	for r := 1; r <= numReplicas; r++ {
		coeffs := make(la.Vector, n)
		for k := range coeffs {
			coeffs[k] = stdNormal()
			running[k] += coeffs[k]
		}
		out[r] = &Member{Central: central, Eigen: eigen, Coeffs: coeffs}
	}

	mean := make(la.Vector, n)
	for k := range mean {
		mean[k] = running[k] / float64(numReplicas)
	}
	out[0] = &Member{Central: central, Eigen: eigen, Coeffs: mean}
	return out, nil
}

func stdNormal() float64 {
	u1 := rnd.Float64(1e-12, 1)
	u2 := rnd.Float64(0, 1)
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
