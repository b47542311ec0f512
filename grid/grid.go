// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements GridPDF: the tabulated, multi-subgrid PDF
// that composes a knot layout with an interpolator/extrapolator
// strategy pair (spec.md §3 "GridPDF", §4.2, §4.5).
package grid

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gopdf/ipol"
	"github.com/cpmech/gopdf/knot"
	"github.com/cpmech/gopdf/pdf"
	"github.com/cpmech/gopdf/pdferr"
	"github.com/cpmech/gopdf/xpol"
)

// PDF is the grid-tabulated implementation of pdf.PDF. It owns an
// ascending-by-Q²-low-edge sequence of subgrids, plus the interpolator
// and extrapolator strategies it delegates evaluation to. A PDF is
// built once and never mutated afterward except to swap its
// interpolator/extrapolator (spec.md §3 "Lifecycles", §5).
type PDF struct {
	subgrids []*knot.SubgridNF // ascending by low edge
	lowEdges []float64         // subgrids[i]'s own Q² low edge
	topEdges []float64         // subgrids[i]'s own Q² top edge

	flavors []int
	xmin    float64
	xmax    float64
	q2min   float64
	q2max   float64

	ip ipol.Interpolator
	xp xpol.Extrapolator

	strict        bool
	forcePositive pdf.ForcePositivePolicy
}

// New builds a GridPDF from subgrids (any order — New sorts them by
// their own Q² low edge) and the declared flavour list. Interpolator
// and extrapolator may be nil; EnsureDefaultStrategies must then be
// called before any evaluation (spec.md §3 "Lifecycles": lazy
// construction from metadata, completed before first use).
func New(subgrids []*knot.SubgridNF, flavors []int, ip ipol.Interpolator, xp xpol.Extrapolator) (*PDF, error) {
	if len(subgrids) == 0 {
		return nil, chk.Err("grid: GridPDF requires at least one subgrid")
	}
	o := &PDF{flavors: append([]int{}, flavors...), ip: ip, xp: xp}

	type entry struct {
		sg  *knot.SubgridNF
		low float64
	}
	entries := make([]entry, len(subgrids))
	for i, sg := range subgrids {
		first := sg.First()
		if first == nil {
			return nil, chk.Err("grid: subgrid %d is empty", i)
		}
		entries[i] = entry{sg: sg, low: first.Q2Min()}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].low < entries[j].low })

	o.subgrids = make([]*knot.SubgridNF, len(entries))
	o.lowEdges = make([]float64, len(entries))
	o.topEdges = make([]float64, len(entries))
	xref := entries[0].sg.First()
	o.xmin, o.xmax = xref.XMin(), xref.XMax()
	for i, e := range entries {
		first := e.sg.First()
		if first.XMin() != o.xmin || first.XMax() != o.xmax {
			return nil, chk.Err("grid: subgrid %d's x range (%g,%g) differs from (%g,%g); x axis must be shared across subgrids",
				i, first.XMin(), first.XMax(), o.xmin, o.xmax)
		}
		o.subgrids[i] = e.sg
		o.lowEdges[i] = first.Q2Min()
		o.topEdges[i] = first.Q2Max()
		if i > 0 && o.lowEdges[i] != o.topEdges[i-1] {
			return nil, chk.Err("grid: subgrid %d's low edge %g must equal subgrid %d's top edge %g (abutment)",
				i, o.lowEdges[i], i-1, o.topEdges[i-1])
		}
	}
	o.q2min = o.lowEdges[0]
	o.q2max = o.topEdges[len(o.topEdges)-1]
	return o, nil
}

// EnsureDefaultStrategies lazily instantiates the interpolator and/or
// extrapolator from the named defaults if they have not already been
// set (spec.md §3 "Lifecycles"). This is a construction-time operation
// and must complete before any XfxQ2 call (spec.md §5).
func (o *PDF) EnsureDefaultStrategies(ipolName, xpolName string) error {
	if o.ip == nil {
		ip, err := ipol.New(ipolName)
		if err != nil {
			return err
		}
		o.ip = ip
	}
	if o.xp == nil {
		xp, err := xpol.New(xpolName)
		if err != nil {
			return err
		}
		o.xp = xp
	}
	return nil
}

// SetInterpolator swaps the interpolator strategy. Construction-time
// only (spec.md §5).
func (o *PDF) SetInterpolator(ip ipol.Interpolator) { o.ip = ip }

// SetExtrapolator swaps the extrapolator strategy. Construction-time
// only (spec.md §5).
func (o *PDF) SetExtrapolator(xp xpol.Extrapolator) { o.xp = xp }

// SetStrict enables FlavorNotSupported errors for unsupported flavours
// instead of the default "return 0" behaviour (spec.md §4.5 step 3).
func (o *PDF) SetStrict(strict bool) { o.strict = strict }

// SetForcePositive sets the §4.5 step-5 result-clamping policy.
func (o *PDF) SetForcePositive(p pdf.ForcePositivePolicy) { o.forcePositive = p }

// XMin/XMax/Q2Min/Q2Max implement xpol.GridAccessor and pdf.PDF's range
// queries.
func (o *PDF) XMin() float64  { return o.xmin }
func (o *PDF) XMax() float64  { return o.xmax }
func (o *PDF) Q2Min() float64 { return o.q2min }
func (o *PDF) Q2Max() float64 { return o.q2max }

// InRangeX implements pdf.PDF.
func (o *PDF) InRangeX(x float64) bool { return x >= o.xmin && x <= o.xmax }

// InRangeQ2 implements pdf.PDF.
func (o *PDF) InRangeQ2(q2 float64) bool { return q2 >= o.q2min && q2 <= o.q2max }

// HasFlavor implements pdf.PDF.
func (o *PDF) HasFlavor(id int) bool {
	id = pdf.CanonicalID(id)
	for _, f := range o.flavors {
		if f == id {
			return true
		}
	}
	return false
}

// Flavors implements pdf.PDF.
func (o *PDF) Flavors() []int { return o.flavors }

// selectSubgrid implements spec.md §4.2: the subgrid whose low edge is
// the greatest low edge <= q2 — equivalently upper_bound(q2) over the
// low edges, stepped back one. On an exact low-edge match this
// naturally selects the higher subgrid (ABM-style flavour threshold
// behaviour).
func (o *PDF) selectSubgrid(q2 float64) *knot.SubgridNF {
	n := len(o.lowEdges)
	i := sort.Search(n, func(i int) bool { return o.lowEdges[i] > q2 })
	i--
	if i < 0 {
		i = 0
	}
	return o.subgrids[i]
}

// InterpolateInRange implements xpol.GridAccessor: re-enter the
// configured interpolator at a point already known to be in range
// (selecting the correct subgrid first).
func (o *PDF) InterpolateInRange(id int, x, q2 float64) (float64, error) {
	sg := o.selectSubgrid(q2)
	return o.ip.InterpolateXQ2(sg, id, x, q2)
}

// XfxQ2 is the single public evaluation entry point (spec.md §4.5).
func (o *PDF) XfxQ2(id int, x, q2 float64) (float64, error) {
	if x < 0 || x > 1 {
		return 0, pdferr.UnphysicalXErr(x)
	}
	if q2 < 0 {
		return 0, pdferr.UnphysicalQ2Err(q2)
	}
	id = pdf.CanonicalID(id)
	if !o.HasFlavor(id) {
		if o.strict {
			return 0, pdferr.FlavorNotSupportedErr(id)
		}
		return 0, nil
	}

	var v float64
	var err error
	if o.InRangeX(x) && o.InRangeQ2(q2) {
		v, err = o.InterpolateInRange(id, x, q2)
	} else {
		v, err = o.xp.Extrapolate(o, id, x, q2)
	}
	if err != nil {
		return 0, err
	}
	return pdf.ApplyForcePositive(o.forcePositive, v), nil
}

// XfxQ implements pdf.PDF: xfxQ(id,x,Q) = xfxQ2(id,x,Q*Q) (spec.md §4.5).
func (o *PDF) XfxQ(id int, x, q float64) (float64, error) { return o.XfxQ2(id, x, q*q) }

// FillAll13 implements the spec.md §4.5 13-entry buffer variant.
func (o *PDF) FillAll13(x, q2 float64, buf []float64) error {
	return pdf.FillAll13(o, x, q2, buf)
}
