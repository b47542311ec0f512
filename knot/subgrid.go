// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knot

import "github.com/cpmech/gosl/chk"

// SubgridNF is one Q²-subgrid: a mapping from parton id to its Array1F.
// Every entry in a subgrid shares identical x and Q² knot axes
// (spec.md §3); the order in which flavours were added is preserved in
// Flavors so iteration is deterministic.
type SubgridNF struct {
	byID    map[int]*Array1F
	order   []int
}

// NewSubgridNF builds an empty subgrid, ready for Add calls.
func NewSubgridNF() *SubgridNF {
	return &SubgridNF{byID: make(map[int]*Array1F)}
}

// Add attaches the Array1F for flavour id to this subgrid. The first
// Add call fixes the shared knot axes; subsequent Add calls must agree
// on NX/NQ2, which Add checks against the first flavour. The axis
// values themselves are not compared: the on-disk block layout already
// shares one x/Q line per block.
func (o *SubgridNF) Add(id int, arr *Array1F) error {
	if _, dup := o.byID[id]; dup {
		return chk.Err("knot: flavour id=%d already present in this subgrid", id)
	}
	if len(o.order) > 0 {
		first := o.byID[o.order[0]]
		if arr.NX() != first.NX() || arr.NQ2() != first.NQ2() {
			return chk.Err("knot: flavour id=%d has knot axes (%d,%d) inconsistent with subgrid's (%d,%d)",
				id, arr.NX(), arr.NQ2(), first.NX(), first.NQ2())
		}
	}
	o.byID[id] = arr
	o.order = append(o.order, id)
	return nil
}

// Flavors returns the ids present in this subgrid, in insertion order.
func (o *SubgridNF) Flavors() []int { return o.order }

// Has reports whether id is present in this subgrid.
func (o *SubgridNF) Has(id int) bool {
	_, ok := o.byID[id]
	return ok
}

// Get returns the Array1F for id, or nil if absent.
func (o *SubgridNF) Get(id int) *Array1F { return o.byID[id] }

// First returns the Array1F of an arbitrary (the first-added) flavour,
// giving access to the shared knot axes without specifying a flavour.
// An empty subgrid is invalid for lookup and First returns nil.
func (o *SubgridNF) First() *Array1F {
	if len(o.order) == 0 {
		return nil
	}
	return o.byID[o.order[0]]
}

// Empty reports whether this subgrid has no flavours.
func (o *SubgridNF) Empty() bool { return len(o.order) == 0 }
