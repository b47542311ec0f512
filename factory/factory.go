// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package factory wires together pathsearch, format, knot, ipol, xpol
// and grid into the spec.md §9 public entry point: build a pdf.PDF
// from a set name and member number, or from a numeric LHAPDF-style
// id via pdfsets.index.
package factory

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gopdf/format"
	"github.com/cpmech/gopdf/grid"
	"github.com/cpmech/gopdf/info"
	"github.com/cpmech/gopdf/ipol"
	"github.com/cpmech/gopdf/knot"
	"github.com/cpmech/gopdf/pdf"
	"github.com/cpmech/gopdf/pdferr"
	"github.com/cpmech/gopdf/pathsearch"
	"github.com/cpmech/gopdf/xpol"
)

// IndexEntry is one row of pdfsets.index: a numeric id mapped to a
// (set name, member number) pair.
type IndexEntry struct {
	LHAID   int
	SetName string
	Member  int
}

// Index is the parsed pdfsets.index lookup table.
type Index struct {
	byID   map[int]IndexEntry
	byName map[string][]IndexEntry
}

// ParseIndex reads a pdfsets.index file: one "id setname member" (or
// legacy "id setname_member") row per line.
func ParseIndex(r io.Reader) (*Index, error) {
	idx := &Index{byID: map[int]IndexEntry{}, byName: map[string][]IndexEntry{}}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, pdferr.New(pdferr.ReadFailure, "factory: malformed pdfsets.index line %q", line)
		}
		lhaid, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, pdferr.Wrap(pdferr.ReadFailure, err, "factory: bad LHAID in line %q", line)
		}
		name, member := fields[1], 0
		if len(fields) >= 3 {
			member, _ = strconv.Atoi(fields[2])
		} else if i := strings.LastIndex(name, "_"); i >= 0 {
			if m, err := strconv.Atoi(name[i+1:]); err == nil {
				name, member = name[:i], m
			}
		}
		e := IndexEntry{LHAID: lhaid, SetName: name, Member: member}
		idx.byID[lhaid] = e
		idx.byName[name] = append(idx.byName[name], e)
	}
	if err := sc.Err(); err != nil {
		return nil, pdferr.Wrap(pdferr.ReadFailure, err, "factory: reading pdfsets.index")
	}
	return idx, nil
}

// ByID resolves a numeric LHAPDF id to its (set, member) pair.
func (o *Index) ByID(lhaid int) (IndexEntry, error) {
	e, ok := o.byID[lhaid]
	if !ok {
		return IndexEntry{}, pdferr.IndexLookupErr(lhaid)
	}
	return e, nil
}

// Builder locates and constructs pdf.PDF values by set name and
// member number.
type Builder struct {
	Paths *pathsearch.List
	Codec format.Decoder
}

// NewBuilder builds a Builder with the YAML codec and the given search
// path.
func NewBuilder(paths *pathsearch.List) *Builder {
	return &Builder{Paths: paths, Codec: format.YAMLCodec{}}
}

// memberFileName is the LHAPDF on-disk naming convention:
// "<set>_<member, 4 digits>.dat".
func memberFileName(setName string, member int) string {
	return fmt.Sprintf("%s_%04d.dat", setName, member)
}

// Build constructs a pdf.PDF for (setName, member) by locating the set
// directory on Paths, decoding its .info and member files, and wiring
// a grid.PDF from the decoded subgrid blocks.
func (o *Builder) Build(setName string, member int) (pdf.PDF, error) {
	dir, err := o.Paths.Lookup(setName)
	if err != nil {
		return nil, err
	}

	setMeta := info.Store{}
	if f, err := os.Open(filepath.Join(dir, setName+".info")); err == nil {
		setMeta, err = o.Codec.DecodeSetInfo(f)
		f.Close()
		if err != nil {
			return nil, err
		}
	}

	memberPath := filepath.Join(dir, memberFileName(setName, member))
	f, err := os.Open(memberPath)
	if err != nil {
		return nil, pdferr.Wrap(pdferr.FileNotFound, err, "factory: opening member file %q", memberPath)
	}
	defer f.Close()

	memberMeta, blocks, err := o.Codec.DecodeMember(f)
	if err != nil {
		return nil, err
	}
	cascade := info.Cascade{Member: memberMeta, Set: setMeta}

	subgrids, flavors, err := buildSubgrids(blocks)
	if err != nil {
		return nil, err
	}

	ipName, _ := cascade.String("Interpolator")
	if ipName == "" {
		ipName = "logcubic"
	}
	xpName, _ := cascade.String("Extrapolator")
	if xpName == "" {
		xpName = "error"
	}
	ip, err := ipol.New(ipName)
	if err != nil {
		return nil, err
	}
	xp, err := xpol.New(xpName)
	if err != nil {
		return nil, err
	}

	g, err := grid.New(subgrids, flavors, ip, xp)
	if err != nil {
		return nil, err
	}
	if fp, err := cascade.Int("ForcePositive"); err == nil {
		g.SetForcePositive(pdf.ForcePositivePolicy(fp))
	}
	return g, nil
}

// buildSubgrids converts decoded format.SubgridBlock rows into the
// knot.SubgridNF layout grid.New expects, one Array1F per flavour per
// block.
func buildSubgrids(blocks []format.SubgridBlock) ([]*knot.SubgridNF, []int, error) {
	if len(blocks) == 0 {
		return nil, nil, pdferr.UserErr("factory: member file has no subgrid blocks")
	}
	var flavorSet []int
	seen := map[int]bool{}

	subgrids := make([]*knot.SubgridNF, len(blocks))
	for bi, b := range blocks {
		sg := knot.NewSubgridNF()
		nx, nq2 := len(b.XKnots), len(b.Q2Knots)
		for fi, id := range b.FlavorIDs {
			xf := make([][]float64, nx)
			for ix := 0; ix < nx; ix++ {
				xf[ix] = make([]float64, nq2)
				for iq2 := 0; iq2 < nq2; iq2++ {
					row := ix*nq2 + iq2
					if row >= len(b.Values) || fi >= len(b.Values[row]) {
						return nil, nil, pdferr.UserErr("factory: subgrid block %d is missing data for flavour %d at (ix=%d,iq2=%d)", bi, id, ix, iq2)
					}
					xf[ix][iq2] = b.Values[row][fi]
				}
			}
			arr := &knot.Array1F{}
			if err := arr.Init(b.XKnots, b.Q2Knots, xf); err != nil {
				return nil, nil, err
			}
			if err := sg.Add(id, arr); err != nil {
				return nil, nil, err
			}
			if !seen[id] {
				seen[id] = true
				flavorSet = append(flavorSet, id)
			}
		}
		subgrids[bi] = sg
	}
	return subgrids, flavorSet, nil
}
