// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format implements the on-disk PDF set/member file contract
// (spec.md §6): a YAML metadata document, optionally followed (for a
// member .dat file) by one or more "---"-delimited subgrid blocks of
// raw numeric text.
package format

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cpmech/gopdf/info"
	"github.com/cpmech/gopdf/pdferr"
)

// SubgridBlock is one decoded data block from a member file: the x and
// Q knot arrays, the flavour-id row, and the table of xf values, row-
// major by (x index, then Q² index), one column per flavour id in the
// order FlavorIDs lists them (spec.md §6.2).
type SubgridBlock struct {
	XKnots    []float64
	Q2Knots   []float64
	FlavorIDs []int
	Values    [][]float64 // Values[ix*len(Q2Knots)+iq2][iflavor]
}

// Decoder reads the on-disk representation into in-memory metadata and
// subgrid blocks.
type Decoder interface {
	DecodeSetInfo(r io.Reader) (info.Store, error)
	DecodeMember(r io.Reader) (info.Store, []SubgridBlock, error)
}

// Encoder writes metadata and subgrid blocks back out in the on-disk
// representation.
type Encoder interface {
	EncodeSetInfo(w io.Writer, meta info.Store) error
	EncodeMember(w io.Writer, meta info.Store, blocks []SubgridBlock) error
}

// YAMLCodec is the concrete Decoder/Encoder: YAML for every metadata
// document (gopkg.in/yaml.v3, same library this pack's
// inference-sim-inference-sim repo uses for its own config file), plus
// a hand-rolled scanner for the raw-numeric subgrid blocks that YAML
// was never meant to carry efficiently.
type YAMLCodec struct{}

// DecodeSetInfo implements Decoder.
func (YAMLCodec) DecodeSetInfo(r io.Reader) (info.Store, error) {
	var m info.Store
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, pdferr.Wrap(pdferr.ReadFailure, errors.Wrap(err, "format: decoding set-info YAML"), "format: malformed set-info document")
	}
	return m, nil
}

// EncodeSetInfo implements Encoder.
func (YAMLCodec) EncodeSetInfo(w io.Writer, meta info.Store) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(map[string]interface{}(meta)); err != nil {
		return pdferr.Wrap(pdferr.ReadFailure, errors.Wrap(err, "format: encoding set-info YAML"), "format: failed to write set-info document")
	}
	return nil
}

// DecodeMember implements Decoder: a YAML header document, then zero
// or more "---"-delimited numeric subgrid blocks.
func (YAMLCodec) DecodeMember(r io.Reader) (info.Store, []SubgridBlock, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var headerLines []string
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "---" {
			break
		}
		headerLines = append(headerLines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, pdferr.Wrap(pdferr.ReadFailure, errors.Wrap(err, "format: reading member header"), "format: member header read failed")
	}

	var meta info.Store
	if len(headerLines) > 0 {
		if err := yaml.Unmarshal([]byte(strings.Join(headerLines, "\n")), &meta); err != nil {
			return nil, nil, pdferr.Wrap(pdferr.ReadFailure, errors.Wrap(err, "format: parsing member header YAML"), "format: malformed member header")
		}
	}

	var blocks []SubgridBlock
	for {
		block, more, err := scanSubgridBlock(sc)
		if err != nil {
			return nil, nil, err
		}
		if block != nil {
			blocks = append(blocks, *block)
		}
		if !more {
			break
		}
	}
	return meta, blocks, nil
}

// scanSubgridBlock reads one x-line, one Q-line, one flavour-id line
// and then data rows until the next "---" delimiter or EOF. It returns
// more=true if scanning should continue (another block may follow).
func scanSubgridBlock(sc *bufio.Scanner) (block *SubgridBlock, more bool, err error) {
	xLine, ok := nextNonEmpty(sc)
	if !ok {
		return nil, false, nil
	}
	qLine, ok := nextNonEmpty(sc)
	if !ok {
		return nil, false, pdferr.New(pdferr.ReadFailure, "format: subgrid block missing Q knot line")
	}
	fLine, ok := nextNonEmpty(sc)
	if !ok {
		return nil, false, pdferr.New(pdferr.ReadFailure, "format: subgrid block missing flavour-id line")
	}

	x, err := parseFloats(xLine)
	if err != nil {
		return nil, false, err
	}
	q2raw, err := parseFloats(qLine)
	if err != nil {
		return nil, false, err
	}
	q2 := make([]float64, len(q2raw))
	for i, q := range q2raw {
		q2[i] = q * q
	}
	flavs, err := parseInts(fLine)
	if err != nil {
		return nil, false, err
	}

	var values [][]float64
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "---" {
			return &SubgridBlock{XKnots: x, Q2Knots: q2, FlavorIDs: flavs, Values: values}, true, nil
		}
		if line == "" {
			continue
		}
		row, err := parseFloats(line)
		if err != nil {
			return nil, false, err
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, false, pdferr.Wrap(pdferr.ReadFailure, errors.Wrap(err, "format: reading subgrid data rows"), "format: subgrid data read failed")
	}
	return &SubgridBlock{XKnots: x, Q2Knots: q2, FlavorIDs: flavs, Values: values}, false, nil
}

func nextNonEmpty(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

func parseFloats(line string) ([]float64, error) {
	fields := strings.Fields(line)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, pdferr.Wrap(pdferr.ReadFailure, err, "format: malformed numeric field %q", f)
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, pdferr.Wrap(pdferr.ReadFailure, err, "format: malformed integer field %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// EncodeMember implements Encoder.
func (YAMLCodec) EncodeMember(w io.Writer, meta info.Store, blocks []SubgridBlock) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(map[string]interface{}(meta)); err != nil {
		enc.Close()
		return pdferr.Wrap(pdferr.ReadFailure, errors.Wrap(err, "format: encoding member header"), "format: failed to write member header")
	}
	enc.Close()
	fmt.Fprintln(w, "---")

	for _, b := range blocks {
		writeFloats(w, b.XKnots)
		q := make([]float64, len(b.Q2Knots))
		for i, q2 := range b.Q2Knots {
			q[i] = math.Sqrt(q2) // the on-disk line carries Q, DecodeMember squares it back to Q2
		}
		writeFloats(w, q)
		writeInts(w, b.FlavorIDs)
		for _, row := range b.Values {
			writeFloats(w, row)
		}
		fmt.Fprintln(w, "---")
	}
	return nil
}

func writeFloats(w io.Writer, v []float64) {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

func writeInts(w io.Writer, v []int) {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
