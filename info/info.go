// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package info implements the three-level cascading metadata store
// (member -> set -> global) spec.md §4.4 describes: a key lookup
// checks the member-level map first, falls back to the owning set's
// map, then to the global map, and fails with MetadataMissing only
// once all three have been tried.
package info

import "github.com/cpmech/gopdf/pdferr"

// Store is one level of the cascade: a flat string-keyed bag of
// loosely-typed values, as decoded from a YAML metadata document.
type Store map[string]interface{}

// Cascade chains member, set and global stores, in lookup-priority
// order. A nil entry is a level with no metadata (e.g. no global
// config file found) and is simply skipped.
type Cascade struct {
	Member Store
	Set    Store
	Global Store
}

// levels returns the three stores in lookup-priority order, skipping
// nils.
func (o Cascade) levels() []Store {
	var ls []Store
	for _, s := range []Store{o.Member, o.Set, o.Global} {
		if s != nil {
			ls = append(ls, s)
		}
	}
	return ls
}

// raw returns the first value found for key across the cascade.
func (o Cascade) raw(key string) (interface{}, bool) {
	for _, s := range o.levels() {
		if v, ok := s[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether key resolves at any level of the cascade.
func (o Cascade) Has(key string) bool {
	_, ok := o.raw(key)
	return ok
}

// String returns key as a string, cascading member -> set -> global.
func (o Cascade) String(key string) (string, error) {
	v, ok := o.raw(key)
	if !ok {
		return "", pdferr.MetadataMissingErr(key)
	}
	s, ok := v.(string)
	if !ok {
		return "", pdferr.MetadataBadTypeErr(key, "string")
	}
	return s, nil
}

// Float64 returns key as a float64, accepting any numeric YAML scalar
// type the decoder produced (float64 or int).
func (o Cascade) Float64(key string) (float64, error) {
	v, ok := o.raw(key)
	if !ok {
		return 0, pdferr.MetadataMissingErr(key)
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	}
	return 0, pdferr.MetadataBadTypeErr(key, "float64")
}

// Int returns key as an int.
func (o Cascade) Int(key string) (int, error) {
	v, ok := o.raw(key)
	if !ok {
		return 0, pdferr.MetadataMissingErr(key)
	}
	switch t := v.(type) {
	case int:
		return t, nil
	case float64:
		return int(t), nil
	}
	return 0, pdferr.MetadataBadTypeErr(key, "int")
}

// Bool returns key as a bool.
func (o Cascade) Bool(key string) (bool, error) {
	v, ok := o.raw(key)
	if !ok {
		return false, pdferr.MetadataMissingErr(key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, pdferr.MetadataBadTypeErr(key, "bool")
	}
	return b, nil
}

// StringSlice returns key as a []string.
func (o Cascade) StringSlice(key string) ([]string, error) {
	v, ok := o.raw(key)
	if !ok {
		return nil, pdferr.MetadataMissingErr(key)
	}
	raw, ok := v.([]interface{})
	if !ok {
		if ss, ok := v.([]string); ok {
			return ss, nil
		}
		return nil, pdferr.MetadataBadTypeErr(key, "[]string")
	}
	out := make([]string, len(raw))
	for i, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, pdferr.MetadataBadTypeErr(key, "[]string")
		}
		out[i] = s
	}
	return out, nil
}

// Float64SliceOr returns key as a []float64, or def if the key is
// absent at every level (many metadata fields are optional overrides).
func (o Cascade) Float64SliceOr(key string, def []float64) []float64 {
	v, ok := o.raw(key)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case []float64:
		return t
	case []interface{}:
		out := make([]float64, len(t))
		for i, e := range t {
			switch n := e.(type) {
			case float64:
				out[i] = n
			case int:
				out[i] = float64(n)
			}
		}
		return out
	}
	return def
}
