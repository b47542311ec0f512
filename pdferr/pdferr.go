// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdferr defines the typed error kinds returned by gopdf's
// hot evaluation path and by set/grid construction.
package pdferr

import "fmt"

// Kind identifies the class of a gopdf error
type Kind int

// error kinds
const (
	FileNotFound Kind = iota
	ReadFailure
	MetadataMissing
	MetadataBadType
	FactoryUnknown
	UnphysicalX
	UnphysicalQ2
	OutOfGridRange
	FlavorNotSupported
	ExtrapolationDisabled
	AlphaSRunaway
	IndexLookup
	UserError
)

var kindNames = map[Kind]string{
	FileNotFound:          "FileNotFound",
	ReadFailure:           "ReadFailure",
	MetadataMissing:       "MetadataMissing",
	MetadataBadType:       "MetadataBadType",
	FactoryUnknown:        "FactoryUnknown",
	UnphysicalX:           "UnphysicalX",
	UnphysicalQ2:          "UnphysicalQ2",
	OutOfGridRange:        "OutOfGridRange",
	FlavorNotSupported:    "FlavorNotSupported",
	ExtrapolationDisabled: "ExtrapolationDisabled",
	AlphaSRunaway:         "AlphaSRunaway",
	IndexLookup:           "IndexLookup",
	UserError:             "UserError",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Unknown"
}

// Error is the concrete error type returned throughout gopdf. It carries
// a Kind so callers can switch on failure class without string matching,
// plus whatever structured fields are relevant to that kind.
type Error struct {
	Kind    Kind
	Msg     string
	Key     string  // MetadataMissing/MetadataBadType(key), FactoryUnknown(name)
	What    string  // FactoryUnknown(what): "interpolator", "extrapolator", "alphas", "format"; MetadataBadType(expected)
	Value   float64 // UnphysicalX/UnphysicalQ2/OutOfGridRange(v)
	Lo, Hi  float64 // OutOfGridRange([lo,hi])
	Axis    string  // OutOfGridRange(axis)
	ID      int     // FlavorNotSupported(id), IndexLookup(lhaid)
	Cause   error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Kind.String()
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target shares this error's Kind, so callers can
// do errors.Is(err, pdferr.New(pdferr.OutOfGridRange, "")) style checks
// via a sentinel built from the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New builds a plain error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an error of the given kind with an underlying cause
// (used for construction-time, file-backed failures).
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// UnphysicalXErr builds the UnphysicalX(v) error of spec §7.
func UnphysicalXErr(x float64) *Error {
	return &Error{Kind: UnphysicalX, Value: x, Msg: fmt.Sprintf("x=%g is unphysical: must be in [0,1]", x)}
}

// UnphysicalQ2Err builds the UnphysicalQ2(v) error of spec §7.
func UnphysicalQ2Err(q2 float64) *Error {
	return &Error{Kind: UnphysicalQ2, Value: q2, Msg: fmt.Sprintf("Q2=%g is unphysical: must be >= 0", q2)}
}

// OutOfGridRangeErr builds the OutOfGridRange(axis,v,[lo,hi]) error of spec §7.
func OutOfGridRangeErr(axis string, v, lo, hi float64) *Error {
	return &Error{
		Kind: OutOfGridRange, Axis: axis, Value: v, Lo: lo, Hi: hi,
		Msg: fmt.Sprintf("%s=%g is out of grid range [%g,%g]", axis, v, lo, hi),
	}
}

// FlavorNotSupportedErr builds the FlavorNotSupported(id) error of spec §7.
func FlavorNotSupportedErr(id int) *Error {
	return &Error{Kind: FlavorNotSupported, ID: id, Msg: fmt.Sprintf("flavor id=%d is not supported by this PDF", id)}
}

// ExtrapolationDisabledErr builds the ExtrapolationDisabled error of spec §7.
func ExtrapolationDisabledErr() *Error {
	return &Error{Kind: ExtrapolationDisabled, Msg: "extrapolation is disabled for this PDF"}
}

// AlphaSRunawayErr builds the AlphaSRunaway error of spec §7 (Q² <= Λ²).
func AlphaSRunawayErr(q2, lambda2 float64) *Error {
	return &Error{Kind: AlphaSRunaway, Value: q2, Msg: fmt.Sprintf("alphaS: Q2=%g <= Lambda2=%g, running coupling diverges", q2, lambda2)}
}

// MetadataMissingErr builds the MetadataMissing(key) error of spec §7.
func MetadataMissingErr(key string) *Error {
	return &Error{Kind: MetadataMissing, Key: key, Msg: fmt.Sprintf("metadata key %q is missing", key)}
}

// MetadataBadTypeErr builds the MetadataBadType(key,expected) error of spec §7.
func MetadataBadTypeErr(key, expected string) *Error {
	return &Error{Kind: MetadataBadType, Key: key, What: expected, Msg: fmt.Sprintf("metadata key %q is not a %s", key, expected)}
}

// FactoryUnknownErr builds the FactoryUnknown(what,name) error of spec §7.
func FactoryUnknownErr(what, name string) *Error {
	return &Error{Kind: FactoryUnknown, What: what, Key: name, Msg: fmt.Sprintf("unknown %s %q", what, name)}
}

// IndexLookupErr builds the IndexLookup(lhaid) error of spec §7.
func IndexLookupErr(lhaid int) *Error {
	return &Error{Kind: IndexLookup, ID: lhaid, Msg: fmt.Sprintf("lhaid=%d not found in pdfsets.index", lhaid)}
}

// UserErr builds the UserError(msg) error of spec §7 (set-statistics
// vector-length mismatches and the like).
func UserErr(format string, args ...interface{}) *Error {
	return &Error{Kind: UserError, Msg: fmt.Sprintf(format, args...)}
}
