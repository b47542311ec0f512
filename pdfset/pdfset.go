// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdfset implements Set: an ordered collection of pdf.PDF
// members sharing one error-propagation scheme (replicas, Hessian or
// symmetric Hessian), and the statistics spec.md §4.7 defines over it
// (Uncertainty, Correlation, RandomValue).
package pdfset

import (
	"math"
	"sort"

	"github.com/cpmech/gopdf/pdf"
	"github.com/cpmech/gopdf/pdferr"
)

// ErrorType names the statistical interpretation of Set.Members[1:].
type ErrorType int

const (
	ErrorNone ErrorType = iota
	ErrorReplicas
	ErrorHessian
	ErrorSymmHessian
)

// defaultConfLevel is 1 sigma in percent, the default confidence level
// set statistics are quoted at when a caller does not ask for another
// (spec.md §4.7): 100*erf(1/sqrt(2)).
var defaultConfLevel = 100 * math.Erf(1/math.Sqrt2)

// Set is an ordered PDF member list: member 0 is the central value,
// members 1..N-1 are the error set (replicas or Hessian eigenvectors).
type Set struct {
	Name        string
	Members     []pdf.PDF
	Type        ErrorType
	ConfLevel   float64 // percent; 0 means "use defaultConfLevel"
}

// NewSet builds a Set. At least one member (the central value) is
// required.
func NewSet(name string, members []pdf.PDF, errType ErrorType, confLevel float64) (*Set, error) {
	if len(members) == 0 {
		return nil, pdferr.UserErr("pdfset: Set %q requires at least one member", name)
	}
	if confLevel <= 0 {
		confLevel = defaultConfLevel
	}
	return &Set{Name: name, Members: members, Type: errType, ConfLevel: confLevel}, nil
}

// confLevel resolves the effective confidence level for a statistics
// call: reqCL if positive, else the set's own ConfLevel.
func (o *Set) confLevel(reqCL float64) float64 {
	if reqCL > 0 {
		return reqCL
	}
	return o.ConfLevel
}

// chiSquared1Quantile returns the inverse CDF of the chi-squared
// distribution with 1 degree of freedom at probability p, used to
// rescale Hessian uncertainties between confidence levels (spec.md
// §4.7). Derived analytically, Q(p) = 2*erfinv(p)^2, rather than
// pulled from a statistics library: this one closed form needs no
// iterative solver and the pack's only statistics dependency
// (gonum.org/v1/gonum/stat) never appears as a direct import anywhere
// in the retrieved examples, so it is not a grounded choice here.
func chiSquared1Quantile(p float64) float64 {
	e := math.Erfinv(p)
	return 2 * e * e
}

// values evaluates every member at (id,x,q2), returning member 0's
// value and the rest as the "variation" slice.
func (o *Set) values(id int, x, q2 float64) (central float64, variations []float64, err error) {
	central, err = o.Members[0].XfxQ2(id, x, q2)
	if err != nil {
		return 0, nil, err
	}
	variations = make([]float64, len(o.Members)-1)
	for i := 1; i < len(o.Members); i++ {
		variations[i-1], err = o.Members[i].XfxQ2(id, x, q2)
		if err != nil {
			return 0, nil, err
		}
	}
	return central, variations, nil
}

// Uncertainty computes the central value and requested-confidence-
// level uncertainty of xf(id,x,Q²) across the set (spec.md §4.7). When
// median is true and Type is ErrorReplicas, central is the median of
// the replicas and err+/err- bracket the reqCL quantile interval
// around it instead of the rescaled standard deviation. scale is the
// √(Q(reqCL)/Q(errCL)) factor actually applied (1 in the median case,
// since its interval is already computed directly at reqCL).
func (o *Set) Uncertainty(id int, x, q2, reqCL float64, median bool) (central, errplus, errminus, errsymm, scale float64, err error) {
	central, v, err := o.values(id, x, q2)
	if err != nil {
		return 0, 0, 0, 0, 0, err
	}
	cl := o.confLevel(reqCL)

	switch o.Type {
	case ErrorReplicas:
		var sum float64
		for _, vi := range v {
			sum += vi
		}
		mean := central
		if len(v) > 0 {
			mean = sum / float64(len(v))
		}
		if median && len(v) > 0 {
			sorted := sortedCopy(v)
			alpha := cl / 100
			lower := quantile(sorted, (1-alpha)/2)
			upper := quantile(sorted, 1-(1-alpha)/2)
			central = quantile(sorted, 0.5)
			errplus = upper - central
			errminus = central - lower
			errsymm = 0.5 * (errplus + errminus)
			scale = 1
			break
		}
		var variance float64
		for _, vi := range v {
			d := vi - mean
			variance += d * d
		}
		if len(v) > 1 {
			variance /= float64(len(v) - 1)
		}
		central = mean
		scale = o.scale(cl)
		errsymm = math.Sqrt(variance) * scale
		errplus, errminus = errsymm, errsymm

	case ErrorHessian:
		var sumPlus, sumMinus float64
		for i := 0; i+1 < len(v); i += 2 {
			up, down := v[i]-central, v[i+1]-central
			dp := math.Max(0, math.Max(up, down))
			dm := math.Max(0, math.Max(-up, -down))
			sumPlus += dp * dp
			sumMinus += dm * dm
		}
		scale = o.scale(cl)
		errplus = scale * math.Sqrt(sumPlus)
		errminus = scale * math.Sqrt(sumMinus)
		errsymm = 0.5 * (errplus + errminus)

	case ErrorSymmHessian:
		var sum float64
		for _, vi := range v {
			d := vi - central
			sum += d * d
		}
		scale = o.scale(cl)
		errsymm = scale * math.Sqrt(sum)
		errplus, errminus = errsymm, errsymm

	default:
		scale = 1
	}
	return central, errplus, errminus, errsymm, scale, nil
}

// scale rescales an uncertainty quoted at the set's own ConfLevel to
// cl percent via the chi-squared-1 quantile ratio (spec.md §4.7):
// √(Q(cl)/Q(errCL)). Requesting the set's native confidence level
// (reqCL<=0, so cl==o.ConfLevel) yields scale==1.
func (o *Set) scale(cl float64) float64 {
	return math.Sqrt(chiSquared1Quantile(cl/100) / chiSquared1Quantile(o.ConfLevel/100))
}

// quantile returns the p-quantile (p in [0,1]) of sorted via linear
// interpolation between order statistics.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Correlation computes the correlation coefficient between two
// observables sampled across the set's replicas (spec.md §4.7, Open
// Question (iii): the nmem-1 divisor, matching a sample — not
// population — covariance estimator).
func (o *Set) Correlation(valuesA, valuesB []float64) (float64, error) {
	if len(valuesA) != len(valuesB) || len(valuesA) < 2 {
		return 0, pdferr.UserErr("pdfset: Correlation requires two equal-length slices of at least 2 replica values")
	}
	n := float64(len(valuesA))
	var meanA, meanB float64
	for i := range valuesA {
		meanA += valuesA[i]
		meanB += valuesB[i]
	}
	meanA /= n
	meanB /= n

	var cov, varA, varB float64
	for i := range valuesA {
		da, db := valuesA[i]-meanA, valuesB[i]-meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	nm1 := n - 1
	cov /= nm1
	varA /= nm1
	varB /= nm1
	denom := math.Sqrt(varA * varB)
	if denom == 0 {
		return 0, nil
	}
	return cov / denom, nil
}

// sortedCopy returns a sorted copy of v, used by Uncertainty's
// replica-median quantile interval.
func sortedCopy(v []float64) []float64 {
	out := append([]float64{}, v...)
	sort.Float64s(out)
	return out
}
