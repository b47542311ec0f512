// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ipol

// cubicHermite evaluates the cubic Hermite spline on t ∈ [0,1] given
// endpoint values p0,p1 and endpoint slopes m0,m1 already scaled by the
// local knot interval width (spec.md §4.3: "Slopes are scaled by the
// local knot interval width so the cubic parameter t ∈ [0,1] maps
// correctly").
func cubicHermite(t, p0, p1, m0, m1 float64) float64 {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*p0 + h10*m0 + h01*p1 + h11*m1
}

// slopeAt computes the derivative of y(k) at knot index i by central
// difference where both neighbours exist, and by one-sided forward
// (at the left edge, i==0) or backward (at the right edge,
// i==len(k)-1) difference otherwise (spec.md §4.3).
func slopeAt(k, y []float64, i int) float64 {
	n := len(k)
	switch {
	case n == 1:
		return 0
	case i == 0:
		return (y[1] - y[0]) / (k[1] - k[0])
	case i == n-1:
		return (y[n-1] - y[n-2]) / (k[n-1] - k[n-2])
	default:
		return (y[i+1] - y[i-1]) / (k[i+1] - k[i-1])
	}
}

// slopeAtFn is slopeAt without materialising the y slice: get(j) must
// return y[j]. Used along the x-direction where the "row" of xf values
// at a fixed Q² index is a strided view into the 2-D table.
func slopeAtFn(k []float64, get func(int) float64, i int) float64 {
	n := len(k)
	switch {
	case n == 1:
		return 0
	case i == 0:
		return (get(1) - get(0)) / (k[1] - k[0])
	case i == n-1:
		return (get(n-1) - get(n-2)) / (k[n-1] - k[n-2])
	default:
		return (get(i+1) - get(i-1)) / (k[i+1] - k[i-1])
	}
}
