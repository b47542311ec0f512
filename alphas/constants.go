// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alphas implements the strong-coupling (α_s) engine: the
// running of α_s(Q²) across quark-flavour thresholds, via either a
// truncated analytic series, a direct RGE integration, or table
// interpolation (spec.md §4.6).
package alphas

import "math"

// Quark indices into a Config.QuarkMasses array (index 0 is unused so
// the array can be addressed directly by flavour number).
const (
	Down = iota + 1
	Up
	Strange
	Charm
	Bottom
	Top
)

// DefaultMasses are the PDG quark masses (GeV) used when a caller does
// not supply its own thresholds.
var DefaultMasses = [7]float64{
	0,
	0.0, 0.0, 0.0, // d, u, s: treated as massless, always active
	1.29,  // c
	4.18,  // b
	172.9, // t
}

// zeta3 is ζ(3), needed by the 4-loop β coefficient.
const zeta3 = 1.2020569031595943

// Config holds the physical parameters shared by every AlphaS variant.
type Config struct {
	QuarkMasses [7]float64 // index 1..6 = d,u,s,c,b,t (GeV); 0 = massless/always-on
	LoopOrder   int        // 1..4
}

// betaCoeffs returns the QCD β-function coefficients for nf active
// flavours, normalised (PDG convention, §9 "Quantum Chromodynamics")
// so that α_s(μ²) = (1/(b0 t))·[1 − ... ] with t = ln(μ²/Λ²).
func betaCoeffs(nf int) (b0, b1, b2, b3 float64) {
	n := float64(nf)
	pi := math.Pi
	b0 = (33 - 2*n) / (12 * pi)
	b1 = (153 - 19*n) / (24 * pi * pi)
	b2 = (2857.0/2 - 5033.0/18*n + 325.0/54*n*n) / (64 * pi * pi * pi)
	b3 = ((149753.0/6+3564*zeta3)-(1078361.0/162+6508.0/27*zeta3)*n+(50065.0/162+6472.0/81*zeta3)*n*n+1093.0/729*n*n*n) / (256 * pi * pi * pi * pi)
	return
}

// numFlavorsQ2 returns the smallest nf in [nfmin,nfmax) such that
// Q² <= mass(nf+1)², clamped to nfmax if no such threshold is crossed
// (spec.md §4.6 "number of active flavours").
func numFlavorsQ2(masses [7]float64, q2 float64, nfmin, nfmax int) int {
	for nf := nfmin; nf < nfmax; nf++ {
		m := masses[nf+1]
		if m > 0 && q2 <= m*m {
			return nf
		}
	}
	return nfmax
}
