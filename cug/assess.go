// SPDX-License-Identifier: MIT
//
// Package cug: rank and p-value computation over an empirical null
// distribution.
package cug

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Assess computes rank, empirical p-values, the distribution summary and
// the normal approximation for an observed value against simulated draws.
// It is exported so callers with an externally produced null distribution
// (e.g. draws pooled across machines) can reuse the significance logic.
//
// Rank counts draws at least as extreme as observed in the tail direction,
// ties included: the empirical p-value Rank/N then never understates
// significance. The two-sided p is 2·min(leftRank, rightRank)/N capped at
// 1, which keeps both tails symmetric without assuming the null
// distribution is.
//
// Assess panics on an empty simulated slice; Evaluate guarantees N ≥ 1.
func Assess(observed float64, simulated []float64, tail Tail) *Result {
	if len(simulated) == 0 {
		panic("cug: Assess requires at least one simulated value")
	}
	n := len(simulated)

	var geq, leq int
	for _, s := range simulated {
		if s >= observed {
			geq++
		}
		if s <= observed {
			leq++
		}
	}
	rank := geq
	if tail == Left {
		rank = leq
	}
	lo := geq
	if leq < geq {
		lo = leq
	}
	twoSided := 2 * float64(lo) / float64(n)
	if twoSided > 1 {
		twoSided = 1
	}

	r := &Result{
		Observed:  observed,
		Simulated: simulated,
		Rank:      rank,
		POneSided: float64(rank) / float64(n),
		PTwoSided: twoSided,
		Tail:      tail,
		Draws:     n,
		Summary:   summarize(simulated),
	}
	r.ZScore, r.PNormal = normalApprox(observed, r.Summary, tail)

	return r
}

// summarize computes the distribution shape via montanaflynn/stats. The
// inputs are finite by the time we get here except when a statistic
// legitimately returns ±Inf (the Inf geodesic policy); quantile errors
// cannot occur on a non-empty slice, so returned errors are ignored.
func summarize(sim []float64) Summary {
	data := stats.Float64Data(sim)
	mean, _ := data.Mean()
	sd, _ := data.StandardDeviationSample()
	lo, _ := data.Min()
	hi, _ := data.Max()
	med, _ := data.Median()
	q025, _ := data.Percentile(2.5)
	q975, _ := data.Percentile(97.5)

	return Summary{Mean: mean, SD: sd, Min: lo, Max: hi, Median: med, Q025: q025, Q975: q975}
}

// normalApprox returns the z-score of observed under the simulated mean/SD
// and the matching one-sided tail probability of the standard normal. A
// degenerate distribution (SD == 0) yields NaN for both; the empirical
// p-values remain valid in that case.
func normalApprox(observed float64, s Summary, tail Tail) (z, p float64) {
	if s.SD == 0 || math.IsNaN(s.SD) {
		return math.NaN(), math.NaN()
	}
	z = (observed - s.Mean) / s.SD
	if tail == Left {
		return z, distuv.UnitNormal.CDF(z)
	}

	return z, 1 - distuv.UnitNormal.CDF(z)
}
