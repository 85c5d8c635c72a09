// SPDX-License-Identifier: MIT
//
// Package cug: result types and error definitions for conditional
// uniform-graph significance evaluation.
package cug

import (
	"errors"
	"fmt"
)

// Sentinel errors for evaluation.
var (
	// ErrGraphNil is returned if a nil observed graph is passed.
	ErrGraphNil = errors.New("cug: observed graph is nil")

	// ErrNilStatistic is returned if the statistic function is nil.
	ErrNilStatistic = errors.New("cug: statistic is nil")

	// ErrNilConstraint is returned if the null-model constraint is nil.
	ErrNilConstraint = errors.New("cug: constraint is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cug: invalid option supplied")

	// ErrDeadlineExceeded is returned when the evaluation context expires
	// before all draws complete. Partial results are discarded.
	ErrDeadlineExceeded = errors.New("cug: evaluation deadline exceeded")
)

// Tail selects the direction of the one-sided test.
type Tail uint8

const (
	// Right tests whether the observed value is unusually LARGE under the
	// null: p = #{sim ≥ obs} / N.
	Right Tail = iota
	// Left tests whether the observed value is unusually SMALL:
	// p = #{sim ≤ obs} / N.
	Left
)

// String implements fmt.Stringer for diagnostics.
func (t Tail) String() string {
	switch t {
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Tail(%d)", uint8(t))
	}
}

// Summary captures the shape of the simulated distribution. Quantiles are
// computed with montanaflynn/stats; SD is the sample standard deviation.
type Summary struct {
	Mean   float64
	SD     float64
	Min    float64
	Max    float64
	Median float64
	Q025   float64
	Q975   float64
}

// Result is the outcome of one Evaluate call. It is immutable once
// returned; Simulated is owned by the Result and must not be modified.
type Result struct {
	// Observed is the statistic on the input graph.
	Observed float64

	// Simulated holds the statistic for every draw, in draw-index order.
	// Its length equals Draws. The ordering is deterministic for a fixed
	// seed regardless of parallelism, because each slot is seeded
	// independently from (Seed, index).
	Simulated []float64

	// Rank counts simulated values at least as extreme as Observed in the
	// requested tail direction (ties count as extreme).
	Rank int

	// POneSided is Rank / Draws. When Rank is zero the empirical
	// distribution only bounds the p-value; use PString for reporting.
	POneSided float64

	// PTwoSided is 2·min(leftRank, rightRank)/Draws, capped at 1.
	PTwoSided float64

	// Tail and Draws echo the evaluation parameters; Seed is the master
	// seed the per-draw seeds were derived from.
	Tail  Tail
	Draws int
	Seed  int64

	// Summary describes the simulated distribution.
	Summary Summary

	// ZScore is (Observed − mean) / SD of the simulated values, and
	// PNormal the corresponding one-sided normal-approximation p-value.
	// Both are NaN when the simulated SD is zero.
	ZScore  float64
	PNormal float64
}

// PString renders the one-sided p-value for reporting. A zero rank means
// the observed value fell outside every draw, so the honest statement is a
// bound, not a point estimate:
//
//	Rank == 0 → "< 1/N"  (e.g. "< 1/1000")
//	otherwise → "%.6g" of POneSided
func (r *Result) PString() string {
	if r.Rank == 0 {
		return fmt.Sprintf("< 1/%d", r.Draws)
	}

	return fmt.Sprintf("%.6g", r.POneSided)
}

// splitmix64 is the SplitMix64 finalizer: a bijective 64-bit mix used to
// derive statistically independent per-draw seeds from (master seed, draw
// index). Two master seeds differing in one bit, or two adjacent indices,
// yield unrelated streams.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// drawSeed derives the RNG seed for draw i from the master seed.
func drawSeed(master int64, i int) int64 {
	return int64(splitmix64(uint64(master) + uint64(i) + 1))
}
