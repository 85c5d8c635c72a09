// SPDX-License-Identifier: MIT
// Package: graphsig/nullmodel
//
// types.go — the Constraint contract and the Family tag.
//
// Design contract (strict):
//   - One Constraint = one family with its parameters bound at construction.
//   - Validate is side-effect free and decides feasibility for the EXACT
//     families; Sample never silently degrades an infeasible constraint.
//   - Sample draws one fresh core.Graph per call from the caller's RNG and
//     never consumes an observed graph as a template instance.
//   - Determinism: equal parameters + equal RNG state ⇒ identical sample.
package nullmodel

import (
	"math/rand"

	"graphsig/core"
)

// Family identifies which structural invariant a constraint preserves.
type Family uint8

const (
	// FamilyEdgeCount preserves the exact edge count m (uniform over all
	// simple graphs with m edges).
	FamilyEdgeCount Family = iota
	// FamilyDensity preserves density in expectation (Bernoulli per pair).
	FamilyDensity
	// FamilyDegreeSequence preserves the exact undirected degree sequence.
	FamilyDegreeSequence
	// FamilyInOutDegrees preserves exact per-node in- and out-degrees.
	FamilyInOutDegrees
	// FamilyDyadCensus preserves the exact mutual/asymmetric/null counts.
	FamilyDyadCensus
)

// String renders the Family for diagnostics.
func (f Family) String() string {
	switch f {
	case FamilyEdgeCount:
		return "edge-count"
	case FamilyDensity:
		return "density"
	case FamilyDegreeSequence:
		return "degree-sequence"
	case FamilyInOutDegrees:
		return "in-out-degrees"
	case FamilyDyadCensus:
		return "dyad-census"
	default:
		return "unknown"
	}
}

// Constraint is one null-model family with its parameters bound.
//
// Exactly one Constraint is active per evaluation. Implementations are
// immutable after construction and safe for concurrent Sample calls with
// distinct RNGs.
type Constraint interface {
	// Family reports which structural invariant this constraint preserves.
	Family() Family

	// Validate returns ErrConstraintInfeasible (wrapped with context) when
	// no simple graph satisfies the constraint, or any parameter-domain
	// sentinel. A nil return means Sample can only fail stochastically.
	Validate() error

	// Sample draws one graph honoring the constraint using rng.
	// Returns ErrNeedRandSource on a nil rng and ErrRetryExhausted when a
	// bounded heuristic ran out of attempts.
	Sample(rng *rand.Rand) (*core.Graph, error)
}
