// SPDX-License-Identifier: MIT
// Package: graphsig/nullmodel
//
// errors.go — sentinel errors for the nullmodel package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w wrapping; sentinels themselves
//     carry no parameters.
//   - Samplers MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
package nullmodel

import "errors"

// ErrConstraintInfeasible indicates that no simple graph of the requested
// size can satisfy the exact constraint (odd degree-sum, Erdős–Gallai
// violation, m beyond the admissible pair count, census not summing to
// n(n-1)/2, ...). Fatal: surfaced immediately, never retried.
// Usage: if errors.Is(err, ErrConstraintInfeasible) { /* fix parameters */ }.
var ErrConstraintInfeasible = errors.New("nullmodel: constraint infeasible")

// ErrRetryExhausted indicates that a heuristic pairing/swap algorithm failed
// to produce a valid realization within the bounded retry budget. The partial
// state of the last attempt is discarded; callers may raise WithMaxRetries
// and re-invoke.
// Usage: if errors.Is(err, ErrRetryExhausted) { /* raise retry budget */ }.
var ErrRetryExhausted = errors.New("nullmodel: retry budget exhausted")

// ErrNeedRandSource indicates Sample was called with a nil *rand.Rand.
// Every family is stochastic; the RNG is part of the contract.
var ErrNeedRandSource = errors.New("nullmodel: rng is required")

// ErrUnsupportedGraphMode indicates the constraint family is incompatible
// with the graph mode (dyad census or in/out sequences on an undirected
// graph, plain degree sequence on a directed one).
var ErrUnsupportedGraphMode = errors.New("nullmodel: unsupported graph mode")

// ErrTooFewNodes indicates a node count (or sequence length) below the
// minimum for the requested family.
var ErrTooFewNodes = errors.New("nullmodel: too few nodes")

// ErrInvalidProbability indicates a density parameter outside [0,1].
var ErrInvalidProbability = errors.New("nullmodel: probability out of range")

// ErrNilGraph indicates a Match* helper received a nil observed graph.
var ErrNilGraph = errors.New("nullmodel: graph is nil")
