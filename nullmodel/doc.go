// Package nullmodel provides constrained random-graph samplers: the
// reference ("null") distributions that structural significance tests
// condition on.
//
// Overview:
//
//   - A Constraint is one family of structural invariants with its
//     parameters bound: exact edge count, expected density, exact degree
//     sequence (undirected or in/out), or exact dyad census (U|MAN).
//   - Sample(rng) draws one fresh core.Graph per call; the observed graph is
//     never consumed as a template, only its counts are read by the Match*
//     helpers. Exactly one constraint family is active per evaluation.
//
// Families and guarantees:
//
//   - FixedEdgeCount(n, m, directed) — EXACT: every sample has m edges,
//     uniform over all simple graphs with m edges (distinct slot indices,
//     unranked via gonum's combin).
//   - FixedDensity(n, p, directed) — IN EXPECTATION: independent
//     Bernoulli(p) per admissible pair (Erdős–Rényi G(n,p)).
//   - FixedDegreeSequence(seq) — EXACT: stub matching with a bounded retry
//     budget; infeasibility (odd sum, Erdős–Gallai) is decided up front.
//   - FixedInOutDegrees(in, out) — EXACT: directed stub matching; stub-sum
//     balance checked up front, full Fulkerson realizability is not.
//   - FixedDyadCensus(n, mut, asym, null) — EXACT: shuffled dyad
//     assignment; exact on every sample without retries.
//
// Uniformity statement (decide-and-document, not decide-silently):
//
//	The degree-preserving families use HEURISTIC stub matching, which is
//	known to be slightly non-uniform over realizations (high-degree nodes
//	end up adjacent a little more often than under the uniform model).
//	WithEdgeSwaps(k) appends k double-edge-swap attempts — a degree-
//	preserving Markov chain — which mixes toward uniform as k grows but
//	carries no finite-k uniformity proof. p-values derived under these
//	families inherit this residual bias; callers wanting tighter
//	guarantees should raise the swap budget (a common choice is
//	k ≈ 10–100 × edge count). The remaining families are exactly uniform
//	over their support.
//
// Error handling (sentinel errors):
//
//   - ErrConstraintInfeasible — no simple graph satisfies the exact
//     constraint; fatal, decided by Validate, never retried.
//   - ErrRetryExhausted — bounded heuristic pairing ran out of attempts;
//     raise WithMaxRetries and re-invoke.
//   - ErrNeedRandSource — Sample(nil).
//   - ErrUnsupportedGraphMode, ErrTooFewNodes, ErrInvalidProbability,
//     ErrNilGraph — parameter/mode violations.
//
// Determinism:
//
//	Every sampler consumes its RNG in a documented, fixed order, so equal
//	parameters plus an equal RNG state yield an identical graph. The
//	evaluator (package cug) exploits this to make whole reference
//	distributions reproducible from a single master seed.
package nullmodel
