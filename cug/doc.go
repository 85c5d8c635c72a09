// SPDX-License-Identifier: MIT

// Package cug runs conditional uniform-graph (CUG) significance tests:
// is an observed graph statistic extreme relative to random graphs that
// share a chosen structural property with the observation?
//
// The test has three moving parts, each owned by a sibling package:
//
//   - the observed graph             (package core)
//   - a statistic to evaluate        (package gstat)
//   - a conditioning constraint      (package nullmodel)
//
// Evaluate ties them together: it draws N graphs from the constrained null
// model, applies the statistic to each, and reports where the observed
// value ranks in that empirical distribution.
//
//	g, _ := core.FromEdgeList(pairs, core.WithDirected(true))
//	c, _ := nullmodel.MatchEdgeCount(g)
//	res, err := cug.Evaluate(g, gstat.MutualDyads, c,
//		cug.WithDraws(1000), cug.WithSeed(42))
//	fmt.Println(res.PString()) // e.g. "< 1/1000"
//
// # Interpretation
//
// POneSided is the share of draws at least as extreme as the observation,
// ties included. A rank of zero does not mean p = 0 — N draws can only
// bound the tail — so PString reports "< 1/N" in that case. PTwoSided
// doubles the smaller tail and caps at 1. ZScore and PNormal give the
// normal approximation as a cross-check; with a skewed null distribution
// trust the empirical values.
//
// # Reproducibility
//
// The draw at index i is seeded by a SplitMix64 mix of (master seed, i),
// and results land in an index-addressed slice. The Result is therefore
// byte-identical for a fixed seed whether the draws ran on one goroutine
// or sixteen.
//
// See doc.go of package nullmodel for what each conditioning family
// holds fixed and how uniform its sampler is.
package cug
