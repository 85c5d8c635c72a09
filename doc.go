// SPDX-License-Identifier: MIT

// Package graphsig evaluates the structural significance of social-network
// statistics with conditional uniform-graph (CUG) tests.
//
// A CUG test asks: is a property of an observed network — its
// reciprocation, clustering, path lengths, community structure — extreme
// compared to random graphs that share a chosen structural constraint
// with it? The answer separates genuine structure from what tie volume or
// the degree distribution alone would produce.
//
// The module is split into four packages, each usable on its own:
//
//   - core      — the graph model: directed/undirected simple graphs with
//     optional loops, weights, signs and kinds; census extraction
//     (degree sequences, U|MAN dyad census, density).
//   - nullmodel — constrained random-graph generators: fixed edge count,
//     fixed density, fixed degree sequence(s), fixed dyad census.
//   - gstat     — pure graph statistics: edge count, density, mutual
//     dyads, reciprocity, global transitivity, average geodesic
//     distance, modularity.
//   - cug       — the evaluator: parallel empirical-distribution
//     construction and significance assessment (rank, one- and
//     two-sided p-values, normal approximation).
//
// Quick start:
//
//	g, _ := core.FromEdgeList(arcs, core.WithDirected(true))
//	c, _ := nullmodel.MatchEdgeCount(g)
//	res, _ := cug.Evaluate(g, gstat.MutualDyads, c,
//		cug.WithDraws(1000), cug.WithSeed(42))
//	fmt.Println(res.PString())
//
// Everything is deterministic under a fixed seed, at any parallelism
// level. See the doc.go of each package for contracts and error taxonomy.
package graphsig
