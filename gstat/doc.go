// SPDX-License-Identifier: MIT
//
// Package gstat provides graph-level descriptive statistics as pure
// functions of a core.Graph.
//
// Every statistic satisfies the Statistic contract:
//
//	type Statistic func(g *core.Graph) (float64, error)
//
// and never mutates its argument. Fixed functions (EdgeCount, Density,
// MutualDyads, Reciprocity, GlobalTransitivity, PositiveShare) are used
// directly; parametric ones (AvgGeodesic, Modularity) are constructors
// returning a closure so the parameters are fixed once and the result is
// still a plain Statistic.
//
// Determinism: all statistics are deterministic functions of the graph;
// iteration happens in the sorted node/edge order core guarantees, so
// floating-point accumulation order is stable across runs.
//
// Error taxonomy:
//
//   - ErrGraphNil            — nil graph pointer.
//   - ErrUndefined           — the statistic has no value on this graph
//     (reciprocity with no arcs, transitivity with no triple, excluded-pair
//     geodesic average with no reachable pair).
//   - ErrNotDirected         — directed-only statistic on an undirected graph.
//   - ErrNotSigned           — sign statistic on a non-Signed graph.
//   - ErrPartitionIncomplete — modularity partition missing a node.
//
// Undefined is an error, not a number: no statistic ever smuggles a NaN or
// a zero where the quantity does not exist. The one intentional non-finite
// value is AvgGeodesic(DisconnectedInf) returning +Inf on a disconnected
// graph, which is the documented meaning of that policy.
package gstat
