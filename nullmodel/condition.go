// SPDX-License-Identifier: MIT
// Package: graphsig/nullmodel
//
// condition.go — Match* helpers binding a constraint to an observed graph.
//
// Each helper reads the observed graph ONCE (counts, sequences, census) and
// returns a constraint carrying those numbers. The graph itself is never
// retained or used as a template instance, so no sample can ever coincide
// with the observed graph by construction-sharing.
package nullmodel

import (
	"fmt"

	"graphsig/core"
)

// MatchEdgeCount binds FixedEdgeCount to g's node count, edge count,
// directedness, and loop policy.
func MatchEdgeCount(g *core.Graph, opts ...Option) (*EdgeCountConstraint, error) {
	if g == nil {
		return nil, fmt.Errorf("MatchEdgeCount: %w", ErrNilGraph)
	}
	if g.Looped() {
		opts = append(opts, WithLoops(true))
	}

	return FixedEdgeCount(g.NodeCount(), g.EdgeCount(), g.Directed(), opts...), nil
}

// MatchDensity binds FixedDensity to g's observed density.
func MatchDensity(g *core.Graph, opts ...Option) (*DensityConstraint, error) {
	if g == nil {
		return nil, fmt.Errorf("MatchDensity: %w", ErrNilGraph)
	}
	if g.Looped() {
		opts = append(opts, WithLoops(true))
	}

	return FixedDensity(g.NodeCount(), g.Density(), g.Directed(), opts...), nil
}

// MatchDegreeSequence binds the degree-preserving family matching g's mode:
// FixedDegreeSequence when undirected, FixedInOutDegrees when directed.
func MatchDegreeSequence(g *core.Graph, opts ...Option) (Constraint, error) {
	if g == nil {
		return nil, fmt.Errorf("MatchDegreeSequence: %w", ErrNilGraph)
	}
	if !g.Directed() {
		return FixedDegreeSequence(g.DegreeSequence(), opts...), nil
	}
	in, out, err := g.InOutDegreeSequences()
	if err != nil {
		return nil, fmt.Errorf("MatchDegreeSequence: %w", err)
	}

	return FixedInOutDegrees(in, out, opts...), nil
}

// MatchDyadCensus binds FixedDyadCensus to g's census.
// Returns ErrUnsupportedGraphMode for undirected graphs.
func MatchDyadCensus(g *core.Graph, opts ...Option) (*DyadCensusConstraint, error) {
	if g == nil {
		return nil, fmt.Errorf("MatchDyadCensus: %w", ErrNilGraph)
	}
	if !g.Directed() {
		return nil, fmt.Errorf("MatchDyadCensus: undirected observed graph: %w", ErrUnsupportedGraphMode)
	}
	mut, asym, null, err := g.DyadCensus()
	if err != nil {
		return nil, fmt.Errorf("MatchDyadCensus: %w", err)
	}

	return FixedDyadCensus(g.NodeCount(), mut, asym, null, opts...), nil
}
