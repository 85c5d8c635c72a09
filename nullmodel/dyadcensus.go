// SPDX-License-Identifier: MIT
// Package: graphsig/nullmodel
//
// dyadcensus.go — FixedDyadCensus(n, mut, asym, null) constraint family.
//
// Canonical model (the U|MAN distribution):
//   - Directed simple graph on n nodes whose dyad census equals
//     (mut, asym, null) EXACTLY: shuffle the n(n-1)/2 unordered pairs,
//     assign the first mut as mutual, the next asym as one-way with a fair
//     coin per orientation, and leave the rest empty.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - mut, asym, null ≥ 0 and mut+asym+null == n(n-1)/2
//     (else ErrConstraintInfeasible).
//   - Directed only by construction; loops are outside the census.
//   - Exact on every sample; no retries needed.
//
// Complexity: O(n²) to enumerate and shuffle the dyads; O(n²) space.
//
// Determinism: stable pair enumeration (i asc, j > i) + one Shuffle + one
// coin per asymmetric dyad ⇒ identical graph for equal RNG state.
package nullmodel

import (
	"fmt"
	"math/rand"

	"graphsig/core"
)

const methodFixedDyadCensus = "FixedDyadCensus"

// DyadCensusConstraint preserves an exact mutual/asymmetric/null partition.
type DyadCensusConstraint struct {
	n    int
	mut  int
	asym int
	null int
	cfg  genConfig
}

// FixedDyadCensus returns a constraint sampling uniformly from directed
// graphs with the exact census (mut, asym, null).
func FixedDyadCensus(n, mut, asym, null int, opts ...Option) *DyadCensusConstraint {
	return &DyadCensusConstraint{n: n, mut: mut, asym: asym, null: null, cfg: newGenConfig(opts...)}
}

// Family reports FamilyDyadCensus.
func (c *DyadCensusConstraint) Family() Family { return FamilyDyadCensus }

// Validate checks non-negativity and that the census partitions all dyads.
func (c *DyadCensusConstraint) Validate() error {
	if c.n < minNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodFixedDyadCensus, c.n, minNodes, ErrTooFewNodes)
	}
	if c.mut < 0 || c.asym < 0 || c.null < 0 {
		return fmt.Errorf("%s: negative census (%d,%d,%d): %w",
			methodFixedDyadCensus, c.mut, c.asym, c.null, ErrConstraintInfeasible)
	}
	dyads := c.n * (c.n - 1) / 2
	if c.mut+c.asym+c.null != dyads {
		return fmt.Errorf("%s: census (%d,%d,%d) does not partition %d dyads: %w",
			methodFixedDyadCensus, c.mut, c.asym, c.null, dyads, ErrConstraintInfeasible)
	}

	return nil
}

// Sample draws one directed graph with the exact census.
func (c *DyadCensusConstraint) Sample(rng *rand.Rand) (*core.Graph, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodFixedDyadCensus, ErrNeedRandSource)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	g := core.New(core.WithDirected(true))
	for i := 0; i < c.n; i++ {
		if err := g.AddNode(c.cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodFixedDyadCensus, c.cfg.idFn(i), err)
		}
	}

	// Enumerate all unordered dyads in stable order, then shuffle once.
	dyads := make([]arc, 0, c.n*(c.n-1)/2)
	for i := 0; i < c.n; i++ {
		for j := i + 1; j < c.n; j++ {
			dyads = append(dyads, arc{i, j})
		}
	}
	rng.Shuffle(len(dyads), func(i, j int) { dyads[i], dyads[j] = dyads[j], dyads[i] })

	for k, d := range dyads {
		u, v := c.cfg.idFn(d[0]), c.cfg.idFn(d[1])
		switch {
		case k < c.mut:
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w", methodFixedDyadCensus, u, v, err)
			}
			if err := g.AddEdge(v, u); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w", methodFixedDyadCensus, v, u, err)
			}
		case k < c.mut+c.asym:
			// Fair coin decides the orientation of each asymmetric dyad.
			if rng.Intn(2) == 0 {
				u, v = v, u
			}
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w", methodFixedDyadCensus, u, v, err)
			}
		default:
			// Null dyad: no arc either way.
		}
	}

	return g, nil
}
