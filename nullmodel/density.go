// SPDX-License-Identifier: MIT
// Package: graphsig/nullmodel
//
// density.go — FixedDensity(n, p, directed) constraint family.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each admissible pair independently with
//     probability p. The density constraint holds IN EXPECTATION, not
//     exactly; this is the probabilistic member of the constraint taxonomy
//     and is documented as such.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Stable trial order: i asc, then j asc (undirected uses j > i), loops
//     last per row when enabled — equal RNG state ⇒ equal graph.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) nodes + O(n²) Bernoulli trials; O(1) extra space.
package nullmodel

import (
	"fmt"
	"math/rand"

	"graphsig/core"
)

const methodFixedDensity = "FixedDensity"

// DensityConstraint preserves expected density p.
type DensityConstraint struct {
	n        int
	p        float64
	directed bool
	cfg      genConfig
}

// FixedDensity returns a Bernoulli-per-pair constraint with edge
// probability p (exact in expectation only).
func FixedDensity(n int, p float64, directed bool, opts ...Option) *DensityConstraint {
	return &DensityConstraint{n: n, p: p, directed: directed, cfg: newGenConfig(opts...)}
}

// Family reports FamilyDensity.
func (c *DensityConstraint) Family() Family { return FamilyDensity }

// Validate checks the parameter domain. A probabilistic family has no exact
// feasibility failure beyond its domain.
func (c *DensityConstraint) Validate() error {
	if c.n < minNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodFixedDensity, c.n, minNodes, ErrTooFewNodes)
	}
	if c.p < probMin || c.p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodFixedDensity, c.p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// Sample draws one G(n,p) graph with a stable trial order.
func (c *DensityConstraint) Sample(rng *rand.Rand) (*core.Graph, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodFixedDensity, ErrNeedRandSource)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	gopts := []core.GraphOption{core.WithDirected(c.directed)}
	if c.cfg.loops {
		gopts = append(gopts, core.WithLoops())
	}
	g := core.New(gopts...)
	for i := 0; i < c.n; i++ {
		if err := g.AddNode(c.cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodFixedDensity, c.cfg.idFn(i), err)
		}
	}

	// Bernoulli trial per admissible ordered/unordered pair, stable order.
	for i := 0; i < c.n; i++ {
		jStart := i + 1
		if c.directed {
			jStart = 0
		}
		for j := jStart; j < c.n; j++ {
			if i == j && !c.cfg.loops {
				continue
			}
			if rng.Float64() < c.p {
				if err := g.AddEdge(c.cfg.idFn(i), c.cfg.idFn(j)); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w",
						methodFixedDensity, c.cfg.idFn(i), c.cfg.idFn(j), err)
				}
			}
		}
		// Undirected loop slot for row i, tried after the cross pairs.
		if !c.directed && c.cfg.loops {
			if rng.Float64() < c.p {
				if err := g.AddEdge(c.cfg.idFn(i), c.cfg.idFn(i)); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w",
						methodFixedDensity, c.cfg.idFn(i), c.cfg.idFn(i), err)
				}
			}
		}
	}

	return g, nil
}
