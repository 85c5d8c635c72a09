// SPDX-License-Identifier: MIT
// Package: graphsig/nullmodel
//
// inout.go — FixedInOutDegrees(in, out) constraint family (directed).
//
// Canonical model:
//   - Directed simple graph whose per-node in- and out-degree sequences
//     equal the inputs EXACTLY: out-stubs are paired against a shuffled
//     in-stub list, with bounded reshuffles and an optional directed
//     double-edge-swap chain.
//
// Contract:
//   - len(in) == len(out) ≥ 1 (else ErrTooFewNodes / ErrConstraintInfeasible).
//   - 0 ≤ deg ≤ n-1 per node and Σin == Σout (else ErrConstraintInfeasible).
//   - Loops and duplicate arcs are never produced.
//   - The full digraph-realizability test (Fulkerson) is NOT run: sequences
//     that pass the checks above yet admit no simple digraph surface as
//     ErrRetryExhausted after the bounded budget, not as a silent hang.
//
// Complexity: O(Σout) per attempt, attempts ≤ cfg.maxRetries,
// plus O(cfg.edgeSwaps) swap attempts.
package nullmodel

import (
	"fmt"
	"math/rand"

	"graphsig/core"
)

const methodFixedInOutDegrees = "FixedInOutDegrees"

// InOutDegreesConstraint preserves exact directed degree sequences.
type InOutDegreesConstraint struct {
	in  []int
	out []int
	cfg genConfig
}

// FixedInOutDegrees returns a constraint whose samples realize the given
// in/out sequences exactly. Both sequences are copied.
func FixedInOutDegrees(in, out []int, opts ...Option) *InOutDegreesConstraint {
	i := make([]int, len(in))
	copy(i, in)
	o := make([]int, len(out))
	copy(o, out)

	return &InOutDegreesConstraint{in: i, out: o, cfg: newGenConfig(opts...)}
}

// Family reports FamilyInOutDegrees.
func (c *InOutDegreesConstraint) Family() Family { return FamilyInOutDegrees }

// Validate checks lengths, per-node bounds, and the stub-sum balance.
func (c *InOutDegreesConstraint) Validate() error {
	n := len(c.out)
	if n < minNodes {
		return fmt.Errorf("%s: empty sequence: %w", methodFixedInOutDegrees, ErrTooFewNodes)
	}
	if len(c.in) != n {
		return fmt.Errorf("%s: len(in)=%d != len(out)=%d: %w",
			methodFixedInOutDegrees, len(c.in), n, ErrConstraintInfeasible)
	}
	sumIn, sumOut := 0, 0
	for i := 0; i < n; i++ {
		if c.in[i] < 0 || c.in[i] > n-1 || c.out[i] < 0 || c.out[i] > n-1 {
			return fmt.Errorf("%s: degree[%d]=(%d,%d) not in [0,%d]: %w",
				methodFixedInOutDegrees, i, c.in[i], c.out[i], n-1, ErrConstraintInfeasible)
		}
		sumIn += c.in[i]
		sumOut += c.out[i]
	}
	if sumIn != sumOut {
		return fmt.Errorf("%s: stub imbalance Σin=%d Σout=%d: %w",
			methodFixedInOutDegrees, sumIn, sumOut, ErrConstraintInfeasible)
	}

	return nil
}

// Sample draws one simple digraph realizing both sequences exactly.
func (c *InOutDegreesConstraint) Sample(rng *rand.Rand) (*core.Graph, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodFixedInOutDegrees, ErrNeedRandSource)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	n := len(c.out)
	outStubs := expandStubs(c.out)
	inStubs := expandStubs(c.in)
	if len(outStubs) == 0 {
		return c.buildGraph(n, nil)
	}

	for attempt := 1; attempt <= c.cfg.maxRetries; attempt++ {
		rng.Shuffle(len(inStubs), func(i, j int) { inStubs[i], inStubs[j] = inStubs[j], inStubs[i] })

		pairs, seen, ok := matchStubs(outStubs, inStubs)
		if !ok {
			continue // collision: a loop or duplicate arc; reshuffle
		}
		applySwaps(pairs, seen, c.cfg.edgeSwaps, rng, true)

		return c.buildGraph(n, pairs)
	}

	return nil, fmt.Errorf("%s: no valid pairing after %d attempts: %w",
		methodFixedInOutDegrees, c.cfg.maxRetries, ErrRetryExhausted)
}

// buildGraph materializes arcs as a directed simple core.Graph.
func (c *InOutDegreesConstraint) buildGraph(n int, pairs []arc) (*core.Graph, error) {
	g := core.New(core.WithDirected(true))
	for i := 0; i < n; i++ {
		if err := g.AddNode(c.cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodFixedInOutDegrees, c.cfg.idFn(i), err)
		}
	}
	for _, p := range pairs {
		if err := g.AddEdge(c.cfg.idFn(p[0]), c.cfg.idFn(p[1])); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w",
				methodFixedInOutDegrees, c.cfg.idFn(p[0]), c.cfg.idFn(p[1]), err)
		}
	}

	return g, nil
}
