// SPDX-License-Identifier: MIT
// Package: graphsig/nullmodel
//
// edgecount.go — FixedEdgeCount(n, m, directed) constraint family.
//
// Canonical model (the CUG "conditioned on size" family):
//   - Uniform over all simple graphs with n nodes and exactly m edges.
//   - Sampling: draw m distinct slot indices from [0, P) where P is the
//     admissible pair count, then unrank each index to its node pair.
//     Undirected unranking delegates to combin.IndexToCombination; directed
//     slots decode arithmetically.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); 0 ≤ m ≤ P (else ErrConstraintInfeasible).
//   - Every sample has EXACTLY m edges; this is the family invariant.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - O(n) nodes + expected O(m) index draws (coupon-collector inflation
//     only as m approaches P); O(m) space for the chosen-slot set.
//
// Determinism:
//   - Index draws consume rng in a fixed order; equal RNG state ⇒ equal graph.
package nullmodel

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat/combin"

	"graphsig/core"
)

const methodFixedEdgeCount = "FixedEdgeCount"

// EdgeCountConstraint preserves the exact edge count m.
type EdgeCountConstraint struct {
	n        int
	m        int
	directed bool
	cfg      genConfig
}

// FixedEdgeCount returns a constraint whose samples are uniform over all
// simple graphs with n nodes and exactly m edges.
func FixedEdgeCount(n, m int, directed bool, opts ...Option) *EdgeCountConstraint {
	return &EdgeCountConstraint{n: n, m: m, directed: directed, cfg: newGenConfig(opts...)}
}

// Family reports FamilyEdgeCount.
func (c *EdgeCountConstraint) Family() Family { return FamilyEdgeCount }

// Validate checks the parameter domain and exact feasibility.
func (c *EdgeCountConstraint) Validate() error {
	if c.n < minNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodFixedEdgeCount, c.n, minNodes, ErrTooFewNodes)
	}
	total := pairCount(c.n, c.directed, c.cfg.loops)
	if c.m < 0 || c.m > total {
		return fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodFixedEdgeCount, c.m, total, ErrConstraintInfeasible)
	}

	return nil
}

// Sample draws one graph with exactly m edges, uniform over all such graphs.
func (c *EdgeCountConstraint) Sample(rng *rand.Rand) (*core.Graph, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodFixedEdgeCount, ErrNeedRandSource)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	g := c.newGraph()
	for i := 0; i < c.n; i++ {
		if err := g.AddNode(c.cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodFixedEdgeCount, c.cfg.idFn(i), err)
		}
	}

	// Draw m distinct slot indices by rejection; the chosen set makes each
	// retry O(1) and the draw order depends only on the RNG stream.
	total := pairCount(c.n, c.directed, c.cfg.loops)
	chosen := make(map[int]struct{}, c.m)
	for len(chosen) < c.m {
		idx := rng.Intn(total)
		if _, dup := chosen[idx]; dup {
			continue
		}
		chosen[idx] = struct{}{}

		u, v := c.decodeSlot(idx)
		if err := g.AddEdge(c.cfg.idFn(u), c.cfg.idFn(v)); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w",
				methodFixedEdgeCount, c.cfg.idFn(u), c.cfg.idFn(v), err)
		}
	}

	return g, nil
}

// newGraph creates the empty target graph for this constraint's mode.
func (c *EdgeCountConstraint) newGraph() *core.Graph {
	gopts := []core.GraphOption{core.WithDirected(c.directed)}
	if c.cfg.loops {
		gopts = append(gopts, core.WithLoops())
	}

	return core.New(gopts...)
}

// decodeSlot unranks a slot index in [0, P) to its node-index pair.
// Undirected non-loop slots are lexicographic 2-combinations; loop slots
// (when enabled) occupy the tail of the index space.
func (c *EdgeCountConstraint) decodeSlot(idx int) (u, v int) {
	if c.directed {
		if c.cfg.loops {
			return idx / c.n, idx % c.n
		}
		u = idx / (c.n - 1)
		r := idx % (c.n - 1)
		if r >= u {
			r++ // skip the diagonal
		}
		return u, r
	}

	pairs := c.n * (c.n - 1) / 2
	if c.cfg.loops && idx >= pairs {
		l := idx - pairs
		return l, l
	}
	comb := combin.IndexToCombination(nil, idx, c.n, 2)

	return comb[0], comb[1]
}
