// SPDX-License-Identifier: MIT
// Package: graphsig/nullmodel
//
// degseq.go — FixedDegreeSequence(seq) constraint family (undirected).
//
// Canonical model:
//   - Undirected simple graph whose per-node degree sequence equals seq
//     EXACTLY, sampled by stub matching with bounded reshuffles, then an
//     optional double-edge-swap chain (WithEdgeSwaps) for extra mixing.
//
// Contract:
//   - len(seq) ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ seq[i] ≤ n-1, even degree sum, and Erdős–Gallai feasibility
//     (else ErrConstraintInfeasible, decided up front — never by retrying).
//   - Loops and multi-edges are never produced; WithLoops is ignored here.
//   - Termination is guaranteed: at most cfg.maxRetries reshuffles, then
//     ErrRetryExhausted with the partial state discarded.
//
// Complexity:
//   - Validate: O(n²) worst case for Erdős–Gallai (sequences here are small).
//   - Sample: O(Σd) per attempt; attempts bounded by cfg.maxRetries;
//     plus O(cfg.edgeSwaps) swap attempts.
//
// Determinism: fixed shuffle order per RNG state ⇒ identical realization.
package nullmodel

import (
	"fmt"
	"math/rand"
	"sort"

	"graphsig/core"
)

const methodFixedDegreeSequence = "FixedDegreeSequence"

// DegreeSequenceConstraint preserves an exact undirected degree sequence.
type DegreeSequenceConstraint struct {
	seq []int
	cfg genConfig
}

// FixedDegreeSequence returns a constraint whose samples realize seq exactly.
// The sequence is copied; later caller mutation cannot skew the constraint.
func FixedDegreeSequence(seq []int, opts ...Option) *DegreeSequenceConstraint {
	s := make([]int, len(seq))
	copy(s, seq)

	return &DegreeSequenceConstraint{seq: s, cfg: newGenConfig(opts...)}
}

// Family reports FamilyDegreeSequence.
func (c *DegreeSequenceConstraint) Family() Family { return FamilyDegreeSequence }

// Validate decides exact feasibility: degree bounds, parity, Erdős–Gallai.
func (c *DegreeSequenceConstraint) Validate() error {
	n := len(c.seq)
	if n < minNodes {
		return fmt.Errorf("%s: empty sequence: %w", methodFixedDegreeSequence, ErrTooFewNodes)
	}
	sum := 0
	for i, d := range c.seq {
		if d < 0 || d > n-1 {
			return fmt.Errorf("%s: degree[%d]=%d not in [0,%d]: %w",
				methodFixedDegreeSequence, i, d, n-1, ErrConstraintInfeasible)
		}
		sum += d
	}
	if sum%2 != 0 {
		return fmt.Errorf("%s: odd degree sum %d: %w", methodFixedDegreeSequence, sum, ErrConstraintInfeasible)
	}
	if !erdosGallai(c.seq) {
		return fmt.Errorf("%s: Erdős–Gallai violation: %w", methodFixedDegreeSequence, ErrConstraintInfeasible)
	}

	return nil
}

// Sample draws one simple graph realizing the sequence exactly.
func (c *DegreeSequenceConstraint) Sample(rng *rand.Rand) (*core.Graph, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodFixedDegreeSequence, ErrNeedRandSource)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	n := len(c.seq)
	stubs := expandStubs(c.seq)
	if len(stubs) == 0 {
		// All-isolates sequence: nothing to pair.
		return c.buildGraph(n, nil)
	}

	for attempt := 1; attempt <= c.cfg.maxRetries; attempt++ {
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		pairs, seen, ok := collectPairs(stubs, false)
		if !ok {
			continue // transient pairing collision; reshuffle within budget
		}
		applySwaps(pairs, seen, c.cfg.edgeSwaps, rng, false)

		return c.buildGraph(n, pairs)
	}

	return nil, fmt.Errorf("%s: no valid pairing after %d attempts: %w",
		methodFixedDegreeSequence, c.cfg.maxRetries, ErrRetryExhausted)
}

// buildGraph materializes a pairing as an undirected simple core.Graph.
func (c *DegreeSequenceConstraint) buildGraph(n int, pairs []arc) (*core.Graph, error) {
	g := core.New()
	for i := 0; i < n; i++ {
		if err := g.AddNode(c.cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodFixedDegreeSequence, c.cfg.idFn(i), err)
		}
	}
	for _, p := range pairs {
		if err := g.AddEdge(c.cfg.idFn(p[0]), c.cfg.idFn(p[1])); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w",
				methodFixedDegreeSequence, c.cfg.idFn(p[0]), c.cfg.idFn(p[1]), err)
		}
	}

	return g, nil
}

// expandStubs repeats each node index once per degree unit.
func expandStubs(seq []int) []int {
	total := 0
	for _, d := range seq {
		total += d
	}
	stubs := make([]int, 0, total)
	for i, d := range seq {
		for k := 0; k < d; k++ {
			stubs = append(stubs, i)
		}
	}

	return stubs
}

// erdosGallai reports whether a degree sequence is graphical:
// for every k, the k largest degrees must fit within k(k-1) internal slots
// plus what the remaining nodes can absorb (Σ min(d_i, k)).
// Complexity: O(n²) worst case; acceptable for the sequence sizes used here.
func erdosGallai(seq []int) bool {
	n := len(seq)
	d := make([]int, n)
	copy(d, seq)
	sort.Sort(sort.Reverse(sort.IntSlice(d)))

	prefix := 0
	for k := 1; k <= n; k++ {
		prefix += d[k-1]
		rhs := k * (k - 1)
		for i := k; i < n; i++ {
			if d[i] < k {
				rhs += d[i]
			} else {
				rhs += k
			}
		}
		if prefix > rhs {
			return false
		}
	}

	return true
}
