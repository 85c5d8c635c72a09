// SPDX-License-Identifier: MIT
//
// Package: cug/evaluate.go
// Description: conditional uniform-graph significance evaluation — builds
// an empirical null distribution of a statistic by repeated constrained
// sampling and locates the observed value within it.
//
// Contract:
//   - The observed graph is only read, never mutated, and never counted
//     among the draws.
//   - Draw i uses an RNG seeded by a SplitMix64 mix of (master seed, i),
//     so sim[i] is the same number at any parallelism level.
//   - Any failing draw fails the whole evaluation with that error; there
//     are no silent drops that would bias the distribution.
//
// Determinism: identical (graph, statistic, constraint, Draws, Seed, Tail)
// give an identical Result.
package cug

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"graphsig/core"
	"graphsig/gstat"
	"graphsig/nullmodel"
)

// Evaluate draws opts.Draws graphs from the null model defined by c,
// applies stat to each, and assesses the significance of stat on g against
// that empirical distribution.
//
// The constraint is validated before any sampling, so an infeasible
// constraint surfaces as nullmodel.ErrConstraintInfeasible immediately
// rather than as a storm of failed draws. Statistic errors on a sampled
// graph (e.g. an undefined value) also abort the evaluation: a null model
// under which the statistic is sometimes undefined cannot produce an
// honest p-value for it.
//
// Complexity: O(Draws · (sample + statistic)) work, bounded by
// opts.Parallelism concurrent draws.
func Evaluate(g *core.Graph, stat gstat.Statistic, c nullmodel.Constraint, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if stat == nil {
		return nil, ErrNilStatistic
	}
	if c == nil {
		return nil, ErrNilConstraint
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	observed, err := stat(g)
	if err != nil {
		return nil, fmt.Errorf("cug: observed statistic: %w", err)
	}

	sims := make([]float64, o.Draws)
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Parallelism)
	for i := 0; i < o.Draws; i++ {
		i := i
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrDeadlineExceeded, ctx.Err())
			default:
			}
			rng := rand.New(rand.NewSource(drawSeed(o.Seed, i)))
			sample, err := c.Sample(rng)
			if err != nil {
				return fmt.Errorf("cug: draw %d: %w", i, err)
			}
			v, err := stat(sample)
			if err != nil {
				return fmt.Errorf("cug: draw %d statistic: %w", i, err)
			}
			sims[i] = v

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	r := Assess(observed, sims, o.Tail)
	r.Seed = o.Seed

	return r, nil
}
