// SPDX-License-Identifier: MIT
//
// Package cug: tunable options for Evaluate.
package cug

import (
	"context"
	"fmt"
	"runtime"
)

// defaultDraws is the number of null-model draws when WithDraws is absent.
// One thousand draws resolves p-values down to the 0.001 bound, the usual
// reporting precision for network CUG tests.
const defaultDraws = 1000

// Option configures evaluation via functional arguments. An invalid Option
// (non-positive draw count, non-positive parallelism) is recorded
// internally and surfaced as ErrOptionViolation when Evaluate is invoked.
type Option func(*EvalOptions)

// EvalOptions holds parameters customizing one Evaluate call.
type EvalOptions struct {
	// Ctx allows cancellation and deadlines across the draw loop.
	Ctx context.Context

	// Draws is the number of null-model samples N.
	Draws int

	// Seed is the master seed; per-draw seeds derive from (Seed, index),
	// so results are reproducible at any parallelism level.
	Seed int64

	// Tail selects the one-sided test direction (Right by default).
	Tail Tail

	// Parallelism bounds the number of concurrent draws.
	Parallelism int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns EvalOptions with sane defaults:
//   - context.Background()
//   - Draws == 1000, Seed == 0, Tail == Right
//   - Parallelism == runtime.GOMAXPROCS(0)
//   - error channel clear.
func DefaultOptions() EvalOptions {
	return EvalOptions{
		Ctx:         context.Background(),
		Draws:       defaultDraws,
		Seed:        0,
		Tail:        Right,
		Parallelism: runtime.GOMAXPROCS(0),
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *EvalOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDraws sets the number of null-model draws.
//
//	n > 0:  draw n samples
//	n <= 0: invalid option → ErrOptionViolation
func WithDraws(n int) Option {
	return func(o *EvalOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Draws must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Draws = n
	}
}

// WithSeed fixes the master seed for reproducible evaluations.
func WithSeed(seed int64) Option {
	return func(o *EvalOptions) { o.Seed = seed }
}

// WithTail selects the one-sided test direction.
func WithTail(t Tail) Option {
	return func(o *EvalOptions) {
		if t != Left && t != Right {
			o.err = fmt.Errorf("%w: unknown tail %d", ErrOptionViolation, t)
			return
		}
		o.Tail = t
	}
}

// WithParallelism bounds the number of concurrent draws; 1 forces serial
// execution.
//
//	p > 0:  at most p draws in flight
//	p <= 0: invalid option → ErrOptionViolation
func WithParallelism(p int) Option {
	return func(o *EvalOptions) {
		if p <= 0 {
			o.err = fmt.Errorf("%w: Parallelism must be positive (%d)", ErrOptionViolation, p)
			return
		}
		o.Parallelism = p
	}
}
