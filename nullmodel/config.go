// SPDX-License-Identifier: MIT
// Package: graphsig/nullmodel
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - genConfig is the single source of truth for all sampler knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newGenConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   - idFn       = decimalID ("0","1","2",...)
//   - loops      = false     (null models are simple by default)
//   - maxRetries = 32        (bounded stub-matching reshuffles)
//   - edgeSwaps  = 0         (no MCMC mixing unless requested)
package nullmodel

import "strconv"

// genConfig aggregates the knobs shared by all constraint families.
// It is embedded by value into constraints (immutable after construction).
type genConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// Self-loop policy for families that admit loops.
	loops bool
	// Bounded retry budget for heuristic stub matching.
	maxRetries int
	// Number of double-edge-swap attempts after a successful pairing.
	edgeSwaps int
}

const (
	minNodes          = 1
	defaultMaxRetries = 32
	probMin           = 0.0
	probMax           = 1.0
)

// newGenConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		idFn:       decimalID,
		loops:      false,
		maxRetries: defaultMaxRetries,
		edgeSwaps:  0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// Option customizes a constraint family at construction time.
// Option constructors VALIDATE and PANIC on meaningless inputs; samplers
// themselves never panic.
type Option func(*genConfig)

// WithIDScheme sets the deterministic node ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("nullmodel: WithIDScheme(nil)")
	}
	return func(c *genConfig) { c.idFn = fn }
}

// WithLoops sets the self-loop policy for families that admit loops
// (FixedEdgeCount, FixedDensity). Degree- and census-preserving families
// are strictly simple and ignore this knob.
func WithLoops(allow bool) Option {
	return func(c *genConfig) { c.loops = allow }
}

// WithMaxRetries bounds the reshuffle attempts of heuristic pairing.
// Panics when n < 1: an unbounded or empty budget is a programmer error.
func WithMaxRetries(n int) Option {
	if n < 1 {
		panic("nullmodel: WithMaxRetries(n<1)")
	}
	return func(c *genConfig) { c.maxRetries = n }
}

// WithEdgeSwaps sets the number of double-edge-swap attempts run after a
// successful stub pairing, trading CPU for lower residual correlation.
// Panics when n < 0.
func WithEdgeSwaps(n int) Option {
	if n < 0 {
		panic("nullmodel: WithEdgeSwaps(n<0)")
	}
	return func(c *genConfig) { c.edgeSwaps = n }
}

// pairCount returns the number of admissible edge slots for n nodes.
func pairCount(n int, directed, loops bool) int {
	var p int
	if directed {
		p = n * (n - 1)
	} else {
		p = n * (n - 1) / 2
	}
	if loops {
		p += n
	}

	return p
}
