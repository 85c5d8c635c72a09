// Package gstat declares the Statistic contract and sentinel errors for
// graph-level statistic functions.
package gstat

import (
	"errors"

	"graphsig/core"
)

// Sentinel errors for statistic evaluation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("gstat: graph is nil")

	// ErrUndefined is returned when the statistic has no defined value on
	// this graph (no edges for reciprocity, no connected pair for the
	// excluded-pairs geodesic average, no triple for transitivity).
	ErrUndefined = errors.New("gstat: statistic undefined for this graph")

	// ErrNotDirected is returned when a directed-only statistic (mutual
	// dyads, reciprocity) is applied to an undirected graph.
	ErrNotDirected = errors.New("gstat: statistic requires a directed graph")

	// ErrNotSigned is returned when a sign-based statistic is applied to a
	// graph whose Kind is not Signed.
	ErrNotSigned = errors.New("gstat: statistic requires a signed graph")

	// ErrPartitionIncomplete is returned when a modularity partition does
	// not cover every node of the graph.
	ErrPartitionIncomplete = errors.New("gstat: partition does not cover all nodes")
)

// Statistic is a pure function from a Graph to a real number. It must not
// mutate the graph; every provided statistic only reads it, and the
// evaluator (package cug) relies on that to share one observed graph across
// parallel draws.
type Statistic func(g *core.Graph) (float64, error)

// GeodesicPolicy selects the sentinel handling for disconnected pairs in
// distance-based statistics. The two policies produce different, documented
// numbers on any graph with more than one component; neither is a silent
// default applied to the other's name.
type GeodesicPolicy uint8

const (
	// DisconnectedExclude drops unreachable pairs from the average.
	DisconnectedExclude GeodesicPolicy = iota
	// DisconnectedInf treats unreachable pairs as infinitely distant, so
	// the average itself becomes +Inf on a disconnected graph.
	DisconnectedInf
)
