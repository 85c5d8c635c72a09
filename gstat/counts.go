// Package gstat: count- and dyad-based statistics.
package gstat

import "graphsig/core"

// EdgeCount returns the number of edges as a float64.
// Complexity: O(1).
func EdgeCount(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	return float64(g.EdgeCount()), nil
}

// Density returns edges / admissible pairs.
// Complexity: O(1).
func Density(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	return g.Density(), nil
}

// MutualDyads returns the count of reciprocated pairs in a directed graph —
// the classic CUG statistic for testing whether reciprocation exceeds what
// the tie volume alone would produce.
// Complexity: O(V + E).
func MutualDyads(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	mut, err := g.MutualDyads()
	if err != nil {
		return 0, ErrNotDirected
	}

	return float64(mut), nil
}

// Reciprocity returns the proportion of arcs that are reciprocated
// (2·mutual / arcs). Returns ErrUndefined on an arcless graph.
// Complexity: O(V + E).
func Reciprocity(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.Directed() {
		return 0, ErrNotDirected
	}
	m := g.EdgeCount()
	if m == 0 {
		return 0, ErrUndefined
	}
	mut, err := g.MutualDyads()
	if err != nil {
		return 0, err
	}

	return float64(2*mut) / float64(m), nil
}

// PositiveShare returns the fraction of positive ties on a Signed graph.
// Returns ErrNotSigned for other kinds and ErrUndefined with no edges.
// Complexity: O(E).
func PositiveShare(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.Kind() != core.Signed {
		return 0, ErrNotSigned
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return 0, ErrUndefined
	}
	pos := 0
	for _, e := range edges {
		if e.Sign > 0 {
			pos++
		}
	}

	return float64(pos) / float64(len(edges)), nil
}
