// Package gstat: global transitivity (clustering coefficient).
package gstat

import "graphsig/core"

// GlobalTransitivity returns closed triples / all connected triples over
// the undirected skeleton of g (directed arcs are treated as symmetric
// ties, the convention the descriptive literature uses for the global
// coefficient). Self-loops are ignored. Returns ErrUndefined when the graph
// has no connected triple.
// Complexity: O(Σ d(v)²) — each neighbor pair of each center is checked once.
func GlobalTransitivity(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	nodes := g.Nodes()
	// Symmetrized neighbor sets, loops dropped.
	nbrs := make(map[string][]string, len(nodes))
	for _, v := range nodes {
		ids, err := g.NeighborIDs(v)
		if err != nil {
			return 0, err
		}
		clean := ids[:0]
		for _, u := range ids {
			if u != v {
				clean = append(clean, u)
			}
		}
		nbrs[v] = clean
	}

	adjacent := func(a, b string) bool {
		return g.HasEdge(a, b) || g.HasEdge(b, a)
	}

	var triples, closed int
	for _, v := range nodes {
		ns := nbrs[v]
		for i := 0; i < len(ns); i++ {
			for j := i + 1; j < len(ns); j++ {
				triples++
				if adjacent(ns[i], ns[j]) {
					closed++
				}
			}
		}
	}
	if triples == 0 {
		return 0, ErrUndefined
	}

	return float64(closed) / float64(triples), nil
}
