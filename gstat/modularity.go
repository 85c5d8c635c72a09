// Package gstat: partition-quality (modularity) statistic.
package gstat

import "graphsig/core"

// Modularity returns a Statistic computing Newman–Girvan Q for the given
// node→community partition:
//
//	undirected: Q = Σ_c [ e_c/m − (d_c/2m)² ]
//	directed:   Q = Σ_c [ e_c/m − (out_c/m)(in_c/m) ]
//
// where e_c counts intra-community edges, d_c/out_c/in_c sum community
// degrees, and m is the edge count. The partition is captured by value
// semantics at call time; it must cover every node (ErrPartitionIncomplete)
// and the graph must have at least one edge (ErrUndefined). Self-loops are
// ignored, matching the simple-graph census.
// Complexity: O(V + E).
func Modularity(partition map[string]int) Statistic {
	return func(g *core.Graph) (float64, error) {
		if g == nil {
			return 0, ErrGraphNil
		}
		m := g.EdgeCount()
		if m == 0 {
			return 0, ErrUndefined
		}
		for _, id := range g.Nodes() {
			if _, ok := partition[id]; !ok {
				return 0, ErrPartitionIncomplete
			}
		}

		intra := make(map[int]float64)  // e_c
		degOut := make(map[int]float64) // d_c or out_c
		degIn := make(map[int]float64)  // in_c (directed only)
		edges := 0.0
		for _, e := range g.Edges() {
			if e.From == e.To {
				continue
			}
			edges++
			cf, ct := partition[e.From], partition[e.To]
			if cf == ct {
				intra[cf]++
			}
			if g.Directed() {
				degOut[cf]++
				degIn[ct]++
			} else {
				degOut[cf]++
				degOut[ct]++
			}
		}
		if edges == 0 {
			return 0, ErrUndefined
		}

		var q float64
		if g.Directed() {
			for c := range union(intra, degOut, degIn) {
				q += intra[c]/edges - (degOut[c]/edges)*(degIn[c]/edges)
			}
			return q, nil
		}
		for c := range union(intra, degOut, nil) {
			half := degOut[c] / (2 * edges)
			q += intra[c]/edges - half*half
		}

		return q, nil
	}
}

// union collects every community index present in any of the maps.
func union(a, b, c map[int]float64) map[int]struct{} {
	out := make(map[int]struct{}, len(a)+len(b)+len(c))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	for k := range c {
		out[k] = struct{}{}
	}

	return out
}
