// Package core: structural extraction used by null-model conditioning.
//
// These read-only views pull out exactly the invariants a null model can
// condition on: edge count / density, the degree sequence, and the directed
// dyad census (mutual / asymmetric / null).
package core

// DegreeSequence returns the per-node degree in sorted-node-ID order, so the
// sequence is deterministic and index-aligned with Nodes().
// Directed graphs report total degree (in + out); self-loops count once.
// Complexity: O(V·log V + E).
func (g *Graph) DegreeSequence() []int {
	ids := g.Nodes()
	g.mu.RLock()
	defer g.mu.RUnlock()
	seq := make([]int, len(ids))
	for i, id := range ids {
		seq[i] = len(g.adj[id])
		if g.directed {
			seq[i] += len(g.rev[id])
		}
	}

	return seq
}

// InOutDegreeSequences returns the per-node (in, out) degrees in
// sorted-node-ID order. Returns ErrUndirectedCensus when the graph is
// undirected: in/out is a directed notion.
// Complexity: O(V·log V + E).
func (g *Graph) InOutDegreeSequences() (in, out []int, err error) {
	if !g.directed {
		return nil, nil, ErrUndirectedCensus
	}
	ids := g.Nodes()
	g.mu.RLock()
	defer g.mu.RUnlock()
	in = make([]int, len(ids))
	out = make([]int, len(ids))
	for i, id := range ids {
		out[i] = len(g.adj[id])
		in[i] = len(g.rev[id])
	}

	return in, out, nil
}

// DyadCensus partitions the n(n-1)/2 unordered node pairs of a directed
// graph into mutual (both arcs present), asymmetric (exactly one arc), and
// null (no arc). Self-loops are outside the census and ignored.
// Returns ErrUndirectedCensus on undirected graphs.
// Complexity: O(V + E).
func (g *Graph) DyadCensus() (mut, asym, null int, err error) {
	if !g.directed {
		return 0, 0, 0, ErrUndirectedCensus
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	// Count each non-loop arc once; a pair is mutual when the reverse arc
	// exists. Each mutual pair is seen from both arcs, so halve at the end.
	arcs, mutualSides := 0, 0
	for from, m := range g.adj {
		for to := range m {
			if from == to {
				continue // loops are not dyads
			}
			arcs++
			if _, back := g.adj[to][from]; back {
				mutualSides++
			}
		}
	}
	mut = mutualSides / 2
	asym = arcs - mutualSides
	n := len(g.nodes)
	null = n*(n-1)/2 - mut - asym

	return mut, asym, null, nil
}

// MutualDyads returns the count of mutual dyads (reciprocated pairs).
// Returns ErrUndirectedCensus on undirected graphs.
// Complexity: O(V + E).
func (g *Graph) MutualDyads() (int, error) {
	mut, _, _, err := g.DyadCensus()
	if err != nil {
		return 0, err
	}

	return mut, nil
}

// MaxEdges returns the number of admissible edges for the current mode:
// n(n-1) ordered pairs when directed, n(n-1)/2 unordered pairs otherwise,
// plus n loop slots when loops are enabled.
// Complexity: O(1).
func (g *Graph) MaxEdges() int {
	g.mu.RLock()
	n := len(g.nodes)
	g.mu.RUnlock()

	return maxEdgesFor(n, g.directed, g.allowLoops)
}

// Density returns EdgeCount / MaxEdges, or 0 for graphs with no admissible
// edge slot. Complexity: O(1).
func (g *Graph) Density() float64 {
	max := g.MaxEdges()
	if max == 0 {
		return 0
	}

	return float64(g.EdgeCount()) / float64(max)
}

// maxEdgesFor computes the admissible edge-slot count for n nodes.
func maxEdgesFor(n int, directed, loops bool) int {
	var max int
	if directed {
		max = n * (n - 1)
	} else {
		max = n * (n - 1) / 2
	}
	if loops {
		max += n
	}

	return max
}
