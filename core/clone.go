package core

// CloneEmpty returns a new Graph with identical flags and nodes but no
// edges. Node Attrs maps are shared, not deep-copied.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		kind:       g.kind,
		nodes:      make(map[string]*Node, len(g.nodes)),
		adj:        make(map[string]map[string]*Edge),
		rev:        make(map[string]map[string]*Edge),
	}
	for id, n := range g.nodes {
		clone.nodes[id] = &Node{ID: n.ID, Attrs: n.Attrs}
	}

	return clone
}

// Clone returns a deep copy of the Graph: flags, nodes, edges, adjacency.
// Mutating the clone never affects the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.mu.RLock()
	defer g.mu.RUnlock()

	for from, m := range g.adj {
		for to, e := range m {
			// Copy each stored edge once (skip undirected mirrors).
			if !g.directed && e.From == to && e.To == from && from != to {
				continue
			}
			ne := &Edge{From: e.From, To: e.To, Weight: e.Weight, Sign: e.Sign}
			clone.ensureAdjLocked(clone.adj, ne.From)
			clone.adj[ne.From][ne.To] = ne
			if clone.directed {
				clone.ensureAdjLocked(clone.rev, ne.To)
				clone.rev[ne.To][ne.From] = ne
			} else if ne.From != ne.To {
				clone.ensureAdjLocked(clone.adj, ne.To)
				clone.adj[ne.To][ne.From] = ne
			}
			clone.edgeCount++
		}
	}

	return clone
}
