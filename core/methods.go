// Package core: Graph method implementations.
//
// All operations are thread-safe under a single RWMutex. Adjacency is stored
// as nested maps (adj[from][to] = *Edge) so edge existence, insertion, and
// deletion are O(1); undirected edges are mirrored in both directions, and
// directed graphs additionally maintain a reverse index for in-neighbor
// queries.
package core

import "sort"

// AddNode inserts a new node with the given ID.
// Returns ErrEmptyNodeID if id is empty. Idempotent for existing nodes.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil // no-op for existing node
	}
	g.nodes[id] = &Node{ID: id, Attrs: make(map[string]interface{})}

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// RemoveNode deletes the node and every incident edge.
// Returns ErrEmptyNodeID or ErrNodeNotFound on invalid input.
// Complexity: O(deg(v)).
func (g *Graph) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}
	// Outgoing (or undirected-incident) edges.
	for to := range g.adj[id] {
		g.dropEdgeLocked(id, to)
	}
	// Incoming edges on directed graphs.
	for from := range g.rev[id] {
		g.dropEdgeLocked(from, id)
	}
	delete(g.adj, id)
	delete(g.rev, id)
	delete(g.nodes, id)

	return nil
}

// AddEdge creates the edge from→to (from—to when undirected), applying any
// edge options. Both endpoints are added if absent.
//
// Returns ErrEmptyNodeID, ErrLoopNotAllowed, ErrDuplicateEdge, ErrBadSign,
// or ErrBadWeight. Complexity: O(1).
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// Undirected edges are stored with canonical endpoint order so that
	// Edges() and equality checks are deterministic.
	u, v := from, to
	if !g.directed && u > v {
		u, v = v, u
	}

	e := &Edge{From: u, To: v, Sign: +1}
	for _, opt := range opts {
		opt(e)
	}
	if e.Sign != +1 && e.Sign != -1 {
		return ErrBadSign
	}
	if e.Sign == -1 && g.kind != Signed {
		return ErrBadSign
	}
	if e.Weight != 0 && !g.weighted {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.adj[u][v]; dup {
		return ErrDuplicateEdge
	}

	g.ensureNodeLocked(u)
	g.ensureNodeLocked(v)

	g.ensureAdjLocked(g.adj, u)
	g.adj[u][v] = e
	if g.directed {
		g.ensureAdjLocked(g.rev, v)
		g.rev[v][u] = e
	} else if u != v {
		// Mirror for O(1) lookup from either endpoint; loops skip the mirror.
		g.ensureAdjLocked(g.adj, v)
		g.adj[v][u] = e
	}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge from→to (either endpoint order on undirected
// graphs). Returns ErrEdgeNotFound if absent. Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	u, v := from, to
	if !g.directed && u > v {
		u, v = v, u
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	g.dropEdgeLocked(u, v)

	return nil
}

// HasEdge reports whether the edge from→to exists (either endpoint order on
// undirected graphs). Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	u, v := from, to
	if !g.directed && u > v {
		u, v = v, u
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]

	return ok
}

// EdgeBetween returns a copy of the edge from→to.
// Returns ErrEdgeNotFound if absent. Complexity: O(1).
func (g *Graph) EdgeBetween(from, to string) (Edge, error) {
	if from == "" || to == "" {
		return Edge{}, ErrEmptyNodeID
	}
	u, v := from, to
	if !g.directed && u > v {
		u, v = v, u
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.adj[u][v]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Nodes returns all node IDs in sorted order.
// Complexity: O(V·log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges sorted by (From, To).
// Each undirected edge appears exactly once (canonical order).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for from, m := range g.adj {
		for to, e := range m {
			// Skip the undirected mirror entry.
			if !g.directed && e.From == to && e.To == from && from != to {
				continue
			}
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// NeighborIDs returns the sorted IDs adjacent to id: out-neighbors plus
// in-neighbors on directed graphs, incident neighbors when undirected.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	seen := make(map[string]struct{}, len(g.adj[id])+len(g.rev[id]))
	for to := range g.adj[id] {
		seen[to] = struct{}{}
	}
	for from := range g.rev[id] {
		seen[from] = struct{}{}
	}

	return sortedKeysLocked(seen), nil
}

// OutNeighborIDs returns the sorted IDs reachable by one edge from id.
// On undirected graphs this equals NeighborIDs. Complexity: O(d·log d).
func (g *Graph) OutNeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	seen := make(map[string]struct{}, len(g.adj[id]))
	for to := range g.adj[id] {
		seen[to] = struct{}{}
	}

	return sortedKeysLocked(seen), nil
}

// InNeighborIDs returns the sorted IDs with an edge into id.
// On undirected graphs this equals NeighborIDs. Complexity: O(d·log d).
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	if !g.directed {
		seen := make(map[string]struct{}, len(g.adj[id]))
		for to := range g.adj[id] {
			seen[to] = struct{}{}
		}
		return sortedKeysLocked(seen), nil
	}
	seen := make(map[string]struct{}, len(g.rev[id]))
	for from := range g.rev[id] {
		seen[from] = struct{}{}
	}

	return sortedKeysLocked(seen), nil
}

// Degree returns the number of edges incident to id. Directed graphs report
// in-degree + out-degree; a self-loop counts once (policy: loops are a
// single incidence here, matching the simple-graph census below).
// Complexity: O(deg(v)).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}
	d := len(g.adj[id])
	if g.directed {
		d += len(g.rev[id])
	}

	return d, nil
}

// OutDegree returns the number of edges leaving id (incident edges when
// undirected). Complexity: O(1).
func (g *Graph) OutDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(g.adj[id]), nil
}

// InDegree returns the number of edges entering id (incident edges when
// undirected). Complexity: O(1).
func (g *Graph) InDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}
	if !g.directed {
		return len(g.adj[id]), nil
	}

	return len(g.rev[id]), nil
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Directed reports whether edges are ordered pairs.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Weighted reports whether edge weights are meaningful.
func (g *Graph) Weighted() bool { return g.weighted }

// Kind returns the structural tag fixed at construction.
func (g *Graph) Kind() Kind { return g.kind }

// Internal helpers (callers hold g.mu):
////////////////////

// ensureNodeLocked inserts id if absent.
func (g *Graph) ensureNodeLocked(id string) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = &Node{ID: id, Attrs: make(map[string]interface{})}
	}
}

// ensureAdjLocked makes m[id] non-nil.
func (g *Graph) ensureAdjLocked(m map[string]map[string]*Edge, id string) {
	if m[id] == nil {
		m[id] = make(map[string]*Edge)
	}
}

// dropEdgeLocked removes the canonical edge u→v and its mirrors.
func (g *Graph) dropEdgeLocked(u, v string) {
	if _, ok := g.adj[u][v]; !ok {
		return
	}
	delete(g.adj[u], v)
	if len(g.adj[u]) == 0 {
		delete(g.adj, u)
	}
	if g.directed {
		delete(g.rev[v], u)
		if len(g.rev[v]) == 0 {
			delete(g.rev, v)
		}
	} else if u != v {
		delete(g.adj[v], u)
		if len(g.adj[v]) == 0 {
			delete(g.adj, v)
		}
	}
	g.edgeCount--
}

// sortedKeysLocked renders a set as a sorted slice.
func sortedKeysLocked(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
