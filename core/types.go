// Package core declares Node, Edge, Graph, Kind, the option types, the
// sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrNodeNotFound     - requested node does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrLoopNotAllowed   - self-loop when loops are disabled.
//	ErrDuplicateEdge    - edge already present on a simple graph.
//	ErrBadSign          - sign other than +1/-1, or a sign on a non-Signed graph.
//	ErrBadWeight        - non-zero weight on an unweighted graph.
//	ErrUndirectedCensus - dyad census requested on an undirected graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was attempted; graphs here are simple.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrBadSign indicates an edge sign outside {+1,-1}, or a sign override
	// on a graph whose Kind is not Signed.
	ErrBadSign = errors.New("core: bad edge sign")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrUndirectedCensus indicates a dyad census was requested on an
	// undirected graph; mutual/asymmetric/null partitions are directed notions.
	ErrUndirectedCensus = errors.New("core: dyad census requires a directed graph")
)

// Kind tags the structural flavor of a Graph. The tag is fixed at
// construction and validated there; downstream packages switch on it
// explicitly rather than guessing from node or edge attributes.
type Kind uint8

const (
	// Simple is a plain one-mode graph (the default).
	Simple Kind = iota
	// Bipartite marks a one-mode graph whose nodes split into two classes.
	Bipartite
	// Signed marks a graph whose edges carry a +1/-1 sign.
	Signed
	// TwoMode marks an affiliation (actor × event) graph.
	TwoMode

	kindSentinel // number of kinds; keep last
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Bipartite:
		return "bipartite"
	case Signed:
		return "signed"
	case TwoMode:
		return "two-mode"
	default:
		return "unknown"
	}
}

// Node represents one actor in the graph.
//
// ID uniquely identifies the node within its Graph. Attrs stores arbitrary
// per-node data (class labels, partition IDs, ...) and is shared on clones.
type Node struct {
	// ID is the unique identifier for this node.
	ID string

	// Attrs stores arbitrary user data. It is not deep-copied by Clone.
	Attrs map[string]interface{}
}

// Edge represents one tie From→To (or From—To on undirected graphs, stored
// with From ≤ To). Sign is +1 on every graph whose Kind is not Signed.
type Edge struct {
	// From is the source node ID (the lexicographically smaller endpoint
	// when the graph is undirected).
	From string

	// To is the destination node ID.
	To string

	// Weight is the tie strength; zero on unweighted graphs.
	Weight float64

	// Sign is +1 or -1; only Signed graphs may carry -1.
	Sign int8
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are ordered pairs (true) or unordered (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithKind fixes the Kind tag. Panics on an unknown kind: option
// constructors validate and panic on programmer error, runtime code never does.
func WithKind(k Kind) GraphOption {
	if k >= kindSentinel {
		panic("core: WithKind(unknown kind)")
	}
	return func(g *Graph) { g.kind = k }
}

// EdgeOption configures a single edge during AddEdge.
type EdgeOption func(*Edge)

// WithSign sets the edge sign (+1 or -1). Validated by AddEdge: a value
// outside {+1,-1}, or any override on a non-Signed graph, yields ErrBadSign.
func WithSign(sign int8) EdgeOption {
	return func(e *Edge) { e.Sign = sign }
}

// WithWeight sets the edge weight. AddEdge rejects non-zero weights on
// unweighted graphs with ErrBadWeight.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// Graph is the in-memory simple graph.
//
// Adjacency is stored as adj[from][to] = *Edge; undirected edges are
// mirrored so lookups stay O(1) from either endpoint. rev holds the reverse
// adjacency for directed graphs (in-neighbor queries, dyad census).
// A single RWMutex guards all state: sampled graphs are goroutine-local,
// and the observed graph is only ever read concurrently.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags, fixed at construction.
	directed   bool
	weighted   bool
	allowLoops bool
	kind       Kind

	// Storage.
	nodes     map[string]*Node
	adj       map[string]map[string]*Edge // from → to → edge
	rev       map[string]map[string]*Edge // to → from → edge (directed only)
	edgeCount int
}

// New creates an empty Graph with the given options.
// Defaults: undirected, unweighted, no loops, Kind == Simple.
// Complexity: O(1).
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string]map[string]*Edge),
		rev:   make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromEdgeList builds a Graph from (from, to) pairs, adding endpoints as
// needed. Any AddEdge failure aborts with that error.
// Complexity: O(len(pairs)).
func FromEdgeList(pairs [][2]string, opts ...GraphOption) (*Graph, error) {
	g := New(opts...)
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
