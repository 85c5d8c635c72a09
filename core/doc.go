// Package core provides the in-memory Graph type shared by the null-model
// samplers (nullmodel), the statistic functions (gstat), and the significance
// evaluator (cug).
//
// The Graph G = (V,E) covers the shapes that show up in structural
// significance testing:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Optional self-loops (WithLoops)
//   - Optional edge weights (WithWeighted)
//   - A tagged Kind ∈ {Simple, Bipartite, Signed, TwoMode}, fixed at
//     construction (WithKind) and never inferred from attribute presence
//   - Signed ties (+1/−1) on Signed graphs via the WithSign edge option
//
// Why a dedicated core type?
//
//   - Deterministic iteration — Nodes() and Edges() return sorted results, so
//     every downstream computation is reproducible for a fixed seed.
//   - Structural extraction — DegreeSequence, InOutDegreeSequences,
//     DyadCensus and Density read out exactly the invariants a null model
//     conditions on, in one pass.
//   - Read-safety — a sync.RWMutex lets many goroutines read one observed
//     graph while parallel draws are evaluated; sampled graphs stay
//     goroutine-local and pay only uncontended lock costs.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string) error             // O(1)
//	HasNode(id string) bool              // O(1)
//	RemoveNode(id string) error          // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) error // O(1)
//	RemoveEdge(from, to string) error                  // O(1)
//	HasEdge(from, to string) bool                      // O(1)
//
//	// Query
//	Nodes() []string                     // O(V·log V), sorted
//	Edges() []Edge                       // O(E·log E), sorted by (From,To)
//	NeighborIDs(id string) ([]string, error)
//	OutNeighborIDs / InNeighborIDs       // directed views
//	NodeCount() / EdgeCount()            // O(1)
//	Degree / InDegree / OutDegree        // O(deg(v)) or O(1) map size
//
//	// Structural extraction
//	DegreeSequence() []int                         // sorted-node order
//	InOutDegreeSequences() (in, out []int, err)    // directed only
//	DyadCensus() (mut, asym, null int, err)        // directed only
//	MutualDyads() (int, error)
//	Density() float64 / MaxEdges() int
//
//	// Cloning
//	CloneEmpty() *Graph                  // flags + nodes, no edges
//	Clone() *Graph                       // deep copy
//
// The observed graph handed to an evaluation is only ever read; nothing in
// this module mutates a graph it did not construct.
package core
