package gstat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"graphsig/core"
)

// twoTriangles: triangle A-B-C, triangle D-E-F, bridge C—D. Q for the
// natural split is 2·(3/7 − (7/14)²) = 5/14.
func twoTriangles(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdgeList([][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "A"},
		{"D", "E"}, {"E", "F"}, {"F", "D"},
		{"C", "D"},
	})
	require.NoError(t, err)

	return g
}

func TestModularity_TwoTriangles(t *testing.T) {
	g := twoTriangles(t)
	part := map[string]int{
		"A": 0, "B": 0, "C": 0,
		"D": 1, "E": 1, "F": 1,
	}

	q, err := Modularity(part)(g)
	require.NoError(t, err)
	require.InDelta(t, 5.0/14.0, q, 1e-12)
}

func TestModularity_SingleCommunityIsZero(t *testing.T) {
	g := twoTriangles(t)
	part := map[string]int{
		"A": 0, "B": 0, "C": 0, "D": 0, "E": 0, "F": 0,
	}

	q, err := Modularity(part)(g)
	require.NoError(t, err)
	require.InDelta(t, 0.0, q, 1e-12)
}

func TestModularity_Directed(t *testing.T) {
	// Two mutual dyads, one cross arc: communities {A,B} and {C,D}.
	// m=5. intra: 2 and 2. out: (2,B 1)=3? spell it out:
	// arcs A→B,B→A,C→D,D→C,A→C.
	// community 0: intra 2, out 3, in 2. community 1: intra 2, out 2, in 3.
	// Q = (2/5 − (3/5)(2/5)) + (2/5 − (2/5)(3/5)) = 4/5 − 12/25 = 8/25.
	g, err := core.FromEdgeList([][2]string{
		{"A", "B"}, {"B", "A"}, {"C", "D"}, {"D", "C"}, {"A", "C"},
	}, core.WithDirected(true))
	require.NoError(t, err)
	part := map[string]int{"A": 0, "B": 0, "C": 1, "D": 1}

	q, err := Modularity(part)(g)
	require.NoError(t, err)
	require.InDelta(t, 8.0/25.0, q, 1e-12)
}

func TestModularity_IncompletePartition(t *testing.T) {
	g := twoTriangles(t)
	part := map[string]int{"A": 0, "B": 0, "C": 0} // D,E,F missing

	_, err := Modularity(part)(g)
	require.ErrorIs(t, err, ErrPartitionIncomplete)
}

func TestModularity_NoEdgesUndefined(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddNode("A"))

	_, err := Modularity(map[string]int{"A": 0})(g)
	require.ErrorIs(t, err, ErrUndefined)
}
