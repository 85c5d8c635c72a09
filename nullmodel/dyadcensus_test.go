package nullmodel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"graphsig/core"
	"graphsig/nullmodel"
)

func TestFixedDyadCensus_Exact(t *testing.T) {
	// n=5 → 10 dyads; census (2,3,5).
	c := nullmodel.FixedDyadCensus(5, 2, 3, 5)
	require.NoError(t, c.Validate())
	for seed := int64(1); seed <= 50; seed++ {
		g, err := c.Sample(rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		mut, asym, null, err := g.DyadCensus()
		require.NoError(t, err)
		require.Equal(t, 2, mut)
		require.Equal(t, 3, asym)
		require.Equal(t, 5, null)
		require.Equal(t, 2*2+3, g.EdgeCount()) // two arcs per mutual, one per asym
	}
}

func TestFixedDyadCensus_Infeasible(t *testing.T) {
	// 2+3+4 != C(5,2).
	require.ErrorIs(t, nullmodel.FixedDyadCensus(5, 2, 3, 4).Validate(),
		nullmodel.ErrConstraintInfeasible)
	require.ErrorIs(t, nullmodel.FixedDyadCensus(5, -1, 3, 8).Validate(),
		nullmodel.ErrConstraintInfeasible)
	require.ErrorIs(t, nullmodel.FixedDyadCensus(0, 0, 0, 0).Validate(),
		nullmodel.ErrTooFewNodes)
}

func TestFixedDyadCensus_AllMutual(t *testing.T) {
	// Every dyad mutual: the complete reciprocated digraph.
	g, err := nullmodel.FixedDyadCensus(4, 6, 0, 0).Sample(rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	require.Equal(t, 12, g.EdgeCount())
}

func TestMatchDyadCensus(t *testing.T) {
	obs := core.New(core.WithDirected(true))
	require.NoError(t, obs.AddEdge("A", "B"))
	require.NoError(t, obs.AddEdge("B", "A"))
	require.NoError(t, obs.AddEdge("A", "C"))

	c, err := nullmodel.MatchDyadCensus(obs)
	require.NoError(t, err)
	g, err := c.Sample(rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	wantMut, wantAsym, wantNull, err := obs.DyadCensus()
	require.NoError(t, err)
	gotMut, gotAsym, gotNull, err := g.DyadCensus()
	require.NoError(t, err)
	require.Equal(t, wantMut, gotMut)
	require.Equal(t, wantAsym, gotAsym)
	require.Equal(t, wantNull, gotNull)

	// Undirected observed graphs have no dyad census.
	_, err = nullmodel.MatchDyadCensus(core.New())
	require.ErrorIs(t, err, nullmodel.ErrUnsupportedGraphMode)
}
