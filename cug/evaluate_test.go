package cug

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"graphsig/core"
	"graphsig/gstat"
	"graphsig/nullmodel"
)

// reciprocityFixture: a small directed graph with strong reciprocation.
// Arcs: three mutual dyads on six nodes plus two one-way arcs.
func reciprocityFixture(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdgeList([][2]string{
		{"A", "B"}, {"B", "A"},
		{"C", "D"}, {"D", "C"},
		{"E", "F"}, {"F", "E"},
		{"A", "C"}, {"B", "E"},
	}, core.WithDirected(true))
	require.NoError(t, err)

	return g
}

// colemanFixture mirrors the classic friendship-network shape: 73 actors,
// 230 arcs, 70 mutual dyads. Actor 0 reciprocates with actors 1..70; the
// remaining 90 arcs are one-way chains among actors 1..72.
func colemanFixture(t *testing.T) *core.Graph {
	t.Helper()
	var pairs [][2]string
	for i := 1; i <= 70; i++ {
		pairs = append(pairs,
			[2]string{"0", fmt.Sprint(i)},
			[2]string{fmt.Sprint(i), "0"})
	}
	for i := 1; i <= 71; i++ {
		pairs = append(pairs, [2]string{fmt.Sprint(i), fmt.Sprint(i + 1)})
	}
	for i := 1; i <= 19; i++ {
		pairs = append(pairs, [2]string{fmt.Sprint(i), fmt.Sprint(i + 2)})
	}
	g, err := core.FromEdgeList(pairs, core.WithDirected(true))
	require.NoError(t, err)
	require.Equal(t, 73, g.NodeCount())
	require.Equal(t, 230, g.EdgeCount())
	mut, err := g.MutualDyads()
	require.NoError(t, err)
	require.Equal(t, 70, mut)

	return g
}

func TestEvaluate_ArgumentValidation(t *testing.T) {
	g := reciprocityFixture(t)
	c, err := nullmodel.MatchEdgeCount(g)
	require.NoError(t, err)

	_, err = Evaluate(nil, gstat.MutualDyads, c)
	require.ErrorIs(t, err, ErrGraphNil)

	_, err = Evaluate(g, nil, c)
	require.ErrorIs(t, err, ErrNilStatistic)

	_, err = Evaluate(g, gstat.MutualDyads, nil)
	require.ErrorIs(t, err, ErrNilConstraint)

	_, err = Evaluate(g, gstat.MutualDyads, c, WithDraws(0))
	require.ErrorIs(t, err, ErrOptionViolation)

	_, err = Evaluate(g, gstat.MutualDyads, c, WithParallelism(-1))
	require.ErrorIs(t, err, ErrOptionViolation)
}

func TestEvaluate_InfeasibleConstraintSurfacesEarly(t *testing.T) {
	g := reciprocityFixture(t)
	bad := nullmodel.FixedEdgeCount(3, 99, true)

	_, err := Evaluate(g, gstat.MutualDyads, bad, WithDraws(10))
	require.ErrorIs(t, err, nullmodel.ErrConstraintInfeasible)
}

func TestEvaluate_StatisticErrorOnObserved(t *testing.T) {
	// Undirected graph, directed-only statistic.
	g, err := core.FromEdgeList([][2]string{{"A", "B"}})
	require.NoError(t, err)
	c, err := nullmodel.MatchEdgeCount(g)
	require.NoError(t, err)

	_, err = Evaluate(g, gstat.MutualDyads, c, WithDraws(10))
	require.ErrorIs(t, err, gstat.ErrNotDirected)
}

func TestEvaluate_DeterministicAcrossParallelism(t *testing.T) {
	g := reciprocityFixture(t)
	c, err := nullmodel.MatchEdgeCount(g)
	require.NoError(t, err)

	serial, err := Evaluate(g, gstat.MutualDyads, c,
		WithDraws(200), WithSeed(42), WithParallelism(1))
	require.NoError(t, err)

	parallel, err := Evaluate(g, gstat.MutualDyads, c,
		WithDraws(200), WithSeed(42), WithParallelism(4))
	require.NoError(t, err)

	require.Equal(t, serial.Simulated, parallel.Simulated)
	require.Equal(t, serial.Rank, parallel.Rank)
	require.Equal(t, serial.POneSided, parallel.POneSided)
	require.Equal(t, serial.Summary, parallel.Summary)
}

func TestEvaluate_ResultInvariants(t *testing.T) {
	g := reciprocityFixture(t)
	c, err := nullmodel.MatchEdgeCount(g)
	require.NoError(t, err)

	res, err := Evaluate(g, gstat.MutualDyads, c,
		WithDraws(100), WithSeed(7))
	require.NoError(t, err)

	require.Equal(t, 3.0, res.Observed)
	require.Len(t, res.Simulated, 100)
	require.Equal(t, 100, res.Draws)
	require.Equal(t, int64(7), res.Seed)
	require.Equal(t, Right, res.Tail)
	require.GreaterOrEqual(t, res.POneSided, 0.0)
	require.LessOrEqual(t, res.POneSided, 1.0)
	require.GreaterOrEqual(t, res.PTwoSided, 0.0)
	require.LessOrEqual(t, res.PTwoSided, 1.0)
	require.InDelta(t, float64(res.Rank)/100.0, res.POneSided, 1e-12)
}

func TestEvaluate_LeftTail(t *testing.T) {
	g := reciprocityFixture(t)
	c, err := nullmodel.MatchEdgeCount(g)
	require.NoError(t, err)

	right, err := Evaluate(g, gstat.MutualDyads, c,
		WithDraws(100), WithSeed(7), WithTail(Right))
	require.NoError(t, err)
	left, err := Evaluate(g, gstat.MutualDyads, c,
		WithDraws(100), WithSeed(7), WithTail(Left))
	require.NoError(t, err)

	// Same draws, complementary ranks up to ties.
	require.Equal(t, right.Simulated, left.Simulated)
	require.GreaterOrEqual(t, right.Rank+left.Rank, 100)
}

func TestEvaluate_ColemanReciprocity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 500-draw evaluation in short mode")
	}
	g := colemanFixture(t)
	c, err := nullmodel.MatchEdgeCount(g)
	require.NoError(t, err)

	res, err := Evaluate(g, gstat.MutualDyads, c,
		WithDraws(500), WithSeed(1))
	require.NoError(t, err)

	// 70 observed mutual dyads against an expectation near 5: no draw
	// comes close, so the empirical p-value is a bound.
	require.Equal(t, 0, res.Rank)
	require.Equal(t, "< 1/500", res.PString())
	require.Less(t, res.Summary.Max, 70.0)
	require.Greater(t, res.ZScore, 5.0)
}

func TestEvaluate_CancelledContext(t *testing.T) {
	g := reciprocityFixture(t)
	c, err := nullmodel.MatchEdgeCount(g)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Evaluate(g, gstat.MutualDyads, c,
		WithDraws(1000), WithContext(ctx))
	require.ErrorIs(t, err, ErrDeadlineExceeded)
}

func TestEvaluate_SeedChangesDistribution(t *testing.T) {
	g := reciprocityFixture(t)
	c, err := nullmodel.MatchEdgeCount(g)
	require.NoError(t, err)

	a, err := Evaluate(g, gstat.MutualDyads, c, WithDraws(200), WithSeed(1))
	require.NoError(t, err)
	b, err := Evaluate(g, gstat.MutualDyads, c, WithDraws(200), WithSeed(2))
	require.NoError(t, err)

	require.NotEqual(t, a.Simulated, b.Simulated)
}
