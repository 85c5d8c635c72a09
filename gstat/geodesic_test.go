package gstat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"graphsig/core"
)

func TestAvgGeodesic_Path(t *testing.T) {
	// A—B—C: ordered-pair distances 1,1,1,1,2,2 → mean 8/6 = 4/3.
	g, err := core.FromEdgeList([][2]string{{"A", "B"}, {"B", "C"}})
	require.NoError(t, err)

	avg, err := AvgGeodesic(DisconnectedExclude)(g)
	require.NoError(t, err)
	require.InDelta(t, 4.0/3.0, avg, 1e-12)

	// A connected graph gives the same number under both policies.
	avgInf, err := AvgGeodesic(DisconnectedInf)(g)
	require.NoError(t, err)
	require.Equal(t, avg, avgInf)
}

func TestAvgGeodesic_TwoComponents(t *testing.T) {
	// A—B and C—D: the only reachable pairs sit at distance 1.
	g, err := core.FromEdgeList([][2]string{{"A", "B"}, {"C", "D"}})
	require.NoError(t, err)

	avg, err := AvgGeodesic(DisconnectedExclude)(g)
	require.NoError(t, err)
	require.Equal(t, 1.0, avg)

	avgInf, err := AvgGeodesic(DisconnectedInf)(g)
	require.NoError(t, err)
	require.True(t, math.IsInf(avgInf, 1))
}

func TestAvgGeodesic_DirectedAsymmetry(t *testing.T) {
	// A→B→C: pairs (A,B)=1 (B,C)=1 (A,C)=2; the three reverse pairs are
	// unreachable.
	g, err := core.FromEdgeList([][2]string{
		{"A", "B"}, {"B", "C"},
	}, core.WithDirected(true))
	require.NoError(t, err)

	avg, err := AvgGeodesic(DisconnectedExclude)(g)
	require.NoError(t, err)
	require.InDelta(t, 4.0/3.0, avg, 1e-12)

	avgInf, err := AvgGeodesic(DisconnectedInf)(g)
	require.NoError(t, err)
	require.True(t, math.IsInf(avgInf, 1))
}

func TestAvgGeodesic_AllIsolatesUndefined(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))

	_, err := AvgGeodesic(DisconnectedExclude)(g)
	require.ErrorIs(t, err, ErrUndefined)
}

func TestAvgGeodesic_SingleNodeUndefined(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddNode("A"))

	_, err := AvgGeodesic(DisconnectedInf)(g)
	require.ErrorIs(t, err, ErrUndefined)
}
