package nullmodel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"graphsig/nullmodel"
)

func TestFixedDensity_Extremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	empty, err := nullmodel.FixedDensity(8, 0.0, false).Sample(rng)
	require.NoError(t, err)
	require.Equal(t, 0, empty.EdgeCount())

	full, err := nullmodel.FixedDensity(8, 1.0, false).Sample(rng)
	require.NoError(t, err)
	require.Equal(t, 28, full.EdgeCount()) // C(8,2)

	fullDir, err := nullmodel.FixedDensity(5, 1.0, true).Sample(rng)
	require.NoError(t, err)
	require.Equal(t, 20, fullDir.EdgeCount()) // 5*4
}

func TestFixedDensity_Validation(t *testing.T) {
	require.ErrorIs(t, nullmodel.FixedDensity(5, -0.1, false).Validate(),
		nullmodel.ErrInvalidProbability)
	require.ErrorIs(t, nullmodel.FixedDensity(5, 1.1, false).Validate(),
		nullmodel.ErrInvalidProbability)
	require.ErrorIs(t, nullmodel.FixedDensity(0, 0.5, false).Validate(),
		nullmodel.ErrTooFewNodes)
	_, err := nullmodel.FixedDensity(5, 0.5, false).Sample(nil)
	require.ErrorIs(t, err, nullmodel.ErrNeedRandSource)
}

func TestFixedDensity_ExpectationHolds(t *testing.T) {
	// Mean edge count over many draws should sit near p * C(n,2).
	const (
		n     = 20
		p     = 0.3
		draws = 400
	)
	c := nullmodel.FixedDensity(n, p, false)
	total := 0
	for seed := int64(1); seed <= draws; seed++ {
		g, err := c.Sample(rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		total += g.EdgeCount()
	}
	mean := float64(total) / draws
	want := p * float64(n*(n-1)/2) // 57
	require.InDelta(t, want, mean, 3.0)
}
