package nullmodel_test

import (
	"math/rand"
	"testing"

	"graphsig/nullmodel"
)

// BenchmarkFixedEdgeCount_Coleman samples at the Coleman-study scale:
// 73 nodes, 230 directed edges.
func BenchmarkFixedEdgeCount_Coleman(b *testing.B) {
	c := nullmodel.FixedEdgeCount(73, 230, true)
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Sample(rng); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFixedDegreeSequence_Swaps measures stub matching plus a swap
// chain on a moderately skewed sequence.
func BenchmarkFixedDegreeSequence_Swaps(b *testing.B) {
	seq := make([]int, 100)
	for i := range seq {
		seq[i] = 2 + i%4
	}
	if sum := sumInts(seq); sum%2 != 0 {
		seq[0]++
	}
	c := nullmodel.FixedDegreeSequence(seq, nullmodel.WithEdgeSwaps(1000))
	rng := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Sample(rng); err != nil {
			b.Fatal(err)
		}
	}
}

func sumInts(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}
