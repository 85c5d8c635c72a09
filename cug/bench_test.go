package cug_test

import (
	"fmt"
	"testing"

	"graphsig/core"
	"graphsig/cug"
	"graphsig/gstat"
	"graphsig/nullmodel"
)

// benchGraph builds a directed ring with chords: n nodes, 2n arcs.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	var pairs [][2]string
	for i := 0; i < n; i++ {
		pairs = append(pairs,
			[2]string{fmt.Sprint(i), fmt.Sprint((i + 1) % n)},
			[2]string{fmt.Sprint(i), fmt.Sprint((i + 7) % n)})
	}
	g, err := core.FromEdgeList(pairs, core.WithDirected(true))
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkEvaluate_MutualDyads measures a 100-draw CUG test on a
// 100-node, 200-arc network conditioned on edge count.
func BenchmarkEvaluate_MutualDyads(b *testing.B) {
	g := benchGraph(b, 100)
	c, err := nullmodel.MatchEdgeCount(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := cug.Evaluate(g, gstat.MutualDyads, c,
			cug.WithDraws(100), cug.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEvaluate_Serial is the same workload pinned to one goroutine,
// isolating the cost of the draws from scheduling overhead.
func BenchmarkEvaluate_Serial(b *testing.B) {
	g := benchGraph(b, 100)
	c, err := nullmodel.MatchEdgeCount(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := cug.Evaluate(g, gstat.MutualDyads, c,
			cug.WithDraws(100), cug.WithSeed(int64(i)),
			cug.WithParallelism(1)); err != nil {
			b.Fatal(err)
		}
	}
}
