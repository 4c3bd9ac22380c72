package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/builder"
)

// BenchmarkShortestPath_Chain measures a worst-case linear chain of N hops.
func BenchmarkShortestPath_Chain(b *testing.B) {
	const N = 10000
	s := mustBuild(b, nil, builder.Chain("c", N))
	src, dst := builder.PersonID("c", 0), builder.PersonID("c", N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(s, src, dst)
	}
}

// BenchmarkShortestPath_Grid runs corner to corner on square grids.
func BenchmarkShortestPath_Grid(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		s := mustBuild(b, nil, builder.Grid("g", n, n))
		src, dst := builder.PersonID("g", 0), builder.PersonID("g", n*n-1)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = bfs.ShortestPath(s, src, dst)
			}
		})
	}
}

// BenchmarkShortestPath_EarlyExit compares the two target checks on a
// random store with large casts.
func BenchmarkShortestPath_EarlyExit(b *testing.B) {
	s := mustBuild(b, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomCasts("r", 5000, 2000, 8))
	src, dst := builder.PersonID("r", 0), builder.PersonID("r", 4999)

	for _, early := range []bool{true, false} {
		b.Run(fmt.Sprintf("early=%v", early), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = bfs.ShortestPath(s, src, dst, bfs.WithEarlyExit(early))
			}
		})
	}
}
