// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/smallworld/core"
)

// BenchmarkAddEdge measures edge insertion into a growing star.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(0, i+1, 0)
	}
}

// BenchmarkDeleteEdge measures paired delete/re-add on a fixed edge set.
func BenchmarkDeleteEdge(b *testing.B) {
	g := core.NewGraph()
	for i := 1; i <= 1000; i++ {
		_ = g.AddEdge(0, i, 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		target := i%1000 + 1
		g.DeleteEdge(0, target)
		_ = g.AddEdge(0, target, 0)
	}
}

// BenchmarkNeighborIDs measures sorted neighbor enumeration on a
// 1000-leaf star.
func BenchmarkNeighborIDs(b *testing.B) {
	g := core.NewGraph()
	for i := 1; i <= 1000; i++ {
		_ = g.AddEdge(0, i, 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.NeighborIDs(0)
	}
}
