// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvrank/core"
)

// BenchmarkAddEdge measures performance of adding distinct directed edges.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i))
	}
}

// BenchmarkAddEdge_Duplicate measures the collapse path for parallel edges.
func BenchmarkAddEdge_Duplicate(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i%100))
	}
}

// BenchmarkAdjacencyList measures the snapshot used by the pagerank engine
// on a 1000-vertex ring with chords.
func BenchmarkAdjacencyList(b *testing.B) {
	const n = 1000
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+1)%n))
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", (i+7)%n))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AdjacencyList()
	}
}
