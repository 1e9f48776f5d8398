// SPDX-License-Identifier: MIT
// Package pagerank_test provides benchmarks for Compute.

package pagerank_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvrank/pagerank"
)

func BenchmarkCompute(b *testing.B) {
	for _, n := range []int{1000, 4000} {
		g := newRandomGraph(b, n, 8/float64(n), 1)
		for _, w := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, w), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := pagerank.Compute(g, pagerank.WithWorkers(w)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkNewTransition(b *testing.B) {
	g := newRandomGraph(b, 2000, 0.004, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pagerank.NewTransition(g); err != nil {
			b.Fatal(err)
		}
	}
}
