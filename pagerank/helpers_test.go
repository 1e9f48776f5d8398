// SPDX-License-Identifier: MIT
// Package pagerank_test contains shared fixtures for the PageRank tests.

package pagerank_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/core"
	"github.com/stretchr/testify/require"
)

// Vertex IDs of the three-page web graph.
const (
	pageA = "A"
	pageB = "B"
	pageC = "C"
)

// Fixed point of the three-page web graph at d=0.85, solved by hand:
// rB = rC = 0.475/(1 + 0.85 - 0.85/3), rA = 1 - 2·rB.
const (
	webRankA = 0.39361702127659576
	webRankB = 0.30319148936170215
)

const (
	sumTolerance   = 1e-9
	fixedPointSlop = 1e-5
	refAgreement   = 1e-3
)

// newWebGraph builds A→B, A→C, C→A; B is dangling.
func newWebGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(pageA, pageB))
	require.NoError(t, g.AddEdge(pageA, pageC))
	require.NoError(t, g.AddEdge(pageC, pageA))

	return g
}

// newRing builds v0→v1→…→v(n-1)→v0.
func newRing(t testing.TB, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(n))
	require.NoError(t, err)

	return g
}

// newRandomGraph samples a seeded directed Erdős–Rényi graph.
func newRandomGraph(t testing.TB, n int, p float64, seed int64, gopts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

// newIsolated builds n vertices without edges.
func newIsolated(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%d", i)))
	}

	return g
}

// sum adds up all ranks of a result map.
func sum(ranks map[string]float64) float64 {
	var s float64
	for _, r := range ranks {
		s += r
	}
	return s
}
