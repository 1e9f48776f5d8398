// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvrank/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep concurrency tests free of *testing.T usage inside goroutines.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvrank/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
	VertexY = "Y"

	VertexBase = "Base"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
)

// newWebGraph builds the three-page web graph A→B, A→C, C→A (B dangling).
func newWebGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.AddEdge(VertexA, VertexC))
	require.NoError(t, g.AddEdge(VertexC, VertexA))

	return g
}
