// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	// VertexCount is |V|.
	VertexCount int

	// EdgeCount is the number of distinct directed edges.
	EdgeCount int

	// SelfLoopCount is the number of vertices with an edge to themselves.
	SelfLoopCount int

	// DanglingCount is the number of vertices without outgoing edges.
	DanglingCount int
}

// Looped reports whether self-loops are permitted (false after WithoutLoops()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats returns vertex, edge, self-loop and dangling counts from one
// consistent snapshot.
//
// Implementation:
//   - Stage 1: Acquire muVert then muEdgeAdj read locks.
//   - Stage 2: Scan each vertex's out-bucket once.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := GraphStats{VertexCount: len(g.vertices), EdgeCount: g.edgeCount}
	for id := range g.vertices {
		bucket := g.out[id]
		if len(bucket) == 0 {
			s.DanglingCount++
			continue
		}
		if _, loop := bucket[id]; loop {
			s.SelfLoopCount++
		}
	}

	return s
}
