// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) ascending.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import "sort"

// AddEdge inserts the directed edge from→to, creating missing endpoints.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Lock muVert then muEdgeAdj; register missing endpoints.
//  3. If the pair already exists return nil (parallel edges collapse).
//  4. Link out[from][to] and in[to][from]; bump edgeCount.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrLoopNotAllowed: if from == to on a graph built WithoutLoops().
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// Hold both locks so a concurrent RemoveVertex cannot interleave.
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	ensureAdjacency(g, from)
	ensureAdjacency(g, to)
	if _, dup := g.out[from][to]; dup {
		return nil
	}
	g.out[from][to] = struct{}{}
	g.in[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the directed edge from→to.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrEdgeNotFound: if the edge is absent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.out[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.out[from], to)
	delete(g.in[to], from)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.out[from][to]

	return ok
}

// Edges returns all edges sorted by From, then To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for from, nbrs := range g.out {
		for to := range nbrs {
			out = append(out, Edge{From: from, To: to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of distinct directed edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}
