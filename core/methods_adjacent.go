// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, InNeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - NeighborIDs()/InNeighborIDs() return unique IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex out-neighbour slices sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// NeighborIDs returns the out-neighbours of id, sorted lexicographically ascending.
// A self-loop makes id its own neighbour.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	return g.sortedBucket(id, func() map[string]map[string]struct{} { return g.out })
}

// InNeighborIDs returns the vertices with an edge into id, sorted lexicographically ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	return g.sortedBucket(id, func() map[string]map[string]struct{} { return g.in })
}

// sortedBucket copies and sorts one adjacency bucket under a consistent snapshot.
func (g *Graph) sortedBucket(id string, side func() map[string]map[string]struct{}) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same lock order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := side()[id]
	ids := make([]string, 0, len(bucket))
	for v := range bucket {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping EVERY vertex ID to its sorted
// out-neighbours. Vertices without outgoing edges map to an empty, non-nil slice,
// so the key set equals the vertex set.
//
// Implementation:
//   - Stage 1: Acquire muVert and muEdgeAdj read locks for one consistent view.
//   - Stage 2: Copy and sort each out-bucket into a fresh slice.
//
// Behavior highlights:
//   - Returned slices are freshly allocated and safe to retain and mutate.
//   - Map key iteration order is not deterministic; sort the keys (or use
//     Vertices()) when a stable order is needed.
//
// Complexity:
//   - Time O(V + E + Σ sort(deg(v))), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		bucket := g.out[id]
		nbrs := make([]string, 0, len(bucket))
		for to := range bucket {
			nbrs = append(nbrs, to)
		}
		sort.Strings(nbrs)
		result[id] = nbrs
	}

	return result
}

// ensureAdjacency guarantees that out[id] and in[id] exist.
// Caller must hold muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.out[id] == nil {
		g.out[id] = make(map[string]struct{})
	}
	if g.in[id] == nil {
		g.in[id] = make(map[string]struct{})
	}
}
