// SPDX-License-Identifier: MIT
// Package core defines the central directed Graph type and its sentinel errors,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for the vertex
// catalog, muEdgeAdj for out/in adjacency), so graphs can be mutated across
// goroutines with minimal contention.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a graph built WithoutLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a directed connection From→To.
//
// Edges carry no weight and no identity beyond their endpoints: a Graph stores
// each ordered pair at most once.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithoutLoops rejects self-loops (edges from a vertex to itself) with ErrLoopNotAllowed.
// By default loops are permitted.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// WithCapacity pre-sizes the vertex catalog and adjacency maps for n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the core in-memory directed graph.
//
// Parallel edges collapse: adding an existing From→To pair is a no-op.
// muVert protects the vertex catalog; muEdgeAdj protects out, in and edgeCount.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards out, in, edgeCount

	// Configuration flags
	allowLoops bool // permit self-loops
	capacity   int  // sizing hint for maps

	// Storage
	vertices  map[string]struct{}            // vertex catalog
	out       map[string]map[string]struct{} // out[from][to]
	in        map[string]map[string]struct{} // in[to][from]
	edgeCount int                            // number of distinct ordered pairs
}

// NewGraph creates an empty directed Graph with the given options.
// By default self-loops are permitted.
// Complexity: O(capacity)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{allowLoops: true}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]struct{}, g.capacity)
	g.out = make(map[string]map[string]struct{}, g.capacity)
	g.in = make(map[string]map[string]struct{}, g.capacity)

	return g
}
