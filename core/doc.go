// Package core provides a thread-safe, in-memory directed Graph with a
// minimal, composable API surface. It is the input type of the pagerank
// engine and of the builder fixtures.
//
// The Graph G = (V,E) has these behaviors:
//
//   - Directed edges only; each ordered pair (from,to) is stored at most once,
//     so repeated AddEdge calls collapse into one edge.
//   - Self-loops are allowed unless the graph is built WithoutLoops().
//   - Vertices are created implicitly by AddEdge, or explicitly by AddVertex
//     (needed for isolated vertices).
//   - Out- and in-adjacency are both indexed, so OutDegree, InDegree,
//     NeighborIDs and InNeighborIDs are O(d) or O(d·log d).
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muEdgeAdj).
//
// Determinism:
//
//	Vertices(), Edges(), NeighborIDs(), InNeighborIDs() and the slices of
//	AdjacencyList() are sorted lexicographically by vertex ID. Algorithms that
//	need a stable node order derive it from these surfaces.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) error      // O(1), idempotent
//	HasEdge(from, to string) bool       // O(1)
//	RemoveEdge(from, to string) error   // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error)   // out-neighbours, sorted
//	InNeighborIDs(id string) ([]string, error) // in-neighbours, sorted
//	OutDegree(id string) (int, error)          // O(1)
//	InDegree(id string) (int, error)           // O(1)
//	AdjacencyList() map[string][]string        // consistent O(V+E) snapshot
//	Vertices() []string                        // O(V·log V)
//	Edges() []Edge                             // O(E·log E)
//	VertexCount(), EdgeCount() int             // O(1)
//	Stats() GraphStats                         // O(V)
//
//	// Cloning & maintenance
//	Clone() *Graph                             // O(V+E)
//	Clear()                                    // O(1)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
//	ErrLoopNotAllowed – self-loop on a graph built WithoutLoops()
package core
