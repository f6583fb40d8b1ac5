// Package core provides the immutable Graph Model used by the shortest-path
// engine: a fixed arena of named vertices and a fixed list of undirected,
// non-negatively weighted edges.
//
// The Graph G = (V,E) is built exactly once:
//
//	g, err := core.NewGraph(
//	    []string{"a", "b", "c"},
//	    []core.EdgeSpec{{From: "a", To: "b", Weight: 5}, {From: "b", To: "c", Weight: 2}},
//	)
//
// Properties:
//
//   - Vertex handles are stable integers (input index), so per-run algorithm
//     state can live in flat slices parallel to the arena.
//   - Edge.ID is the input index; Neighbors() and Incident() list edges in
//     input order, which makes every traversal deterministic.
//   - Parallel edges are kept and reported independently; self-loops are
//     accepted and listed once.
//   - There are no mutators. A constructed Graph can be shared freely between
//     goroutines.
//
// Core Methods:
//
//	NewGraph(vertices []string, edges []EdgeSpec) (*Graph, error) // O(V+E)
//	Vertices() []string                                           // O(V), input order
//	Edges() []Edge                                                // O(E), input order
//	HasVertex(id string) bool                                     // O(1)
//	Handle(id string) (int, bool) / ID(h int) string              // O(1)
//	Neighbors(id string) ([]Edge, error)                          // O(deg)
//	Incident(h int) []int                                         // O(1), shared slice
//	Opposite(e Edge, id string) (string, error)                   // O(1)
//	OppositeHandle(edgeID, h int) (int, error)                    // O(1)
//
// Errors:
//
//	ErrEmptyVertexID      – zero-length vertex ID in the vertex list
//	ErrDuplicateVertex    – the same ID listed twice
//	ErrVertexNotFound     – edge endpoint or query ID not in the vertex list
//	ErrNegativeWeight     – edge weight < 0 (shortest paths would be unsound)
//	ErrGraphInconsistency – Opposite asked about a vertex the edge does not contain
//
// NewGraph reports every construction problem at once as a
// *multierror.Error (github.com/hashicorp/go-multierror); use errors.Is to test
// for a specific sentinel.
package core
