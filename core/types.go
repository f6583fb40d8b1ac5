// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph Model types (Edge, EdgeSpec, Graph) and sentinel errors.
// Policy:
//   - A Graph is built once by NewGraph and never mutated afterwards.
//   - Vertices live in an arena: a vertex handle is its index in the input list.
//   - Edge.ID is the edge's index in the input list.

package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that the vertex list names the same ID twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrGraphInconsistency indicates that an edge was asked for the opposite
	// endpoint of a vertex it does not contain. Valid input never produces it.
	ErrGraphInconsistency = errors.New("core: edge does not contain vertex")
)

// EdgeSpec is the construction-time description of an undirected edge.
type EdgeSpec struct {
	From   string
	To     string
	Weight int64
}

// Edge is an immutable undirected connection between two vertices.
//
// From and To name the endpoints in the order they were supplied; the edge
// itself has no direction.
type Edge struct {
	// ID is the index of this edge in the list passed to NewGraph.
	ID int

	From string
	To   string

	// Weight is the non-negative traversal cost.
	Weight int64
}

// Contains reports whether id is one of the edge's endpoints.
func (e Edge) Contains(id string) bool { return e.From == id || e.To == id }

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Graph is the immutable Graph Model consumed by the relaxation engine.
//
// ids is the vertex arena; index maps an ID back to its handle. For every
// edge i, ends[i] holds the handles of its endpoints and incident[h] lists,
// in input order, the indices of all edges touching handle h (a self-loop is
// listed once).
type Graph struct {
	ids      []string
	index    map[string]int
	edges    []Edge
	ends     [][2]int
	incident [][]int
}
