// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph construction (NewGraph) and the read-only query surface.
// Determinism:
//   - Vertices() follows input order; vertex handles are input indices.
//   - Edges() and Neighbors() follow edge input order.
// Concurrency:
//   - No method mutates a constructed Graph; concurrent readers need no locks.

package core

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// NewGraph builds an immutable Graph from a vertex ID list and an edge list.
//
// Implementation:
//   - Stage 1: Register vertices in input order, rejecting empty and duplicate IDs.
//   - Stage 2: Resolve edge endpoints to handles, rejecting unknown endpoints
//     and negative weights.
//   - Stage 3: Build the per-vertex incidence lists in edge input order.
//
// Every problem found is collected; the returned error is a *multierror.Error
// whose entries wrap ErrEmptyVertexID, ErrDuplicateVertex, ErrVertexNotFound or
// ErrNegativeWeight, so errors.Is works against the combined value.
//
// Parallel edges and self-loops are accepted.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func NewGraph(vertices []string, edges []EdgeSpec) (*Graph, error) {
	var errs *multierror.Error

	g := &Graph{
		ids:   make([]string, 0, len(vertices)),
		index: make(map[string]int, len(vertices)),
	}

	// Stage 1: vertex arena.
	for i, id := range vertices {
		if id == "" {
			errs = multierror.Append(errs, fmt.Errorf("%w: vertices[%d]", ErrEmptyVertexID, i))
			continue
		}
		if _, dup := g.index[id]; dup {
			errs = multierror.Append(errs, fmt.Errorf("%w: %q", ErrDuplicateVertex, id))
			continue
		}
		g.index[id] = len(g.ids)
		g.ids = append(g.ids, id)
	}

	// Stage 2: edges.
	g.edges = make([]Edge, 0, len(edges))
	g.ends = make([][2]int, 0, len(edges))
	for i, spec := range edges {
		a, okA := g.index[spec.From]
		b, okB := g.index[spec.To]
		if !okA {
			errs = multierror.Append(errs, fmt.Errorf("%w: edges[%d] endpoint %q", ErrVertexNotFound, i, spec.From))
		}
		if !okB {
			errs = multierror.Append(errs, fmt.Errorf("%w: edges[%d] endpoint %q", ErrVertexNotFound, i, spec.To))
		}
		if spec.Weight < 0 {
			errs = multierror.Append(errs, fmt.Errorf("%w: edges[%d] %s-%s weight=%d",
				ErrNegativeWeight, i, spec.From, spec.To, spec.Weight))
		}
		if !okA || !okB || spec.Weight < 0 {
			continue
		}
		g.edges = append(g.edges, Edge{
			ID:     len(g.edges),
			From:   spec.From,
			To:     spec.To,
			Weight: spec.Weight,
		})
		g.ends = append(g.ends, [2]int{a, b})
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	// Stage 3: incidence lists.
	g.incident = make([][]int, len(g.ids))
	for ei, ends := range g.ends {
		g.incident[ends[0]] = append(g.incident[ends[0]], ei)
		if ends[1] != ends[0] {
			g.incident[ends[1]] = append(g.incident[ends[1]], ei)
		}
	}

	return g, nil
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.ids) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns a copy of the vertex IDs in input order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Edges returns a copy of the edges in input order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasVertex reports whether id is part of the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Handle returns the arena index of id.
func (g *Graph) Handle(id string) (int, bool) {
	h, ok := g.index[id]

	return h, ok
}

// ID returns the vertex ID stored at handle h. It panics if h is out of range.
func (g *Graph) ID(h int) string { return g.ids[h] }

// Edge returns the edge with the given ID. It panics if id is out of range.
func (g *Graph) Edge(id int) Edge { return g.edges[id] }

// Incident returns the IDs of the edges touching handle h, in input order.
//
// The slice is shared with the graph and must be treated as read-only. This is
// the allocation-free form of Neighbors used by the relaxation loop.
func (g *Graph) Incident(h int) []int { return g.incident[h] }

// Neighbors returns the edges incident to id (either endpoint equals id), in
// edge input order. A self-loop appears once.
//
// Errors:
//   - ErrVertexNotFound if id is not part of the graph.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	h, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]Edge, 0, len(g.incident[h]))
	for _, ei := range g.incident[h] {
		out = append(out, g.edges[ei])
	}

	return out, nil
}

// Opposite returns the endpoint of e that is not id. For a self-loop on id it
// returns id.
//
// Errors:
//   - ErrGraphInconsistency if e does not contain id.
func (g *Graph) Opposite(e Edge, id string) (string, error) {
	switch id {
	case e.From:
		return e.To, nil
	case e.To:
		return e.From, nil
	}

	return "", fmt.Errorf("%w: edge %d (%s-%s) asked for %q", ErrGraphInconsistency, e.ID, e.From, e.To, id)
}

// OppositeHandle is the handle-based form of Opposite: it returns the handle
// of the endpoint of edge ei that is not h.
//
// Errors:
//   - ErrGraphInconsistency if ei is out of range or does not touch h.
func (g *Graph) OppositeHandle(ei, h int) (int, error) {
	if ei < 0 || ei >= len(g.ends) {
		return -1, fmt.Errorf("%w: edge %d out of range", ErrGraphInconsistency, ei)
	}
	ends := g.ends[ei]
	switch h {
	case ends[0]:
		return ends[1], nil
	case ends[1]:
		return ends[0], nil
	}

	return -1, fmt.Errorf("%w: edge %d asked for handle %d", ErrGraphInconsistency, ei, h)
}
