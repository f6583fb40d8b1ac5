// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Result is the completed state of one run. Only finalized vertices are
// visible through it; tentative values left over from the run are never
// reported. A Result is immutable and safe for concurrent readers.
type Result struct {
	g      *core.Graph
	source string
	target string

	dist  []int64
	pred  []int
	done  []bool
	order []int
}

// Source returns the source vertex ID of the run.
func (r *Result) Source() string { return r.source }

// Target returns the target vertex ID of the run ("" when none was given).
func (r *Result) Target() string { return r.target }

// Finalized reports whether id received a final shortest distance.
func (r *Result) Finalized(id string) bool {
	h, ok := r.g.Handle(id)

	return ok && r.done[h]
}

// Distance returns the finalized shortest distance from the source to id.
// The boolean is false if id is unknown or was not finalized.
func (r *Result) Distance(id string) (int64, bool) {
	h, ok := r.g.Handle(id)
	if !ok || !r.done[h] {
		return 0, false
	}

	return r.dist[h], true
}

// Predecessor returns the vertex preceding id on its shortest path. The
// boolean is false for the source, and for unknown or unfinalized vertices.
func (r *Result) Predecessor(id string) (string, bool) {
	h, ok := r.g.Handle(id)
	if !ok || !r.done[h] || r.pred[h] < 0 {
		return "", false
	}

	return r.g.ID(r.pred[h]), true
}

// Distances returns the finalized distances keyed by vertex ID.
func (r *Result) Distances() map[string]int64 {
	out := make(map[string]int64, len(r.order))
	for _, h := range r.order {
		out[r.g.ID(h)] = r.dist[h]
	}

	return out
}

// Order returns the vertex IDs in the order they were finalized. Their
// distances are non-decreasing along this sequence.
func (r *Result) Order() []string {
	out := make([]string, len(r.order))
	for i, h := range r.order {
		out[i] = r.g.ID(h)
	}

	return out
}

// Path reconstructs the shortest path from the source to target by walking
// predecessor links backwards and reversing the collected hops. It performs no
// mutation and may be called any number of times.
//
// Errors:
//   - ErrUnknownVertex if target is not part of the graph.
//   - ErrTargetUnreachable if target was not finalized by the run.
//
// Complexity:
//   - Time O(L), Space O(L), where L is the number of hops.
func (r *Result) Path(target string) (Path, error) {
	h, ok := r.g.Handle(target)
	if !ok {
		return nil, fmt.Errorf("%w: target %q", ErrUnknownVertex, target)
	}
	if !r.done[h] {
		return nil, fmt.Errorf("%w: %q from %q", ErrTargetUnreachable, target, r.source)
	}

	var p Path
	for v := h; v >= 0; v = r.pred[v] {
		p = append(p, Hop{ID: r.g.ID(v), Distance: r.dist[v]})
		if len(p) > len(r.dist) {
			panic(fmt.Errorf("dijkstra: predecessor cycle through %q: %w", target, core.ErrGraphInconsistency))
		}
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}

	return p, nil
}

// PathToTarget reconstructs the path to the run's configured target.
func (r *Result) PathToTarget() (Path, error) {
	if r.target == "" {
		return nil, fmt.Errorf("%w: no target configured", ErrUnknownVertex)
	}

	return r.Path(r.target)
}
