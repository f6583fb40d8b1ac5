// SPDX-License-Identifier: MIT
// Package dijkstra implements the shortest-path relaxation engine.
//
// Each run owns flat state slices parallel to the graph's vertex arena
// (distance, reached, predecessor, finalized). One vertex is finalized per
// step, in non-decreasing distance order, until the target is finalized or no
// reached vertex is left.
//
// Complexity:
//
//   - StrategyScan: Time O(V² + E), Space O(V).
//   - StrategyHeap: Time O((V + E) log V), Space O(V + E) (lazy decrease-key).
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/core"
)

// Dijkstra runs the relaxation engine on g from Options.Source.
//
// When Options.Target is set, the run stops as soon as the target is
// finalized; if it never is, ErrTargetUnreachable is returned. Without a target
// every vertex reachable from the source is finalized.
//
// Preconditions and validation (in order, before any relaxation step):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source and Target must exist in g (ErrUnknownVertex).
//
// Negative weights cannot occur: core.NewGraph rejects them.
//
// On error no Result is returned, so partial run state is never observable.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	src, ok := g.Handle(cfg.Source)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownVertex, cfg.Source)
	}
	dst := -1
	if cfg.Target != "" {
		if dst, ok = g.Handle(cfg.Target); !ok {
			return nil, fmt.Errorf("%w: target %q", ErrUnknownVertex, cfg.Target)
		}
	}

	r := newRunner(g, cfg, src, dst)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// ShortestPath is the one-call form: it runs Dijkstra from source to target
// and reconstructs the path. Options may pick a strategy or thresholds;
// source and target always win over Source/Target options.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (Path, error) {
	if target == "" {
		return nil, fmt.Errorf("%w: target %q", ErrUnknownVertex, target)
	}

	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, Source(source), Target(target))

	res, err := Dijkstra(g, all...)
	if err != nil {
		return nil, err
	}

	return res.PathToTarget()
}

// runner holds the mutable state of a single run. Nothing outside the
// runner sees it until result() copies out the finalized part.
type runner struct {
	g       *core.Graph
	options Options
	src     int
	dst     int // -1 when no target was requested

	dist    []int64 // tentative or final distance, valid when reached
	reached []bool  // a tentative distance has been assigned
	pred    []int   // predecessor handle, -1 for none
	done    []bool  // finalized
	order   []int   // handles in finalization order

	pq nodePQ // used by StrategyHeap only
}

func newRunner(g *core.Graph, cfg Options, src, dst int) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		src:     src,
		dst:     dst,
		dist:    make([]int64, n),
		reached: make([]bool, n),
		pred:    make([]int, n),
		done:    make([]bool, n),
		order:   make([]int, 0, n),
	}
	for v := range r.pred {
		r.pred[v] = -1
	}

	// The source is the only vertex eligible on step one.
	r.dist[src] = 0
	r.reached[src] = true
	if cfg.Strategy == StrategyHeap {
		r.pq = make(nodePQ, 0, n)
		heap.Push(&r.pq, nodeItem{handle: src, dist: 0})
	}

	return r
}

// process is the relaxation loop: select, finalize, relax, repeat.
//
// At most one vertex is finalized per step, so the loop is capped at |V|
// iterations; it ends early on success (target finalized) or when stuck.
func (r *runner) process() error {
	for step := 0; step < len(r.dist); step++ {
		u, ok := r.next()
		if !ok {
			break
		}

		r.done[u] = true
		r.order = append(r.order, u)
		if u == r.dst {
			return nil
		}

		r.relax(u)
	}

	if r.dst >= 0 && !r.done[r.dst] {
		return fmt.Errorf("%w: %q from %q", ErrTargetUnreachable, r.options.Target, r.options.Source)
	}

	return nil
}

// next returns the vertex to finalize, or false when the run is stuck.
func (r *runner) next() (int, bool) {
	if r.options.Strategy == StrategyHeap {
		return r.pop()
	}

	return r.scan()
}

// scan selects the source first, then the reached, unfinalized vertex with
// the smallest tentative distance. Only a strictly smaller distance replaces
// the current best, so ties go to the lowest handle (insertion order).
func (r *runner) scan() (int, bool) {
	if !r.done[r.src] {
		return r.src, true
	}

	best := -1
	for v := range r.dist {
		if r.done[v] || !r.reached[v] {
			continue
		}
		if best < 0 || r.dist[v] < r.dist[best] {
			best = v
		}
	}

	return best, best >= 0
}

// pop returns the heap minimum, discarding stale entries. An entry is stale
// once its vertex is finalized or has since been given a smaller distance.
func (r *runner) pop() (int, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.done[item.handle] || item.dist != r.dist[item.handle] {
			continue
		}

		return item.handle, true
	}

	return -1, false
}

// relax examines every edge incident to the just-finalized vertex u and
// improves the tentative distance of each unfinalized neighbor. Equal
// candidates do not replace the current predecessor.
func (r *runner) relax(u int) {
	var (
		e    core.Edge
		v    int
		cand int64
		err  error
	)
	for _, ei := range r.g.Incident(u) {
		e = r.g.Edge(ei)

		// Impassable edge.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		if v, err = r.g.OppositeHandle(ei, u); err != nil {
			// Only a defective Graph Model gets here.
			panic(fmt.Errorf("dijkstra: relaxing %q: %w", r.g.ID(u), err))
		}
		if r.done[v] {
			continue
		}

		// Sum not representable in int64: treat as impassable.
		if e.Weight > math.MaxInt64-r.dist[u] {
			continue
		}
		cand = r.dist[u] + e.Weight
		if cand > r.options.MaxDistance {
			continue
		}
		if r.reached[v] && cand >= r.dist[v] {
			continue
		}

		r.dist[v] = cand
		r.reached[v] = true
		r.pred[v] = u
		if r.options.Strategy == StrategyHeap {
			heap.Push(&r.pq, nodeItem{handle: v, dist: cand})
		}
	}
}

// result freezes the run state into a read-only Result.
func (r *runner) result() *Result {
	return &Result{
		g:      r.g,
		source: r.options.Source,
		target: r.options.Target,
		dist:   r.dist,
		pred:   r.pred,
		done:   r.done,
		order:  r.order,
	}
}
