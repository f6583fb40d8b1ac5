// Package dijkstra provides the shortest-path relaxation engine for
// core.Graph: Dijkstra's algorithm between a source and a target vertex on an
// undirected graph with non-negative edge weights.
//
// Overview:
//
//   - Each vertex gets a tentative distance and a predecessor. The source starts
//     at distance 0 and is finalized first.
//   - Each step finalizes the unfinalized vertex with the smallest tentative
//     distance, then relaxes every incident edge. A neighbor is updated only
//     when the candidate distance is strictly smaller, so the first-discovered
//     shortest path is kept.
//   - Ties between equally distant vertices go to the vertex listed first in
//     the graph's vertex list. This keeps output byte-identical across runs.
//   - The run ends when the target is finalized, or when no reached vertex is
//     left (ErrTargetUnreachable).
//
// Strategies:
//
//   - StrategyScan (default): linear scan per step. It is the reference for
//     tie-breaking.
//   - StrategyHeap: min-heap keyed by (distance, vertex handle) with lazy
//     decrease-key. Finalization order is identical to StrategyScan.
//
// Key features:
//
//   - Target: stop as soon as the target is finalized; omit it to finalize
//     every reachable vertex.
//   - MaxDistance: vertices farther than the cap are never finalized.
//   - InfEdgeThreshold: edges with weight ≥ threshold are impassable.
//   - Result.Path(id): predecessor walk, returned source → target with
//     cumulative distances. Path.String() renders "a(0) → c(4) → f(6) → e(10)".
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph: invalid call.
//   - ErrUnknownVertex: source or target not in the graph; checked before the
//     first relaxation step.
//   - ErrTargetUnreachable: no path exists. This is a normal outcome.
//   - core.ErrGraphInconsistency: an edge did not contain the vertex it was
//     reached from. This can only come from a defective graph and is raised as
//     a panic.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//	func ShortestPath(g *core.Graph, source, target string, opts ...Option) (Path, error)
//
// Thread safety:
//
//   - Every call owns its run state. core.Graph is immutable, so concurrent
//     calls on the same graph are safe.
package dijkstra
