// Package lvpath finds the minimum-weight path between two vertices of a
// small, static, undirected graph with non-negative edge weights.
//
// What is inside?
//
//   - core/     - the immutable Graph Model: vertex arena, weighted edges,
//     Neighbors and Opposite.
//   - dijkstra/ - the relaxation engine (Dijkstra), result inspection and
//     path reconstruction. Linear-scan and heap strategies finalize
//     vertices in the same deterministic order.
//   - graphdef/ - YAML/JSON graph definitions and the built-in fixture.
//   - render/   - Graphviz DOT export with the shortest path highlighted.
//   - cmd/lvpath - command-line front end.
//
// Quick example:
//
//	g, _ := core.NewGraph(
//	    []string{"a", "b", "c"},
//	    []core.EdgeSpec{{From: "a", To: "b", Weight: 5}, {From: "a", To: "c", Weight: 1}, {From: "c", To: "b", Weight: 2}},
//	)
//	p, _ := dijkstra.ShortestPath(g, "a", "b")
//	fmt.Println(p) // a(0) → c(1) → b(3)
//
//	go get github.com/katalvlaran/lvpath
package lvpath
