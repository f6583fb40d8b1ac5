// SPDX-License-Identifier: MIT

// Command lvpath prints the minimum-weight path between two vertices of a
// weighted undirected graph.
//
//	lvpath                          # built-in graph, a → e
//	lvpath --graph roads.yaml --from home --to town
//	lvpath --dot | dot -Tsvg > path.svg
//	lvpath fixture > graph.yaml     # dump the built-in graph as a starting point
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
