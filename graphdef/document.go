// SPDX-License-Identifier: MIT

package graphdef

import "github.com/katalvlaran/lvpath/core"

// VertexList returns the declared vertices, or, when none are declared, the
// edge endpoints in order of first appearance.
func (d *Document) VertexList() []string {
	if len(d.Vertices) > 0 {
		out := make([]string, len(d.Vertices))
		copy(out, d.Vertices)

		return out
	}

	seen := make(map[string]bool)
	var out []string
	for _, e := range d.Edges {
		for _, id := range [2]string{e.From, e.To} {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}

	return out
}

// Graph builds the immutable core.Graph described by the document.
func (d *Document) Graph() (*core.Graph, error) {
	specs := make([]core.EdgeSpec, len(d.Edges))
	for i, e := range d.Edges {
		specs[i] = core.EdgeSpec{From: e.From, To: e.To, Weight: e.Weight}
	}

	return core.NewGraph(d.VertexList(), specs)
}

// Fixture returns the built-in six-vertex graph, routed from a to e.
func Fixture() *Document {
	return &Document{
		Vertices: []string{"a", "b", "c", "d", "e", "f"},
		Edges: []EdgeDef{
			{From: "a", To: "b", Weight: 5},
			{From: "a", To: "c", Weight: 4},
			{From: "a", To: "d", Weight: 2},
			{From: "b", To: "c", Weight: 2},
			{From: "b", To: "e", Weight: 6},
			{From: "c", To: "d", Weight: 3},
			{From: "c", To: "f", Weight: 2},
			{From: "d", To: "f", Weight: 6},
			{From: "e", To: "f", Weight: 4},
		},
		Source: "a",
		Target: "e",
	}
}
