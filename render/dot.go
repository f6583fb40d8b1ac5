// SPDX-License-Identifier: MIT

// Package render exports a graph and a shortest path as a Graphviz DOT document.
package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// ErrPathMismatch indicates a path step that no edge of the graph can explain.
var ErrPathMismatch = errors.New("render: path does not match graph")

// Colors used for highlighting.
const (
	colorPath    = "crimson"
	colorDefault = "gray40"
)

// DOT renders g as an undirected Graphviz graph. Vertices and edges on path
// are highlighted and path vertices are labeled with their cumulative
// distance. A nil or empty path renders the plain graph. A path that does not
// belong to g is an error.
//
// Between two consecutive path vertices only the first cheapest parallel edge
// is highlighted.
func DOT(g *core.Graph, path dijkstra.Path) (string, error) {
	if g == nil {
		return "", dijkstra.ErrNilGraph
	}

	onPath := make(map[string]int64, len(path))
	for _, hop := range path {
		onPath[hop.ID] = hop.Distance
	}
	hot, err := pathEdges(g, path)
	if err != nil {
		return "", err
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName("G"); err != nil {
		return "", err
	}
	if err := graph.SetDir(false); err != nil {
		return "", err
	}
	for field, value := range map[string]string{
		"rankdir": "LR",
		"nodesep": "0.5",
	} {
		if err := graph.AddAttr("G", field, value); err != nil {
			return "", fmt.Errorf("render: graph attribute %s: %w", field, err)
		}
	}

	for _, id := range g.Vertices() {
		attrs := map[string]string{
			"shape": "circle",
			"color": colorDefault,
			"label": strconv.Quote(id),
		}
		if d, ok := onPath[id]; ok {
			attrs["color"] = colorPath
			attrs["penwidth"] = "2"
			attrs["label"] = strconv.Quote(fmt.Sprintf("%s (%d)", id, d))
		}
		if err := graph.AddNode("G", strconv.Quote(id), attrs); err != nil {
			return "", fmt.Errorf("render: vertex %q: %w", id, err)
		}
	}

	for _, e := range g.Edges() {
		attrs := map[string]string{
			"label": strconv.Quote(strconv.FormatInt(e.Weight, 10)),
			"color": colorDefault,
		}
		if hot[e.ID] {
			attrs["color"] = colorPath
			attrs["penwidth"] = "2"
		}
		if err := graph.AddEdge(strconv.Quote(e.From), strconv.Quote(e.To), false, attrs); err != nil {
			return "", fmt.Errorf("render: edge %d: %w", e.ID, err)
		}
	}

	return graph.String(), nil
}

// pathEdges picks, for each consecutive hop pair, the cheapest connecting
// edge whose weight matches the distance step. A hop pair with no such edge
// means path does not belong to g.
func pathEdges(g *core.Graph, path dijkstra.Path) (map[int]bool, error) {
	hot := make(map[int]bool, len(path))
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		edges, err := g.Neighbors(from.ID)
		if err != nil {
			return nil, fmt.Errorf("render: path hop %d: %w", i-1, err)
		}
		found := false
		for _, e := range edges {
			other, err := g.Opposite(e, from.ID)
			if err != nil {
				return nil, fmt.Errorf("render: path hop %d: %w", i-1, err)
			}
			if other != to.ID || e.Weight != to.Distance-from.Distance {
				continue
			}
			hot[e.ID] = true
			found = true

			break
		}
		if !found {
			return nil, fmt.Errorf("%w: %s-%s (%d)", ErrPathMismatch, from.ID, to.ID, to.Distance-from.Distance)
		}
	}

	return hot, nil
}
