// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"strings"
)

// Hop is one vertex on a path together with its cumulative distance.
type Hop struct {
	ID       string
	Distance int64
}

// Path is an ordered sequence of hops from source to target.
type Path []Hop

// String renders the path as "a(0) → c(4) → f(6) → e(10)".
func (p Path) String() string {
	var sb strings.Builder
	for i, hop := range p {
		if i > 0 {
			sb.WriteString(" → ")
		}
		fmt.Fprintf(&sb, "%s(%d)", hop.ID, hop.Distance)
	}

	return sb.String()
}

// IDs returns the vertex IDs along the path.
func (p Path) IDs() []string {
	out := make([]string, len(p))
	for i, hop := range p {
		out[i] = hop.ID
	}

	return out
}

// Cost returns the total distance of the path, 0 for an empty path.
func (p Path) Cost() int64 {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1].Distance
}

// Len returns the number of hops, source and target included.
func (p Path) Len() int { return len(p) }
