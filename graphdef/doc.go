// Package graphdef loads graph definitions for the shortest-path engine.
//
// A definition is a YAML or JSON document:
//
//	vertices: [a, b, c]          # optional; derived from edges when omitted
//	edges:
//	  - {from: a, to: b, weight: 5}
//	  - {from: b, to: c, weight: 2}
//	source: a                    # optional defaults for the CLI
//	target: c
//
// YAML is converted to JSON with github.com/ghodss/yaml and decoded through
// the json tags, so both formats share one schema. Unknown fields are rejected.
//
// Errors are categorized for errors.Is():
//
//   - ErrParse:  the document is not valid YAML/JSON.
//   - ErrSchema: the document does not match the schema.
//
// Structural problems (duplicate vertices, dangling edges, negative weights)
// are reported by core.NewGraph when the document is turned into a Graph.
package graphdef
