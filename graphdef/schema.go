// SPDX-License-Identifier: MIT

package graphdef

import "github.com/ghodss/yaml"

// Document is the top-level structure of a graph definition file.
//
// yaml tags drive Parse; json tags drive Marshal.
type Document struct {
	Vertices []string  `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges    []EdgeDef `yaml:"edges" json:"edges"`
	Source   string    `yaml:"source,omitempty" json:"source,omitempty"`
	Target   string    `yaml:"target,omitempty" json:"target,omitempty"`
}

// EdgeDef is one undirected, weighted edge.
type EdgeDef struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight int64  `yaml:"weight" json:"weight"`
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}
