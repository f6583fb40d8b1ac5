// SPDX-License-Identifier: MIT

package graphdef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the definition stored at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphdef: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML or JSON definition and checks it against the schema.
// Scalars are read with YAML 1.2 rules, so IDs such as y, no or 1 stay strings.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		// Unknown fields and type mismatches both surface as *yaml.TypeError.
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %v", ErrSchema, err)
		}

		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// validate checks the fields the decoder cannot enforce.
func (d *Document) validate() error {
	if len(d.Vertices) == 0 && len(d.Edges) == 0 {
		return fmt.Errorf("%w: document has no vertices and no edges", ErrSchema)
	}
	for i, e := range d.Edges {
		if e.From == "" {
			return fmt.Errorf("%w: edges[%d]: from is required", ErrSchema, i)
		}
		if e.To == "" {
			return fmt.Errorf("%w: edges[%d]: to is required", ErrSchema, i)
		}
	}

	return nil
}
