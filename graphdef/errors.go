// SPDX-License-Identifier: MIT

package graphdef

import "errors"

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrParse indicates malformed YAML/JSON.
	ErrParse = errors.New("graphdef: parse error")

	// ErrSchema indicates schema violations: unknown fields, wrong types, missing endpoints.
	ErrSchema = errors.New("graphdef: schema error")
)
