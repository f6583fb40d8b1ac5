// SPDX-License-Identifier: MIT
// Package dijkstra defines the configuration options, selection strategies
// and sentinel errors of the relaxation engine.
//
// Options:
//
//	– Source:           ID of the starting vertex (required, must exist).
//	– Target:           ID of the goal vertex; the run stops once it is finalized.
//	                    Empty means "explore every reachable vertex".
//	– Strategy:         StrategyScan (linear scan, default) or StrategyHeap.
//	– MaxDistance:      vertices farther than this are never finalized.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource       if the source ID is empty.
//	– ErrNilGraph          if the graph pointer is nil.
//	– ErrUnknownVertex     if the source or target is not part of the graph.
//	– ErrTargetUnreachable if the run got stuck before finalizing the target.
//	– ErrBadMaxDistance    (panic) if MaxDistance < 0.
//	– ErrBadInfThreshold   (panic) if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the relaxation engine.
var (
	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownVertex indicates that the source or target vertex does not
	// exist in the graph. It is detected before any relaxation work.
	ErrUnknownVertex = errors.New("dijkstra: vertex not found in graph")

	// ErrTargetUnreachable indicates that no path connects source and target.
	// It is an ordinary outcome of a correct run.
	ErrTargetUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnknownStrategy indicates an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy selects how the engine finds the next vertex to finalize.
//
// Both strategies finalize vertices in exactly the same order: minimum
// tentative distance first, ties broken by vertex insertion order.
type Strategy int

const (
	// StrategyScan scans every vertex on each step, O(V) per step.
	// It is the reference behavior for tie-breaking.
	StrategyScan Strategy = iota

	// StrategyHeap keeps a lazy-decrease-key min-heap ordered by
	// (distance, vertex handle), O((V+E) log V) overall.
	StrategyHeap
)

// String returns the flag-friendly name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "scan" or "heap" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "scan", "":
		return StrategyScan, nil
	case "heap":
		return StrategyHeap, nil
	}

	return StrategyScan, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Options configures a single run of the relaxation engine.
type Options struct {
	Source           string   // ID of the source vertex
	Target           string   // ID of the target vertex; empty explores everything reachable
	Strategy         Strategy // next-vertex selection strategy
	MaxDistance      int64    // maximum distance to finalize
	InfEdgeThreshold int64    // weight from which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target sets the goal vertex ID. The run terminates as soon as it is
// finalized, and fails with ErrTargetUnreachable if it never is.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithStrategy selects the next-vertex selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxDistance caps the distances the engine will finalize. A vertex whose
// shortest distance exceeds max is treated as unreachable.
// Panics with ErrBadMaxDistance if max < 0.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks every edge whose weight is >= threshold as
// impassable. Panics with ErrBadInfThreshold if threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the defaults for the given source vertex ID:
// no target, StrategyScan, no distance cap, no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		Strategy:         StrategyScan,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
