package cheapest

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search.
var (
	// ErrNoNodes indicates a graph with fewer than one node was requested.
	ErrNoNodes = errors.New("cheapest: node count must be at least 1")

	// ErrNodeOutOfRange indicates a node id outside [0, n).
	ErrNodeOutOfRange = errors.New("cheapest: node id out of range")

	// ErrNegativeCost indicates a flight with a negative cost. Negative costs break
	// the first-pop-is-optimal argument the search relies on, so they are rejected.
	ErrNegativeCost = errors.New("cheapest: negative flight cost")

	// ErrNegativeStops indicates maxStops < 0.
	ErrNegativeStops = errors.New("cheapest: maxStops must be non-negative")

	// ErrNilGraph indicates a search on a nil *Graph.
	ErrNilGraph = errors.New("cheapest: graph is nil")

	// ErrPopLimitExceeded indicates the WithPopLimit budget was exhausted.
	ErrPopLimitExceeded = errors.New("cheapest: frontier pop limit exceeded")

	// ErrBadPopLimit is the panic payload of WithPopLimit for non-positive limits.
	ErrBadPopLimit = errors.New("cheapest: pop limit must be positive")
)

// Unreachable is the cost reported alongside ok == false.
const Unreachable int64 = -1

// infinity marks best-known table entries that were never reached.
const infinity int64 = math.MaxInt64

// Flight is a directed edge From→To with a non-negative Cost.
type Flight struct {
	From int   // departure node
	To   int   // arrival node
	Cost int64 // price of this leg, ≥ 0
}

// Stats collects counters of a single search. Pass a pointer via WithStats;
// every search that gets past argument validation overwrites it.
type Stats struct {
	Pops            int // entries removed from the frontier
	Pushes          int // entries inserted into the frontier, the seed included
	Relaxations     int // strictly improving best-known updates
	StaleSkips      int // popped entries already beaten in the best-known table
	OverBudgetSkips int // popped entries that had no stops left to expand
}

// Options configures a single search.
//
// PopLimit – maximum frontier pops; 0 means unlimited.
// Stats    – optional sink for search counters; nil disables collection.
type Options struct {
	PopLimit int
	Stats    *Stats
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithPopLimit aborts the search with ErrPopLimitExceeded after n frontier pops.
// It panics if n ≤ 0, the same way invalid option values fail elsewhere in this module.
func WithPopLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadPopLimit.Error())
		}
		o.PopLimit = n
	}
}

// WithStats records search counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// DefaultOptions returns Options with no pop limit and no stats collection.
func DefaultOptions() Options {
	return Options{}
}
