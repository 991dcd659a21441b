// Package cheapest implements the stop-bounded cheapest-route search.
//
// Notes on implementation choices:
//
//   - The best-known table is a dense slice indexed by (node, hops) rather than a map:
//     every cell is touched at most a handful of times and the layout is cache friendly.
//   - We use a "lazy" decrease-key strategy: improvements push fresh entries and stale
//     ones are skipped when popped.
//   - The stop budget is clamped to n-1. With non-negative costs a walk of n or more
//     flights repeats a node, and cutting that cycle out never makes it dearer, so the
//     clamp bounds memory without changing any answer.
package cheapest

import (
	"container/heap"
	"fmt"
)

// CheapestPrice builds a graph from flights and runs a single search on it.
// It is a convenience wrapper around NewGraph followed by (*Graph).Cheapest.
func CheapestPrice(n int, flights []Flight, src, dst, maxStops int, opts ...Option) (int64, bool, error) {
	g, err := NewGraph(n, flights)
	if err != nil {
		return Unreachable, false, err
	}

	return g.Cheapest(src, dst, maxStops, opts...)
}

// Cheapest returns the minimum total cost of a route from src to dst that uses
// at most maxStops intermediate stops, i.e. at most maxStops+1 flights.
//
// Returns:
//
//   - cost: the cheapest price, or Unreachable when ok is false.
//   - ok:   false when no route fits the stop budget; this is not an error.
//   - err:  ErrNilGraph, ErrNodeOutOfRange, ErrNegativeStops or ErrPopLimitExceeded.
//
// src == dst always yields (0, true, nil): the empty route needs no stops.
//
// Complexity:
//
//   - Time:  O(P log P) where P ≤ E·(K'+1) is the number of pushes.
//   - Space: O(V·(K'+2) + P).
func (g *Graph) Cheapest(src, dst, maxStops int, opts ...Option) (int64, bool, error) {
	if g == nil {
		return Unreachable, false, ErrNilGraph
	}
	if !g.inRange(src) {
		return Unreachable, false, fmt.Errorf("%w: source %d with n=%d", ErrNodeOutOfRange, src, len(g.adj))
	}
	if !g.inRange(dst) {
		return Unreachable, false, fmt.Errorf("%w: destination %d with n=%d", ErrNodeOutOfRange, dst, len(g.adj))
	}
	if maxStops < 0 {
		return Unreachable, false, fmt.Errorf("%w: maxStops=%d", ErrNegativeStops, maxStops)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	stops := maxStops
	if lim := len(g.adj) - 1; stops > lim {
		stops = lim
	}

	r := newRunner(g, src, dst, stops, cfg)

	return r.run()
}

// runner holds the mutable state of one search. It is discarded on return.
type runner struct {
	g     *Graph
	dst   int
	stops int     // effective stop budget K'
	width int     // K'+2 columns per node in best
	best  []int64 // best[node*width+hops]
	pq    frontier
	cfg   Options
	stats Stats
}

// newRunner allocates the best-known table and seeds the frontier with (0, src, 0).
func newRunner(g *Graph, src, dst, stops int, cfg Options) *runner {
	width := stops + 2
	best := make([]int64, len(g.adj)*width)
	for i := range best {
		best[i] = infinity
	}
	best[src*width] = 0

	r := &runner{
		g:     g,
		dst:   dst,
		stops: stops,
		width: width,
		best:  best,
		pq:    make(frontier, 0, len(g.adj)),
		cfg:   cfg,
	}
	heap.Push(&r.pq, entry{cost: 0, node: src, hops: 0})
	r.stats.Pushes++

	return r
}

// run is the main loop. It returns on the first pop of the destination, when the
// frontier drains, or when the pop budget is spent.
func (r *runner) run() (int64, bool, error) {
	defer r.flushStats()

	var e entry
	for r.pq.Len() > 0 {
		if r.cfg.PopLimit > 0 && r.stats.Pops >= r.cfg.PopLimit {
			return Unreachable, false, fmt.Errorf("%w: limit=%d pending=%d", ErrPopLimitExceeded, r.cfg.PopLimit, r.pq.Len())
		}

		e = heap.Pop(&r.pq).(entry)
		r.stats.Pops++

		// Costs pop in non-decreasing order, so nothing later can beat this one.
		if e.node == r.dst {
			return e.cost, true, nil
		}

		// No stops left: this entry may not take another flight.
		if e.hops > r.stops {
			r.stats.OverBudgetSkips++
			continue
		}

		// A cheaper entry for the same (node, hops) was pushed after this one.
		if e.cost > r.best[e.node*r.width+e.hops] {
			r.stats.StaleSkips++
			continue
		}

		r.relax(e)
	}

	return Unreachable, false, nil
}

// relax pushes every strictly improving one-flight extension of e.
func (r *runner) relax(e entry) {
	next := e.hops + 1
	var (
		l    leg
		cand int64
		idx  int
	)
	for _, l = range r.g.adj[e.node] {
		// Saturate instead of wrapping around on absurdly large fares.
		if l.cost > infinity-1-e.cost {
			continue
		}
		cand = e.cost + l.cost
		idx = l.to*r.width + next
		if cand >= r.best[idx] {
			continue
		}
		r.best[idx] = cand
		r.stats.Relaxations++
		heap.Push(&r.pq, entry{cost: cand, node: l.to, hops: next})
		r.stats.Pushes++
	}
}

// flushStats copies the counters to the caller's sink, if any.
func (r *runner) flushStats() {
	if r.cfg.Stats != nil {
		*r.cfg.Stats = r.stats
	}
}
