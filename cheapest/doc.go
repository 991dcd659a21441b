// Package cheapest finds the cheapest route between two nodes of a directed,
// weighted graph when the route may use at most K intermediate stops.
//
// Overview:
//
//   - The search is a stop-bounded variant of Dijkstra's algorithm. Instead of one
//     best distance per vertex it keeps one per (vertex, hops) pair, so a route that
//     is cheap but long never hides a dearer route that still fits the stop budget.
//   - A min-heap frontier always yields the cheapest pending partial route. The first
//     time the destination is popped its cost is optimal and the search returns.
//   - Parallel flights between the same pair of cities are kept as-is; the search
//     simply considers each of them.
//
// When to use:
//
//   - Fare search with a cap on the number of connections.
//   - Any network query of the form "cheapest path with at most K+1 edges" over
//     non-negative weights.
//
// Key features:
//
//   - Graph is built once by NewGraph and is read-only afterwards, so concurrent
//     searches on the same *Graph are safe.
//   - WithPopLimit bounds the work of a single search.
//   - WithStats reports frontier counters for diagnostics and benchmarks.
//
// Performance and complexity:
//
//   - Let V = nodes, E = flights, K' = min(maxStops, V-1).
//   - Time:  O(E·(K'+1) · log(E·(K'+1))) in the worst case.
//   - Space: O(V·(K'+2)) for the best-known table plus O(pushes) for the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNoNodes:          node count below one.
//   - ErrNodeOutOfRange:   flight endpoint, source or destination outside [0, n).
//   - ErrNegativeCost:     a flight with a negative cost.
//   - ErrNegativeStops:    maxStops < 0.
//   - ErrNilGraph:         Cheapest called on a nil *Graph.
//   - ErrPopLimitExceeded: the WithPopLimit budget ran out before an answer was found.
//
// "No route" is not an error: Cheapest returns ok == false and cost == Unreachable.
//
// Example:
//
//	g, err := cheapest.NewGraph(3, []cheapest.Flight{{0, 1, 100}, {1, 2, 100}, {0, 2, 500}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost, ok, err := g.Cheapest(0, 2, 1)
//	// cost == 200, ok == true
package cheapest
