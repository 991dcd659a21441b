// Package network maps human-readable city names onto the integer node ids the
// cheapest package works with.
//
// A Network is a mutable collection of cities and named flights. Cities receive
// ids in first-seen order, so adding "New York" first makes it node 0. Whenever
// a query runs, the Network compiles its flights into an immutable
// *cheapest.Graph and caches it until the next mutation.
//
// Networks can be read from and written to YAML:
//
//	cities: [New York, London]      # optional, pins id order
//	flights:
//	  - {from: New York, to: London, cost: 500}
//
// Thread safety: all methods are safe for concurrent use; mutations take a write
// lock, queries a read lock on the cached graph.
package network
