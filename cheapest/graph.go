package cheapest

import "fmt"

// leg is one outgoing flight stored in the adjacency list of its departure node.
type leg struct {
	to   int
	cost int64
}

// Graph is a read-only adjacency list built from a flight list.
// Once NewGraph returns, nothing mutates it, so one *Graph may serve
// any number of concurrent searches.
type Graph struct {
	adj     [][]leg
	flights int
}

// NewGraph validates flights against n and builds the adjacency list.
//
// Every endpoint must lie in [0, n) and every cost must be non-negative;
// the first offending flight is reported with its index. Parallel flights
// are kept in input order.
//
// Complexity: O(n + len(flights)).
func NewGraph(n int, flights []Flight) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrNoNodes, n)
	}

	// Count out-degrees first so every adjacency slice is allocated exactly once.
	deg := make([]int, n)
	var f Flight
	for i := range flights {
		f = flights[i]
		if f.From < 0 || f.From >= n || f.To < 0 || f.To >= n {
			return nil, fmt.Errorf("%w: flight #%d %d→%d with n=%d", ErrNodeOutOfRange, i, f.From, f.To, n)
		}
		if f.Cost < 0 {
			return nil, fmt.Errorf("%w: flight #%d %d→%d cost=%d", ErrNegativeCost, i, f.From, f.To, f.Cost)
		}
		deg[f.From]++
	}

	adj := make([][]leg, n)
	for u, d := range deg {
		if d > 0 {
			adj[u] = make([]leg, 0, d)
		}
	}
	for _, f = range flights {
		adj[f.From] = append(adj[f.From], leg{to: f.To, cost: f.Cost})
	}

	return &Graph{adj: adj, flights: len(flights)}, nil
}

// NodeCount returns the number of nodes n the graph was built with.
func (g *Graph) NodeCount() int { return len(g.adj) }

// FlightCount returns the number of flights, parallel ones included.
func (g *Graph) FlightCount() int { return g.flights }

// OutDegree returns the number of flights leaving u, or 0 if u is out of range.
func (g *Graph) OutDegree(u int) int {
	if u < 0 || u >= len(g.adj) {
		return 0
	}
	return len(g.adj[u])
}

// inRange reports whether u is a valid node id.
func (g *Graph) inRange(u int) bool { return u >= 0 && u < len(g.adj) }
