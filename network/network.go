package network

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/cheapflight/cheapest"
)

// Network is a set of named cities and the flights between them.
type Network struct {
	mu      sync.RWMutex
	ids     map[string]int
	names   []string
	flights []cheapest.Flight
	graph   *cheapest.Graph // nil until built, reset by every mutation
}

// New returns an empty Network.
func New() *Network {
	return &Network{ids: make(map[string]int)}
}

// AddCity returns the id of name, assigning the next free id if it is new.
// Leading and trailing spaces are ignored.
func (n *Network) AddCity(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1, ErrEmptyCity
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	return n.cityLocked(name), nil
}

// cityLocked is AddCity without validation or locking. Caller holds mu.
func (n *Network) cityLocked(name string) int {
	if id, ok := n.ids[name]; ok {
		return id
	}
	id := len(n.names)
	n.ids[name] = id
	n.names = append(n.names, name)
	n.graph = nil

	return id
}

// AddFlight records a flight from → to, creating either city if needed.
// Parallel flights are kept; the search picks the cheapest.
func (n *Network) AddFlight(from, to string, cost int64) error {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return fmt.Errorf("%w: flight %q→%q", ErrEmptyCity, from, to)
	}
	if cost < 0 {
		return fmt.Errorf("%w: flight %s→%s cost=%d", cheapest.ErrNegativeCost, from, to, cost)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	u := n.cityLocked(from)
	v := n.cityLocked(to)
	n.flights = append(n.flights, cheapest.Flight{From: u, To: v, Cost: cost})
	n.graph = nil

	return nil
}

// ID returns the node id of name.
func (n *Network) ID(name string) (int, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	id, ok := n.ids[strings.TrimSpace(name)]
	return id, ok
}

// Name returns the city name of node id.
func (n *Network) Name(id int) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if id < 0 || id >= len(n.names) {
		return "", false
	}
	return n.names[id], true
}

// Len returns the number of cities.
func (n *Network) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.names)
}

// Cities returns city names ordered by id.
func (n *Network) Cities() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]string, len(n.names))
	copy(out, n.names)
	return out
}

// Flights returns all flights with city names, in insertion order.
func (n *Network) Flights() []Route {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Route, len(n.flights))
	for i, f := range n.flights {
		out[i] = Route{From: n.names[f.From], To: n.names[f.To], Cost: f.Cost}
	}
	return out
}

// Graph compiles the network into a search graph. The result is cached until
// the next AddCity or AddFlight that changes the network.
func (n *Network) Graph() (*cheapest.Graph, error) {
	n.mu.RLock()
	g := n.graph
	n.mu.RUnlock()
	if g != nil {
		return g, nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.graph != nil {
		return n.graph, nil
	}
	if len(n.names) == 0 {
		return nil, fmt.Errorf("network: %w", cheapest.ErrNoNodes)
	}
	g, err := cheapest.NewGraph(len(n.names), n.flights)
	if err != nil {
		return nil, err
	}
	n.graph = g

	return g, nil
}

// Cheapest returns the cheapest price from one city to another with at most
// maxStops intermediate stops. ok is false when no such route exists.
func (n *Network) Cheapest(from, to string, maxStops int, opts ...cheapest.Option) (int64, bool, error) {
	src, ok := n.ID(from)
	if !ok {
		return cheapest.Unreachable, false, fmt.Errorf("%w: %q", ErrUnknownCity, from)
	}
	dst, ok := n.ID(to)
	if !ok {
		return cheapest.Unreachable, false, fmt.Errorf("%w: %q", ErrUnknownCity, to)
	}

	g, err := n.Graph()
	if err != nil {
		return cheapest.Unreachable, false, err
	}

	return g.Cheapest(src, dst, maxStops, opts...)
}
