package network

import (
	"fmt"

	"github.com/katalvlaran/cheapflight/cheapest"
)

// cityName is the name given to node i of a generated network.
func cityName(i int) string { return fmt.Sprintf("C%d", i) }

// Random builds a network of cities C0..C(cities-1) whose flights come from
// cheapest.RandomFlights with the same density, cost bound and seed.
func Random(cities int, density float64, maxCost int64, seed int64) (*Network, error) {
	if cities < 1 {
		return nil, fmt.Errorf("%w: cities=%d", ErrBadCityCount, cities)
	}
	flights, err := cheapest.RandomFlights(cities, density, maxCost, seed)
	if err != nil {
		return nil, err
	}

	n := New()
	for i := 0; i < cities; i++ {
		n.cityLocked(cityName(i))
	}
	n.flights = flights

	return n, nil
}

// Demo returns the five-city network New York, London, Paris, Berlin, Rome
// (ids 0..4) used by the demo command and examples.
func Demo() *Network {
	n := New()
	for _, r := range []Route{
		{"New York", "London", 500},
		{"New York", "Paris", 600},
		{"London", "Paris", 150},
		{"London", "Berlin", 200},
		{"Paris", "Berlin", 180},
		{"Paris", "Rome", 250},
		{"Berlin", "Rome", 300},
		{"Rome", "New York", 700},
	} {
		n.mustAddFlight(r.From, r.To, r.Cost)
	}

	return n
}

// mustAddFlight is AddFlight for built-in networks; it panics on error.
func (n *Network) mustAddFlight(from, to string, cost int64) {
	if err := n.AddFlight(from, to, cost); err != nil {
		panic(err)
	}
}
