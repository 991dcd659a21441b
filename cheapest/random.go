// Package cheapest - random flight lists for tests, benchmarks and the generate command.
//
// Model: every ordered pair (i, j) with i != j gets a flight independently with
// probability p; its cost is uniform in [0, maxCost]. Trials run in a fixed order
// (i asc, then j asc) so a given seed always yields the same list.
package cheapest

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrBadDensity indicates a flight probability outside [0, 1].
var ErrBadDensity = errors.New("cheapest: density must be within [0, 1]")

// defaultSeed replaces a zero seed so callers get a stable default stream.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// RandomFlights samples a directed flight list over n nodes.
//
// Contract:
//   - n ≥ 1 (else ErrNoNodes).
//   - 0 ≤ p ≤ 1 (else ErrBadDensity); NaN is rejected too.
//   - maxCost ≥ 0 (else ErrNegativeCost); math.MaxInt64 is allowed.
//   - No self-loops are generated.
//
// Complexity: O(n²) Bernoulli trials.
func RandomFlights(n int, p float64, maxCost int64, seed int64) ([]Flight, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrNoNodes, n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%.6f", ErrBadDensity, p)
	}
	if maxCost < 0 {
		return nil, fmt.Errorf("%w: maxCost=%d", ErrNegativeCost, maxCost)
	}

	rng := rngFromSeed(seed)
	flights := make([]Flight, 0, int(float64(n*(n-1))*p)+1)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			// Float64 is in [0,1), so p==0 never fires and p==1 always does.
			if rng.Float64() < p {
				flights = append(flights, Flight{From: i, To: j, Cost: drawCost(rng, maxCost)})
			}
		}
	}

	return flights, nil
}

// drawCost returns a uniform cost in [0, maxCost].
func drawCost(rng *rand.Rand, maxCost int64) int64 {
	if maxCost == math.MaxInt64 {
		return rng.Int63()
	}
	return rng.Int63n(maxCost + 1)
}
