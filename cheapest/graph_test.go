package cheapest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cheapflight/cheapest"
)

func TestNewGraph_Validation(t *testing.T) {
	cases := []struct {
		name    string
		n       int
		flights []cheapest.Flight
		wantErr error
		wantMsg string
	}{
		{"zero nodes", 0, nil, cheapest.ErrNoNodes, "n=0"},
		{"negative nodes", -2, nil, cheapest.ErrNoNodes, "n=-2"},
		{"from out of range", 2, []cheapest.Flight{{From: 2, To: 0, Cost: 1}}, cheapest.ErrNodeOutOfRange, "flight #0"},
		{"to out of range", 2, []cheapest.Flight{{From: 0, To: 1, Cost: 1}, {From: 0, To: -1, Cost: 1}}, cheapest.ErrNodeOutOfRange, "flight #1"},
		{"negative cost", 3, []cheapest.Flight{{From: 0, To: 2, Cost: -1}}, cheapest.ErrNegativeCost, "0→2 cost=-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := cheapest.NewGraph(tc.n, tc.flights)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), tc.wantMsg)
			assert.Nil(t, g)
		})
	}
}

func TestNewGraph_Shape(t *testing.T) {
	g, err := cheapest.NewGraph(cityCount, europeFlights())
	require.NoError(t, err)

	assert.Equal(t, cityCount, g.NodeCount())
	assert.Equal(t, 8, g.FlightCount())
	assert.Equal(t, 2, g.OutDegree(newYork))
	assert.Equal(t, 2, g.OutDegree(paris))
	assert.Equal(t, 1, g.OutDegree(rome))
	assert.Equal(t, 0, g.OutDegree(-1))
	assert.Equal(t, 0, g.OutDegree(cityCount))
}

func TestNewGraph_SingleNodeNoFlights(t *testing.T) {
	g, err := cheapest.NewGraph(1, nil)
	require.NoError(t, err)

	cost, ok, err := g.Cheapest(0, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(0), cost)
}

// TestNewGraph_DoesNotAliasInput mutates the caller's slice after construction.
func TestNewGraph_DoesNotAliasInput(t *testing.T) {
	flights := []cheapest.Flight{{From: 0, To: 1, Cost: 10}}
	g, err := cheapest.NewGraph(2, flights)
	require.NoError(t, err)

	flights[0].Cost = 1

	cost, _, err := g.Cheapest(0, 1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(10), cost)
}

func TestRandomFlights(t *testing.T) {
	a, err := cheapest.RandomFlights(20, 0.3, 99, 5)
	require.NoError(t, err)
	b, err := cheapest.RandomFlights(20, 0.3, 99, 5)
	require.NoError(t, err)
	require.Equal(t, a, b, "same seed must give the same flights")

	for _, f := range a {
		require.NotEqual(t, f.From, f.To)
		require.GreaterOrEqual(t, f.Cost, int64(0))
		require.LessOrEqual(t, f.Cost, int64(99))
	}

	none, err := cheapest.RandomFlights(10, 0, 5, 1)
	require.NoError(t, err)
	require.Empty(t, none)

	all, err := cheapest.RandomFlights(6, 1, 5, 1)
	require.NoError(t, err)
	require.Len(t, all, 6*5)

	zeroSeed, err := cheapest.RandomFlights(8, 0.5, 10, 0)
	require.NoError(t, err)
	oneSeed, err := cheapest.RandomFlights(8, 0.5, 10, 1)
	require.NoError(t, err)
	require.Equal(t, oneSeed, zeroSeed, "seed 0 falls back to the default seed")
}

func TestRandomFlights_Validation(t *testing.T) {
	_, err := cheapest.RandomFlights(0, 0.5, 10, 1)
	require.ErrorIs(t, err, cheapest.ErrNoNodes)

	_, err = cheapest.RandomFlights(3, 1.5, 10, 1)
	require.ErrorIs(t, err, cheapest.ErrBadDensity)

	_, err = cheapest.RandomFlights(3, -0.1, 10, 1)
	require.ErrorIs(t, err, cheapest.ErrBadDensity)

	_, err = cheapest.RandomFlights(5, math.NaN(), 10, 1)
	require.ErrorIs(t, err, cheapest.ErrBadDensity)

	_, err = cheapest.RandomFlights(3, 0.5, -1, 1)
	require.ErrorIs(t, err, cheapest.ErrNegativeCost)
}

func TestRandomFlights_MaxCostFullRange(t *testing.T) {
	flights, err := cheapest.RandomFlights(3, 1, math.MaxInt64, 1)
	require.NoError(t, err)
	require.Len(t, flights, 3*2)
	for _, f := range flights {
		require.GreaterOrEqual(t, f.Cost, int64(0))
	}

	// Full-range costs still build and search without overflow.
	g, err := cheapest.NewGraph(3, flights)
	require.NoError(t, err)
	_, ok, err := g.Cheapest(0, 2, 1)
	require.NoError(t, err)
	require.True(t, ok)
}
