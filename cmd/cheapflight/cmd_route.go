package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cheapflight/cheapest"
	"github.com/katalvlaran/cheapflight/network"
)

func (a *app) routeCmd() *cobra.Command {
	var from, to string

	c := &cobra.Command{
		Use:   "route",
		Short: "Find the cheapest route between two cities",
		Long: "Find the cheapest price from one city to another using at most\n" +
			"--max-stops intermediate stops (CHEAPFLIGHT_MAX_STOPS in the environment).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.loadNetwork()
			if err != nil {
				return err
			}
			return a.route(cmd.OutOrStdout(), n, from, to, a.vi.GetInt("max_stops"))
		},
	}

	c.Flags().StringVar(&from, "from", "", "departure city")
	c.Flags().StringVar(&to, "to", "", "arrival city")
	c.Flags().Int("max-stops", 1, "maximum number of intermediate stops")
	c.Flags().Int("pop-limit", 0, "abort a search after this many frontier pops (0 = unlimited)")
	c.MarkFlagRequired("from") //nolint: errcheck
	c.MarkFlagRequired("to")   //nolint: errcheck

	a.bind("max_stops", c.Flags().Lookup("max-stops"))
	a.bind("pop_limit", c.Flags().Lookup("pop-limit"))

	return c
}

// route runs one query and prints the answer in the same wording as the demo.
func (a *app) route(w io.Writer, n *network.Network, from, to string, maxStops int) error {
	var st cheapest.Stats
	opts := []cheapest.Option{cheapest.WithStats(&st)}

	popLimit := a.vi.GetInt("pop_limit")
	switch {
	case popLimit < 0:
		return fmt.Errorf("pop limit must not be negative, got %d", popLimit)
	case popLimit > 0:
		opts = append(opts, cheapest.WithPopLimit(popLimit))
	}

	cost, ok, err := n.Cheapest(from, to, maxStops, opts...)
	if err != nil {
		return err
	}
	from, to = canonicalName(n, from), canonicalName(n, to)
	a.log.Debugw("search finished",
		"from", from, "to", to, "max_stops", maxStops,
		"pops", st.Pops, "pushes", st.Pushes, "relaxations", st.Relaxations,
		"stale_skips", st.StaleSkips, "over_budget_skips", st.OverBudgetSkips)

	printResult(w, from, to, maxStops, cost, ok)
	return nil
}

func printResult(w io.Writer, from, to string, maxStops int, cost int64, ok bool) {
	if !ok {
		fmt.Fprintf(w, "No route found from %s to %s with at most %d stop(s).\n", from, to, maxStops)
		return
	}
	fmt.Fprintf(w, "Cheapest price from %s to %s with at most %d stop(s): $%d\n", from, to, maxStops, cost)
}

// canonicalName maps user input to the city name stored in the network.
func canonicalName(n *network.Network, city string) string {
	id, ok := n.ID(city)
	if !ok {
		return city
	}
	name, _ := n.Name(id)
	return name
}
