package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cheapflight/network"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		cities  int
		density float64
		maxCost int64
		seed    int64
	)

	c := &cobra.Command{
		Use:   "generate",
		Short: "Write a random flight network as YAML to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := network.Random(cities, density, maxCost, seed)
			if err != nil {
				return err
			}
			a.log.Debugw("network generated", "cities", cities, "flights", len(n.Flights()), "seed", seed)
			return n.WriteYAML(cmd.OutOrStdout())
		},
	}

	c.Flags().IntVar(&cities, "cities", 10, "number of cities")
	c.Flags().Float64Var(&density, "density", 0.2, "probability of a flight between any ordered pair of cities")
	c.Flags().Int64Var(&maxCost, "max-cost", 1000, "upper bound of a flight's cost")
	c.Flags().Int64Var(&seed, "seed", 1, "random seed; the same seed gives the same network")

	return c
}
