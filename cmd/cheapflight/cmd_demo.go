package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cheapflight/network"
)

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Price New York → Rome on the built-in network with 1 and 2 stops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := network.Demo()
			for _, k := range []int{1, 2} {
				if err := a.route(cmd.OutOrStdout(), n, "New York", "Rome", k); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
