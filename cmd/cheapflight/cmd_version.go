package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), BuildDetails())
		},
	}
}

func BuildDetails() string {
	if version == "" {
		return "cheapflight (unknown version)\n" +
			"Go version            : " + runtime.Version()
	}

	return fmt.Sprintf(`cheapflight %v
Commit SHA-1          : %v
Commit timestamp      : %v
Go version            : %v`,
		version,
		commit,
		date,
		runtime.Version())
}
