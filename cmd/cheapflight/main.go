// Command cheapflight prices flight routes with a bounded number of stops.
//
// Usage:
//
//	cheapflight demo
//	cheapflight route --from "New York" --to Rome --max-stops 2 [--network flights.yaml]
//	cheapflight generate --cities 50 --density 0.1 --seed 7 > flights.yaml
//	cheapflight version
//
// Every persistent setting can also come from a CHEAPFLIGHT_* environment variable
// (CHEAPFLIGHT_NETWORK, CHEAPFLIGHT_MAX_STOPS, CHEAPFLIGHT_POP_LIMIT, ...) or from
// the file named by --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
