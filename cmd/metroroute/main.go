// Command metroroute plans door-to-door trips over a metro network.
//
//	metroroute serve                 run the HTTP service
//	metroroute route A E [--json]    plan one trip
//	metroroute stations              list stations and their lines
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
