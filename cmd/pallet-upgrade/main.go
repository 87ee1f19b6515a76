// Package main provides the CLI entrypoint for pallet-upgrade.
//
// pallet-upgrade reads a legacy storage declaration and prints the
// attribute-style pallet template it upgrades to. Output is gated by the
// PRINT_PALLET_UPGRADE environment variable.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.LookupEnv, nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
