// Command biocycle evaluates biorhythm cycles from the command line.
//
// Usage:
//
//	biocycle today --birth 1990-05-17
//	biocycle series --cycle physical --month 2024-05-01
//	biocycle critical --cycle emotional --from 2024-05-01 --to 2024-06-30
//	biocycle favorable --cycle intellectual --threshold 0.5
//	biocycle activities
//	biocycle session
//	biocycle watch --schedule "0 7 * * *"
//
// Settings are read from --config (default: the user config directory) and
// the BIOCYCLE_* environment variables.
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
