// Command cardstats computes activity report card datasets.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata" // --timezone must work on hosts without a zoneinfo database

	"github.com/huangsam/cardstats/cmd"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		fmt.Fprintln(os.Stderr, "❌", stopErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
