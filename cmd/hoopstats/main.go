// main is the entry point of the hoopstats CLI.
package main

import (
	"os"

	"github.com/unc-data110/hoopstats/cmd"
	"github.com/unc-data110/hoopstats/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
