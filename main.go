// Package main is the entrypoint for the trendscope CLI.
package main

import (
	"github.com/trendscope/trendscope/cmd"
	"github.com/trendscope/trendscope/internal/contract"
	"github.com/trendscope/trendscope/internal/runstore"
)

func main() {
	cmd.SetStoreManager(runstore.Manager)

	err := cmd.Execute()

	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}
	runstore.CloseStores()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
