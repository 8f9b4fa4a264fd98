// Command bemcost estimates the energy cost of a building.
//
// It asks the building-energy-model estimation service to simulate hourly
// consumption for an address and prices the electricity with a two-rate
// time-of-use tariff.
//
// Usage:
//
//	bemcost [command] [flags]
//
// The commands are:
//
//	cost      print the total cost for a window
//	payload   print the request that cost would send
//	health    query the estimation service health endpoint
//
// The API key is read from EIAPI_DEV_API_KEY unless api.api_key is set in the
// config file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
