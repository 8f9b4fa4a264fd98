// Package bemcost estimates building energy cost from a building energy model.
//
// # Architecture
//
// An estimate flows through a linear pipeline:
//   - request: builds the calculation request (window, variables, usage, baseline schedules)
//   - api: calls the estimation service through an interceptor chain (request ID,
//     logging, metrics, response cache, rate limit)
//   - table: pivots the interval list in the response into a time-indexed table
//   - cost: prices electricity with a two-rate time-of-use tariff
//   - pipeline: wires the steps together and sums the cost
//
// Key Features
//
//   - Baseline schedules:
//     Heating or cooling setpoint profiles that run for a number of hours from
//     a start hour, wrapping past midnight.
//
//   - Time-of-use pricing:
//     Hours 16:00-21:59 are billed at the peak rate and all other hours at the
//     off-peak rate, read in each timestamp's own location. Money is summed in
//     decimal arithmetic.
//
//   - Resilient client:
//     Per-attempt timeouts, retries with backoff on transport failures and 5xx
//     or 429 responses, typed errors, and Prometheus metrics.
//
// Example Usage
//
//	client, err := api.NewClient(api.DefaultClientConfig(), cfg.API.Credentials(), logger)
//	result, err := pipeline.Run(ctx, client, pipeline.Input{
//	    Address:     "929 Maxwell Ave. Boulder, CO 80304",
//	    Window:      window,
//	    Granularity: request.GranularityHour,
//	}, cost.NewCalculator(cost.DefaultOffPeakRate, cost.DefaultPeakRate))
//
// For more information about specific packages, see their respective
// documentation.
package bemcost
