// Package pipeline runs a cost estimate end to end: build the request, call the
// estimation service, reshape the response into a table and price it.
package pipeline

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tejusbharadwaj/bemcost/internal/api"
	"github.com/tejusbharadwaj/bemcost/internal/cost"
	"github.com/tejusbharadwaj/bemcost/internal/models"
	"github.com/tejusbharadwaj/bemcost/internal/request"
	"github.com/tejusbharadwaj/bemcost/internal/table"
)

// Input describes one estimate.
type Input struct {
	Address     string
	Window      models.TimeWindow
	Granularity string
	Usage       models.UsageRecord
	Baseline    *models.BaselineSchedule
}

// Result is a priced consumption table and its total.
type Result struct {
	Table *table.ConsumptionTable
	Total decimal.Decimal
}

// Request validates in and builds the request that Fetch would send.
func Request(in Input) (*models.CalculateRequest, error) {
	if err := request.NewRequestValidator().Validate(in.Address, in.Window, in.Granularity); err != nil {
		return nil, err
	}
	return request.Build(in.Address, in.Window, in.Granularity, in.Usage, in.Baseline), nil
}

// Fetch calls the estimation service for in and returns the reshaped response.
// Invalid input fails before any call is made.
func Fetch(ctx context.Context, est api.Estimator, in Input) (*table.ConsumptionTable, error) {
	req, err := Request(in)
	if err != nil {
		return nil, err
	}

	body, err := est.Estimate(ctx, req)
	if err != nil {
		return nil, err
	}

	t, err := table.Reshape(body)
	if err != nil {
		return nil, fmt.Errorf("reshaping estimate for %q: %w", in.Address, err)
	}
	return t, nil
}

// Run fetches the estimate for in and prices it with calc.
func Run(ctx context.Context, est api.Estimator, in Input, calc cost.Calculator) (*Result, error) {
	t, err := Fetch(ctx, est, in)
	if err != nil {
		return nil, err
	}

	priced, err := calc.Apply(t)
	if err != nil {
		return nil, err
	}

	total, err := cost.Total(priced)
	if err != nil {
		return nil, err
	}

	return &Result{Table: priced, Total: total}, nil
}
