// Package cost prices consumption tables with a time-of-use tariff.
package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/tejusbharadwaj/bemcost/internal/request"
	"github.com/tejusbharadwaj/bemcost/internal/table"
)

// Column is the name of the column appended by Apply.
const Column = "cost"

// Peak window bounds: hours after peakAfter up to and including peakThrough.
const (
	peakAfter   = 15
	peakThrough = 21
)

// Winter rates per kWh.
var (
	DefaultOffPeakRate = decimal.RequireFromString("0.37")
	DefaultPeakRate    = decimal.RequireFromString("0.40")
)

// ErrMissingColumn is returned when a table lacks a column the calculator needs.
var ErrMissingColumn = errors.New("missing column")

// Calculator applies a two-rate time-of-use tariff. Peak runs 16:00-21:59 in the
// timestamp's own location; every other hour is off-peak.
type Calculator struct {
	OffPeakRate decimal.Decimal
	PeakRate    decimal.Decimal
}

// NewCalculator returns a calculator for the given rates.
func NewCalculator(offPeakRate, peakRate decimal.Decimal) Calculator {
	return Calculator{OffPeakRate: offPeakRate, PeakRate: peakRate}
}

// RateAt returns the rate for an hour of day.
func (c Calculator) RateAt(hour int) decimal.Decimal {
	if hour <= peakAfter || hour > peakThrough {
		return c.OffPeakRate
	}
	return c.PeakRate
}

// Apply returns a copy of t with a cost column: total electricity consumption
// times the rate for the row's hour. t is left unchanged. Rows without an
// electricity value get a NaN cost.
func (c Calculator) Apply(t *table.ConsumptionTable) (*table.ConsumptionTable, error) {
	consumption, ok := t.Column(request.VarElectricity)
	if !ok {
		return nil, fmt.Errorf("%w: %s required to compute %s", ErrMissingColumn, request.VarElectricity, Column)
	}

	costs := make([]float64, len(consumption))
	for i, at := range t.Index() {
		kwh := consumption[i]
		if math.IsNaN(kwh) || math.IsInf(kwh, 0) {
			costs[i] = math.NaN()
			continue
		}
		costs[i] = decimal.NewFromFloat(kwh).Mul(c.RateAt(at.Hour())).InexactFloat64()
	}

	return t.WithColumn(Column, costs)
}

// Total sums the cost column, skipping rows without a cost.
func Total(t *table.ConsumptionTable) (decimal.Decimal, error) {
	costs, ok := t.Column(Column)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMissingColumn, Column)
	}

	total := decimal.Zero
	for _, v := range costs {
		if math.IsNaN(v) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total, nil
}
