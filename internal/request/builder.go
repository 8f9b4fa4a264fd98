// Package request builds calculation requests for the estimation service.
//
// A request names the site, the simulated window and its granularity, the fixed
// set of consumption variables to report, and optionally the data driving the
// simulation: known usage, a synthetic baseline schedule, or both.
package request

import (
	"github.com/tejusbharadwaj/bemcost/internal/models"
)

// Variable names reported by the estimation service.
const (
	VarElectricity = "consumption.electricity"
	VarFossilFuel  = "consumption.fossil_fuel"
)

// Granularities accepted by the estimation service.
const (
	GranularityHour  = "hour"
	GranularityDay   = "day"
	GranularityMonth = "month"
)

// Variables returns the variables requested on every calculation, in wire order.
func Variables() []string {
	return []string{
		"consumption.electricity.refrigerator",
		"consumption.electricity.cooking_range",
		"consumption.electricity.dishwasher",
		"consumption.electricity.ceiling_fan",
		"consumption.electricity.plug_loads",
		"consumption.electricity.lighting",
		"consumption.electricity.heating",
		"consumption.electricity.cooling",
		"consumption.fossil_fuel.hot_water",
		VarElectricity,
		VarFossilFuel,
	}
}

// Build assembles the calculation request.
//
// With usage only, the usage record is sent as "actuals". With usage and a
// baseline, the baseline is nested as a single object at
// actuals.attributes.baseline. With a baseline only, it is sent as a one-element
// list at attributes.baseline. The two baseline shapes differ on purpose; the
// service accepts them as such.
func Build(
	address string,
	window models.TimeWindow,
	granularity string,
	usage models.UsageRecord,
	baseline *models.BaselineSchedule,
) *models.CalculateRequest {
	req := &models.CalculateRequest{
		Parameters: models.Parameters{
			FromDatetime: window.FormatStart(),
			ToDatetime:   window.FormatEnd(),
			Variables:    Variables(),
			GroupBy:      granularity,
		},
		Location: models.Location{Address: address},
	}

	switch {
	case len(usage) > 0:
		actuals := make(map[string]interface{}, len(usage)+1)
		for name, values := range usage {
			actuals[name] = append([]float64(nil), values...)
		}
		if baseline != nil {
			actuals["attributes"] = map[string]interface{}{
				"baseline": *baseline,
			}
		}
		req.Consumption = &models.Consumption{Actuals: actuals}
	case baseline != nil:
		req.Consumption = &models.Consumption{
			Attributes: &models.Attributes{
				Baseline: []models.BaselineSchedule{*baseline},
			},
		}
	}

	return req
}
