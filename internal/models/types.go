package models

import "time"

// Timestamp layouts used on the wire.
const (
	NaiveLayout = "2006-01-02T15:04:05"
	AwareLayout = time.RFC3339
)

// CalculateRequest is the body posted to the estimation service.
type CalculateRequest struct {
	Parameters  Parameters   `json:"parameters"`
	Location    Location     `json:"location"`
	Consumption *Consumption `json:"consumption,omitempty"`
}

// Parameters selects the window, granularity and variables to simulate.
type Parameters struct {
	FromDatetime string   `json:"from_datetime"`
	ToDatetime   string   `json:"to_datetime"`
	Variables    []string `json:"variables"`
	GroupBy      string   `json:"group_by"`
}

// Location identifies the simulated site.
type Location struct {
	Address string `json:"address"`
}

// Consumption carries known usage and/or a synthetic baseline.
//
// Actuals is a free-form object: the usage record plus, when a baseline is
// supplied alongside it, an "attributes" entry holding that baseline.
type Consumption struct {
	Actuals    map[string]interface{} `json:"actuals,omitempty"`
	Attributes *Attributes            `json:"attributes,omitempty"`
}

// Attributes holds baseline schedules when no usage record is supplied.
type Attributes struct {
	Baseline []BaselineSchedule `json:"baseline"`
}

// BaselineSchedule is a named per-hour setpoint profile, one value per hour of day.
type BaselineSchedule struct {
	Name  string      `json:"name"`
	Value [24]float64 `json:"value"`
}

// UsageRecord maps a variable name to known historical consumption values.
type UsageRecord map[string][]float64

// TimeWindow is the simulated period. Naive windows carry no offset on the wire.
type TimeWindow struct {
	Start time.Time
	End   time.Time
	Naive bool
}

// FormatStart renders the window start in its wire form.
func (w TimeWindow) FormatStart() string { return w.format(w.Start) }

// FormatEnd renders the window end in its wire form.
func (w TimeWindow) FormatEnd() string { return w.format(w.End) }

func (w TimeWindow) format(t time.Time) string {
	if w.Naive {
		return t.Format(NaiveLayout)
	}
	return t.Format(AwareLayout)
}

// CalculateResponse is the relevant part of the estimation service reply.
type CalculateResponse struct {
	Data *struct {
		Intervals *[]Interval `json:"intervals"`
	} `json:"data"`
}

// Interval is one reported (timestamp, variable, value) record.
type Interval struct {
	FromDatetime string   `json:"from_datetime"`
	ToDatetime   string   `json:"to_datetime"`
	Variable     string   `json:"variable"`
	Value        *float64 `json:"value"`
}
