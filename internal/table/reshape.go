package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tejusbharadwaj/bemcost/internal/models"
)

var (
	ErrParse             = errors.New("malformed estimation response")
	ErrDuplicateInterval = errors.New("duplicate interval")
)

// ParseError names the part of the response that could not be read.
// Interval is the position in data.intervals, or -1 for the envelope.
type ParseError struct {
	Field    string
	Interval int
	Err      error
}

func (e *ParseError) Error() string {
	if e.Interval < 0 {
		return fmt.Sprintf("%v: %s: %v", ErrParse, e.Field, e.Err)
	}
	return fmt.Sprintf("%v: interval %d: %s: %v", ErrParse, e.Interval, e.Field, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

var timestampLayouts = []string{
	time.RFC3339Nano,
	models.NaiveLayout,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp reads a response timestamp. Values without an offset are
// wall-clock times and are returned in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// Reshape pivots the estimation response into a table indexed by each interval's
// from_datetime with one column per variable. Exactly one value is expected per
// (timestamp, variable) pair; a repeated pair is an error.
func Reshape(body []byte) (*ConsumptionTable, error) {
	var resp models.CalculateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ParseError{Field: "body", Interval: -1, Err: err}
	}
	if resp.Data == nil {
		return nil, &ParseError{Field: "data", Interval: -1, Err: errors.New("missing")}
	}
	if resp.Data.Intervals == nil {
		return nil, &ParseError{Field: "data.intervals", Interval: -1, Err: errors.New("missing")}
	}

	type cell struct {
		at       int64
		variable string
	}
	var (
		rows   = make(map[int64]time.Time)
		cells  = make(map[cell]float64)
		series = make(map[string]bool)
	)

	for i, iv := range *resp.Data.Intervals {
		from, err := ParseTimestamp(iv.FromDatetime)
		if err != nil {
			return nil, &ParseError{Field: "from_datetime", Interval: i, Err: err}
		}
		if _, err := ParseTimestamp(iv.ToDatetime); err != nil {
			return nil, &ParseError{Field: "to_datetime", Interval: i, Err: err}
		}
		if iv.Variable == "" {
			return nil, &ParseError{Field: "variable", Interval: i, Err: errors.New("missing")}
		}

		key := cell{at: from.UnixNano(), variable: iv.Variable}
		if _, seen := cells[key]; seen {
			return nil, fmt.Errorf("%w: %s at %s (interval %d)", ErrDuplicateInterval, iv.Variable, iv.FromDatetime, i)
		}

		value := math.NaN()
		if iv.Value != nil {
			value = *iv.Value
		}
		cells[key] = value
		series[iv.Variable] = true
		if _, ok := rows[key.at]; !ok {
			rows[key.at] = from
		}
	}

	keys := make([]int64, 0, len(rows))
	for at := range rows {
		keys = append(keys, at)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	index := make([]time.Time, len(keys))
	for i, at := range keys {
		index[i] = rows[at]
	}

	columns := make(map[string][]float64, len(series))
	for variable := range series {
		values := make([]float64, len(keys))
		for i, at := range keys {
			v, ok := cells[cell{at: at, variable: variable}]
			if !ok {
				v = math.NaN()
			}
			values[i] = v
		}
		columns[variable] = values
	}

	return NewConsumptionTable(index, columns)
}
