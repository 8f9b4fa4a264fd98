package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(from, to, variable string, value interface{}) map[string]interface{} {
	return map[string]interface{}{
		"from_datetime": from,
		"to_datetime":   to,
		"variable":      variable,
		"value":         value,
	}
}

func responseBody(t *testing.T, intervals ...map[string]interface{}) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"data": map[string]interface{}{"intervals": intervals},
	})
	require.NoError(t, err)
	return body
}

func TestReshape_Pivot(t *testing.T) {
	var intervals []map[string]interface{}
	// Emitted out of order to check the index is sorted.
	for _, h := range []int{2, 0, 1} {
		from := fmt.Sprintf("2023-01-01T%02d:00:00", h)
		to := fmt.Sprintf("2023-01-01T%02d:00:00", h+1)
		intervals = append(intervals,
			interval(from, to, "consumption.electricity", float64(10+h)),
			interval(from, to, "consumption.fossil_fuel", float64(100+h)),
		)
	}

	tbl, err := Reshape(responseBody(t, intervals...))
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"consumption.electricity", "consumption.fossil_fuel"}, tbl.Columns())

	index := tbl.Index()
	for h := 0; h < 3; h++ {
		assert.Equal(t, time.Date(2023, 1, 1, h, 0, 0, 0, time.UTC), index[h])
		assert.Equal(t, float64(10+h), tbl.Value(h, "consumption.electricity"))
		assert.Equal(t, float64(100+h), tbl.Value(h, "consumption.fossil_fuel"))
	}
}

func TestReshape_MissingCellsAreNaN(t *testing.T) {
	body := responseBody(t,
		interval("2023-01-01T00:00:00", "2023-01-01T01:00:00", "consumption.electricity", 1.5),
		interval("2023-01-01T01:00:00", "2023-01-01T02:00:00", "consumption.fossil_fuel", 2.5),
		interval("2023-01-01T01:00:00", "2023-01-01T02:00:00", "consumption.electricity", nil),
	)

	tbl, err := Reshape(body)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Len())
	assert.True(t, math.IsNaN(tbl.Value(0, "consumption.fossil_fuel")))
	assert.True(t, math.IsNaN(tbl.Value(1, "consumption.electricity")))
	assert.Equal(t, 1.5, tbl.Value(0, "consumption.electricity"))
}

func TestReshape_KeepsOffset(t *testing.T) {
	body := responseBody(t,
		interval("2023-01-01T16:00:00-07:00", "2023-01-01T17:00:00-07:00", "consumption.electricity", 3.0),
	)

	tbl, err := Reshape(body)
	require.NoError(t, err)
	assert.Equal(t, 16, tbl.Index()[0].Hour())
}

func TestReshape_Duplicate(t *testing.T) {
	body := responseBody(t,
		interval("2023-01-01T00:00:00", "2023-01-01T01:00:00", "consumption.electricity", 1.0),
		interval("2023-01-01T00:00:00", "2023-01-01T01:00:00", "consumption.electricity", 2.0),
	)

	_, err := Reshape(body)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateInterval)
}

func TestReshape_ParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		field    string
		interval int
	}{
		{"malformed json", `{"data":`, "body", -1},
		{"not an object", `[1,2]`, "body", -1},
		{"missing data", `{"errors":["bad key"]}`, "data", -1},
		{"missing intervals", `{"data":{}}`, "data.intervals", -1},
		{
			"bad from_datetime",
			`{"data":{"intervals":[{"from_datetime":"noon","to_datetime":"2023-01-01T01:00:00","variable":"v","value":1}]}}`,
			"from_datetime", 0,
		},
		{
			"bad to_datetime",
			`{"data":{"intervals":[{"from_datetime":"2023-01-01T00:00:00","to_datetime":"","variable":"v","value":1}]}}`,
			"to_datetime", 0,
		},
		{
			"missing variable",
			`{"data":{"intervals":[{"from_datetime":"2023-01-01T00:00:00","to_datetime":"2023-01-01T01:00:00","value":1}]}}`,
			"variable", 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reshape([]byte(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.field, perr.Field)
			assert.Equal(t, tt.interval, perr.Interval)
			assert.True(t, strings.HasPrefix(err.Error(), ErrParse.Error()))
		})
	}
}

func TestReshape_EmptyIntervals(t *testing.T) {
	tbl, err := Reshape([]byte(`{"data":{"intervals":[]}}`))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Columns())
}

func TestParseTimestamp(t *testing.T) {
	for _, s := range []string{
		"2023-01-01T05:00:00",
		"2023-01-01T05:00:00Z",
		"2023-01-01T05:00:00.000+00:00",
		"2023-01-01 05:00:00",
	} {
		ts, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.Equal(t, 5, ts.Hour(), s)
	}

	_, err := ParseTimestamp("01/01/2023")
	assert.Error(t, err)
}
