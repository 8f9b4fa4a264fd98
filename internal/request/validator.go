package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tejusbharadwaj/bemcost/internal/models"
)

const maxTimeRange = 2 * 365 * 24 * time.Hour

// ErrInvalidRequest is returned for request parameters the service would reject.
var ErrInvalidRequest = errors.New("invalid request")

type RequestValidator struct {
	validGranularities map[string]bool
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validGranularities: map[string]bool{
			GranularityHour:  true,
			GranularityDay:   true,
			GranularityMonth: true,
		},
	}
}

// Validate checks if the request parameters are valid
func (v *RequestValidator) Validate(address string, window models.TimeWindow, granularity string) error {
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("%w: missing address", ErrInvalidRequest)
	}

	// Validate timestamps are present
	if window.Start.IsZero() || window.End.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidRequest)
	}

	// Validate time range
	if !window.End.After(window.Start) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidRequest)
	}

	// Validate maximum time range
	if window.End.Sub(window.Start) > maxTimeRange {
		return fmt.Errorf("%w: time range exceeds maximum allowed", ErrInvalidRequest)
	}

	if !v.validGranularities[granularity] {
		return fmt.Errorf("%w: invalid granularity: %s", ErrInvalidRequest, granularity)
	}

	return nil
}

// ValidateScheduleStart checks a schedule start hour supplied by a user.
func ValidateScheduleStart(hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: start hour %d outside 0-23", ErrInvalidRequest, hour)
	}
	return nil
}

// ParseTimestamp parses a user-supplied window bound. Inputs without an offset
// are read as naive wall-clock times (in UTC) and reported as such.
func ParseTimestamp(s string) (t time.Time, naive bool, err error) {
	if t, err = time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	for _, layout := range []string{models.NaiveLayout, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err = time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%w: invalid timestamp %q", ErrInvalidRequest, s)
}
