package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedules_OnHours(t *testing.T) {
	for start := 0; start < 24; start++ {
		for duration := 1; duration <= 24; duration++ {
			want := make(map[int]bool, duration)
			for i := 0; i < duration; i++ {
				want[(start+i)%24] = true
			}

			heating := HeatingSchedule(start, duration)
			cooling := CoolingSchedule(start, duration)
			for h := 0; h < 24; h++ {
				if want[h] {
					assert.Equal(t, 38.0, heating.Value[h], "heating start=%d duration=%d hour=%d", start, duration, h)
					assert.Equal(t, 10.0, cooling.Value[h], "cooling start=%d duration=%d hour=%d", start, duration, h)
				} else {
					assert.Equal(t, 10.0, heating.Value[h], "heating start=%d duration=%d hour=%d", start, duration, h)
					assert.Equal(t, 38.0, cooling.Value[h], "cooling start=%d duration=%d hour=%d", start, duration, h)
				}
			}
		}
	}
}

func TestHeatingSchedule(t *testing.T) {
	s := HeatingSchedule(8, 3)

	assert.Equal(t, HeatingSetpointName, s.Name)
	assert.Equal(t, [24]float64{
		10, 10, 10, 10, 10, 10, 10, 10,
		38, 38, 38, 10, 10, 10, 10, 10,
		10, 10, 10, 10, 10, 10, 10, 10,
	}, s.Value)
}

func TestCoolingSchedule_WrapsPastMidnight(t *testing.T) {
	s := CoolingSchedule(22, 4)

	assert.Equal(t, CoolingSetpointName, s.Name)
	for _, h := range []int{22, 23, 0, 1} {
		assert.Equal(t, 10.0, s.Value[h], "hour %d", h)
	}
	assert.Equal(t, 38.0, s.Value[2])
	assert.Equal(t, 38.0, s.Value[21])
}

func TestSchedules_EdgeDurations(t *testing.T) {
	// Longer than a day wraps and overwrites hours already set.
	full := HeatingSchedule(5, 30)
	for h := 0; h < 24; h++ {
		assert.Equal(t, 38.0, full.Value[h])
	}

	off := HeatingSchedule(5, 0)
	for h := 0; h < 24; h++ {
		assert.Equal(t, 10.0, off.Value[h])
	}

	negative := CoolingSchedule(-1, 1)
	assert.Equal(t, 10.0, negative.Value[23])
}
