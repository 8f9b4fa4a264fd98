package request

import "github.com/tejusbharadwaj/bemcost/internal/models"

// Setpoint magnitudes understood by the estimation service as active/inactive.
const (
	HeatingSetpointName = "hvac_heating_setpoint"
	CoolingSetpointName = "hvac_cooling_setpoint"

	setpointLow  = 10
	setpointHigh = 38
)

// HeatingSchedule returns a heating baseline that is on for duration hours
// starting at startHour (0-23), wrapping past midnight.
func HeatingSchedule(startHour, duration int) models.BaselineSchedule {
	return cyclicSchedule(HeatingSetpointName, setpointLow, setpointHigh, startHour, duration)
}

// CoolingSchedule returns a cooling baseline that is on for duration hours
// starting at startHour (0-23), wrapping past midnight.
func CoolingSchedule(startHour, duration int) models.BaselineSchedule {
	return cyclicSchedule(CoolingSetpointName, setpointHigh, setpointLow, startHour, duration)
}

func cyclicSchedule(name string, off, on float64, startHour, duration int) models.BaselineSchedule {
	s := models.BaselineSchedule{Name: name}
	for h := range s.Value {
		s.Value[h] = off
	}
	for i := startHour; i < startHour+duration; i++ {
		s.Value[((i%24)+24)%24] = on
	}
	return s
}
