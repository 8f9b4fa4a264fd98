package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tejusbharadwaj/bemcost/internal/models"
	"github.com/tejusbharadwaj/bemcost/internal/pipeline"
	"github.com/tejusbharadwaj/bemcost/internal/request"
)

// inputFlags are the flags shared by commands that build an estimate request.
type inputFlags struct {
	address         string
	start           string
	end             string
	granularity     string
	usageFile       string
	heatingStart    int
	heatingDuration int
	coolingStart    int
	coolingDuration int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.address, "address", "", "street address of the building")
	flags.StringVar(&f.start, "start", "2023-01-01T00:00:00", "window start (RFC 3339, or naive wall clock)")
	flags.StringVar(&f.end, "end", "2023-01-02T00:00:00", "window end (RFC 3339, or naive wall clock)")
	flags.StringVar(&f.granularity, "granularity", request.GranularityHour, "hour, day or month")
	flags.StringVar(&f.usageFile, "usage", "", "YAML or JSON file with known usage per variable")
	flags.IntVar(&f.heatingStart, "heating-start", 0, "hour of day the heating baseline turns on")
	flags.IntVar(&f.heatingDuration, "heating-duration", 3, "hours the heating baseline stays on")
	flags.IntVar(&f.coolingStart, "cooling-start", 0, "hour of day the cooling baseline turns on")
	flags.IntVar(&f.coolingDuration, "cooling-duration", 3, "hours the cooling baseline stays on")

	_ = cmd.MarkFlagRequired("address")
	cmd.MarkFlagsMutuallyExclusive("heating-start", "cooling-start")
}

func (f *inputFlags) input(cmd *cobra.Command) (pipeline.Input, error) {
	start, startNaive, err := request.ParseTimestamp(f.start)
	if err != nil {
		return pipeline.Input{}, fmt.Errorf("--start: %w", err)
	}
	end, endNaive, err := request.ParseTimestamp(f.end)
	if err != nil {
		return pipeline.Input{}, fmt.Errorf("--end: %w", err)
	}
	if startNaive != endNaive {
		return pipeline.Input{}, fmt.Errorf("%w: --start and --end must both carry an offset or neither", request.ErrInvalidRequest)
	}

	in := pipeline.Input{
		Address:     f.address,
		Window:      models.TimeWindow{Start: start, End: end, Naive: startNaive},
		Granularity: f.granularity,
	}

	if f.usageFile != "" {
		if in.Usage, err = request.LoadUsage(f.usageFile); err != nil {
			return pipeline.Input{}, err
		}
	}

	switch {
	case cmd.Flags().Changed("heating-start"):
		if err := request.ValidateScheduleStart(f.heatingStart); err != nil {
			return pipeline.Input{}, err
		}
		schedule := request.HeatingSchedule(f.heatingStart, f.heatingDuration)
		in.Baseline = &schedule
	case cmd.Flags().Changed("cooling-start"):
		if err := request.ValidateScheduleStart(f.coolingStart); err != nil {
			return pipeline.Input{}, err
		}
		schedule := request.CoolingSchedule(f.coolingStart, f.coolingDuration)
		in.Baseline = &schedule
	}

	return in, nil
}
