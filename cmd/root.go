package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tejusbharadwaj/bemcost/internal/api"
	"github.com/tejusbharadwaj/bemcost/internal/config"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "bemcost",
	Short: "Estimate building energy cost from a building energy model",
	Long: `bemcost asks the building-energy-model estimation service to simulate
hourly consumption for an address and prices it with a time-of-use tariff.

Logs go to stderr; command results go to stdout.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level")
}

// app holds what every command needs once the config is loaded.
type app struct {
	cfg      *config.Config
	logger   *logrus.Logger
	registry *prometheus.Registry
}

func setup() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger, err := config.NewLogger(cfg.Logging, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	return &app{cfg: cfg, logger: logger, registry: prometheus.NewRegistry()}, nil
}

func (a *app) newClient() (*api.Client, error) {
	clientCfg := api.DefaultClientConfig()
	clientCfg.BaseURL = a.cfg.API.BaseURL
	clientCfg.Timeout = a.cfg.API.Timeout
	clientCfg.Retries = a.cfg.API.Retries
	clientCfg.RateLimit = a.cfg.API.RateLimit
	clientCfg.RateLimitBurst = a.cfg.API.RateLimitBurst
	clientCfg.CacheSize = a.cfg.API.CacheSize

	return api.NewClient(clientCfg, a.cfg.API.Credentials(), a.logger, api.WithRegisterer(a.registry))
}

// logMetrics writes the client counters at debug level before exit.
func (a *app) logMetrics() {
	if !a.logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.WithError(err).Debug("Failed to gather metrics")
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := logrus.Fields{"metric": mf.GetName()}
			for _, lp := range m.GetLabel() {
				fields[lp.GetName()] = lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				fields["value"] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				fields["count"] = m.GetHistogram().GetSampleCount()
				fields["sum"] = m.GetHistogram().GetSampleSum()
			}
			a.logger.WithFields(fields).Debug("Client metric")
		}
	}
}
