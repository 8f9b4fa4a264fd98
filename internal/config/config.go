package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// APIKeyEnv is the environment variable holding the estimation service key.
const APIKeyEnv = "EIAPI_DEV_API_KEY"

// Config holds all configuration for our application
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Tariff  TariffConfig  `mapstructure:"tariff"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type APIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	Timeout        time.Duration `mapstructure:"timeout"`
	Retries        int           `mapstructure:"retries"`
	RateLimit      float64       `mapstructure:"rate_limit"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
	CacheSize      int           `mapstructure:"cache_size"`
}

type TariffConfig struct {
	OffPeakRate float64 `mapstructure:"off_peak_rate"`
	PeakRate    float64 `mapstructure:"peak_rate"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
//
// The file is optional; ${VAR} references inside it are expanded before parsing.
// Any key can be overridden with BEMCOST_<SECTION>_<KEY>, and api.api_key also
// falls back to EIAPI_DEV_API_KEY.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("bemcost")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api.api_key", "BEMCOST_API_API_KEY", APIKeyEnv); err != nil {
		return nil, fmt.Errorf("failed to bind api key: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults and environment only
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			v.SetConfigType("yaml")
			if err := v.ReadConfig(strings.NewReader(os.ExpandEnv(string(data)))); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://ei.palmetto.com/api/v0")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.retries", 2)
	v.SetDefault("api.rate_limit", 5.0)
	v.SetDefault("api.rate_limit_burst", 10)
	v.SetDefault("api.cache_size", 128)

	v.SetDefault("tariff.off_peak_rate", 0.37)
	v.SetDefault("tariff.peak_rate", 0.40)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Credentials returns the credential source for the estimation service. An
// explicit api_key wins; otherwise the key is read from APIKeyEnv at call time.
func (c APIConfig) Credentials() CredentialSource {
	if c.APIKey != "" {
		return StaticCredential(c.APIKey)
	}
	return EnvCredential(APIKeyEnv)
}
