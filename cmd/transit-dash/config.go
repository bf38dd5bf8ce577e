package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/smarttransit/transitdash/internal/logging"
	"github.com/smarttransit/transitdash/internal/model"
	"github.com/smarttransit/transitdash/internal/nav"

	"github.com/spf13/viper"
)

// cliConfig holds dashboard configuration.
type cliConfig struct {
	StartRole      string        `mapstructure:"start-role"`
	StartPage      string        `mapstructure:"start-page"`
	APIURL         string        `mapstructure:"api-url"`
	APIToken       string        `mapstructure:"api-token"`
	HealthInterval time.Duration `mapstructure:"health-interval"`
	LogLevel       string        `mapstructure:"log-level"`
	LogFile        string        `mapstructure:"log-file"`
	Fixtures       string        `mapstructure:"fixtures"`
	NoColor        bool          `mapstructure:"no-color"`
}

// startState parses the configured role and page. Unknown names are
// rejected here so the navigation core only ever sees valid values.
func (c cliConfig) startState() (nav.State, error) {
	s := nav.DefaultState()
	role, err := nav.ParseRole(c.StartRole)
	if err != nil {
		return s, fmt.Errorf("start-role: %w", err)
	}
	page, err := nav.ParseOperatorPage(c.StartPage)
	if err != nil {
		return s, fmt.Errorf("start-page: %w", err)
	}
	s.Role = role
	s.OperatorPage = page
	return s, nil
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("TRANSITDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("start-role", model.DefaultStartRole)
	v.SetDefault("start-page", model.DefaultStartPage)
	v.SetDefault("api-url", model.DefaultAPIURL)
	v.SetDefault("api-token", "")
	v.SetDefault("health-interval", model.DefaultHealthInterval)
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("log-file", logging.DefaultLogPath("transitdash"))
	v.SetDefault("fixtures", "")
	v.SetDefault("no-color", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "transitdash", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if cfg.HealthInterval < 0 {
		return cfg, fmt.Errorf("invalid health-interval: %s", cfg.HealthInterval)
	}

	return cfg, nil
}
