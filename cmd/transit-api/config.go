package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/smarttransit/transitdash/internal/model"

	"github.com/spf13/viper"
)

// appConfig is the mock API server configuration. It shares the config file
// with the dashboard and reads only the keys it needs.
type appConfig struct {
	APIAddr    string `mapstructure:"api-addr"`
	APIToken   string `mapstructure:"api-token"`
	LogLevel   string `mapstructure:"log-level"`
	Fixtures   string `mapstructure:"fixtures"`
	ConfigPath string `mapstructure:"-"`
}

// loadConfig reads the config file and environment. A non-empty addr comes
// from the -addr flag and takes precedence over both.
func loadConfig(configPath, addr string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("TRANSITDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("api-addr", model.DefaultAPIAddr)
	v.SetDefault("api-token", "")
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("fixtures", "")
	if addr != "" {
		v.Set("api-addr", addr)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "transitdash", "config.yml"))
	}

	fileRead := true
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
		fileRead = false
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if fileRead {
		cfg.ConfigPath = v.ConfigFileUsed()
	}

	if _, _, err := net.SplitHostPort(cfg.APIAddr); err != nil {
		return cfg, fmt.Errorf("invalid api-addr %q: %w", cfg.APIAddr, err)
	}

	return cfg, nil
}
