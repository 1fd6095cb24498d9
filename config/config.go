// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/viper"
)

const (
	LogLevelKey    = "log-level"
	LogDirKey      = "log-dir"
	LogMaxSizeKey  = "log-max-size"
	LogMaxFilesKey = "log-max-files"
	OutputKey      = "output"
	MetricsKey     = "metrics"

	OutputText = "text"
	OutputJSON = "json"
)

var ErrInvalidOutput = errors.New("invalid output format")

type Config struct {
	LogLevel    logging.Level `json:"logLevel"`
	LogDir      string        `json:"logDir"`
	LogMaxSize  int           `json:"logMaxSize"` // megabytes
	LogMaxFiles int           `json:"logMaxFiles"`
	Output      string        `json:"output"`
	Metrics     bool          `json:"metrics"`
}

func New() *Config {
	return &Config{
		LogLevel:    logging.Info,
		LogMaxSize:  8,
		LogMaxFiles: 3,
		Output:      OutputText,
	}
}

// SetDefaults registers the defaults of [New] on [v] so unset keys resolve
// to them.
func SetDefaults(v *viper.Viper) {
	c := New()
	v.SetDefault(LogLevelKey, c.LogLevel.LowerString())
	v.SetDefault(LogDirKey, c.LogDir)
	v.SetDefault(LogMaxSizeKey, c.LogMaxSize)
	v.SetDefault(LogMaxFilesKey, c.LogMaxFiles)
	v.SetDefault(OutputKey, c.Output)
	v.SetDefault(MetricsKey, c.Metrics)
}

// Load resolves a Config from [v]. Values set through bound flags take
// precedence over the config file, which takes precedence over defaults.
func Load(v *viper.Viper) (*Config, error) {
	c := New()

	if s := v.GetString(LogLevelKey); s != "" {
		level, err := logging.ToLevel(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", LogLevelKey, err)
		}
		c.LogLevel = level
	}
	c.LogDir = v.GetString(LogDirKey)
	if v.IsSet(LogMaxSizeKey) {
		c.LogMaxSize = v.GetInt(LogMaxSizeKey)
	}
	if v.IsSet(LogMaxFilesKey) {
		c.LogMaxFiles = v.GetInt(LogMaxFilesKey)
	}
	if s := v.GetString(OutputKey); s != "" {
		c.Output = strings.ToLower(s)
	}
	c.Metrics = v.GetBool(MetricsKey)

	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Verify() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
	if c.LogMaxSize < 0 || c.LogMaxFiles < 0 {
		return fmt.Errorf("log rotation limits must be non-negative (size=%d files=%d)", c.LogMaxSize, c.LogMaxFiles)
	}
	return nil
}

func (c *Config) JSONOutput() bool {
	return c.Output == OutputJSON
}
