// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/hyperds/config"
	"github.com/ava-labs/hyperds/consts"
	"github.com/ava-labs/hyperds/internal/logging"
	"github.com/ava-labs/hyperds/metrics"
	"github.com/ava-labs/hyperds/session"
	"github.com/ava-labs/hyperds/utils"
)

const (
	configFlag     = "config"
	logDisplayFlag = "log-display"
	noColorFlag    = "no-color"
)

// app carries what every sub-command needs once flags and the config file
// have been resolved.
type app struct {
	v *viper.Viper

	config   *config.Config
	logs     *logging.Factory
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	session  *session.Session

	out     io.Writer
	printer *utils.Printer
}

func newApp() *app {
	v := viper.New()
	config.SetDefaults(v)
	return &app{v: v}
}

func (a *app) bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(configFlag, "", "Config file (default $HOME/"+consts.ConfigDir+"/"+consts.ConfigName+"."+consts.ConfigType+")")
	flags.String(config.LogLevelKey, "", "Log level (verbo, debug, trace, info, warn, error, fatal, off)")
	flags.String(config.LogDirKey, "", "Directory for rotating log files")
	flags.StringP(config.OutputKey, "o", "", "Output format (text or json)")
	flags.Bool(config.MetricsKey, false, "Print operation metrics when done")
	flags.Bool(logDisplayFlag, false, "Mirror logs to stderr")
	flags.Bool(noColorFlag, false, "Disable coloured output")

	for _, key := range []string{config.LogLevelKey, config.LogDirKey, config.OutputKey, config.MetricsKey} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}
}

func (a *app) init(cmd *cobra.Command) error {
	if err := a.readConfig(cmd); err != nil {
		return err
	}
	c, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.config = c

	display, _ := cmd.Flags().GetBool(logDisplayFlag)
	a.logs = logging.NewFactory(logging.Config{
		Level:          c.LogLevel,
		Directory:      c.LogDir,
		MaxSize:        c.LogMaxSize,
		MaxFiles:       c.LogMaxFiles,
		DisableDisplay: !display,
	})
	log, err := a.logs.Make(cmd.Name())
	if err != nil {
		return err
	}

	a.registry, a.metrics, err = metrics.New()
	if err != nil {
		return err
	}
	a.session = session.New(log, a.metrics)

	noColor, _ := cmd.Flags().GetBool(noColorFlag)
	a.out = cmd.OutOrStdout()
	a.printer = utils.NewPrinter(a.out, !noColor)
	return nil
}

// readConfig reads --config if given, otherwise the default config file,
// creating it (empty) the first time.
func (a *app) readConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString(configFlag)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir := filepath.Join(homeDir, consts.ConfigDir)
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		path = filepath.Join(configDir, consts.ConfigName+"."+consts.ConfigType)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := os.WriteFile(path, nil, 0o600); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
		}
	}

	a.v.SetConfigFile(path)
	a.v.SetConfigType(consts.ConfigType)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

func (a *app) close() {
	if a.logs != nil {
		a.logs.Close()
	}
}

func (a *app) printResult(res *session.Result) error {
	if a.config.JSONOutput() {
		b, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, err = fmt.Fprintln(a.out, string(b))
		return err
	}
	a.printer.Outf("{{cyan}}%s{{/}} {{yellow}}%s{{/}} %s\n", res.Target, res.Op, res.Message)
	return nil
}

func (a *app) printError(err error) {
	if a.config.JSONOutput() {
		b, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(a.out, string(b))
		return
	}
	a.printer.Outf("{{red}}error:{{/}} %s\n", err)
}

func (a *app) printMetrics() error {
	if !a.config.Metrics {
		return nil
	}
	rows, err := metrics.Summary(a.registry)
	if err != nil {
		return err
	}
	if a.config.JSONOutput() {
		b, err := json.Marshal(map[string][]metrics.Row{"metrics": rows})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, string(b))
		return err
	}
	a.printer.Outf("\n{{bold}}metrics{{/}}\n")
	for _, row := range rows {
		a.printer.Outf("  %s\n", row)
	}
	return nil
}
