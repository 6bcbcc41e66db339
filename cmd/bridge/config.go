package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/peterbourgon/ff/v3"

	"vera-homekit-bridge/internal/domain/model"
)

const (
	envVarPrefix = "VERA_BRIDGE"
	defaultPIN   = "00102003"
)

// parseConfig reads flags, then VERA_BRIDGE_* environment variables, then the
// optional JSON file named by -config.
func parseConfig(args []string, stderr io.Writer) (model.Config, error) {
	fs := flag.NewFlagSet("bridge", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg model.Config
	fs.String("config", "", "JSON config file (optional)")
	fs.StringVar(&cfg.Controller.Host, "host", "", "controller hostname or IP address")
	fs.IntVar(&cfg.Controller.Port, "port", model.DefaultControllerPort, "controller data_request port")
	fs.DurationVar(&cfg.Controller.Timeout, "timeout", 10*time.Second, "controller request timeout")
	fs.StringVar(&cfg.TemperatureFormula, "temperature-formula", "", "temperature conversion over x, e.g. (x-32)*5/9")
	fs.StringVar(&cfg.BridgeName, "bridge-name", "Vera Bridge", "name announced to HomeKit")
	fs.StringVar(&cfg.PIN, "pin", defaultPIN, "8 digit HomeKit setup code")
	fs.StringVar(&cfg.HAPAddr, "hap-addr", "", "HomeKit listen address, empty picks a random port")
	fs.StringVar(&cfg.StoragePath, "storage", "pairings.json", "pairing store file")
	fs.StringVar(&cfg.AdminAddr, "admin-addr", "", "admin API listen address, empty disables it")
	fs.StringVar(&cfg.Log.Level, "log-level", "info", "trace, debug, info, warn or error")
	fs.StringVar(&cfg.Log.File, "log-file", "", "log to a rotated file instead of stdout")
	fs.IntVar(&cfg.Log.MaxSizeMB, "log-max-size", 10, "log file size in MB before rotation")
	fs.IntVar(&cfg.Log.MaxBackups, "log-max-backups", 3, "rotated log files to keep")

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix(envVarPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithAllowMissingConfigFile(true),
	)
	if err != nil {
		return model.Config{}, fmt.Errorf("parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return model.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
