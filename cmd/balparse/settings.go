package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"balparse/internal/config"
)

// settings is the effective configuration of one command run.
type settings struct {
	config.Config
	quiet      bool
	timings    bool
	ui         uiMode
	cpuProfile string
	memProfile string
	rtTrace    string
}

// loadSettings layers the defaults, the balparse.toml found from target
// (or named by --config) and the flags the user actually set.
func loadSettings(cmd *cobra.Command, target string) (*settings, error) {
	flags := cmd.Flags()
	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	var cfg config.Config
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.Discover(target)
	}
	if err != nil {
		return nil, err
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"color", &cfg.Color},
		{"trace", &cfg.Trace.Output},
		{"trace-level", &cfg.Trace.Level},
		{"trace-mode", &cfg.Trace.Mode},
		{"format", &cfg.Format},
	}
	for _, o := range overrides {
		if flags.Lookup(o.flag) == nil || !flags.Changed(o.flag) {
			continue
		}
		if *o.dst, err = flags.GetString(o.flag); err != nil {
			return nil, err
		}
	}
	// --trace alone means "trace something": pick the phase level.
	if flags.Changed("trace") && !flags.Changed("trace-level") && cfg.Trace.Level == "off" {
		cfg.Trace.Level = "phase"
	}
	if flags.Changed("max-diagnostics") {
		if cfg.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	s := &settings{Config: cfg}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, err
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, err
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return nil, err
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return nil, err
	}
	for _, p := range []struct {
		flag string
		dst  *string
	}{
		{"cpuprofile", &s.cpuProfile},
		{"memprofile", &s.memProfile},
		{"runtime-trace", &s.rtTrace},
	} {
		if *p.dst, err = flags.GetString(p.flag); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// useColor resolves the color setting for output going to w.
func (s *settings) useColor(w io.Writer) bool {
	switch s.Color {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(w)
}
