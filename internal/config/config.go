// Package config loads balparse.toml, the optional per-project settings file
// for the command line tool. Values from the file sit between the built-in
// defaults and explicit flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the settings file looked up from the input path upwards.
const FileName = "balparse.toml"

type Trace struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Mode   string `toml:"mode"`
}

// Config holds the effective settings. Path is empty when no file was found.
type Config struct {
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Format         string `toml:"format"`
	Jobs           int    `toml:"jobs"`
	Color          string `toml:"color"`
	Trace          Trace  `toml:"trace"`

	Path string `toml:"-"`
}

// Default returns the settings used when neither a file nor flags say otherwise.
func Default() Config {
	return Config{
		MaxDiagnostics: 100,
		Color:          "auto",
		Trace: Trace{
			Level:  "off",
			Output: "stderr",
			Mode:   "stream",
		},
	}
}

var (
	validColor = []string{"auto", "on", "off"}
	validMode  = []string{"stream", "ring", "both"}
	validLevel = []string{"off", "error", "phase", "detail", "debug"}
)

// Find walks from start (a file or directory) up to the filesystem root
// and returns the first balparse.toml it sees.
func Find(start string) (string, bool, error) {
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over the defaults. Unknown keys are an error so that a
// misspelt setting does not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover combines Find and Load. A missing file yields the defaults.
func Discover(start string) (Config, error) {
	path, ok, err := Find(start)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) Validate() error {
	var errs []error
	if c.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("max_diagnostics must not be negative, got %d", c.MaxDiagnostics))
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs must not be negative, got %d", c.Jobs))
	}
	if err := oneOf("color", c.Color, validColor); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("trace.level", strings.ToLower(c.Trace.Level), validLevel); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("trace.mode", c.Trace.Mode, validMode); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func oneOf(key, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, "|"), value)
}
