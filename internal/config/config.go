// Package config loads the optional TOML configuration file of the graphs
// command.
//
// The file lives at $XDG_CONFIG_HOME/graphs/config.toml (falling back to
// ~/.config/graphs/config.toml) unless --config names another. Every key is
// optional; a missing file means all defaults:
//
//	seed = 1
//	verbose = false
//
//	[render]
//	format = "svg"
//	output_dir = "."
//
//	[cache]
//	disabled = false
//	dir = ""                     # default: $XDG_CACHE_HOME/graphs
//	redis_url = ""               # e.g. "redis://localhost:6379/0"
//	ttl = "720h"
//
//	[metrics]
//	addr = ""                    # e.g. ":9090"; empty disables the server
//
//	[repl]
//	memo = 128                   # analysis results remembered per session
//
// Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const appName = "graphs"

// Config is the full configuration.
type Config struct {
	Seed    uint32  `toml:"seed"`
	Verbose bool    `toml:"verbose"`
	Render  Render  `toml:"render"`
	Cache   Cache   `toml:"cache"`
	Metrics Metrics `toml:"metrics"`
	REPL    REPL    `toml:"repl"`
}

// Render configures image output.
type Render struct {
	Format    string `toml:"format"`
	OutputDir string `toml:"output_dir"`
}

// Cache configures result caching.
type Cache struct {
	Disabled bool     `toml:"disabled"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// Metrics configures the Prometheus endpoint of the interpreter.
type Metrics struct {
	Addr string `toml:"addr"`
}

// REPL configures the interactive interpreter.
type REPL struct {
	Memo int `toml:"memo"`
}

// Duration is a time.Duration written as a string such as "90m" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Seed:   1,
		Render: Render{Format: "svg", OutputDir: "."},
		Cache:  Cache{TTL: Duration{30 * 24 * time.Hour}},
		REPL:   REPL{Memo: 128},
	}
}

// DefaultPath returns the XDG location of the configuration file.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the configuration at path, or at [DefaultPath] when path is
// empty. A missing default file yields [Default]; a missing explicit file is
// an error. Keys the file sets override defaults; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if !slices.Contains([]string{"svg", "png"}, c.Render.Format) {
		return fmt.Errorf("render.format: unsupported %q (want svg or png)", c.Render.Format)
	}
	if c.Cache.TTL.Duration < 0 {
		return fmt.Errorf("cache.ttl: negative duration %s", c.Cache.TTL)
	}
	if c.REPL.Memo < 1 {
		return fmt.Errorf("repl.memo: must be at least 1, got %d", c.REPL.Memo)
	}
	return nil
}
