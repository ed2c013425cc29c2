package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sanjoy/graphs/internal/config"
	"github.com/sanjoy/graphs/pkg/buildinfo"
	"github.com/sanjoy/graphs/pkg/cache"
	gerrors "github.com/sanjoy/graphs/pkg/errors"
	"github.com/sanjoy/graphs/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "graphs"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
	hooks      observability.Hooks
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
		hooks:  observability.Noop{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Build, analyze and count undirected graphs",
		Long: `graphs builds graphs from the zoo (complete, bipartite, rings, replacement
products, random sparse graphs), measures their expansion with the Cheeger
constant, counts regular graphs up to isomorphism and exports them as DOT,
graph6, JSON, SVG or PNG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "configuration file (default $XDG_CONFIG_HOME/graphs/config.toml)")

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.countCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.replCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration file. Verbose in the file raises the
// log level; it never lowers a level set by --verbose.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "invalid configuration")
	}
	c.cfg = cfg
	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	c.Logger.Debug("loaded config", "path", c.configPath, "seed", cfg.Seed, "redis", cfg.Cache.RedisURL != "")
	return nil
}

// =============================================================================
// Cache Factory
// =============================================================================

// resultCache bundles the configured cache with the keyer of this build.
type resultCache struct {
	cache.Cache
	keys cache.Keyer
}

// newCache opens the configured cache. A Redis URL takes precedence over the
// file cache; an unreachable Redis falls back to the file cache with a
// warning. Failures to create the file cache disable caching.
func (c *CLI) newCache(ctx context.Context, noCache bool) *resultCache {
	keys := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	wrap := func(inner cache.Cache) *resultCache {
		return &resultCache{Cache: cache.Instrument(inner, c.hooks), keys: keys}
	}

	if noCache || c.cfg.Cache.Disabled {
		return wrap(cache.NewNullCache())
	}
	if url := c.cfg.Cache.RedisURL; url != "" {
		rc, err := cache.NewRedisCache(ctx, url)
		if err == nil {
			c.Logger.Debug("using redis cache")
			return wrap(rc)
		}
		c.Logger.Warn("redis cache unavailable, using file cache", "err", err)
	}

	dir := c.cfg.Cache.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return wrap(cache.NewNullCache())
		}
		dir = d
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable", "dir", dir, "err", err)
		return wrap(cache.NewNullCache())
	}
	return wrap(fc)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/graphs/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".cache", appName), nil
}
