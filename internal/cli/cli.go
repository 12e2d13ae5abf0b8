// Package cli implements the railnav command-line interface.
//
// This package provides commands for querying routes and reachability on
// a rail network, managing stations and tracks, booking tickets, viewing
// the departure board, rendering network maps and serving the HTTP API.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/railnav/railnav/pkg/buildinfo"
	"github.com/railnav/railnav/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "railnav"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "railnav",
		Short:        "Railnav routes journeys across a suburban rail network",
		Long:         `Railnav is a CLI tool for querying a suburban rail network: fastest routes, reachability, fares, departures and platform allocation, with an optional HTTP API and network map rendering.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config file (default: XDG config dir)")

	// Register all subcommands
	root.AddCommand(c.stationsCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.reachableCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.trackCommand())
	root.AddCommand(c.ticketCommand())
	root.AddCommand(c.scheduleCommand())
	root.AddCommand(c.platformCommand())
	root.AddCommand(c.mapCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache builds the artifact cache, falling back to a null cache when
// caching is disabled or no cache directory is available.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/railnav/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/railnav/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// dataDir returns the data directory using XDG standard (~/.local/share/railnav/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}
