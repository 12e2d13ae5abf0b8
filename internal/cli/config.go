package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/railnav/railnav/pkg/railnet"
)

// Config is the railnav configuration file, loaded from TOML.
//
// Example:
//
//	listen = ":8080"
//	data_dir = "/var/lib/railnav"
//
//	[fare]
//	base = 10
//	per_km = 2
//	senior_discount_pct = 50
//
//	[platform]
//	slots = 5
type Config struct {
	// Listen is the HTTP API listen address used by the serve command.
	Listen string `toml:"listen"`

	// DataDir overrides the XDG data directory holding the network CSVs.
	DataDir string `toml:"data_dir"`

	// StationsFile and TracksFile name the CSV files inside DataDir.
	// They must be plain filenames, not paths.
	StationsFile string `toml:"stations_file"`
	TracksFile   string `toml:"tracks_file"`

	Fare     FareConfig     `toml:"fare"`
	Platform PlatformConfig `toml:"platform"`
}

// FareConfig configures the fare tariff.
type FareConfig struct {
	Base              int `toml:"base"`
	PerKm             int `toml:"per_km"`
	SeniorDiscountPct int `toml:"senior_discount_pct"`
}

// PlatformConfig configures platform allocation.
type PlatformConfig struct {
	// Slots is the number of platform slots per station.
	Slots int `toml:"slots"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() *Config {
	policy := railnet.DefaultFarePolicy()
	return &Config{
		Listen:       ":8080",
		StationsFile: "stations.csv",
		TracksFile:   "tracks.csv",
		Fare: FareConfig{
			Base:              policy.Base,
			PerKm:             policy.PerKm,
			SeniorDiscountPct: policy.SeniorDiscountPct,
		},
		Platform: PlatformConfig{Slots: 5},
	}
}

// loadConfig loads the TOML config from the --config path, or from the
// XDG config dir. A missing file is not an error: defaults apply, and
// file values override them field by field.
func (c *CLI) loadConfig() (*Config, error) {
	cfg := defaultConfig()

	path := c.configPath
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	c.Logger.Debug("loaded config", "path", path)
	return cfg, nil
}

// farePolicy converts the fare section into a railnet policy.
func (cfg *Config) farePolicy() railnet.FarePolicy {
	return railnet.FarePolicy{
		Base:              cfg.Fare.Base,
		PerKm:             cfg.Fare.PerKm,
		SeniorDiscountPct: cfg.Fare.SeniorDiscountPct,
	}
}
