package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/railnav/railnav/pkg/cache"
	"github.com/railnav/railnav/pkg/errors"
	"github.com/railnav/railnav/pkg/netio"
	"github.com/railnav/railnav/pkg/railnet"
)

// networkPaths resolves the CSV file locations from config or XDG data
// dir. Configured filenames must be plain basenames so a config file
// cannot point the data writer outside the data directory.
func networkPaths(cfg *Config) (string, string, error) {
	for _, name := range []string{cfg.StationsFile, cfg.TracksFile} {
		if err := errors.ValidateDataFilename(name); err != nil {
			return "", "", err
		}
	}
	dir := cfg.DataDir
	if dir == "" {
		d, err := dataDir()
		if err != nil {
			return "", "", fmt.Errorf("resolve data dir: %w", err)
		}
		dir = d
	}
	return filepath.Join(dir, cfg.StationsFile), filepath.Join(dir, cfg.TracksFile), nil
}

// loadNetwork reads the network from the CSV files, or seeds the default
// Mumbai suburban network when no files exist yet.
func (c *CLI) loadNetwork(cfg *Config) (*railnet.Network, error) {
	stationPath, trackPath, err := networkPaths(cfg)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(stationPath); os.IsNotExist(err) {
		c.Logger.Debug("no network data found, using built-in network", "path", stationPath)
		return seedNetwork(), nil
	}

	n, err := netio.ReadNetworkFiles(stationPath, trackPath)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	c.Logger.Debug("loaded network", "stations", n.StationCount())
	return n, nil
}

// saveNetwork persists the network back to the CSV files.
func (c *CLI) saveNetwork(cfg *Config, n *railnet.Network) error {
	stationPath, trackPath, err := networkPaths(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(stationPath), 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := netio.WriteNetwork(n, stationPath, trackPath); err != nil {
		return fmt.Errorf("save network: %w", err)
	}
	c.Logger.Debug("saved network", "stations", stationPath, "tracks", trackPath)
	return nil
}

// networkFingerprint hashes the network's full CSV form. Any change to a
// station or track changes the fingerprint, so cached map artifacts for
// an older network naturally miss.
func networkFingerprint(n *railnet.Network) (string, error) {
	var buf bytes.Buffer
	if err := netio.WriteStations(n, &buf); err != nil {
		return "", err
	}
	if err := netio.WriteTracks(n, &buf); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}

// seedLine describes one line of the built-in network.
type seedLine struct {
	line     railnet.Line
	baseTime int
	baseDist int
	stations []string
}

// seedLines is the built-in Mumbai suburban network. Stations appearing
// on more than one line (Dadar, CST) become interchanges.
var seedLines = []seedLine{
	{
		line:     railnet.LineWestern,
		baseTime: 3,
		baseDist: 2,
		stations: []string{"Churchgate", "Marine Lines", "Charni Road", "Grant Road", "Mumbai Central", "Dadar", "Bandra", "Andheri", "Borivali", "Virar"},
	},
	{
		line:     railnet.LineCentral,
		baseTime: 4,
		baseDist: 3,
		stations: []string{"CST", "Masjid", "Sandhurst Road", "Byculla", "Dadar", "Kurla", "Ghatkopar", "Thane", "Kalyan", "Dombivli", "Ulhasnagar"},
	},
	{
		line:     railnet.LineHarbour,
		baseTime: 5,
		baseDist: 4,
		stations: []string{"CST", "Dockyard Road", "Govandi", "Vashi", "Nerul", "Panvel"},
	},
}

// seedNetwork builds the built-in network: three lines joined at their
// shared stations, with deterministic per-segment times and distances.
func seedNetwork() *railnet.Network {
	total := 0
	for _, l := range seedLines {
		total += len(l.stations)
	}
	n := railnet.New(total)

	addOrGet := func(name string, line railnet.Line) int {
		if id, ok := n.Lookup(name); ok {
			// A station seen on a second line is an interchange.
			_ = n.MarkInterchange(id)
			return id
		}
		id, err := n.AddStation(railnet.Station{Name: name, Line: line, Platforms: 4})
		if err != nil {
			panic(fmt.Sprintf("seed network: %v", err))
		}
		return id
	}

	for _, l := range seedLines {
		prev := -1
		for i, name := range l.stations {
			curr := addOrGet(name, l.line)
			if prev >= 0 {
				timeMin := l.baseTime + i%3
				distKm := l.baseDist + i%2
				if err := n.AddTrack(prev, curr, timeMin, distKm, l.line); err != nil {
					panic(fmt.Sprintf("seed network: %v", err))
				}
			}
			prev = curr
		}
	}
	return n
}
