package netio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/railnav/railnav/pkg/railnet"
)

var stationHeader = []string{"id", "name", "line", "platforms", "interchange"}
var trackHeader = []string{"u", "v", "time_min", "dist_km", "line"}

// WriteStations encodes the network's stations as CSV and writes them to w.
// Stations appear in id order, one row per station.
func WriteStations(n *railnet.Network, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(stationHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, s := range n.Stations() {
		row := []string{
			strconv.Itoa(s.ID),
			s.Name,
			string(s.Line),
			strconv.Itoa(s.Platforms),
			strconv.FormatBool(s.Interchange),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("station %d: %w", s.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTracks encodes the network's tracks as CSV and writes them to w.
// Each bidirectional track appears once, with u < v.
func WriteTracks(n *railnet.Network, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(trackHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range n.Tracks() {
		row := []string{
			strconv.Itoa(t.U),
			strconv.Itoa(t.V),
			strconv.Itoa(t.Time),
			strconv.Itoa(t.Dist),
			string(t.Line),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("track %d-%d: %w", t.U, t.V, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteNetwork writes the network to a station file and a track file,
// creating or truncating both.
func WriteNetwork(n *railnet.Network, stationPath, trackPath string) error {
	sf, err := os.Create(stationPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", stationPath, err)
	}
	defer sf.Close()
	if err := WriteStations(n, sf); err != nil {
		return fmt.Errorf("write %s: %w", stationPath, err)
	}

	tf, err := os.Create(trackPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", trackPath, err)
	}
	defer tf.Close()
	if err := WriteTracks(n, tf); err != nil {
		return fmt.Errorf("write %s: %w", trackPath, err)
	}
	return nil
}
