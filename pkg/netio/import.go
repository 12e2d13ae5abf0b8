package netio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	apperrors "github.com/railnav/railnav/pkg/errors"
	"github.com/railnav/railnav/pkg/railnet"
)

// ReadNetwork decodes a station CSV and a track CSV into a new network.
//
// The station file must have the header
//
//	id,name,line,platforms,interchange
//
// with ids numbered 0..n-1 in row order. The track file must have the
// header
//
//	u,v,time_min,dist_km,line
//
// where u and v reference station ids. The returned network's capacity
// equals the number of stations read.
func ReadNetwork(stations, tracks io.Reader) (*railnet.Network, error) {
	rows, err := readRows(stations, stationHeader)
	if err != nil {
		return nil, fmt.Errorf("stations: %w", err)
	}

	n := railnet.New(len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("stations row %d: bad id %q", i+1, row[0])
		}
		if id != i {
			return nil, fmt.Errorf("stations row %d: id %d out of order", i+1, id)
		}
		// Names flow into filenames and rendered labels, so data from
		// hand-edited CSVs gets the same screening as CLI input.
		if err := apperrors.ValidateStationName(row[1]); err != nil {
			return nil, fmt.Errorf("station %d: %w", id, err)
		}
		platforms, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("station %d: bad platforms %q", id, row[3])
		}
		interchange, err := strconv.ParseBool(row[4])
		if err != nil {
			return nil, fmt.Errorf("station %d: bad interchange %q", id, row[4])
		}
		s := railnet.Station{
			Name:        row[1],
			Line:        railnet.Line(row[2]),
			Platforms:   platforms,
			Interchange: interchange,
		}
		if _, err := n.AddStation(s); err != nil {
			return nil, fmt.Errorf("station %d: %w", id, err)
		}
	}

	rows, err = readRows(tracks, trackHeader)
	if err != nil {
		return nil, fmt.Errorf("tracks: %w", err)
	}
	for i, row := range rows {
		u, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("tracks row %d: bad u %q", i+1, row[0])
		}
		v, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("tracks row %d: bad v %q", i+1, row[1])
		}
		timeMin, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("tracks row %d: bad time %q", i+1, row[2])
		}
		distKm, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("tracks row %d: bad dist %q", i+1, row[3])
		}
		if err := n.AddTrack(u, v, timeMin, distKm, railnet.Line(row[4])); err != nil {
			return nil, fmt.Errorf("track %d-%d: %w", u, v, err)
		}
	}
	return n, nil
}

// ReadNetworkFiles opens both paths and reads them with [ReadNetwork].
func ReadNetworkFiles(stationPath, trackPath string) (*railnet.Network, error) {
	sf, err := os.Open(stationPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", stationPath, err)
	}
	defer sf.Close()

	tf, err := os.Open(trackPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", trackPath, err)
	}
	defer tf.Close()

	return ReadNetwork(sf, tf)
}

// readRows reads all records from r, checks the header matches want, and
// returns the data rows.
func readRows(r io.Reader, want []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(want)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	for i, col := range want {
		if records[0][i] != col {
			return nil, fmt.Errorf("bad header: got %q, want %q", records[0], want)
		}
	}
	return records[1:], nil
}
