package netio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/railnav/railnav/pkg/railnet"
)

func buildNetwork(t *testing.T) *railnet.Network {
	t.Helper()
	n := railnet.New(3)
	stations := []railnet.Station{
		{Name: "Churchgate", Line: railnet.LineWestern, Platforms: 4},
		{Name: "Dadar", Line: railnet.LineWestern, Platforms: 6, Interchange: true},
		{Name: "Andheri", Line: railnet.LineWestern, Platforms: 5},
	}
	for _, s := range stations {
		if _, err := n.AddStation(s); err != nil {
			t.Fatalf("AddStation(%s): %v", s.Name, err)
		}
	}
	if err := n.AddTrack(0, 1, 15, 9, railnet.LineWestern); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	if err := n.AddTrack(1, 2, 20, 12, railnet.LineWestern); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}
	return n
}

func TestRoundTrip(t *testing.T) {
	orig := buildNetwork(t)

	var sb, tb bytes.Buffer
	if err := WriteStations(orig, &sb); err != nil {
		t.Fatalf("WriteStations: %v", err)
	}
	if err := WriteTracks(orig, &tb); err != nil {
		t.Fatalf("WriteTracks: %v", err)
	}

	got, err := ReadNetwork(&sb, &tb)
	if err != nil {
		t.Fatalf("ReadNetwork: %v", err)
	}

	if got.StationCount() != orig.StationCount() {
		t.Fatalf("StationCount = %d, want %d", got.StationCount(), orig.StationCount())
	}
	for id := 0; id < orig.StationCount(); id++ {
		ws, _ := orig.Station(id)
		gs, err := got.Station(id)
		if err != nil {
			t.Fatalf("Station(%d): %v", id, err)
		}
		if gs != ws {
			t.Errorf("Station(%d) = %+v, want %+v", id, gs, ws)
		}
	}

	wantTracks := orig.Tracks()
	gotTracks := got.Tracks()
	if len(gotTracks) != len(wantTracks) {
		t.Fatalf("Tracks: got %d, want %d", len(gotTracks), len(wantTracks))
	}
	for i := range wantTracks {
		if gotTracks[i] != wantTracks[i] {
			t.Errorf("Tracks[%d] = %+v, want %+v", i, gotTracks[i], wantTracks[i])
		}
	}

	// Routing works on the reimported network.
	route, ok, err := got.ShortestRoute(0, 2)
	if err != nil || !ok {
		t.Fatalf("ShortestRoute = (_, %v, %v), want a route", ok, err)
	}
	if route.Time != 35 || route.Dist != 21 {
		t.Errorf("route = %d min / %d km, want 35 / 21", route.Time, route.Dist)
	}
}

func TestWriteNetworkFiles(t *testing.T) {
	dir := t.TempDir()
	sp := filepath.Join(dir, "stations.csv")
	tp := filepath.Join(dir, "tracks.csv")

	if err := WriteNetwork(buildNetwork(t), sp, tp); err != nil {
		t.Fatalf("WriteNetwork: %v", err)
	}
	got, err := ReadNetworkFiles(sp, tp)
	if err != nil {
		t.Fatalf("ReadNetworkFiles: %v", err)
	}
	if got.StationCount() != 3 {
		t.Errorf("StationCount = %d, want 3", got.StationCount())
	}
}

func TestReadNetworkErrors(t *testing.T) {
	goodStations := "id,name,line,platforms,interchange\n0,Churchgate,western,4,false\n"
	goodTracks := "u,v,time_min,dist_km,line\n"

	tests := []struct {
		name     string
		stations string
		tracks   string
	}{
		{"bad station header", "oops\n", goodTracks},
		{"station id out of order", "id,name,line,platforms,interchange\n1,Churchgate,western,4,false\n", goodTracks},
		{"bad platforms", "id,name,line,platforms,interchange\n0,Churchgate,western,many,false\n", goodTracks},
		{"bad track header", goodStations, "a,b\n"},
		{"track unknown station", goodStations, "u,v,time_min,dist_km,line\n0,9,5,3,western\n"},
		{"empty stations file", "", goodTracks},
		{"station name with traversal", "id,name,line,platforms,interchange\n0,../etc,western,4,false\n", goodTracks},
		{"empty station name", "id,name,line,platforms,interchange\n0,,western,4,false\n", goodTracks},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadNetwork(strings.NewReader(tt.stations), strings.NewReader(tt.tracks))
			if err == nil {
				t.Error("ReadNetwork succeeded, want error")
			}
		})
	}
}
