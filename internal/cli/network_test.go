package cli

import (
	"os"
	"testing"
)

func TestSeedNetwork(t *testing.T) {
	n := seedNetwork()

	// 10 western + 11 central + 6 harbour, minus Dadar and CST which
	// each appear on two lines.
	if got := n.StationCount(); got != 25 {
		t.Errorf("StationCount = %d, want 25", got)
	}

	for _, name := range []string{"Dadar", "CST"} {
		id, ok := n.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%s) failed", name)
		}
		s, err := n.Station(id)
		if err != nil {
			t.Fatalf("Station(%d): %v", id, err)
		}
		if !s.Interchange {
			t.Errorf("%s should be an interchange", name)
		}
	}

	// The whole network is connected through the interchanges.
	churchgate, _ := n.Lookup("Churchgate")
	reachable, err := n.Reachable(churchgate)
	if err != nil {
		t.Fatalf("Reachable: %v", err)
	}
	if len(reachable) != n.StationCount() {
		t.Errorf("reachable = %d stations, want all %d", len(reachable), n.StationCount())
	}

	// Cross-line journey routes through Dadar.
	thane, ok := n.Lookup("Thane")
	if !ok {
		t.Fatal("Lookup(Thane) failed")
	}
	route, found, err := n.ShortestRoute(churchgate, thane)
	if err != nil || !found {
		t.Fatalf("ShortestRoute = (_, %v, %v), want a route", found, err)
	}
	dadar, _ := n.Lookup("Dadar")
	onPath := false
	for _, id := range route.Path {
		if id == dadar {
			onPath = true
		}
	}
	if !onPath {
		t.Errorf("route %v should pass through Dadar (%d)", route.Path, dadar)
	}
}

func TestNetworkSaveLoadRoundTrip(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cfg := defaultConfig()
	cfg.DataDir = t.TempDir()

	orig := seedNetwork()
	if err := c.saveNetwork(cfg, orig); err != nil {
		t.Fatalf("saveNetwork: %v", err)
	}

	loaded, err := c.loadNetwork(cfg)
	if err != nil {
		t.Fatalf("loadNetwork: %v", err)
	}
	if loaded.StationCount() != orig.StationCount() {
		t.Errorf("StationCount = %d, want %d", loaded.StationCount(), orig.StationCount())
	}

	of, lf := orig.Tracks(), loaded.Tracks()
	if len(of) != len(lf) {
		t.Fatalf("Tracks = %d, want %d", len(lf), len(of))
	}
}

func TestLoadNetworkSeedsWhenMissing(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cfg := defaultConfig()
	cfg.DataDir = t.TempDir()

	n, err := c.loadNetwork(cfg)
	if err != nil {
		t.Fatalf("loadNetwork: %v", err)
	}
	if n.StationCount() != 25 {
		t.Errorf("StationCount = %d, want seeded 25", n.StationCount())
	}
}

func TestNetworkPathsRejectsPathFilenames(t *testing.T) {
	tests := []struct {
		name     string
		stations string
		tracks   string
	}{
		{"traversal in stations file", "../stations.csv", "tracks.csv"},
		{"absolute tracks file", "stations.csv", "/etc/passwd"},
		{"hidden stations file", ".stations.csv", "tracks.csv"},
		{"empty tracks file", "stations.csv", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.DataDir = t.TempDir()
			cfg.StationsFile = tt.stations
			cfg.TracksFile = tt.tracks
			if _, _, err := networkPaths(cfg); err == nil {
				t.Errorf("networkPaths(%q, %q) succeeded, want error", tt.stations, tt.tracks)
			}
		})
	}
}

func TestNetworkFingerprint(t *testing.T) {
	a := seedNetwork()
	b := seedNetwork()

	fa, err := networkFingerprint(a)
	if err != nil {
		t.Fatalf("networkFingerprint: %v", err)
	}
	fb, err := networkFingerprint(b)
	if err != nil {
		t.Fatalf("networkFingerprint: %v", err)
	}
	if fa != fb {
		t.Error("identical networks should share a fingerprint")
	}

	if err := b.BlockTrack(0, 1); err != nil {
		t.Fatalf("BlockTrack: %v", err)
	}
	fb2, err := networkFingerprint(b)
	if err != nil {
		t.Fatalf("networkFingerprint: %v", err)
	}
	if fa == fb2 {
		t.Error("blocking a track should change the fingerprint")
	}
}

func TestResolveStation(t *testing.T) {
	n := seedNetwork()

	id, err := resolveStation(n, "Dadar")
	if err != nil {
		t.Fatalf("resolveStation by name: %v", err)
	}
	if s, _ := n.Station(id); s.Name != "Dadar" {
		t.Errorf("resolved %q, want Dadar", s.Name)
	}

	if _, err := resolveStation(n, "0"); err != nil {
		t.Errorf("resolveStation by id: %v", err)
	}
	if _, err := resolveStation(n, "999"); err == nil {
		t.Error("resolveStation with out-of-range id should fail")
	}
	if _, err := resolveStation(n, "Atlantis"); err == nil {
		t.Error("resolveStation with unknown name should fail")
	}
}
