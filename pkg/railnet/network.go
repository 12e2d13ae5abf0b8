package railnet

import (
	"errors"
	"math"
)

var (
	// ErrInvalidStation is returned when a caller-supplied station id is
	// outside [0, StationCount). Ids are never clamped.
	ErrInvalidStation = errors.New("invalid station id")

	// ErrNetworkFull is returned by [Network.AddStation] when the network
	// already holds the maximum number of stations fixed at construction.
	ErrNetworkFull = errors.New("network is at station capacity")
)

// Inf is the travel time assigned to blocked tracks. Edges at or above
// this weight are impassable and skipped by every traversal.
const Inf = math.MaxInt32

// Line identifies the service line a station or track belongs to.
type Line string

// Known service lines. The type is open: persisted data may carry lines
// outside this set and they round-trip unchanged.
const (
	LineWestern      Line = "western"
	LineCentral      Line = "central"
	LineHarbour      Line = "harbour"
	LineTransHarbour Line = "trans-harbour"
)

// Station is a node in the network. The ID is assigned by AddStation and
// is stable for the lifetime of the Network; Name is presentation only
// and never used for equality.
type Station struct {
	ID          int
	Name        string
	Line        Line
	Platforms   int
	Interchange bool
}

// Track is one directed adjacency entry. Every undirected track is stored
// as two Track values, one in each endpoint's list, each independently
// mutable: blocking must disable both explicitly.
type Track struct {
	To   int  // target station id
	Time int  // travel time in minutes; Inf when blocked
	Dist int  // distance in km
	Line Line // service line tag
}

// TrackRecord is an undirected track reported once per pair, with U < V.
// This is the form the CSV files store.
type TrackRecord struct {
	U, V int
	Time int
	Dist int
	Line Line
}

// NetworkStats summarizes the graph for reporting.
type NetworkStats struct {
	Stations  int
	Tracks    int     // undirected count
	AvgDegree float64 // directed entries per station
	Hub       int     // station id with the highest degree, -1 when no station has tracks
	HubDegree int
}

// Network is the graph store: stations indexed by dense id and an
// adjacency list of directed track entries. It is created with a fixed
// upper bound on station count and never shrinks.
//
// Network is not safe for concurrent use without external synchronization.
type Network struct {
	stations []Station
	adj      [][]Track
	byName   map[string]int // first registration wins
	max      int
}

// New creates an empty network that can hold up to maxStations stations.
func New(maxStations int) *Network {
	return &Network{
		stations: make([]Station, 0, maxStations),
		adj:      make([][]Track, 0, maxStations),
		byName:   make(map[string]int, maxStations),
		max:      maxStations,
	}
}

// AddStation registers a station and returns its assigned id. The ID
// field of s is ignored; ids are dense and allocated in registration
// order. Returns ErrNetworkFull once the construction bound is reached.
func (n *Network) AddStation(s Station) (int, error) {
	if len(n.stations) >= n.max {
		return 0, ErrNetworkFull
	}
	s.ID = len(n.stations)
	n.stations = append(n.stations, s)
	n.adj = append(n.adj, nil)
	if _, taken := n.byName[s.Name]; !taken {
		n.byName[s.Name] = s.ID
	}
	return s.ID, nil
}

// MarkInterchange flags a station as an interchange between lines.
// Returns ErrInvalidStation if id is out of range.
func (n *Network) MarkInterchange(id int) error {
	if err := n.check(id); err != nil {
		return err
	}
	n.stations[id].Interchange = true
	return nil
}

// AddTrack connects u and v with an undirected track, appending one
// directed entry to each endpoint's adjacency list. Parallel tracks
// between the same pair are permitted and coexist as separate entries.
// Returns ErrInvalidStation if either id is out of range.
func (n *Network) AddTrack(u, v, timeMin, distKm int, line Line) error {
	if err := n.check(u); err != nil {
		return err
	}
	if err := n.check(v); err != nil {
		return err
	}
	n.adj[u] = append(n.adj[u], Track{To: v, Time: timeMin, Dist: distKm, Line: line})
	n.adj[v] = append(n.adj[v], Track{To: u, Time: timeMin, Dist: distKm, Line: line})
	return nil
}

// BlockTrack marks every track between u and v as impassable by raising
// the travel time of all matching directed entries, in both directions,
// to Inf. The scan deliberately does not stop at the first match so that
// parallel tracks are all blocked. Blocking twice is a no-op.
// Returns ErrInvalidStation if either id is out of range.
func (n *Network) BlockTrack(u, v int) error {
	if err := n.check(u); err != nil {
		return err
	}
	if err := n.check(v); err != nil {
		return err
	}
	for i := range n.adj[u] {
		if n.adj[u][i].To == v {
			n.adj[u][i].Time = Inf
		}
	}
	for i := range n.adj[v] {
		if n.adj[v][i].To == u {
			n.adj[v][i].Time = Inf
		}
	}
	return nil
}

// Neighbors returns the directed adjacency entries for u.
// The slice is shared with the network: treat it as read-only.
// Returns ErrInvalidStation if u is out of range.
func (n *Network) Neighbors(u int) ([]Track, error) {
	if err := n.check(u); err != nil {
		return nil, err
	}
	return n.adj[u], nil
}

// StationCount returns the number of registered stations.
func (n *Network) StationCount() int { return len(n.stations) }

// Station returns the station with the given id.
// Returns ErrInvalidStation if id is out of range.
func (n *Network) Station(id int) (Station, error) {
	if err := n.check(id); err != nil {
		return Station{}, err
	}
	return n.stations[id], nil
}

// Stations returns a copy of all registered stations in id order.
func (n *Network) Stations() []Station {
	out := make([]Station, len(n.stations))
	copy(out, n.stations)
	return out
}

// Lookup resolves a station name to its id. When several stations share
// a name, the first registered wins.
func (n *Network) Lookup(name string) (int, bool) {
	id, ok := n.byName[name]
	return id, ok
}

// Tracks returns every undirected track exactly once, without the
// reciprocal duplicates the adjacency lists hold. For each pair the
// entry stored on the lower-numbered endpoint is reported.
func (n *Network) Tracks() []TrackRecord {
	var out []TrackRecord
	for u := range n.adj {
		for _, t := range n.adj[u] {
			if u < t.To {
				out = append(out, TrackRecord{U: u, V: t.To, Time: t.Time, Dist: t.Dist, Line: t.Line})
			}
		}
	}
	return out
}

// Stats computes summary statistics over the current graph.
func (n *Network) Stats() NetworkStats {
	s := NetworkStats{Stations: len(n.stations), Hub: -1}
	directed := 0
	for id, tracks := range n.adj {
		directed += len(tracks)
		if len(tracks) > s.HubDegree {
			s.HubDegree = len(tracks)
			s.Hub = id
		}
	}
	s.Tracks = directed / 2
	if len(n.stations) > 0 {
		s.AvgDegree = float64(directed) / float64(len(n.stations))
	}
	return s
}

func (n *Network) check(id int) error {
	if id < 0 || id >= len(n.stations) {
		return ErrInvalidStation
	}
	return nil
}
