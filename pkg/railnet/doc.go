// Package railnet models a suburban rail network as a weighted,
// bidirectional graph and answers routing queries against it.
//
// # Architecture
//
// The package has two halves:
//
//   - [Network]: the graph store. Stations are dense, 0-based integer ids
//     assigned at registration; tracks are undirected edges carrying travel
//     time (minutes) and distance (km), stored as two independently mutable
//     directed adjacency entries.
//   - The query engine: [Network.ShortestRoute] (time-weighted Dijkstra
//     with path reconstruction) and [Network.Reachable] (breadth-first
//     reachability that respects blocked tracks).
//
// Track outages are simulated with [Network.BlockTrack], which raises the
// travel time of every matching directed entry to [Inf]. Queries observe
// mutations immediately; no results are cached.
//
// # Queries
//
//	net := railnet.New(64)
//	a, _ := net.AddStation(railnet.Station{Name: "Churchgate", Line: railnet.LineWestern})
//	b, _ := net.AddStation(railnet.Station{Name: "Dadar", Line: railnet.LineWestern})
//	_ = net.AddTrack(a, b, 12, 9, railnet.LineWestern)
//
//	route, ok, err := net.ShortestRoute(a, b)
//
// A disconnected pair is reported through ok=false, never through an
// error: "no route" is a legitimate query outcome.
//
// Fare is policy, not geometry. [FarePolicy] converts a routed distance
// into a price as a separate post-processing step so pricing rules can
// change without touching the engine.
//
// A Network is a single shared mutable structure with no internal
// locking; embedders must serialize mutations against concurrent queries.
package railnet
