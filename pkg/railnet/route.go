package railnet

import "github.com/railnav/railnav/pkg/container"

// Route is the result of a successful shortest-path query.
type Route struct {
	Path []int // station ids in src → dest order
	Time int   // total travel time in minutes
	Dist int   // total distance in km
}

// frontierEntry is one (accumulated time, station) pair awaiting
// exploration. Entries are never updated in place: re-relaxing a station
// pushes a fresh entry and the stale one is discarded when popped.
type frontierEntry struct {
	time    int
	station int
}

// ShortestRoute computes the minimum-total-time path from src to dest.
//
// The frontier is a binary min-heap ordered purely by accumulated time,
// with lazy deletion instead of decrease-key: an entry popped with a
// time greater than the station's current best distance is stale and
// must be skipped, or a finalized station would be re-expanded. When
// multiple equal-time paths exist, which one is returned depends on
// heap insertion order and is not defined.
//
// ok is false when no unblocked path connects src and dest; that is a
// legitimate outcome, not an error. err is non-nil only for an invalid
// station id. When src == dest the route is the single-node path with
// zero time and distance.
//
// Each call allocates fresh per-query tables; nothing survives between
// queries except the graph itself. Complexity O((V+E) log V).
func (n *Network) ShortestRoute(src, dest int) (Route, bool, error) {
	if err := n.check(src); err != nil {
		return Route{}, false, err
	}
	if err := n.check(dest); err != nil {
		return Route{}, false, err
	}

	dist := make([]int, len(n.stations))
	distKm := make([]int, len(n.stations))
	parent := make([]int, len(n.stations))
	for i := range dist {
		dist[i] = Inf
		parent[i] = -1
	}
	dist[src] = 0

	frontier := container.NewHeap(func(a, b frontierEntry) bool { return a.time < b.time })
	frontier.Push(frontierEntry{time: 0, station: src})

	for !frontier.Empty() {
		e, err := frontier.Pop()
		if err != nil {
			break
		}
		u := e.station
		if e.time > dist[u] {
			continue // stale entry, already improved by a later push
		}
		if u == dest {
			break
		}
		for _, t := range n.adj[u] {
			if t.Time >= Inf {
				continue // blocked track
			}
			if nd := dist[u] + t.Time; nd < dist[t.To] {
				dist[t.To] = nd
				distKm[t.To] = distKm[u] + t.Dist
				parent[t.To] = u
				frontier.Push(frontierEntry{time: nd, station: t.To})
			}
		}
	}

	if dist[dest] == Inf {
		return Route{}, false, nil
	}

	// The parent walk runs dest → src; a stack reverses it into the
	// src → dest order callers expect.
	var rev container.Stack[int]
	for at := dest; at != -1; at = parent[at] {
		rev.Push(at)
	}
	path := make([]int, 0, rev.Len())
	for !rev.Empty() {
		id, err := rev.Pop()
		if err != nil {
			break
		}
		path = append(path, id)
	}

	return Route{Path: path, Time: dist[dest], Dist: distKm[dest]}, true, nil
}
