package railnet

import "github.com/railnav/railnav/pkg/container"

// Reachable returns every station reachable from start over unblocked
// tracks, in breadth-first discovery order. The start station is always
// first. Blocked tracks (time raised to Inf) are treated as absent.
//
// Stations are marked visited when enqueued, not when dequeued, so no
// station enters the frontier twice. Complexity O(V+E).
// Returns ErrInvalidStation if start is out of range.
func (n *Network) Reachable(start int) ([]int, error) {
	if err := n.check(start); err != nil {
		return nil, err
	}

	visited := make([]bool, len(n.stations))
	order := make([]int, 0, len(n.stations))

	var frontier container.Queue[int]
	visited[start] = true
	frontier.Push(start)

	for !frontier.Empty() {
		u, err := frontier.Pop()
		if err != nil {
			break
		}
		order = append(order, u)
		for _, t := range n.adj[u] {
			if t.Time >= Inf {
				continue
			}
			if !visited[t.To] {
				visited[t.To] = true
				frontier.Push(t.To)
			}
		}
	}

	return order, nil
}
