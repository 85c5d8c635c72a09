// Package gstat: geodesic-distance statistics.
//
// Distances are unweighted shortest paths computed by one BFS per source.
// Directed graphs follow arc direction (out-neighbors only); undirected
// graphs traverse both ways.
package gstat

import (
	"math"

	"graphsig/core"
)

// AvgGeodesic returns a Statistic computing the mean shortest-path length
// over all ordered pairs of distinct nodes, with the disconnected-pair
// sentinel chosen by policy:
//
//   - DisconnectedExclude: unreachable pairs are dropped; ErrUndefined when
//     no pair is reachable at all.
//   - DisconnectedInf: one unreachable pair makes the average +Inf — the
//     honest value, not a silently skewed finite one.
//
// Complexity: O(V·(V+E)) — one BFS per source.
func AvgGeodesic(policy GeodesicPolicy) Statistic {
	return func(g *core.Graph) (float64, error) {
		if g == nil {
			return 0, ErrGraphNil
		}
		nodes := g.Nodes()
		n := len(nodes)
		if n < 2 {
			return 0, ErrUndefined
		}

		var sum float64
		var reached, unreached int
		for _, src := range nodes {
			dist, err := bfsDistances(g, src)
			if err != nil {
				return 0, err
			}
			for _, dst := range nodes {
				if dst == src {
					continue
				}
				if d, ok := dist[dst]; ok {
					sum += float64(d)
					reached++
				} else {
					unreached++
				}
			}
		}

		if policy == DisconnectedInf && unreached > 0 {
			return math.Inf(1), nil
		}
		if reached == 0 {
			return 0, ErrUndefined
		}

		return sum / float64(reached), nil
	}
}

// bfsDistances runs breadth-first search from src and returns hop counts
// for every reachable node (src included at 0). Neighbor expansion follows
// OutNeighborIDs, which already folds direction per graph mode.
// Complexity: O(V + E).
func bfsDistances(g *core.Graph, src string) (map[string]int, error) {
	dist := map[string]int{src: 0}
	queue := []string{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nbrs, err := g.OutNeighborIDs(cur)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = dist[cur] + 1
			queue = append(queue, nb)
		}
	}

	return dist, nil
}
