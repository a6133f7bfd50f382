package graph

import "math"

// Matrix holds all-pairs graph-theoretic distances. Matrix[i][j] is the
// length of the shortest path between nodes i and j, with edges counted
// at unit length. Disconnected pairs carry +Inf.
//
// A Matrix is read-only once computed and may be shared by any number of
// algorithms within one layout invocation.
type Matrix [][]float64

// Distances computes all-pairs shortest-path distances by running a
// breadth-first traversal from every node: O(V·(V+E)) for unweighted
// graphs. Edges are traversed in both directions; self-loops contribute
// nothing to distances.
func Distances(g *Graph) Matrix {
	n := g.NodeCount()

	adj := make([][]int, n)
	for _, e := range g.edges {
		if e.Source == e.Target {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}

	m := make(Matrix, n)
	for i := range m {
		m[i] = bfs(adj, i, n)
	}
	return m
}

// Finite returns the distance between i and j, substituting fallback for
// disconnected pairs. Consumers use this instead of propagating infinities
// into arithmetic.
func (m Matrix) Finite(i, j int, fallback float64) float64 {
	if d := m[i][j]; !math.IsInf(d, 1) {
		return d
	}
	return fallback
}

// MaxFinite returns the largest finite distance in the matrix, or 0 when
// every off-diagonal pair is disconnected (or the matrix is empty).
func (m Matrix) MaxFinite() float64 {
	max := 0.0
	for i := range m {
		for _, d := range m[i] {
			if !math.IsInf(d, 1) && d > max {
				max = d
			}
		}
	}
	return max
}

func bfs(adj [][]int, start, n int) []float64 {
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0

	queue := []int{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, next := range adj[curr] {
			if math.IsInf(dist[next], 1) {
				dist[next] = dist[curr] + 1
				queue = append(queue, next)
			}
		}
	}
	return dist
}
