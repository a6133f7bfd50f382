package layout

import (
	"math"

	"github.com/graphscape/graphscape/pkg/graph"
)

// coincidenceEps is the distance below which two positions are treated
// as coincident and separated along a deterministic direction.
const coincidenceEps = 1e-9

// StressMajorize minimizes the stress function
//
//	Σ_{i<j} w_ij · (‖p_i − p_j‖ − d_ij)²
//
// where d_ij is the graph-theoretic distance between nodes i and j and
// w_ij = 1/d_ij². Disconnected pairs use a finite fallback of twice the
// graph's diameter. Each of p.Iterations rounds moves every node to the
// weighted average of its target points — a Gauss-Seidel majorization
// update that never increases the stress.
//
// Positions are seeded from the input graph; a degenerate input
// configuration (all nodes coincident) is reseeded on the unit circle,
// since majorization only refines an existing spread. Iterations == 0
// returns the seed positions unchanged.
func StressMajorize(g *graph.Graph, p Params) ([]graph.Point, error) {
	if err := p.checkIterations(); err != nil {
		return nil, err
	}

	pos := g.Positions()
	n := len(pos)
	if n == 0 || p.Iterations == 0 {
		return pos, nil
	}

	if coincident(pos) {
		pos = circularPositions(n)
	}

	dist := graph.Distances(g)
	fallback := fallbackDistance(dist)

	for round := 0; round < p.Iterations; round++ {
		majorizeRound(pos, dist, fallback)
	}

	return pos, nil
}

// majorizeRound performs one Gauss-Seidel sweep: each node in turn moves
// to the weighted average of the points at target distance d_ij along the
// direction of every other node. Updated positions are visible to later
// nodes within the same sweep, which keeps the update monotone.
func majorizeRound(pos []graph.Point, dist graph.Matrix, fallback float64) {
	n := len(pos)
	for i := 0; i < n; i++ {
		var acc graph.Point
		var sumW float64
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d := dist.Finite(i, j, fallback)
			if d == 0 {
				continue
			}
			w := 1 / (d * d)

			delta := pos[i].Sub(pos[j])
			norm := delta.Norm()
			var target graph.Point
			if norm > coincidenceEps {
				target = pos[j].Add(delta.Scale(d / norm))
			} else {
				// Coincident pair: separate along a direction derived
				// from the indices so the result stays deterministic.
				angle := 2 * math.Pi * float64(i*n+j) / float64(n*n)
				target = pos[j].Add(graph.Point{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(d))
			}

			acc = acc.Add(target.Scale(w))
			sumW += w
		}
		if sumW > 0 {
			pos[i] = acc.Scale(1 / sumW)
		}
	}
}

// Stress computes Σ_{i<j} w_ij (‖p_i − p_j‖ − d_ij)² with w_ij = 1/d_ij²,
// substituting fallback for disconnected pairs. Zero-distance pairs are
// skipped. Tests use it to check the monotone-decrease guarantee.
func Stress(positions []graph.Point, dist graph.Matrix, fallback float64) float64 {
	total := 0.0
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := dist.Finite(i, j, fallback)
			if d == 0 {
				continue
			}
			diff := positions[i].Dist(positions[j]) - d
			total += diff * diff / (d * d)
		}
	}
	return total
}

// fallbackDistance picks the finite stand-in for disconnected pairs:
// twice the largest finite distance, or 1 for an edgeless graph.
func fallbackDistance(dist graph.Matrix) float64 {
	if max := dist.MaxFinite(); max > 0 {
		return 2 * max
	}
	return 1
}

// coincident reports whether every position lies within coincidenceEps of
// the first one, i.e. the configuration carries no usable geometry.
func coincident(pos []graph.Point) bool {
	for _, p := range pos[1:] {
		if p.Dist(pos[0]) > coincidenceEps {
			return false
		}
	}
	return true
}
