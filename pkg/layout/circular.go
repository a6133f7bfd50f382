package layout

import (
	"math"

	"github.com/graphscape/graphscape/pkg/graph"
)

// Circular places the n nodes evenly spaced on the unit circle: node i
// at angle 2πi/n. An empty graph yields an empty result. No parameters
// consumed; the renderer rescales the radius downstream.
func Circular(g *graph.Graph, _ Params) ([]graph.Point, error) {
	return circularPositions(g.NodeCount()), nil
}

// circularPositions is shared with stress majorization, which uses it as
// a non-degenerate seed configuration.
func circularPositions(n int) []graph.Point {
	positions := make([]graph.Point, n)
	if n == 0 {
		return positions
	}
	step := 2 * math.Pi / float64(n)
	for i := range positions {
		angle := step * float64(i)
		positions[i] = graph.Point{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return positions
}
