package graph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCodecProperties uses property-based testing to verify that the
// interchange codec round-trips arbitrary well-formed graphs.
func TestCodecProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Coordinates are drawn from a bounded range; the codec itself is
	// range-agnostic but gopter's unbounded float generator produces
	// NaN-adjacent extremes the model rejects by contract.
	coordGen := gen.Float64Range(-1e6, 1e6)

	properties.Property("format then parse preserves topology and positions", prop.ForAll(
		func(xs []float64, ys []float64, rawEdges []int) bool {
			n := len(xs)
			if len(ys) < n {
				n = len(ys)
			}
			positions := make([]Point, n)
			for i := 0; i < n; i++ {
				positions[i] = Point{X: xs[i], Y: ys[i]}
			}

			var edges []Edge
			if n > 0 {
				for i := 0; i+1 < len(rawEdges); i += 2 {
					edges = append(edges, Edge{
						Source: abs(rawEdges[i]) % n,
						Target: abs(rawEdges[i+1]) % n,
					})
				}
			}

			g, err := New(positions, edges)
			if err != nil {
				return false
			}
			text, err := Format(g, nil)
			if err != nil {
				return false
			}
			g2, err := Parse(text)
			if err != nil {
				return false
			}

			if g2.NodeCount() != g.NodeCount() || g2.EdgeCount() != g.EdgeCount() {
				return false
			}
			for i := 0; i < g.NodeCount(); i++ {
				if g2.Position(i) != g.Position(i) {
					return false
				}
			}
			e1, e2 := g.Edges(), g2.Edges()
			for i := range e1 {
				if e1[i] != e2[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(coordGen),
		gen.SliceOf(coordGen),
		gen.SliceOf(gen.IntRange(0, 1<<20)),
	))

	properties.TestingRun(t)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
