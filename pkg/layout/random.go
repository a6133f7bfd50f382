package layout

import (
	"math/rand/v2"

	"github.com/graphscape/graphscape/pkg/graph"
)

// Random assigns each node an independent uniform position inside the
// unit square [0,1)². The layout is deterministic for a given Seed;
// downstream renderers rescale into their viewport. No iteration, no
// other parameters consumed.
func Random(g *graph.Graph, p Params) ([]graph.Point, error) {
	return randomPositions(g.NodeCount(), p.Seed), nil
}

// randomPositions generates n seeded uniform positions in [0,1)².
func randomPositions(n int, seed uint64) []graph.Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	positions := make([]graph.Point, n)
	for i := range positions {
		positions[i] = graph.Point{X: rng.Float64(), Y: rng.Float64()}
	}
	return positions
}
