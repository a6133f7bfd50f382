package graph

import (
	"math/rand/v2"

	"github.com/graphscape/graphscape/pkg/errors"
)

// Generate builds a random graph with the given node and edge counts.
// Node positions are uniform in [0,1)²; each edge connects two distinct
// random nodes (self-loops are never generated, duplicates may be).
// Output is deterministic for a given seed.
//
// Returns an INVALID_PARAMETERS error for negative counts, or for a
// positive edge count on a graph with fewer than two nodes.
func Generate(nodes, edges int, seed uint64) (*Graph, error) {
	if nodes < 0 || edges < 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameters, "node and edge counts must be non-negative, got %d nodes, %d edges", nodes, edges)
	}
	if edges > 0 && nodes < 2 {
		return nil, errors.New(errors.ErrCodeInvalidParameters, "cannot place %d edges on %d nodes", edges, nodes)
	}

	rng := rand.New(rand.NewPCG(seed, seed))

	positions := make([]Point, nodes)
	for i := range positions {
		positions[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}

	es := make([]Edge, edges)
	for i := range es {
		src := rng.IntN(nodes)
		dst := rng.IntN(nodes)
		for dst == src {
			dst = rng.IntN(nodes)
		}
		es[i] = Edge{Source: src, Target: dst}
	}

	return New(positions, es)
}
