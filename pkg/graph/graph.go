package graph

import (
	"math"

	"github.com/graphscape/graphscape/pkg/errors"
)

// Point is a 2-D position. Positions are the engine's sole output.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Norm() }

// Edge is an unordered pair of node indices. Both indices must lie in
// [0, nodeCount); this is enforced by [New] and [Parse]. Self-loops and
// duplicate edges are permitted and contribute additional force/stress
// terms to the algorithms that consume them.
type Edge struct {
	Source int
	Target int
}

// Graph owns an ordered sequence of node positions and a sequence of edges.
// Node identity is the position's index: 0-based, contiguous, and stable
// for the lifetime of the graph. A Graph is immutable once constructed;
// layout algorithms read it and return fresh position slices.
type Graph struct {
	positions []Point
	edges     []Edge
}

// New constructs a Graph from node positions and edges.
// Returns a MALFORMED_GRAPH error if any edge references an index outside
// [0, len(positions)), or if any position is not finite.
func New(positions []Point, edges []Edge) (*Graph, error) {
	for i, p := range positions {
		if !finite(p.X) || !finite(p.Y) {
			return nil, errors.New(errors.ErrCodeMalformedGraph, "node %d has non-finite position (%v, %v)", i, p.X, p.Y)
		}
	}
	n := len(positions)
	for _, e := range edges {
		if e.Source < 0 || e.Source >= n {
			return nil, errors.New(errors.ErrCodeMalformedGraph, "edge %d-%d: source index out of range [0, %d)", e.Source, e.Target, n)
		}
		if e.Target < 0 || e.Target >= n {
			return nil, errors.New(errors.ErrCodeMalformedGraph, "edge %d-%d: target index out of range [0, %d)", e.Source, e.Target, n)
		}
	}
	g := &Graph{
		positions: make([]Point, n),
		edges:     make([]Edge, len(edges)),
	}
	copy(g.positions, positions)
	copy(g.edges, edges)
	return g, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.positions) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Position returns the position of node i.
// Panics if i is out of range, matching slice semantics.
func (g *Graph) Position(i int) Point { return g.positions[i] }

// Positions returns a copy of all node positions in index order.
// The copy is the caller's to mutate; algorithms use it as the seed
// configuration for iterative refinement.
func (g *Graph) Positions() []Point {
	out := make([]Point, len(g.positions))
	copy(out, g.positions)
	return out
}

// Edges returns a copy of all edges in input order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
