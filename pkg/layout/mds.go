package layout

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/graphscape/graphscape/pkg/errors"
	"github.com/graphscape/graphscape/pkg/graph"
)

// ClassicalMDS recovers positions directly from the all-pairs distance
// matrix. The squared distances are double-centered into the Gram matrix
// B = -½·J·D²·J, whose two largest eigenpairs span the plane the nodes
// are projected onto: coordinate k of node i is v_k[i]·sqrt(λ_k).
// Negative eigenvalues — which arise when disconnected or inconsistent
// distances make B non-positive-semi-definite — are clamped to zero.
//
// p.Iterations optionally refines the closed-form result with that many
// stress-majorization rounds; 0 keeps the pure eigen-decomposition.
// A failed eigen factorization reports NUMERIC_DEGENERACY.
func ClassicalMDS(g *graph.Graph, p Params) ([]graph.Point, error) {
	if err := p.checkIterations(); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	if n == 0 {
		return []graph.Point{}, nil
	}
	if n == 1 {
		return []graph.Point{{}}, nil
	}

	dist := graph.Distances(g)
	fallback := fallbackDistance(dist)

	b := gramMatrix(dist, fallback)

	var es mat.EigenSym
	if ok := es.Factorize(b, true); !ok {
		return nil, errors.New(errors.ErrCodeNumericDegeneracy, "eigen-decomposition of the %d×%d distance Gram matrix failed", n, n)
	}

	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	// Eigenvalues arrive in ascending order; the top two live at the end.
	pos := make([]graph.Point, n)
	for axis, col := range []int{n - 1, n - 2} {
		lambda := values[col]
		if lambda < 0 {
			lambda = 0
		}
		scale := math.Sqrt(lambda)
		for i := 0; i < n; i++ {
			c := vectors.At(i, col) * scale
			if axis == 0 {
				pos[i].X = c
			} else {
				pos[i].Y = c
			}
		}
	}

	for round := 0; round < p.Iterations; round++ {
		majorizeRound(pos, dist, fallback)
	}

	return pos, nil
}

// gramMatrix double-centers the squared distance matrix:
// b_ij = -½ (d²_ij − rowMean_i − rowMean_j + grandMean).
func gramMatrix(dist graph.Matrix, fallback float64) *mat.SymDense {
	n := len(dist)

	sq := make([][]float64, n)
	rowMean := make([]float64, n)
	grand := 0.0
	for i := 0; i < n; i++ {
		sq[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			d := dist.Finite(i, j, fallback)
			sq[i][j] = d * d
			rowMean[i] += sq[i][j]
		}
		rowMean[i] /= float64(n)
		grand += rowMean[i]
	}
	grand /= float64(n)

	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			b.SetSym(i, j, -0.5*(sq[i][j]-rowMean[i]-rowMean[j]+grand))
		}
	}
	return b
}
