package graph

import (
	"math"
	"testing"

	"github.com/graphscape/graphscape/pkg/errors"
)

func TestNew_ValidatesEdgeIndices(t *testing.T) {
	positions := []Point{{0, 0}, {1, 1}, {2, 2}}

	tests := []struct {
		name    string
		edges   []Edge
		wantErr bool
	}{
		{name: "valid edges", edges: []Edge{{0, 1}, {1, 2}}, wantErr: false},
		{name: "self loop allowed", edges: []Edge{{1, 1}}, wantErr: false},
		{name: "duplicate edges allowed", edges: []Edge{{0, 1}, {0, 1}}, wantErr: false},
		{name: "source out of range", edges: []Edge{{5, 1}}, wantErr: true},
		{name: "target out of range", edges: []Edge{{0, 3}}, wantErr: true},
		{name: "negative source", edges: []Edge{{-1, 0}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(positions, tt.edges)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeMalformedGraph) {
				t.Errorf("New() code = %v, want %v", errors.GetCode(err), errors.ErrCodeMalformedGraph)
			}
		})
	}
}

func TestNew_RejectsNonFinitePositions(t *testing.T) {
	for _, p := range []Point{{math.NaN(), 0}, {0, math.Inf(1)}, {math.Inf(-1), 0}} {
		if _, err := New([]Point{p}, nil); !errors.Is(err, errors.ErrCodeMalformedGraph) {
			t.Errorf("New(%v) code = %v, want %v", p, errors.GetCode(err), errors.ErrCodeMalformedGraph)
		}
	}
}

func TestGraph_CopiesAreIndependent(t *testing.T) {
	g, err := New([]Point{{1, 2}, {3, 4}}, []Edge{{0, 1}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	pos := g.Positions()
	pos[0] = Point{99, 99}
	if got := g.Position(0); got != (Point{1, 2}) {
		t.Errorf("Position(0) = %v after mutating copy, want {1 2}", got)
	}

	edges := g.Edges()
	edges[0] = Edge{1, 1}
	if got := g.Edges()[0]; got != (Edge{0, 1}) {
		t.Errorf("Edges()[0] = %v after mutating copy, want {0 1}", got)
	}
}

func TestGraph_Counts(t *testing.T) {
	g, err := New([]Point{{0, 0}, {1, 0}}, []Edge{{0, 1}, {1, 0}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
}

func TestPoint_Geometry(t *testing.T) {
	p := Point{3, 4}
	if got := p.Norm(); got != 5 {
		t.Errorf("Norm() = %v, want 5", got)
	}
	if got := p.Dist(Point{0, 0}); got != 5 {
		t.Errorf("Dist() = %v, want 5", got)
	}
	if got := p.Add(Point{1, 1}); got != (Point{4, 5}) {
		t.Errorf("Add() = %v, want {4 5}", got)
	}
	if got := p.Sub(Point{1, 1}); got != (Point{2, 3}) {
		t.Errorf("Sub() = %v, want {2 3}", got)
	}
	if got := p.Scale(2); got != (Point{6, 8}) {
		t.Errorf("Scale() = %v, want {6 8}", got)
	}
}
