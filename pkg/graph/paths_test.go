package graph

import (
	"math"
	"testing"
)

func mustParse(t *testing.T, text string) *Graph {
	t.Helper()
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	return g
}

func TestDistances_PathGraph(t *testing.T) {
	// 0 - 1 - 2 - 3 - 4
	g := mustParse(t, "nodes:0,0;1,0;2,0;3,0;4,0;edges:0-1,1-2,2-3,3-4")
	m := Distances(g)

	want := [][]float64{
		{0, 1, 2, 3, 4},
		{1, 0, 1, 2, 3},
		{2, 1, 0, 1, 2},
		{3, 2, 1, 0, 1},
		{4, 3, 2, 1, 0},
	}
	for i := range want {
		for j := range want[i] {
			if m[i][j] != want[i][j] {
				t.Errorf("m[%d][%d] = %v, want %v", i, j, m[i][j], want[i][j])
			}
		}
	}
}

func TestDistances_Disconnected(t *testing.T) {
	g := mustParse(t, "nodes:0,0;1,0;2,0;edges:0-1")
	m := Distances(g)

	if !math.IsInf(m[0][2], 1) {
		t.Errorf("m[0][2] = %v, want +Inf", m[0][2])
	}
	if !math.IsInf(m[2][1], 1) {
		t.Errorf("m[2][1] = %v, want +Inf", m[2][1])
	}
	if m[0][1] != 1 {
		t.Errorf("m[0][1] = %v, want 1", m[0][1])
	}
}

func TestDistances_UndirectedAndSelfLoops(t *testing.T) {
	// Edges are undirected; self-loops contribute nothing.
	g := mustParse(t, "nodes:0,0;1,0;edges:1-0,0-0")
	m := Distances(g)

	if m[0][1] != 1 || m[1][0] != 1 {
		t.Errorf("m[0][1], m[1][0] = %v, %v, want 1, 1", m[0][1], m[1][0])
	}
	if m[0][0] != 0 {
		t.Errorf("m[0][0] = %v, want 0", m[0][0])
	}
}

func TestDistances_EmptyGraph(t *testing.T) {
	g := mustParse(t, "nodes:edges:")
	if m := Distances(g); len(m) != 0 {
		t.Errorf("len(Distances()) = %d, want 0", len(m))
	}
}

func TestMatrix_Finite(t *testing.T) {
	g := mustParse(t, "nodes:0,0;1,0;2,0;edges:0-1")
	m := Distances(g)

	if got := m.Finite(0, 1, 99); got != 1 {
		t.Errorf("Finite(0,1) = %v, want 1", got)
	}
	if got := m.Finite(0, 2, 99); got != 99 {
		t.Errorf("Finite(0,2) = %v, want fallback 99", got)
	}
}

func TestMatrix_MaxFinite(t *testing.T) {
	g := mustParse(t, "nodes:0,0;1,0;2,0;3,0;4,0;edges:0-1,1-2,2-3")
	m := Distances(g)
	if got := m.MaxFinite(); got != 3 {
		t.Errorf("MaxFinite() = %v, want 3", got)
	}

	isolated := mustParse(t, "nodes:0,0;1,0;edges:")
	if got := Distances(isolated).MaxFinite(); got != 0 {
		t.Errorf("MaxFinite() = %v, want 0 for edgeless graph", got)
	}
}
