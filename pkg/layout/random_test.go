package layout

import (
	"testing"

	"github.com/graphscape/graphscape/pkg/graph"
)

func mustParse(t *testing.T, text string) *graph.Graph {
	t.Helper()
	g, err := graph.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	return g
}

func TestRandom_Bounds(t *testing.T) {
	g := mustParse(t, "nodes:0,0;0,0;0,0;0,0;0,0;edges:")
	pos, err := Random(g, Defaults())
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if len(pos) != 5 {
		t.Fatalf("len(pos) = %d, want 5", len(pos))
	}
	for i, p := range pos {
		if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
			t.Errorf("pos[%d] = %v, want within [0,1)²", i, p)
		}
	}
}

func TestRandom_DeterministicPerSeed(t *testing.T) {
	g := mustParse(t, "nodes:0,0;0,0;0,0;edges:")

	p := Defaults()
	p.Seed = 7
	a, err := Random(g, p)
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	b, err := Random(g, p)
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pos[%d] differs across runs with seed 7: %v vs %v", i, a[i], b[i])
		}
	}

	p.Seed = 8
	c, err := Random(g, p)
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("seeds 7 and 8 produced identical layouts")
	}
}

func TestRandom_EmptyGraph(t *testing.T) {
	g := mustParse(t, "nodes:edges:")
	pos, err := Random(g, Defaults())
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if len(pos) != 0 {
		t.Errorf("len(pos) = %d, want 0", len(pos))
	}
}
