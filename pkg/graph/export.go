package graph

import (
	"encoding/json"
	"fmt"
	"os"
)

// Layout is the JSON serialization of a computed layout, intended for
// humans and downstream tooling. The interchange text format remains the
// engine's sole data contract; this representation is a readable mirror
// of the same information.
type Layout struct {
	// Algorithm is the name of the algorithm that produced the positions.
	Algorithm string `json:"algorithm,omitempty"`

	// Nodes holds one positioned node per graph node, in index order.
	Nodes []LayoutNode `json:"nodes"`

	// Edges holds the graph's edges in input order.
	Edges []LayoutEdge `json:"edges"`
}

// LayoutNode is a positioned node in a Layout.
type LayoutNode struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutEdge is an edge in a Layout.
type LayoutEdge struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// Export converts a graph and its computed positions into a Layout.
// positions must be parallel to the graph's nodes; nil reuses the graph's
// input positions.
func Export(g *Graph, positions []Point, algorithm string) Layout {
	if positions == nil {
		positions = g.positions
	}
	l := Layout{
		Algorithm: algorithm,
		Nodes:     make([]LayoutNode, len(positions)),
		Edges:     make([]LayoutEdge, len(g.edges)),
	}
	for i, p := range positions {
		l.Nodes[i] = LayoutNode{X: p.X, Y: p.Y}
	}
	for i, e := range g.edges {
		l.Edges[i] = LayoutEdge{Source: e.Source, Target: e.Target}
	}
	return l
}

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
