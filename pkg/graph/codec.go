package graph

import (
	"strconv"
	"strings"

	"github.com/graphscape/graphscape/pkg/errors"
)

// Markers of the interchange grammar. Both are mandatory and appear
// exactly once, in this order.
const (
	nodesMarker = "nodes:"
	edgesMarker = "edges:"
)

// Parse decodes interchange text into a Graph.
//
// The grammar is nodes:<x,y;x,y;...>edges:<s-t,s-t,...>. Node segments are
// ;-separated x,y float pairs whose list position defines the node index;
// edge segments are ,-separated source-target integer pairs. Empty and
// trailing segments are ignored.
//
// Parse returns a MALFORMED_GRAPH error when the nodes: prefix or edges:
// marker is absent, when a segment does not split into exactly two numeric
// components, or when an edge index falls outside [0, nodeCount).
func Parse(text string) (*Graph, error) {
	if !strings.HasPrefix(text, nodesMarker) {
		return nil, errors.New(errors.ErrCodeMalformedGraph, "missing %q prefix", nodesMarker)
	}
	rest := text[len(nodesMarker):]

	nodePart, edgePart, found := strings.Cut(rest, edgesMarker)
	if !found {
		return nil, errors.New(errors.ErrCodeMalformedGraph, "missing %q marker", edgesMarker)
	}
	if strings.Contains(edgePart, edgesMarker) || strings.Contains(edgePart, nodesMarker) {
		return nil, errors.New(errors.ErrCodeMalformedGraph, "markers must appear exactly once")
	}

	positions, err := parseNodes(nodePart)
	if err != nil {
		return nil, err
	}
	edges, err := parseEdges(edgePart)
	if err != nil {
		return nil, err
	}

	return New(positions, edges)
}

// Format encodes a Graph and its computed positions as interchange text.
// positions must be parallel to the graph's nodes (one per node, same
// order); this is the contract with downstream consumers. Passing nil
// reuses the graph's input positions.
//
// Format is the inverse of [Parse]: the output reproduces the grammar, so
// Format(Parse(s)) carries the same node count, node order, and edge
// multiset as s.
func Format(g *Graph, positions []Point) (string, error) {
	if positions == nil {
		positions = g.positions
	}
	if len(positions) != g.NodeCount() {
		return "", errors.New(errors.ErrCodeMalformedGraph, "position count %d does not match node count %d", len(positions), g.NodeCount())
	}

	var b strings.Builder
	b.WriteString(nodesMarker)
	for _, p := range positions {
		b.WriteString(formatFloat(p.X))
		b.WriteByte(',')
		b.WriteString(formatFloat(p.Y))
		b.WriteByte(';')
	}
	b.WriteString(edgesMarker)
	for i, e := range g.edges {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(e.Source))
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(e.Target))
	}
	return b.String(), nil
}

func parseNodes(part string) ([]Point, error) {
	var positions []Point
	for _, seg := range strings.Split(part, ";") {
		if seg == "" {
			continue
		}
		xs, ys, found := strings.Cut(seg, ",")
		if !found || strings.Contains(ys, ",") {
			return nil, errors.New(errors.ErrCodeMalformedGraph, "node segment %q: want exactly two components", seg)
		}
		x, errX := strconv.ParseFloat(xs, 64)
		y, errY := strconv.ParseFloat(ys, 64)
		if errX != nil || errY != nil {
			return nil, errors.New(errors.ErrCodeMalformedGraph, "node segment %q: not a numeric pair", seg)
		}
		positions = append(positions, Point{X: x, Y: y})
	}
	return positions, nil
}

func parseEdges(part string) ([]Edge, error) {
	var edges []Edge
	for _, seg := range strings.Split(part, ",") {
		if seg == "" {
			continue
		}
		ss, ts, found := strings.Cut(seg, "-")
		if !found || strings.Contains(ts, "-") {
			return nil, errors.New(errors.ErrCodeMalformedGraph, "edge segment %q: want exactly two components", seg)
		}
		s, errS := strconv.Atoi(ss)
		t, errT := strconv.Atoi(ts)
		if errS != nil || errT != nil {
			return nil, errors.New(errors.ErrCodeMalformedGraph, "edge segment %q: not an integer pair", seg)
		}
		edges = append(edges, Edge{Source: s, Target: t})
	}
	return edges, nil
}

// formatFloat renders a coordinate with the shortest representation that
// round-trips through ParseFloat.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
