// Package graph provides the graph model, interchange codec, and distance
// oracle for the Graphscape layout engine.
//
// This package defines the canonical wire format for Graphscape's graph data:
// a compact text grammar that carries a graph and its node positions across
// process and language boundaries.
//
// # Interchange Format
//
// A graph is encoded as a node list followed by an edge list:
//
//	nodes:0.5,0.5;1,0;0,1;edges:0-1,1-2
//
// The nodes: section is a ;-separated list of x,y coordinate pairs; the
// position of a pair in the list defines the node's index. The edges:
// section is a ,-separated list of source-target index pairs. Both markers
// are mandatory and appear exactly once, in that order. Empty and trailing
// segments are ignored. Violations are reported as MALFORMED_GRAPH errors.
//
// Common operations:
//
//	g, _ := graph.Parse("nodes:0,0;1,1;edges:0-1")  // text → Graph
//	text, _ := graph.Format(g, positions)           // Graph + result → text
//
// # Core Types
//
//   - [Graph]: immutable node/edge structure with validated edge indices
//   - [Point]: a 2-D position (the engine's sole output)
//   - [Edge]: an unordered pair of node indices
//   - [Matrix]: all-pairs graph-theoretic distances from [Distances]
//
// # Distance Oracle
//
// [Distances] computes all-pairs shortest-path distances by breadth-first
// traversal from every node. Disconnected pairs carry +Inf; consumers pick
// a finite fallback via [Matrix.Finite] instead of propagating infinities
// into arithmetic.
//
// # Concurrency
//
// A Graph is immutable after construction and safe for concurrent reads.
// A Matrix is read-only once computed and may be shared across algorithms
// within one layout invocation.
package graph
