// Package layout computes 2-D spatial layouts for graphs.
//
// The package provides six interchangeable algorithms producing node
// positions from a [graph.Graph], and an [Engine] that dispatches on an
// algorithm name over the interchange text format.
//
// # Algorithms
//
//   - random: uniform positions in [0,1)², seeded and deterministic
//   - circular: evenly spaced on the unit circle
//   - force-directed: ForceAtlas2-style force simulation
//   - fruchterman-reingold: force-directed with a cooling schedule
//   - stress-majorization: monotone stress minimization over graph distances
//   - mds: classical multidimensional scaling via eigen-decomposition
//
// The set is modeled as a closed variant ([Algorithm]) dispatched by a
// single switch; externally supplied algorithms join through
// [Engine.RegisterDelegate] under the identical text-to-text contract.
//
// # Usage
//
//	engine := layout.NewEngine()
//	out, err := engine.Run("nodes:0,0;1,1;edges:0-1", "force-directed", layout.Defaults())
//
// Or against a parsed graph:
//
//	positions, err := layout.Compute(g, layout.AlgorithmCircular, layout.Defaults())
//
// # Parameters
//
// [Params] carries iterations, gravity, scaling ratio, and the random
// seed. Each algorithm validates only the fields it consumes; unused
// fields are ignored. Iterations == 0 is a documented no-op for the
// iterative algorithms: they return their seed positions unchanged.
//
// # Purity and Concurrency
//
// Every invocation is a synchronous, side-effect-free computation: the
// input graph is never mutated, scratch state is allocated per call, and
// no package-level mutable state exists. Concurrent invocations need no
// locking. Termination is iteration-count based; callers bound runtime by
// bounding Iterations.
package layout
