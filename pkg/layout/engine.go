package layout

import (
	"github.com/graphscape/graphscape/pkg/errors"
	"github.com/graphscape/graphscape/pkg/graph"
)

// Delegate is a caller-supplied layout algorithm operating on interchange
// text. It must satisfy the same (graphText) → resultText contract as the
// built-ins; the engine imposes no further constraint and propagates its
// failures unmasked.
type Delegate func(graphText string) (string, error)

// Engine selects an algorithm by name, validates parameters, executes the
// algorithm, and hands positions back through the interchange codec.
//
// The zero-delegate Engine dispatches the six built-ins. Delegates are
// registered up front; afterwards an Engine is read-only and safe for
// concurrent Run calls. No state survives an invocation.
type Engine struct {
	delegates map[string]Delegate
}

// NewEngine creates an Engine with no delegates registered.
func NewEngine() *Engine {
	return &Engine{delegates: make(map[string]Delegate)}
}

// RegisterDelegate binds an external algorithm to a name. The name must
// not be empty or shadow a built-in, and fn must not be nil.
// Registration is not synchronized; complete it before concurrent use.
func (e *Engine) RegisterDelegate(name string, fn Delegate) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidParameters, "delegate name must not be empty")
	}
	if _, ok := algorithmNames[name]; ok {
		return errors.New(errors.ErrCodeInvalidParameters, "delegate name %q shadows a built-in algorithm", name)
	}
	if fn == nil {
		return errors.New(errors.ErrCodeInvalidParameters, "delegate %q must not be nil", name)
	}
	e.delegates[name] = fn
	return nil
}

// Run executes one layout invocation: decode graphText, run the named
// algorithm with p, and encode the resulting positions.
//
// Delegates registered under name take the raw text and bypass the codec;
// their result is returned verbatim and their errors propagate unchanged.
// Unknown names fail with UNKNOWN_ALGORITHM. A failed invocation leaves
// no state behind; subsequent calls proceed normally.
func (e *Engine) Run(graphText, name string, p Params) (string, error) {
	if fn, ok := e.delegates[name]; ok {
		return fn(graphText)
	}

	a, err := ParseAlgorithm(name)
	if err != nil {
		return "", err
	}

	g, err := graph.Parse(graphText)
	if err != nil {
		return "", err
	}

	positions, err := Compute(g, a, p)
	if err != nil {
		return "", err
	}

	return graph.Format(g, positions)
}

// Compute runs a built-in algorithm against a parsed graph and returns
// the resulting positions, one per node in input order.
//
// [AlgorithmExternal] cannot be computed directly; it exists only as the
// delegated variant and fails with UNKNOWN_ALGORITHM here.
func Compute(g *graph.Graph, a Algorithm, p Params) ([]graph.Point, error) {
	switch a {
	case AlgorithmRandom:
		return Random(g, p)
	case AlgorithmCircular:
		return Circular(g, p)
	case AlgorithmForceDirected:
		return ForceAtlas2(g, p)
	case AlgorithmFruchtermanReingold:
		return FruchtermanReingold(g, p)
	case AlgorithmStressMajorization:
		return StressMajorize(g, p)
	case AlgorithmMDS:
		return ClassicalMDS(g, p)
	case AlgorithmExternal:
		return nil, errors.New(errors.ErrCodeUnknownAlgorithm, "external algorithms dispatch through a registered delegate")
	}
	return nil, errors.New(errors.ErrCodeUnknownAlgorithm, "unknown algorithm %d", a)
}
