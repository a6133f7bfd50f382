package layout

import "github.com/graphscape/graphscape/pkg/errors"

// Algorithm identifies a layout strategy. The set is closed: the six
// built-ins plus [AlgorithmExternal] for caller-supplied delegates.
type Algorithm int

const (
	// AlgorithmRandom assigns uniform random positions in [0,1)².
	AlgorithmRandom Algorithm = iota
	// AlgorithmCircular places nodes evenly on the unit circle.
	AlgorithmCircular
	// AlgorithmForceDirected runs a ForceAtlas2-style force simulation.
	AlgorithmForceDirected
	// AlgorithmFruchtermanReingold runs the classical variant with a
	// cooling schedule capping per-step displacement.
	AlgorithmFruchtermanReingold
	// AlgorithmStressMajorization minimizes layout stress against
	// graph-theoretic distances with monotone updates.
	AlgorithmStressMajorization
	// AlgorithmMDS recovers positions from the distance matrix by
	// classical multidimensional scaling.
	AlgorithmMDS
	// AlgorithmExternal marks a caller-supplied algorithm dispatched
	// through a registered delegate. It has no built-in name.
	AlgorithmExternal
)

// Canonical algorithm names recognized by [ParseAlgorithm].
const (
	NameRandom              = "random"
	NameCircular            = "circular"
	NameForceDirected       = "force-directed"
	NameFruchtermanReingold = "fruchterman-reingold"
	NameStressMajorization  = "stress-majorization"
	NameMDS                 = "mds"
)

var algorithmNames = map[string]Algorithm{
	NameRandom:              AlgorithmRandom,
	NameCircular:            AlgorithmCircular,
	NameForceDirected:       AlgorithmForceDirected,
	NameFruchtermanReingold: AlgorithmFruchtermanReingold,
	NameStressMajorization:  AlgorithmStressMajorization,
	NameMDS:                 AlgorithmMDS,
}

// ParseAlgorithm resolves a built-in algorithm name.
// Unknown names fail with an UNKNOWN_ALGORITHM error.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmNames[name]; ok {
		return a, nil
	}
	return 0, errors.New(errors.ErrCodeUnknownAlgorithm, "unknown algorithm %q (known: %s, %s, %s, %s, %s, %s)",
		name, NameRandom, NameCircular, NameForceDirected, NameFruchtermanReingold, NameStressMajorization, NameMDS)
}

// String returns the canonical name of the algorithm, or "external" for
// delegated algorithms.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmRandom:
		return NameRandom
	case AlgorithmCircular:
		return NameCircular
	case AlgorithmForceDirected:
		return NameForceDirected
	case AlgorithmFruchtermanReingold:
		return NameFruchtermanReingold
	case AlgorithmStressMajorization:
		return NameStressMajorization
	case AlgorithmMDS:
		return NameMDS
	case AlgorithmExternal:
		return "external"
	}
	return "unknown"
}

// Names returns the built-in algorithm names in dispatch order.
func Names() []string {
	return []string{
		NameRandom,
		NameCircular,
		NameForceDirected,
		NameFruchtermanReingold,
		NameStressMajorization,
		NameMDS,
	}
}
