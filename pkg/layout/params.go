package layout

import (
	"math"

	"github.com/graphscape/graphscape/pkg/errors"
)

// Default parameter values, applied by [Defaults]. The seed default
// mirrors the convention of reproducible-by-default layout runs.
const (
	DefaultIterations   = 100
	DefaultGravity      = 1.0
	DefaultScalingRatio = 2.0
	DefaultSeed         = uint64(42)
)

// Params configures a layout invocation. Each algorithm reads only the
// subset it needs and ignores the rest:
//
//	random                 Seed
//	circular               —
//	force-directed         Iterations, Gravity, ScalingRatio
//	fruchterman-reingold   Iterations, Gravity
//	stress-majorization    Iterations
//	mds                    Iterations (refinement rounds; 0 = closed form)
type Params struct {
	// Iterations controls the optimization loop length of the iterative
	// algorithms. Zero is a no-op: the seed positions are returned
	// unchanged. Negative values are rejected.
	Iterations int

	// Gravity is the non-negative strength of the centering force.
	Gravity float64

	// ScalingRatio is the positive repulsion strength multiplier.
	ScalingRatio float64

	// Seed drives the random layout's position source. Equal seeds
	// produce identical layouts.
	Seed uint64
}

// Defaults returns a fully populated parameter set.
func Defaults() Params {
	return Params{
		Iterations:   DefaultIterations,
		Gravity:      DefaultGravity,
		ScalingRatio: DefaultScalingRatio,
		Seed:         DefaultSeed,
	}
}

// checkIterations rejects negative iteration counts.
func (p Params) checkIterations() error {
	if p.Iterations < 0 {
		return errors.New(errors.ErrCodeInvalidParameters, "iterations must be non-negative, got %d", p.Iterations)
	}
	return nil
}

// checkGravity rejects negative or non-finite gravity.
func (p Params) checkGravity() error {
	if p.Gravity < 0 || math.IsNaN(p.Gravity) || math.IsInf(p.Gravity, 0) {
		return errors.New(errors.ErrCodeInvalidParameters, "gravity must be a non-negative finite value, got %v", p.Gravity)
	}
	return nil
}

// checkScalingRatio rejects non-positive or non-finite scaling ratios.
func (p Params) checkScalingRatio() error {
	if p.ScalingRatio <= 0 || math.IsNaN(p.ScalingRatio) || math.IsInf(p.ScalingRatio, 0) {
		return errors.New(errors.ErrCodeInvalidParameters, "scaling ratio must be a positive finite value, got %v", p.ScalingRatio)
	}
	return nil
}
