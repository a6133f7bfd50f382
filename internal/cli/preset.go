package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/graphscape/graphscape/pkg/layout"
)

// preset is a named parameter bundle loaded from a TOML file, e.g.:
//
//	algorithm = "stress-majorization"
//	iterations = 300
//	gravity = 0.5
//	scaling-ratio = 2.0
//	seed = 7
//
// All keys are optional; pointer fields distinguish "absent" from a zero
// value so a preset can set iterations = 0 deliberately.
type preset struct {
	Algorithm    *string  `toml:"algorithm"`
	Iterations   *int     `toml:"iterations"`
	Gravity      *float64 `toml:"gravity"`
	ScalingRatio *float64 `toml:"scaling-ratio"`
	Seed         *uint64  `toml:"seed"`
}

// loadPreset reads a preset file and rejects unknown keys, which are almost
// always typos of the known ones.
func loadPreset(path string) (*preset, error) {
	var p preset
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("preset %s: unknown key %q", path, undecoded[0].String())
	}
	return &p, nil
}

// apply overlays the preset's set fields onto params and returns the
// algorithm name override, if any.
func (p *preset) apply(params *layout.Params) (algorithm string, ok bool) {
	if p.Iterations != nil {
		params.Iterations = *p.Iterations
	}
	if p.Gravity != nil {
		params.Gravity = *p.Gravity
	}
	if p.ScalingRatio != nil {
		params.ScalingRatio = *p.ScalingRatio
	}
	if p.Seed != nil {
		params.Seed = *p.Seed
	}
	if p.Algorithm != nil {
		return *p.Algorithm, true
	}
	return "", false
}
