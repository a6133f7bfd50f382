package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/graphscape/graphscape/pkg/layout"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadPreset_AppliesSetFields(t *testing.T) {
	path := writePreset(t, `
algorithm = "stress-majorization"
iterations = 300
gravity = 0.5
`)

	p, err := loadPreset(path)
	if err != nil {
		t.Fatalf("loadPreset() error = %v", err)
	}

	params := layout.Defaults()
	name, ok := p.apply(&params)
	if !ok || name != layout.NameStressMajorization {
		t.Errorf("apply() algorithm = %q, %v, want %q, true", name, ok, layout.NameStressMajorization)
	}
	if params.Iterations != 300 {
		t.Errorf("Iterations = %d, want 300", params.Iterations)
	}
	if params.Gravity != 0.5 {
		t.Errorf("Gravity = %v, want 0.5", params.Gravity)
	}
	// Unset keys keep their defaults.
	if params.ScalingRatio != layout.DefaultScalingRatio {
		t.Errorf("ScalingRatio = %v, want default %v", params.ScalingRatio, layout.DefaultScalingRatio)
	}
	if params.Seed != layout.DefaultSeed {
		t.Errorf("Seed = %v, want default %v", params.Seed, layout.DefaultSeed)
	}
}

func TestLoadPreset_ZeroIterationsIsExplicit(t *testing.T) {
	path := writePreset(t, "iterations = 0\n")

	p, err := loadPreset(path)
	if err != nil {
		t.Fatalf("loadPreset() error = %v", err)
	}

	params := layout.Defaults()
	if _, ok := p.apply(&params); ok {
		t.Error("apply() reported an algorithm override, want none")
	}
	if params.Iterations != 0 {
		t.Errorf("Iterations = %d, want explicit 0", params.Iterations)
	}
}

func TestLoadPreset_RejectsUnknownKey(t *testing.T) {
	path := writePreset(t, "iterattions = 10\n")

	if _, err := loadPreset(path); err == nil {
		t.Error("loadPreset() error = nil, want unknown key error")
	}
}

func TestLoadPreset_MissingFile(t *testing.T) {
	if _, err := loadPreset(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("loadPreset() error = nil, want error for missing file")
	}
}
