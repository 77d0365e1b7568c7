package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/san-kum/walksim/internal/walk"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !reflect.DeepEqual(cfg.Start, []float64{0, 0}) {
		t.Errorf("expected start [0 0], got %v", cfg.Start)
	}
	if cfg.Steps != 100 {
		t.Errorf("expected 100 steps, got %d", cfg.Steps)
	}
	if cfg.Moves != nil || cfg.Weights != nil {
		t.Error("moves and weights should be omitted by default")
	}

	cfg.Start[0] = 9
	if DefaultConfig().Start[0] != 0 {
		t.Error("default start shared between calls")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.yaml")
	data := "start: [1, 2, 3]\nsteps: 40\nweights: [1, 1, 1, 1, 1, 2]\nanimate: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Start, []float64{1, 2, 3}) {
		t.Errorf("unexpected start %v", cfg.Start)
	}
	if cfg.Steps != 40 || !cfg.Animate {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("expected default output, got %q", cfg.Output)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("steps: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.yaml")
	cfg := GetPreset("king")
	cfg.Seed = 7
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("drift")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Steps != 500 {
		t.Errorf("expected 500 steps, got %d", cfg.Steps)
	}
	if cfg.Output != DefaultOutput {
		t.Error("preset did not inherit default output")
	}

	cfg.Weights[0] = 100
	if GetPreset("drift").Weights[0] != 0.4 {
		t.Error("preset mutated through returned config")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestPresetsBuildEngines(t *testing.T) {
	for _, name := range ListPresets() {
		eng, err := walk.NewFromConfig(GetPreset(name).EngineConfig())
		if err != nil {
			t.Errorf("preset %s: %v", name, err)
			continue
		}
		if len(eng.Path()) != GetPreset(name).Steps {
			t.Errorf("preset %s: wrong path length", name)
		}
	}
}

func TestEngineConfigOmitsEmpty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Moves = [][]float64{}
	ec := cfg.EngineConfig()
	if ec.Moves != nil || ec.Weights != nil {
		t.Error("empty moves/weights should map to nil")
	}
	if ec.Steps == nil || *ec.Steps != 100 {
		t.Error("steps not carried over")
	}
}

func TestClone(t *testing.T) {
	cfg := GetPreset("king")
	c := cfg.Clone()
	c.Moves[0][0] = 50
	c.Start[0] = 50
	if cfg.Moves[0][0] == 50 || cfg.Start[0] == 50 {
		t.Error("Clone shares slices")
	}
}

func TestLoadOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.yaml")
	if err := os.WriteFile(path, []byte("steps: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}
	base := GetPreset("king")
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Steps != 12 {
		t.Errorf("expected 12 steps, got %d", cfg.Steps)
	}
	if len(cfg.Moves) != 8 {
		t.Errorf("preset moves lost: %v", cfg.Moves)
	}
	if base.Steps != 300 {
		t.Error("LoadOver mutated base")
	}
}
