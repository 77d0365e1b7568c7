package config

import "sort"

// Presets builds named walk configurations. Each call returns a new value.
var Presets = map[string]func() *Config{
	"lattice2d": func() *Config {
		return &Config{Start: []float64{0, 0}, Steps: 1000}
	},
	"line": func() *Config {
		return &Config{Start: []float64{0}, Steps: 200}
	},
	"cubic": func() *Config {
		return &Config{Start: []float64{0, 0, 0}, Steps: 500}
	},
	"drift": func() *Config {
		return &Config{
			Start:   []float64{0, 0},
			Steps:   500,
			Weights: []float64{0.4, 0.2, 0.2, 0.2},
		}
	},
	"king": func() *Config {
		return &Config{
			Start: []float64{0, 0},
			Steps: 300,
			Moves: [][]float64{
				{1, 0}, {-1, 0}, {0, 1}, {0, -1},
				{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
			},
		}
	},
	"ratchet": func() *Config {
		return &Config{
			Start:   []float64{0},
			Steps:   300,
			Moves:   [][]float64{{1}, {-1}},
			Weights: []float64{0.6, 0.4},
		}
	},
}

// GetPreset returns the named preset merged over the defaults, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	p := fn()
	cfg := DefaultConfig()
	cfg.Start = p.Start
	cfg.Steps = p.Steps
	cfg.Moves = p.Moves
	cfg.Weights = p.Weights
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
