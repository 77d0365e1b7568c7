package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/walksim/internal/walk"
)

const (
	DefaultSteps    = walk.DefaultSteps
	DefaultOutput   = "random_walk.png"
	DefaultLogLevel = "info"
)

type Config struct {
	Start      []float64   `yaml:"start"`
	Steps      int         `yaml:"steps"`
	Moves      [][]float64 `yaml:"moves,omitempty"`
	Weights    []float64   `yaml:"weights,omitempty"`
	Seed       int64       `yaml:"seed,omitempty"`
	Output     string      `yaml:"output"`
	Animate    bool        `yaml:"animate"`
	SaveFigure bool        `yaml:"save_figure"`
	LogLevel   string      `yaml:"log_level"`
}

// DefaultConfig returns a fresh configuration; callers may mutate it freely.
func DefaultConfig() *Config {
	return &Config{
		Start:    walk.DefaultStart(),
		Steps:    DefaultSteps,
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file on top of a copy of base. Keys absent from the
// file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Start = append([]float64(nil), c.Start...)
	if c.Moves != nil {
		out.Moves = make([][]float64, len(c.Moves))
		for i, m := range c.Moves {
			out.Moves[i] = append([]float64(nil), m...)
		}
	}
	if c.Weights != nil {
		out.Weights = append([]float64(nil), c.Weights...)
	}
	return &out
}

// EngineConfig maps the file form onto walk.Config. Empty moves or weights
// are treated as omitted so the engine derives its defaults.
func (c *Config) EngineConfig() walk.Config {
	steps := c.Steps
	ec := walk.Config{
		Start: walk.Position(append([]float64(nil), c.Start...)),
		Steps: &steps,
	}
	if len(c.Moves) > 0 {
		ec.Moves = make([]walk.Move, len(c.Moves))
		for i, m := range c.Moves {
			ec.Moves[i] = walk.Move(append([]float64(nil), m...))
		}
	}
	if len(c.Weights) > 0 {
		ec.Weights = append([]float64(nil), c.Weights...)
	}
	return ec
}
