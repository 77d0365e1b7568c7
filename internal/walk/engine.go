package walk

import (
	"log/slog"
	"math"

	"github.com/san-kum/walksim/internal/logging"
)

const DefaultSteps = 100

// DefaultStart returns a fresh two-dimensional origin.
func DefaultStart() Position {
	return Position{0, 0}
}

// Config describes an engine. Nil fields are resolved to their defaults at
// construction time.
type Config struct {
	Start   Position
	Steps   *int
	Moves   []Move
	Weights []float64
}

type Option func(*options)

type options struct {
	cfg    Config
	src    Source
	logger *slog.Logger
}

func WithStart(p Position) Option { return func(o *options) { o.cfg.Start = p } }
func WithSteps(n int) Option      { return func(o *options) { o.cfg.Steps = &n } }
func WithMoves(m []Move) Option   { return func(o *options) { o.cfg.Moves = m } }
func WithWeights(w []float64) Option {
	return func(o *options) { o.cfg.Weights = w }
}

// WithSource makes the engine draw from src instead of the process-wide
// generator.
func WithSource(src Source) Option { return func(o *options) { o.src = src } }

func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// Engine generates random walks from a fixed configuration. It is not
// mutated after New returns.
type Engine struct {
	start   Position
	steps   int
	moves   []Move
	weights []float64
	path    Path
	src     Source
	logger  *slog.Logger
}

func New(opts ...Option) (*Engine, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return build(o)
}

// NewFromConfig builds an engine from cfg, applying extra options after it.
func NewFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	o := options{cfg: cfg}
	for _, opt := range opts {
		opt(&o)
	}
	return build(o)
}

func build(o options) (*Engine, error) {
	e := &Engine{
		src:    o.src,
		logger: o.logger,
	}
	if e.src == nil {
		e.src = globalSource{}
	}
	if e.logger == nil {
		e.logger = logging.Discard()
	}

	if o.cfg.Start == nil {
		e.start = DefaultStart()
	} else {
		e.start = o.cfg.Start.Clone()
	}

	e.steps = DefaultSteps
	if o.cfg.Steps != nil {
		e.steps = *o.cfg.Steps
	}
	if e.steps < 0 {
		return nil, configErr("steps", "must be non-negative, got %d", e.steps)
	}

	if o.cfg.Moves == nil {
		e.moves = DefaultMoves(len(e.start))
	} else {
		e.moves = cloneMoves(o.cfg.Moves)
	}
	if len(e.moves) == 0 {
		return nil, configErr("moves", "move set is empty")
	}
	for i, m := range e.moves {
		if len(m) != len(e.start) {
			return nil, configErr("moves", "move %d has dimension %d, start has %d", i, len(m), len(e.start))
		}
		for _, v := range m {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, configErr("moves", "move %d is not finite", i)
			}
		}
	}

	if o.cfg.Weights == nil {
		e.weights = UniformWeights(len(e.moves))
	} else {
		e.weights = cloneWeights(o.cfg.Weights)
	}
	if err := validateWeights(e.weights, len(e.moves)); err != nil {
		return nil, err
	}

	path, err := e.Walk(nil)
	if err != nil {
		return nil, err
	}
	e.path = path

	e.logger.Debug("walk engine ready",
		"dim", len(e.start),
		"steps", e.steps,
		"moves", len(e.moves),
	)
	return e, nil
}

// GenerateStep draws every move up front and returns a stream that yields
// the running position after each one. Nil weights select the engine's
// distribution.
func (e *Engine) GenerateStep(weights []float64) (*Steps, error) {
	if weights == nil {
		weights = e.weights
	} else if err := validateWeights(weights, len(e.moves)); err != nil {
		return nil, err
	}

	s := newSampler(weights)
	drawn := s.drawN(e.src, e.steps)
	return newSteps(e.start, e.moves, drawn), nil
}

// Walk returns the full path for one simulation. The engine's default path
// is left untouched.
func (e *Engine) Walk(weights []float64) (Path, error) {
	steps, err := e.GenerateStep(weights)
	if err != nil {
		return nil, err
	}
	path := make(Path, 0, steps.Remaining())
	for pos := range steps.All() {
		path = append(path, pos)
	}
	return path, nil
}

// Path returns a copy of the path computed at construction.
func (e *Engine) Path() Path { return e.path.Clone() }

func (e *Engine) Start() Position    { return e.start.Clone() }
func (e *Engine) StepCount() int     { return e.steps }
func (e *Engine) Moves() []Move      { return cloneMoves(e.moves) }
func (e *Engine) Weights() []float64 { return cloneWeights(e.weights) }
func (e *Engine) Dim() int           { return len(e.start) }
