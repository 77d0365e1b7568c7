package plot

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/walksim/internal/walk"
)

type Kind string

const (
	Kind2D Kind = "2d"
	Kind3D Kind = "3d"
)

// Figure is the rendering object for one path. Points always hold two
// columns for Kind2D and three for Kind3D.
type Figure struct {
	Kind       Kind        `yaml:"kind"`
	Title      string      `yaml:"title"`
	Labels     []string    `yaml:"labels"`
	Points     [][]float64 `yaml:"points"`
	Animated   bool        `yaml:"animated"`
	IntervalMS int         `yaml:"interval_ms"`
	Camera     *Camera     `yaml:"camera,omitempty"`
}

// Bounds is the per-axis extent of a figure's points.
type Bounds struct {
	Min, Max []float64
}

// NewFigure builds a figure from a path. A 1-D path is paired with each
// position's index so it can be drawn in the plane; the path itself is not
// modified. Empty paths produce an empty 2-D figure.
func NewFigure(p walk.Path) (*Figure, error) {
	dim := p.Dim()
	for i, pos := range p {
		if len(pos) != dim {
			return nil, fmt.Errorf("%w: position %d has %d coordinates, expected %d", ErrRaggedPath, i, len(pos), dim)
		}
	}

	fig := &Figure{
		Title:      "Random Walk",
		IntervalMS: int(FrameInterval.Milliseconds()),
		Points:     make([][]float64, len(p)),
	}

	switch dim {
	case 0:
		fig.Kind = Kind2D
		fig.Labels = []string{"x0", "x1"}
	case 1:
		fig.Kind = Kind2D
		fig.Labels = []string{"step", "x0"}
		for i, pos := range p {
			fig.Points[i] = []float64{float64(i), pos[0]}
		}
	case 2:
		fig.Kind = Kind2D
		fig.Labels = []string{"x0", "x1"}
		for i, pos := range p {
			fig.Points[i] = []float64{pos[0], pos[1]}
		}
	case 3:
		fig.Kind = Kind3D
		fig.Labels = []string{"x0", "x1", "x2"}
		cam := DefaultCamera()
		fig.Camera = &cam
		for i, pos := range p {
			fig.Points[i] = []float64{pos[0], pos[1], pos[2]}
		}
	default:
		return nil, &UnsupportedDimensionError{Dim: dim}
	}
	return fig, nil
}

// Columns is the number of coordinates per point for the figure's kind.
func (f *Figure) Columns() int {
	if f.Kind == Kind3D {
		return 3
	}
	return 2
}

// Validate checks that the kind is known and every point fits it.
func (f *Figure) Validate() error {
	switch f.Kind {
	case Kind2D, Kind3D:
	default:
		return fmt.Errorf("plot: unknown figure kind %q", f.Kind)
	}
	cols := f.Columns()
	for i, pt := range f.Points {
		if len(pt) != cols {
			return fmt.Errorf("%w: point %d has %d coordinates, figure is %s", ErrRaggedPath, i, len(pt), f.Kind)
		}
	}
	return nil
}

func (f *Figure) Bounds() Bounds {
	cols := f.Columns()
	b := Bounds{Min: make([]float64, cols), Max: make([]float64, cols)}
	if len(f.Points) == 0 {
		for i := range b.Max {
			b.Max[i] = 1
		}
		return b
	}
	copy(b.Min, f.Points[0])
	copy(b.Max, f.Points[0])
	for _, pt := range f.Points[1:] {
		for i, v := range pt {
			b.Min[i] = math.Min(b.Min[i], v)
			b.Max[i] = math.Max(b.Max[i], v)
		}
	}
	return b
}

func (f *Figure) camera() Camera {
	if f.Camera != nil {
		return *f.Camera
	}
	return DefaultCamera()
}

// Project returns the figure's points in the drawing plane.
func (f *Figure) Project() []Point {
	out := make([]Point, len(f.Points))
	if f.Kind != Kind3D {
		for i, pt := range f.Points {
			out[i] = Point{X: pt[0], Y: pt[1]}
		}
		return out
	}

	cam := f.camera()
	n := newNormalizer(f.Bounds())
	for i, pt := range f.Points {
		out[i], _ = cam.Project(n.apply(Vec3{pt[0], pt[1], pt[2]}))
	}
	return out
}

// Frame returns the projected bounding-box edges drawn around a 3-D figure.
// 2-D figures have no frame beyond the plot axes.
func (f *Figure) Frame() [][2]Point {
	if f.Kind != Kind3D {
		return nil
	}
	cam := f.camera()
	b := f.Bounds()
	n := newNormalizer(b)
	edges := boxEdges(b)
	out := make([][2]Point, len(edges))
	for i, e := range edges {
		out[i][0], _ = cam.Project(n.apply(e[0]))
		out[i][1], _ = cam.Project(n.apply(e[1]))
	}
	return out
}

// SaveFigure writes fig as YAML.
func SaveFigure(path string, fig *Figure) error {
	data, err := yaml.Marshal(fig)
	if err != nil {
		return err
	}
	return writeAtomic(path, func(w *os.File) error {
		_, err := w.Write(data)
		return err
	})
}

func LoadFigure(path string) (*Figure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fig Figure
	if err := yaml.Unmarshal(data, &fig); err != nil {
		return nil, fmt.Errorf("parse figure %s: %w", path, err)
	}
	if err := fig.Validate(); err != nil {
		return nil, err
	}
	return &fig, nil
}
