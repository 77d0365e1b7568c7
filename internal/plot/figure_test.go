package plot

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/san-kum/walksim/internal/walk"
)

func TestNewFigureOneDimensional(t *testing.T) {
	path := walk.Path{{3}, {2}, {5}}
	fig, err := NewFigure(path)
	if err != nil {
		t.Fatalf("new figure failed: %v", err)
	}
	if fig.Kind != Kind2D {
		t.Errorf("expected 2d figure, got %s", fig.Kind)
	}
	want := [][]float64{{0, 3}, {1, 2}, {2, 5}}
	if !reflect.DeepEqual(fig.Points, want) {
		t.Errorf("points = %v, want %v", fig.Points, want)
	}
	if !reflect.DeepEqual(path, walk.Path{{3}, {2}, {5}}) {
		t.Error("NewFigure modified the path")
	}
}

func TestNewFigureKinds(t *testing.T) {
	tests := []struct {
		path walk.Path
		kind Kind
		cols int
	}{
		{walk.Path{{1, 2}}, Kind2D, 2},
		{walk.Path{{1, 2, 3}}, Kind3D, 3},
		{walk.Path{}, Kind2D, 2},
	}
	for _, tt := range tests {
		fig, err := NewFigure(tt.path)
		if err != nil {
			t.Fatalf("new figure failed: %v", err)
		}
		if fig.Kind != tt.kind || fig.Columns() != tt.cols {
			t.Errorf("path %v: kind %s cols %d", tt.path, fig.Kind, fig.Columns())
		}
	}
}

func TestNewFigureErrors(t *testing.T) {
	if _, err := NewFigure(walk.Path{{1, 2}, {1}}); !errors.Is(err, ErrRaggedPath) {
		t.Errorf("expected ErrRaggedPath, got %v", err)
	}
	for _, dim := range []int{4, 7} {
		_, err := NewFigure(walk.Path{make(walk.Position, dim)})
		if !errors.Is(err, ErrUnsupportedDimension) {
			t.Errorf("dim %d: expected ErrUnsupportedDimension, got %v", dim, err)
		}
	}
}

func TestFigureBounds(t *testing.T) {
	fig, _ := NewFigure(walk.Path{{1, -2}, {4, 0}, {-1, 3}})
	b := fig.Bounds()
	if !reflect.DeepEqual(b.Min, []float64{-1, -2}) || !reflect.DeepEqual(b.Max, []float64{4, 3}) {
		t.Errorf("bounds = %+v", b)
	}
}

func TestCameraProjectOrigin(t *testing.T) {
	p, depth := DefaultCamera().Project(Vec3{})
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Y) > 1e-12 || depth != 0 {
		t.Errorf("origin projected to %+v (depth %f)", p, depth)
	}
}

func TestCameraVerticalAxisProjectsUp(t *testing.T) {
	p, _ := DefaultCamera().Project(Vec3{Z: 1})
	if math.Abs(p.X) > 1e-12 || p.Y <= 0 {
		t.Errorf("+z projected to %+v, want straight up", p)
	}
}

func TestFrameOnlyFor3D(t *testing.T) {
	fig2, _ := NewFigure(walk.Path{{0, 0}, {1, 1}})
	if fig2.Frame() != nil {
		t.Error("2d figure has a 3d frame")
	}
	fig3, _ := NewFigure(walk.Path{{0, 0, 0}, {1, 1, 1}})
	if len(fig3.Frame()) != 12 {
		t.Errorf("expected 12 box edges, got %d", len(fig3.Frame()))
	}
}

func TestLoadFigureValidates(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.fig")
	if err := os.WriteFile(bad, []byte("kind: 2d\npoints:\n  - [1, 2, 3]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFigure(bad); !errors.Is(err, ErrRaggedPath) {
		t.Errorf("expected ErrRaggedPath, got %v", err)
	}

	unknown := filepath.Join(dir, "unknown.fig")
	if err := os.WriteFile(unknown, []byte("kind: 4d\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFigure(unknown); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestSaveLoadFigure(t *testing.T) {
	fig, _ := NewFigure(walk.Path{{1}, {2}})
	fig.Title = "line"
	path := filepath.Join(t.TempDir(), "line.fig")
	if err := SaveFigure(path, fig); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadFigure(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(got, fig) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, fig)
	}
}
