package plot

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/walksim/internal/logging"
	"github.com/san-kum/walksim/internal/walk"
)

const (
	AnimationExt     = ".gif"
	DefaultStaticExt = ".png"
	FigureExt        = ".fig"

	DefaultWidth  = 800
	DefaultHeight = 600
)

// StaticExts are the image formats kept as given for static renders.
var StaticExts = []string{".png", ".jpg", ".jpeg", ".svg"}

func isStaticExt(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range StaticExts {
		if ext == e {
			return true
		}
	}
	return false
}

// NormalizeDest returns the file name a render of dest will be written to.
// Animations always end in .gif. Static renders keep a recognized image
// extension; any other extension is dropped and .png is used.
func NormalizeDest(dest string, animate bool) string {
	ext := filepath.Ext(dest)
	base := strings.TrimSuffix(dest, ext)
	if animate {
		if strings.EqualFold(ext, AnimationExt) {
			return dest
		}
		return base + AnimationExt
	}
	if isStaticExt(ext) {
		return dest
	}
	return base + DefaultStaticExt
}

// FigurePath is where a persisted figure for dest goes: dest without its
// extension plus .fig.
func FigurePath(dest string) string {
	return strings.TrimSuffix(dest, filepath.Ext(dest)) + FigureExt
}

type RenderOptions struct {
	Animate    bool
	SaveFigure bool
}

// Output names the files a render produced. Figure is empty unless the
// figure was persisted.
type Output struct {
	Image  string
	Figure string
	Frames int
}

type Option func(*Plotter)

func WithSize(w, h int) Option         { return func(p *Plotter) { p.width, p.height = w, h } }
func WithTitle(t string) Option        { return func(p *Plotter) { p.title = t } }
func WithLogger(l *slog.Logger) Option { return func(p *Plotter) { p.logger = l } }

type Plotter struct {
	width, height int
	title         string
	logger        *slog.Logger
}

func New(opts ...Option) *Plotter {
	p := &Plotter{
		width:  DefaultWidth,
		height: DefaultHeight,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.width < 4*margin {
		p.width = 4 * margin
	}
	if p.height < 4*margin {
		p.height = 4 * margin
	}
	return p
}

// Render draws path to dest. 1-D and 2-D paths use the planar renderer,
// 3-D paths the perspective renderer; other dimensionalities fail with
// ErrUnsupportedDimension before anything is written.
func (p *Plotter) Render(path walk.Path, dest string, o RenderOptions) (*Output, error) {
	fig, err := NewFigure(path)
	if err != nil {
		return nil, err
	}
	if p.title != "" {
		fig.Title = p.title
	}
	return p.RenderFigure(fig, dest, o)
}

// RenderFigure draws an existing figure, e.g. one loaded with LoadFigure.
func (p *Plotter) RenderFigure(fig *Figure, dest string, o RenderOptions) (*Output, error) {
	if err := fig.Validate(); err != nil {
		return nil, err
	}
	fig.Animated = o.Animate

	out := &Output{Image: NormalizeDest(dest, o.Animate), Frames: 1}
	ext := strings.ToLower(filepath.Ext(out.Image))

	var err error
	switch {
	case o.Animate:
		anim := animation(fig, p.width, p.height, p.logger)
		out.Frames = len(anim.Image)
		err = writeAtomic(out.Image, func(f *os.File) error { return gif.EncodeAll(f, anim) })
	case ext == ".svg":
		err = writeAtomic(out.Image, func(f *os.File) error { return writeSVG(f, fig, p.width, p.height) })
	case ext == ".jpg" || ext == ".jpeg":
		img := renderStatic(fig, p.width, p.height)
		err = writeAtomic(out.Image, func(f *os.File) error { return jpeg.Encode(f, img, &jpeg.Options{Quality: 90}) })
	default:
		img := renderStatic(fig, p.width, p.height)
		err = writeAtomic(out.Image, func(f *os.File) error { return png.Encode(f, img) })
	}
	if err != nil {
		return nil, err
	}
	p.logger.Info("wrote plot", "path", out.Image, "kind", fig.Kind, "points", len(fig.Points), "frames", out.Frames)

	if o.SaveFigure {
		out.Figure = FigurePath(dest)
		if err := SaveFigure(out.Figure, fig); err != nil {
			return nil, err
		}
		p.logger.Info("wrote figure", "path", out.Figure)
	}
	return out, nil
}

// writeAtomic writes through a temporary sibling and renames it into place,
// so a failed encode leaves no file at path.
func writeAtomic(path string, write func(f *os.File) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
