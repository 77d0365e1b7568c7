package viz

import (
	"math"
	"strings"

	"github.com/san-kum/walksim/internal/plot"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set sets a pixel at (x, y) in sub-pixel coordinates. The canvas is
// (Width*2) x (Height*4) sub-pixels.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Lit counts the sub-pixels that are set.
func (c *Canvas) Lit() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			for bits := r - 0x2800; bits != 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// scaler maps projected figure points onto canvas sub-pixels, keeping the
// same bounds for every frame of a figure.
type scaler struct {
	minX, minY     float64
	rangeX, rangeY float64
	w, h           int
}

func newScaler(fig *plot.Figure, c *Canvas) scaler {
	pts := fig.Project()
	for _, e := range fig.Frame() {
		pts = append(pts, e[0], e[1])
	}
	s := scaler{rangeX: 1, rangeY: 1, w: c.Width*2 - 1, h: c.Height*4 - 1}
	if len(pts) == 0 {
		return s
	}
	minX, maxX, minY, maxY := pts[0].X, pts[0].X, pts[0].Y, pts[0].Y
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	s.minX, s.minY = minX, minY
	if maxX > minX {
		s.rangeX = maxX - minX
	} else {
		s.minX -= 0.5
	}
	if maxY > minY {
		s.rangeY = maxY - minY
	} else {
		s.minY -= 0.5
	}
	return s
}

func (s scaler) sub(p plot.Point) (int, int) {
	x := int(math.Round((p.X - s.minX) / s.rangeX * float64(s.w)))
	y := s.h - int(math.Round((p.Y-s.minY)/s.rangeY*float64(s.h)))
	return x, y
}

// DrawFigure draws the first n points of fig as a connected line, plus the
// projected box for 3-D figures.
func (c *Canvas) DrawFigure(fig *plot.Figure, n int) {
	s := newScaler(fig, c)
	for _, e := range fig.Frame() {
		x0, y0 := s.sub(e[0])
		x1, y1 := s.sub(e[1])
		c.DrawLine(x0, y0, x1, y1)
	}

	pts := fig.Project()
	if n > len(pts) {
		n = len(pts)
	}
	if n <= 0 {
		return
	}
	px, py := s.sub(pts[0])
	c.Set(px, py)
	for i := 1; i < n; i++ {
		x, y := s.sub(pts[i])
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

// Preview returns a w x h cell canvas showing the whole figure.
func Preview(fig *plot.Figure, w, h int) *Canvas {
	c := NewCanvas(w, h)
	c.DrawFigure(fig, len(fig.Points))
	return c
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
