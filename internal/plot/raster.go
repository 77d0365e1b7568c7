package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	colorBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorAxis       = color.RGBA{0x33, 0x33, 0x33, 0xff}
	colorGrid       = color.RGBA{0xbb, 0xbb, 0xbb, 0xff}
	colorLine       = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
	colorStart      = color.RGBA{0x2c, 0xa0, 0x2c, 0xff}
	colorEnd        = color.RGBA{0xd6, 0x27, 0x28, 0xff}
)

// palette backs GIF frames so drawing never needs quantization.
var palette = color.Palette{colorBackground, colorAxis, colorGrid, colorLine, colorStart, colorEnd}

const margin = 48

// viewport maps projected figure coordinates onto pixels.
type viewport struct {
	minX, minY     float64
	rangeX, rangeY float64
	left, top      int
	w, h           int
}

func newViewport(points []Point, frame [][2]Point, width, height int) viewport {
	all := make([]Point, 0, len(points)+2*len(frame))
	all = append(all, points...)
	for _, e := range frame {
		all = append(all, e[0], e[1])
	}

	minX, maxX, minY, maxY := 0.0, 1.0, 0.0, 1.0
	if len(all) > 0 {
		minX, maxX = all[0].X, all[0].X
		minY, maxY = all[0].Y, all[0].Y
		for _, p := range all {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
		minX -= 0.5
	}
	if rangeY == 0 {
		rangeY = 1
		minY -= 0.5
	}
	minX -= rangeX * 0.05
	minY -= rangeY * 0.05
	rangeX *= 1.1
	rangeY *= 1.1

	return viewport{
		minX: minX, minY: minY,
		rangeX: rangeX, rangeY: rangeY,
		left: margin, top: margin / 2,
		w: width - margin - margin/2, h: height - margin - margin/2,
	}
}

func (v viewport) pixel(p Point) (int, int) {
	x := v.left + int(math.Round((p.X-v.minX)/v.rangeX*float64(v.w)))
	y := v.top + v.h - int(math.Round((p.Y-v.minY)/v.rangeY*float64(v.h)))
	return x, y
}

// canvas draws lines and labels onto any draw.Image.
type canvas struct {
	img draw.Image
}

func (c canvas) fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c canvas) set(x, y int, col color.Color) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	c.img.Set(x, y, col)
}

// line draws a two-pixel-wide Bresenham line.
func (c canvas) line(x0, y0, x1, y1 int, col color.Color) {
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
		c.set(x0, y0, col)
		if dx > dy {
			c.set(x0, y0+1, col)
		} else {
			c.set(x0+1, y0, col)
		}
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

func (c canvas) marker(x, y int, col color.Color) {
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			if dx*dx+dy*dy <= 9 {
				c.set(x+dx, y+dy, col)
			}
		}
	}
}

func (c canvas) text(x, y int, s string, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// drawAxes paints the background, the plot box (or the projected 3-D box)
// and the title and axis labels.
func drawAxes(c canvas, fig *Figure, vp viewport) {
	c.fill(colorBackground)
	b := c.img.Bounds()

	if fig.Kind == Kind3D {
		for _, e := range fig.Frame() {
			x0, y0 := vp.pixel(e[0])
			x1, y1 := vp.pixel(e[1])
			c.line(x0, y0, x1, y1, colorGrid)
		}
	} else {
		l, t := vp.left, vp.top
		r, btm := vp.left+vp.w, vp.top+vp.h
		c.line(l, t, r, t, colorAxis)
		c.line(r, t, r, btm, colorAxis)
		c.line(r, btm, l, btm, colorAxis)
		c.line(l, btm, l, t, colorAxis)

		lo := fmt.Sprintf("%.4g", vp.minX)
		hi := fmt.Sprintf("%.4g", vp.minX+vp.rangeX)
		c.text(l, btm+16, lo, colorAxis)
		c.text(r-textWidth(hi), btm+16, hi, colorAxis)
		c.text(2, btm, fmt.Sprintf("%.4g", vp.minY), colorAxis)
		c.text(2, t+10, fmt.Sprintf("%.4g", vp.minY+vp.rangeY), colorAxis)
	}

	if len(fig.Labels) >= 2 {
		xl := fig.Labels[0]
		c.text(vp.left+vp.w/2-textWidth(xl)/2, b.Max.Y-6, xl, colorAxis)
		c.text(2, vp.top+vp.h/2, fig.Labels[1], colorAxis)
	}
	if fig.Kind == Kind3D && len(fig.Labels) == 3 {
		c.text(b.Max.X-textWidth(fig.Labels[2])-4, vp.top+12, fig.Labels[2], colorAxis)
	}
	if fig.Title != "" {
		c.text(b.Max.X/2-textWidth(fig.Title)/2, 14, fig.Title, colorAxis)
	}
}

// drawPath strokes pts[:n] as one connected line with start/end markers.
func drawPath(c canvas, pts []Point, n int, vp viewport) {
	if n <= 0 {
		return
	}
	px, py := vp.pixel(pts[0])
	for i := 1; i < n; i++ {
		x, y := vp.pixel(pts[i])
		c.line(px, py, x, y, colorLine)
		px, py = x, y
	}
	sx, sy := vp.pixel(pts[0])
	c.marker(sx, sy, colorStart)
	c.marker(px, py, colorEnd)
}

// renderStatic draws the whole figure into a new RGBA image.
func renderStatic(fig *Figure, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	pts := fig.Project()
	vp := newViewport(pts, fig.Frame(), width, height)
	c := canvas{img: img}
	drawAxes(c, fig, vp)
	drawPath(c, pts, len(pts), vp)
	return img
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
