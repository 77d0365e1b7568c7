package plot

import (
	"context"
	"image"
	"image/gif"
	"log/slog"
	"time"

	"github.com/san-kum/walksim/internal/logging"
)

// FrameInterval is the delay between animation frames.
const FrameInterval = 50 * time.Millisecond

// Frames returns len(Points)+1 frames; frame k shows the first k points.
// Axes are fixed to the bounds of the complete path on every frame.
func Frames(fig *Figure, width, height int) []*image.Paletted {
	pts := fig.Project()
	vp := newViewport(pts, fig.Frame(), width, height)
	rect := image.Rect(0, 0, width, height)

	trail := image.NewPaletted(rect, palette)
	tc := canvas{img: trail}
	drawAxes(tc, fig, vp)

	frames := make([]*image.Paletted, 0, len(pts)+1)
	for k := 0; k <= len(pts); k++ {
		if k >= 2 {
			x0, y0 := vp.pixel(pts[k-2])
			x1, y1 := vp.pixel(pts[k-1])
			tc.line(x0, y0, x1, y1, colorLine)
		}

		frame := image.NewPaletted(rect, palette)
		copy(frame.Pix, trail.Pix)
		if k >= 1 {
			fc := canvas{img: frame}
			sx, sy := vp.pixel(pts[0])
			fc.marker(sx, sy, colorStart)
			ex, ey := vp.pixel(pts[k-1])
			fc.marker(ex, ey, colorEnd)
		}
		frames = append(frames, frame)
	}
	return frames
}

// animation assembles frames into a looping GIF with a fixed delay. Each
// frame is logged at trace level.
func animation(fig *Figure, width, height int, logger *slog.Logger) *gif.GIF {
	interval := time.Duration(fig.IntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = FrameInterval
	}
	delay := int(interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}

	frames := Frames(fig, width, height)
	anim := &gif.GIF{LoopCount: 0}
	for k, f := range frames {
		logger.Log(context.Background(), logging.LevelTrace, "rendered frame", "frame", k, "points", k)
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, delay)
	}
	return anim
}
