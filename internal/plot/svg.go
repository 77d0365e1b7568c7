package plot

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// writeSVG emits the figure as a polyline over its axes box.
func writeSVG(w io.Writer, fig *Figure, width, height int) error {
	pts := fig.Project()
	frame := fig.Frame()
	vp := newViewport(pts, frame, width, height)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	if fig.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="16" text-anchor="middle" font-family="monospace" font-size="13">%s</text>
`, width/2, html.EscapeString(fig.Title)))
	}

	if fig.Kind == Kind3D {
		sb.WriteString(`<g stroke="#bbbbbb" stroke-width="1">` + "\n")
		for _, e := range frame {
			x0, y0 := vp.pixel(e[0])
			x1, y1 := vp.pixel(e[1])
			sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>
`, x0, y0, x1, y1))
		}
		sb.WriteString("</g>\n")
	} else {
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="#333333"/>
`, vp.left, vp.top, vp.w, vp.h))
		if len(fig.Labels) >= 2 {
			sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-family="monospace" font-size="12">%s</text>
`, vp.left+vp.w/2, height-6, html.EscapeString(fig.Labels[0])))
			sb.WriteString(fmt.Sprintf(`<text x="4" y="%d" font-family="monospace" font-size="12">%s</text>
`, vp.top+vp.h/2, html.EscapeString(fig.Labels[1])))
		}
	}

	if len(pts) > 0 {
		sb.WriteString(`<path fill="none" stroke="#1f77b4" stroke-width="1.5" d="M`)
		for i, p := range pts {
			x, y := vp.pixel(p)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%d,%d", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%d,%d", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		sx, sy := vp.pixel(pts[0])
		ex, ey := vp.pixel(pts[len(pts)-1])
		sb.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="3" fill="#2ca02c"/>
<circle cx="%d" cy="%d" r="3" fill="#d62728"/>
`, sx, sy, ex, ey))
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
