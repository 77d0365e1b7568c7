package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/walksim/internal/walk"
)

const maxCharts = 6

// AxisCharts plots each coordinate of the path against the step index, one
// chart per axis for at most the first six axes.
func AxisCharts(p walk.Path, width, height int) []string {
	if len(p) == 0 {
		return nil
	}

	numVars := p.Dim()
	if numVars > maxCharts {
		numVars = maxCharts
	}

	charts := make([]string, 0, numVars)
	for axis := 0; axis < numVars; axis++ {
		data := make([]float64, len(p))
		for i, pos := range p {
			data[i] = pos[axis]
		}
		charts = append(charts, asciigraph.Plot(data,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(fmt.Sprintf("x%d vs step", axis)),
		))
	}
	return charts
}
