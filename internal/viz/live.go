package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/walksim/internal/plot"
)

const (
	defaultCanvasWidth  = 70
	defaultCanvasHeight = 20
)

type TickMsg time.Time

// LiveModel reveals a figure in the terminal, one position per frame.
// Frame k shows exactly the first k positions, as in the GIF animation.
type LiveModel struct {
	fig      *plot.Figure
	frame    int
	running  bool
	theme    int
	width    int
	height   int
	interval time.Duration
}

func NewLiveModel(fig *plot.Figure) LiveModel {
	interval := time.Duration(fig.IntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = plot.FrameInterval
	}
	return LiveModel{
		fig:      fig,
		running:  true,
		width:    defaultCanvasWidth,
		height:   defaultCanvasHeight,
		interval: interval,
	}
}

// WithTheme returns a copy of m drawn in the named theme. Unknown names keep
// the current one.
func (m LiveModel) WithTheme(name string) LiveModel {
	for i, t := range Themes {
		if t.Name == name {
			m.theme = i
		}
	}
	return m
}

// Frame is the number of positions currently shown.
func (m LiveModel) Frame() int { return m.frame }

// Done reports whether every position is shown.
func (m LiveModel) Done() bool { return m.frame >= len(m.fig.Points) }

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.frame = 0
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "right", "l":
			if !m.running && !m.Done() {
				m.frame++
			}
		case "left", "h":
			if !m.running && m.frame > 0 {
				m.frame--
			}
		}
	case tea.WindowSizeMsg:
		m.width = max(10, msg.Width-4)
		m.height = max(4, msg.Height-8)
	case TickMsg:
		if m.running && !m.Done() {
			m.frame++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m LiveModel) View() string {
	t := Themes[m.theme]
	s := NewStyles(t)

	c := NewCanvas(m.width, m.height)
	c.DrawFigure(m.fig, m.frame)

	total := len(m.fig.Points)
	pct := 1.0
	if total > 0 {
		pct = float64(m.frame) / float64(total)
	}

	status := "running"
	if !m.running {
		status = "paused"
	} else if m.Done() {
		status = "done"
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("%s (%s)", m.fig.Title, m.fig.Kind)))
	b.WriteString("\n")
	b.WriteString(s.Canvas.Render(c.String()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		ProgressBar(t, pct, 30),
		s.Value.Render(fmt.Sprintf("%d/%d", m.frame, total)),
		s.Label.Render(status),
	))
	b.WriteString(s.Help.Render("space pause · r restart · t theme · ←/→ step · q quit"))
	return b.String()
}
