package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/san-kum/walksim/internal/config"
	"github.com/san-kum/walksim/internal/logging"
	"github.com/san-kum/walksim/internal/plot"
	"github.com/san-kum/walksim/internal/viz"
	"github.com/san-kum/walksim/internal/walk"
)

var (
	start      []float64
	steps      int
	moves      string
	weights    []float64
	seed       int64
	out        string
	animate    bool
	saveFigure bool
	preview    bool
	configFile string
	preset     string
	logLevel   string
	theme      string
	width      int
	height     int
)

// main registers the walksim commands and exits with status 1 if the
// selected command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "walksim",
		Short:        "discrete random walk simulator",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (info, debug, trace)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", viz.ThemeOcean.Name, "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate a walk and plot it",
		Args:  cobra.NoArgs,
		RunE:  runWalk,
	}
	addWalkFlags(runCmd)
	runCmd.Flags().StringVarP(&out, "out", "o", config.DefaultOutput, "output file (.png, .jpg, .svg, or .gif when animated)")
	runCmd.Flags().BoolVar(&animate, "animate", false, "write an animated gif")
	runCmd.Flags().BoolVar(&saveFigure, "save-figure", false, "also write the figure beside the output as <name>.fig")
	runCmd.Flags().BoolVar(&preview, "preview", false, "print a terminal preview and per-axis charts")
	runCmd.Flags().IntVar(&width, "width", plot.DefaultWidth, "image width in pixels")
	runCmd.Flags().IntVar(&height, "height", plot.DefaultHeight, "image height in pixels")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "reveal a walk step by step in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addWalkFlags(liveCmd)

	replotCmd := &cobra.Command{
		Use:   "replot [figure]",
		Short: "render a saved .fig file again",
		Args:  cobra.ExactArgs(1),
		RunE:  replot,
	}
	replotCmd.Flags().StringVarP(&out, "out", "o", "", "output file (defaults to the figure name)")
	replotCmd.Flags().BoolVar(&animate, "animate", false, "write an animated gif")
	replotCmd.Flags().IntVar(&width, "width", plot.DefaultWidth, "image width in pixels")
	replotCmd.Flags().IntVar(&height, "height", plot.DefaultHeight, "image height in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file with the resolved settings",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	addWalkFlags(initCmd)

	rootCmd.AddCommand(runCmd, liveCmd, replotCmd, presetsCmd, initCmd)
	return rootCmd
}

func addWalkFlags(cmd *cobra.Command) {
	cmd.Flags().Float64SliceVar(&start, "start", []float64{0, 0}, "starting position, comma separated")
	cmd.Flags().IntVarP(&steps, "steps", "n", config.DefaultSteps, "number of steps")
	cmd.Flags().StringVar(&moves, "moves", "", `move set, e.g. "1,0;-1,0;0,1;0,-1" (default: unit moves)`)
	cmd.Flags().Float64SliceVar(&weights, "weights", nil, "move weights, comma separated (default: uniform)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: process generator)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and explicitly set flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Start = append([]float64(nil), start...)
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("moves") {
		m, err := parseMoves(moves)
		if err != nil {
			return nil, err
		}
		cfg.Moves = m
	}
	if flags.Changed("weights") {
		cfg.Weights = append([]float64(nil), weights...)
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if f := flags.Lookup("out"); f != nil && f.Changed {
		cfg.Output = out
	}
	if f := flags.Lookup("animate"); f != nil && f.Changed {
		cfg.Animate = animate
	}
	if f := flags.Lookup("save-figure"); f != nil && f.Changed {
		cfg.SaveFigure = saveFigure
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// parseMoves reads semicolon-separated moves of comma-separated coordinates.
func parseMoves(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var result [][]float64
	for i, part := range strings.Split(s, ";") {
		fields := strings.Split(strings.TrimSpace(part), ",")
		move := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("move %d: %w", i, err)
			}
			move = append(move, v)
		}
		result = append(result, move)
	}
	return result, nil
}

func newEngine(cfg *config.Config, logger *slog.Logger) (*walk.Engine, error) {
	opts := []walk.Option{walk.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, walk.WithSource(rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)))))
	}
	return walk.NewFromConfig(cfg.EngineConfig(), opts...)
}

func runWalk(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())

	eng, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}
	path := eng.Path()

	plotter := plot.New(plot.WithLogger(logger), plot.WithSize(width, height))
	res, err := plotter.Render(path, cfg.Output, plot.RenderOptions{
		Animate:    cfg.Animate,
		SaveFigure: cfg.SaveFigure,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printSummary(w, eng, res)

	if preview {
		fig, err := plot.NewFigure(path)
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprint(w, viz.NewStyles(viz.GetTheme(theme)).Canvas.Render(viz.Preview(fig, 70, 20).String()))
		fmt.Fprintln(w)
		for _, chart := range viz.AxisCharts(path, 70, 8) {
			fmt.Fprintln(w, chart)
			fmt.Fprintln(w)
		}
	}
	return nil
}

func printSummary(w io.Writer, eng *walk.Engine, res *plot.Output) {
	p := message.NewPrinter(language.English)
	fields := []viz.Field{
		{Label: "dimension", Value: p.Sprintf("%d", eng.Dim())},
		{Label: "steps", Value: p.Sprintf("%d", eng.StepCount())},
		{Label: "moves", Value: p.Sprintf("%d", len(eng.Moves()))},
		{Label: "start", Value: formatPosition(eng.Start())},
	}
	if last := eng.Path().Last(); last != nil {
		fields = append(fields, viz.Field{Label: "end", Value: formatPosition(last)})
	}
	fields = append(fields, viz.Field{Label: "image", Value: res.Image})
	if res.Frames > 1 {
		fields = append(fields, viz.Field{Label: "frames", Value: p.Sprintf("%d", res.Frames)})
	}
	if res.Figure != "" {
		fields = append(fields, viz.Field{Label: "figure", Value: res.Figure})
	}
	fmt.Fprintln(w, viz.Summary(viz.GetTheme(theme), "random walk", fields))
}

func formatPosition(p walk.Position) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())

	eng, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}
	fig, err := plot.NewFigure(eng.Path())
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewLiveModel(fig).WithTheme(theme))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func replot(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger(logLevel, cmd.ErrOrStderr())

	fig, err := plot.LoadFigure(args[0])
	if err != nil {
		return err
	}

	dest := out
	if dest == "" {
		dest = strings.TrimSuffix(args[0], plot.FigureExt)
	}

	plotter := plot.New(plot.WithLogger(logger), plot.WithSize(width, height))
	res, err := plotter.RenderFigure(fig, dest, plot.RenderOptions{Animate: animate})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", res.Image)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "presets:")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "  %-10s dim=%d steps=%d\n", name, len(cfg.Start), cfg.Steps)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}
