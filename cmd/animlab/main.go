package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/EmanueleCodes/animlab/internal/config"
	"github.com/EmanueleCodes/animlab/internal/ease"
	"github.com/EmanueleCodes/animlab/internal/engine"
	"github.com/EmanueleCodes/animlab/internal/export"
	"github.com/EmanueleCodes/animlab/internal/metrics"
	"github.com/EmanueleCodes/animlab/internal/scene"
	"github.com/EmanueleCodes/animlab/internal/store"
	"github.com/EmanueleCodes/animlab/internal/value"
	"github.com/EmanueleCodes/animlab/internal/viz"
)

var (
	dataDir    string
	fps        float64
	steps      int
	seed       int64
	interrupt  string
	configFile string
	jsonOut    string
	svgOut     string
	svgWidth   int
	svgHeight  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "animlab",
		Short: "animation timeline lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".animlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a scene and record samples",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().Float64Var(&fps, "fps", 60, "sample rate for timed drive")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random stagger seed")
	runCmd.Flags().StringVar(&interrupt, "interrupt", "", "interrupt policy override")
	runCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")

	scrubCmd := &cobra.Command{
		Use:   "scrub [scene]",
		Short: "sample a scene over external progress",
		Args:  cobra.MaximumNArgs(1),
		RunE:  scrubScene,
	}
	scrubCmd.Flags().IntVar(&steps, "steps", 100, "number of progress samples")
	scrubCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")

	curvesCmd := &cobra.Command{
		Use:   "curves [easing...]",
		Short: "plot easing curves",
		RunE:  plotCurves,
	}

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "play a scene live in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&fps, "fps", 60, "frame rate")
	liveCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot recorded samples",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&jsonOut, "out", "", "output path (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render run traces to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "traces.svg", "output path")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 960, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 480, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, scrubCmd, curvesCmd, liveCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig picks the scene: an explicit file wins, then a preset name
// argument, then the default scene. Changed flags override scene values.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scene: %w", err)
		}
		cfg = loaded
	case len(args) > 0:
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown scene: %s (available: %v)", args[0], config.ListPresets())
		}
		copied := *cfg
		cfg = &copied
	default:
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("seed") {
		cfg.Stagger.Seed = seed
	}
	if cmd.Flags().Changed("interrupt") {
		cfg.Interrupt = interrupt
	}
	return cfg, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg.Drive = "timed"

	slot, collector, err := scene.Build(cfg)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	observed := []metrics.Metric{
		metrics.NewFrameCount(),
		metrics.NewMaxOvershoot(slot.Master()),
		metrics.NewSettle(),
	}

	samples := store.NewSamples(slot.Elements(), slot.Master().Names())

	fmt.Printf("running %s...\n", cfg.Name)
	start := time.Now()

	if err := slot.StartTimed(0, engine.Forward); err != nil {
		return err
	}

	span := slot.Span()
	dt := 1 / fps
	for clock := 0.0; ; clock += dt {
		frame, err := slot.Tick(clock)
		if err != nil {
			return err
		}
		samples.Add(frame)
		for _, m := range observed {
			m.Observe(frame)
		}
		if frame.Done || clock > span {
			break
		}
	}

	elapsed := time.Since(start)

	results := make(map[string]float64, len(observed))
	for _, m := range observed {
		results[m.Name()] = m.Value()
	}

	meta := store.RunMetadata{
		Scene:     cfg.Name,
		Drive:     cfg.Drive,
		Interrupt: cfg.Interrupt,
		Seed:      cfg.Stagger.Seed,
		Fps:       fps,
		Duration:  span,
		Metrics:   results,
	}
	runID, err := st.Save(meta, samples)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", samples.Len())
	fmt.Println("\nmetrics:")
	for name, val := range results {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	printWarnings(collector)

	return nil
}

func scrubScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg.Drive = "scrubbed"

	slot, collector, err := scene.Build(cfg)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	samples := store.NewSamples(slot.Elements(), slot.Master().Names())

	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		progress := float64(i) / float64(steps)
		frame, err := slot.FeedScrub(progress)
		if err != nil {
			return err
		}
		samples.Add(frame)
	}

	meta := store.RunMetadata{
		Scene:     cfg.Name,
		Drive:     cfg.Drive,
		Interrupt: cfg.Interrupt,
		Seed:      cfg.Stagger.Seed,
		Duration:  slot.Span(),
		Metrics:   map[string]float64{},
	}
	runID, err := st.Save(meta, samples)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", samples.Len())
	printWarnings(collector)

	return nil
}

func plotCurves(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = []string{"linear", "in-quad", "out-cubic", "in-out-sine", "spring"}
	}

	const points = 80
	for _, name := range names {
		spec, err := ease.Parse(name)
		if err != nil {
			return err
		}

		data := make([]float64, points+1)
		for i := 0; i <= points; i++ {
			data[i] = ease.Apply(float64(i)/points, spec)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	slot, collector, err := scene.Build(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(slot, collector, cfg.Name, fps, cfg.Drive == "scrubbed")
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tDRIVE\tDURATION\tFPS\tINTERRUPT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2fs\t%.0f\t%s\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Drive,
			run.Duration,
			run.Fps,
			run.Interrupt,
		)
	}

	return w.Flush()
}

// numericTraces converts sample cells back to plottable numbers. Color
// cells have no scalar reading and are skipped.
func numericTraces(columns []string, rows [][]string) []export.Trace {
	traces := make([]export.Trace, 0, len(columns))
	for c, label := range columns {
		values := make([]float64, len(rows))
		ok := true
		for i, row := range rows {
			if c >= len(row) {
				ok = false
				break
			}
			v, err := value.Parse(row[c])
			if err != nil || v.Kind == value.KindColor {
				ok = false
				break
			}
			values[i] = v.Num
		}
		if ok {
			traces = append(traces, export.Trace{Label: label, Values: values})
		}
	}
	return traces
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	columns, _, rows, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("samples: %d\n\n", len(rows))

	traces := numericTraces(columns, rows)
	maxPlots := 6
	if len(traces) > maxPlots {
		traces = traces[:maxPlots]
	}

	for _, tr := range traces {
		graph := asciigraph.Plot(tr.Values,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(tr.Label),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	columns, times, rows, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := append([]string{"time"}, columns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, row := range rows {
		record := append([]string{strconv.FormatFloat(times[i], 'f', 6, 64)}, row...)
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	columns, times, rows, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	if jsonOut != "" {
		if err := store.ExportJSON(jsonOut, *meta, columns, times, rows); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonOut)
		return nil
	}
	return store.ExportJSONStdout(*meta, columns, times, rows)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	columns, times, rows, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	traces := numericTraces(columns, rows)
	svg := export.TraceSVG(times, traces, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("not enough data to render")
	}

	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d traces)\n", svgOut, len(traces))
	return nil
}

func printWarnings(collector *engine.Collector) {
	warnings := collector.Warnings()
	if len(warnings) == 0 {
		return
	}
	fmt.Println("\nwarnings:")
	for _, w := range warnings {
		fmt.Printf("  [%s] %s\n", w.Code, w.Message)
	}
}
