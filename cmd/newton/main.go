package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/johnxnguyen/newton/internal/analysis"
	"github.com/johnxnguyen/newton/internal/config"
	"github.com/johnxnguyen/newton/internal/experiment"
	"github.com/johnxnguyen/newton/internal/export"
	"github.com/johnxnguyen/newton/internal/field"
	"github.com/johnxnguyen/newton/internal/gui"
	"github.com/johnxnguyen/newton/internal/scene"
	"github.com/johnxnguyen/newton/internal/sim"
	"github.com/johnxnguyen/newton/internal/storage"
	"github.com/johnxnguyen/newton/internal/viz"
)

var (
	dataDir    string
	dt         float64
	steps      int
	count      uint32
	seed       int64
	dy         float64
	integrator string
	saveRun    bool
	runs       int
	outFile    string
	plotWidth  int
	plotHeight int
	themeName  string
	speed      int
	swarmSize  int
	sound      bool
	sweepAxis  string
	sweepFrom  float64
	sweepTo    float64
	sweepN     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "newton",
		Short: "central-gravity orbit simulator",
		Run: func(cmd *cobra.Command, args []string) {
			// No subcommand: open the windowed viewer on the menu.
			gui.RunInteractive(sound)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".newton", "data directory")
	rootCmd.Flags().BoolVar(&sound, "sound", false, "enable sonification")

	runCmd := &cobra.Command{
		Use:   "run [preset|config.yaml]",
		Short: "run a simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "override timestep")
	runCmd.Flags().IntVar(&steps, "steps", 0, "override step count")
	runCmd.Flags().Uint32Var(&count, "bodies", 0, "override generated body count")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "override distribution seed")
	runCmd.Flags().Float64Var(&dy, "dy", 0, "override distribution drift")
	runCmd.Flags().StringVar(&integrator, "integrator", "", "integrator (symplectic-euler, explicit-euler)")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run")
	runCmd.Flags().IntVar(&runs, "runs", 1, "run an ensemble of n reseeded variants")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresetConfigs,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [preset|config.yaml|run-id]",
		Short: "plot trajectories in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 100, "plot width in cells")
	plotCmd.Flags().IntVar(&plotHeight, "height", 36, "plot height in cells")

	liveCmd := &cobra.Command{
		Use:   "live [preset|config.yaml]",
		Short: "watch a simulation live in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&themeName, "theme", "default", "color theme (default, mono)")
	liveCmd.Flags().IntVar(&speed, "speed", 1, "field steps per tick")

	guiCmd := &cobra.Command{
		Use:   "gui [preset|config.yaml]",
		Short: "open the windowed viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&swarmSize, "swarm", 0, "swarm mode with n particles")
	guiCmd.Flags().BoolVar(&sound, "sound", false, "enable sonification")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [preset|config.yaml|run-id]",
		Short: "orbital period and eccentricity per body",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [preset|config.yaml|run-id]",
		Short: "export sampled states as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [preset|config.yaml|run-id]",
		Short: "export the run as one JSON document",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [preset|config.yaml|run-id]",
		Short: "render trajectories as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&plotWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&plotHeight, "height", 800, "image height")

	sceneCmd := &cobra.Command{
		Use:   "scene [scene.yaml]",
		Short: "run a scene file",
		Args:  cobra.ExactArgs(1),
		RunE:  runScene,
	}
	sceneCmd.Flags().IntVar(&steps, "steps", 5000, "steps to run")

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset|config.yaml]",
		Short: "sweep one config axis and tabulate metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepAxis, "axis", "dy", "axis to vary (dy, dt, seed, count)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 10, "last value")
	sweepCmd.Flags().IntVar(&sweepN, "points", 5, "number of values")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "step throughput for growing body counts",
		RunE:  benchField,
	}

	rootCmd.AddCommand(runCmd, listCmd, presetsCmd, plotCmd, liveCmd, guiCmd,
		analyzeCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, sceneCmd, sweepCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyOverrides copies changed CLI flags onto the resolved config.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("bodies") {
		cfg.Distribute.Count = count
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("dy") {
		cfg.Distribute.DY = dy
	}
}

// resolveResult turns a preset name or config path into a fresh run,
// or a saved run id into its recorded result.
func resolveResult(arg string) (*config.Config, *sim.Result, error) {
	if cfg, err := experiment.ResolveConfig(arg); err == nil {
		result, err := experiment.New(cfg).Run(context.Background())
		if err != nil {
			return nil, nil, err
		}
		return cfg, result, nil
	}

	st := storage.New(dataDir)
	meta, err := st.Load(arg)
	if err != nil {
		return nil, nil, fmt.Errorf("unknown preset, config file, or run id: %s", arg)
	}
	result, err := st.LoadResult(arg)
	if err != nil {
		return nil, nil, err
	}
	cfg := &config.Config{
		Name: meta.Name, G: meta.G, SolarMass: meta.SolarMass,
		MinDist: meta.MinDist, MaxDist: meta.MaxDist,
		Dt: meta.Dt, Steps: meta.Steps, SampleEvery: meta.SampleEvery, Seed: meta.Seed,
	}
	return cfg, result, nil
}

func printMetrics(metrics map[string]float64) {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %-22s %.6g\n", name, metrics[name])
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := experiment.ResolveConfig(args[0])
	if err != nil {
		return err
	}
	applyOverrides(cmd, cfg)

	exp := experiment.New(cfg)

	if runs > 1 {
		return runEnsemble(exp)
	}

	runner, err := exp.NewRunner()
	if err != nil {
		return err
	}
	if integrator != "" {
		integ, err := experiment.NewRegistry().GetIntegrator(integrator)
		if err != nil {
			return err
		}
		runner.Field.SetIntegrator(integ)
	}

	fmt.Printf("running %s: %d bodies, %d steps at dt=%g\n",
		cfg.Name, runner.Field.Len(), cfg.Steps, cfg.Dt)

	result, err := runner.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v (%d frames)\n", result.Duration.Round(time.Millisecond), len(result.Frames))
	printMetrics(result.Metrics)

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg, result)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved as %s\n", runID)
	}
	return nil
}

func runEnsemble(exp *experiment.Experiment) error {
	cfg := exp.Config()
	fmt.Printf("running %d variants of %s (seeds %d..%d)\n",
		runs, cfg.Name, cfg.Seed, cfg.Seed+int64(runs)-1)

	results, err := exp.Ensemble(runs).Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tENERGY_DRIFT\tANGMOM_DRIFT\tIN_BOUNDS")
	for i, result := range results {
		fmt.Fprintf(w, "%d\t%.3e\t%.3e\t%.4f\n",
			cfg.Seed+int64(i),
			result.Metrics["energy_drift"],
			result.Metrics["angular_momentum_drift"],
			result.Metrics["radius_bounds"])
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	metas, err := st.List()
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tBODIES\tSTEPS\tDT\tSEED")
	for _, m := range metas {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%g\t%d\n",
			m.ID, m.Timestamp.Format("2006-01-02 15:04:05"), m.Bodies, m.Steps, m.Dt, m.Seed)
	}
	return w.Flush()
}

func listPresetConfigs(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tG\tSOLAR_MASS\tBODIES\tGENERATED\tSTEPS\tDT")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%d\t%d\t%d\t%g\n",
			cfg.Name, cfg.G, cfg.SolarMass, len(cfg.Bodies), cfg.Distribute.Count, cfg.Steps, cfg.Dt)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, result, err := resolveResult(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d frames\n\n", cfg.Name, len(result.Frames))
	fmt.Println(viz.RenderTrajectories(result, plotWidth, plotHeight))
	printMetrics(result.Metrics)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := experiment.ResolveConfig(args[0])
	if err != nil {
		return err
	}
	viz.SetTheme(themeName)

	rebuild := func() (*field.Field, error) {
		return experiment.New(cfg).BuildField()
	}
	f, err := rebuild()
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(f, rebuild, cfg.Name, speed))
	_, err = p.Run()
	return err
}

func runGUI(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		gui.RunInteractive(sound)
		return nil
	}
	cfg, err := experiment.ResolveConfig(args[0])
	if err != nil {
		return err
	}
	gui.Run(cfg, swarmSize, sound)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	cfg, result, err := resolveResult(args[0])
	if err != nil {
		return err
	}

	sampleEvery := cfg.SampleEvery
	if sampleEvery < 1 {
		sampleEvery = 1
	}
	interval := cfg.Dt * float64(sampleEvery)

	fmt.Printf("%s: %d frames at interval %g\n\n", cfg.Name, len(result.Frames), interval)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tRADIAL_PERIOD\tECCENTRICITY")
	for _, id := range result.IDs() {
		series := analysis.RadiusSeries(result, id)

		period := "-"
		if p, err := analysis.DominantPeriod(series, interval); err == nil {
			period = fmt.Sprintf("%.4g", p)
		}
		ecc := "-"
		if e, err := analysis.Eccentricity(series); err == nil {
			ecc = fmt.Sprintf("%.4f", e)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", id, period, ecc)
	}
	return w.Flush()
}

func outWriter() (*os.File, func(), error) {
	if outFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, result, err := resolveResult(args[0])
	if err != nil {
		return err
	}
	w, done, err := outWriter()
	if err != nil {
		return err
	}
	defer done()
	return storage.WriteCSV(w, result)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, result, err := resolveResult(args[0])
	if err != nil {
		return err
	}
	w, done, err := outWriter()
	if err != nil {
		return err
	}
	defer done()
	return storage.WriteJSON(w, cfg, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, result, err := resolveResult(args[0])
	if err != nil {
		return err
	}
	w, done, err := outWriter()
	if err != nil {
		return err
	}
	defer done()
	return export.WriteSVG(w, result, plotWidth, plotHeight)
}

func runScene(cmd *cobra.Command, args []string) error {
	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	f, err := s.Build()
	if err != nil {
		return err
	}

	fmt.Printf("running scene %s: %d bodies, %d steps at dt=%g\n",
		s.Name, f.Len(), steps, f.Timestep())

	runner := sim.NewRunner(f, steps)
	runner.SampleEvery = 10
	for _, m := range experiment.DefaultMetrics() {
		runner.AddMetric(m)
	}
	result, err := runner.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Duration.Round(time.Millisecond))
	printMetrics(result.Metrics)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := experiment.ResolveConfig(args[0])
	if err != nil {
		return err
	}
	if sweepN < 2 {
		return fmt.Errorf("sweep needs at least 2 points, got %d", sweepN)
	}

	values := make([]float64, sweepN)
	for i := range values {
		values[i] = sweepFrom + (sweepTo-sweepFrom)*float64(i)/float64(sweepN-1)
	}

	s := &experiment.Sweep{Base: cfg, Axis: experiment.Axis(sweepAxis), Values: values}
	points, err := s.Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tENERGY_DRIFT\tANGMOM_DRIFT\tIN_BOUNDS\n", sweepAxis)
	for _, p := range points {
		fmt.Fprintf(w, "%g\t%.3e\t%.3e\t%.4f\n",
			p.Value,
			p.Metrics["energy_drift"],
			p.Metrics["angular_momentum_drift"],
			p.Metrics["radius_bounds"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best, ok := experiment.Best(points, "energy_drift"); ok {
		fmt.Printf("\nlowest energy drift at %s=%g\n", sweepAxis, best.Value)
	}
	return nil
}

func benchField(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	fmt.Println("step throughput")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tINTEGRATOR\tSTEPS\tTIME\tSTEPS/SEC")

	benchSteps := 2000
	for _, n := range []uint32{64, 256, 1024, 4096} {
		for _, name := range registry.ListIntegrators() {
			cfg := config.Default()
			cfg.Distribute.Count = n
			cfg.Steps = benchSteps
			cfg.SampleEvery = benchSteps // one final frame; timing, not recording

			runner, err := experiment.New(cfg).NewRunner()
			if err != nil {
				return err
			}
			integ, err := registry.GetIntegrator(name)
			if err != nil {
				return err
			}
			runner.Field.SetIntegrator(integ)

			result, err := runner.Run(context.Background())
			if err != nil {
				return err
			}
			perSec := float64(result.Steps) / result.Duration.Seconds()
			fmt.Fprintf(w, "%d\t%s\t%d\t%v\t%.0f\n",
				n, name, result.Steps, result.Duration.Round(time.Millisecond), perSec)
		}
	}
	return w.Flush()
}
