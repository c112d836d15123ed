package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/matcube/internal/config"
	"github.com/san-kum/matcube/internal/experiment"
	"github.com/san-kum/matcube/internal/matrix"
	"github.com/san-kum/matcube/internal/playback"
	"github.com/san-kum/matcube/internal/storage"
	"github.com/san-kum/matcube/internal/viz"
)

var (
	dataDir   string
	dimM      int
	dimN      int
	dimK      int
	algorithm string
	order     string
	tileM     int
	tileN     int
	tileK     int
	outer     string
	inner     string
	speed     int
	seed      int64
	// Config file
	configFile string
	// Preset name
	preset string
	// Step count for trace
	traceSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "matcube",
		Short: "matrix multiplication traversal lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to live playback when no command given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".matcube", "data directory")
	addRunFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a traversal to completion and record it",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal playback",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print the first steps of a traversal",
		RunE:  runTrace,
	}
	addRunFlags(traceCmd)
	traceCmd.Flags().IntVar(&traceSteps, "steps", 32, "number of steps to print")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot row magnitudes of a recorded run's C",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%-16s %s\n", name, describe(cfg))
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, traceCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&dimM, "m", config.DefaultDim, "rows of A and C")
	cmd.Flags().IntVar(&dimN, "n", config.DefaultDim, "columns of B and C")
	cmd.Flags().IntVar(&dimK, "k", config.DefaultDim, "shared dimension")
	cmd.Flags().StringVar(&algorithm, "algorithm", "naive", "traversal algorithm (naive, tiled)")
	cmd.Flags().StringVar(&order, "order", config.DefaultOrder, "naive loop order")
	cmd.Flags().IntVar(&tileM, "tile-m", config.DefaultTile, "tile size on m")
	cmd.Flags().IntVar(&tileN, "tile-n", config.DefaultTile, "tile size on n")
	cmd.Flags().IntVar(&tileK, "tile-k", config.DefaultTile, "tile size on k")
	cmd.Flags().StringVar(&outer, "outer", config.DefaultOrder, "tiled outer loop order")
	cmd.Flags().StringVar(&inner, "inner", config.DefaultOrder, "tiled inner loop order")
	cmd.Flags().IntVar(&speed, "speed", config.DefaultSpeed, "steps per playback tick")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "operand fill seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves precedence: defaults, then config file, then
// preset, then explicit flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		cfg = p
	}

	flags := map[string]func(){
		"m":         func() { cfg.M = dimM },
		"n":         func() { cfg.N = dimN },
		"k":         func() { cfg.K = dimK },
		"algorithm": func() { cfg.Algorithm = algorithm },
		"order":     func() { cfg.Order = order },
		"tile-m":    func() { cfg.TileM = tileM },
		"tile-n":    func() { cfg.TileN = tileN },
		"tile-k":    func() { cfg.TileK = tileK },
		"outer":     func() { cfg.Outer = outer },
		"inner":     func() { cfg.Inner = inner },
		"speed":     func() { cfg.Speed = speed },
		"seed":      func() { cfg.Seed = seed },
	}
	for name, apply := range flags {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	return cfg, nil
}

// configure builds a ready-to-run controller plus its metric observer.
func configure(cfg *config.Config) (*playback.Controller, *experiment.MetricObserver, error) {
	reg := experiment.NewRegistry()
	alg, err := reg.Algorithm(cfg.Algorithm, cfg)
	if err != nil {
		return nil, nil, err
	}

	d := cfg.Dims()
	a := matrix.Random(d.M, d.K, cfg.Seed)
	b := matrix.Random(d.K, d.N, cfg.Seed+1)

	ctrl := playback.New()
	obs := experiment.NewMetricObserver(reg.DefaultMetrics())
	ctrl.AddObserver(obs)

	if err := ctrl.Configure(d, alg, a, b); err != nil {
		return nil, nil, err
	}
	return ctrl, obs, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	ctrl, obs, err := configure(cfg)
	if err != nil {
		return err
	}

	if err := ctrl.Start(); err != nil {
		return err
	}
	_, total := ctrl.Progress()
	if err := ctrl.Tick(total); err != nil {
		return err
	}

	acc := ctrl.Accum()
	verified := matrix.Equal(acc.C(), matrix.Mul(acc.A(), acc.B()), 1e-9)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "algorithm\t%s\n", ctrl.AlgorithmName())
	fmt.Fprintf(w, "dims\t%s\n", ctrl.Dims())
	fmt.Fprintf(w, "steps\t%d\n", total)
	fmt.Fprintf(w, "verified\t%v\n", verified)
	for _, name := range sortedKeys(obs.Values()) {
		fmt.Fprintf(w, "%s\t%.0f\n", name, obs.Values()[name])
	}
	w.Flush()

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(storage.RunMetadata{
		Algorithm: ctrl.AlgorithmName(),
		M:         cfg.M, N: cfg.N, K: cfg.K,
		Seed:    cfg.Seed,
		Steps:   total,
		Metrics: obs.Values(),
	}, acc.C(), acc.AHits(), acc.BHits())
	if err != nil {
		return err
	}
	fmt.Printf("saved run %s\n", runID)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	ctrl, obs, err := configure(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(ctrl, obs, cfg.Speed))
	_, err = p.Run()
	return err
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	reg := experiment.NewRegistry()
	alg, err := reg.Algorithm(cfg.Algorithm, cfg)
	if err != nil {
		return err
	}
	gen, err := alg.Generator(cfg.Dims())
	if err != nil {
		return err
	}

	n := traceSteps
	if n > gen.Len() {
		n = gen.Len()
	}
	fmt.Printf("%s on %s, %d of %d steps:\n", alg.Name(), cfg.Dims(), n, gen.Len())
	for t := 0; t < n; t++ {
		fmt.Printf("%4d  %s\n", t, gen.At(t))
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tDIMS\tSTEPS\tTIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%dx%d\t%d\t%s\n",
			run.ID, run.Algorithm, run.M, run.N, run.K, run.Steps,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	c, err := store.LoadC(args[0])
	if err != nil {
		return err
	}

	// One sample per output row: mean absolute value.
	rows := make([]float64, c.Rows)
	for i := 0; i < c.Rows; i++ {
		sum := 0.0
		for j := 0; j < c.Cols; j++ {
			v := c.At(i, j)
			if v < 0 {
				v = -v
			}
			sum += v
		}
		rows[i] = sum / float64(c.Cols)
	}

	fmt.Println(asciigraph.Plot(rows, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("mean |C| per row")))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func describe(cfg *config.Config) string {
	if cfg.Algorithm == "tiled" {
		return fmt.Sprintf("tiled %dx%dx%d outer=%s inner=%s", cfg.TileM, cfg.TileN, cfg.TileK, cfg.Outer, cfg.Inner)
	}
	return "naive order=" + cfg.Order
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
