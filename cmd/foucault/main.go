package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vitor-souza-ime/foucault/internal/compare"
	"github.com/vitor-souza-ime/foucault/internal/config"
	"github.com/vitor-souza-ime/foucault/internal/diffusion"
	"github.com/vitor-souza-ime/foucault/internal/export"
	"github.com/vitor-souza-ime/foucault/internal/figure"
	"github.com/vitor-souza-ime/foucault/internal/material"
	"github.com/vitor-souza-ime/foucault/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	frequency  float64
	amplitude  float64
	length     float64 // mm on the flag, m internally
	points     int
	solverName string
	matNames   []string
	refDepth   float64
	parallel   bool

	cflFactor float64
	timeStep  float64
	settle    int
	samples   int

	withChart    bool
	saveRun      bool
	plainTable   bool
	withProfiles bool
	profileOf    string
	figuresDir   string
	withSVG      bool
)

// main is the entry point for the foucault CLI; it registers commands
// and flags, launches the interactive explorer when no subcommand is
// given, and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "foucault",
		Short: "eddy-current diffusion lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg.Excitation(), cfg.Domain())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".foucault", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare eddy-current losses across materials",
		RunE:  runCompare,
	}
	addPhysicsFlags(compareCmd)
	addSolverFlags(compareCmd)
	compareCmd.Flags().BoolVar(&withChart, "chart", false, "draw the envelope chart")
	compareCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")
	compareCmd.Flags().BoolVar(&plainTable, "plain", false, "unstyled table output")

	runCmd := &cobra.Command{
		Use:   "run [material]",
		Short: "inspect a single material",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuick,
	}
	addPhysicsFlags(runCmd)
	addSolverFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [material]",
		Short: "watch the explicit scheme diffuse the field",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addPhysicsFlags(liveCmd)
	liveCmd.Flags().Float64Var(&timeStep, "dt", 0, "explicit time step (s), 0 derives it")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "render the comparison as PNG figures",
		RunE:  runPlot,
	}
	addPhysicsFlags(plotCmd)
	addSolverFlags(plotCmd)
	plotCmd.Flags().StringVar(&figuresDir, "out", "figures", "output directory")
	plotCmd.Flags().BoolVar(&withSVG, "svg", false, "also write the envelope chart as SVG")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the comparison to CSV",
		RunE:  exportCSV,
	}
	addPhysicsFlags(exportCSVCmd)
	addSolverFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVar(&profileOf, "profile", "", "emit one material's depth profile instead of the summary")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the comparison to JSON",
		RunE:  exportJSON,
	}
	addPhysicsFlags(exportJSONCmd)
	addSolverFlags(exportJSONCmd)
	exportJSONCmd.Flags().BoolVar(&withProfiles, "profiles", false, "include depth profiles")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list the material registry",
		RunE:  listMaterials,
	}
	addPhysicsFlags(materialsCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "inspect a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  viewRun,
	}

	rootCmd.AddCommand(compareCmd, runCmd, liveCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, materialsCmd, presetsCmd, listCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPhysicsFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&frequency, "freq", config.DefaultFrequency, "excitation frequency (Hz)")
	cmd.Flags().Float64Var(&amplitude, "amplitude", config.DefaultAmplitude, "surface field amplitude (T)")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength*1e3, "slab depth (mm)")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "spatial samples")
}

func addSolverFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&solverName, "solver", config.DefaultSolver, "solver (analytic|ftcs)")
	cmd.Flags().StringSliceVar(&matNames, "materials", nil, "materials to include (default all)")
	cmd.Flags().Float64Var(&refDepth, "ref-depth", config.DefaultReferenceDepth, "phase probe depth as a fraction of length")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "evaluate materials concurrently")
	cmd.Flags().Float64Var(&cflFactor, "cfl", 0, "explicit stability fraction (0 keeps the default)")
	cmd.Flags().Float64Var(&timeStep, "dt", 0, "explicit time step (s), overrides cfl")
	cmd.Flags().IntVar(&settle, "settle", 0, "settle periods before capture (0 keeps the default)")
	cmd.Flags().IntVar(&samples, "samples", 0, "snapshots per period (0 keeps the default)")
}

// resolveConfig merges preset, config file, and explicit flags, in
// rising priority.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("freq") {
		cfg.Frequency = frequency
	}
	if flags.Changed("amplitude") {
		cfg.Amplitude = amplitude
	}
	if flags.Changed("length") {
		cfg.Length = length / 1e3
	}
	if flags.Changed("points") {
		cfg.Points = points
	}
	if flags.Changed("solver") {
		cfg.Solver = solverName
	}
	if flags.Changed("materials") {
		cfg.Materials = matNames
	}
	if flags.Changed("ref-depth") {
		cfg.ReferenceDepth = refDepth
	}
	if flags.Changed("parallel") {
		cfg.Parallel = parallel
	}
	if flags.Changed("cfl") {
		cfg.CFL = cflFactor
	}
	if flags.Changed("dt") {
		cfg.TimeStep = timeStep
	}
	if flags.Changed("settle") {
		cfg.SettlePeriods = settle
	}
	if flags.Changed("samples") {
		cfg.SamplesPerPeriod = samples
	}

	return cfg, nil
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func selectMaterials(names []string) ([]material.Properties, error) {
	if len(names) == 0 {
		return material.Registry(), nil
	}
	mats := make([]material.Properties, 0, len(names))
	for _, name := range names {
		mat, err := material.ByName(name)
		if err != nil {
			return nil, err
		}
		mats = append(mats, mat)
	}
	return mats, nil
}

// runTable executes the configured comparison. A partial failure still
// yields the table; the failures come back for the caller to report.
func runTable(cmd *cobra.Command) (*compare.Table, *compare.PartialResultError, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	mats, err := selectMaterials(cfg.Materials)
	if err != nil {
		return nil, nil, err
	}

	s, err := cfg.NewSolver()
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger()
	defer logger.Sync()

	cmp := compare.New(
		compare.WithSolver(s),
		compare.WithReferenceDepth(cfg.ReferenceDepth),
		compare.WithParallel(cfg.Parallel),
		compare.WithLogger(logger),
		compare.WithMaterials(mats...),
	)

	table, err := cmp.Compare(context.Background(), cfg.Excitation(), cfg.Domain())
	if err != nil {
		var partial *compare.PartialResultError
		if errors.As(err, &partial) {
			return table, partial, nil
		}
		return nil, nil, err
	}
	return table, nil, nil
}

func warnFailures(partial *compare.PartialResultError) {
	if partial == nil {
		return
	}
	for name, err := range partial.Failed {
		fmt.Fprintf(os.Stderr, "warning: %s failed: %v\n", name, err)
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	table, partial, err := runTable(cmd)
	if err != nil {
		return err
	}

	if plainTable {
		fmt.Print(viz.RenderTablePlain(table))
	} else {
		fmt.Println(viz.RenderTable(table))
	}
	if withChart && len(table.Rows) > 0 {
		fmt.Println(viz.EnvelopeChart(table, 80, 12))
	}
	warnFailures(partial)

	if saveRun {
		st := export.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(table)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", id)
	}
	return nil
}

func runQuick(cmd *cobra.Command, args []string) error {
	mat, err := material.ByName(args[0])
	if err != nil {
		return err
	}
	if err := cmd.Flags().Set("materials", mat.Name); err != nil {
		return err
	}

	table, partial, err := runTable(cmd)
	if err != nil {
		return err
	}
	if len(table.Rows) == 0 {
		return fmt.Errorf("%s: %w", mat.Name, partial.Failed[mat.Name])
	}

	row := &table.Rows[0]
	fmt.Printf("material: %s (sigma %.3g S/m, mu_r %g)\n", mat.Name, mat.Sigma, mat.MuR)
	fmt.Printf("skin depth: %.3f mm (fitted %.3f mm)\n", row.SkinDepth*1e3, row.FittedSkinDepth*1e3)
	fmt.Printf("phase lag at %.2f mm: %.3f rad (%.3f ms)\n",
		row.ReferenceDepth*1e3, row.PhaseLag, row.PhaseDelay*1e3)
	fmt.Printf("current density: peak %.4g A/m2, mean %.4g A/m2 (ratio %.2f)\n",
		row.PeakCurrent, row.MeanCurrent, row.PeakMeanRatio)
	fmt.Printf("dissipation: peak %.4g W/m3, mean %.4g W/m3\n",
		row.PeakPowerDensity, row.MeanPowerDensity)
	fmt.Printf("slab power: %.4g W/m2 mean, %.4g W/m2 peak\n\n",
		row.TotalPower, row.TotalPeakPower)

	fmt.Println(viz.WaveformChart(row, 80, 12))
	fmt.Println()
	fmt.Println(viz.EnvelopeChart(table, 80, 12))
	fmt.Println()
	fmt.Println(viz.PowerChart(row, 80, 12))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	mats := material.Registry()
	if len(args) > 0 {
		mat, err := material.ByName(args[0])
		if err != nil {
			return err
		}
		for i := range mats {
			if mats[i].Name == mat.Name {
				mats = append(mats[i:], mats[:i]...)
				break
			}
		}
	}

	return viz.RunLive(mats, cfg.Excitation(), cfg.Domain(), cfg.TimeStep)
}

func runPlot(cmd *cobra.Command, args []string) error {
	table, partial, err := runTable(cmd)
	if err != nil {
		return err
	}
	warnFailures(partial)
	if len(table.Rows) == 0 {
		return fmt.Errorf("nothing to plot")
	}

	if err := figure.SaveAll(table, figuresDir); err != nil {
		return err
	}
	if withSVG {
		svg := export.EnvelopeSVG(table, 640, 360)
		if err := os.WriteFile(filepath.Join(figuresDir, "envelope.svg"), []byte(svg), 0o644); err != nil {
			return err
		}
	}
	fmt.Printf("figures written to %s\n", figuresDir)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	table, partial, err := runTable(cmd)
	if err != nil {
		return err
	}
	warnFailures(partial)

	if profileOf == "" {
		return export.WriteTableCSV(os.Stdout, table)
	}

	mat, err := material.ByName(profileOf)
	if err != nil {
		return err
	}
	for i := range table.Rows {
		if table.Rows[i].Material.Name == mat.Name {
			return export.WriteProfileCSV(os.Stdout, &table.Rows[i])
		}
	}
	return fmt.Errorf("no profile for %s in this run", mat.Name)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	table, partial, err := runTable(cmd)
	if err != nil {
		return err
	}
	warnFailures(partial)
	return export.ExportJSONStdout(table, withProfiles)
}

func listMaterials(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	exc := cfg.Excitation()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIGMA (MS/m)\tMU_R\tDELTA (mm)")

	for _, mat := range material.Registry() {
		model, err := diffusion.NewModel(mat, exc)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.1f\t%g\t%.3f\n",
			mat.Name, mat.Sigma/1e6, mat.MuR, model.SkinDepth()*1e3)
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFREQ (Hz)\tSOLVER\tLENGTH (mm)\tPOINTS\tMATERIALS")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		mats := "all"
		if len(p.Materials) > 0 {
			mats = fmt.Sprintf("%v", p.Materials)
		}
		fmt.Fprintf(w, "%s\t%g\t%s\t%g\t%d\t%s\n",
			name, p.Frequency, p.Solver, p.Length*1e3, p.Points, mats)
	}

	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := export.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSOLVER\tFREQ (Hz)\tMATERIALS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Solver,
			run.Frequency,
			len(run.Materials),
		)
	}

	return w.Flush()
}

func viewRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := export.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("solver: %s\n", meta.Solver)
	fmt.Printf("excitation: %g Hz, %g T\n", meta.Frequency, meta.Amplitude)
	fmt.Printf("domain: %g mm, %d points\n\n", meta.Length*1e3, meta.Points)

	for _, name := range meta.Materials {
		fmt.Printf("%s: %.4g W/m2\n", name, meta.TotalPower[name])
	}
	fmt.Println()

	for _, name := range meta.Materials {
		cols, err := st.LoadProfile(runID, name)
		if err != nil {
			return err
		}
		graph := asciigraph.Plot(cols.Envelope,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption(name+" |B| envelope"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}
