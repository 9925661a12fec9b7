package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"scour/internal/analysis"
	"scour/internal/config"
	"scour/internal/diag"
	"scour/internal/observ"
	"scour/internal/snapshot"
	"scour/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] <unit.scup|directory>...",
	Short: "Run the analysis pass over translation-unit snapshots",
	Long:  `Run the scheduling core over one or more translation-unit snapshots, dispatching syntax checkers and replayed engine runs per declaration`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("analyze-all", false, "analyze header declarations with the full requested mode")
	analyzeCmd.Flags().String("function", "", "restrict analysis to declarations with this exact name")
	analyzeCmd.Flags().Bool("no-inlining", false, "analyze every declaration independently, in file order")
	analyzeCmd.Flags().Uint32("max-nodes", 150000, "engine exploration budget per run (0=unbounded)")
	analyzeCmd.Flags().String("memory-model", "none", "GC variants to explore (none|gc-only|hybrid)")
	analyzeCmd.Flags().Bool("progress", false, "print each declaration as it is dispatched")
	analyzeCmd.Flags().Bool("stats", false, "print per-unit run statistics")
	analyzeCmd.Flags().Int("jobs", 0, "max parallel units (0=auto)")
	analyzeCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
}

// unitResult holds the outcome of analyzing one snapshot.
type unitResult struct {
	Path  string
	Bag   *diag.Bag
	Stats *analysis.RunStats
	Err   error
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	timer := observ.NewTimer()

	profiles, err := startProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling(profiles)

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	maxReports, err := cmd.Root().PersistentFlags().GetInt("max-reports")
	if err != nil {
		return fmt.Errorf("failed to get max-reports flag: %w", err)
	}
	showStats, _ := cmd.Flags().GetBool("stats")
	jobs, _ := cmd.Flags().GetInt("jobs")
	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	phase := timer.Begin("collect")
	files, err := collectSnapshots(args)
	timer.End(phase, fmt.Sprintf("%d units", len(files)))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no snapshot files found")
	}

	opts, err := buildOptions(cmd, files[0], maxReports)
	if err != nil {
		return err
	}
	// Malformed configuration fails before any declaration is processed.
	if err := opts.Validate(); err != nil {
		return err
	}

	useTUI := shouldUseTUI(mode) && !opts.DisplayProgress
	var progress io.Writer
	if opts.DisplayProgress && !useTUI {
		progress = os.Stderr
	}

	phase = timer.Begin("analyze")
	var results []unitResult
	if useTUI {
		results, err = analyzeWithUI(cmd.Context(), files, opts, jobs)
	} else {
		results, err = analyzeUnits(cmd.Context(), files, opts, jobs, progress, nil)
	}
	timer.End(phase, "")
	if err != nil {
		return err
	}

	phase = timer.Begin("report")
	failed := printResults(results, quiet, showStats)
	timer.End(phase, "")

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d units failed", failed, len(results))
	}
	return nil
}

// buildOptions layers defaults, the nearest scour.toml and explicit flags.
func buildOptions(cmd *cobra.Command, firstPath string, maxReports int) (config.Options, error) {
	opts := config.Default()
	opts.MaxReports = maxReports

	startDir := firstPath
	if info, err := os.Stat(firstPath); err == nil && !info.IsDir() {
		startDir = filepath.Dir(firstPath)
	}
	if manifestPath, ok, err := config.FindManifest(startDir); err != nil {
		return opts, err
	} else if ok {
		manifest, err := config.LoadManifest(manifestPath)
		if err != nil {
			return opts, err
		}
		if err := manifest.Apply(&opts); err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("analyze-all") {
		opts.AnalyzeAll, _ = flags.GetBool("analyze-all")
	}
	if flags.Changed("function") {
		opts.AnalyzeFunction, _ = flags.GetString("function")
	}
	if flags.Changed("no-inlining") {
		noInlining, _ := flags.GetBool("no-inlining")
		opts.Inlining = !noInlining
	}
	if flags.Changed("max-nodes") {
		opts.MaxNodes, _ = flags.GetUint32("max-nodes")
	}
	if flags.Changed("memory-model") {
		raw, _ := flags.GetString("memory-model")
		model, err := config.ParseMemoryModel(raw)
		if err != nil {
			return opts, err
		}
		opts.MemoryModel = model
	}
	if flags.Changed("progress") {
		opts.DisplayProgress, _ = flags.GetBool("progress")
	}
	return opts, nil
}

// collectSnapshots expands arguments into a sorted list of *.scup files.
func collectSnapshots(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".scup") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// analyzeUnits runs the pass over every snapshot, fanning out across
// translation units. Units are independent by construction: each gets its
// own store, visited-sets and report bag, so no state is shared between
// goroutines besides the results slice indexed per unit.
func analyzeUnits(ctx context.Context, files []string, opts config.Options, jobs int, progress io.Writer, events chan<- ui.Event) ([]unitResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]unitResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = analyzeOne(path, opts, progress, events)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func analyzeOne(path string, opts config.Options, progress io.Writer, events chan<- ui.Event) unitResult {
	emit := func(stage ui.Stage, status ui.Status) {
		if events != nil {
			events <- ui.Event{File: path, Stage: stage, Status: status}
		}
	}
	res := unitResult{Path: path, Bag: diag.NewBag(opts.MaxReports)}

	emit(ui.StageLoad, ui.StatusStart)
	unit, err := snapshot.Load(path)
	if err != nil {
		res.Err = err
		emit(ui.StageLoad, ui.StatusError)
		return res
	}
	if unit.Broken {
		// Upstream parse errors: the core must not run at all.
		res.Bag.Add(diag.Report{
			Severity: diag.SevError,
			Code:     diag.InBrokenUnit,
			Checker:  "driver",
			Message:  "translation unit has upstream parse errors",
		})
		res.Err = fmt.Errorf("unit %q has upstream parse errors", path)
		emit(ui.StageLoad, ui.StatusError)
		return res
	}
	emit(ui.StageLoad, ui.StatusDone)

	emit(ui.StageAnalyze, ui.StatusStart)
	replay := snapshot.NewReplay(unit)
	deps := analysis.Deps{
		Files:    replay.Files,
		Source:   replay,
		Checkers: replay.Registry(),
		Engine:   replay,
		Contexts: replay,
		Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag}),
		Progress: progress,
	}
	stats, err := analysis.ProcessTranslationUnit(replay.Store, deps, opts)
	if err != nil {
		res.Err = err
		emit(ui.StageAnalyze, ui.StatusError)
		return res
	}
	res.Stats = stats
	emit(ui.StageAnalyze, ui.StatusDone)

	emit(ui.StageReport, ui.StatusStart)
	res.Bag.Sort()
	res.Bag.Dedup()
	emit(ui.StageReport, ui.StatusDone)
	return res
}

// analyzeWithUI drives the same fan-out behind a Bubble Tea progress model.
func analyzeWithUI(ctx context.Context, files []string, opts config.Options, jobs int) ([]unitResult, error) {
	events := make(chan ui.Event, 256)
	type outcome struct {
		results []unitResult
		err     error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		results, err := analyzeUnits(ctx, files, opts, jobs, nil, events)
		outcomeCh <- outcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("scour analyze", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return out.results, uiErr
	}
	return out.results, out.err
}

var (
	pathStyle     = color.New(color.Bold)
	errorStyle    = color.New(color.FgRed, color.Bold)
	warnStyle     = color.New(color.FgYellow, color.Bold)
	noteStyle     = color.New(color.FgCyan)
	checkerStyle  = color.New(color.Faint)
	headingStyle  = color.New(color.FgBlue, color.Bold)
	successMarker = color.New(color.FgGreen).Sprint("ok")
)

// printResults renders findings and statistics; returns the failed-unit count.
func printResults(results []unitResult, quiet bool, showStats bool) int {
	failed := 0
	totalFindings := 0
	for i := range results {
		res := &results[i]
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %s\n", pathStyle.Sprint(res.Path), errorStyle.Sprint(res.Err))
			continue
		}

		findings := res.Bag.Items()
		totalFindings += len(findings)
		if !quiet && len(findings) == 0 {
			fmt.Printf("%s: %s\n", pathStyle.Sprint(res.Path), successMarker)
		}
		for j := range findings {
			printFinding(res.Path, &findings[j])
		}
		if showStats && res.Stats != nil {
			printStats(res.Path, res.Stats)
		}
	}
	if !quiet {
		fmt.Printf("%d findings across %d units\n", totalFindings, len(results))
	}
	return failed
}

func printFinding(path string, r *diag.Report) {
	sev := warnStyle
	switch r.Severity {
	case diag.SevError:
		sev = errorStyle
	case diag.SevNote:
		sev = noteStyle
	}
	fmt.Printf("%s:%d:%d: %s [%s] %s %s\n",
		path, r.Primary.Line, r.Primary.Col,
		sev.Sprint(r.Severity), r.Code, r.Message,
		checkerStyle.Sprintf("(%s)", r.Checker))
}

func printStats(path string, st *analysis.RunStats) {
	fmt.Printf("%s\n", headingStyle.Sprintf("stats: %s", path))
	fmt.Printf("  top-level nodes       %d\n", st.FunctionsTopLevel)
	fmt.Printf("  functions analyzed    %d\n", st.FunctionsAnalyzed)
	fmt.Printf("  basic blocks          %d\n", st.BlocksInAnalyzedFunctions)
	fmt.Printf("  reachable blocks      %d%%\n", st.PercentReachableBlocks)
	fmt.Printf("  max cfg size          %d\n", st.MaxCFGSize)
}
