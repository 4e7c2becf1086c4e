// Package app orchestrates one analysis run: collect candidate files, fan
// per-file work across a bounded pool, fold contributions into the shared
// accumulators, and aggregate the report. Per-file failures are absorbed;
// only a failure before any file is processed surfaces to the caller.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gobwas/glob"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"vibescan/internal/core/config"
	"vibescan/internal/core/errors"
	"vibescan/internal/data/history"
	"vibescan/internal/engine/analyze"
	"vibescan/internal/engine/language"
	"vibescan/internal/engine/score"
	"vibescan/internal/engine/structure"
	"vibescan/internal/shared/observability"
)

type App struct {
	Config    *config.Config
	extractor *structure.Extractor
	historyDB *history.Store
	tracer    trace.Tracer

	excludeDirs  []glob.Glob
	excludeFiles []glob.Glob
	testMatchers map[string][]glob.Glob
}

func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	a := &App{
		Config:       cfg,
		extractor:    structure.New(),
		tracer:       otel.Tracer("vibescan"),
		testMatchers: make(map[string][]glob.Glob),
	}

	var err error
	if a.excludeDirs, err = compileGlobs(cfg.Exclude.Dirs); err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationError, "invalid exclude dir pattern")
	}
	if a.excludeFiles, err = compileGlobs(cfg.Exclude.Files); err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationError, "invalid exclude file pattern")
	}

	for _, ext := range language.Extensions() {
		spec := language.LookupExt(ext)
		for _, pattern := range spec.TestGlobs {
			g, err := glob.Compile(pattern)
			if err != nil {
				return nil, errors.Wrap(err, errors.CodeInternal, fmt.Sprintf("bad test convention pattern %q", pattern))
			}
			a.testMatchers[ext] = append(a.testMatchers[ext], g)
		}
	}

	if cfg.HistoryPath != "" {
		store, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "open history store")
		}
		a.historyDB = store
	}

	return a, nil
}

func (a *App) Close() error {
	return a.historyDB.Close()
}

// History returns the run-history store, or nil when disabled.
func (a *App) History() *history.Store {
	return a.historyDB
}

// fileResult is one file's immutable contribution, computed without touching
// shared state so files can be analyzed concurrently.
type fileResult struct {
	lines      int
	comments   int
	structure  structure.Counts
	detections analyze.Detections
}

// Analyze runs the full pipeline for one root directory.
func (a *App) Analyze(ctx context.Context, root string) (score.Report, error) {
	ctx, span := a.tracer.Start(ctx, "analyze")
	defer span.End()

	info, err := os.Stat(root)
	if err != nil {
		return score.Report{}, errors.Wrap(err, errors.CodeNotFound, "repository path does not exist")
	}
	if !info.IsDir() {
		return score.Report{}, errors.New(errors.CodeValidationError, "repository path is not a directory")
	}

	files, err := a.collectStage(ctx, root)
	if err != nil {
		return score.Report{}, err
	}
	slog.Info("collected code files", "root", root, "files", len(files))

	totals, counters := a.analyzeStage(ctx, files)

	probes := score.Probes{}
	if totals.Files > 0 {
		probes = score.Probes{
			HasReadme:   hasReadme(root),
			HasExamples: hasExamplePaths(root),
			HasTests:    a.hasTestFiles(files),
		}
	}

	report := score.Aggregate(totals, counters, probes)
	a.recordRun(root, totals, report)
	return report, nil
}

func (a *App) collectStage(ctx context.Context, root string) ([]string, error) {
	_, span := a.tracer.Start(ctx, "collect")
	defer span.End()
	timer := time.Now()
	defer func() {
		observability.StageDuration.WithLabelValues("collect").Observe(time.Since(timer).Seconds())
	}()

	return a.collectFiles(root)
}

// analyzeStage fans files across the worker pool and folds every per-file
// result into the run accumulators. Workers never touch shared state; the
// fold happens on this goroutine only.
func (a *App) analyzeStage(ctx context.Context, files []string) (score.Totals, score.PatternCounters) {
	_, span := a.tracer.Start(ctx, "analyze-files")
	defer span.End()
	timer := time.Now()
	defer func() {
		observability.StageDuration.WithLabelValues("analyze").Observe(time.Since(timer).Seconds())
	}()

	workers := a.Config.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(files) && len(files) > 0 {
		workers = len(files)
	}

	jobs := make(chan string)
	results := make(chan fileResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if result, ok := a.analyzeFile(path); ok {
					results <- result
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range files {
			jobs <- path
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	var totals score.Totals
	var counters score.PatternCounters
	for result := range results {
		totals.Files++
		totals.Lines += result.lines
		totals.Comments += result.comments
		totals.Functions += result.structure.Functions
		totals.Classes += result.structure.Classes
		counters.Fold(result.detections)
		observability.FilesAnalyzedTotal.Inc()
	}

	observability.PatternTriggersTotal.WithLabelValues("generic_names").Add(float64(counters.GenericNames))
	observability.PatternTriggersTotal.WithLabelValues("perfect_formatting").Add(float64(counters.PerfectFormatting))
	observability.PatternTriggersTotal.WithLabelValues("boilerplate_code").Add(float64(counters.Boilerplate))
	observability.PatternTriggersTotal.WithLabelValues("repetitive_patterns").Add(float64(counters.Repetition))
	observability.PatternTriggersTotal.WithLabelValues("ai_comments").Add(float64(counters.TemplatedComments))

	return totals, counters
}

// analyzeFile computes one file's contribution. Unreadable or skipped files
// report ok=false and contribute nothing; the run continues either way.
func (a *App) analyzeFile(path string) (fileResult, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("could not read file", "path", path, "error", err)
		observability.FileFailuresTotal.Inc()
		return fileResult{}, false
	}
	if a.Config.SkipGenerated && isGeneratedFile(content) {
		slog.Debug("skipping generated file", "path", path)
		return fileResult{}, false
	}

	fam := language.DetectFamily(path)
	return fileResult{
		lines:      analyze.CountLines(content),
		comments:   analyze.CountCommentLines(content, fam),
		structure:  a.extractor.Extract(path, content),
		detections: analyze.Detect(content),
	}, true
}

// recordRun appends the run to the history store when one is configured.
// History failures never fail the analysis.
func (a *App) recordRun(root string, totals score.Totals, report score.Report) {
	if a.historyDB == nil {
		return
	}

	snapshot := history.Snapshot{
		RunID:         uuid.NewString(),
		RootKey:       RootKey(root),
		FileCount:     totals.Files,
		LineCount:     totals.Lines,
		CommentCount:  totals.Comments,
		FunctionCount: totals.Functions,
		ClassCount:    totals.Classes,
		CommentsScore: report.CommentsScore,
		NamingScore:   report.NamingScore,
		TestsScore:    report.TestsScore,
		ExamplesScore: report.ExamplesScore,
	}
	if err := a.historyDB.SaveSnapshot(snapshot); err != nil {
		slog.Warn("failed to record run history", "root", root, "error", err)
	}
}

// RootKey canonicalizes a root path into the history store key.
func RootKey(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		return strings.TrimSpace(root)
	}
	return filepath.Clean(abs)
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
