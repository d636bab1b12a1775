// Package migrate runs the two-phase upgrade of a source tree: every legacy
// enum definition is converted first, then call sites are rewritten against
// the complete set of converted types.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/phpcompatible/enumup/internal/extract"
	"github.com/phpcompatible/enumup/internal/fileutil"
	"github.com/phpcompatible/enumup/internal/languages"
	"github.com/phpcompatible/enumup/internal/logfields"
	"github.com/phpcompatible/enumup/internal/parser"
	"github.com/phpcompatible/enumup/internal/rewrite"
	"github.com/phpcompatible/enumup/internal/usage"
	"golang.org/x/sync/errgroup"
)

// ErrPathNotFound is returned when the scan root is not a directory.
var ErrPathNotFound = errors.New("path not found")

// Phase names a pass of the run.
type Phase string

const (
	PhaseDefinitions Phase = "definitions"
	PhaseUsages      Phase = "usages"
)

// Options configures a run.
type Options struct {
	Root        string
	DryRun      bool
	Extensions  []string
	IgnoreRules []string
	GitIgnore   bool
	Workers     int // <= 0 means one per CPU
	Reporter    Reporter
	Logger      *slog.Logger
}

// Result summarizes a run. File lists are in enumeration order.
type Result struct {
	RootPath       string
	DryRun         bool
	Scanned        int
	Converted      int
	UsageUpdates   int
	ConvertedFiles []string
	UsageFiles     []string
	Types          []*parser.EnumType
	Issues         []parser.Issue
	Duration       time.Duration
}

type fileState struct {
	path      string
	content   string
	enumType  *parser.EnumType
	converted bool
	updated   bool
}

// Run upgrades every candidate file under opts.Root. Files are rewritten in
// place unless opts.DryRun is set; in a dry run converted definitions are
// kept in memory so usage counts match a real run. Writes are not
// transactional: when the run fails, files already written stay written.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	info, err := os.Stat(opts.Root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, opts.Root)
	}

	walk, err := parser.Walk(opts.Root, parser.WalkOptions{
		Extensions:  opts.Extensions,
		IgnoreRules: opts.IgnoreRules,
		GitIgnore:   opts.GitIgnore,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", opts.Root, err)
	}
	for _, issue := range walk.Issues {
		logger.Warn("Skipped path", logfields.File(issue.File), slog.String("message", issue.Message))
	}
	logger.Debug("Enumerated files",
		logfields.Root(opts.Root),
		logfields.Count(len(walk.Files)),
		logfields.Workers(workers),
		logfields.DryRun(opts.DryRun))

	files := make([]*fileState, len(walk.Files))
	for i, path := range walk.Files {
		files[i] = &fileState{path: path}
	}

	registry := parser.NewRegistry()
	if err := convertDefinitions(ctx, files, registry, opts.DryRun, workers, reporter, logger); err != nil {
		return nil, err
	}

	// Every definition is known from here on.
	types := registry.Freeze()
	for _, f := range files {
		if f.enumType == nil {
			continue
		}
		if winner, _ := registry.Get(f.enumType.QualifiedName); winner != f.enumType {
			logger.Warn("Duplicate enum definition; keeping the earlier file",
				logfields.Class(f.enumType.QualifiedName),
				logfields.File(f.path),
				slog.String("kept", winner.File))
		}
		if f.converted {
			reporter.Report(Event{Kind: DefinitionConverted, File: f.path, DryRun: opts.DryRun})
		}
	}

	resolver := usage.NewResolver(types)
	if err := resolveUsages(ctx, files, resolver, opts.DryRun, workers, reporter, logger); err != nil {
		return nil, err
	}
	for _, f := range files {
		if f.updated {
			reporter.Report(Event{Kind: UsagesUpdated, File: f.path, DryRun: opts.DryRun})
		}
	}

	result := &Result{
		RootPath:       opts.Root,
		DryRun:         opts.DryRun,
		Scanned:        len(files),
		ConvertedFiles: make([]string, 0),
		UsageFiles:     make([]string, 0),
		Types:          types,
		Issues:         walk.Issues,
	}
	for _, f := range files {
		if f.converted {
			result.ConvertedFiles = append(result.ConvertedFiles, f.path)
		}
		if f.updated {
			result.UsageFiles = append(result.UsageFiles, f.path)
		}
	}
	result.Converted = len(result.ConvertedFiles)
	result.UsageUpdates = len(result.UsageFiles)
	result.Duration = time.Since(start)

	logger.Debug("Upgrade finished",
		logfields.Count(result.Converted),
		slog.Int("usage_files", result.UsageUpdates),
		logfields.DurationMS(result.Duration.Milliseconds()))
	return result, nil
}

func convertDefinitions(
	ctx context.Context,
	files []*fileState,
	registry *parser.Registry,
	dryRun bool,
	workers int,
	reporter Reporter,
	logger *slog.Logger,
) error {
	scanners := sync.Pool{New: func() any { return languages.NewPHPScanner() }}
	progress := newProgress(PhaseDefinitions, len(files), reporter)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range files {
		i, f := i, f // per-iteration copies: go directive is 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer progress.step(f.path)

			data, err := os.ReadFile(f.path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", f.path, err)
			}
			f.content = string(data)

			scanner := scanners.Get().(*languages.PHPScanner)
			enumType, err := extract.New(scanner).Extract(gctx, f.path, data)
			scanners.Put(scanner)
			if err != nil {
				return fmt.Errorf("failed to scan %s: %w", f.path, err)
			}
			if enumType == nil {
				return nil
			}

			f.enumType = enumType
			if _, err := registry.Register(enumType, i); err != nil {
				return err
			}
			logger.Debug("Found legacy enum",
				logfields.Phase(string(PhaseDefinitions)),
				logfields.File(f.path),
				logfields.Class(enumType.QualifiedName),
				logfields.Cases(len(enumType.Cases)),
				logfields.Backing(enumType.BackingKind.String()))

			out, changed := rewrite.Rewrite(f.content, enumType)
			if !changed {
				return nil
			}
			if !dryRun {
				if _, err := fileutil.WriteIfChanged(f.path, []byte(out)); err != nil {
					return err
				}
			}
			f.content = out
			f.converted = true
			return nil
		})
	}
	return g.Wait()
}

func resolveUsages(
	ctx context.Context,
	files []*fileState,
	resolver *usage.Resolver,
	dryRun bool,
	workers int,
	reporter Reporter,
	logger *slog.Logger,
) error {
	progress := newProgress(PhaseUsages, len(files), reporter)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, f := range files {
		f := f // per-iteration copy: go directive is 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer progress.step(f.path)

			out, changed := resolver.Resolve(f.content)
			if !changed {
				return nil
			}
			if !dryRun {
				if _, err := fileutil.WriteIfChanged(f.path, []byte(out)); err != nil {
					return err
				}
			}
			logger.Debug("Rewrote call sites", logfields.Phase(string(PhaseUsages)), logfields.File(f.path))
			f.content = out
			f.updated = true
			return nil
		})
	}
	return g.Wait()
}

// progress serializes Progress calls coming from concurrent workers.
type progress struct {
	mu       sync.Mutex
	phase    Phase
	done     int
	total    int
	reporter Reporter
}

func newProgress(phase Phase, total int, reporter Reporter) *progress {
	return &progress{phase: phase, total: total, reporter: reporter}
}

func (p *progress) step(file string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	p.reporter.Progress(p.phase, file, p.done, p.total)
}
