package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/phpcompatible/enumup/internal/config"
	"github.com/phpcompatible/enumup/internal/logfields"
	"github.com/phpcompatible/enumup/internal/migrate"
	"github.com/spf13/cobra"
)

// DefaultPath is scanned when upgrade is run without a path.
const DefaultPath = "src"

// ReportedError wraps an error whose message was already shown to the user.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

// IsReported reports whether err was already printed by a command.
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}

func RunUpgrade(cmd *cobra.Command, args []string) error {
	path := DefaultPath
	if len(args) > 0 {
		path = args[0]
	}

	dryRun, err := OptionalBoolFlag(cmd, "dry-run")
	if err != nil {
		return err
	}
	asJSON, err := OptionalBoolFlag(cmd, "json")
	if err != nil {
		return err
	}
	configPath, err := OptionalStringFlag(cmd, "config")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if info, statErr := os.Stat(path); statErr != nil || !info.IsDir() {
		fmt.Fprintf(out, "Path not found: %s\n", path)
		return &ReportedError{Err: fmt.Errorf("%w: %s", migrate.ErrPathNotFound, path)}
	}

	cfg, err := config.LoadForRoot(path, configPath)
	if err != nil {
		return err
	}
	if err := ApplyFlagOverrides(cmd.Flags(), cfg); err != nil {
		return err
	}

	if !asJSON {
		fmt.Fprintf(out, "Scanning %s for PhpCompatible Enum classes...\n", path)
		if dryRun {
			fmt.Fprintln(out, "Dry run mode - no files will be modified")
		}
		fmt.Fprintln(out)
	}

	progress := newPhaseProgressReporter(cmd.ErrOrStderr(), asJSON)
	result, err := migrate.Run(cmd.Context(), migrate.Options{
		Root:        path,
		DryRun:      dryRun,
		Extensions:  cfg.Extensions,
		IgnoreRules: cfg.Ignore,
		GitIgnore:   cfg.GitIgnore,
		Workers:     cfg.WorkerCount(),
		Reporter:    &consoleReporter{out: out, progress: progress, quiet: asJSON},
		Logger:      slog.Default(),
	})
	if err != nil {
		progress.Clear()
		slog.Error("Upgrade aborted", logfields.Root(path), logfields.Error(err))
		return &ReportedError{Err: err}
	}
	progress.Done(result.Scanned)

	return PrintRunSummary(out, NewRunSummary(result), asJSON)
}
