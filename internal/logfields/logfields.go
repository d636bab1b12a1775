package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRoot       = "root"
	KeyFile       = "file"
	KeyPhase      = "phase"
	KeyClass      = "class"
	KeyCases      = "cases"
	KeyBacking    = "backing"
	KeyCount      = "count"
	KeyWorkers    = "workers"
	KeyDryRun     = "dry_run"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Helpers returning slog.Attr so call sites share the keys above.
func Root(path string) slog.Attr    { return slog.String(KeyRoot, path) }
func File(path string) slog.Attr    { return slog.String(KeyFile, path) }
func Phase(name string) slog.Attr   { return slog.String(KeyPhase, name) }
func Class(name string) slog.Attr   { return slog.String(KeyClass, name) }
func Cases(n int) slog.Attr         { return slog.Int(KeyCases, n) }
func Backing(kind string) slog.Attr { return slog.String(KeyBacking, kind) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Workers(n int) slog.Attr       { return slog.Int(KeyWorkers, n) }
func DryRun(on bool) slog.Attr      { return slog.Bool(KeyDryRun, on) }
func DurationMS(ms int64) slog.Attr { return slog.Int64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
