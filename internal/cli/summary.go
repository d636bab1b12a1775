package cli

import (
	"fmt"
	"io"

	"github.com/phpcompatible/enumup/internal/fileutil"
	"github.com/phpcompatible/enumup/internal/migrate"
)

type RunSummary struct {
	Mode           string        `json:"mode"`
	RootPath       string        `json:"root_path"`
	DryRun         bool          `json:"dry_run"`
	Scanned        int           `json:"scanned"`
	Converted      int           `json:"converted"`
	UsageUpdates   int           `json:"usage_updates"`
	DurationMS     int64         `json:"duration_ms"`
	ConvertedFiles []string      `json:"converted_files,omitempty"`
	UsageFiles     []string      `json:"usage_files,omitempty"`
	Enums          []EnumSummary `json:"enums,omitempty"`
}

type EnumSummary struct {
	Name    string   `json:"name"`
	Backing string   `json:"backing"`
	File    string   `json:"file"`
	Cases   []string `json:"cases"`
}

func NewRunSummary(result *migrate.Result) RunSummary {
	summary := RunSummary{
		Mode:           "upgrade",
		RootPath:       result.RootPath,
		DryRun:         result.DryRun,
		Scanned:        result.Scanned,
		Converted:      result.Converted,
		UsageUpdates:   result.UsageUpdates,
		DurationMS:     result.Duration.Milliseconds(),
		ConvertedFiles: result.ConvertedFiles,
		UsageFiles:     result.UsageFiles,
	}
	for _, t := range result.Types {
		summary.Enums = append(summary.Enums, EnumSummary{
			Name:    t.QualifiedName,
			Backing: t.BackingKind.String(),
			File:    t.File,
			Cases:   t.CaseNames(),
		})
	}
	return summary
}

func PrintRunSummary(w io.Writer, summary RunSummary, asJSON bool) error {
	if asJSON {
		return fileutil.PrintJSON(w, summary)
	}

	pending := ""
	if summary.DryRun {
		pending = "to be "
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Done.")
	fmt.Fprintf(w, "  Enum definitions %sconverted: %d\n", pending, summary.Converted)
	fmt.Fprintf(w, "  Files with usage updates %smodified: %d\n", pending, summary.UsageUpdates)
	return nil
}
