package migrate

import "fmt"

// EventKind identifies what happened to a file.
type EventKind int

const (
	DefinitionConverted EventKind = iota
	UsagesUpdated
)

// Event is one per-file status line of a run.
type Event struct {
	Kind   EventKind
	File   string
	DryRun bool
}

func (e Event) String() string {
	switch {
	case e.Kind == DefinitionConverted && e.DryRun:
		return fmt.Sprintf("Would convert enum: %s", e.File)
	case e.Kind == DefinitionConverted:
		return fmt.Sprintf("Converted enum: %s", e.File)
	case e.DryRun:
		return fmt.Sprintf("Would update usages: %s", e.File)
	default:
		return fmt.Sprintf("Updated usages: %s", e.File)
	}
}

// Reporter receives progress and per-file events. Progress is called once
// per processed file, never concurrently. Report is called in file order
// after each phase completes.
type Reporter interface {
	Progress(phase Phase, file string, done, total int)
	Report(event Event)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Progress(Phase, string, int, int) {}
func (NopReporter) Report(Event)                     {}
