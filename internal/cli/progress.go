package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/phpcompatible/enumup/internal/migrate"
)

type phaseProgressReporter struct {
	w       io.Writer
	enabled bool
	start   time.Time
	spinner int
	lastLen int
}

func newPhaseProgressReporter(w io.Writer, asJSON bool) *phaseProgressReporter {
	enabled := false
	if f, ok := w.(*os.File); ok && !asJSON {
		stat, err := f.Stat()
		enabled = err == nil && (stat.Mode()&os.ModeCharDevice) != 0
	}
	return &phaseProgressReporter{
		w:       w,
		enabled: enabled,
		start:   time.Now(),
	}
}

func (r *phaseProgressReporter) Update(phase migrate.Phase, file string, done, total int) {
	if !r.enabled {
		return
	}
	frames := [4]string{"-", "\\", "|", "/"}
	frame := frames[r.spinner%len(frames)]
	r.spinner++
	file = strings.TrimSpace(file)
	if len(file) > 88 {
		file = "..." + file[len(file)-85:]
	}

	r.printStatus(fmt.Sprintf("%s %s %d/%d %s", frame, phase, done, total, file))
}

// Clear erases the status line so regular output starts on a clean line.
func (r *phaseProgressReporter) Clear() {
	if !r.enabled || r.lastLen == 0 {
		return
	}
	fmt.Fprintf(r.w, "\r%s\r", strings.Repeat(" ", r.lastLen))
	r.lastLen = 0
}

func (r *phaseProgressReporter) Done(count int) {
	if !r.enabled {
		return
	}
	elapsed := time.Since(r.start).Round(time.Millisecond)
	r.printStatus(fmt.Sprintf("scan complete (%d files in %s)", count, elapsed))
	fmt.Fprintln(r.w)
	r.lastLen = 0
}

func (r *phaseProgressReporter) printStatus(status string) {
	if r.lastLen > len(status) {
		status = status + strings.Repeat(" ", r.lastLen-len(status))
	}
	r.lastLen = len(status)
	fmt.Fprintf(r.w, "\r%s", status)
}

// consoleReporter prints per-file status lines and drives the spinner.
type consoleReporter struct {
	out      io.Writer
	progress *phaseProgressReporter
	quiet    bool
}

func (c *consoleReporter) Progress(phase migrate.Phase, file string, done, total int) {
	c.progress.Update(phase, file, done, total)
}

func (c *consoleReporter) Report(event migrate.Event) {
	if c.quiet {
		return
	}
	c.progress.Clear()
	fmt.Fprintln(c.out, event.String())
}
