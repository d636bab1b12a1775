package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phpcompatible/enumup/internal/migrate"
)

const statusEnum = `<?php

namespace App\Enums;

use PhpCompatible\Enum\Enum;

class Status extends Enum
{
    protected $draft;
    protected $published = 10;
}
`

const usageFile = `<?php

use App\Enums\Status;

echo Status::DRAFT();
`

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "Enums", "Status.php"), statusEnum)
	mustWriteFile(t, filepath.Join(root, "Http", "Show.php"), usageFile)
	return root
}

func TestUpgradeCommandOutput(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "upgrade", root)
	if err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}

	want := strings.Join([]string{
		"Scanning " + root + " for PhpCompatible Enum classes...",
		"",
		"Converted enum: " + filepath.Join(root, "Enums", "Status.php"),
		"Updated usages: " + filepath.Join(root, "Http", "Show.php"),
		"",
		"Done.",
		"  Enum definitions converted: 1",
		"  Files with usage updates modified: 1",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}

	data, err := os.ReadFile(filepath.Join(root, "Http", "Show.php"))
	if err != nil {
		t.Fatalf("read usage file: %v", err)
	}
	if !strings.Contains(string(data), "echo Status::draft;") {
		t.Fatalf("expected call site to be rewritten:\n%s", data)
	}
}

func TestUpgradeCommandDryRun(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "upgrade", root, "-d")
	if err != nil {
		t.Fatalf("upgrade --dry-run failed: %v", err)
	}
	for _, expected := range []string{
		"Dry run mode - no files will be modified",
		"Would convert enum: ",
		"Would update usages: ",
		"  Enum definitions to be converted: 1",
		"  Files with usage updates to be modified: 1",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("expected output to contain %q, got:\n%s", expected, out)
		}
	}

	data, err := os.ReadFile(filepath.Join(root, "Enums", "Status.php"))
	if err != nil {
		t.Fatalf("read enum file: %v", err)
	}
	if string(data) != statusEnum {
		t.Fatalf("dry run must not modify files, got:\n%s", data)
	}
}

func TestUpgradeCommandJSON(t *testing.T) {
	root := newProject(t)

	out, err := runCommand(t, "upgrade", root, "--json", "--workers", "2")
	if err != nil {
		t.Fatalf("upgrade --json failed: %v", err)
	}

	var summary RunSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", out, err)
	}
	if summary.Mode != "upgrade" || summary.Converted != 1 || summary.UsageUpdates != 1 || summary.Scanned != 2 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.Enums) != 1 || summary.Enums[0].Name != `App\Enums\Status` || summary.Enums[0].Backing != "int" {
		t.Fatalf("unexpected enum summary: %+v", summary.Enums)
	}
}

func TestUpgradeCommandPathNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	out, err := runCommand(t, "upgrade", missing)
	if err == nil {
		t.Fatalf("expected failure for a missing path")
	}
	if !errors.Is(err, migrate.ErrPathNotFound) || !IsReported(err) {
		t.Fatalf("expected reported ErrPathNotFound, got %v", err)
	}
	if out != "Path not found: "+missing+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestUpgradeCommandRejectsBadConfig(t *testing.T) {
	root := newProject(t)
	mustWriteFile(t, filepath.Join(root, ".enumup.yaml"), "extensions: [\"php\"]\n")

	if _, err := runCommand(t, "upgrade", root); err == nil || !strings.Contains(err.Error(), "must start with") {
		t.Fatalf("expected config validation error, got %v", err)
	}
}

func TestUpgradeCommandRejectsWorkerOverflow(t *testing.T) {
	root := newProject(t)
	if _, err := runCommand(t, "upgrade", root, "--workers", "5000"); err == nil {
		t.Fatalf("expected --workers bound to be enforced")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "enumup test\n" {
		t.Fatalf("unexpected version output %q", out)
	}
}
