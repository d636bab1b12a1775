package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadForRootDefaults(t *testing.T) {
	cfg, err := LoadForRoot(t.TempDir(), "")
	require.NoError(t, err)
	require.Equal(t, []string{".php"}, cfg.Extensions)
	require.True(t, cfg.GitIgnore)
	require.Empty(t, cfg.Ignore)
	require.Equal(t, runtime.NumCPU(), cfg.WorkerCount())
}

func TestLoadForRootReadsProjectFileAndIgnoreRules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), `
extensions: [".php", ".inc"]
ignore: ["tests/fixtures/"]
gitignore: false
workers: 3
`)
	writeFile(t, filepath.Join(root, IgnoreFileName), "# generated code\nlegacy/\n\ntests/fixtures/\n")

	cfg, err := LoadForRoot(root, "")
	require.NoError(t, err)
	require.Equal(t, []string{".php", ".inc"}, cfg.Extensions)
	require.Equal(t, []string{"tests/fixtures/", "legacy/"}, cfg.Ignore)
	require.False(t, cfg.GitIgnore)
	require.Equal(t, 3, cfg.WorkerCount())
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "workers: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{".php"}, cfg.Extensions)
	require.True(t, cfg.GitIgnore)
	require.Equal(t, 2, cfg.Workers)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"extension without dot": "extensions: [\"php\"]\n",
		"negative workers":      "workers: -1\n",
		"too many workers":      "workers: 1000\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), FileName)
		writeFile(t, path, content)
		_, err := Load(path)
		require.Error(t, err, name)
		require.Contains(t, err.Error(), "configuration validation failed", name)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := LoadForRoot(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "configuration file not found")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "extensions: [\n")
	_, err := Load(path)
	require.ErrorContains(t, err, "failed to parse")
}
