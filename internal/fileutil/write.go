package fileutil

import (
	"bytes"
	"fmt"
	"os"
)

// WriteIfChanged replaces the contents of an existing file, keeping its
// permission bits. It reports false without touching the file when data is
// already on disk.
func WriteIfChanged(path string, data []byte) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	existing, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if bytes.Equal(existing, data) {
		return false, nil
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
