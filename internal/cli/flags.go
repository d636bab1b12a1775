package cli

import (
	"fmt"
	"strings"

	"github.com/phpcompatible/enumup/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddUpgradeFlags registers the flags of the upgrade command.
func AddUpgradeFlags(fs *pflag.FlagSet) {
	fs.BoolP("dry-run", "d", false, "Show what would be changed without modifying files")
	fs.Bool("json", false, "Print machine-readable run summary")
	fs.Int("workers", 0, "Files processed in parallel (default: one per CPU)")
	fs.Bool("no-gitignore", false, "Do not skip paths listed in <path>/.gitignore")
	fs.String("config", "", "Configuration file (default: <path>/"+config.FileName+")")
}

func OptionalStringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return strings.TrimSpace(value), nil
}

func OptionalBoolFlag(cmd *cobra.Command, name string) (bool, error) {
	if cmd == nil || cmd.Flags().Lookup(name) == nil {
		return false, nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

// ApplyFlagOverrides copies explicitly set flags over configuration values.
func ApplyFlagOverrides(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("workers") {
		workers, err := fs.GetInt("workers")
		if err != nil {
			return fmt.Errorf("failed to read --workers flag: %w", err)
		}
		if workers < 0 || workers > config.MaxWorkers {
			return fmt.Errorf("--workers must be between 0 and %d, got %d", config.MaxWorkers, workers)
		}
		cfg.Workers = workers
	}
	if fs.Changed("no-gitignore") {
		noGitIgnore, err := fs.GetBool("no-gitignore")
		if err != nil {
			return fmt.Errorf("failed to read --no-gitignore flag: %w", err)
		}
		cfg.GitIgnore = !noGitIgnore
	}
	return nil
}
