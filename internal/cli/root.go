package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "enumup",
		Short: "Upgrade PhpCompatible Enum classes to PHP 8 native enums",
		Long: `Enumup converts classes extending PhpCompatible\Enum\Enum into native
PHP 8.1 enums and rewrites every call site in the tree, so
Status::draft() becomes Status::draft.

Definitions are converted first; call sites are updated once every
definition under the scanned path is known.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return fmt.Errorf("failed to read --verbose flag: %w", err)
			}
			setupLogging(cmd.ErrOrStderr(), verbose)
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	upgradeCmd := &cobra.Command{
		Use:   "upgrade [path]",
		Short: "Convert legacy enum classes and their usages under path (default: " + DefaultPath + ")",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunUpgrade,
	}
	AddUpgradeFlags(upgradeCmd.Flags())

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "enumup %s\n", version)
		},
	}

	rootCmd.AddCommand(
		upgradeCmd,
		versionCmd,
	)

	return rootCmd
}

// setupLogging installs the process-wide slog handler once flags are parsed.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
