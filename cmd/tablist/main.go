// Tablist browses and switches mutually exclusive tab groups.
//
// Tab groups are read from a YAML file. Running without arguments opens an
// interactive terminal view where tabs are switched with the mouse or keyboard;
// the subcommands print a single render for scripting.
//
// Usage:
//
//	tablist [command] [flags]
//
// See 'tablist --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tablist/internal/logging"
	"github.com/muurk/tablist/internal/version"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		logging.Error("Command failed", zap.Error(err))
	}
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   version.Name,
	Short: "Tab group switcher",
	Long: `Browse tab groups defined in a YAML file.

Each group shows exactly one panel at a time. Clicking a tab header (or
pressing tab, shift+tab or a number key) hides every other panel of the
group and marks the clicked tab active.

If no command is specified, the interactive view is launched.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	RunE: runBrowse,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}
