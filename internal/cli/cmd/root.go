// Package cmd provides Cobra CLI commands for tessera.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/cli"
	"github.com/bnema/tessera/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo = build.Current("dev", "", "")

	configDir    string
	databasePath string

	rootCmd = &cobra.Command{
		Use:   "tessera",
		Short: "A tiling layout engine for multi-pane content viewers",
		Long: `Tessera arranges content panes in a binary space partition: split,
close, resize, swap and move focus between tiles, while small unfocused
tiles are put to sleep to save resources.

Use 'tessera tui' for the interactive playground, or the layout
subcommands to inspect saved workspaces.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigDir:    configDir,
				DatabasePath: databasePath,
				Interactive:  cmd.Name() == tuiCmd.Name(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default: XDG config dir)")
	rootCmd.PersistentFlags().StringVar(&databasePath, "db", "", "layout database path, ':memory:' to persist nothing")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tessera version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tessera %s\n%s\n", buildInfo, build.RepoURL())
	},
}
