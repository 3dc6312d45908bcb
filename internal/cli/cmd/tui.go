package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/cli"
)

var (
	tuiWorkspace string
	tuiFresh     bool
	tuiLatency   time.Duration
)

var tuiCmd = &cobra.Command{
	Use:   "tui [url...]",
	Short: "Open the interactive tiling playground",
	Long: `Open a workspace in the terminal. Each tile is a headless content view;
tiles too small to be useful are put to sleep unless focused.

Without URLs the saved layout of the workspace is restored (see
session.auto_restore). Every structural change is saved in the background.

Examples:
  tessera tui                              # restore the default workspace
  tessera tui https://a.example https://b.example
  tessera tui --workspace research --fresh`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVarP(&tuiWorkspace, "workspace", "w", "", "workspace id (default: workspace.id)")
	tuiCmd.Flags().BoolVar(&tuiFresh, "fresh", false, "ignore the saved layout")
	tuiCmd.Flags().DurationVar(&tuiLatency, "latency", 0, "simulated content view latency, e.g. 150ms")
}

func runTUI(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	return app.RunPlayground(cli.PlaygroundOptions{
		WorkspaceID: tuiWorkspace,
		URLs:        args,
		Fresh:       tuiFresh,
		Latency:     tuiLatency,
	})
}
