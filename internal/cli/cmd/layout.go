package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/domain/entity"
)

const defaultLayoutsLimit = 20

var (
	layoutJSON  bool
	layoutLimit int
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and manage saved workspace layouts",
}

var layoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runLayoutList,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show [workspace]",
	Short: "Show a saved layout as a tree, or as JSON with --json",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLayoutShow,
}

var layoutDeleteCmd = &cobra.Command{
	Use:   "delete <workspace>",
	Short: "Delete a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutDelete,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutListCmd, layoutShowCmd, layoutDeleteCmd)

	layoutListCmd.Flags().BoolVar(&layoutJSON, "json", false, "output as JSON")
	layoutListCmd.Flags().IntVar(&layoutLimit, "limit", defaultLayoutsLimit, "maximum layouts to show")
	layoutShowCmd.Flags().BoolVar(&layoutJSON, "json", false, "output the stored JSON document")
}

func runLayoutList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	output, err := app.ListUC.Execute(app.Ctx(), layoutLimit)
	if err != nil {
		return fmt.Errorf("list layouts: %w", err)
	}

	if layoutJSON {
		return writeJSON(cmd.OutOrStdout(), output.Layouts)
	}
	renderer := styles.NewLayoutsCLIRenderer(app.Theme)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderList(output.Layouts, app.WorkspaceID("")))
	return err
}

func runLayoutShow(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var id string
	if len(args) == 1 {
		id = args[0]
	}
	stored, err := app.Layouts.GetSnapshot(app.Ctx(), app.WorkspaceID(id))
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	if stored == nil {
		return fmt.Errorf("%w: %s", usecase.ErrLayoutNotFound, app.WorkspaceID(id))
	}

	if layoutJSON {
		return writeJSON(cmd.OutOrStdout(), stored.State)
	}
	renderer := styles.NewLayoutsCLIRenderer(app.Theme)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderTree(stored))
	return err
}

func runLayoutDelete(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	id := entity.WorkspaceID(args[0])
	if err := app.DeleteUC.Execute(app.Ctx(), id); err != nil {
		if errors.Is(err, usecase.ErrLayoutNotFound) {
			return fmt.Errorf("no saved layout named %q", id)
		}
		return fmt.Errorf("delete layout: %w", err)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s deleted layout %s\n",
		app.Theme.Highlight.Render("✓"), app.Theme.Title.Render(string(id)))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
