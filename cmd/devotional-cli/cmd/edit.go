package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"devotional/internal/adapters/editor"
	"devotional/internal/application/commands"
)

var editCmd = &cobra.Command{
	Use:   "edit <YYYY-MM-DD>",
	Short: "Open the devotional for a date in your editor",
	Long: `Open the stored devotional for a date in the configured editor and wait
for it to exit. The editor comes from the editor config key, then $EDITOR,
then $VISUAL.

Example:
  devotional-cli edit 2025-10-13`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		showCmd := commands.NewShowDevotionalCommand(repo, args[0])
		result, err := showCmd.Execute(ctx)
		if err != nil {
			return err
		}
		return editor.NewOpener(cfg.Editor).OpenFile(result.Path)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
