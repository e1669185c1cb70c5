package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"devotional/internal/application/commands"
	"devotional/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List devotionals in the content directory",
	Long: `List every dated devotional in the content directory, oldest first.

The directory is scanned directly; the tracker file is not read or written.

Example:
  devotional-cli list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		indexCmd := commands.NewIndexCommand(repo, repo, logger)
		result, err := indexCmd.Build(ctx)
		if err != nil {
			return err
		}

		if result.Manifest.Count == 0 {
			fmt.Println("No devotionals found")
			return nil
		}

		for _, r := range result.Manifest.Files {
			title := domain.StringField(r.Title)
			if title == "" {
				title = "(untitled)"
			}
			fmt.Printf("%s %s\n", r.File, title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
