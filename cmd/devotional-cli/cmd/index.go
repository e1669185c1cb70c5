package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"devotional/internal/application/commands"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the content tracker",
	Long: `Scan the content directory for YYYY-MM-DD.json files and overwrite the
tracker manifest with the latest record, a count, and one record per file.

Files that cannot be parsed are skipped (listed with --verbose).

Example:
  devotional-cli index`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		indexCmd := commands.NewIndexCommand(repo, repo, logger)
		result, err := indexCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
