package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"devotional/internal/application/commands"
	"devotional/internal/bootstrap"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate today's devotional",
	Long: `Generate the devotional for today's UTC date.

Providers are tried once each, in order, until one returns text. The result
is written to <output_dir>/<YYYY-MM-DD>.json, replacing any earlier file for
the same date. Exits non-zero if every provider fails.

Example:
  devotional-cli generate`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		genCmd := commands.NewGenerateCommand(bootstrap.Providers(cfg), repo, cfg.App, logger)
		result, err := genCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
