package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devotional/internal/application/commands"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <YYYY-MM-DD>",
	Short: "Print the devotional for a date",
	Long: `Print the markdown body of the devotional stored for a date.

Files that are not in the generator format (or --raw) are printed as JSON.

Examples:
  devotional-cli show 2025-10-13
  devotional-cli show 2025-10-13 --raw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		showCmd := commands.NewShowDevotionalCommand(repo, args[0])
		result, err := showCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if showRaw || result.Devotional == nil {
			os.Stdout.Write(result.Raw)
			fmt.Println()
			return nil
		}
		fmt.Println(result.Devotional.Content)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the stored JSON")
	rootCmd.AddCommand(showCmd)
}
