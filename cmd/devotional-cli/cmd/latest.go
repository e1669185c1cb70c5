package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"devotional/internal/application/commands"
)

var latestFormat string

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the latest tracker record",
	Long: `Print the latest record from the tracker. When no tracker has been
written yet the content directory is scanned instead.

Examples:
  devotional-cli latest
  devotional-cli latest --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		latestCmd := commands.NewLatestCommand(repo, repo)
		manifest, err := latestCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if manifest.Latest == nil {
			fmt.Println("No devotionals found")
			return nil
		}

		switch latestFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(manifest.Latest)
		case "yaml":
			m, err := manifest.Latest.ToMap()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(m)
		default:
			return fmt.Errorf("unknown format %q (want json or yaml)", latestFormat)
		}
	},
}

func init() {
	latestCmd.Flags().StringVarP(&latestFormat, "format", "f", "json", "output format: json or yaml")
	rootCmd.AddCommand(latestCmd)
}
