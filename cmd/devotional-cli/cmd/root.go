package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"devotional/internal/adapters/filesystem"
	"devotional/internal/bootstrap"
	"devotional/internal/config"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	repo   *filesystem.Repository
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "devotional-cli",
	Short: "Generate and index daily devotionals",
	Long: `devotional-cli generates one devotional per day by trying text-generation
providers in a fixed order (groq, openai, deepseek) and keeps a tracker
manifest of every devotional in the content directory.

Credentials are read from GROQ_API_KEY, OPENAI_API_KEY and DEEPSEEK_API_KEY.
Paths and models can be set in devotional.yaml or DEVOTIONAL_* variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		repo = bootstrap.Repository(cfg)
		logger = bootstrap.Logger(os.Stderr, verbose)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./devotional.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
