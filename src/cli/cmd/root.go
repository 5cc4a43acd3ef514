package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sofmeright/badgemaker/src/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "badgemaker",
	Short: "Deterministic SVG badge renderer",
	Long:  "badgemaker renders shields-style SVG badges and verifies them against a reference renderer.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it.
		switch cmd.Name() {
		case "version", "metrics":
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		warnings, err := config.Validate(cfg)
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "  warning: %s\n", w)
		}
		if err != nil {
			return fmt.Errorf("invalid config %s: %w", cfg.Path(), err)
		}
		if verbose && cfg.Path() != "" {
			fmt.Fprintf(os.Stderr, "  config: %s\n", cfg.Path())
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .badgemaker.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// Execute runs the root command. An interrupt cancels in-flight work.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
