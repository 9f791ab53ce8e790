package cmd

import (
	"fmt"
	"os"

	"github.com/chazu/voidcut/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "voidcut",
	Short: "Cut wall openings from placeholder voids",
	Long: `voidcut - wall opening insertion for BIM scenes

Reads a scene of walls and box placeholder voids, finds the placeholders
piercing a chosen wall, and replaces each with a rectangular opening sized
to the placeholder's footprint on the wall's exterior face. All openings of
one wall are inserted in a single transaction.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "voidcut.toml", "Config file (defaults apply when missing)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
}

// setup loads config, applies flag overrides and builds the app.
func setup(cmd *cobra.Command) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"config": configPath, "tolerance": cfg.Geometry.Tolerance}).Debug("configured")
	return NewApp(cfg, log, cmd.InOrStdin(), cmd.OutOrStdout()), nil
}
