package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"libcatalog/internal/config"
	"libcatalog/internal/logging"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "libcatalog",
	Short: "Render a libs.json catalog as a library download page",
	Long: `libcatalog reads a JSON array of library records (libs.json), validates and
normalizes each record, sorts them by id and renders one card per library.

Configuration is taken from the environment (.env and .env.local are loaded
first); flags override it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("source", "", "catalog location: http(s) URL or path relative to the site directory")
	rootCmd.PersistentFlags().String("site-dir", "", "directory holding libs.json and the downloadable files")
	rootCmd.PersistentFlags().Bool("lenient", false, "derive a missing filename from the library name instead of skipping the record")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(serveCmd, renderCmd)
}

// applyFlags copies explicitly set flags over the environment configuration.
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("source") {
		if c.Source, err = flags.GetString("source"); err != nil {
			return err
		}
	}
	if flags.Changed("site-dir") {
		if c.SiteDir, err = flags.GetString("site-dir"); err != nil {
			return err
		}
	}
	if flags.Changed("lenient") {
		lenient, err := flags.GetBool("lenient")
		if err != nil {
			return err
		}
		c.Strict = !lenient
	}
	if flags.Changed("log-level") {
		if c.LogLevel, err = flags.GetString("log-level"); err != nil {
			return err
		}
	}
	if flags.Changed("addr") {
		if c.Addr, err = flags.GetString("addr"); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
