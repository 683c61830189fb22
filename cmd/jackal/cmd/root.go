package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/mliezun/jackal/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "jackal",
	Short: "Syntax analyzer for Jack classes",
	Long: `jackal reads Jack source files and writes their parse trees as
one-marker-per-line markup next to them (Main.jack -> Main.xml).

A unit with a syntax error is reported and skipped, the other units
of the batch are still analyzed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command line
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml or .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every unit at debug level")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

// loadConfig reads --config or falls back to the defaults, then applies the
// global flags
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return nil, err
		}
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if noColor {
		cfg.Color = false
	}
	return cfg, nil
}

func newColor(cfg *config.Config) *color.Color {
	c := color.New()
	if !cfg.Color {
		c.Disable()
	}
	return c
}

func printError(err error) {
	c := color.New()
	if noColor {
		c.Disable()
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", c.Red("error:"), err)
}
