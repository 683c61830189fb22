package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mliezun/jackal/internal/driver"
	"github.com/spf13/cobra"
)

var (
	emitTokens bool
	workers    int
	outDir     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>...",
	Short: "Analyze Jack files or directories",
	Long: `Analyze every .jack file given directly or found at the top level of
each given directory, and write one parse tree per file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&emitTokens, "tokens", false, "also write the token stream (MainT.xml)")
	analyzeCmd.Flags().IntVar(&workers, "workers", 0, "number of units analyzed in parallel (default: config)")
	analyzeCmd.Flags().StringVar(&outDir, "out-dir", "", "write outputs to this directory")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if emitTokens {
		cfg.EmitTokens = true
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := driver.NewLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	report, err := driver.NewRunner(cfg, log).Run(cmd.Context(), args)
	if err != nil {
		return err
	}

	c := newColor(cfg)
	out := cmd.OutOrStdout()
	for _, res := range report.Results {
		name := filepath.Base(res.Unit)
		if res.Err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", c.Red("FAIL"), name, res.Err)
			continue
		}
		fmt.Fprintf(out, "%s %s -> %s\n", c.Green("ok  "), name, res.Output)
	}
	fmt.Fprintf(out, "%d analyzed, %d failed\n", report.Succeeded(), report.Failed())

	if report.Failed() > 0 {
		return fmt.Errorf("%d of %d units failed", report.Failed(), len(report.Results))
	}
	return nil
}
