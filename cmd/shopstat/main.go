// Package main provides the CLI entry point for shopstat.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/shopstat-go/pkg/shopstat"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/config"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/logging"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/output"
)

// cliFlags holds flag values shared by the subcommands.
type cliFlags struct {
	configPath   string
	sheet        string
	headerRow    int
	format       string
	pretty       bool
	exampleJobs  int
	topShortages int
	logLevel     string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "shopstat",
		Short: "Summarize job-cost spreadsheets",
		Long: `shopstat reads a job-cost status workbook (customer, job and component rows)
and reports inventory shortages and purchase-order fulfillment.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML config file")
	pf.StringVar(&flags.format, "format", "text", "Output format: text, json")
	pf.BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [input.xlsx]",
		Short: "Report shortages and PO fulfillment for one sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, flags, args[0])
		},
	}
	analyzeCmd.Flags().StringVar(&flags.sheet, "sheet", shopstat.DefaultSheet, "Sheet to analyze")
	analyzeCmd.Flags().IntVar(&flags.headerRow, "header-row", 0, "Header row (1-based); 0 detects it")
	analyzeCmd.Flags().IntVar(&flags.exampleJobs, "examples", 3, "Number of jobs with POs to break down")
	analyzeCmd.Flags().IntVar(&flags.topShortages, "top", 10, "Number of stock shortages to list")

	profileCmd := &cobra.Command{
		Use:   "profile [input.xlsx]",
		Short: "Describe the sheets, headers and column types of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(cmd, flags, args[0])
		},
	}

	rootCmd.AddCommand(analyzeCmd, profileCmd)
	return rootCmd
}

func runAnalyze(cmd *cobra.Command, flags *cliFlags, inputPath string) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Logging, cmd.ErrOrStderr())

	opts := shopstat.Options{
		Sheet:     cfg.Sheet,
		HeaderRow: cfg.HeaderRow,
		Logger:    logger,
	}

	summary, err := shopstat.Analyze(inputPath, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), summary, flags.pretty)
	}

	textOpts := output.TextOptions{
		ExampleJobs:  cfg.ExampleJobs,
		TopShortages: cfg.TopShortages,
	}
	if err := output.WriteText(cmd.OutOrStdout(), summary, textOpts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func runProfile(cmd *cobra.Command, flags *cliFlags, inputPath string) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Logging, cmd.ErrOrStderr())

	profile, err := shopstat.Profile(inputPath, shopstat.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("profile failed: %w", err)
	}

	if cfg.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), profile, flags.pretty)
	}
	if err := output.WriteProfile(cmd.OutOrStdout(), profile); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// loadConfig loads the config file and environment, then applies any flag
// given on the command line.
func loadConfig(cmd *cobra.Command, flags *cliFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("sheet") {
		cfg.Sheet = flags.sheet
	}
	if changed("header-row") {
		cfg.HeaderRow = flags.headerRow
	}
	if changed("examples") {
		cfg.ExampleJobs = flags.exampleJobs
	}
	if changed("top") {
		cfg.TopShortages = flags.topShortages
	}
	if changed("format") {
		cfg.Format = flags.format
	}
	if changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
