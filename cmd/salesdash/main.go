// Package main provides the CLI entry point for salesdash.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/salesdash-go/internal/config"
	"github.com/ukaji3/salesdash-go/internal/logging"
	"github.com/ukaji3/salesdash-go/internal/metrics"
	"github.com/ukaji3/salesdash-go/pkg/salesdash"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/aggregate"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/export"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/output"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/parser"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/reconcile"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/sample"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	outputPath  string
	pretty      bool
	format      string
	monthly     string
	exportPath  string
	charts      bool
	metricsFile string
	useSample   bool
	snapshot    bool

	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "salesdash",
		Short: "Turn sales spreadsheets into dashboard analytics",
		Long: `salesdash reads a CSV or Excel file of sales rows, reconciles its columns,
drops rows without a positive sales amount and prints the KPI, revenue,
category, regional and top product summaries as JSON.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: json, text")

	rootCmd.AddCommand(newAnalyzeCmd(), newExportCmd(), newSampleCmd())
	return rootCmd
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [input.csv|input.xlsx]",
		Short: "Analyze a sales file and print the analytics bundle",
		Long:  "Analyze a sales file and print the analytics bundle.\n\n" + columnsHelp(),
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "Print the store snapshot (id, source, load time) around the bundle")
	addPipelineFlags(cmd)
	cmd.Flags().StringVar(&exportPath, "export", "", "Also write the analytics to this xlsx file")
	cmd.Flags().BoolVar(&charts, "charts", false, "Add native charts to the exported workbook")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")
	return cmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [input.csv|input.xlsx]",
		Short: "Write the analytics of a sales file, or the sample dataset, to xlsx",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path (default: sales-data-YYYY-MM-DD.xlsx in the export dir)")
	cmd.Flags().BoolVar(&useSample, "sample", false, "Export the bundled sample dataset")
	cmd.Flags().BoolVar(&charts, "charts", false, "Add native charts")
	addPipelineFlags(cmd)
	return cmd
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the bundled sample dataset",
		Args:  cobra.NoArgs,
		RunE:  runSample,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&format, "format", "auto", "Input format: auto, csv, spreadsheet")
	cmd.Flags().StringVar(&monthly, "monthly", "", "Monthly bucketing: calendar, recent (default from config)")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Logging.Level = logLevel
	}
	if logFormat != "" {
		loaded.Logging.Format = logFormat
	}

	cfg = loaded
	logger = logging.New(cfg.Logging, cmd.ErrOrStderr())
	return nil
}

// pipelineOptions merges config and command flags.
func pipelineOptions(rec salesdash.Recorder) (salesdash.Options, error) {
	opts := salesdash.DefaultOptions()

	loc, err := cfg.Pipeline.Location()
	if err != nil {
		return opts, err
	}

	mode := cfg.Pipeline.MonthlyMode
	if monthly != "" {
		mode = monthly
	}
	monthlyMode, err := aggregate.ParseMonthlyMode(mode)
	if err != nil {
		return opts, err
	}

	if format != "" && format != "auto" {
		f, err := parser.ParseFormat(format)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}

	opts.MaxFileSize = cfg.Pipeline.MaxFileSize
	opts.Location = loc
	opts.Aggregate.MonthlyMode = monthlyMode
	opts.Aggregate.TopCategories = cfg.Pipeline.TopCategories
	opts.Aggregate.TopProducts = cfg.Pipeline.TopProducts
	opts.Logger = logging.Component(logger, "pipeline")
	opts.Recorder = rec
	return opts, nil
}

// columnsHelp lists the accepted header names of every field.
func columnsHelp() string {
	var b strings.Builder
	b.WriteString("Recognized columns (case-insensitive, first match wins):\n")
	for _, field := range reconcile.Fields {
		fmt.Fprintf(&b, "  %-12s %s\n", field, strings.Join(reconcile.Synonyms(field), ", "))
	}
	return b.String()
}

// analyzeFile runs inputPath through a store, the way a dashboard upload does.
func analyzeFile(ctx context.Context, inputPath string, rec salesdash.Recorder) (*salesdash.Result, *salesdash.Snapshot, error) {
	opts, err := pipelineOptions(rec)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(inputPath)
	if err != nil {
		return nil, nil, salesdash.NewStageError(salesdash.StageRead, inputPath, err)
	}
	defer file.Close()

	store := salesdash.NewStore(sample.MustBundle(), opts)
	res, err := store.Upload(ctx, filepath.Base(inputPath), file)
	if err != nil {
		return nil, nil, err
	}

	if res.Stats.Empty() {
		logger.WarnContext(ctx, "empty result: no rows with a positive sales amount",
			slog.String("source", res.Source),
			slog.Int("rows", res.Stats.Rows))
	}
	return res, store.Current(), nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	m := metrics.New()
	res, snap, err := analyzeFile(cmd.Context(), inputPath, m)
	if metricsFile != "" {
		if werr := m.WriteToTextfile(metricsFile); werr != nil {
			logger.Error("failed to write metrics", slog.String("error", werr.Error()))
		}
	}
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	var jsonData []byte
	if snapshot {
		jsonData, err = output.SnapshotToJSON(snap, pretty)
	} else {
		jsonData, err = output.ToJSON(res.Bundle, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := writeOutput(cmd.OutOrStdout(), jsonData); err != nil {
		return err
	}

	if exportPath != "" {
		if err := export.SaveAs(exportPath, res.Bundle, export.Options{Charts: charts || cfg.Export.Charts}); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		logger.Info("workbook exported", slog.String("path", exportPath))
	}

	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	var bundle *models.AnalyticsBundle

	switch {
	case useSample:
		bundle = sample.MustBundle()
	case len(args) == 1:
		res, _, err := analyzeFile(cmd.Context(), args[0], nil)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		bundle = res.Bundle
	default:
		return fmt.Errorf("an input file or --sample is required")
	}

	path := outputPath
	if path == "" {
		if err := os.MkdirAll(cfg.Export.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create export dir: %w", err)
		}
		path = filepath.Join(cfg.Export.Dir, export.DefaultFileName(time.Now()))
	}

	if err := export.SaveAs(path, bundle, export.Options{Charts: charts || cfg.Export.Charts}); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	logger.Info("workbook exported", slog.String("path", path))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	bundle, err := sample.Bundle()
	if err != nil {
		return err
	}

	jsonData, err := output.ToJSON(bundle, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd.OutOrStdout(), jsonData)
}

func writeOutput(stdout io.Writer, data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(stdout, string(data))
	return err
}
