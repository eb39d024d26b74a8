// Package main provides the CLI entry point for finstruct.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rajesh180675/advanced-analysis/internal/common"
	"github.com/rajesh180675/advanced-analysis/internal/server"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/output"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/trend"
)

var (
	configPaths   []string
	statementType string
	declaredExt   string
	outputPath    string
	pretty        bool
	xlsxPath      string
	chartPath     string
)

func main() {
	// Load .env file if it exists (local dev)
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "finstruct",
		Short: "Normalize and analyse financial statement exports",
		Long: `finstruct reads Balance Sheet, Profit & Loss and Cash Flow exports
(.xls, .xlsx, .csv, .gp, .txt, .tsv), locates the period axis and line items,
and outputs normalized tables, ratios, growth rates and trend charts.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringSliceVar(&configPaths, "config", []string{"finstruct.toml"}, "Config file paths (later files override earlier)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [input]",
		Short: "Analyse one statement file and output JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVarP(&statementType, "type", "t", "balance_sheet", "Statement type: balance_sheet, profit_loss, cash_flow")
	analyzeCmd.Flags().StringVar(&declaredExt, "ext", "", "Declared file extension (default: from the input name)")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	analyzeCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write an XLSX workbook to this path")
	analyzeCmd.Flags().StringVar(&chartPath, "chart", "", "Also write a PNG trend chart to this path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP upload server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Print the active statement vocabulary as YAML",
		Args:  cobra.NoArgs,
		RunE:  runVocab,
	}

	rootCmd.AddCommand(analyzeCmd, serveCmd, vocabCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup() (*common.Config, *common.Logger, finstruct.Options, error) {
	cfg, err := common.LoadConfig(configPaths...)
	if err != nil {
		return nil, nil, finstruct.Options{}, err
	}
	logger := common.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	opts, err := cfg.PipelineOptions(logger)
	if err != nil {
		return nil, nil, finstruct.Options{}, err
	}
	return cfg, logger, opts, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, logger, opts, err := setup()
	if err != nil {
		return err
	}

	st, err := models.ParseStatementType(statementType)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", inputPath)
		}
		return err
	}

	ext := declaredExt
	if ext == "" {
		ext = filepath.Ext(inputPath)
	}

	result, err := finstruct.Process(st, raw, ext, opts)
	if err != nil {
		logger.Error().Err(err).Str("kind", string(finstruct.KindOf(err))).Str("file", inputPath).Msg("analysis failed")
		return fmt.Errorf("analysis failed: %w", err)
	}

	// Serialize to JSON
	jsonData, err := output.ToJSON(result, pretty || cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Println(string(jsonData))
	}

	if xlsxPath != "" {
		data, err := output.WriteXLSX(result)
		if err != nil {
			return fmt.Errorf("failed to build workbook: %w", err)
		}
		if err := os.WriteFile(xlsxPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}

	if chartPath != "" {
		png, err := trend.Render(result.Chart, cfg.RenderOptions())
		if err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		if err := os.WriteFile(chartPath, png, 0644); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
	}

	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, opts, err := setup()
	if err != nil {
		return err
	}

	srv := server.NewServer(cfg, opts, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runVocab(cmd *cobra.Command, args []string) error {
	_, _, opts, err := setup()
	if err != nil {
		return err
	}

	data, err := opts.VocabularyOrDefault().YAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
