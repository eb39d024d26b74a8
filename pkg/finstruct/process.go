package finstruct

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/analysis"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/metrics"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/normalize"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/parser"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/structure"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/trend"
)

// Process runs the full pipeline over one uploaded statement: decode the
// bytes as the declared extension, locate the period and data rows,
// normalize the table, resolve metrics, derive ratios and growth, and select
// trend series.
//
// Missing structure is reported as warnings on the Result. Terminal failures
// are returned as *LoadError.
func Process(st models.StatementType, raw []byte, ext string, opts Options) (*models.Result, error) {
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := opts.logger().With().
		Str("run_id", runID).
		Str("statement", string(st)).
		Str("ext", ext).
		Logger()

	vs, err := opts.VocabularyOrDefault().Statement(st)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStatement, err)
	}

	format, err := parser.ParseFormat(ext)
	if err != nil {
		return nil, NewLoadError(KindUnsupportedFormat, "format", err)
	}

	decoded, err := parser.Decode(raw, format)
	if err != nil {
		if errors.Is(err, parser.ErrUnsupportedFormat) {
			return nil, NewLoadError(KindUnsupportedFormat, "decode", err)
		}
		return nil, NewLoadError(KindDecode, "decode", err)
	}
	logger.Debug().
		Str("engine", decoded.Engine).
		Str("delimiter", decoded.Delimiter).
		Str("encoding", decoded.Encoding).
		Str("range", decoded.Range).
		Int("rows", decoded.Grid.NumRows()).
		Int("cols", decoded.Grid.Width()).
		Msg("decoded")

	located := structure.Locate(decoded.Grid, vs)
	logger.Debug().
		Int("period_row", located.PeriodRow).
		Int("data_start", located.DataStart).
		Msg("structure located")

	table, err := normalize.Table(decoded.Grid, located.PeriodRow, located.DataStart)
	if err != nil {
		return nil, NewLoadError(KindEmptyResult, "normalize", err)
	}
	byPeriod := table.Transpose()

	resolution := metrics.Resolve(byPeriod, vs)
	derived := analysis.Analyze(byPeriod, resolution, vs)
	chart := trend.Select(byPeriod, vs, opts.Limits())

	warnings := append([]models.Warning(nil), located.Warnings...)
	if chart.NothingToPlot() {
		warnings = append(warnings, models.Warning{
			Code:    models.WarnNothingToPlot,
			Message: "no column qualifies for a trend chart",
		})
	}
	for _, w := range warnings {
		logger.Warn().Str("code", w.Code).Msg(w.Message)
	}

	logger.Debug().
		Int("periods", len(table.Periods)).
		Int("line_items", len(table.Rows)).
		Int("metrics", len(resolution.Bindings)).
		Int("derived", len(derived.Metrics)).
		Int("chart_series", len(chart.Series)).
		Bool("chart_fallback", chart.Fallback).
		Msg("processed")

	return &models.Result{
		RunID:      runID,
		Statement:  st,
		Format:     string(format),
		Structure:  located,
		Table:      table,
		ByPeriod:   byPeriod,
		Resolution: resolution,
		Analysis:   derived,
		Chart:      chart,
		Warnings:   warnings,
	}, nil
}
