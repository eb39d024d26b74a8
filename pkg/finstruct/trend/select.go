// Package trend selects and renders the series of a trend chart.
package trend

import (
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/vocab"
)

// Limits bounds the number of selected series.
type Limits struct {
	// MaxSeries caps columns selected by trend pattern.
	MaxSeries int
	// FallbackSeries is the number of leading columns used when no
	// column matches a trend pattern.
	FallbackSeries int
}

// DefaultLimits returns the standard selection limits.
func DefaultLimits() Limits {
	return Limits{MaxSeries: 5, FallbackSeries: 3}
}

// Select picks up to MaxSeries columns whose label matches a trend pattern
// of the statement. With no match the first FallbackSeries columns are used
// and Fallback is set. An empty selection means nothing to plot.
func Select(pt *models.PeriodTable, s *vocab.Statement, limits Limits) models.ChartSeries {
	cs := models.ChartSeries{
		Title:      s.ChartTitle,
		YAxisTitle: s.YAxisTitle,
	}
	if pt == nil {
		return cs
	}
	cs.Periods = append([]string(nil), pt.Periods...)

	for _, col := range pt.Columns {
		if len(cs.Series) >= limits.MaxSeries {
			break
		}
		if s.MatchesTrend(col.Label) {
			cs.Series = append(cs.Series, col)
		}
	}
	if len(cs.Series) > 0 {
		return cs
	}

	for _, col := range pt.Columns {
		if len(cs.Series) >= limits.FallbackSeries {
			break
		}
		cs.Series = append(cs.Series, col)
	}
	cs.Fallback = len(cs.Series) > 0
	return cs
}
