// Package analysis computes ratio and growth series from resolved metrics.
package analysis

import (
	"math"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/vocab"
)

// Analyze evaluates the statement's derivations in order. A derivation whose
// metrics are not all resolved is skipped.
func Analyze(pt *models.PeriodTable, res models.MetricResolution, s *vocab.Statement) *models.AnalysisTable {
	out := &models.AnalysisTable{Metrics: []models.DerivedSeries{}}
	if pt == nil {
		return out
	}
	out.Periods = append([]string(nil), pt.Periods...)

	column := func(key string) (models.Series, bool) {
		b, ok := res.Lookup(key)
		if !ok || b.Column < 0 || b.Column >= len(pt.Columns) {
			return models.Series{}, false
		}
		return pt.Columns[b.Column], true
	}

	for _, d := range s.Derivations {
		switch d.Kind {
		case vocab.KindRatio:
			num, ok := column(d.Numerator)
			if !ok {
				continue
			}
			den, ok := column(d.Denominator)
			if !ok {
				continue
			}
			out.Metrics = append(out.Metrics, models.DerivedSeries{
				Key:    d.Key,
				Name:   d.Name,
				Values: Ratio(num.Values, den.Values, d.Scale),
			})
		case vocab.KindGrowth:
			col, ok := column(d.Metric)
			if !ok {
				continue
			}
			name := d.Name
			if name == "" {
				name = col.Label + " YoY Growth (%)"
			}
			out.Metrics = append(out.Metrics, models.DerivedSeries{
				Key:    d.Key,
				Name:   name,
				Values: Growth(col.Values),
			})
		}
	}
	return out
}

// Growth returns the period-over-period growth of values in percent. The
// first period, and any period whose predecessor is zero, is NaN.
func Growth(values []float64) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		if i == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = finite((values[i] - values[i-1]) / values[i-1] * 100)
	}
	return out
}

// Ratio returns scale * num / den per period. A zero divisor yields NaN.
// The result is as long as the shorter input.
func Ratio(num, den []float64, scale float64) []float64 {
	n := min(len(num), len(den))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if den[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = finite(scale * num[i] / den[i])
	}
	return out
}

func finite(v float64) float64 {
	if math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
