// Package metrics binds canonical metric keys to the columns of a
// period-major table.
package metrics

import (
	"strings"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/vocab"
)

// Resolve binds each metric of the statement vocabulary to the first column,
// left to right, whose lowercased label contains one of the metric's
// candidate substrings. Keys with no matching column are left out.
//
// Matching is by substring, so a short candidate can bind an unrelated
// column ("total debt" also matches "Total Debtors"). Vocabulary order
// decides which wins.
func Resolve(pt *models.PeriodTable, s *vocab.Statement) models.MetricResolution {
	res := models.MetricResolution{Statement: s.Type}
	if pt == nil {
		return res
	}

	labels := make([]string, len(pt.Columns))
	for i, c := range pt.Columns {
		labels[i] = strings.ToLower(c.Label)
	}

	for _, m := range s.Metrics {
		if b, ok := bind(m, pt, labels); ok {
			res.Bindings = append(res.Bindings, b)
		}
	}
	return res
}

func bind(m vocab.Metric, pt *models.PeriodTable, labels []string) (models.MetricBinding, bool) {
	for col, label := range labels {
		for _, candidate := range m.Candidates {
			if strings.Contains(label, candidate) {
				return models.MetricBinding{
					Key:       m.Key,
					Label:     pt.Columns[col].Label,
					Column:    col,
					Candidate: candidate,
				}, true
			}
		}
	}
	return models.MetricBinding{}, false
}
