package models

import (
	"encoding/json"
	"math"
)

// MetricBinding binds a canonical metric key to a column of a PeriodTable.
type MetricBinding struct {
	// Key is the canonical metric key, e.g. "current_assets".
	Key string `json:"key"`
	// Label is the matched line-item label.
	Label string `json:"label"`
	// Column is the index of the matched column.
	Column int `json:"column"`
	// Candidate is the vocabulary substring that matched.
	Candidate string `json:"candidate"`
}

// MetricResolution lists the metric keys that matched a column, in
// vocabulary order. Unmatched keys are absent.
type MetricResolution struct {
	// Statement is the vocabulary the resolution was made against.
	Statement StatementType `json:"statement"`
	// Bindings are the matched keys.
	Bindings []MetricBinding `json:"bindings"`
}

// Lookup returns the binding for key.
func (r MetricResolution) Lookup(key string) (MetricBinding, bool) {
	for _, b := range r.Bindings {
		if b.Key == key {
			return b, true
		}
	}
	return MetricBinding{}, false
}

// Map returns the resolution as key to label.
func (r MetricResolution) Map() map[string]string {
	m := make(map[string]string, len(r.Bindings))
	for _, b := range r.Bindings {
		m[b.Key] = b.Label
	}
	return m
}

// DerivedSeries is one ratio or growth series. NaN marks an undefined value.
type DerivedSeries struct {
	// Key is a stable identifier such as "current_ratio".
	Key string
	// Name is the display label such as "Current Ratio".
	Name string
	// Values holds one value per period.
	Values []float64
}

// MarshalJSON encodes NaN values as null.
func (d DerivedSeries) MarshalJSON() ([]byte, error) {
	values := make([]*float64, len(d.Values))
	for i := range d.Values {
		if math.IsNaN(d.Values[i]) || math.IsInf(d.Values[i], 0) {
			continue
		}
		v := d.Values[i]
		values[i] = &v
	}
	return json.Marshal(struct {
		Key    string     `json:"key"`
		Name   string     `json:"name"`
		Values []*float64 `json:"values"`
	}{d.Key, d.Name, values})
}

// AnalysisTable holds derived series aligned with the periods of a PeriodTable.
type AnalysisTable struct {
	// Periods are shared by every series.
	Periods []string `json:"periods"`
	// Metrics are the derived series in derivation order.
	Metrics []DerivedSeries `json:"metrics"`
}

// Metric returns the series with the given key.
func (a *AnalysisTable) Metric(key string) (DerivedSeries, bool) {
	for _, m := range a.Metrics {
		if m.Key == key {
			return m, true
		}
	}
	return DerivedSeries{}, false
}
