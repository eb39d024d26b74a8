// Package finstruct turns loosely structured financial statement exports
// into normalized period tables, derived ratios and trend series.
package finstruct

import (
	"github.com/rs/zerolog"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/trend"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/vocab"
)

// Options configures a pipeline run.
type Options struct {
	// Logger receives stage diagnostics. If nil, nothing is logged.
	Logger *zerolog.Logger
	// Vocabulary replaces the embedded statement tables.
	// If nil, vocab.Default() is used.
	Vocabulary *vocab.Vocabulary
	// TrendLimits bounds chart series selection.
	// Zero fields fall back to trend.DefaultLimits().
	TrendLimits trend.Limits
	// RunID labels the run. If empty, a random one is generated.
	RunID string
}

// DefaultOptions returns default pipeline options.
func DefaultOptions() Options {
	return Options{
		TrendLimits: trend.DefaultLimits(),
	}
}

// VocabularyOrDefault returns the vocabulary to resolve against.
func (o Options) VocabularyOrDefault() *vocab.Vocabulary {
	if o.Vocabulary != nil {
		return o.Vocabulary
	}
	return vocab.Default()
}

// Limits returns the trend limits with defaults filled in.
func (o Options) Limits() trend.Limits {
	l := o.TrendLimits
	def := trend.DefaultLimits()
	if l.MaxSeries <= 0 {
		l.MaxSeries = def.MaxSeries
	}
	if l.FallbackSeries <= 0 {
		l.FallbackSeries = def.FallbackSeries
	}
	return l
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}
