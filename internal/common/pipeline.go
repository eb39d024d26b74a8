package common

import (
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/trend"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/vocab"
)

// PipelineOptions builds finstruct options from the analysis config. The
// vocabulary file, if configured, is loaded once here and shared by every run.
func (c *Config) PipelineOptions(logger *Logger) (finstruct.Options, error) {
	opts := finstruct.DefaultOptions()
	if logger != nil {
		opts.Logger = logger.Zerolog()
	}
	opts.TrendLimits = trend.Limits{
		MaxSeries:      c.Analysis.MaxTrendSeries,
		FallbackSeries: c.Analysis.FallbackTrendSeries,
	}

	if c.Analysis.VocabularyPath != "" {
		v, err := vocab.LoadFile(c.Analysis.VocabularyPath)
		if err != nil {
			return opts, err
		}
		opts.Vocabulary = v
	}
	return opts, nil
}

// RenderOptions returns the chart canvas size.
func (c *Config) RenderOptions() trend.RenderOptions {
	return trend.RenderOptions{
		Width:  c.Output.ChartWidth,
		Height: c.Output.ChartHeight,
	}
}
