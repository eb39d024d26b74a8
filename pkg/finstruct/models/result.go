package models

// Warning codes attached to a Result.
const (
	// WarnNoPeriodRow means no row matched a period pattern.
	WarnNoPeriodRow = "no_period_row"
	// WarnNoClearStructure means row 0 was used as the period row without
	// any numeric evidence.
	WarnNoClearStructure = "no_clear_structure"
	// WarnNoDataStart means the data start row was defaulted.
	WarnNoDataStart = "no_data_start"
	// WarnNothingToPlot means no column qualified for a trend chart.
	WarnNothingToPlot = "nothing_to_plot"
)

// Warning is a soft, non-fatal finding of a pipeline stage.
type Warning struct {
	// Code is a stable identifier, one of the Warn* constants.
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"message"`
}

// Structure is the located period row and data start row of a grid.
type Structure struct {
	// PeriodRow is the 0-based index of the row holding period labels.
	PeriodRow int `json:"period_row"`
	// DataStart is the 0-based index of the first line-item row.
	DataStart int `json:"data_start"`
	// PeriodFound is false when PeriodRow is a fallback default.
	PeriodFound bool `json:"period_found"`
	// DataStartFound is false when DataStart is a fallback default.
	DataStartFound bool `json:"data_start_found"`
	// Warnings are the soft findings of the locator.
	Warnings []Warning `json:"warnings,omitempty"`
}

// Result is the complete output of one pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id"`
	// Statement is the analysed statement type.
	Statement StatementType `json:"statement"`
	// Format is the declared file extension.
	Format string `json:"format"`
	// Structure is where the table was found in the raw grid.
	Structure Structure `json:"structure"`
	// Table is the normalized statement, line items as rows.
	Table *FinancialTable `json:"table"`
	// ByPeriod is the transposed statement, periods as rows.
	ByPeriod *PeriodTable `json:"by_period"`
	// Resolution is the metric-key to column mapping.
	Resolution MetricResolution `json:"resolution"`
	// Analysis holds the derived ratios and growth rates.
	Analysis *AnalysisTable `json:"analysis"`
	// Chart is the series selected for plotting.
	Chart ChartSeries `json:"chart"`
	// Warnings collects every soft finding of the run.
	Warnings []Warning `json:"warnings,omitempty"`
}
