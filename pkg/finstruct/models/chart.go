package models

// ChartSeries is the set of columns selected for a trend chart.
type ChartSeries struct {
	// Title is the chart title.
	Title string `json:"title"`
	// YAxisTitle is the Y-axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// Periods are the X-axis labels.
	Periods []string `json:"periods"`
	// Series are the selected columns, at most the selection limit.
	Series []Series `json:"series"`
	// Fallback is true when no trend pattern matched and the first numeric
	// columns were used instead.
	Fallback bool `json:"fallback,omitempty"`
}

// NothingToPlot reports whether the selection is empty.
func (c ChartSeries) NothingToPlot() bool {
	return len(c.Series) == 0
}
