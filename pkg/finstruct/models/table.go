package models

// LineItem is one row of a FinancialTable.
type LineItem struct {
	// Label is the line-item label as it appeared in the source.
	Label string `json:"label"`
	// Values holds one value per period, aligned with FinancialTable.Periods.
	Values []float64 `json:"values"`
}

// FinancialTable maps line-item labels to per-period values.
// Periods keep source order, left to right; they are never sorted.
type FinancialTable struct {
	// LabelHeader is the header of the label column ("Item" by default).
	LabelHeader string `json:"label_header"`
	// Periods are the canonical period labels, one per value column.
	Periods []string `json:"periods"`
	// Rows are the retained line items in source order.
	Rows []LineItem `json:"rows"`
}

// Value returns the value of the first row labelled label for period.
func (t *FinancialTable) Value(label, period string) (float64, bool) {
	col := t.periodIndex(period)
	if col < 0 {
		return 0, false
	}
	for _, row := range t.Rows {
		if row.Label == label {
			return row.Values[col], true
		}
	}
	return 0, false
}

// Labels returns the line-item labels in row order.
func (t *FinancialTable) Labels() []string {
	labels := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		labels[i] = row.Label
	}
	return labels
}

func (t *FinancialTable) periodIndex(period string) int {
	for i, p := range t.Periods {
		if p == period {
			return i
		}
	}
	return -1
}

// Transpose returns the period-major view of the table: one row per period
// and one column per line item.
func (t *FinancialTable) Transpose() *PeriodTable {
	pt := &PeriodTable{
		Periods: append([]string(nil), t.Periods...),
		Columns: make([]Series, len(t.Rows)),
	}
	for i, row := range t.Rows {
		pt.Columns[i] = Series{
			Label:  row.Label,
			Values: append([]float64(nil), row.Values...),
		}
	}
	return pt
}

// Series is a labelled sequence of values aligned with a period axis.
type Series struct {
	// Label is the line-item label.
	Label string `json:"label"`
	// Values holds one value per period.
	Values []float64 `json:"values"`
}

// PeriodTable is the transposed FinancialTable: periods are rows and line
// items are columns.
type PeriodTable struct {
	// Periods are the row labels.
	Periods []string `json:"periods"`
	// Columns are the line items in source order.
	Columns []Series `json:"columns"`
}

// Column returns the first column with the given label.
func (t *PeriodTable) Column(label string) (Series, bool) {
	for _, c := range t.Columns {
		if c.Label == label {
			return c, true
		}
	}
	return Series{}, false
}
