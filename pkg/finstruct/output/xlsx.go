package output

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
)

// Workbook sheet names.
const (
	SheetStatement = "Statement"
	SheetByPeriod  = "By Period"
	SheetAnalysis  = "Analysis"
)

// WriteXLSX returns an XLSX workbook (as bytes) with the normalized
// statement, its period-major view and the derived series. Undefined values
// are left as empty cells.
func WriteXLSX(r *models.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetStatement); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetByPeriod, SheetAnalysis} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	// Writes stop at the first failure, which is returned below.
	var firstErr error
	keep := func(err error) {
		if firstErr == nil && err != nil {
			firstErr = err
		}
	}
	write := func(sheet string, col, row int, v any) {
		if firstErr != nil {
			return
		}
		if fv, ok := v.(float64); ok && (math.IsNaN(fv) || math.IsInf(fv, 0)) {
			return
		}
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			keep(fmt.Errorf("%s: %w", sheet, err))
			return
		}
		keep(f.SetCellValue(sheet, cell, v))
	}

	if t := r.Table; t != nil {
		write(SheetStatement, 1, 1, t.LabelHeader)
		for i, p := range t.Periods {
			write(SheetStatement, i+2, 1, p)
		}
		for i, item := range t.Rows {
			write(SheetStatement, 1, i+2, item.Label)
			for j, v := range item.Values {
				write(SheetStatement, j+2, i+2, v)
			}
		}
		keep(f.SetColWidth(SheetStatement, "A", "A", 40))
	}

	if pt := r.ByPeriod; pt != nil {
		write(SheetByPeriod, 1, 1, "Period")
		for i, c := range pt.Columns {
			write(SheetByPeriod, i+2, 1, c.Label)
		}
		for i, p := range pt.Periods {
			write(SheetByPeriod, 1, i+2, p)
			for j, c := range pt.Columns {
				if i < len(c.Values) {
					write(SheetByPeriod, j+2, i+2, c.Values[i])
				}
			}
		}
		keep(f.SetColWidth(SheetByPeriod, "A", "A", 14))
	}

	if a := r.Analysis; a != nil {
		write(SheetAnalysis, 1, 1, "Period")
		for i, m := range a.Metrics {
			write(SheetAnalysis, i+2, 1, m.Name)
		}
		for i, p := range a.Periods {
			write(SheetAnalysis, 1, i+2, p)
			for j, m := range a.Metrics {
				if i < len(m.Values) {
					write(SheetAnalysis, j+2, i+2, m.Values[i])
				}
			}
		}
		keep(f.SetColWidth(SheetAnalysis, "A", "A", 14))
	}

	if firstErr != nil {
		return nil, fmt.Errorf("xlsx write: %w", firstErr)
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
