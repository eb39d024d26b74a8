package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
)

// Sentinel errors for the failure conditions of Table.
var (
	// ErrEmptyGrid is returned for a grid with no non-empty cell.
	ErrEmptyGrid = errors.New("grid is empty")
	// ErrNoPeriodColumns is returned when the period row holds no labels
	// beyond the label column.
	ErrNoPeriodColumns = errors.New("no period columns found")
	// ErrNoRows is returned when cleanup eliminates every line item.
	ErrNoRows = errors.New("no rows left after cleanup")
)

// DefaultLabelHeader names the label column when the source leaves it blank.
const DefaultLabelHeader = "Item"

// Table slices grid into a FinancialTable using the located period row and
// data start row. Rows that are empty across every period column are dropped,
// remaining cells are coerced with Value, and rows that are zero across every
// period column are dropped as well.
func Table(grid models.Grid, periodRow, dataStart int) (*models.FinancialTable, error) {
	if grid.NumRows() == 0 || grid.IsBlank() {
		return nil, ErrEmptyGrid
	}
	if periodRow < 0 || periodRow >= grid.NumRows() {
		return nil, fmt.Errorf("%w: period row %d outside grid of %d rows", ErrNoPeriodColumns, periodRow, grid.NumRows())
	}

	var cols []int
	var periods []string
	for c := 1; c < len(grid[periodRow]); c++ {
		cell := grid.At(periodRow, c)
		if cell.IsEmpty() {
			continue
		}
		cols = append(cols, c)
		periods = append(periods, Period(cell.String()))
	}
	if len(cols) == 0 {
		return nil, ErrNoPeriodColumns
	}

	table := &models.FinancialTable{
		LabelHeader: labelHeader(grid.At(periodRow, 0)),
		Periods:     periods,
	}

	if dataStart < 0 {
		dataStart = 0
	}
	for r := dataStart; r < grid.NumRows(); r++ {
		if rowEmpty(grid, r, cols) {
			continue
		}

		values := make([]float64, len(cols))
		nonZero := false
		for i, c := range cols {
			values[i] = Value(grid.At(r, c))
			if values[i] != 0 {
				nonZero = true
			}
		}
		if !nonZero {
			continue
		}

		table.Rows = append(table.Rows, models.LineItem{
			Label:  strings.TrimSpace(grid.At(r, 0).String()),
			Values: values,
		})
	}

	if len(table.Rows) == 0 {
		return nil, ErrNoRows
	}
	return table, nil
}

func labelHeader(c models.Cell) string {
	s := strings.TrimSpace(c.String())
	switch strings.ToLower(s) {
	case "", "year", "nan":
		return DefaultLabelHeader
	}
	return s
}

func rowEmpty(grid models.Grid, r int, cols []int) bool {
	for _, c := range cols {
		if !grid.At(r, c).IsEmpty() {
			return false
		}
	}
	return true
}
