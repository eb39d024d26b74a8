package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TableShape is the smallest region a sheet must hold to count as a
// statement: a label column beside at least one value column, and a period
// row above at least one line item.
type TableShape struct {
	MinRows    int
	MinColumns int
	// DensityMin is the share of filled cells in the bounding box. Statement
	// exports are sparse (section headings, blank spacer rows), so it is low.
	DensityMin float64
}

// DefaultTableShape returns the shape used to pick a sheet.
func DefaultTableShape() TableShape {
	return TableShape{
		MinRows:    2,
		MinColumns: 2,
		DensityMin: 0.04,
	}
}

// tableBounds is the bounding box of the filled cells of a sheet, with the
// number of distinct rows and columns that hold them.
type tableBounds struct {
	top, bottom, left, right int
	filled                   int
	rows, cols               int
}

func (b tableBounds) density() float64 {
	return float64(b.filled) / float64((b.bottom-b.top+1)*(b.right-b.left+1))
}

// ref renders the bounds as an A1 range such as "A1:D10".
func (b tableBounds) ref() (string, error) {
	start, err := excelize.CoordinatesToCellName(b.left+1, b.top+1)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(b.right+1, b.bottom+1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}

// LocateTable reports whether rows hold a region of the given shape and
// returns its range.
func LocateTable(rows [][]string, shape TableShape) (string, bool) {
	b, ok := boundsOf(rows)
	if !ok {
		return "", false
	}
	if b.rows < shape.MinRows || b.cols < shape.MinColumns || b.density() < shape.DensityMin {
		return "", false
	}
	ref, err := b.ref()
	if err != nil {
		return "", false
	}
	return ref, true
}

// boundsOf scans rows once. It reports false when no cell is filled.
func boundsOf(rows [][]string) (tableBounds, bool) {
	b := tableBounds{top: -1}
	usedCols := make(map[int]bool)
	for r, row := range rows {
		rowUsed := false
		for c, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			b.filled++
			usedCols[c] = true
			if b.top < 0 {
				b.top, b.left, b.right = r, c, c
			}
			b.bottom = r
			b.left = min(b.left, c)
			b.right = max(b.right, c)
			rowUsed = true
		}
		if rowUsed {
			b.rows++
		}
	}
	b.cols = len(usedCols)
	return b, b.top >= 0
}
