// Package models defines data structures for financial statement extraction.
package models

import (
	"math"
	"strconv"
	"strings"
)

// CellKind tags the value held by a Cell.
type CellKind uint8

const (
	// CellEmpty is a missing or blank cell.
	CellEmpty CellKind = iota
	// CellNumber holds a float64.
	CellNumber
	// CellText holds a string.
	CellText
)

// Cell is a single raw grid value: Empty, Number or Text.
type Cell struct {
	// Kind selects which of Num or Str is meaningful.
	Kind CellKind `json:"kind"`
	// Num is the value of a CellNumber.
	Num float64 `json:"num,omitempty"`
	// Str is the value of a CellText.
	Str string `json:"str,omitempty"`
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: CellNumber, Num: f} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: CellText, Str: s} }

// IsEmpty reports whether the cell carries no value. Whitespace-only text
// counts as empty.
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellText:
		return strings.TrimSpace(c.Str) == ""
	default:
		return false
	}
}

// IsNumeric reports whether the cell is a number or a string of ASCII digits.
func (c Cell) IsNumeric() bool {
	switch c.Kind {
	case CellNumber:
		return true
	case CellText:
		s := strings.TrimSpace(c.Str)
		if s == "" {
			return false
		}
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the cell as a token. Integral numbers render without a
// fractional part or exponent ("201103", not "201103.0").
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		if c.Num == math.Trunc(c.Num) && math.Abs(c.Num) < 1e15 {
			return strconv.FormatFloat(c.Num, 'f', -1, 64)
		}
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	case CellText:
		return c.Str
	default:
		return ""
	}
}

// Grid is a header-less raw table of rows. Rows may differ in length;
// missing trailing cells read as Empty. A Grid is not modified after decoding.
type Grid [][]Cell

// NumRows returns the number of rows.
func (g Grid) NumRows() int { return len(g) }

// Width returns the length of the longest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// At returns the cell at (row, col), or Empty when out of range.
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return Empty()
	}
	return g[row][col]
}

// RowText joins the non-empty cells of a row with single spaces.
func (g Grid) RowText(row int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	parts := make([]string, 0, len(g[row]))
	for _, c := range g[row] {
		if c.IsEmpty() {
			continue
		}
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

// IsBlank reports whether the grid holds no non-empty cell.
func (g Grid) IsBlank() bool {
	for _, row := range g {
		for _, c := range row {
			if !c.IsEmpty() {
				return false
			}
		}
	}
	return true
}
