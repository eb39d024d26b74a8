package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
)

// missingTokens are text values read as empty cells.
var missingTokens = map[string]bool{
	"":     true,
	"nan":  true,
	"-nan": true,
	"na":   true,
	"n/a":  true,
	"#n/a": true,
	"null": true,
	"none": true,
}

// parseValue converts a raw cell string into a typed cell.
// Returns Empty for missing markers, Number for finite numerals, or Text.
func parseValue(s string) models.Cell {
	s = strings.TrimSpace(s)
	if missingTokens[strings.ToLower(s)] {
		return models.Empty()
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return models.Number(f)
	}
	return models.Text(s)
}

// gridFromStrings builds a grid from string rows, typing every cell.
func gridFromStrings(rows [][]string) models.Grid {
	grid := make(models.Grid, len(rows))
	for i, row := range rows {
		cells := make([]models.Cell, len(row))
		for j, v := range row {
			cells[j] = parseValue(v)
		}
		grid[i] = cells
	}
	return grid
}
