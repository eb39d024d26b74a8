// Package structure locates the period row and the first line-item row of a
// raw grid.
package structure

import (
	"fmt"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/vocab"
)

// Locate scans grid top to bottom for the period row and then applies the
// statement's data start rule. Missing structure never fails: defaults are
// used and a warning is attached to the result.
func Locate(grid models.Grid, s *vocab.Statement) models.Structure {
	var st models.Structure

	for r := 0; r < grid.NumRows(); r++ {
		if s.MatchesPeriod(grid.RowText(r)) {
			st.PeriodRow = r
			st.PeriodFound = true
			break
		}
	}

	// Without a period row the header is row 0 and the data follows it,
	// whatever the data start rule would have picked.
	if !st.PeriodFound {
		st.PeriodRow = 0
		st.DataStart = 1
		if rowHasNumeric(grid, 0) {
			st.Warnings = append(st.Warnings, models.Warning{
				Code:    models.WarnNoPeriodRow,
				Message: "no row matched a period pattern; using row 0, which holds numeric cells",
			})
		} else {
			st.Warnings = append(st.Warnings, models.Warning{
				Code:    models.WarnNoClearStructure,
				Message: "no clear period row; defaulting to rows 0 and 1",
			})
		}
		return st
	}

	rule := &s.DataStart
	switch rule.Mode {
	case vocab.ModeAfterPeriod:
		st.DataStart = st.PeriodRow + rule.Offset
		st.DataStartFound = true
		return st
	case vocab.ModeKeyword:
		if row, ok := scanKeywords(grid, rule, st.PeriodRow); ok {
			st.DataStart = row
			st.DataStartFound = true
			return st
		}
	}

	st.DataStart = st.PeriodRow + 1
	st.DataStartFound = false
	st.Warnings = append(st.Warnings, models.Warning{
		Code:    models.WarnNoDataStart,
		Message: fmt.Sprintf("no data start row found; defaulting to row %d", st.DataStart),
	})
	return st
}

// scanKeywords returns the first row matching one of the rule's keywords,
// shifted by the rule's offset.
func scanKeywords(grid models.Grid, rule *vocab.DataStartRule, periodRow int) (int, bool) {
	start := 0
	if rule.Scope == vocab.ScopeAfterPeriod {
		start = periodRow + 1
	}
	for r := start; r < grid.NumRows(); r++ {
		if rule.Match(grid.RowText(r)) {
			return r + rule.Offset, true
		}
	}
	return 0, false
}

func rowHasNumeric(grid models.Grid, r int) bool {
	if r >= grid.NumRows() {
		return false
	}
	for _, c := range grid[r] {
		if c.IsNumeric() {
			return true
		}
	}
	return false
}
