package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
)

func sampleResult() *models.Result {
	table := &models.FinancialTable{
		LabelHeader: "Item",
		Periods:     []string{"Mar-2011", "Mar-2012"},
		Rows: []models.LineItem{
			{Label: "Total Assets", Values: []float64{100, 150}},
		},
	}
	return &models.Result{
		RunID:     "run-1",
		Statement: models.BalanceSheet,
		Format:    ".csv",
		Table:     table,
		ByPeriod:  table.Transpose(),
		Analysis: &models.AnalysisTable{
			Periods: table.Periods,
			Metrics: []models.DerivedSeries{
				{Key: "total_assets_yoy_growth", Name: "Total Assets YoY Growth (%)", Values: []float64{math.NaN(), 50}},
			},
		},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleResult(), false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"values":[null,50]`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "balance_sheet", decoded["statement"])

	pretty, err := ToJSON(sampleResult(), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"run_id\": \"run-1\"")
}

func TestTableToJSON(t *testing.T) {
	data, err := TableToJSON(sampleResult().Table, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"label_header": "Item",
		"periods": ["Mar-2011", "Mar-2012"],
		"rows": [{"label": "Total Assets", "values": [100, 150]}]
	}`, string(data))
}

func TestWriteXLSX(t *testing.T) {
	data, err := WriteXLSX(sampleResult())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetStatement, SheetByPeriod, SheetAnalysis}, f.GetSheetList())

	cell := func(sheet, axis string) string {
		v, err := f.GetCellValue(sheet, axis)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Item", cell(SheetStatement, "A1"))
	assert.Equal(t, "Mar-2012", cell(SheetStatement, "C1"))
	assert.Equal(t, "150", cell(SheetStatement, "C2"))

	assert.Equal(t, "Total Assets", cell(SheetByPeriod, "B1"))
	assert.Equal(t, "Mar-2011", cell(SheetByPeriod, "A2"))
	assert.Equal(t, "100", cell(SheetByPeriod, "B2"))

	assert.Equal(t, "Total Assets YoY Growth (%)", cell(SheetAnalysis, "B1"))
	assert.Equal(t, "", cell(SheetAnalysis, "B2"))
	assert.Equal(t, "50", cell(SheetAnalysis, "B3"))
}

func TestWriteXLSXPartialResult(t *testing.T) {
	data, err := WriteXLSX(&models.Result{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestWriteXLSXTooManyPeriods(t *testing.T) {
	periods := make([]string, excelize.MaxColumns)
	for i := range periods {
		periods[i] = fmt.Sprintf("P%d", i)
	}

	_, err := WriteXLSX(&models.Result{Table: &models.FinancialTable{LabelHeader: "Item", Periods: periods}})
	require.Error(t, err)
	assert.ErrorIs(t, err, excelize.ErrColumnNumber)
	assert.Contains(t, err.Error(), SheetStatement)
}
