package parser

import (
	"testing"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Cell
	}{
		{"123", models.Number(123)},
		{"123.45", models.Number(123.45)},
		{"-100", models.Number(-100)},
		{" 500 ", models.Number(500)},
		{"201103", models.Number(201103)},
		{"hello", models.Text("hello")},
		{"1,234", models.Text("1,234")},
		{"", models.Empty()},
		{"NaN", models.Empty()},
		{"N/A", models.Empty()},
		{"#N/A", models.Empty()},
		{"inf", models.Text("inf")},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell     models.Cell
		expected string
	}{
		{models.Number(201103), "201103"},
		{models.Number(2011), "2011"},
		{models.Number(12.5), "12.5"},
		{models.Number(-3), "-3"},
		{models.Text("Year"), "Year"},
		{models.Empty(), ""},
	}

	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.expected {
			t.Errorf("%+v.String() = %q, expected %q", tt.cell, got, tt.expected)
		}
	}
}

func TestLocateTable(t *testing.T) {
	rows := [][]string{
		{},
		{"", "Year", "201103"},
		{"", "Sales", "100"},
	}
	tableRange, ok := LocateTable(rows, DefaultTableShape())
	if !ok {
		t.Fatal("LocateTable found no table")
	}
	if tableRange != "B2:C3" {
		t.Errorf("LocateTable range = %q, expected %q", tableRange, "B2:C3")
	}

	tests := []struct {
		name string
		rows [][]string
	}{
		{"empty sheet", nil},
		{"blank cells only", [][]string{{"", " "}, {}}},
		{"single cell", [][]string{{"only"}, {"", " "}}},
		{"single row", [][]string{{"Year", "201103", "201203"}}},
		{"single column", [][]string{{"Balance Sheet"}, {"Share Capital"}, {"Reserves"}}},
		{"too sparse", sparseRows()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r, ok := LocateTable(tt.rows, DefaultTableShape()); ok {
				t.Errorf("LocateTable(%q) = %q, expected no table", tt.name, r)
			}
		})
	}
}

// sparseRows holds two filled cells at opposite corners of a 30x30 box.
func sparseRows() [][]string {
	rows := make([][]string, 30)
	rows[0] = []string{"Year"}
	last := make([]string, 30)
	last[29] = "1"
	rows[29] = last
	return rows
}

func TestLocateTableShape(t *testing.T) {
	rows := [][]string{
		{"Year", "201103"},
		{"Sales", "100"},
		{"Costs", "80"},
	}
	shape := DefaultTableShape()
	shape.MinRows = 4
	if _, ok := LocateTable(rows, shape); ok {
		t.Error("LocateTable accepted three rows with MinRows 4")
	}
	shape.MinRows = 3
	if r, ok := LocateTable(rows, shape); !ok || r != "A1:B3" {
		t.Errorf("LocateTable = %q, %v, expected %q", r, ok, "A1:B3")
	}
}
