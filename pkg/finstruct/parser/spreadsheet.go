package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// backend is one spreadsheet reading engine.
type backend struct {
	name string
	read func(raw []byte) ([][]string, error)
}

var (
	excelizeBackend = backend{"excelize", readExcelize}
	xlsBackend      = backend{"xls", readBIFF}
	htmlBackend     = backend{"html", readHTMLTable}
)

// Backend orders per spreadsheet format.
var (
	xlsxBackends = []backend{excelizeBackend, xlsBackend, htmlBackend}
	xlsBackends  = []backend{xlsBackend, excelizeBackend, htmlBackend}
)

var errNoTable = errors.New("no sheet holds a table")

// readSpreadsheet returns the grid of the first backend that yields a
// non-empty one.
func readSpreadsheet(raw []byte, backends []backend) (*Decoded, error) {
	var errs []error
	for _, b := range backends {
		rows, err := safeRead(b, raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
			continue
		}
		tableRange, ok := LocateTable(rows, DefaultTableShape())
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, errNoTable))
			continue
		}
		grid := gridFromStrings(rows)
		if grid.IsBlank() {
			errs = append(errs, fmt.Errorf("%s: %w", b.name, errNoTable))
			continue
		}
		return &Decoded{Grid: grid, Engine: b.name, Range: tableRange}, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrNoSpreadsheetEngine, errors.Join(errs...))
}

// safeRead runs a backend, turning a panic inside it into an error.
func safeRead(b backend, raw []byte) (rows [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return b.read(raw)
}

// readExcelize returns the raw values of the first sheet holding a table.
func readExcelize(raw []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
		if err != nil {
			continue
		}
		if _, ok := LocateTable(rows, DefaultTableShape()); ok {
			return rows, nil
		}
	}
	return nil, errNoTable
}

// readBIFF returns the first sheet holding a table from a binary workbook.
func readBIFF(raw []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(raw), "utf-8")
	if err != nil {
		return nil, err
	}

	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}

		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol())
			for c := row.FirstCol(); c < row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}

		if _, ok := LocateTable(rows, DefaultTableShape()); ok {
			return rows, nil
		}
	}
	return nil, errNoTable
}
