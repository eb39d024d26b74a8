// Package parser decodes uploaded statement files into raw grids.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
)

// Format is a declared file extension.
type Format string

const (
	// FormatXLS is a binary (BIFF) spreadsheet.
	FormatXLS Format = ".xls"
	// FormatXLSX is an OOXML spreadsheet.
	FormatXLSX Format = ".xlsx"
	// FormatCSV is comma, semicolon or pipe separated text.
	FormatCSV Format = ".csv"
	// FormatGP is generic delimited text with an unknown delimiter.
	FormatGP Format = ".gp"
	// FormatTXT is plain text with a sniffed delimiter.
	FormatTXT Format = ".txt"
	// FormatTSV is tab separated text.
	FormatTSV Format = ".tsv"
)

// Formats lists every recognized format.
var Formats = []Format{FormatXLS, FormatXLSX, FormatCSV, FormatGP, FormatTXT, FormatTSV}

// ErrUnsupportedFormat indicates the declared extension is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoSpreadsheetEngine indicates every spreadsheet backend failed.
var ErrNoSpreadsheetEngine = errors.New("no engine could read the spreadsheet")

// ErrNoDelimiter indicates no delimiter produced more than one column.
var ErrNoDelimiter = errors.New("no delimiter produced more than one column")

// ParseFormat normalizes a declared extension such as "CSV", "csv" or
// "report.csv" into a Format.
func ParseFormat(ext string) (Format, error) {
	e := strings.ToLower(strings.TrimSpace(ext))
	if i := strings.LastIndex(e, "."); i > 0 {
		e = e[i:]
	}
	if e != "" && !strings.HasPrefix(e, ".") {
		e = "." + e
	}
	for _, f := range Formats {
		if Format(e) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// IsSpreadsheet reports whether the format is read by spreadsheet backends.
func (f Format) IsSpreadsheet() bool {
	return f == FormatXLS || f == FormatXLSX
}

// Decoded is a decoded grid and how it was obtained.
type Decoded struct {
	// Grid is the raw cell grid.
	Grid models.Grid
	// Engine names the backend that produced the grid.
	Engine string
	// Delimiter is the field separator used for text formats ("whitespace"
	// for run-of-whitespace splitting).
	Delimiter string
	// Encoding is the character encoding used for text formats.
	Encoding string
	// Range is the detected table range for spreadsheet formats.
	Range string
}

// Decode reads raw bytes according to the declared format. Every attempt
// reads from the start of raw.
func Decode(raw []byte, format Format) (*Decoded, error) {
	switch format {
	case FormatXLSX:
		return readSpreadsheet(raw, xlsxBackends)
	case FormatXLS:
		return readSpreadsheet(raw, xlsBackends)
	case FormatCSV:
		return readCSV(raw)
	case FormatGP:
		return readGeneric(raw)
	case FormatTXT, FormatTSV:
		return readText(raw, format == FormatTSV)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
