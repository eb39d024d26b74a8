package parser

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
)

// whitespace marks run-of-whitespace splitting instead of a single delimiter.
const whitespace = "whitespace"

// csvDelimiters are tried in order for .csv files.
var csvDelimiters = []rune{',', ';', '|'}

// genericDelimiters are scored in order for .gp files; ties keep the earlier.
var genericDelimiters = []rune{'\t', ',', ';', '|'}

// sniffLines is how many non-empty lines are scored for .gp files.
const sniffLines = 5

// readCSV accepts the first delimiter whose leading record has more than one
// field and that no later record outgrows.
func readCSV(raw []byte) (*Decoded, error) {
	text, encoding, err := decodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode text: %w", err)
	}

	for _, delim := range csvDelimiters {
		records, err := readRecords(text, delim)
		if err != nil || !fixedWidth(records) {
			continue
		}
		return &Decoded{Grid: gridFromStrings(records), Engine: "csv", Delimiter: string(delim), Encoding: encoding}, nil
	}
	return nil, ErrNoDelimiter
}

// fixedWidth reports whether the first record has at least two fields and
// every later record fits within them. Shorter records are padded on read.
func fixedWidth(records [][]string) bool {
	if len(records) == 0 || len(records[0]) < 2 {
		return false
	}
	width := len(records[0])
	for _, rec := range records[1:] {
		if len(rec) > width {
			return false
		}
	}
	return true
}

// readGeneric picks the delimiter producing the most columns over the first
// non-empty lines, then parses the whole content with it.
func readGeneric(raw []byte) (*Decoded, error) {
	text, encoding, err := decodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode text: %w", err)
	}

	delim := sniffDelimiter(firstLines(text, sniffLines))
	grid, err := splitDelimited(text, delim)
	if err != nil {
		return nil, fmt.Errorf("failed to parse delimited text: %w", err)
	}
	return &Decoded{Grid: grid, Engine: "delimited", Delimiter: string(delim), Encoding: encoding}, nil
}

// readText uses tab when forced, otherwise sniffs the first line for tab,
// comma, then semicolon, falling back to runs of whitespace.
func readText(raw []byte, forceTab bool) (*Decoded, error) {
	text, encoding, err := decodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode text: %w", err)
	}

	delim := whitespace
	if forceTab {
		delim = "\t"
	} else {
		first, _, _ := strings.Cut(text, "\n")
		for _, d := range []string{"\t", ",", ";"} {
			if strings.Contains(first, d) {
				delim = d
				break
			}
		}
	}

	decoded := &Decoded{Engine: "text", Delimiter: delim, Encoding: encoding}
	if delim == whitespace {
		decoded.Grid = splitWhitespace(text)
		return decoded, nil
	}
	grid, err := splitDelimited(text, []rune(delim)[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse delimited text: %w", err)
	}
	decoded.Grid = grid
	return decoded, nil
}

// sniffDelimiter returns the delimiter with the highest column count on any
// line. Only a strictly greater count replaces the current best.
func sniffDelimiter(lines []string) rune {
	best := genericDelimiters[0]
	maxColumns := 0
	for _, delim := range genericDelimiters {
		for _, line := range lines {
			if columns := strings.Count(line, string(delim)) + 1; columns > maxColumns {
				maxColumns = columns
				best = delim
			}
		}
	}
	return best
}

// firstLines returns up to n lines that are not blank.
func firstLines(text string, n int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
		if len(lines) == n {
			break
		}
	}
	return lines
}

// splitDelimited parses quoted delimited text into a grid.
func splitDelimited(text string, delim rune) (models.Grid, error) {
	records, err := readRecords(text, delim)
	if err != nil {
		return nil, err
	}
	return gridFromStrings(records), nil
}

// readRecords reads every record of text. Records may have differing field
// counts; blank lines are skipped.
func readRecords(text string, delim rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

// splitWhitespace splits every non-blank line on runs of whitespace.
func splitWhitespace(text string) models.Grid {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	return gridFromStrings(rows)
}
