package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxColspan bounds colspan expansion of malformed markup.
const maxColspan = 64

var errNoHTMLTable = errors.New("no html table found")

// readHTMLTable reads the first <table> with rows. Many "xls" downloads from
// financial portals are HTML tables saved with a spreadsheet extension.
func readHTMLTable(raw []byte) ([][]string, error) {
	text, _, err := decodeText(raw)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	var rows [][]string
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		trs := table.Find("tr")
		if trs.Length() == 0 {
			return true
		}
		trs.Each(func(_ int, tr *goquery.Selection) {
			var row []string
			tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
				row = append(row, strings.TrimSpace(cell.Text()))
				// Expand colspan so values stay under their period header
				if span, err := strconv.Atoi(cell.AttrOr("colspan", "1")); err == nil && span > 1 {
					for k := 1; k < span && k < maxColspan; k++ {
						row = append(row, "")
					}
				}
			})
			rows = append(rows, row)
		})
		return false
	})

	if len(rows) == 0 {
		return nil, errNoHTMLTable
	}
	return rows, nil
}
