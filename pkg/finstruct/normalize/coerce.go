package normalize

import (
	"math"
	"strings"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
	"github.com/shopspring/decimal"
)

// currencyMarkers are stripped from the edges of numeric text, longest first.
var currencyMarkers = []string{"rs.", "inr", "rs", "₹", "$", "€", "£"}

var numericCleaner = strings.NewReplacer(
	",", "",
	" ", "",
	"\u00a0", "",
	"\u2212", "-",
)

// Value coerces a cell to a float64. Unparseable text, empty cells and
// non-finite numbers coerce to 0.
func Value(c models.Cell) float64 {
	switch c.Kind {
	case models.CellNumber:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return 0
		}
		return c.Num
	case models.CellText:
		if f, ok := parseNumeric(c.Str); ok {
			return f
		}
	}
	return 0
}

// parseNumeric reads export-style numerals such as "1,234.50", "(120)",
// "Rs. 45" or "12%".
func parseNumeric(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.TrimSuffix(s, "%")
	for _, m := range currencyMarkers {
		s = strings.TrimSpace(strings.TrimPrefix(s, m))
		s = strings.TrimSpace(strings.TrimSuffix(s, m))
	}
	s = numericCleaner.Replace(s)
	s = strings.TrimPrefix(s, "+")
	if !strings.ContainsAny(s, "0123456789") {
		return 0, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	f, _ := d.Float64()
	if negative {
		f = -f
	}
	return f, true
}
