// Package normalize turns a located raw grid into a FinancialTable.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var yearRun = regexp.MustCompile(`\d{4}`)

// Period converts a raw period token into a canonical label:
// "Mon-YYYY" when a month is known, "FY-YYYY" when only a year is known,
// or the token itself when neither can be read. A YYYYMM or YYYYMMDD token
// with year 0000 is returned as is. It never fails.
func Period(token string) string {
	s := strings.TrimSpace(token)

	switch {
	case len(s) == 4 && allDigits(s):
		return "FY-" + s
	case (len(s) == 6 || len(s) == 8) && allDigits(s):
		// YYYYMM or YYYYMMDD; the day is ignored
		if s[:4] == "0000" {
			// there is no calendar year zero
			return s
		}
		if label, ok := monthLabel(s[:4], s[4:6]); ok {
			return label
		}
	}

	if run := yearRun.FindString(s); run != "" {
		return "FY-" + run
	}
	return s
}

func monthLabel(year, month string) (string, bool) {
	if _, err := strconv.Atoi(year); err != nil {
		return "", false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", false
	}
	return time.Month(m).String()[:3] + "-" + year, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
