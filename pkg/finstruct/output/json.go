// Package output serializes pipeline results.
package output

import (
	"encoding/json"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
)

// ToJSON serializes a Result. Undefined analysis values encode as null.
func ToJSON(r *models.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

// TableToJSON serializes only the normalized statement.
func TableToJSON(t *models.FinancialTable, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(t, "", "  ")
	}
	return json.Marshal(t)
}
