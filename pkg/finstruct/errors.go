package finstruct

import (
	"errors"
	"fmt"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/normalize"
	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/parser"
)

// Kind classifies a terminal pipeline failure.
type Kind string

const (
	// KindDecode means no engine or delimiter produced a usable grid.
	KindDecode Kind = "decode"
	// KindUnsupportedFormat means the declared extension is not recognized.
	KindUnsupportedFormat Kind = "unsupported_format"
	// KindEmptyResult means the grid held no usable statement.
	KindEmptyResult Kind = "empty_result"
)

// Re-exported causes, for errors.Is tests against a LoadError.
var (
	ErrUnsupportedFormat   = parser.ErrUnsupportedFormat
	ErrNoSpreadsheetEngine = parser.ErrNoSpreadsheetEngine
	ErrNoDelimiter         = parser.ErrNoDelimiter
	ErrEmptyGrid           = normalize.ErrEmptyGrid
	ErrNoPeriodColumns     = normalize.ErrNoPeriodColumns
	ErrNoRows              = normalize.ErrNoRows
)

// ErrUnknownStatement indicates the vocabulary has no entry for the
// requested statement type.
var ErrUnknownStatement = errors.New("unknown statement type")

// LoadError represents a terminal failure of one pipeline run.
type LoadError struct {
	Kind  Kind
	Stage string // "format", "decode", "normalize"
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load failed (%s) in %s: %v", e.Kind, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(kind Kind, stage string, err error) *LoadError {
	return &LoadError{
		Kind:  kind,
		Stage: stage,
		Err:   err,
	}
}

// KindOf returns the Kind of a LoadError in err's chain, or "" if there is
// none.
func KindOf(err error) Kind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}
