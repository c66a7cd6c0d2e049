package excelparse

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkbook indicates the input bytes are not a readable xlsx
// workbook.
var ErrInvalidWorkbook = errors.New("invalid xlsx workbook")

// ExtractionError represents an error during extraction of one sheet
// component.
type ExtractionError struct {
	SheetName string
	Component string // "merged_cells", "grid", "conditional_formats", "charts"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
