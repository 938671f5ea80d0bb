package shopstat

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// AnalysisError represents an error while analyzing a sheet.
type AnalysisError struct {
	SheetName string
	Stage     string // "open", "rows", "profile"
	Err       error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(sheetName, stage string, err error) *AnalysisError {
	return &AnalysisError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
