package importer

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports every required column the file failed to
// provide, not just the first, so one fix cycle is enough.
type MissingColumnsError struct {
	Fields []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Fields, ", "))
}

// RowValidationError is a single cell that failed type coercion. Row is the
// spreadsheet row number (header row is 1, first data row is 2).
type RowValidationError struct {
	Row    int
	Field  string
	Value  string
	Reason string
}

func (e *RowValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: invalid %s %q: %s", e.Row, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// DuplicateGuideError is a guide id collision under the reject policy.
type DuplicateGuideError struct {
	GuideID string
	Row     int
}

func (e *DuplicateGuideError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: guide %q already exists", e.Row, e.GuideID)
	}
	return fmt.Sprintf("guide %q already exists", e.GuideID)
}

// UnsupportedFormatError is an upload that is not a readable .xlsx file.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s (only .xlsx is accepted)", e.Filename)
}
