package source

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFile is returned when a CSV file has no header row.
	ErrEmptyFile = errors.New("CSV file is empty or missing header")

	// ErrUnknownEncoding is returned for an unsupported --*-encoding value.
	ErrUnknownEncoding = errors.New("unknown encoding: use utf-8 or latin1")
)

// MissingColumnError reports a required column absent from a CSV header.
type MissingColumnError struct {
	// File is the path or name of the CSV input.
	File string

	// Column is the missing column name.
	Column string

	// Header is the header row that was found.
	Header []string
}

// Error implements error.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q (found %v)", e.File, e.Column, e.Header)
}

// ErrMissingColumn matches every MissingColumnError with errors.Is.
var ErrMissingColumn = errors.New("missing required column")

// Is reports whether target is ErrMissingColumn.
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}
