package auditsplit

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrColumnNotFound indicates a required column header is missing.
var ErrColumnNotFound = errors.New("required column not found")

// ErrNoTables indicates no selected sheet holds an audit table.
var ErrNoTables = errors.New("no audit table found")

// FileError represents a missing or unreadable input, or an unusable output directory.
type FileError struct {
	Path string
	Op   string // "stat", "open", "read", "mkdir"
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file error (%s %s): %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(op, path string, err error) *FileError {
	return &FileError{Path: path, Op: op, Err: err}
}

// SchemaError represents a sheet missing a required column.
type SchemaError struct {
	SheetName string // empty when no sheet qualified
	Column    string
	Err       error
}

func (e *SchemaError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("schema error (column %q): %v", e.Column, e.Err)
	}
	return fmt.Sprintf("schema error in sheet %q (column %q): %v", e.SheetName, e.Column, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(sheetName, column string, err error) *SchemaError {
	return &SchemaError{SheetName: sheetName, Column: column, Err: err}
}

// WriteError represents an I/O failure while writing a leader workbook.
type WriteError struct {
	Leader string
	Path   string // output directory
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error for leader %q (%s): %v", e.Leader, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError.
func NewWriteError(leader, path string, err error) *WriteError {
	return &WriteError{Leader: leader, Path: path, Err: err}
}
