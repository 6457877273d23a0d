package exdash

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the configured sheet is missing from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoHeader indicates the table region has no usable header row.
var ErrNoHeader = errors.New("no header row")

// LoadError represents an error while loading one sheet.
type LoadError struct {
	SheetName string
	Component string // "area", "cells", "columns"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, component string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
