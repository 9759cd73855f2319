package main

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrMissingSeparator is returned for a line without a ';'.
	ErrMissingSeparator = ewrap.New("missing separator")

	// ErrEmptyValue is returned for a line whose value is empty or the "-"
	// placeholder, i.e. a line that carries no observation.
	ErrEmptyValue = ewrap.New("empty value")

	// ErrInvalidNumber is returned when the value is not a decimal number.
	ErrInvalidNumber = ewrap.New("invalid number")

	// ErrInvalidWorkers is returned when a negative worker count is configured.
	ErrInvalidWorkers = ewrap.New("workers cannot be negative")

	// ErrInvalidChunkSize is returned when a negative chunk size is configured.
	ErrInvalidChunkSize = ewrap.New("chunk size cannot be negative")
)

// FileAccessError reports a failure to open or read the input file. It is
// always fatal.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
