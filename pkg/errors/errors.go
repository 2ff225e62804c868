// Package errors provides structured error reporting for anchorsheet.
//
// The sheet core never returns errors from its transition functions. Bad
// measurements are reported to the global [ErrorHandler] and then ignored,
// so a misbehaving layout host produces a log line instead of a broken sheet.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMeasurement indicates a rejected layout measurement (NaN, Inf, negative height).
	KindMeasurement
	// KindUninitialized indicates an operation that needed a measurement not yet received.
	KindUninitialized
	// KindConfig indicates invalid sheet or CLI configuration.
	KindConfig
	// KindParsing indicates a replay script or config parsing failure.
	KindParsing
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMeasurement:
		return "measurement"
	case KindUninitialized:
		return "uninitialized"
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SheetError represents a structured error raised by a sheet or its collectors.
type SheetError struct {
	// Op is the operation that failed (e.g., "sheet.SetHeaderHeight").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Key is the anchor key of the sheet involved, if any.
	Key string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SheetError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "tui.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to decode a config or script field.
type ParseError struct {
	// Source is the file or stream being parsed.
	Source string
	// Field is the offending field path (e.g., "events[3].drag").
	Field string
	// Got is the value that could not be used.
	Got any
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("failed to parse %s: got %v", e.Source, e.Got)
	}
	return fmt.Sprintf("failed to parse %s in %s: got %v", e.Field, e.Source, e.Got)
}

// MeasurementError describes a measurement value rejected by the sheet.
type MeasurementError struct {
	// Name is the measured quantity (e.g., "header height").
	Name string
	// Value is the rejected value.
	Value float64
}

func (e *MeasurementError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Name, e.Value)
}

// ErrorHandler receives errors reported by anchorsheet.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SheetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
