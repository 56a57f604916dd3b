// Package errors provides structured error reporting for the carousel
// widget. Construction-time failures are reported through a global
// handler so the host page operator sees a diagnostic even when the
// caller discards the returned error.
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
	// KindConfig indicates an invalid configuration value.
	KindConfig
	// KindLookup indicates a selector that resolved to nothing.
	KindLookup
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLookup:
		return "lookup"
	default:
		return "unknown"
	}
}

// CarouselError represents a structured error in the carousel widget.
type CarouselError struct {
	// Op is the operation that failed (e.g., "carousel.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CarouselError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CarouselError) Unwrap() error {
	return e.Err
}
