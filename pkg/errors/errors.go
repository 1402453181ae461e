package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCategory classifies errors that can occur while building or
// using a compression backend. This helps with error handling,
// monitoring, and debugging.
type ErrorCategory int

const (
	// ErrorConfig indicates an invalid compression configuration,
	// such as an unsupported algorithm reaching the backend factory.
	ErrorConfig ErrorCategory = iota + 1

	// ErrorCompress indicates a failure while compressing chunk data,
	// such as a backend refusing its parameters mid-stream.
	ErrorCompress

	// ErrorDecompress indicates a failure while decompressing chunk
	// data, typically corrupt or truncated compressed input.
	ErrorDecompress
)

// String returns the string representation of the error category.
// This is useful for logging, metrics, and error reporting.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorConfig:
		return "config"
	case ErrorCompress:
		return "compress"
	case ErrorDecompress:
		return "decompress"
	default:
		return "unknown"
	}
}

// CodecError wraps a failure from a compression backend with the
// operation that failed and when it happened.
type CodecError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewCodecError creates a CodecError stamped with the current time.
func NewCodecError(operation string, category ErrorCategory, err error) *CodecError {
	return &CodecError{
		Err:       err,
		Operation: operation,
		Category:  category,
		Timestamp: time.Now(),
	}
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As chains.
func (e *CodecError) Unwrap() error {
	return e.Err
}

// IsCodecError checks if a given error is of type CodecError.
func IsCodecError(err error) bool {
	var ce *CodecError
	return errors.As(err, &ce)
}

// AsCodecError attempts to extract a CodecError from a given error.
func AsCodecError(err error) *CodecError {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// IsRetryAble returns whether errors of this category can be retried.
// Compression failures are deterministic given their input, so none of
// them are; this exists so callers can treat codec errors uniformly
// with transient errors from surrounding storage layers.
func (e *CodecError) IsRetryAble() bool {
	switch e.Category {
	case ErrorConfig:
		// The configuration will not become valid by retrying.
		return false
	case ErrorCompress, ErrorDecompress:
		// Same input, same result.
		return false
	default:
		return false
	}
}
