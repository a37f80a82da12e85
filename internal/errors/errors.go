package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new AppError with a formatted message
func Newf(code, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context, preserving its code
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode wraps an error under an explicit code
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// IsCode reports whether any error in the chain carries the given code
func IsCode(err error, code string) bool {
	return GetCode(err) == code
}

// Pipeline stage error codes. Each stage of the preprocessing pipeline
// fails with exactly one of these; no stage recovers from another's
// failure.
const (
	CodeDataLoad      = "DATA_LOAD_ERROR"
	CodeSchema        = "SCHEMA_ERROR"
	CodeEncoding      = "ENCODING_ERROR"
	CodeScaling       = "SCALING_ERROR"
	CodeBalancing     = "BALANCING_ERROR"
	CodePersist       = "PERSIST_ERROR"
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeDatabaseError = "DATABASE_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

// DataLoadError marks an unreadable or malformed source file
func DataLoadError(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeDataLoad,
		Message: fmt.Sprintf("failed to load dataset from %s", path),
		Cause:   cause,
	}
}

// SchemaError marks an expected column missing from the working frame
func SchemaError(stage string, cause error) *AppError {
	return &AppError{
		Code:    CodeSchema,
		Message: fmt.Sprintf("%s: unexpected schema", stage),
		Cause:   cause,
	}
}

// EncodingError marks an unexpected categorical value
func EncodingError(column, value string) *AppError {
	return Newf(CodeEncoding, "unexpected value %q in column %q", value, column)
}

// ScalingError marks a missing or non-numeric scale target
func ScalingError(column string, cause error) *AppError {
	return &AppError{
		Code:    CodeScaling,
		Message: fmt.Sprintf("cannot scale column %q", column),
		Cause:   cause,
	}
}

// BalancingError marks a degenerate label distribution
func BalancingError(message string) *AppError {
	return New(CodeBalancing, message)
}

// PersistError marks an unwritable output path
func PersistError(path string, cause error) *AppError {
	return &AppError{
		Code:    CodePersist,
		Message: fmt.Sprintf("failed to write artifact %s", path),
		Cause:   cause,
	}
}

// ConfigInvalid marks a missing or malformed configuration value
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// DatabaseError marks a run ledger failure
func DatabaseError(message string, cause error) *AppError {
	return &AppError{Code: CodeDatabaseError, Message: message, Cause: cause}
}
