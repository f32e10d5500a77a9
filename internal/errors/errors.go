// Package errors provides stable error codes for darkscreen.
//
// Codes follow the format {domain}.{error} where domain names the subsystem
// (brightness, permission, storage, config) and error names the failure.
// Application code branches on codes, never on message text.
package errors

import (
	"errors"
	"fmt"
)

// Error codes by domain.
const (
	// Brightness domain - device-wide and window brightness writes
	CodeBrightnessSettingNotFound  = "brightness.setting_not_found" // Level or mode setting does not exist
	CodeBrightnessPermissionDenied = "brightness.permission_denied" // Write capability missing or revoked
	CodeBrightnessWriteFailed      = "brightness.write_failed"      // Any other write failure

	// Permission domain - elevated brightness permission requests
	CodePermissionExternalResultAmbiguous = "permission.external_result_ambiguous" // Settings returned without a clear answer
	CodePermissionInvalidTransition       = "permission.invalid_transition"        // Operation not allowed in current state

	// Storage domain - preference persistence
	CodeStorageOpenFailed  = "storage.open_failed"  // Database open failed
	CodeStorageQueryFailed = "storage.query_failed" // Query failed
	CodeStorageSaveFailed  = "storage.save_failed"  // Write failed

	// Config domain
	CodeConfigInvalid = "config.invalid" // Configuration failed validation

	// General domain
	CodeUnknown = "error.unknown"
)

// CodedError wraps an error with a stable error code.
type CodedError struct {
	Code    string // Stable error code (e.g., "brightness.permission_denied")
	Message string // Human-readable error message
	Cause   error  // Underlying error (may be nil)
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CodedError) Unwrap() error {
	return e.Cause
}

// New creates a new CodedError with the given code and message.
func New(code, message string) *CodedError {
	return &CodedError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new CodedError wrapping an existing error.
func Wrap(code, message string, cause error) *CodedError {
	return &CodedError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// GetCode extracts the error code from an error.
// Falls back to CodeUnknown for errors that carry no code.
func GetCode(err error) string {
	if err == nil {
		return ""
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

// GetMessage returns the human-readable part of err.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Message
	}
	return err.Error()
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code string) bool {
	return GetCode(err) == code
}

// IsBrightnessError reports whether err belongs to the brightness domain.
func IsBrightnessError(err error) bool {
	switch GetCode(err) {
	case CodeBrightnessSettingNotFound, CodeBrightnessPermissionDenied, CodeBrightnessWriteFailed:
		return true
	default:
		return false
	}
}
