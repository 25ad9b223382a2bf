package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeAuthNotLoggedIn    ErrorCode = "AUTH-001"
	ErrCodeAuthLoginFailed    ErrorCode = "AUTH-002"
	ErrCodeAuthRoleDenied     ErrorCode = "AUTH-003"
	ErrCodeAuthRegisterFailed ErrorCode = "AUTH-004"

	// API errors (API-001 to API-099)
	ErrCodeAPIUnreachable ErrorCode = "API-001"
	ErrCodeAPIRequest     ErrorCode = "API-002"
	ErrCodeAPIResponse    ErrorCode = "API-003"

	// Upload errors (UPLOAD-001 to UPLOAD-099)
	ErrCodeUploadNotCSV   ErrorCode = "UPLOAD-001"
	ErrCodeUploadReadFile ErrorCode = "UPLOAD-002"
	ErrCodeUploadRejected ErrorCode = "UPLOAD-003"

	// Session storage errors (SESSION-001 to SESSION-099)
	ErrCodeSessionWrite ErrorCode = "SESSION-001"
	ErrCodeSessionDir   ErrorCode = "SESSION-002"

	// Config errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeConfigRead    ErrorCode = "CONFIG-002"
)

// RIQError represents an enhanced error with code, suggestions, and documentation
type RIQError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *RIQError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *RIQError) Unwrap() error {
	return e.Cause
}

// New creates a new RIQError
func New(code ErrorCode, message string) *RIQError {
	return &RIQError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new RIQError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *RIQError {
	return &RIQError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *RIQError) WithSuggestion(suggestion string) *RIQError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *RIQError) WithSuggestions(suggestions ...string) *RIQError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *RIQError) WithDocs(url string) *RIQError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates an error for commands that require a session
func NewNotLoggedInError() *RIQError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'riq auth login' to authenticate").
		WithSuggestion("Check REFINERYIQ_API_URL if the backend runs on a non-default address")
}

// NewRoleDeniedError creates an error for role-guarded commands
func NewRoleDeniedError(required string) *RIQError {
	return New(ErrCodeAuthRoleDenied, fmt.Sprintf("this command requires the %s role", required)).
		WithSuggestion("Log in with an account that has the required role").
		WithSuggestion("Run 'riq auth status' to see your current role")
}

// NewUploadNotCSVError creates an error for non-CSV upload attempts
func NewUploadNotCSVError(filename string) *RIQError {
	return New(ErrCodeUploadNotCSV, fmt.Sprintf("only CSV files are supported: %s", filename)).
		WithSuggestion("Export the dataset as a .csv file and retry")
}

// NewConfigInvalidError creates a config parse error
func NewConfigInvalidError(path string, cause error) *RIQError {
	return Wrap(ErrCodeConfigInvalid, fmt.Sprintf("invalid config file: %s", path), cause).
		WithSuggestion("Check the YAML syntax of the config file").
		WithSuggestion("Delete the file to fall back to defaults")
}
