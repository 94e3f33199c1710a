package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID = errors.New("failed to parse UUID")
)

// ValidationIssue points a client at the offending input field.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidationError is a business-rule rejection. It is an expected condition
// translated to a 400 response, never logged as a failure.
type ValidationError struct {
	Message string
	Issues  []ValidationIssue
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, issues ...ValidationIssue) *ValidationError {
	return &ValidationError{Message: message, Issues: issues}
}

// NewBodyParseError marks a request body decoding failure as a client error.
func NewBodyParseError(err error) *ValidationError {
	return NewValidationError(MessageFailedBodyRequest, ValidationIssue{Field: "body", Message: err.Error()})
}
