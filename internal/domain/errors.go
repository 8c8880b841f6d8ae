package domain

import "fmt"

// ErrorCode identifies a class of failure in the quiz pipeline.
type ErrorCode string

const (
	CodeInvalidInput         ErrorCode = "INVALID_INPUT"
	CodeFetchFailed          ErrorCode = "FETCH_FAILED"
	CodeExtractionFailed     ErrorCode = "EXTRACTION_FAILED"
	CodeLLMRequestFailed     ErrorCode = "LLM_REQUEST_FAILED"
	CodeMalformedModelOutput ErrorCode = "MALFORMED_MODEL_OUTPUT"
	CodeSchemaViolation      ErrorCode = "SCHEMA_VIOLATION"
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeStorageFailure       ErrorCode = "STORAGE_FAILURE"
	CodeInternal             ErrorCode = "INTERNAL_ERROR"
)

// DomainError is the typed error every component returns to its caller.
// The middleware maps Code to an HTTP status; Cause is kept for logs only.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewError creates a DomainError with an explicit code.
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewFetchFailedError(err error) *DomainError {
	return NewError(CodeFetchFailed, "failed to fetch article page", err)
}

func NewExtractionFailedError(message string) *DomainError {
	return NewError(CodeExtractionFailed, message, nil)
}

func NewLLMRequestError(err error) *DomainError {
	return NewError(CodeLLMRequestFailed, "model completion request failed", err)
}

// NewMalformedModelOutputError carries a prefix of the offending completion
// text so the failure is diagnosable without re-running the model.
func NewMalformedModelOutputError(err error, textPrefix string) *DomainError {
	return NewError(CodeMalformedModelOutput,
		fmt.Sprintf("model output is not valid JSON (prefix: %q)", textPrefix), err)
}

func NewSchemaViolationError(detail string) *DomainError {
	return NewError(CodeSchemaViolation, "model output violates quiz schema: "+detail, nil)
}

func NewQuizNotFoundError(id int64) *DomainError {
	return NewError(CodeNotFound, fmt.Sprintf("quiz not found with ID: %d", id), nil)
}

func NewStorageFailureError(op string, err error) *DomainError {
	return NewError(CodeStorageFailure, "storage operation failed: "+op, err)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}
