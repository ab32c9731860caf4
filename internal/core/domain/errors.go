package domain

import (
	"errors"
	"strings"
)

var (
	ErrProfileNotFound       = errors.New("profile not found")
	ErrProjectNotFound       = errors.New("project not found")
	ErrMessageNotFound       = errors.New("message not found")
	ErrVisualizationNotFound = errors.New("visualization not found")
	ErrResumeNotFound        = errors.New("resume not found")

	ErrValidation         = errors.New("validation failed")
	ErrRateLimited        = errors.New("too many requests")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrStorageUnavailable = errors.New("file storage not configured")
)

// FieldError names a rejected field and why it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every field that failed validation.
// errors.Is(err, ErrValidation) holds for any *ValidationError.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+" "+f.Reason)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
