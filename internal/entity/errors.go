package entity

import "errors"

// Domain errors
var (
	// Lookup errors
	ErrExamNotFound   = errors.New("exam not found")
	ErrCourseNotFound = errors.New("course not found")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrTooManyMessages  = errors.New("too many messages in conversation")

	// Pipeline errors
	ErrDocumentUnavailable = errors.New("document unavailable")
	ErrModelInvocation     = errors.New("model invocation failed")
	ErrUpstream            = errors.New("upstream store failure")
)
