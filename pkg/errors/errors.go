// Package errors holds the error types shared by the gateway, services and handlers.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoSession the caller has no authenticated session or the session carries no bearer token.
// Requests fail with it before anything is sent.
var ErrNoSession = errors.New("no authenticated session")

// UpstreamError a non-2xx response from the REST backend.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream responded %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Message)
}

// NotFound reports whether the backend said the record does not exist.
func (e *UpstreamError) NotFound() bool { return e.Status == http.StatusNotFound }

// Unauthorized reports whether the backend rejected the bearer token.
func (e *UpstreamError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// ValidationError a client-side check failed. Only the first failing field is reported.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Required shorthand for a missing required field.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// FileError an uploaded file was rejected before being attached to a request.
type FileError struct {
	Reason string
}

func (e *FileError) Error() string { return "file rejected: " + e.Reason }

// AsUpstream unwraps err into an *UpstreamError.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// AsValidation unwraps err into a *ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsFile unwraps err into a *FileError.
func AsFile(err error) (*FileError, bool) {
	var fe *FileError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
