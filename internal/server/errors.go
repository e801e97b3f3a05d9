package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates a client-correctable request problem.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// ErrConfiguration indicates the deployment is misconfigured. Details are
// logged, not sent to the client.
type ErrConfiguration struct {
	Message string
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// ErrUpstream indicates the language-model call or prompt assembly failed.
type ErrUpstream struct {
	Message string
	Cause   error
}

func (e *ErrUpstream) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream error: %s", e.Message)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrConfiguration:
		return http.StatusInternalServerError
	case *ErrUpstream:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps a typed error to its HTTP status and JSON payload.
// Validation problems carry the client-facing message directly; configuration
// and upstream failures report a stable headline with the specifics in a
// details field.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	switch e := err.(type) {
	case *ErrValidation:
		s.errorResponse(w, status, e.Message)
	case *ErrConfiguration:
		s.errorResponseWithDetails(w, status, "Configuration error", e.Message)
	case *ErrUpstream:
		details := ""
		if e.Cause != nil {
			details = e.Cause.Error()
		}
		s.errorResponseWithDetails(w, status, e.Message, details)
	default:
		s.errorResponse(w, status, "Internal server error")
	}
}
