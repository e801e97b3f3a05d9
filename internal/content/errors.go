package content

import "fmt"

// NotFoundError indicates a named content source could not be located.
type NotFoundError struct {
	Source string
	Cause  error
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content source %q not found: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("content source %q not found", e.Source)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// MalformedError indicates a content source was located but could not be parsed.
type MalformedError struct {
	Source string
	Cause  error
}

func (e *MalformedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content source %q is malformed: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("content source %q is malformed", e.Source)
}

func (e *MalformedError) Unwrap() error {
	return e.Cause
}
