// Package prompt assembles the portfolio content into the single system
// instruction text sent to the language model.
package prompt

import (
	"fmt"
	"strings"
)

// BuildError indicates the system prompt could not be assembled because one
// or more content sources failed.
type BuildError struct {
	Sources []string
	Cause   error
}

func (e *BuildError) Error() string {
	if len(e.Sources) > 0 {
		return fmt.Sprintf("failed to build system prompt (sources: %s): %v",
			strings.Join(e.Sources, ", "), e.Cause)
	}
	return fmt.Sprintf("failed to build system prompt: %v", e.Cause)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
