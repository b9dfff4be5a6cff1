// Package aigateway sends prompts to a generative-language completion
// service and returns the model's raw text.
package aigateway

import (
	"context"
	"fmt"
)

// Gateway completes a single prompt under a fixed model.
type Gateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Error is returned for any transport or service failure of the
// completion service.
type Error struct {
	Provider string
	Model    string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s) completion failed: %v", e.Provider, e.Model, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
