package question

import "fmt"

// ValidationError reports a missing or malformed input field. It is
// returned before any call to the completion service.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ParseError reports model output that could not be decoded into the
// expected shape. Raw holds the text after fence stripping.
type ParseError struct {
	Target string
	Raw    string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from model output: %v", e.Target, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
