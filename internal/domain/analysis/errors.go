package analysis

import (
	"errors"
	"fmt"
)

// ErrTextRequired indicates a missing or empty required text input.
var ErrTextRequired = errors.New("Text is required")

// SchemaError indicates model output that does not match the expected
// schema. Field names the offending part.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", e.Field, e.Reason)
}

// ProviderError wraps a failure of the generative model call: transport
// errors, timeouts, and malformed output. The cause is logged server-side
// and never exposed to clients.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// PersistenceError wraps a store write/read failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
