package domain

import "fmt"

// ValidationError reports malformed construction input. It is returned at
// construction time, never during computation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
