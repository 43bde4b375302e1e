// errors/validation_errors.go
package errors

import "fmt"

// ValidationError reports the first field constraint a record failed.
// A batch import aborts on the first validation error and leaves the
// previous cache untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
