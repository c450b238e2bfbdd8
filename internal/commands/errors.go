// internal/commands/errors.go
package commands

import "fmt"

// UsageError marks argument-level mistakes so the app layer can exit
// with the usage code instead of the runtime one.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}
