package page

import (
	"errors"
	"fmt"
)

// Sentinel errors for page operations.
var (
	// ErrLoopStopped is returned when a task is submitted after the loop exited.
	ErrLoopStopped = errors.New("page: event loop stopped")

	// ErrUndefinedGlobal is returned when calling a window global that was never defined.
	ErrUndefinedGlobal = errors.New("page: undefined global")

	// ErrAlreadyLoaded is returned by a second Load call.
	ErrAlreadyLoaded = errors.New("page: already loaded")

	// ErrTaskPanicked is returned by Do when the task panicked.
	ErrTaskPanicked = errors.New("page: task panicked")
)

// GlobalError reports a failed window global call.
type GlobalError struct {
	Name string // Global that was called
	Err  error  // Underlying error
}

// Error returns the error message with the global's name.
func (e *GlobalError) Error() string {
	return fmt.Sprintf("page: %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *GlobalError) Unwrap() error {
	return e.Err
}
