// Package errors provides structured, coded errors for the teamgen CLI and
// its configuration loader.
//
// Each error carries a code (E100, E201, ...), a category, a short message,
// an optional longer detail and a fix suggestion. Format renders the error
// for a terminal:
//
//	err := errors.New("E101").WithDetail("toast.duration must be positive")
//	fmt.Fprintln(os.Stderr, err.Format())
//
// Errors created here support errors.Is/As through Unwrap.
package errors
