package bill

import "fmt"

// CalculationError reports a value that could not be processed while
// resolving a document's derived amounts.
type CalculationError struct {
	// Field locates the offending value, e.g. "lines.2.price".
	Field string
	// Value is the raw input that failed to parse.
	Value string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *CalculationError) Error() string {
	return fmt.Sprintf("%s: cannot calculate with value %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *CalculationError) Unwrap() error {
	return e.Err
}
