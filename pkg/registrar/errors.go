package registrar

import "fmt"

// Error is a failure reported by the registrar. Code and Message are the
// provider's error code and text, kept verbatim for operators.
type Error struct {
	// Op is the registrar operation that failed, e.g. "ListDomains".
	Op string
	// Code is the provider error code, empty when the failure happened before
	// the provider answered.
	Code string
	// Message is the provider error message.
	Message string
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Code != "":
		return fmt.Sprintf("registrar %s failed: %s: %s", e.Op, e.Code, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("registrar %s failed: %s", e.Op, e.Err.Error())
	default:
		return fmt.Sprintf("registrar %s failed: %s", e.Op, e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }
