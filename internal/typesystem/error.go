package typesystem

import "fmt"

// ErrorType is the diagnostic sentinel produced where a real type is missing.
// It carries a description so diagnostics can still name the offending node.
type ErrorType struct {
	Reason string
}

func (t ErrorType) String() string {
	return fmt.Sprintf("<ERROR: %s>", t.Reason)
}

func (t ErrorType) Key() string {
	return "!" + t.Reason
}

func NewErrorType(format string, args ...any) ErrorType {
	return ErrorType{Reason: fmt.Sprintf(format, args...)}
}

// IsErrorType reports whether t is the error sentinel.
func IsErrorType(t Type) bool {
	_, ok := t.(ErrorType)
	return ok
}
