package modules

import (
	"fmt"
	"strings"
)

// UnresolvedReferenceError reports class names that were referenced but
// never declared.
type UnresolvedReferenceError struct {
	Module string
	Names  []string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("module %s: unresolved class references: %s", e.Module, strings.Join(e.Names, ", "))
}

// DeclarationError reports an invalid declaration entry.
type DeclarationError struct {
	File  string
	Class string
	Msg   string
}

func (e *DeclarationError) Error() string {
	if e.Class == "" {
		return fmt.Sprintf("%s: %s", e.File, e.Msg)
	}
	return fmt.Sprintf("%s: class %s: %s", e.File, e.Class, e.Msg)
}
