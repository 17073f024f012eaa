package ast

import (
	"github.com/funvibe/receivers/internal/typesystem"
)

// Expression is a resolved expression node as seen by call resolution.
type Expression interface {
	// TypeRef is the resolved type, or nil when no type was computed.
	TypeRef() typesystem.Type
	String() string
	expressionNode()
}

// RenderWithType renders an expression together with its resolved type.
func RenderWithType(e Expression) string {
	if e == nil {
		return "<nil>"
	}
	if t := e.TypeRef(); t != nil {
		return e.String() + ": " + t.String()
	}
	return e.String() + ": <unresolved>"
}
