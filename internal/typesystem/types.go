package typesystem

import (
	"strconv"
	"strings"
)

// Type is the interface for all types seen by receiver resolution.
// Types are immutable values; two types are equal when their keys are equal.
type Type interface {
	String() string
	// Key is a canonical encoding used for structural comparison and as a cache key.
	Key() string
}

// Equal reports structural equality of two types. Nil only equals nil.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// ClassType is a class-like type applied to type arguments (e.g. List<*>).
type ClassType struct {
	Tag      LookupTag
	Args     []Type
	Nullable bool
}

func (t ClassType) String() string {
	var sb strings.Builder
	sb.WriteString(t.Tag.String())
	if len(t.Args) > 0 {
		sb.WriteByte('<')
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.String())
		}
		sb.WriteByte('>')
	}
	if t.Nullable {
		sb.WriteByte('?')
	}
	return sb.String()
}

func (t ClassType) Key() string {
	var sb strings.Builder
	sb.WriteString("c")
	sb.WriteString(strconv.FormatUint(uint64(t.Tag.ID), 10))
	if len(t.Args) > 0 {
		sb.WriteByte('<')
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(arg.Key())
		}
		sb.WriteByte('>')
	}
	if t.Nullable {
		sb.WriteByte('?')
	}
	return sb.String()
}

// WithNullability returns a copy of t with the given nullability.
func (t ClassType) WithNullability(nullable bool) ClassType {
	return ClassType{Tag: t.Tag, Args: t.Args, Nullable: nullable}
}

// starProjection is the unconstrained wildcard type argument.
type starProjection struct{}

func (starProjection) String() string { return "*" }
func (starProjection) Key() string    { return "*" }

// StarProjection is the single wildcard argument value.
var StarProjection Type = starProjection{}

// IsStarProjection reports whether t is the wildcard argument.
func IsStarProjection(t Type) bool {
	_, ok := t.(starProjection)
	return ok
}

// TypeParameterType is a reference to a declared type parameter.
// Bounds are its upper bounds; an unbounded parameter has no member scope.
type TypeParameterType struct {
	Name     string
	Bounds   []Type
	Nullable bool
}

func (t TypeParameterType) String() string {
	if t.Nullable {
		return t.Name + "?"
	}
	return t.Name
}

func (t TypeParameterType) Key() string {
	var sb strings.Builder
	sb.WriteString("p:")
	sb.WriteString(t.Name)
	if len(t.Bounds) > 0 {
		sb.WriteByte(':')
		for i, b := range t.Bounds {
			if i > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(b.Key())
		}
	}
	if t.Nullable {
		sb.WriteByte('?')
	}
	return sb.String()
}
