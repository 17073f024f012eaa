package symbols

import (
	"strings"

	"github.com/funvibe/receivers/internal/typesystem"
)

type SymbolKind int

const (
	ClassSymbolKind SymbolKind = iota
	FunctionSymbolKind
	PropertySymbolKind
)

func (k SymbolKind) String() string {
	switch k {
	case ClassSymbolKind:
		return "class"
	case FunctionSymbolKind:
		return "function"
	case PropertySymbolKind:
		return "property"
	default:
		return "unknown"
	}
}

// Symbol is a resolved declaration handle.
type Symbol interface {
	SymbolName() string
	SymbolKind() SymbolKind
}

type ClassKind int

const (
	Class ClassKind = iota
	Interface
	Object
	CompanionObject
)

func (k ClassKind) String() string {
	switch k {
	case Class:
		return "class"
	case Interface:
		return "interface"
	case Object:
		return "object"
	case CompanionObject:
		return "companion object"
	default:
		return "unknown"
	}
}

// IsSingleton is true for declarations that denote their only instance.
func (k ClassKind) IsSingleton() bool {
	return k == Object || k == CompanionObject
}

// ClassSymbol describes a class-like declaration.
type ClassSymbol struct {
	ID             typesystem.ClassID
	Name           string
	Kind           ClassKind
	TypeParameters []string
	Supertypes     []typesystem.Type
	IsInner        bool                 // Nested class capturing an outer instance
	Companion      typesystem.LookupTag // Zero tag when the class has no companion
	Classifiers    []typesystem.LookupTag
	Functions      []*CallableSymbol
	Properties     []*CallableSymbol
}

func (c *ClassSymbol) SymbolName() string     { return c.Name }
func (c *ClassSymbol) SymbolKind() SymbolKind { return ClassSymbolKind }

// ShortName is the name a nested classifier is looked up by ("Outer.Inner" -> "Inner").
func (c *ClassSymbol) ShortName() string {
	if i := strings.LastIndexByte(c.Name, '.'); i >= 0 {
		return c.Name[i+1:]
	}
	return c.Name
}

// LookupTag returns the lazy reference to this declaration.
func (c *ClassSymbol) LookupTag() typesystem.LookupTag {
	return typesystem.LookupTag{ID: c.ID, Name: c.Name}
}

// HasCompanion reports whether a companion object is attached.
func (c *ClassSymbol) HasCompanion() bool {
	return c.Companion.IsValid()
}

// ConstructType applies the class to type arguments.
func (c *ClassSymbol) ConstructType(args []typesystem.Type, nullable bool) typesystem.ClassType {
	return typesystem.ClassType{Tag: c.LookupTag(), Args: args, Nullable: nullable}
}

// DefaultType is the class with a wildcard for every type parameter, non-nullable.
func (c *ClassSymbol) DefaultType() typesystem.ClassType {
	var args []typesystem.Type
	if len(c.TypeParameters) > 0 {
		args = make([]typesystem.Type, len(c.TypeParameters))
		for i := range args {
			args[i] = typesystem.StarProjection
		}
	}
	return c.ConstructType(args, false)
}

// CallableSymbol describes a function or a property.
type CallableSymbol struct {
	Name         string
	Kind         SymbolKind // FunctionSymbolKind or PropertySymbolKind
	IsStatic     bool
	ReceiverType typesystem.Type // Extension receiver, nil for members
	ReturnType   typesystem.Type
	Owner        typesystem.LookupTag // Zero tag for top-level callables
}

func (c *CallableSymbol) SymbolName() string     { return c.Name }
func (c *CallableSymbol) SymbolKind() SymbolKind { return c.Kind }

// IsExtension reports whether the callable declares a receiver parameter.
func (c *CallableSymbol) IsExtension() bool {
	return c.ReceiverType != nil
}
