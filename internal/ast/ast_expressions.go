package ast

import (
	"github.com/funvibe/receivers/internal/config"
	"github.com/funvibe/receivers/internal/symbols"
	"github.com/funvibe/receivers/internal/typesystem"
)

// NameReference is a reference to a variable, parameter or call result.
type NameReference struct {
	Name string
	Type typesystem.Type
}

func (n *NameReference) expressionNode()          {}
func (n *NameReference) TypeRef() typesystem.Type { return n.Type }
func (n *NameReference) String() string           { return n.Name }

// SetType records the resolved type.
func (n *NameReference) SetType(t typesystem.Type) { n.Type = t }

// ThisReceiverExpression is a `this` reference, written or synthesized for an
// implicit receiver. Bound is the class or extension callable it refers to.
type ThisReceiverExpression struct {
	Bound    symbols.Symbol
	Implicit bool
	Type     typesystem.Type
}

func (t *ThisReceiverExpression) expressionNode()          {}
func (t *ThisReceiverExpression) TypeRef() typesystem.Type { return t.Type }

func (t *ThisReceiverExpression) String() string {
	if t.Bound == nil {
		return config.ImplicitThisLabel
	}
	return config.ImplicitThisLabel + "@" + t.Bound.SymbolName()
}

// NewImplicitThis synthesizes the receiver expression of an implicit receiver.
func NewImplicitThis(bound symbols.Symbol, t typesystem.Type) *ThisReceiverExpression {
	return &ThisReceiverExpression{Bound: bound, Implicit: true, Type: t}
}

// ResolvedQualifier is an expression that names a class or a package rather
// than a value. Class is the zero tag for package qualifiers.
type ResolvedQualifier struct {
	Package string
	Class   typesystem.LookupTag
	Type    typesystem.Type
}

func (q *ResolvedQualifier) expressionNode()          {}
func (q *ResolvedQualifier) TypeRef() typesystem.Type { return q.Type }

func (q *ResolvedQualifier) String() string {
	switch {
	case q.Class.IsValid() && q.Package != "":
		return q.Package + "." + q.Class.String()
	case q.Class.IsValid():
		return q.Class.String()
	default:
		return q.Package
	}
}

// NewClassQualifier builds the qualifier for a bare class reference. Its type
// is the object's own type for singletons and the companion's type for classes
// with a companion; other classes yield a qualifier without a value type.
func NewClassQualifier(class *symbols.ClassSymbol, session *symbols.Session) *ResolvedQualifier {
	q := &ResolvedQualifier{Class: class.LookupTag()}
	switch {
	case class.Kind.IsSingleton():
		q.Type = class.DefaultType()
	case class.HasCompanion():
		if companion, ok := symbols.Resolve(class.Companion, session); ok {
			q.Type = companion.DefaultType()
		}
	}
	return q
}
