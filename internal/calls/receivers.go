// Package calls computes the receiver values visible at a call site and the
// member-lookup scope each of them contributes.
package calls

import (
	"github.com/funvibe/receivers/internal/ast"
	"github.com/funvibe/receivers/internal/scopes"
	"github.com/funvibe/receivers/internal/symbols"
	"github.com/funvibe/receivers/internal/typesystem"
)

// ReceiverValue is a value members can be looked up on.
type ReceiverValue interface {
	Type() typesystem.Type
	// ReceiverExpression is the node used to build the call's receiver argument.
	ReceiverExpression() ast.Expression
	Scope(session *symbols.Session, scopeSession *scopes.ScopeSession) (scopes.Scope, bool)
}

func typeScope(r ReceiverValue, session *symbols.Session, scopeSession *scopes.ScopeSession) (scopes.Scope, bool) {
	return scopes.DeriveScope(r.Type(), session, scopeSession)
}

// ClassDispatchReceiverValue stands for "an instance of this class" while
// resolving inside the class body.
type ClassDispatchReceiverValue struct {
	class *symbols.ClassSymbol
	typ   typesystem.ClassType
	expr  *ast.ThisReceiverExpression
}

func NewClassDispatchReceiverValue(class *symbols.ClassSymbol) *ClassDispatchReceiverValue {
	t := class.DefaultType()
	return &ClassDispatchReceiverValue{
		class: class,
		typ:   t,
		expr:  ast.NewImplicitThis(class, t),
	}
}

func (r *ClassDispatchReceiverValue) Class() *symbols.ClassSymbol        { return r.class }
func (r *ClassDispatchReceiverValue) Type() typesystem.Type              { return r.typ }
func (r *ClassDispatchReceiverValue) ReceiverExpression() ast.Expression { return r.expr }

func (r *ClassDispatchReceiverValue) Scope(session *symbols.Session, scopeSession *scopes.ScopeSession) (scopes.Scope, bool) {
	return typeScope(r, session, scopeSession)
}

// ExpressionReceiverValue wraps an explicit receiver expression.
type ExpressionReceiverValue struct {
	expr ast.Expression
}

func NewExpressionReceiverValue(expr ast.Expression) *ExpressionReceiverValue {
	return &ExpressionReceiverValue{expr: expr}
}

// Type is read from the expression on every call. An expression whose type
// was never computed yields an error type naming it.
func (r *ExpressionReceiverValue) Type() typesystem.Type {
	if t := r.expr.TypeRef(); t != nil {
		return t
	}
	return typesystem.NewErrorType("No type calculated for: %s", ast.RenderWithType(r.expr))
}

func (r *ExpressionReceiverValue) ReceiverExpression() ast.Expression { return r.expr }

// Scope special-cases a bare class reference: only static members of the
// class are visible, followed by the members of its companion if it has one.
// Instance members and inner classifiers need an instance and are hidden.
func (r *ExpressionReceiverValue) Scope(session *symbols.Session, scopeSession *scopes.ScopeSession) (scopes.Scope, bool) {
	qualifier, ok := r.expr.(*ast.ResolvedQualifier)
	if !ok || !qualifier.Class.IsValid() {
		return typeScope(r, session, scopeSession)
	}
	class, ok := symbols.Resolve(qualifier.Class, session)
	if !ok || class.Kind.IsSingleton() {
		return typeScope(r, session, scopeSession)
	}
	classScope, ok := scopes.DeriveScope(class.DefaultType(), session, scopeSession)
	if !ok {
		return typeScope(r, session, scopeSession)
	}
	static := scopes.NewStaticScope(classScope)
	if !class.HasCompanion() {
		return static, true
	}
	companionScope, ok := typeScope(r, session, scopeSession)
	if !ok {
		return nil, false
	}
	return scopes.NewCompositeScope(static, companionScope), true
}
