package calls

import (
	"sync/atomic"

	"github.com/funvibe/receivers/internal/ast"
	"github.com/funvibe/receivers/internal/scopes"
	"github.com/funvibe/receivers/internal/symbols"
	"github.com/funvibe/receivers/internal/typesystem"
)

// ImplicitReceiver is an implicit receiver owned by an ImplicitReceiverStack.
// The unexported methods keep narrowing inside this package.
type ImplicitReceiver interface {
	ReceiverValue
	ImplicitScope() (scopes.Scope, bool)
	boundDeclaration() symbols.Symbol
	replaceType(typesystem.Type)
}

// implicitState pairs a type with the scope derived from it. A state is never
// mutated; narrowing publishes a new one.
type implicitState struct {
	typ   typesystem.Type
	scope scopes.Scope
	ok    bool
}

// ImplicitReceiverValue is a receiver supplied by the enclosing context.
type ImplicitReceiverValue[S symbols.Symbol] struct {
	boundSymbol  S
	session      *symbols.Session
	scopeSession *scopes.ScopeSession
	state        atomic.Pointer[implicitState]
	expr         *ast.ThisReceiverExpression
}

func newImplicitReceiverValue[S symbols.Symbol](bound S, t typesystem.Type, session *symbols.Session, scopeSession *scopes.ScopeSession) *ImplicitReceiverValue[S] {
	if session == nil || scopeSession == nil {
		panic("calls: implicit receiver requires a session and a scope session")
	}
	if t == nil {
		panic("calls: implicit receiver requires a type")
	}
	r := &ImplicitReceiverValue[S]{
		boundSymbol:  bound,
		session:      session,
		scopeSession: scopeSession,
		expr:         ast.NewImplicitThis(bound, t),
	}
	r.state.Store(r.derive(t))
	return r
}

func (r *ImplicitReceiverValue[S]) derive(t typesystem.Type) *implicitState {
	scope, ok := scopes.DeriveScope(t, r.session, r.scopeSession)
	return &implicitState{typ: t, scope: scope, ok: ok}
}

func (r *ImplicitReceiverValue[S]) BoundSymbol() S { return r.boundSymbol }

func (r *ImplicitReceiverValue[S]) boundDeclaration() symbols.Symbol { return r.boundSymbol }

func (r *ImplicitReceiverValue[S]) Type() typesystem.Type { return r.state.Load().typ }

// ImplicitScope is the scope derived from the current type.
func (r *ImplicitReceiverValue[S]) ImplicitScope() (scopes.Scope, bool) {
	st := r.state.Load()
	return st.scope, st.ok
}

// TypeAndScope reads the current type and its scope as one consistent pair.
func (r *ImplicitReceiverValue[S]) TypeAndScope() (typesystem.Type, scopes.Scope, bool) {
	st := r.state.Load()
	return st.typ, st.scope, st.ok
}

// ReceiverExpression keeps the type in effect at construction.
func (r *ImplicitReceiverValue[S]) ReceiverExpression() ast.Expression { return r.expr }

// Scope returns the cached scope. It was derived against the receiver's own
// session, so the arguments are not consulted.
func (r *ImplicitReceiverValue[S]) Scope(*symbols.Session, *scopes.ScopeSession) (scopes.Scope, bool) {
	return r.ImplicitScope()
}

// replaceType narrows the receiver. Only ImplicitReceiverStack calls it.
func (r *ImplicitReceiverValue[S]) replaceType(t typesystem.Type) {
	if t == nil {
		panic("calls: cannot narrow an implicit receiver to a nil type")
	}
	if typesystem.Equal(t, r.state.Load().typ) {
		return
	}
	r.state.Store(r.derive(t))
}

// ImplicitDispatchReceiverValue is the implicit `this` of an enclosing class.
type ImplicitDispatchReceiverValue struct {
	*ImplicitReceiverValue[*symbols.ClassSymbol]
	companionScopes []scopes.Scope
}

func NewImplicitDispatchReceiverValue(class *symbols.ClassSymbol, t typesystem.Type, session *symbols.Session, scopeSession *scopes.ScopeSession) *ImplicitDispatchReceiverValue {
	return &ImplicitDispatchReceiverValue{
		ImplicitReceiverValue: newImplicitReceiverValue(class, t, session, scopeSession),
		companionScopes:       implicitCompanionScopes(class, session, scopeSession),
	}
}

// ImplicitCompanionScopes lists the companion scopes reachable without
// qualification: the class's own companion, then the companion of every
// superclass, nearest first. Interfaces never contribute. The list depends on
// the class hierarchy only and is not recomputed on narrowing.
func (r *ImplicitDispatchReceiverValue) ImplicitCompanionScopes() []scopes.Scope {
	return append([]scopes.Scope(nil), r.companionScopes...)
}

func implicitCompanionScopes(class *symbols.ClassSymbol, session *symbols.Session, scopeSession *scopes.ScopeSession) []scopes.Scope {
	var out []scopes.Scope
	if scope, ok := scopes.CompanionScope(class, session, scopeSession); ok {
		out = append(out, scope)
	}
	for _, st := range symbols.SuperclassChain(class, false, true, session) {
		super, ok := symbols.ResolveType(st, session)
		if !ok {
			continue
		}
		if scope, ok := scopes.CompanionScope(super, session, scopeSession); ok {
			out = append(out, scope)
		}
	}
	return out
}

// ImplicitExtensionReceiverValue is the receiver parameter of an enclosing
// extension callable.
type ImplicitExtensionReceiverValue struct {
	*ImplicitReceiverValue[*symbols.CallableSymbol]
}

func NewImplicitExtensionReceiverValue(callable *symbols.CallableSymbol, t typesystem.Type, session *symbols.Session, scopeSession *scopes.ScopeSession) *ImplicitExtensionReceiverValue {
	return &ImplicitExtensionReceiverValue{
		ImplicitReceiverValue: newImplicitReceiverValue(callable, t, session, scopeSession),
	}
}
