package scopes

import (
	"github.com/funvibe/receivers/internal/symbols"
	"github.com/funvibe/receivers/internal/typesystem"
)

// DeriveScope returns the member scope of t, memoized in scopeSession.
//
// Class types resolve their class on demand; a tag that does not resolve has
// no scope. Type parameters expose the scope of their bounds and nothing when
// unbounded. Error types and wildcards never have a scope.
func DeriveScope(t typesystem.Type, session *symbols.Session, scopeSession *ScopeSession) (Scope, bool) {
	scope, ok, _ := deriveScope(t, session, scopeSession)
	return scope, ok
}

// deriveScope also reports whether the result is final. A class whose tag is
// still pending may be defined later, so its absence is not final and is
// never cached.
func deriveScope(t typesystem.Type, session *symbols.Session, scopeSession *ScopeSession) (Scope, bool, bool) {
	switch t.(type) {
	case typesystem.ClassType, typesystem.TypeParameterType:
	default:
		return nil, false, true
	}
	if session == nil {
		return nil, false, true
	}
	if scopeSession == nil {
		return computeScope(t, session, nil)
	}
	return scopeSession.getOrCompute(t, session, func() (Scope, bool, bool) {
		return computeScope(t, session, scopeSession)
	})
}

func computeScope(t typesystem.Type, session *symbols.Session, scopeSession *ScopeSession) (Scope, bool, bool) {
	switch typ := t.(type) {
	case typesystem.ClassType:
		class, ok := symbols.Resolve(typ.Tag, session)
		if !ok {
			return nil, false, false
		}
		return newClassMemberScope(class, session), true, true

	case typesystem.TypeParameterType:
		var bounds []Scope
		final := true
		for _, bound := range typ.Bounds {
			scope, ok, boundFinal := deriveScope(bound, session, scopeSession)
			final = final && boundFinal
			if ok {
				bounds = append(bounds, scope)
			}
		}
		switch len(bounds) {
		case 0:
			return nil, false, final
		case 1:
			return bounds[0], true, final
		default:
			return NewCompositeScope(bounds...), true, final
		}
	}
	return nil, false, true
}

// CompanionScope returns the member scope of class's companion object.
func CompanionScope(class *symbols.ClassSymbol, session *symbols.Session, scopeSession *ScopeSession) (Scope, bool) {
	if class == nil || !class.HasCompanion() {
		return nil, false
	}
	companion, ok := symbols.Resolve(class.Companion, session)
	if !ok {
		return nil, false
	}
	return DeriveScope(companion.DefaultType(), session, scopeSession)
}
