package calls

import (
	"github.com/funvibe/receivers/internal/scopes"
	"github.com/funvibe/receivers/internal/symbols"
)

type TowerLevelKind int

const (
	ExplicitLevel TowerLevelKind = iota
	ImplicitDispatchLevel
	ImplicitExtensionLevel
	CompanionLevel
)

func (k TowerLevelKind) String() string {
	switch k {
	case ExplicitLevel:
		return "explicit"
	case ImplicitDispatchLevel:
		return "implicit-dispatch"
	case ImplicitExtensionLevel:
		return "implicit-extension"
	case CompanionLevel:
		return "companion"
	default:
		return "unknown"
	}
}

// TowerLevel is one receiver candidate together with the scope it contributes.
// For companion levels Receiver is the dispatch receiver whose class chain
// reached the companion.
type TowerLevel struct {
	Kind     TowerLevelKind
	Receiver ReceiverValue
	Scope    scopes.Scope
}

// CollectTowerLevels orders the receivers visible at a call site: the
// explicit receiver if there is one, then the implicit receivers innermost
// first, each class receiver followed by its companion scopes. Receivers
// without a scope contribute no level.
func CollectTowerLevels(explicit ReceiverValue, stack *ImplicitReceiverStack, session *symbols.Session, scopeSession *scopes.ScopeSession) []TowerLevel {
	var levels []TowerLevel
	if explicit != nil {
		if scope, ok := explicit.Scope(session, scopeSession); ok {
			levels = append(levels, TowerLevel{Kind: ExplicitLevel, Receiver: explicit, Scope: scope})
		}
	}
	if stack == nil {
		return levels
	}
	for _, r := range stack.Receivers() {
		switch receiver := r.(type) {
		case *ImplicitDispatchReceiverValue:
			if scope, ok := receiver.Scope(session, scopeSession); ok {
				levels = append(levels, TowerLevel{Kind: ImplicitDispatchLevel, Receiver: receiver, Scope: scope})
			}
			for _, companion := range receiver.ImplicitCompanionScopes() {
				levels = append(levels, TowerLevel{Kind: CompanionLevel, Receiver: receiver, Scope: companion})
			}
		default:
			if scope, ok := receiver.Scope(session, scopeSession); ok {
				levels = append(levels, TowerLevel{Kind: ImplicitExtensionLevel, Receiver: receiver, Scope: scope})
			}
		}
	}
	return levels
}

// Candidate is a declaration found on a tower level.
type Candidate struct {
	Level  int
	Symbol symbols.Symbol
}

// FindFunctions enumerates every function named name, level by level.
func FindFunctions(levels []TowerLevel, name string) []Candidate {
	var out []Candidate
	for i, level := range levels {
		level.Scope.ProcessFunctionsByName(name, func(f *symbols.CallableSymbol) scopes.ProcessorAction {
			out = append(out, Candidate{Level: i, Symbol: f})
			return scopes.Next
		})
	}
	return out
}

// FindProperties enumerates every property named name, level by level.
func FindProperties(levels []TowerLevel, name string) []Candidate {
	var out []Candidate
	for i, level := range levels {
		level.Scope.ProcessPropertiesByName(name, func(p *symbols.CallableSymbol) scopes.ProcessorAction {
			out = append(out, Candidate{Level: i, Symbol: p})
			return scopes.Next
		})
	}
	return out
}

// FindClassifiers enumerates every classifier named name, level by level.
func FindClassifiers(levels []TowerLevel, name string) []Candidate {
	var out []Candidate
	for i, level := range levels {
		level.Scope.ProcessClassifiersByName(name, func(c *symbols.ClassSymbol) scopes.ProcessorAction {
			out = append(out, Candidate{Level: i, Symbol: c})
			return scopes.Next
		})
	}
	return out
}
