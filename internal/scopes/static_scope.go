package scopes

import (
	"github.com/funvibe/receivers/internal/symbols"
)

// StaticScope restricts a delegate scope to what is reachable without an
// instance: nested classifiers that are not inner, and static callables.
type StaticScope struct {
	delegate Scope
}

func NewStaticScope(delegate Scope) *StaticScope {
	return &StaticScope{delegate: delegate}
}

func (s *StaticScope) ProcessClassifiersByName(name string, processor ClassifierProcessor) ProcessorAction {
	return s.delegate.ProcessClassifiersByName(name, func(c *symbols.ClassSymbol) ProcessorAction {
		if c.IsInner {
			return Next
		}
		return processor(c)
	})
}

func (s *StaticScope) ProcessFunctionsByName(name string, processor CallableProcessor) ProcessorAction {
	return s.delegate.ProcessFunctionsByName(name, staticOnly(processor))
}

func (s *StaticScope) ProcessPropertiesByName(name string, processor CallableProcessor) ProcessorAction {
	return s.delegate.ProcessPropertiesByName(name, staticOnly(processor))
}

func staticOnly(processor CallableProcessor) CallableProcessor {
	return func(c *symbols.CallableSymbol) ProcessorAction {
		if !c.IsStatic {
			return Next
		}
		return processor(c)
	}
}
