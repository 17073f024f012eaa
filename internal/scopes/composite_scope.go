package scopes

// CompositeScope enumerates its scopes in construction order. Earlier scopes
// win on shadowing for callers that take the first hit; nothing is deduplicated.
type CompositeScope struct {
	scopes []Scope
}

func NewCompositeScope(scopes ...Scope) *CompositeScope {
	return &CompositeScope{scopes: append([]Scope(nil), scopes...)}
}

// Scopes returns the composed scopes in priority order.
func (s *CompositeScope) Scopes() []Scope {
	return append([]Scope(nil), s.scopes...)
}

func (s *CompositeScope) ProcessClassifiersByName(name string, processor ClassifierProcessor) ProcessorAction {
	for _, scope := range s.scopes {
		if scope.ProcessClassifiersByName(name, processor).Stopped() {
			return Stop
		}
	}
	return Next
}

func (s *CompositeScope) ProcessFunctionsByName(name string, processor CallableProcessor) ProcessorAction {
	for _, scope := range s.scopes {
		if scope.ProcessFunctionsByName(name, processor).Stopped() {
			return Stop
		}
	}
	return Next
}

func (s *CompositeScope) ProcessPropertiesByName(name string, processor CallableProcessor) ProcessorAction {
	for _, scope := range s.scopes {
		if scope.ProcessPropertiesByName(name, processor).Stopped() {
			return Stop
		}
	}
	return Next
}
