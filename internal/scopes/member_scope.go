package scopes

import (
	"sync/atomic"

	"github.com/funvibe/receivers/internal/symbols"
)

// classMemberScope enumerates the declared members of a class followed by
// those of its supertypes, nearest first. The supertype chain is walked again
// on every enumeration until all of its supertypes resolve, so a supertype
// defined after the scope was derived still contributes its members.
type classMemberScope struct {
	class    *symbols.ClassSymbol
	session  *symbols.Session
	complete atomic.Pointer[[]*symbols.ClassSymbol]
}

func newClassMemberScope(class *symbols.ClassSymbol, session *symbols.Session) *classMemberScope {
	return &classMemberScope{class: class, session: session}
}

func (s *classMemberScope) classes() []*symbols.ClassSymbol {
	if classes := s.complete.Load(); classes != nil {
		return *classes
	}
	classes := []*symbols.ClassSymbol{s.class}
	resolved := true
	for _, st := range symbols.SuperclassChain(s.class, true, true, s.session) {
		super, ok := symbols.ResolveType(st, s.session)
		if !ok {
			resolved = false
			continue
		}
		classes = append(classes, super)
	}
	if resolved {
		s.complete.Store(&classes)
	}
	return classes
}

func (s *classMemberScope) ProcessClassifiersByName(name string, processor ClassifierProcessor) ProcessorAction {
	for _, class := range s.classes() {
		for _, tag := range class.Classifiers {
			nested, ok := symbols.Resolve(tag, s.session)
			if !ok || nested.ShortName() != name {
				continue
			}
			if processor(nested).Stopped() {
				return Stop
			}
		}
	}
	return Next
}

func (s *classMemberScope) ProcessFunctionsByName(name string, processor CallableProcessor) ProcessorAction {
	for _, class := range s.classes() {
		if processCallables(class.Functions, name, processor).Stopped() {
			return Stop
		}
	}
	return Next
}

func (s *classMemberScope) ProcessPropertiesByName(name string, processor CallableProcessor) ProcessorAction {
	for _, class := range s.classes() {
		if processCallables(class.Properties, name, processor).Stopped() {
			return Stop
		}
	}
	return Next
}

func processCallables(callables []*symbols.CallableSymbol, name string, processor CallableProcessor) ProcessorAction {
	for _, c := range callables {
		if c.Name != name {
			continue
		}
		if processor(c).Stopped() {
			return Stop
		}
	}
	return Next
}
