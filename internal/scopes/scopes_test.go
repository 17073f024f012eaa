package scopes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/receivers/internal/symbols"
)

// listScope is an in-memory scope that counts how many candidates it offered.
type listScope struct {
	classifiers []*symbols.ClassSymbol
	functions   []*symbols.CallableSymbol
	properties  []*symbols.CallableSymbol
	offered     int
}

func (s *listScope) ProcessClassifiersByName(name string, processor ClassifierProcessor) ProcessorAction {
	for _, c := range s.classifiers {
		if c.ShortName() != name {
			continue
		}
		s.offered++
		if processor(c).Stopped() {
			return Stop
		}
	}
	return Next
}

func (s *listScope) ProcessFunctionsByName(name string, processor CallableProcessor) ProcessorAction {
	return s.processCallables(s.functions, name, processor)
}

func (s *listScope) ProcessPropertiesByName(name string, processor CallableProcessor) ProcessorAction {
	return s.processCallables(s.properties, name, processor)
}

func (s *listScope) processCallables(list []*symbols.CallableSymbol, name string, processor CallableProcessor) ProcessorAction {
	for _, c := range list {
		if c.Name != name {
			continue
		}
		s.offered++
		if processor(c).Stopped() {
			return Stop
		}
	}
	return Next
}

func fn(name string, static bool) *symbols.CallableSymbol {
	return &symbols.CallableSymbol{Name: name, Kind: symbols.FunctionSymbolKind, IsStatic: static}
}

func prop(name string, static bool) *symbols.CallableSymbol {
	return &symbols.CallableSymbol{Name: name, Kind: symbols.PropertySymbolKind, IsStatic: static}
}

func TestStaticScope_Classifiers(t *testing.T) {
	t.Parallel()
	inner := &symbols.ClassSymbol{Name: "Outer.Item", IsInner: true}
	static := &symbols.ClassSymbol{Name: "Outer.Other.Item"}
	delegate := &listScope{classifiers: []*symbols.ClassSymbol{inner, static}}

	got := CollectClassifiers(NewStaticScope(delegate), "Item")
	require.Len(t, got, 1)
	assert.Same(t, static, got[0])
}

func TestStaticScope_Callables(t *testing.T) {
	t.Parallel()
	delegate := &listScope{
		functions:  []*symbols.CallableSymbol{fn("of", false), fn("of", true)},
		properties: []*symbols.CallableSymbol{prop("size", false), prop("EMPTY", true)},
	}
	scope := NewStaticScope(delegate)

	functions := CollectFunctions(scope, "of")
	require.Len(t, functions, 1)
	assert.True(t, functions[0].IsStatic)

	assert.Empty(t, CollectProperties(scope, "size"))
	assert.Len(t, CollectProperties(scope, "EMPTY"), 1)
}

func TestStaticScope_PropagatesStop(t *testing.T) {
	t.Parallel()
	delegate := &listScope{functions: []*symbols.CallableSymbol{
		fn("f", false), fn("f", true), fn("f", true), fn("f", true),
	}}
	scope := NewStaticScope(delegate)

	calls := 0
	action := scope.ProcessFunctionsByName("f", func(*symbols.CallableSymbol) ProcessorAction {
		calls++
		return Stop
	})
	assert.Equal(t, Stop, action)
	assert.Equal(t, 1, calls)
	// the non-static one plus the first static one; the rest is never visited
	assert.Equal(t, 2, delegate.offered)
}

func TestCompositeScope_ConstructionOrder(t *testing.T) {
	t.Parallel()
	a := &listScope{functions: []*symbols.CallableSymbol{fn("run", false), fn("run", true)}}
	b := &listScope{functions: []*symbols.CallableSymbol{fn("run", false)}}

	got := CollectFunctions(NewCompositeScope(a, b), "run")
	require.Len(t, got, 3)
	assert.Same(t, a.functions[0], got[0])
	assert.Same(t, a.functions[1], got[1])
	assert.Same(t, b.functions[0], got[2])

	got = CollectFunctions(NewCompositeScope(b, a), "run")
	require.Len(t, got, 3)
	assert.Same(t, b.functions[0], got[0])
}

func TestCompositeScope_StopSkipsLaterScopes(t *testing.T) {
	t.Parallel()
	a := &listScope{properties: []*symbols.CallableSymbol{prop("x", false)}}
	b := &listScope{properties: []*symbols.CallableSymbol{prop("x", false)}}

	first, ok := firstProperty(NewCompositeScope(a, b), "x")
	require.True(t, ok)
	assert.Same(t, a.properties[0], first)
	assert.Equal(t, 0, b.offered)
}

func TestCompositeScope_Classifiers(t *testing.T) {
	t.Parallel()
	x1 := &symbols.ClassSymbol{Name: "A.X"}
	x2 := &symbols.ClassSymbol{Name: "B.X"}
	scope := NewCompositeScope(&listScope{classifiers: []*symbols.ClassSymbol{x1}}, &listScope{classifiers: []*symbols.ClassSymbol{x2}})
	assert.Equal(t, []*symbols.ClassSymbol{x1, x2}, CollectClassifiers(scope, "X"))
	assert.Empty(t, CollectClassifiers(scope, "Y"))
}

func TestCompositeScope_Empty(t *testing.T) {
	t.Parallel()
	scope := NewCompositeScope()
	assert.Equal(t, Next, scope.ProcessFunctionsByName("f", func(*symbols.CallableSymbol) ProcessorAction { return Stop }))
	assert.Empty(t, scope.Scopes())
}

func TestFirstFunction(t *testing.T) {
	t.Parallel()
	s := &listScope{functions: []*symbols.CallableSymbol{fn("a", false), fn("a", true)}}
	f, ok := FirstFunction(s, "a")
	require.True(t, ok)
	assert.False(t, f.IsStatic)
	assert.Equal(t, 1, s.offered)

	_, ok = FirstFunction(s, "missing")
	assert.False(t, ok)
	assert.Equal(t, "STOP", Stop.String())
}

func firstProperty(scope Scope, name string) (*symbols.CallableSymbol, bool) {
	var found *symbols.CallableSymbol
	scope.ProcessPropertiesByName(name, func(p *symbols.CallableSymbol) ProcessorAction {
		found = p
		return Stop
	})
	return found, found != nil
}
