package calls

import (
	"testing"

	"github.com/funvibe/receivers/internal/scopes"
	"github.com/funvibe/receivers/internal/symbols"
	"github.com/funvibe/receivers/internal/typesystem"
)

// hierarchy is the declaration set shared by the tests:
//
//	interface Marker { companion MarkerCompanion { fun markerFun() } }
//	open class B { fun bFun(); companion J { fun jFun(); fun shared() } }
//	class C<T> : B, Marker {
//	    fun cFun(); static fun create()
//	    class Nested; inner class Inner
//	    companion K { fun kFun(); fun create(); fun shared() }
//	}
//	class D : C<*> { fun dFun() }
//	class Plain { fun i(); static fun s(); static val sv; val iv; class N; inner class I }
//	object Single { fun objFun() }
type hierarchy struct {
	session      *symbols.Session
	scopeSession *scopes.ScopeSession

	marker, markerCompanion *symbols.ClassSymbol
	b, j                    *symbols.ClassSymbol
	c, k, nested, inner     *symbols.ClassSymbol
	d                       *symbols.ClassSymbol
	plain, n, i             *symbols.ClassSymbol
	single                  *symbols.ClassSymbol
}

func fn(name string, static bool) *symbols.CallableSymbol {
	return &symbols.CallableSymbol{Name: name, Kind: symbols.FunctionSymbolKind, IsStatic: static}
}

func prop(name string, static bool) *symbols.CallableSymbol {
	return &symbols.CallableSymbol{Name: name, Kind: symbols.PropertySymbolKind, IsStatic: static}
}

func newHierarchy(t *testing.T) *hierarchy {
	t.Helper()
	s := symbols.NewSession()
	h := &hierarchy{session: s, scopeSession: scopes.NewScopeSession()}

	// C is declared before B on purpose: its supertype is only a reserved tag.
	bTag := s.Reserve("B")
	markerTag := s.Reserve("Marker")

	h.k = s.Declare(&symbols.ClassSymbol{Name: "C.K", Kind: symbols.CompanionObject,
		Functions: []*symbols.CallableSymbol{fn("kFun", false), fn("create", false), fn("shared", false)}})
	h.nested = s.Declare(&symbols.ClassSymbol{Name: "C.Nested"})
	h.inner = s.Declare(&symbols.ClassSymbol{Name: "C.Inner", IsInner: true})
	h.c = s.Declare(&symbols.ClassSymbol{
		Name:           "C",
		TypeParameters: []string{"T"},
		Supertypes:     []typesystem.Type{typesystem.ClassType{Tag: bTag}, typesystem.ClassType{Tag: markerTag}},
		Companion:      h.k.LookupTag(),
		Classifiers:    []typesystem.LookupTag{h.nested.LookupTag(), h.inner.LookupTag()},
		Functions:      []*symbols.CallableSymbol{fn("cFun", false), fn("create", true)},
	})

	h.j = s.Declare(&symbols.ClassSymbol{Name: "B.J", Kind: symbols.CompanionObject,
		Functions: []*symbols.CallableSymbol{fn("jFun", false), fn("shared", false)}})
	h.b = s.Define(bTag, &symbols.ClassSymbol{
		Companion: h.j.LookupTag(),
		Functions: []*symbols.CallableSymbol{fn("bFun", false)},
	})

	h.markerCompanion = s.Declare(&symbols.ClassSymbol{Name: "Marker.Companion", Kind: symbols.CompanionObject,
		Functions: []*symbols.CallableSymbol{fn("markerFun", false)}})
	h.marker = s.Define(markerTag, &symbols.ClassSymbol{Kind: symbols.Interface, Companion: h.markerCompanion.LookupTag()})

	h.d = s.Declare(&symbols.ClassSymbol{
		Name:       "D",
		Supertypes: []typesystem.Type{h.c.ConstructType([]typesystem.Type{typesystem.StarProjection}, false)},
		Functions:  []*symbols.CallableSymbol{fn("dFun", false)},
	})

	h.n = s.Declare(&symbols.ClassSymbol{Name: "Plain.N"})
	h.i = s.Declare(&symbols.ClassSymbol{Name: "Plain.I", IsInner: true})
	h.plain = s.Declare(&symbols.ClassSymbol{
		Name:        "Plain",
		Classifiers: []typesystem.LookupTag{h.n.LookupTag(), h.i.LookupTag()},
		Functions:   []*symbols.CallableSymbol{fn("i", false), fn("s", true)},
		Properties:  []*symbols.CallableSymbol{prop("iv", false), prop("sv", true)},
	})

	h.single = s.Declare(&symbols.ClassSymbol{Name: "Single", Kind: symbols.Object,
		Functions: []*symbols.CallableSymbol{fn("objFun", false)}})
	return h
}

func functionNames(scope scopes.Scope, names ...string) []string {
	var out []string
	for _, name := range names {
		for _, f := range scopes.CollectFunctions(scope, name) {
			out = append(out, f.Name)
		}
	}
	return out
}

func companionScope(t *testing.T, h *hierarchy, class *symbols.ClassSymbol) scopes.Scope {
	t.Helper()
	scope, ok := scopes.CompanionScope(class, h.session, h.scopeSession)
	if !ok {
		t.Fatalf("class %s has no companion scope", class.Name)
	}
	return scope
}
