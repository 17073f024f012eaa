package symbols

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/receivers/internal/typesystem"
)

func TestSession_ForwardReference(t *testing.T) {
	s := NewSession()
	tag := s.Reserve("Later")
	assert.Equal(t, tag, s.Reserve("Later"))

	_, ok := s.Resolve(tag)
	assert.False(t, ok)
	assert.Equal(t, []string{"Later"}, s.Pending())

	defined := s.Define(tag, &ClassSymbol{Kind: Interface})
	assert.Equal(t, "Later", defined.Name)
	assert.Equal(t, tag.ID, defined.ID)

	got, ok := Resolve(tag, s)
	require.True(t, ok)
	assert.Same(t, defined, got)
	assert.Empty(t, s.Pending())
}

func TestSession_Lookup(t *testing.T) {
	s := NewSession()
	a := s.Declare(&ClassSymbol{Name: "A"})

	tag, ok := s.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, a.LookupTag(), tag)

	_, ok = s.Lookup("B")
	assert.False(t, ok)
}

func TestSession_MisuseFaults(t *testing.T) {
	s := NewSession()
	tag := s.Reserve("A")
	s.Define(tag, &ClassSymbol{})

	assert.Panics(t, func() { s.Define(tag, &ClassSymbol{}) }, "double define")
	assert.Panics(t, func() { s.Define(s.Reserve("B"), nil) }, "nil class")
	assert.Panics(t, func() { s.Define(typesystem.LookupTag{}, &ClassSymbol{}) }, "zero tag")

	other := NewSession()
	foreign := other.Reserve("Foreign")
	assert.Panics(t, func() { s.Define(foreign, &ClassSymbol{}) }, "tag from another session")
}

func TestSession_ResolveUnknown(t *testing.T) {
	s := NewSession()
	_, ok := s.Resolve(typesystem.LookupTag{ID: 42, Name: "Ghost"})
	assert.False(t, ok)
	_, ok = Resolve(typesystem.LookupTag{ID: 1}, nil)
	assert.False(t, ok)
	_, ok = ResolveType(typesystem.StarProjection, s)
	assert.False(t, ok)
}

func TestSession_DistinctIdentity(t *testing.T) {
	assert.NotEqual(t, NewSession().ID(), NewSession().ID())
}

func TestSession_ConcurrentReaders(t *testing.T) {
	s := NewSession()
	classes := make([]*ClassSymbol, 8)
	for i := range classes {
		classes[i] = s.Declare(&ClassSymbol{Name: string(rune('A' + i))})
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, c := range classes {
				got, ok := s.Resolve(c.LookupTag())
				assert.True(t, ok)
				assert.Same(t, c, got)
			}
			assert.Len(t, s.Classes(), len(classes))
		}()
	}
	wg.Wait()
}

func TestSession_MemberNames(t *testing.T) {
	s := NewSession()
	nested := s.Declare(&ClassSymbol{Name: "Outer.Nested"})
	s.Declare(&ClassSymbol{
		Name:        "Outer",
		Classifiers: []typesystem.LookupTag{nested.LookupTag(), s.Reserve("Outer.Missing")},
		Functions:   []*CallableSymbol{{Name: "run", Kind: FunctionSymbolKind}},
		Properties:  []*CallableSymbol{{Name: "size", Kind: PropertySymbolKind}, {Name: "run", Kind: PropertySymbolKind}},
	})

	assert.Equal(t, []string{"Nested", "run", "size"}, s.MemberNames())
}

func TestClassSymbol_Types(t *testing.T) {
	s := NewSession()
	box := s.Declare(&ClassSymbol{Name: "util.Box", TypeParameters: []string{"K", "V"}})
	plain := s.Declare(&ClassSymbol{Name: "Plain"})

	assert.Equal(t, "Box", box.ShortName())
	assert.Equal(t, "util.Box<*, *>", box.DefaultType().String())
	assert.False(t, box.DefaultType().Nullable)
	assert.Nil(t, plain.DefaultType().Args)

	arg := plain.DefaultType()
	constructed := box.ConstructType([]typesystem.Type{arg, arg}, true)
	assert.Equal(t, "util.Box<Plain, Plain>?", constructed.String())
	assert.False(t, box.HasCompanion())

	assert.True(t, Object.IsSingleton())
	assert.True(t, CompanionObject.IsSingleton())
	assert.False(t, Class.IsSingleton())
	assert.False(t, Interface.IsSingleton())
}

func TestCallableSymbol(t *testing.T) {
	member := &CallableSymbol{Name: "f", Kind: FunctionSymbolKind}
	ext := &CallableSymbol{Name: "g", Kind: FunctionSymbolKind, ReceiverType: typesystem.TypeParameterType{Name: "T"}}

	assert.False(t, member.IsExtension())
	assert.True(t, ext.IsExtension())
	assert.Equal(t, FunctionSymbolKind, ext.SymbolKind())
	assert.Equal(t, "g", ext.SymbolName())
}
