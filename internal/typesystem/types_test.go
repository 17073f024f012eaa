package typesystem

import "testing"

func TestTypeString(t *testing.T) {
	list := LookupTag{ID: 3, Name: "List"}
	mapTag := LookupTag{ID: 4, Name: "Map"}

	tests := []struct {
		name     string
		typ      Type
		expected string
	}{
		{"simple class", ClassType{Tag: list}, "List"},
		{"nullable class", ClassType{Tag: list, Nullable: true}, "List?"},
		{"star argument", ClassType{Tag: list, Args: []Type{StarProjection}}, "List<*>"},
		{"nested arguments", ClassType{Tag: mapTag, Args: []Type{TypeParameterType{Name: "K"}, ClassType{Tag: list, Args: []Type{StarProjection}}}}, "Map<K, List<*>>"},
		{"unnamed tag", ClassType{Tag: LookupTag{ID: 7}}, "#7"},
		{"nullable type parameter", TypeParameterType{Name: "T", Nullable: true}, "T?"},
		{"error", NewErrorType("No type calculated for: %s", "x"), "<ERROR: No type calculated for: x>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	list := LookupTag{ID: 3, Name: "List"}
	renamed := LookupTag{ID: 3, Name: "pkg.List"}
	other := LookupTag{ID: 5, Name: "List"}
	bound := ClassType{Tag: LookupTag{ID: 9, Name: "Comparable"}}

	tests := []struct {
		name     string
		a, b     Type
		expected bool
	}{
		{"same class", ClassType{Tag: list}, ClassType{Tag: list}, true},
		{"identity is the id", ClassType{Tag: list}, ClassType{Tag: renamed}, true},
		{"different id", ClassType{Tag: list}, ClassType{Tag: other}, false},
		{"nullability differs", ClassType{Tag: list}, ClassType{Tag: list, Nullable: true}, false},
		{"arguments differ", ClassType{Tag: list, Args: []Type{StarProjection}}, ClassType{Tag: list}, false},
		{"with nullability", ClassType{Tag: list, Nullable: true}.WithNullability(false), ClassType{Tag: list}, true},
		{"bounds matter", TypeParameterType{Name: "T", Bounds: []Type{bound}}, TypeParameterType{Name: "T"}, false},
		{"star projections", StarProjection, StarProjection, true},
		{"errors by reason", NewErrorType("a"), ErrorType{Reason: "a"}, true},
		{"nil and nil", nil, nil, true},
		{"nil and class", nil, ClassType{Tag: list}, false},
		{"class and nil", ClassType{Tag: list}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.expected {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestKeysAreDistinctAcrossKinds(t *testing.T) {
	types := []Type{
		ClassType{Tag: LookupTag{ID: 1, Name: "T"}},
		TypeParameterType{Name: "T"},
		StarProjection,
		NewErrorType("T"),
	}
	seen := make(map[string]Type)
	for _, typ := range types {
		if prev, ok := seen[typ.Key()]; ok {
			t.Errorf("%v and %v share key %q", prev, typ, typ.Key())
		}
		seen[typ.Key()] = typ
	}
}

func TestSentinels(t *testing.T) {
	if !IsStarProjection(StarProjection) {
		t.Error("StarProjection is not recognised")
	}
	if IsStarProjection(TypeParameterType{Name: "*"}) {
		t.Error("type parameter named * taken for a star projection")
	}
	if !IsErrorType(NewErrorType("boom")) {
		t.Error("error type is not recognised")
	}
	if IsErrorType(ClassType{}) {
		t.Error("class type taken for an error")
	}
	if (LookupTag{}).IsValid() {
		t.Error("zero tag must be invalid")
	}
}
