package symbols

import (
	"github.com/funvibe/receivers/internal/typesystem"
)

// Resolve turns a lazy tag into its declaration on demand.
func Resolve(tag typesystem.LookupTag, session *Session) (*ClassSymbol, bool) {
	if session == nil {
		return nil, false
	}
	return session.Resolve(tag)
}

// ResolveType resolves the class behind a class type.
func ResolveType(t typesystem.Type, session *Session) (*ClassSymbol, bool) {
	ct, ok := t.(typesystem.ClassType)
	if !ok {
		return nil, false
	}
	return Resolve(ct.Tag, session)
}

// SuperclassChain lists the supertypes of class.
//
// The direct supertypes of a declaration come first, then (when transitive)
// the supertypes of each of them in turn, so the list runs from nearest to
// farthest. With includeInterfaces unset, supertypes resolving to interfaces
// are skipped and not walked through; so are supertypes that cannot be
// resolved, since their kind is unknown. Every declaration is visited at most
// once, which also terminates cyclic hierarchies.
func SuperclassChain(class *ClassSymbol, includeInterfaces, transitive bool, session *Session) []typesystem.Type {
	if class == nil {
		return nil
	}
	var out []typesystem.Type
	visited := map[typesystem.ClassID]bool{class.ID: true}
	collectSupertypes(class, includeInterfaces, transitive, session, visited, &out)
	return out
}

func collectSupertypes(class *ClassSymbol, includeInterfaces, transitive bool, session *Session, visited map[typesystem.ClassID]bool, out *[]typesystem.Type) {
	var next []*ClassSymbol
	for _, st := range class.Supertypes {
		ct, ok := st.(typesystem.ClassType)
		if !ok {
			continue
		}
		super, resolved := Resolve(ct.Tag, session)
		if !includeInterfaces && (!resolved || super.Kind == Interface) {
			continue
		}
		if visited[ct.Tag.ID] {
			continue
		}
		visited[ct.Tag.ID] = true
		*out = append(*out, ct)
		if resolved {
			next = append(next, super)
		}
	}
	if !transitive {
		return
	}
	for _, super := range next {
		collectSupertypes(super, includeInterfaces, transitive, session, visited, out)
	}
}
