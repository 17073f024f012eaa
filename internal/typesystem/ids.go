package typesystem

import "fmt"

// ClassID identifies a class-like declaration inside a session arena.
type ClassID uint32

// NoClassID marks the absence of a class reference.
const NoClassID ClassID = 0

// IsValid reports whether the ID refers to an allocated declaration slot.
func (id ClassID) IsValid() bool { return id != NoClassID }

// LookupTag is a lazy reference to a class-like declaration.
// Identity is the ID; Name is carried for rendering only. A tag can be handed
// out before its declaration is defined, which lets mutually recursive
// classes reference each other without any declaration order.
type LookupTag struct {
	ID   ClassID
	Name string
}

// IsValid reports whether the tag points at an arena slot.
func (t LookupTag) IsValid() bool { return t.ID.IsValid() }

func (t LookupTag) String() string {
	if t.Name == "" {
		return fmt.Sprintf("#%d", t.ID)
	}
	return t.Name
}
