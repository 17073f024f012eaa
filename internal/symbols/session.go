package symbols

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/funvibe/receivers/internal/typesystem"
)

// Session is the run-scoped arena of class-like declarations.
//
// Tags are handed out by Reserve before the declaration they point at exists,
// so forward and mutually recursive references need no ordering. Reads are
// safe from many goroutines; Define is expected during loading only.
type Session struct {
	id     uuid.UUID
	logger *slog.Logger

	mu      sync.RWMutex
	classes []*ClassSymbol // slot i holds ClassID(i+1); nil while pending
	names   []string
	byName  map[string]typesystem.LookupTag
}

type SessionOption func(*Session)

// WithLogger sets the logger used for declaration events.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		id:     uuid.New(),
		logger: slog.Default(),
		byName: make(map[string]typesystem.LookupTag),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID identifies the session in scope caches and logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Reserve returns the tag for name, allocating a pending slot on first use.
func (s *Session) Reserve(name string) typesystem.LookupTag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reserveLocked(name)
}

func (s *Session) reserveLocked(name string) typesystem.LookupTag {
	if tag, ok := s.byName[name]; ok {
		return tag
	}
	s.classes = append(s.classes, nil)
	s.names = append(s.names, name)
	tag := typesystem.LookupTag{ID: typesystem.ClassID(len(s.classes)), Name: name}
	s.byName[name] = tag
	return tag
}

// Define binds a declaration to a reserved tag. Defining the same slot twice
// or using a tag from another session is an internal invariant violation.
func (s *Session) Define(tag typesystem.LookupTag, class *ClassSymbol) *ClassSymbol {
	if class == nil {
		panic("symbols: Define called with nil class")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := int(tag.ID) - 1
	if !tag.IsValid() || idx >= len(s.classes) || s.names[idx] != tag.Name {
		panic(fmt.Sprintf("symbols: tag %s (#%d) does not belong to session %s", tag.Name, tag.ID, s.id))
	}
	if s.classes[idx] != nil {
		panic(fmt.Sprintf("symbols: class %s is already defined", tag.Name))
	}
	class.ID = tag.ID
	if class.Name == "" {
		class.Name = tag.Name
	}
	s.classes[idx] = class
	s.logger.Debug("class defined", "session", s.id, "class", class.Name, "kind", class.Kind.String(), "id", uint32(class.ID))
	return class
}

// Declare reserves and defines in one step.
func (s *Session) Declare(class *ClassSymbol) *ClassSymbol {
	return s.Define(s.Reserve(class.Name), class)
}

// Lookup finds the tag reserved under name.
func (s *Session) Lookup(name string) (typesystem.LookupTag, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tag, ok := s.byName[name]
	return tag, ok
}

// Resolve returns the declaration behind tag. Tags that are unknown or still
// pending resolve to nothing.
func (s *Session) Resolve(tag typesystem.LookupTag) (*ClassSymbol, bool) {
	if !tag.IsValid() {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := int(tag.ID) - 1
	if idx >= len(s.classes) {
		return nil, false
	}
	class := s.classes[idx]
	return class, class != nil
}

// Pending lists names that were referenced but never defined.
func (s *Session) Pending() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var pending []string
	for i, c := range s.classes {
		if c == nil {
			pending = append(pending, s.names[i])
		}
	}
	return pending
}

// Classes returns every defined declaration in definition-slot order.
func (s *Session) Classes() []*ClassSymbol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*ClassSymbol, 0, len(s.classes))
	for _, c := range s.classes {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// MemberNames returns the sorted set of names declared inside any class.
func (s *Session) MemberNames() []string {
	seen := make(map[string]bool)
	for _, c := range s.Classes() {
		for _, f := range c.Functions {
			seen[f.Name] = true
		}
		for _, p := range c.Properties {
			seen[p.Name] = true
		}
		for _, tag := range c.Classifiers {
			if nested, ok := s.Resolve(tag); ok {
				seen[nested.ShortName()] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
