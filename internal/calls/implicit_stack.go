package calls

import (
	"fmt"

	"github.com/funvibe/receivers/internal/typesystem"
)

// ImplicitReceiverStack holds the implicit receivers of the lexical scopes
// being resolved, outermost at index 0. It is the only owner allowed to
// narrow its receivers and is confined to one resolving goroutine.
type ImplicitReceiverStack struct {
	entries []stackEntry
}

type stackEntry struct {
	label        string
	receiver     ImplicitReceiver
	originalType typesystem.Type // set while narrowed
}

func NewImplicitReceiverStack() *ImplicitReceiverStack {
	return &ImplicitReceiverStack{}
}

// Add pushes a receiver entering scope. The label is the name used by
// labeled this references; an empty label falls back to the bound declaration.
func (s *ImplicitReceiverStack) Add(label string, receiver ImplicitReceiver) {
	if receiver == nil {
		panic("calls: cannot push a nil implicit receiver")
	}
	if label == "" {
		label = receiver.boundDeclaration().SymbolName()
	}
	s.entries = append(s.entries, stackEntry{label: label, receiver: receiver})
}

// Pop removes the innermost receiver, restoring its type if it was narrowed.
func (s *ImplicitReceiverStack) Pop() (ImplicitReceiver, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	last := len(s.entries) - 1
	s.RestoreOriginalType(last)
	e := s.entries[last]
	s.entries = s.entries[:last]
	return e.receiver, true
}

func (s *ImplicitReceiverStack) Len() int { return len(s.entries) }

// At returns the receiver at index, counted from the outermost.
func (s *ImplicitReceiverStack) At(index int) ImplicitReceiver {
	s.checkIndex(index)
	return s.entries[index].receiver
}

// Get returns the innermost receiver registered under label.
func (s *ImplicitReceiverStack) Get(label string) (ImplicitReceiver, bool) {
	if i, ok := s.IndexOf(label); ok {
		return s.entries[i].receiver, true
	}
	return nil, false
}

// IndexOf returns the index of the innermost receiver registered under label.
func (s *ImplicitReceiverStack) IndexOf(label string) (int, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].label == label {
			return i, true
		}
	}
	return -1, false
}

// Receivers lists receivers innermost first.
func (s *ImplicitReceiverStack) Receivers() []ImplicitReceiver {
	out := make([]ImplicitReceiver, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i].receiver)
	}
	return out
}

// DispatchReceivers lists the class receivers innermost first.
func (s *ImplicitReceiverStack) DispatchReceivers() []*ImplicitDispatchReceiverValue {
	var out []*ImplicitDispatchReceiverValue
	for i := len(s.entries) - 1; i >= 0; i-- {
		if d, ok := s.entries[i].receiver.(*ImplicitDispatchReceiverValue); ok {
			out = append(out, d)
		}
	}
	return out
}

// LastDispatchReceiver returns the innermost class receiver.
func (s *ImplicitReceiverStack) LastDispatchReceiver() (*ImplicitDispatchReceiverValue, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if d, ok := s.entries[i].receiver.(*ImplicitDispatchReceiverValue); ok {
			return d, true
		}
	}
	return nil, false
}

// ReplaceReceiverType narrows the receiver at index to t. The type it had
// before the first narrowing is remembered for RestoreOriginalType.
func (s *ImplicitReceiverStack) ReplaceReceiverType(index int, t typesystem.Type) {
	s.checkIndex(index)
	e := &s.entries[index]
	if e.originalType == nil {
		e.originalType = e.receiver.Type()
	}
	e.receiver.replaceType(t)
	if typesystem.Equal(e.originalType, t) {
		e.originalType = nil
	}
}

// RestoreOriginalType undoes every narrowing of the receiver at index.
func (s *ImplicitReceiverStack) RestoreOriginalType(index int) {
	s.checkIndex(index)
	e := &s.entries[index]
	if e.originalType == nil {
		return
	}
	e.receiver.replaceType(e.originalType)
	e.originalType = nil
}

// IsNarrowed reports whether the receiver at index currently has a narrowed type.
func (s *ImplicitReceiverStack) IsNarrowed(index int) bool {
	s.checkIndex(index)
	return s.entries[index].originalType != nil
}

func (s *ImplicitReceiverStack) checkIndex(index int) {
	if index < 0 || index >= len(s.entries) {
		panic(fmt.Sprintf("calls: implicit receiver index %d out of range [0, %d)", index, len(s.entries)))
	}
}
