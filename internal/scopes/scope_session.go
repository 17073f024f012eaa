package scopes

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/funvibe/receivers/internal/symbols"
	"github.com/funvibe/receivers/internal/typesystem"
)

// ScopeSession caches derived scopes per (type, session).
//
// It is shared by every worker of a run: lookups are read-mostly, a miss is
// computed once even under contention, and an entry is never replaced after
// it is stored. Absent scopes are cached too, unless they stem from a
// declaration that is still pending.
type ScopeSession struct {
	entries sync.Map // scopeKey -> scopeEntry
	group   singleflight.Group
	logger  *slog.Logger
}

type scopeKey struct {
	session uuid.UUID
	typ     string
}

func (k scopeKey) String() string {
	return k.session.String() + "|" + k.typ
}

type scopeEntry struct {
	scope Scope
	ok    bool
	final bool
}

type ScopeSessionOption func(*ScopeSession)

// WithScopeLogger sets the logger used for derivation events.
func WithScopeLogger(logger *slog.Logger) ScopeSessionOption {
	return func(ss *ScopeSession) {
		if logger != nil {
			ss.logger = logger
		}
	}
}

func NewScopeSession(opts ...ScopeSessionOption) *ScopeSession {
	ss := &ScopeSession{logger: slog.Default()}
	for _, opt := range opts {
		opt(ss)
	}
	return ss
}

// GetOrCompute returns the cached scope for (t, session), deriving it with
// compute on a miss. A nil session or type has no scope.
func (ss *ScopeSession) GetOrCompute(t typesystem.Type, session *symbols.Session, compute func() (Scope, bool)) (Scope, bool) {
	scope, ok, _ := ss.getOrCompute(t, session, func() (Scope, bool, bool) {
		scope, ok := compute()
		return scope, ok, true
	})
	return scope, ok
}

// getOrCompute stores the result of compute only when compute reports it as
// final; other results are handed back and derived again on the next lookup.
func (ss *ScopeSession) getOrCompute(t typesystem.Type, session *symbols.Session, compute func() (Scope, bool, bool)) (Scope, bool, bool) {
	if session == nil || t == nil {
		return nil, false, true
	}
	key := scopeKey{session: session.ID(), typ: t.Key()}
	if v, ok := ss.entries.Load(key); ok {
		recordLookup(true)
		e := v.(scopeEntry)
		return e.scope, e.ok, true
	}
	recordLookup(false)

	v, _, _ := ss.group.Do(key.String(), func() (any, error) {
		if v, ok := ss.entries.Load(key); ok {
			return v, nil
		}
		scope, ok, final := compute()
		if !ok {
			scopeAbsentTotal.Inc()
		}
		ss.logger.Debug("scope derived", "type", t.String(), "session", key.session, "present", ok, "final", final)
		e := scopeEntry{scope: scope, ok: ok, final: final}
		if !final {
			return e, nil
		}
		actual, _ := ss.entries.LoadOrStore(key, e)
		return actual, nil
	})
	e := v.(scopeEntry)
	return e.scope, e.ok, e.final
}

// Len reports the number of cached entries.
func (ss *ScopeSession) Len() int {
	n := 0
	ss.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
