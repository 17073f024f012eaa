package scopes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// scopeLookupsTotal counts scope session lookups.
	// Labels: result (hit, miss)
	scopeLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "receivers",
		Subsystem: "scope_session",
		Name:      "lookups_total",
		Help:      "Scope session lookups by cache result",
	}, []string{"result"})

	// scopeAbsentTotal counts derivations that produced no scope.
	scopeAbsentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "receivers",
		Subsystem: "scope_session",
		Name:      "absent_total",
		Help:      "Derivations whose type has no member scope",
	})
)

func recordLookup(hit bool) {
	if hit {
		scopeLookupsTotal.WithLabelValues("hit").Inc()
		return
	}
	scopeLookupsTotal.WithLabelValues("miss").Inc()
}
