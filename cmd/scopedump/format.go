package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/funvibe/receivers/internal/scopes"
	"github.com/funvibe/receivers/internal/symbols"
)

const (
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiReset = "\033[0m"
)

type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(w io.Writer, color bool) *printer {
	return &printer{w: w, color: color}
}

func (p *printer) style(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

func (p *printer) header(title string) {
	fmt.Fprintln(p.w, p.style(ansiBold, "== "+title))
}

func (p *printer) subheader(i int) {
	fmt.Fprintln(p.w, p.style(ansiBold, fmt.Sprintf("-- #%d", i)))
}

func (p *printer) absent() {
	fmt.Fprintln(p.w, p.style(ansiDim, "  (no scope)"))
}

func (p *printer) raw(s string) {
	fmt.Fprint(p.w, s)
}

// scope prints every member of scope, probing it with the names declared
// anywhere in the session.
func (p *printer) scope(scope scopes.Scope, session *symbols.Session) {
	empty := true
	for _, name := range session.MemberNames() {
		for _, c := range scopes.CollectClassifiers(scope, name) {
			p.member("class", c.ShortName(), c.Name, c.IsInner, "inner")
			empty = false
		}
		for _, f := range scopes.CollectFunctions(scope, name) {
			p.member("fun", f.Name, ownerName(f, session), f.IsStatic, "static")
			empty = false
		}
		for _, prop := range scopes.CollectProperties(scope, name) {
			p.member("val", prop.Name, ownerName(prop, session), prop.IsStatic, "static")
			empty = false
		}
	}
	if empty {
		fmt.Fprintln(p.w, p.style(ansiDim, "  (empty)"))
	}
}

func (p *printer) member(kind, name, origin string, flag bool, flagName string) {
	line := fmt.Sprintf("  %-5s %s", kind, name)
	if flag {
		line += " [" + flagName + "]"
	}
	fmt.Fprintln(p.w, line+p.style(ansiDim, "  ("+origin+")"))
}

func ownerName(c *symbols.CallableSymbol, session *symbols.Session) string {
	if owner, ok := symbols.Resolve(c.Owner, session); ok {
		return owner.Name
	}
	return "top-level"
}

func (p *printer) metrics() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		fmt.Fprintf(p.w, "metrics unavailable: %s\n", err)
		return
	}
	var lines []string
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "receivers_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	p.header("metrics")
	for _, l := range lines {
		fmt.Fprintln(p.w, "  "+l)
	}
}
