package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type trace struct {
	steps []string
	err   bool
}

func step(name string, fail bool) Processor[*trace] {
	return ProcessorFunc[*trace](func(ctx *trace) *trace {
		ctx.steps = append(ctx.steps, name)
		if fail {
			ctx.err = true
		}
		return ctx
	})
}

func TestRunKeepsOrder(t *testing.T) {
	p := New(step("read", false), step("parse", false), step("verify", false))
	got := p.Run(&trace{})
	assert.Equal(t, []string{"read", "parse", "verify"}, got.steps)
}

func TestRunContinuesAfterErrors(t *testing.T) {
	p := New(step("read", true), step("parse", false))
	got := p.Run(&trace{})
	assert.True(t, got.err)
	assert.Equal(t, []string{"read", "parse"}, got.steps)
}

func TestRunEmpty(t *testing.T) {
	ctx := &trace{}
	assert.Same(t, ctx, New[*trace]().Run(ctx))
}
