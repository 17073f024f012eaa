// Package scopes models member-lookup scopes and their derivation from types.
//
// A Scope is enumerated by name through a visitor that answers Next or Stop.
// Enumeration of a scope may be arbitrarily expensive, so every decorating or
// composing scope hands the visitor's answer back unchanged and stops walking
// its delegates as soon as a Stop is seen.
package scopes

import (
	"github.com/funvibe/receivers/internal/symbols"
)

// ProcessorAction is the visitor's continue/stop signal.
type ProcessorAction int

const (
	Next ProcessorAction = iota
	Stop
)

func (a ProcessorAction) Stopped() bool { return a == Stop }

func (a ProcessorAction) String() string {
	if a == Stop {
		return "STOP"
	}
	return "NEXT"
}

type ClassifierProcessor func(*symbols.ClassSymbol) ProcessorAction

type CallableProcessor func(*symbols.CallableSymbol) ProcessorAction

// Scope is a name-keyed view over declarations.
type Scope interface {
	ProcessClassifiersByName(name string, processor ClassifierProcessor) ProcessorAction
	ProcessFunctionsByName(name string, processor CallableProcessor) ProcessorAction
	ProcessPropertiesByName(name string, processor CallableProcessor) ProcessorAction
}

// CollectClassifiers gathers every classifier named name, in enumeration order.
func CollectClassifiers(scope Scope, name string) []*symbols.ClassSymbol {
	var out []*symbols.ClassSymbol
	scope.ProcessClassifiersByName(name, func(c *symbols.ClassSymbol) ProcessorAction {
		out = append(out, c)
		return Next
	})
	return out
}

// CollectFunctions gathers every function named name, in enumeration order.
func CollectFunctions(scope Scope, name string) []*symbols.CallableSymbol {
	var out []*symbols.CallableSymbol
	scope.ProcessFunctionsByName(name, func(f *symbols.CallableSymbol) ProcessorAction {
		out = append(out, f)
		return Next
	})
	return out
}

// CollectProperties gathers every property named name, in enumeration order.
func CollectProperties(scope Scope, name string) []*symbols.CallableSymbol {
	var out []*symbols.CallableSymbol
	scope.ProcessPropertiesByName(name, func(p *symbols.CallableSymbol) ProcessorAction {
		out = append(out, p)
		return Next
	})
	return out
}

// FirstFunction returns the first function named name and stops enumeration there.
func FirstFunction(scope Scope, name string) (*symbols.CallableSymbol, bool) {
	var found *symbols.CallableSymbol
	scope.ProcessFunctionsByName(name, func(f *symbols.CallableSymbol) ProcessorAction {
		found = f
		return Stop
	})
	return found, found != nil
}
