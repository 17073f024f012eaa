package modules

import (
	"github.com/funvibe/receivers/internal/symbols"
)

// Module is a loaded declaration module: one file or a directory of files
// whose classes share a single session.
type Module struct {
	Name    string
	Dir     string
	Files   []string
	Session *symbols.Session
}

// Class returns the declaration registered under name.
func (m *Module) Class(name string) (*symbols.ClassSymbol, bool) {
	tag, ok := m.Session.Lookup(name)
	if !ok {
		return nil, false
	}
	return m.Session.Resolve(tag)
}

// File is the YAML schema of a declaration file.
type File struct {
	// Package is informational; files of one directory may use different packages.
	Package string      `yaml:"package,omitempty"`
	Classes []ClassDecl `yaml:"classes"`
}

// ClassDecl declares one class-like declaration.
type ClassDecl struct {
	// Name is the session-unique name; nested classes use "Outer.Inner".
	Name string `yaml:"name"`

	// Kind is class, interface, object or companion. Defaults to class.
	Kind string `yaml:"kind,omitempty"`

	TypeParams []string `yaml:"type_params,omitempty"`

	// Supertypes are type expressions such as "Base", "List<*>" or "Box<T>".
	Supertypes []string `yaml:"supertypes,omitempty"`

	// Inner marks a nested class that captures an outer instance.
	Inner bool `yaml:"inner,omitempty"`

	// Companion names the companion object declaration.
	Companion string `yaml:"companion,omitempty"`

	// Classifiers names the nested classes.
	Classifiers []string `yaml:"classifiers,omitempty"`

	Functions  []CallableDecl `yaml:"functions,omitempty"`
	Properties []CallableDecl `yaml:"properties,omitempty"`
}

// CallableDecl declares a function or a property.
type CallableDecl struct {
	Name   string `yaml:"name"`
	Static bool   `yaml:"static,omitempty"`
	// Receiver is the extension receiver type expression, if any.
	Receiver string `yaml:"receiver,omitempty"`
	Returns  string `yaml:"returns,omitempty"`
}
