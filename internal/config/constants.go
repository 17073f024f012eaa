package config

import "strings"

// DeclarationFileExtensions are all recognized declaration module extensions
var DeclarationFileExtensions = []string{".yaml", ".yml"}

// Defaults for Options
const (
	DefaultLogLevel  = "info"
	DefaultColorMode = "auto"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Label used for the implicit receiver of a class when none is written.
const ImplicitThisLabel = "this"

// HasDeclarationExt reports whether name ends with a recognized declaration extension.
func HasDeclarationExt(name string) bool {
	for _, ext := range DeclarationFileExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// TrimDeclarationExt removes a recognized declaration extension from name.
func TrimDeclarationExt(name string) string {
	for _, ext := range DeclarationFileExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}
