package utils

import (
	"path/filepath"

	"github.com/funvibe/receivers/internal/config"
)

// ExtractModuleName derives a module name from a file path.
// It takes the base filename and removes any recognized declaration extension.
func ExtractModuleName(path string) string {
	name := filepath.Base(path)
	return config.TrimDeclarationExt(name)
}

// GetModuleDir returns the directory context for a module path.
// If the path points to a declaration file, returns the file's directory.
// Otherwise the path is taken to be the module directory itself.
func GetModuleDir(path string) string {
	if config.HasDeclarationExt(path) {
		return filepath.Dir(path)
	}
	return path
}
