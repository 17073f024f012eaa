package utils

import "testing"

func TestExtractModuleName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/decls/shapes.yaml", "shapes"},
		{"shapes.yml", "shapes"},
		{"/decls/shapes", "shapes"},
		{"/decls/notes.txt", "notes.txt"},
	}
	for _, tt := range tests {
		if got := ExtractModuleName(tt.path); got != tt.expected {
			t.Errorf("ExtractModuleName(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestGetModuleDir(t *testing.T) {
	if got := GetModuleDir("/decls/shapes.yaml"); got != "/decls" {
		t.Errorf("GetModuleDir(file) = %q", got)
	}
	if got := GetModuleDir("/decls"); got != "/decls" {
		t.Errorf("GetModuleDir(dir) = %q", got)
	}
}
