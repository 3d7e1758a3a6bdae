package dispatch

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Environment describes the additions made to a child process environment.
type Environment struct {
	// ToolDirs are prepended to PATH in order.
	ToolDirs []string
	// DataDirVar is set to DataDir when both are non-empty.
	DataDir    string
	DataDirVar string

	goos string
}

// DefaultEnvironment returns the layout shipped with the application:
// poppler and tesseract directories on PATH and TESSDATA_PREFIX pointing at
// the bundled language data.
func DefaultEnvironment(appDir string) Environment {
	tesseract := filepath.Join(appDir, "tesseract")
	return Environment{
		ToolDirs:   []string{filepath.Join(appDir, "poppler"), tesseract},
		DataDir:    filepath.Join(tesseract, "tessdata"),
		DataDirVar: "TESSDATA_PREFIX",
	}
}

// Build returns a copy of base with PATH and the data-dir variable adjusted.
// base itself is not modified.
func (e Environment) Build(base []string) []string {
	goos := e.goos
	if goos == "" {
		goos = runtime.GOOS
	}
	sep := ":"
	if goos == "windows" {
		sep = ";"
	}

	out := make([]string, 0, len(base)+2)
	pathKey, pathVal, havePath := "PATH", "", false
	for _, kv := range base {
		k, v, _ := strings.Cut(kv, "=")
		switch {
		case isPathKey(k, goos):
			pathKey, pathVal, havePath = k, v, true
			continue
		case e.DataDirVar != "" && e.DataDir != "" && sameKey(k, e.DataDirVar, goos):
			continue
		}
		out = append(out, kv)
	}

	parts := append([]string{}, e.ToolDirs...)
	if havePath && pathVal != "" {
		parts = append(parts, pathVal)
	}
	if len(parts) > 0 {
		out = append(out, pathKey+"="+strings.Join(parts, sep))
	}
	if e.DataDirVar != "" && e.DataDir != "" {
		out = append(out, e.DataDirVar+"="+e.DataDir)
	}
	return out
}

func isPathKey(k, goos string) bool {
	return sameKey(k, "PATH", goos)
}

// Variable names are case-insensitive on Windows.
func sameKey(a, b, goos string) bool {
	if goos == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
