// Package classify provides pure, I/O-free classification of filenames into
// config/documentation/source categories, and of directory basenames into
// source/test roles.
package classify

import "strings"

// configFiles is the closed set of exact filename matches recognized as
// project configuration.
var configFiles = map[string]struct{}{
	"package.json":          {},
	"Cargo.toml":            {},
	"pyproject.toml":        {},
	"requirements.txt":      {},
	"go.mod":                {},
	"tsconfig.json":         {},
	"vite.config.js":        {},
	"vite.config.ts":        {},
	"webpack.config.js":     {},
	".eslintrc":             {},
	".eslintrc.json":        {},
	".prettierrc":           {},
	"babel.config.js":       {},
	"jest.config.js":        {},
	"vitest.config.ts":      {},
	".gitignore":            {},
	"Dockerfile":            {},
	"docker-compose.yml":    {},
	"docker-compose.yaml":   {},
	"Makefile":              {},
	".env":                  {},
}

// sourceExtensions is the closed set of lowercased extensions (without the
// leading dot) covering every language implemented by an analyzer.
var sourceExtensions = map[string]struct{}{
	"rs": {}, "ts": {}, "tsx": {}, "js": {}, "jsx": {}, "py": {}, "go": {},
	"java": {}, "kt": {}, "swift": {}, "c": {}, "cpp": {}, "cc": {}, "cxx": {},
	"h": {}, "hpp": {}, "cs": {}, "php": {}, "rb": {}, "scala": {}, "clj": {},
	"hs": {}, "ml": {}, "elm": {}, "dart": {}, "vue": {}, "svelte": {},
}

// sourceDirNames map directory basenames to the ProjectStructure field they
// populate; names absent from either map are simply enqueued for descent.
var sourceDirNames = map[string]struct{}{
	"src": {}, "lib": {}, "app": {}, "source": {}, "components": {},
}

var testDirNames = map[string]struct{}{
	"test": {}, "tests": {}, "__tests__": {}, "spec": {}, "specs": {},
}

// IsConfig reports whether name is an exact match against the closed
// configuration-file set.
func IsConfig(name string) bool {
	_, ok := configFiles[name]

	return ok
}

// IsDocumentation reports whether name looks like project documentation.
func IsDocumentation(name string) bool {
	lower := strings.ToLower(name)

	if strings.HasPrefix(lower, "readme") {
		return true
	}

	if strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".rst") {
		return true
	}

	if strings.HasSuffix(lower, ".txt") && (strings.Contains(lower, "doc") || strings.Contains(lower, "readme")) {
		return true
	}

	return false
}

// Extension returns the lowercased extension of name, without the leading
// dot. Returns "" when name has no extension.
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 || idx == len(name)-1 {
		return ""
	}

	return strings.ToLower(name[idx+1:])
}

// IsSource reports whether name's extension is in the closed source-file
// extension set.
func IsSource(name string) bool {
	_, ok := sourceExtensions[Extension(name)]

	return ok
}

// DirRole classifies a directory basename as a source directory, a test
// directory, or neither.
type DirRole int

// Directory roles.
const (
	DirRoleNone DirRole = iota
	DirRoleSource
	DirRoleTest
)

// ClassifyDir returns the directory role for basename.
func ClassifyDir(basename string) DirRole {
	if _, ok := sourceDirNames[basename]; ok {
		return DirRoleSource
	}

	if _, ok := testDirNames[basename]; ok {
		return DirRoleTest
	}

	return DirRoleNone
}
