// Package manifest parses heterogeneous manifest formats (Cargo TOML,
// package.json, Python requirements.txt, Python pyproject.toml) into the
// shared DependencyInfo model.
package manifest

import "strings"

// versionOperators are tried in order against a Python dependency specifier,
// per spec.md §4.4.
var versionOperators = []string{">=", "<=", "==", "!=", ">", "<", "~=", "^"}

// ParsePythonSpecifier splits a Python dependency specifier such as
// "Django>=4.0.0" or "black[jupyter]" into (name, versionSpec), applying the
// version-operator table in order. versionSpec is "*" when unspecified.
func ParsePythonSpecifier(spec string) (name, versionSpec string) {
	for _, op := range versionOperators {
		if idx := strings.Index(spec, op); idx >= 0 {
			name = strings.TrimSpace(spec[:idx])
			versionSpec = strings.TrimSpace(spec[idx+len(op):])

			return name, versionSpec
		}
	}

	name = spec
	if bracket := strings.IndexByte(name, '['); bracket >= 0 {
		name = name[:bracket]
	}

	return strings.TrimSpace(name), "*"
}
