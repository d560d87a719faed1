package manifest

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// ParseCargoToml reads a Cargo.toml's [dependencies] and [dev-dependencies]
// tables. A string value is the version; a table value's "version" key (or
// "*" if absent) is the version.
func ParseCargoToml(data []byte) (runtime, dev []model.DependencyInfo, err error) {
	var doc struct {
		Dependencies    map[string]any `toml:"dependencies"`
		DevDependencies map[string]any `toml:"dev-dependencies"`
		Bin             any            `toml:"bin"`
		Lib             any            `toml:"lib"`
	}

	if unmarshalErr := toml.Unmarshal(data, &doc); unmarshalErr != nil {
		return nil, nil, fmt.Errorf("parse Cargo.toml: %w", unmarshalErr)
	}

	runtime = toCargoDeps(doc.Dependencies, model.DependencyRuntime)
	dev = toCargoDeps(doc.DevDependencies, model.DependencyDev)

	return runtime, dev, nil
}

// CargoHasBinTarget reports whether a parsed Cargo.toml declares a [bin]
// target.
func CargoHasBinTarget(data []byte) bool {
	var doc struct {
		Bin any `toml:"bin"`
	}

	if err := toml.Unmarshal(data, &doc); err != nil {
		return false
	}

	return doc.Bin != nil
}

// CargoHasLibTarget reports whether a parsed Cargo.toml declares a [lib]
// target.
func CargoHasLibTarget(data []byte) bool {
	var doc struct {
		Lib any `toml:"lib"`
	}

	if err := toml.Unmarshal(data, &doc); err != nil {
		return false
	}

	return doc.Lib != nil
}

func toCargoDeps(table map[string]any, kind model.DependencyKind) []model.DependencyInfo {
	deps := make([]model.DependencyInfo, 0, len(table))

	for name, value := range table {
		deps = append(deps, model.DependencyInfo{
			Name:        name,
			VersionSpec: extractVersionFromTomlValue(value),
			Kind:        kind,
		})
	}

	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })

	return deps
}

// extractVersionFromTomlValue implements analysis.rs's
// extract_version_from_toml_value: a bare string value is the version; a
// table value's "version" key (or "*" if absent) is the version.
func extractVersionFromTomlValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		if version, ok := v["version"].(string); ok {
			return version
		}

		return "*"
	default:
		return "*"
	}
}
