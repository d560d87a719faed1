package manifest

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// pyprojectDoc is the subset of pyproject.toml the core reads: PEP 621's
// [project] table plus a Poetry [tool.poetry] table, unioned per spec.md
// §4.3 step 1.
type pyprojectDoc struct {
	Project struct {
		Name                 string              `toml:"name"`
		Version              string              `toml:"version"`
		Description          string              `toml:"description"`
		RequiresPython       string              `toml:"requires-python"`
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`

	Tool struct {
		Poetry struct {
			Dependencies    map[string]any    `toml:"dependencies"`
			DevDependencies map[string]any    `toml:"dev-dependencies"`
			Scripts         map[string]string `toml:"scripts"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// ParsePyProjectToml reads [project].dependencies (runtime) and every group
// under [project.optional-dependencies] (dev, tagged with the group name as
// description), then unions in a [tool.poetry] section when present.
func ParsePyProjectToml(data []byte) (runtime, dev []model.DependencyInfo, err error) {
	var doc pyprojectDoc

	if unmarshalErr := toml.Unmarshal(data, &doc); unmarshalErr != nil {
		return nil, nil, fmt.Errorf("parse pyproject.toml: %w", unmarshalErr)
	}

	for _, spec := range doc.Project.Dependencies {
		name, versionSpec := ParsePythonSpecifier(spec)
		if name == "" {
			continue
		}

		runtime = append(runtime, model.DependencyInfo{Name: name, VersionSpec: versionSpec, Kind: model.DependencyRuntime})
	}

	groups := make([]string, 0, len(doc.Project.OptionalDependencies))
	for group := range doc.Project.OptionalDependencies {
		groups = append(groups, group)
	}

	sort.Strings(groups)

	for _, group := range groups {
		start := len(dev)

		for _, spec := range doc.Project.OptionalDependencies[group] {
			name, versionSpec := ParsePythonSpecifier(spec)
			if name == "" {
				continue
			}

			dev = append(dev, model.DependencyInfo{
				Name:        name,
				VersionSpec: versionSpec,
				Kind:        model.DependencyOptional,
				Description: group,
			})
		}

		groupDeps := dev[start:]
		sort.Slice(groupDeps, func(i, j int) bool { return groupDeps[i].Name < groupDeps[j].Name })
	}

	delete(doc.Tool.Poetry.Dependencies, "python")

	poetryRuntime := toCargoDeps(doc.Tool.Poetry.Dependencies, model.DependencyRuntime)
	poetryDev := toCargoDeps(doc.Tool.Poetry.DevDependencies, model.DependencyDev)

	runtime = append(runtime, poetryRuntime...)
	dev = append(dev, poetryDev...)

	return runtime, dev, nil
}

// PyProjectRequiresPython returns [project].requires-python, empty if absent.
func PyProjectRequiresPython(data []byte) string {
	var doc pyprojectDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return ""
	}

	return doc.Project.RequiresPython
}

// PyProjectHasPoetry reports whether pyproject.toml's [tool.poetry] table
// lists any dependencies or scripts.
func PyProjectHasPoetry(data []byte) bool {
	var doc pyprojectDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return false
	}

	return len(doc.Tool.Poetry.Dependencies) > 0 || len(doc.Tool.Poetry.Scripts) > 0
}

// PyProjectPoetryScripts returns the keys of [tool.poetry.scripts], sorted.
func PyProjectPoetryScripts(data []byte) []string {
	var doc pyprojectDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil
	}

	scripts := make([]string, 0, len(doc.Tool.Poetry.Scripts))
	for name := range doc.Tool.Poetry.Scripts {
		scripts = append(scripts, name)
	}

	sort.Strings(scripts)

	return scripts
}
