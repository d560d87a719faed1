package manifest

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// packageJSONDoc is the subset of package.json the core cares about. Every
// other field is ignored, per spec.md §4.4.
type packageJSONDoc struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// ParsePackageJSON reads package.json's dependencies and devDependencies
// objects into the shared dependency model.
func ParsePackageJSON(data []byte) (runtime, dev []model.DependencyInfo, err error) {
	var doc packageJSONDoc

	if unmarshalErr := json.Unmarshal(data, &doc); unmarshalErr != nil {
		return nil, nil, fmt.Errorf("parse package.json: %w", unmarshalErr)
	}

	runtime = toPackageJSONDeps(doc.Dependencies, model.DependencyRuntime)
	dev = toPackageJSONDeps(doc.DevDependencies, model.DependencyDev)

	return runtime, dev, nil
}

// PackageJSONScripts returns the keys of package.json's "scripts" object,
// used by the Build-System Detector.
func PackageJSONScripts(data []byte) ([]string, error) {
	var doc packageJSONDoc

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse package.json scripts: %w", err)
	}

	scripts := make([]string, 0, len(doc.Scripts))
	for name := range doc.Scripts {
		scripts = append(scripts, name)
	}

	sort.Strings(scripts)

	return scripts, nil
}

func toPackageJSONDeps(table map[string]string, kind model.DependencyKind) []model.DependencyInfo {
	deps := make([]model.DependencyInfo, 0, len(table))

	for name, version := range table {
		deps = append(deps, model.DependencyInfo{Name: name, VersionSpec: version, Kind: kind})
	}

	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })

	return deps
}
