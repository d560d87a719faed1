package manifest

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// ParseGoMod extracts the `go` directive version and every module path
// inside a `require (...)` block (or a single-line `require foo v1`), all
// treated as runtime dependencies since go.mod has no dev-dependency
// concept. There is no TOML/JSON structure to delegate to here, so this
// scans line by line like requirements.txt's parser.
func ParseGoMod(data []byte) (goVersion string, deps []model.DependencyInfo) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	inRequireBlock := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "go "):
			goVersion = strings.TrimSpace(strings.TrimPrefix(line, "go "))
		case strings.HasPrefix(line, "require ("):
			inRequireBlock = true
		case inRequireBlock && line == ")":
			inRequireBlock = false
		case inRequireBlock:
			if dep, ok := parseGoModRequireLine(line); ok {
				deps = append(deps, dep)
			}
		case strings.HasPrefix(line, "require "):
			if dep, ok := parseGoModRequireLine(strings.TrimPrefix(line, "require ")); ok {
				deps = append(deps, dep)
			}
		}
	}

	return goVersion, deps
}

func parseGoModRequireLine(line string) (model.DependencyInfo, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "//") {
		return model.DependencyInfo{}, false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return model.DependencyInfo{}, false
	}

	return model.DependencyInfo{
		Name:        fields[0],
		VersionSpec: fields[1],
		Kind:        model.DependencyRuntime,
	}, true
}
