package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// ParseRequirementsTxt parses a Python requirements.txt: blank lines,
// "#"-comments, and "-"-prefixed options are skipped; every remaining line
// is a dependency specifier run through the version-operator table. Every
// entry is a runtime dependency; requirements.txt has no dev-dependency
// concept.
func ParseRequirementsTxt(data []byte) (runtime []model.DependencyInfo, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		if line == "" {
			continue
		}

		name, versionSpec := ParsePythonSpecifier(line)
		if name == "" {
			continue
		}

		runtime = append(runtime, model.DependencyInfo{
			Name:        name,
			VersionSpec: versionSpec,
			Kind:        model.DependencyRuntime,
		})
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return runtime, fmt.Errorf("scan requirements.txt: %w", scanErr)
	}

	return runtime, nil
}
