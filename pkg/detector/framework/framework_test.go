package framework_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/framework"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

func TestDetectFromDependencies_Python(t *testing.T) {
	t.Parallel()

	deps := []model.DependencyInfo{
		{Name: "django", Kind: model.DependencyRuntime},
		{Name: "pytest", Kind: model.DependencyDev},
	}

	found := framework.DetectFromDependencies(framework.PythonTable, deps)

	names := make([]string, 0, len(found))
	for _, f := range found {
		names = append(names, f.Name)
	}

	assert.ElementsMatch(t, []string{"Django", "Pytest"}, names)
}

func TestDetectFromDependencies_NoMatches(t *testing.T) {
	t.Parallel()

	found := framework.DetectFromDependencies(framework.RustTable, []model.DependencyInfo{{Name: "serde"}})
	assert.Empty(t, found)
}
