package detector_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestDetect_GoProject_ReportsLanguageAndBuildSystem(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/proj/go.mod", "module example.com/proj\n\ngo 1.24\n\nrequire github.com/spf13/cobra v1.9.1\n")
	writeFile(t, fs, "/proj/main.go", "package main\n\nfunc main() {}\n")
	writeFile(t, fs, "/proj/Makefile", "build:\n\tgo build ./...\n")

	profile, err := detector.Detect(context.Background(), fs, "/proj", detector.Config{})
	require.NoError(t, err)
	require.NotNil(t, profile)

	primary := profile.PrimaryLanguage()
	require.NotNil(t, primary)
	assert.Equal(t, model.LanguageGo, primary.Language.Kind)
	assert.Equal(t, model.BuildSystemMake, profile.BuildSystem.Kind)
	assert.Equal(t, 3, profile.Structure.TotalFiles)
	assert.Nil(t, profile.Git)
}

func TestDetect_DependencyGraphFromGoModManifest(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/proj/go.mod", "module example.com/proj\n\ngo 1.24\n\nrequire github.com/spf13/cobra v1.9.1\n")
	writeFile(t, fs, "/proj/main.go", "package main\n\nfunc main() {}\n")

	profile, err := detector.Detect(context.Background(), fs, "/proj", detector.Config{})
	require.NoError(t, err)

	require.NotEmpty(t, profile.Dependencies.Runtime)
	assert.Equal(t, len(profile.Dependencies.Runtime)+len(profile.Dependencies.Dev), profile.Dependencies.TotalCount)
}

func TestDetect_EnableGitAnalysisFalse_SkipsGit(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/proj/main.go", "package main\n\nfunc main() {}\n")

	profile, err := detector.Detect(context.Background(), fs, "/proj", detector.Config{EnableGitAnalysis: false})
	require.NoError(t, err)
	assert.Nil(t, profile.Git)
}

func TestDetect_RootUnreadable_ReturnsDetectorError(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	_, err := detector.Detect(context.Background(), fs, "/does/not/exist", detector.Config{})
	require.Error(t, err)

	var detErr *detector.DetectorError
	require.ErrorAs(t, err, &detErr)
	assert.Equal(t, detector.ErrorKindRootUnreadable, detErr.Kind)
}

func TestDetect_CancelledContext_ReturnsCancelledError(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/proj/main.go", "package main\n\nfunc main() {}\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := detector.Detect(ctx, fs, "/proj", detector.Config{})
	require.Error(t, err)

	var detErr *detector.DetectorError
	require.ErrorAs(t, err, &detErr)
	assert.Equal(t, detector.ErrorKindCancelled, detErr.Kind)
}

func TestDetect_MalformedManifest_DegradesToNoteInsteadOfError(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/proj/package.json", "{not valid json")
	writeFile(t, fs, "/proj/index.js", "console.log('hi')\n")

	profile, err := detector.Detect(context.Background(), fs, "/proj", detector.Config{})
	require.NoError(t, err)
	assert.NotEmpty(t, profile.Notes)
}

func TestDetect_RepeatedCalls_ProduceEqualDependencyOrder(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/proj/package.json", `{
		"dependencies": {"zeta": "^1.0.0", "alpha": "^2.0.0", "mu": "^3.0.0"},
		"devDependencies": {"wdio": "^1.0.0", "eslint": "^8.0.0"}
	}`)
	writeFile(t, fs, "/proj/index.js", "console.log('hi')\n")

	first, err := detector.Detect(context.Background(), fs, "/proj", detector.Config{})
	require.NoError(t, err)

	second, err := detector.Detect(context.Background(), fs, "/proj", detector.Config{})
	require.NoError(t, err)

	assert.Equal(t, first.Dependencies.Runtime, second.Dependencies.Runtime)
	assert.Equal(t, first.Dependencies.Dev, second.Dependencies.Dev)
	assert.Equal(t, []string{"alpha", "mu", "zeta"}, depNames(first.Dependencies.Runtime))
	assert.Equal(t, []string{"eslint", "wdio"}, depNames(first.Dependencies.Dev))
}

func depNames(deps []model.DependencyInfo) []string {
	names := make([]string, len(deps))
	for i, d := range deps {
		names[i] = d.Name
	}

	return names
}

func TestDetect_MinConfidenceFloor_ExcludesWeakLanguageResults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/proj/README.md", "# empty project\n")

	profile, err := detector.Detect(context.Background(), fs, "/proj", detector.Config{MinConfidence: 0.99})
	require.NoError(t, err)
	assert.Empty(t, profile.Languages)
}
