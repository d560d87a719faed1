package languages_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/languages"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

func TestDefaultRegistry_NamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]struct{}{}
	for _, a := range languages.DefaultRegistry() {
		_, dup := seen[a.LanguageName()]
		assert.False(t, dup, "duplicate analyzer name %q", a.LanguageName())
		seen[a.LanguageName()] = struct{}{}
	}
}

func TestPythonAnalyzer(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := "/proj"
	require.NoError(t, fs.MkdirAll(root, 0o755))
	require.NoError(t, afero.WriteFile(fs, root+"/pyproject.toml", []byte(`
[project]
requires-python = ">=3.11"
dependencies = ["django>=4.2", "pytest"]
`), 0o644))

	a := &languages.PythonAnalyzer{}
	fileTypes := map[string]int{"py": 10}

	require.True(t, a.CanAnalyze(fs, root))
	assert.Equal(t, languages.ConfidenceManifestAndSource, a.ConfidenceScore(fs, root, fileTypes))

	result, err := a.Analyze(fs, root, fileTypes)
	require.NoError(t, err)
	assert.Equal(t, model.LanguagePython, result.Language.Kind)
	assert.Equal(t, ">=3.11", result.Language.Version)

	var names []string
	for _, fw := range result.Frameworks {
		names = append(names, fw.Name)
	}
	assert.Contains(t, names, "Django")
	assert.Contains(t, names, "Pytest")
}

func TestPythonAnalyzer_WeakMarkerOnly(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := "/proj"
	require.NoError(t, fs.MkdirAll(root, 0o755))
	require.NoError(t, afero.WriteFile(fs, root+"/manage.py", []byte("# django admin"), 0o644))

	a := &languages.PythonAnalyzer{}
	assert.Equal(t, languages.ConfidenceWeakMarker, a.ConfidenceScore(fs, root, map[string]int{}))
}

func TestRustAnalyzer(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := "/proj"
	require.NoError(t, fs.MkdirAll(root, 0o755))
	require.NoError(t, afero.WriteFile(fs, root+"/Cargo.toml", []byte(`
[package]
name = "demo"
edition = "2021"

[dependencies]
axum = "0.7"
clap = "4"
`), 0o644))

	a := &languages.RustAnalyzer{}
	fileTypes := map[string]int{"rs": 5}

	require.True(t, a.CanAnalyze(fs, root))

	result, err := a.Analyze(fs, root, fileTypes)
	require.NoError(t, err)
	assert.Equal(t, model.LanguageRust, result.Language.Kind)
	assert.Equal(t, "2021", result.Language.Edition)

	var names []string
	for _, fw := range result.Frameworks {
		names = append(names, fw.Name)
	}
	assert.Contains(t, names, "Axum")
	assert.Contains(t, names, "Clap")
}

func TestJavaScriptAnalyzer_CedesToTypeScript(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := "/proj"
	require.NoError(t, fs.MkdirAll(root, 0o755))
	require.NoError(t, afero.WriteFile(fs, root+"/package.json", []byte(`{"dependencies":{"react":"18.0.0"}}`), 0o644))
	require.NoError(t, afero.WriteFile(fs, root+"/tsconfig.json", []byte(`{}`), 0o644))

	js := &languages.JavaScriptAnalyzer{}
	assert.Equal(t, languages.ConfidenceNone, js.ConfidenceScore(fs, root, map[string]int{"ts": 3}))

	ts := &languages.TypeScriptAnalyzer{}
	assert.Equal(t, languages.ConfidenceManifestAndSource, ts.ConfidenceScore(fs, root, map[string]int{"ts": 3}))

	result, err := ts.Analyze(fs, root, map[string]int{"ts": 3})
	require.NoError(t, err)

	var names []string
	for _, fw := range result.Frameworks {
		names = append(names, fw.Name)
	}
	assert.Contains(t, names, "React")
}

func TestJavaScriptAnalyzer_ModuleSystem(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := "/proj"
	require.NoError(t, fs.MkdirAll(root, 0o755))
	require.NoError(t, afero.WriteFile(fs, root+"/package.json", []byte(`{"type":"module","dependencies":{"express":"4.0.0"}}`), 0o644))

	a := &languages.JavaScriptAnalyzer{}
	result, err := a.Analyze(fs, root, map[string]int{"js": 2})
	require.NoError(t, err)
	assert.Equal(t, "esm", result.Language.ModuleSystem)
}

func TestGoAnalyzer(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := "/proj"
	require.NoError(t, fs.MkdirAll(root, 0o755))
	require.NoError(t, afero.WriteFile(fs, root+"/go.mod", []byte(`module example.com/demo

go 1.22

require (
	github.com/gin-gonic/gin v1.9.1
	github.com/spf13/cobra v1.8.0
)
`), 0o644))

	a := &languages.GoAnalyzer{}
	fileTypes := map[string]int{"go": 8}

	require.True(t, a.CanAnalyze(fs, root))
	assert.Equal(t, languages.ConfidenceManifestAndSource, a.ConfidenceScore(fs, root, fileTypes))

	result, err := a.Analyze(fs, root, fileTypes)
	require.NoError(t, err)
	assert.Equal(t, model.LanguageGo, result.Language.Kind)
	assert.Equal(t, "1.22", result.Language.Version)

	var names []string
	for _, fw := range result.Frameworks {
		names = append(names, fw.Name)
	}
	assert.Contains(t, names, "Gin")
	assert.Contains(t, names, "Cobra")
}

func TestJavaAnalyzer(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := "/proj"
	require.NoError(t, fs.MkdirAll(root, 0o755))
	require.NoError(t, afero.WriteFile(fs, root+"/pom.xml", []byte(`
<project>
  <dependencies>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-web</artifactId>
    </dependency>
  </dependencies>
</project>
`), 0o644))

	a := &languages.JavaAnalyzer{}
	fileTypes := map[string]int{"java": 4}

	require.True(t, a.CanAnalyze(fs, root))
	assert.Equal(t, languages.ConfidenceManifestAndSource, a.ConfidenceScore(fs, root, fileTypes))

	result, err := a.Analyze(fs, root, fileTypes)
	require.NoError(t, err)
	assert.Equal(t, model.LanguageJava, result.Language.Kind)

	var names []string
	for _, fw := range result.Frameworks {
		names = append(names, fw.Name)
	}
	assert.Contains(t, names, "Spring Boot")
}

func TestEnryVotes(t *testing.T) {
	t.Parallel()

	votes := languages.EnryVotes(map[string]int{"go": 12, "py": 3, "md": 5})
	assert.Equal(t, 12, votes[model.LanguageGo])
	assert.Equal(t, 3, votes[model.LanguagePython])
	assert.NotContains(t, votes, model.LanguageJavaScript)
}

func TestBreakTieByEnryVote(t *testing.T) {
	t.Parallel()

	goResult := model.LanguageAnalysisResult{Language: model.Language{Kind: model.LanguageGo}, Confidence: 0.9}
	pyResult := model.LanguageAnalysisResult{Language: model.Language{Kind: model.LanguagePython}, Confidence: 0.9}

	winner := languages.BreakTieByEnryVote(map[string]int{"go": 2, "py": 50}, goResult, pyResult)
	assert.Equal(t, model.LanguagePython, winner.Language.Kind)
}

func TestJavaAnalyzer_GradleBuildSystem(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := "/proj"
	require.NoError(t, fs.MkdirAll(root, 0o755))
	require.NoError(t, afero.WriteFile(fs, root+"/build.gradle", []byte("implementation 'io.quarkus:quarkus-core'"), 0o644))

	a := &languages.JavaAnalyzer{}
	result, err := a.Analyze(fs, root, map[string]int{"java": 1})
	require.NoError(t, err)
	assert.Contains(t, result.Notes, "build system: gradle")
}
