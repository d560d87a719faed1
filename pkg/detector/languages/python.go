package languages

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/framework"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/manifest"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// pythonVenvNames are directory names that imply a virtual environment,
// ported from python.rs::detect_virtual_env.
var pythonVenvNames = []string{"venv", ".venv", "env", ".env", "virtualenv"}

// PythonAnalyzer implements the Analyzer contract for Python, grounded on
// the original project_detector's python.rs worked example (spec.md §4.3).
type PythonAnalyzer struct{}

// LanguageName implements Analyzer.
func (a *PythonAnalyzer) LanguageName() string { return "python" }

// CanAnalyze implements Analyzer.
func (a *PythonAnalyzer) CanAnalyze(fs afero.Fs, root string) bool {
	return exists(fs, root, "pyproject.toml") ||
		exists(fs, root, "requirements.txt") ||
		exists(fs, root, "setup.py") ||
		exists(fs, root, "manage.py")
}

// ConfidenceScore implements Analyzer using the shared rubric.
func (a *PythonAnalyzer) ConfidenceScore(fs afero.Fs, root string, fileTypes map[string]int) float64 {
	hasManifest := exists(fs, root, "pyproject.toml") || exists(fs, root, "requirements.txt")
	hasSource := fileTypes["py"] > 0

	switch {
	case hasManifest && hasSource:
		return ConfidenceManifestAndSource
	case hasManifest:
		return ConfidenceManifestOnly
	case hasSource:
		return ConfidenceSourceOnly
	case exists(fs, root, "setup.py") || exists(fs, root, "manage.py"):
		return ConfidenceWeakMarker
	default:
		return ConfidenceNone
	}
}

// Analyze implements Analyzer.
func (a *PythonAnalyzer) Analyze(fs afero.Fs, root string, _ map[string]int) (model.LanguageAnalysisResult, error) {
	var (
		runtime, dev []model.DependencyInfo
		notes        []string
		manifestUsed string
	)

	switch {
	case exists(fs, root, "pyproject.toml"):
		data, err := afero.ReadFile(fs, filepath.Join(root, "pyproject.toml"))
		if err != nil {
			notes = append(notes, "failed to read pyproject.toml: "+err.Error())

			break
		}

		r, d, parseErr := manifest.ParsePyProjectToml(data)
		if parseErr != nil {
			notes = append(notes, "malformed pyproject.toml: "+parseErr.Error())

			break
		}

		runtime, dev = r, d
		manifestUsed = "pyproject.toml"
	case exists(fs, root, "requirements.txt"):
		data, err := afero.ReadFile(fs, filepath.Join(root, "requirements.txt"))
		if err != nil {
			notes = append(notes, "failed to read requirements.txt: "+err.Error())

			break
		}

		r, parseErr := manifest.ParseRequirementsTxt(data)
		if parseErr != nil {
			notes = append(notes, "malformed requirements.txt: "+parseErr.Error())

			break
		}

		runtime = r
		manifestUsed = "requirements.txt"
	}

	if manifestUsed != "" {
		notes = append(notes, "dependencies parsed from "+manifestUsed)
	}

	version := a.detectVersion(fs, root)
	venv := a.detectVenv(fs, root)

	if version != "" {
		notes = append(notes, "interpreter version: "+version)
	}

	if venv != "" {
		notes = append(notes, "virtual environment: "+venv)
	}

	notes = append(notes, depCountsNote(runtime, dev))

	allDeps := append(append([]model.DependencyInfo{}, runtime...), dev...)
	frameworks := framework.DetectFromDependencies(framework.PythonTable, allDeps)

	return model.LanguageAnalysisResult{
		Language: model.Language{
			Kind:    model.LanguagePython,
			Version: version,
			Venv:    venv,
		},
		Frameworks: frameworks,
		Confidence: a.ConfidenceScore(fs, root, nil),
		Notes:      notes,
	}, nil
}

// detectVersion mirrors python.rs::detect_python_version: .python-version,
// then runtime.txt's "python-" prefixed line, then pyproject.toml's
// requires-python.
func (a *PythonAnalyzer) detectVersion(fs afero.Fs, root string) string {
	if data, err := afero.ReadFile(fs, filepath.Join(root, ".python-version")); err == nil {
		return strings.TrimSpace(string(data))
	}

	if data, err := afero.ReadFile(fs, filepath.Join(root, "runtime.txt")); err == nil {
		line := strings.TrimSpace(string(data))
		if after, ok := strings.CutPrefix(line, "python-"); ok {
			return after
		}
	}

	if data, err := afero.ReadFile(fs, filepath.Join(root, "pyproject.toml")); err == nil {
		return manifest.PyProjectRequiresPython(data)
	}

	return ""
}

// detectVenv mirrors python.rs::detect_virtual_env: directory name, conda's
// environment.yml, or pipenv's Pipfile.
func (a *PythonAnalyzer) detectVenv(fs afero.Fs, root string) string {
	for _, name := range pythonVenvNames {
		if exists(fs, root, name) {
			return name
		}
	}

	if exists(fs, root, "environment.yml") || exists(fs, root, "conda-env.yml") {
		return "conda"
	}

	if exists(fs, root, "Pipfile") {
		return "pipenv"
	}

	return ""
}

func depCountsNote(runtime, dev []model.DependencyInfo) string {
	return "dependencies: " + strconv.Itoa(len(runtime)) + " runtime, " + strconv.Itoa(len(dev)) + " dev"
}
