package languages

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/framework"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/manifest"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// GoAnalyzer implements the Analyzer contract for Go.
type GoAnalyzer struct{}

// LanguageName implements Analyzer.
func (a *GoAnalyzer) LanguageName() string { return "go" }

// CanAnalyze implements Analyzer.
func (a *GoAnalyzer) CanAnalyze(fs afero.Fs, root string) bool {
	return exists(fs, root, "go.mod")
}

// ConfidenceScore implements Analyzer using the shared rubric.
func (a *GoAnalyzer) ConfidenceScore(fs afero.Fs, root string, fileTypes map[string]int) float64 {
	hasManifest := exists(fs, root, "go.mod")
	hasSource := fileTypes["go"] > 0

	switch {
	case hasManifest && hasSource:
		return ConfidenceManifestAndSource
	case hasManifest:
		return ConfidenceManifestOnly
	case hasSource:
		return ConfidenceSourceOnly
	default:
		return ConfidenceNone
	}
}

// Analyze implements Analyzer.
func (a *GoAnalyzer) Analyze(fs afero.Fs, root string, fileTypes map[string]int) (model.LanguageAnalysisResult, error) {
	var (
		deps    []model.DependencyInfo
		notes   []string
		version string
	)

	if exists(fs, root, "go.mod") {
		data, err := afero.ReadFile(fs, filepath.Join(root, "go.mod"))
		if err != nil {
			notes = append(notes, "failed to read go.mod: "+err.Error())
		} else {
			version, deps = manifest.ParseGoMod(data)
			notes = append(notes, "dependencies parsed from go.mod", depCountsNote(deps, nil))
		}
	}

	frameworks := framework.DetectFromDependencies(framework.GoTable, deps)

	return model.LanguageAnalysisResult{
		Language: model.Language{
			Kind:    model.LanguageGo,
			Version: version,
		},
		Frameworks: frameworks,
		Confidence: a.ConfidenceScore(fs, root, fileTypes),
		Notes:      notes,
	}, nil
}
