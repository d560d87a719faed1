package languages

import (
	"github.com/spf13/afero"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/framework"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// TypeScriptAnalyzer implements the Analyzer contract for TypeScript
// projects, identified by a tsconfig.json alongside package.json.
type TypeScriptAnalyzer struct{}

// LanguageName implements Analyzer.
func (a *TypeScriptAnalyzer) LanguageName() string { return "typescript" }

// CanAnalyze implements Analyzer.
func (a *TypeScriptAnalyzer) CanAnalyze(fs afero.Fs, root string) bool {
	return exists(fs, root, "tsconfig.json")
}

// ConfidenceScore implements Analyzer using the shared rubric.
func (a *TypeScriptAnalyzer) ConfidenceScore(fs afero.Fs, root string, fileTypes map[string]int) float64 {
	hasManifest := exists(fs, root, "tsconfig.json")
	hasSource := fileTypes["ts"] > 0 || fileTypes["tsx"] > 0

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
func (a *TypeScriptAnalyzer) Analyze(fs afero.Fs, root string, fileTypes map[string]int) (model.LanguageAnalysisResult, error) {
	runtime, dev, notes := parsePackageJSONDeps(fs, root)

	allDeps := append(append([]model.DependencyInfo{}, runtime...), dev...)
	frameworks := framework.DetectFromDependencies(framework.JavaScriptTable, allDeps)

	return model.LanguageAnalysisResult{
		Language: model.Language{
			Kind:         model.LanguageTypeScript,
			Runtime:      "node",
			ModuleSystem: "esm",
		},
		Frameworks: frameworks,
		Confidence: a.ConfidenceScore(fs, root, fileTypes),
		Notes:      notes,
	}, nil
}
