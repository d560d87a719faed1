package languages

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/framework"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/manifest"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// JavaScriptAnalyzer implements the Analyzer contract for plain JavaScript
// (package.json present, no tsconfig.json). TypeScriptAnalyzer claims
// projects with a tsconfig.json instead, so the two never double-count the
// same manifest at full confidence.
type JavaScriptAnalyzer struct{}

// LanguageName implements Analyzer.
func (a *JavaScriptAnalyzer) LanguageName() string { return "javascript" }

// CanAnalyze implements Analyzer.
func (a *JavaScriptAnalyzer) CanAnalyze(fs afero.Fs, root string) bool {
	return exists(fs, root, "package.json")
}

// ConfidenceScore implements Analyzer using the shared rubric.
func (a *JavaScriptAnalyzer) ConfidenceScore(fs afero.Fs, root string, fileTypes map[string]int) float64 {
	if exists(fs, root, "tsconfig.json") {
		return ConfidenceNone // TypeScriptAnalyzer owns this project
	}

	hasManifest := exists(fs, root, "package.json")
	hasSource := fileTypes["js"] > 0 || fileTypes["jsx"] > 0

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
func (a *JavaScriptAnalyzer) Analyze(fs afero.Fs, root string, fileTypes map[string]int) (model.LanguageAnalysisResult, error) {
	runtime, dev, notes := parsePackageJSONDeps(fs, root)

	moduleSystem := "commonjs"
	if data, err := afero.ReadFile(fs, filepath.Join(root, "package.json")); err == nil && packageJSONIsESM(data) {
		moduleSystem = "esm"
	}

	allDeps := append(append([]model.DependencyInfo{}, runtime...), dev...)
	frameworks := framework.DetectFromDependencies(framework.JavaScriptTable, allDeps)

	return model.LanguageAnalysisResult{
		Language: model.Language{
			Kind:         model.LanguageJavaScript,
			Runtime:      "node",
			ModuleSystem: moduleSystem,
		},
		Frameworks: frameworks,
		Confidence: a.ConfidenceScore(fs, root, fileTypes),
		Notes:      notes,
	}, nil
}

// parsePackageJSONDeps is shared by the JavaScript and TypeScript analyzers:
// both read package.json's dependencies/devDependencies identically.
func parsePackageJSONDeps(fs afero.Fs, root string) (runtime, dev []model.DependencyInfo, notes []string) {
	if !exists(fs, root, "package.json") {
		return nil, nil, nil
	}

	data, err := afero.ReadFile(fs, filepath.Join(root, "package.json"))
	if err != nil {
		return nil, nil, []string{"failed to read package.json: " + err.Error()}
	}

	r, d, parseErr := manifest.ParsePackageJSON(data)
	if parseErr != nil {
		return nil, nil, []string{"malformed package.json: " + parseErr.Error()}
	}

	notes = []string{"dependencies parsed from package.json", depCountsNote(r, d)}

	return r, d, notes
}

func packageJSONIsESM(data []byte) bool {
	var doc struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}

	return doc.Type == "module"
}
