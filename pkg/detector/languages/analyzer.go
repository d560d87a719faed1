// Package languages implements the polymorphic Language Analyzer contract
// from spec.md §4.3: per-language can-analyze, confidence, and deep-analyze
// probes, registered in a fixed-order registry that also serves as the
// deterministic confidence tie-break.
package languages

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// MinConfidence is the floor a confidence score must clear for Analyze to
// run and the result to appear in a ProjectProfile. Mirrors
// detector.DefaultMinConfidence; duplicated as a package constant to avoid
// an import cycle back to the root detector package.
const MinConfidence = 0.5

// Confidence rubric tiers, shared across every analyzer's scoring. Each
// analyzer picks among these per spec.md §4.3.
const (
	ConfidenceManifestAndSource = 0.95
	ConfidenceManifestOnly      = 0.90
	ConfidenceSourceOnly        = 0.70
	ConfidenceWeakMarker        = 0.60
	ConfidenceNone              = 0.00
)

// Analyzer is the three-method (plus name) contract every language
// implementation satisfies. CanAnalyze and ConfidenceScore must be cheap,
// non-blocking stat-only checks; Analyze is the deep probe run only once a
// confidence score clears MinConfidence.
type Analyzer interface {
	// LanguageName identifies the analyzer, e.g. "python".
	LanguageName() string

	// CanAnalyze is a cheap existence check against marker files and a
	// shallow scan.
	CanAnalyze(fs afero.Fs, root string) bool

	// ConfidenceScore is calibrated against the documented rubric: manifest
	// presence, source-file presence, and absence of conflicting markers.
	ConfidenceScore(fs afero.Fs, root string, fileTypes map[string]int) float64

	// Analyze performs the deep probe and returns the language result.
	Analyze(fs afero.Fs, root string, fileTypes map[string]int) (model.LanguageAnalysisResult, error)
}

// DefaultRegistry returns the analyzers in their fixed, deterministic order.
// This order is the tie-break used when two analyzers report equal
// confidence: earlier entries win.
func DefaultRegistry() []Analyzer {
	return []Analyzer{
		&RustAnalyzer{},
		&JavaScriptAnalyzer{},
		&TypeScriptAnalyzer{},
		&PythonAnalyzer{},
		&GoAnalyzer{},
		&JavaAnalyzer{},
	}
}

func exists(fs afero.Fs, root, name string) bool {
	ok, err := afero.Exists(fs, filepath.Join(root, name))

	return err == nil && ok
}
