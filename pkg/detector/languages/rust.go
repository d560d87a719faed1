package languages

import (
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/framework"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/manifest"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// RustAnalyzer implements the Analyzer contract for Rust.
type RustAnalyzer struct{}

// LanguageName implements Analyzer.
func (a *RustAnalyzer) LanguageName() string { return "rust" }

// CanAnalyze implements Analyzer.
func (a *RustAnalyzer) CanAnalyze(fs afero.Fs, root string) bool {
	return exists(fs, root, "Cargo.toml")
}

// ConfidenceScore implements Analyzer using the shared rubric.
func (a *RustAnalyzer) ConfidenceScore(fs afero.Fs, root string, fileTypes map[string]int) float64 {
	hasManifest := exists(fs, root, "Cargo.toml")
	hasSource := fileTypes["rs"] > 0

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
func (a *RustAnalyzer) Analyze(fs afero.Fs, root string, fileTypes map[string]int) (model.LanguageAnalysisResult, error) {
	var (
		runtime, dev []model.DependencyInfo
		notes        []string
		edition      string
	)

	if exists(fs, root, "Cargo.toml") {
		data, err := afero.ReadFile(fs, filepath.Join(root, "Cargo.toml"))
		if err != nil {
			notes = append(notes, "failed to read Cargo.toml: "+err.Error())
		} else {
			r, d, parseErr := manifest.ParseCargoToml(data)
			if parseErr != nil {
				notes = append(notes, "malformed Cargo.toml: "+parseErr.Error())
			} else {
				runtime, dev = r, d
				notes = append(notes, "dependencies parsed from Cargo.toml")
			}

			edition = cargoEdition(data)
		}
	}

	notes = append(notes, depCountsNote(runtime, dev))

	toolchain := ""
	if exists(fs, root, "rust-toolchain.toml") || exists(fs, root, "rust-toolchain") {
		toolchain = "pinned"
	}

	allDeps := append(append([]model.DependencyInfo{}, runtime...), dev...)
	frameworks := framework.DetectFromDependencies(framework.RustTable, allDeps)

	return model.LanguageAnalysisResult{
		Language: model.Language{
			Kind:      model.LanguageRust,
			Edition:   edition,
			Toolchain: toolchain,
		},
		Frameworks: frameworks,
		Confidence: a.ConfidenceScore(fs, root, fileTypes),
		Notes:      notes,
	}, nil
}

func cargoEdition(data []byte) string {
	var doc struct {
		Package struct {
			Edition string `toml:"edition"`
		} `toml:"package"`
	}

	if err := toml.Unmarshal(data, &doc); err != nil {
		return ""
	}

	return doc.Package.Edition
}
