package languages

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/framework"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// javaBuildFiles are the manifest markers JavaAnalyzer claims a project on.
var javaBuildFiles = []string{"pom.xml", "build.gradle", "build.gradle.kts"}

// JavaAnalyzer implements the Analyzer contract for Java. Maven/Gradle have
// no single structured manifest the rest of the corpus parses, so
// dependencies are matched by substring against the raw build file content
// rather than a field-by-field parse, mirroring how framework coordinates
// are scanned elsewhere in the pack.
type JavaAnalyzer struct{}

// LanguageName implements Analyzer.
func (a *JavaAnalyzer) LanguageName() string { return "java" }

// CanAnalyze implements Analyzer.
func (a *JavaAnalyzer) CanAnalyze(fs afero.Fs, root string) bool {
	return a.buildFile(fs, root) != ""
}

// ConfidenceScore implements Analyzer using the shared rubric.
func (a *JavaAnalyzer) ConfidenceScore(fs afero.Fs, root string, fileTypes map[string]int) float64 {
	hasManifest := a.buildFile(fs, root) != ""
	hasSource := fileTypes["java"] > 0

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
func (a *JavaAnalyzer) Analyze(fs afero.Fs, root string, fileTypes map[string]int) (model.LanguageAnalysisResult, error) {
	var notes []string

	buildFile := a.buildFile(fs, root)
	buildSystem := ""

	if buildFile == "pom.xml" {
		buildSystem = "maven"
	} else if buildFile != "" {
		buildSystem = "gradle"
	}

	var frameworks []model.FrameworkInfo

	if buildFile != "" {
		data, err := afero.ReadFile(fs, filepath.Join(root, buildFile))
		if err != nil {
			notes = append(notes, "failed to read "+buildFile+": "+err.Error())
		} else {
			frameworks = detectJavaFrameworks(data)
			notes = append(notes, "frameworks scanned from "+buildFile)
		}
	}

	if buildSystem != "" {
		notes = append(notes, "build system: "+buildSystem)
	}

	return model.LanguageAnalysisResult{
		Language: model.Language{
			Kind: model.LanguageJava,
		},
		Frameworks: frameworks,
		Confidence: a.ConfidenceScore(fs, root, fileTypes),
		Notes:      notes,
	}, nil
}

// buildFile returns whichever of javaBuildFiles is present, preferring
// pom.xml, or "" if none are.
func (a *JavaAnalyzer) buildFile(fs afero.Fs, root string) string {
	for _, name := range javaBuildFiles {
		if exists(fs, root, name) {
			return name
		}
	}

	return ""
}

// detectJavaFrameworks scans raw build-file content for each framework.JavaTable
// coordinate, reusing the table by synthesizing a DependencyInfo per
// substring match found.
func detectJavaFrameworks(data []byte) []model.FrameworkInfo {
	content := strings.ToLower(string(data))

	var present []model.DependencyInfo

	for _, name := range []string{"spring-boot-starter", "quarkus", "micronaut", "junit"} {
		if strings.Contains(content, name) {
			present = append(present, model.DependencyInfo{Name: name, Kind: model.DependencyRuntime})
		}
	}

	return framework.DetectFromDependencies(framework.JavaTable, present)
}
