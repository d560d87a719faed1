package languages

import (
	"github.com/src-d/enry/v2"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// enryToKind maps enry's language names to our LanguageKind, for the subset
// DefaultRegistry covers. Extensions enry doesn't recognize, or maps to a
// language outside this registry, are simply absent from the vote.
var enryToKind = map[string]model.LanguageKind{
	"Go":         model.LanguageGo,
	"Python":     model.LanguagePython,
	"Rust":       model.LanguageRust,
	"JavaScript": model.LanguageJavaScript,
	"TypeScript": model.LanguageTypeScript,
	"Java":       model.LanguageJava,
}

// EnryVotes tallies a secondary, extension-based language signal from enry
// (github.com/src-d/enry/v2, grounded on the teacher's
// pkg/analyzers/devs/fast.go, which calls enry.GetLanguage(name, nil) — the
// content-less, filename-only classification mode). It reuses the Walker's
// already-collected fileTypes counts instead of rereading the tree: each
// extension is classified once via a synthesized filename, and its file
// count is added to that language's vote. This is cheap and non-blocking,
// matching the confidence_score contract.
func EnryVotes(fileTypes map[string]int) map[model.LanguageKind]int {
	votes := make(map[model.LanguageKind]int)

	for ext, count := range fileTypes {
		if count <= 0 {
			continue
		}

		name := enry.GetLanguage("file."+ext, nil)

		kind, ok := enryToKind[name]
		if !ok {
			continue
		}

		votes[kind] += count
	}

	return votes
}

// BreakTieByEnryVote resolves a confidence tie between two language results
// using EnryVotes: the kind with the higher file-count vote wins. This is an
// explicit, opt-in override of the registry-position tie-break (off unless
// a caller invokes it), since enry's heuristics can disagree with a fixed
// registry order on ambiguous trees (e.g. a monorepo with both Python and
// Go sources at similar file counts).
func BreakTieByEnryVote(fileTypes map[string]int, a, b model.LanguageAnalysisResult) model.LanguageAnalysisResult {
	votes := EnryVotes(fileTypes)
	if votes[b.Language.Kind] > votes[a.Language.Kind] {
		return b
	}

	return a
}
