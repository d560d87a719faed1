package detector

import "github.com/sumatoshi-tech/projectdetect/pkg/detector/languages"

// Default resource caps, used when a zero-value Config is passed to Detect.
const (
	DefaultMaxProjectFiles = 50_000
	DefaultMaxDepth        = 16
	DefaultMinConfidence   = 0.5
)

// defaultSkipDirs are directory basenames the Walker never descends into.
var defaultSkipDirs = []string{
	"node_modules", "target", ".git", "dist", "build", ".next", ".nuxt",
	"coverage", "__pycache__", ".venv", "venv", ".tox", "vendor",
}

// Config is the Orchestrator's input, equivalent to spec's DetectorConfig.
type Config struct {
	// MaxProjectFiles caps total entries visited by the Walker.
	MaxProjectFiles int

	// MaxDepth caps recursion depth below the root. Zero or a negative value
	// is replaced by DefaultMaxDepth, so this field cannot request a walk of
	// the root directory alone.
	MaxDepth int

	// EnableGitAnalysis toggles the VCS Probe.
	EnableGitAnalysis bool

	// SkipDirs is the set of directory basenames never descended into.
	SkipDirs []string

	// AnalyzerRegistry is the ordered sequence of language analyzers; its
	// order is the deterministic tie-break for equal-confidence results.
	// A nil registry uses languages.DefaultRegistry().
	AnalyzerRegistry []languages.Analyzer

	// MinConfidence is the floor a confidence_score must clear for analyze
	// to run and the result to appear in the profile.
	MinConfidence float64

	// EnableEnryTieBreak opts into languages.BreakTieByEnryVote overriding
	// the documented registry-position tie-break when two analyzers report
	// equal confidence. Off by default; the registry order remains the
	// tie-break documented in spec.md §4.3.
	EnableEnryTieBreak bool
}

// withDefaults returns a copy of cfg with zero-valued fields replaced by
// their documented defaults.
func (c Config) withDefaults() Config {
	if c.MaxProjectFiles <= 0 {
		c.MaxProjectFiles = DefaultMaxProjectFiles
	}

	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}

	if len(c.SkipDirs) == 0 {
		c.SkipDirs = defaultSkipDirs
	}

	if c.AnalyzerRegistry == nil {
		c.AnalyzerRegistry = languages.DefaultRegistry()
	}

	if c.MinConfidence <= 0 {
		c.MinConfidence = DefaultMinConfidence
	}

	return c
}

func skipSet(dirs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		set[d] = struct{}{}
	}

	return set
}
