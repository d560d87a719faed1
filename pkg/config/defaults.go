package config

// Default detector resource caps, mirroring spec.md §6's documented
// DetectorConfig defaults and pkg/detector/config.go's own fallbacks. They
// are duplicated here (rather than imported) because pkg/config must not
// depend on pkg/detector: this package only produces the plain data that a
// host binary later turns into a detector.Config.
const (
	DefaultMaxProjectFiles    = 50_000
	DefaultMaxDepth           = 16
	DefaultEnableGitAnalysis  = true
	DefaultMinConfidence      = 0.5
	DefaultEnableEnryTieBreak = false
)

// DefaultSkipDirs is the directory basename skip-set spec.md §4.1 lists.
var DefaultSkipDirs = []string{
	"node_modules", "target", ".git", "dist", "build", ".next", ".nuxt",
	"coverage", "__pycache__", ".venv", "venv", ".tox", "vendor",
}

// Default logging configuration values.
const (
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "text"
)

// Default observability configuration values.
const (
	DefaultServiceName = "projectdetect"
	DefaultSampleRatio = 1.0
)

// DefaultServerAddr is the metrics server's default listen address.
const DefaultServerAddr = ":9090"
