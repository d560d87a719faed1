// Package model holds the data model shared by every detector subpackage:
// the entities that make up a ProjectProfile. It has no dependencies on any
// other detector package, so manifest parsers, language analyzers, the
// build-system detector, and the VCS probe can all depend on it without
// creating an import cycle back to the orchestrator.
package model

import "time"

// Capability describes something a detected framework can do, used to drive
// suggested tooling without the core ever executing anything itself.
type Capability string

// Known capabilities surfaced by framework tables.
const (
	CapabilityWebServer    Capability = "web_server"
	CapabilityAPI          Capability = "api"
	CapabilityCLI          Capability = "cli"
	CapabilityTesting      Capability = "testing"
	CapabilityNotebook     Capability = "notebook"
	CapabilityBundler      Capability = "bundler"
	CapabilityDataScience  Capability = "data_science"
	CapabilityORM          Capability = "orm"
	CapabilityStaticSite   Capability = "static_site"
	CapabilitySPAFrontend  Capability = "spa_frontend"
	CapabilityMicroservice Capability = "microservice"
)

// Command is a purely advisory suggestion surfaced to a caller. The core
// never executes CommandLine itself.
type Command struct {
	Name        string
	Description string
	CommandLine string
	WhenToUse   string
}

// FrameworkInfo describes a framework detected for a language.
type FrameworkInfo struct {
	Name              string
	Version           string // empty when unknown
	ConfigPath        string // empty when no dedicated config file was found
	Capabilities      []Capability
	SuggestedCommands []Command
	Confidence        float64
}

// DependencyKind classifies a dependency's role in the build.
type DependencyKind string

// Dependency kinds.
const (
	DependencyRuntime  DependencyKind = "runtime"
	DependencyDev      DependencyKind = "dev"
	DependencyOptional DependencyKind = "optional"
)

// DependencyInfo is one entry parsed from a manifest.
type DependencyInfo struct {
	Name        string
	VersionSpec string // verbatim from the manifest; "*" when unspecified
	Kind        DependencyKind
	Description string // empty unless the manifest carries one
}

// DependencyGraph aggregates every dependency found across the manifest
// files the Walker recorded; language analyzer results do not contribute.
// OutdatedCount and SecurityIssues are always zero/empty:
// no remote registry is ever consulted.
type DependencyGraph struct {
	Runtime        []DependencyInfo
	Dev            []DependencyInfo
	TotalCount     int
	OutdatedCount  int
	SecurityIssues []string
	LastUpdated    time.Time
}

// LanguageKind names a detected language. Go has no closed sum type, so
// language-specific metadata lives in optional fields on Language rather
// than per-variant payloads.
type LanguageKind string

// Known language kinds.
const (
	LanguageRust       LanguageKind = "rust"
	LanguageJavaScript LanguageKind = "javascript"
	LanguageTypeScript LanguageKind = "typescript"
	LanguagePython     LanguageKind = "python"
	LanguageGo         LanguageKind = "go"
	LanguageJava       LanguageKind = "java"
)

// Language is the tagged-variant payload for one detected language. Only the
// fields relevant to Kind are populated; the rest stay at zero value.
type Language struct {
	Kind LanguageKind

	// Rust
	Edition   string
	Toolchain string

	// JavaScript / TypeScript
	Runtime      string
	ModuleSystem string

	// Python / Go / Java
	Version string
	Venv    string
}

// LanguageAnalysisResult is one analyzer's output, included in
// ProjectProfile.Languages when its confidence score cleared the floor.
type LanguageAnalysisResult struct {
	Language   Language
	Frameworks []FrameworkInfo
	Confidence float64
	Notes      []string
}

// BuildSystemKind names a detected build system variant.
type BuildSystemKind string

// Known build system kinds.
const (
	BuildSystemCargo   BuildSystemKind = "cargo"
	BuildSystemNpm     BuildSystemKind = "npm"
	BuildSystemYarn    BuildSystemKind = "yarn"
	BuildSystemPnpm    BuildSystemKind = "pnpm"
	BuildSystemBun     BuildSystemKind = "bun"
	BuildSystemVite    BuildSystemKind = "vite"
	BuildSystemWebpack BuildSystemKind = "webpack"
	BuildSystemMake    BuildSystemKind = "make"
	BuildSystemDocker  BuildSystemKind = "docker"
	BuildSystemPoetry  BuildSystemKind = "poetry"
	BuildSystemUnknown BuildSystemKind = "unknown"
)

// CargoTargetKind is Cargo's sub-probe result.
type CargoTargetKind string

// Cargo target kinds.
const (
	CargoTargetBinary  CargoTargetKind = "binary"
	CargoTargetLibrary CargoTargetKind = "library"
	CargoTargetUnknown CargoTargetKind = "unknown"
)

// BuildSystem is a tagged variant carrying enough to reproduce the tasks the
// project offers. Only the fields matching Kind are populated.
type BuildSystem struct {
	Kind BuildSystemKind

	// Cargo
	TargetKind CargoTargetKind

	// Npm / Yarn / Pnpm / Bun / Poetry
	Scripts []string

	// Vite / Webpack
	ConfigPath string

	// Make
	Targets []string

	// Docker
	HasCompose bool
}

// GitRepository is the VCS Probe's output. CommitsAhead/CommitsBehind are
// always 0: the VCS Probe does not resolve an upstream branch.
type GitRepository struct {
	CurrentBranch         string
	RemoteURL             string
	CommitsAhead          int
	CommitsBehind         int
	HasUncommittedChanges bool
	LastCommitAt          time.Time
	Contributors          []string
}

// ProjectStructure is the FS Walker's output.
type ProjectStructure struct {
	SourceDirs  []string
	TestDirs    []string
	ConfigFiles []string
	DocFiles    []string
	FileTypes   map[string]int
	TotalFiles  int
	TotalLines  int
}

// ProjectProfile is the Orchestrator's final, immutable output.
type ProjectProfile struct {
	Root         string
	Structure    ProjectStructure
	Languages    []LanguageAnalysisResult
	BuildSystem  BuildSystem
	Dependencies DependencyGraph
	Git          *GitRepository // nil when .git is missing or git analysis is disabled
	CapturedAt   time.Time
	Notes        []string // diagnostics accumulated by the Orchestrator itself
}

// PrimaryLanguage returns the first (highest-confidence) language result, or
// nil when Languages is empty.
func (p *ProjectProfile) PrimaryLanguage() *LanguageAnalysisResult {
	if len(p.Languages) == 0 {
		return nil
	}

	return &p.Languages[0]
}
