// Package detector implements the Orchestrator: it drives the Walker, the
// Language Analyzer registry, the Manifest Parsers, the Build-System
// Detector, and the VCS Probe, then reduces their outputs into one
// immutable ProjectProfile.
package detector

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/buildsystem"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/languages"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/manifest"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/vcs"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/walker"
)

// Detect runs the full pipeline against root and returns an assembled
// ProjectProfile. It fails only on an unreadable root, a walker error, or a
// cancelled context; a language analyzer that fails is left out of
// Languages, and every other per-component failure degrades to a note on
// the returned profile. Grounded on the teacher's Factory.runParallel
// fan-out (pkg/analyzers/analyze/analyzer.go): a WaitGroup, one goroutine
// per independent task, no shared mutable state beyond a mutex-guarded
// accumulator.
func Detect(ctx context.Context, fs afero.Fs, root string, cfg Config) (*model.ProjectProfile, error) {
	cfg = cfg.withDefaults()

	structure, err := walker.Walk(ctx, fs, root, walker.Config{
		MaxProjectFiles: cfg.MaxProjectFiles,
		MaxDepth:        cfg.MaxDepth,
		SkipDirs:        skipSet(cfg.SkipDirs),
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, newCancelledError(err)
		}

		return nil, newRootUnreadableError(err)
	}

	if err := ctx.Err(); err != nil {
		return nil, newCancelledError(err)
	}

	profile := &model.ProjectProfile{
		Root:       root,
		CapturedAt: time.Now().UTC(),
		Structure: model.ProjectStructure{
			SourceDirs:  structure.SourceDirs,
			TestDirs:    structure.TestDirs,
			ConfigFiles: structure.ConfigFiles,
			DocFiles:    structure.DocFiles,
			FileTypes:   structure.FileTypes,
			TotalFiles:  structure.TotalFiles,
			TotalLines:  structure.TotalLines,
		},
		Notes: append([]string{}, structure.Notes...),
	}

	var (
		bs      model.BuildSystem
		git     *model.GitRepository
		depDiag []string
	)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		profile.Languages = runLanguageAnalyzers(ctx, fs, root, cfg, structure.FileTypes)
	}()

	wg.Add(1)

	go func() {
		defer wg.Done()

		detected, detectErr := buildsystem.Detect(fs, root)
		if detectErr != nil {
			appendNoteSafe(profile, "build-system detection failed: "+detectErr.Error())

			return
		}

		bs = detected
	}()

	if cfg.EnableGitAnalysis {
		wg.Add(1)

		go func() {
			defer wg.Done()

			repo, probeErr := vcs.Probe(root, true)
			if probeErr != nil {
				appendNoteSafe(profile, "vcs probe failed: "+probeErr.Error())

				return
			}

			git = repo
		}()
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		graph, notes := collectDependencyGraph(fs, structure.MarkerFiles)
		profile.Dependencies = graph
		depDiag = notes
	}()

	wg.Wait()

	if ctx.Err() != nil {
		return nil, newCancelledError(ctx.Err())
	}

	profile.BuildSystem = bs
	profile.Git = git
	profile.Notes = append(profile.Notes, depDiag...)

	return profile, nil
}

var profileNoteMu sync.Mutex

// appendNoteSafe serializes note appends from concurrent goroutines; the
// rest of Detect's fan-out writes to disjoint fields, so this is the only
// field that needs guarding.
func appendNoteSafe(p *model.ProjectProfile, note string) {
	profileNoteMu.Lock()
	defer profileNoteMu.Unlock()

	p.Notes = append(p.Notes, note)
}

// analyzerOutcome holds one analyzer's fan-out result, indexed by its
// registry position; a stable sort over the index-ordered slice recovers
// the documented confidence-desc/registry-index-asc tie-break.
type analyzerOutcome struct {
	confidence float64
	result     model.LanguageAnalysisResult
	err        error
}

// runLanguageAnalyzers runs every registered analyzer's confidence_score
// concurrently, then analyze on those clearing MinConfidence, also
// concurrently, and returns results sorted by confidence desc with registry
// position as the deterministic tie-break.
func runLanguageAnalyzers(ctx context.Context, fs afero.Fs, root string, cfg Config, fileTypes map[string]int) []model.LanguageAnalysisResult {
	registry := cfg.AnalyzerRegistry

	outcomes := make([]analyzerOutcome, len(registry))

	var scoreWG sync.WaitGroup

	for i, a := range registry {
		scoreWG.Add(1)

		go func(i int, a languages.Analyzer) {
			defer scoreWG.Done()
			defer func() {
				if r := recover(); r != nil {
					outcomes[i] = analyzerOutcome{err: fmt.Errorf("analyzer %s panicked: %v", a.LanguageName(), r)}
				}
			}()

			outcomes[i] = analyzerOutcome{confidence: a.ConfidenceScore(fs, root, fileTypes)}
		}(i, a)
	}

	scoreWG.Wait()

	if ctx.Err() != nil {
		return nil
	}

	var analyzeWG sync.WaitGroup

	for i, a := range registry {
		if outcomes[i].confidence < cfg.MinConfidence {
			continue
		}

		analyzeWG.Add(1)

		go func(i int, a languages.Analyzer) {
			defer analyzeWG.Done()
			defer func() {
				if r := recover(); r != nil {
					outcomes[i].err = fmt.Errorf("analyzer %s panicked: %v", a.LanguageName(), r)
				}
			}()

			result, err := a.Analyze(fs, root, fileTypes)
			outcomes[i].result = result
			outcomes[i].err = err
		}(i, a)
	}

	analyzeWG.Wait()

	var results []model.LanguageAnalysisResult

	for _, o := range outcomes {
		if o.confidence < cfg.MinConfidence || o.err != nil {
			continue
		}

		o.result.Confidence = o.confidence
		results = append(results, o.result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})

	if cfg.EnableEnryTieBreak && len(results) > 1 && results[0].Confidence == results[1].Confidence {
		winner := languages.BreakTieByEnryVote(fileTypes, results[0], results[1])
		if winner.Language.Kind != results[0].Language.Kind {
			results[0], results[1] = results[1], results[0]
		}
	}

	return results
}

// markerParsers maps a manifest basename to the function that parses it
// into runtime/dev DependencyInfo slices. go.mod has no dev-dependency
// concept, so its parser's dev slice is always nil.
var markerParsers = map[string]func([]byte) (runtime, dev []model.DependencyInfo, err error){
	"Cargo.toml":     manifest.ParseCargoToml,
	"package.json":   manifest.ParsePackageJSON,
	"pyproject.toml": manifest.ParsePyProjectToml,
	"requirements.txt": func(data []byte) ([]model.DependencyInfo, []model.DependencyInfo, error) {
		r, err := manifest.ParseRequirementsTxt(data)

		return r, nil, err
	},
	"go.mod": func(data []byte) ([]model.DependencyInfo, []model.DependencyInfo, error) {
		_, deps := manifest.ParseGoMod(data)

		return deps, nil, nil
	},
}

// collectDependencyGraph runs every Manifest Parser whose marker file the
// Walker found and merges results, deduped by (name, kind) with later
// entries winning, per spec.md §4.7 step 4. Basenames are visited in sorted
// order and, within a basename, paths are visited in the order the Walker
// recorded them, so "later entries win" is reproducible across runs against
// the same tree.
func collectDependencyGraph(fs afero.Fs, markerFiles map[string][]string) (model.DependencyGraph, []string) {
	type key struct {
		name string
		kind model.DependencyKind
	}

	merged := make(map[key]model.DependencyInfo)
	order := make([]key, 0)

	var notes []string

	basenames := make([]string, 0, len(markerFiles))
	for basename := range markerFiles {
		if _, known := markerParsers[basename]; known {
			basenames = append(basenames, basename)
		}
	}

	sort.Strings(basenames)

	for _, basename := range basenames {
		parse := markerParsers[basename]

		for _, path := range markerFiles[basename] {
			data, err := afero.ReadFile(fs, path)
			if err != nil {
				notes = append(notes, fmt.Sprintf("failed to read %s: %v", path, err))

				continue
			}

			runtimeDeps, devDeps, err := parse(data)
			if err != nil {
				notes = append(notes, fmt.Sprintf("malformed %s: %v", path, err))

				continue
			}

			for _, d := range runtimeDeps {
				d.Kind = model.DependencyRuntime
				k := key{name: d.Name, kind: d.Kind}

				if _, seen := merged[k]; !seen {
					order = append(order, k)
				}

				merged[k] = d
			}

			for _, d := range devDeps {
				if d.Kind == "" {
					d.Kind = model.DependencyDev
				}

				k := key{name: d.Name, kind: d.Kind}

				if _, seen := merged[k]; !seen {
					order = append(order, k)
				}

				merged[k] = d
			}
		}
	}

	graph := model.DependencyGraph{LastUpdated: time.Now().UTC()}

	for _, k := range order {
		d := merged[k]
		if d.Kind == model.DependencyRuntime {
			graph.Runtime = append(graph.Runtime, d)
		} else {
			graph.Dev = append(graph.Dev, d)
		}
	}

	graph.TotalCount = len(graph.Runtime) + len(graph.Dev)

	return graph, notes
}
