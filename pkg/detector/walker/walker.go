// Package walker implements the bounded, filtered recursive directory
// traversal that produces a detector.ProjectStructure.
package walker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/classify"
)

// lineCountChunk is the read chunk size used while counting lines, matching
// the cancellation granularity the concurrency contract requires.
const lineCountChunk = 64 * 1024

// Config supplies the Walker's tunables. It mirrors the subset of
// detector.Config the Walker needs, decoupled to avoid an import cycle.
type Config struct {
	MaxProjectFiles int
	MaxDepth        int
	SkipDirs        map[string]struct{}
}

// Result is the Walker's output, equivalent to spec's ProjectStructure, plus
// bookkeeping the Orchestrator needs but that isn't part of the public
// profile (markers found, and non-fatal notes).
type Result struct {
	SourceDirs  []string
	TestDirs    []string
	ConfigFiles []string
	DocFiles    []string
	FileTypes   map[string]int
	TotalFiles  int
	TotalLines  int

	// MarkerFiles is every config-classified file found, by basename, used
	// by the Orchestrator to decide which Manifest Parsers to run.
	MarkerFiles map[string][]string

	// Notes accumulates skipped-entry and partial-walk diagnostics.
	Notes []string
}

type queueItem struct {
	path  string
	depth int
}

// Walk performs the iterative traversal described in spec.md §4.1. root must
// be an existing, readable directory; a read failure on root itself is
// returned as an error. Every other unreadable entry is skipped with a note.
func Walk(ctx context.Context, fs afero.Fs, root string, cfg Config) (*Result, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", root)
	}

	res := &Result{
		FileTypes:   make(map[string]int),
		MarkerFiles: make(map[string][]string),
	}

	queue := []queueItem{{path: root, depth: 0}}

	var partial bool

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("walk cancelled: %w", err)
		}

		if res.TotalFiles >= cfg.MaxProjectFiles {
			partial = true

			break
		}

		item := queue[0]
		queue = queue[1:]

		entries, err := afero.ReadDir(fs, item.path)
		if err != nil {
			if item.path == root {
				return nil, fmt.Errorf("read root: %w", err)
			}

			res.Notes = append(res.Notes, fmt.Sprintf("skipped unreadable directory %q: %v", item.path, err))

			continue
		}

		for _, entry := range entries {
			if res.TotalFiles >= cfg.MaxProjectFiles {
				partial = true

				break
			}

			fullPath := filepath.Join(item.path, entry.Name())

			if entry.IsDir() {
				processDir(&queue, res, entry.Name(), fullPath, item.depth, cfg)

				continue
			}

			if err := processFile(ctx, fs, res, entry.Name(), fullPath); err != nil {
				res.Notes = append(res.Notes, fmt.Sprintf("skipped unreadable file %q: %v", fullPath, err))
			}
		}
	}

	if partial {
		res.Notes = append(res.Notes, fmt.Sprintf("partial walk: reached max_project_files=%d", cfg.MaxProjectFiles))
	}

	return res, nil
}

func processDir(queue *[]queueItem, res *Result, basename, fullPath string, depth int, cfg Config) {
	if _, skip := cfg.SkipDirs[basename]; skip {
		return
	}

	role := classify.ClassifyDir(basename)

	switch role {
	case classify.DirRoleSource:
		res.SourceDirs = append(res.SourceDirs, fullPath)

		return
	case classify.DirRoleTest:
		res.TestDirs = append(res.TestDirs, fullPath)

		return
	case classify.DirRoleNone:
	}

	if depth >= cfg.MaxDepth {
		return
	}

	*queue = append(*queue, queueItem{path: fullPath, depth: depth + 1})
}

func processFile(ctx context.Context, fs afero.Fs, res *Result, basename, fullPath string) error {
	res.TotalFiles++

	ext := classify.Extension(basename)
	if ext != "" {
		res.FileTypes[ext]++
	}

	if classify.IsConfig(basename) {
		res.ConfigFiles = append(res.ConfigFiles, fullPath)
		res.MarkerFiles[basename] = append(res.MarkerFiles[basename], fullPath)
	}

	if classify.IsDocumentation(basename) {
		res.DocFiles = append(res.DocFiles, fullPath)
	}

	if classify.IsSource(basename) {
		lines, err := countLines(ctx, fs, fullPath)
		if err != nil {
			return err
		}

		res.TotalLines += lines
	}

	return nil
}

// countLines reads fullPath as bytes, tolerant of invalid text encoding,
// counting '\n' separators and checking ctx between chunks.
func countLines(ctx context.Context, fs afero.Fs, fullPath string) (int, error) {
	file, err := fs.Open(fullPath)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, lineCountChunk)

	lines := 0
	sawAnyByte := false
	lastByteWasNewline := false

	buf := make([]byte, lineCountChunk)

	for {
		if err := ctx.Err(); err != nil {
			return lines, fmt.Errorf("line count cancelled: %w", err)
		}

		n, readErr := reader.Read(buf)
		if n > 0 {
			sawAnyByte = true

			for _, b := range buf[:n] {
				if b == '\n' {
					lines++
					lastByteWasNewline = true
				} else {
					lastByteWasNewline = false
				}
			}
		}

		if readErr == io.EOF {
			break
		}

		if readErr != nil {
			return lines, fmt.Errorf("read: %w", readErr)
		}
	}

	// Tolerate a missing final newline: a non-empty file with trailing
	// content after the last '\n' still counts as one more line.
	if sawAnyByte && !lastByteWasNewline {
		lines++
	}

	return lines, nil
}

// SortedMarkerBasenames returns the marker-file basenames found during the
// walk, sorted for deterministic iteration by callers that don't care about
// discovery order.
func (r *Result) SortedMarkerBasenames() []string {
	names := make([]string, 0, len(r.MarkerFiles))
	for name := range r.MarkerFiles {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
