// Package buildsystem maps marker files to a BuildSystem variant, following
// the decision order in spec.md §4.5 (analysis.rs's detect_build_system).
package buildsystem

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sumatoshi-tech/projectdetect/pkg/detector/manifest"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

// Detect inspects root for build-system marker files in priority order and
// returns the first match. An unreadable Cargo.toml yields Cargo with an
// Unknown target kind, an unreadable package.json yields its variant with
// no scripts, and an unreadable pyproject.toml is treated as not Poetry; an
// unreadable Makefile is returned as an error.
func Detect(fs afero.Fs, root string) (model.BuildSystem, error) {
	if exists(fs, root, "Cargo.toml") {
		return detectCargo(fs, root), nil
	}

	// Poetry's pyproject.toml is checked before package.json: the spec's
	// BuildSystem variant set names Poetry but the documented decision order
	// predates it (see DESIGN.md), so it is slotted in right after Cargo,
	// the other manifest-first ecosystem.
	if bs, ok := detectPoetry(fs, root); ok {
		return bs, nil
	}

	if exists(fs, root, "package.json") {
		return detectNode(fs, root), nil
	}

	if exists(fs, root, "vite.config.ts") {
		return model.BuildSystem{Kind: model.BuildSystemVite, ConfigPath: filepath.Join(root, "vite.config.ts")}, nil
	}

	if exists(fs, root, "vite.config.js") {
		return model.BuildSystem{Kind: model.BuildSystemVite, ConfigPath: filepath.Join(root, "vite.config.js")}, nil
	}

	if exists(fs, root, "webpack.config.js") {
		return model.BuildSystem{Kind: model.BuildSystemWebpack, ConfigPath: filepath.Join(root, "webpack.config.js")}, nil
	}

	if exists(fs, root, "Makefile") {
		return detectMake(fs, root)
	}

	hasDockerfile := exists(fs, root, "Dockerfile")
	hasCompose := exists(fs, root, "docker-compose.yml") || exists(fs, root, "docker-compose.yaml")

	if hasDockerfile || hasCompose {
		return model.BuildSystem{Kind: model.BuildSystemDocker, HasCompose: hasCompose}, nil
	}

	return model.BuildSystem{Kind: model.BuildSystemUnknown}, nil
}

func exists(fs afero.Fs, root, name string) bool {
	ok, err := afero.Exists(fs, filepath.Join(root, name))

	return err == nil && ok
}

func detectCargo(fs afero.Fs, root string) model.BuildSystem {
	data, err := afero.ReadFile(fs, filepath.Join(root, "Cargo.toml"))
	if err != nil {
		return model.BuildSystem{Kind: model.BuildSystemCargo, TargetKind: model.CargoTargetUnknown}
	}

	target := model.CargoTargetUnknown

	switch {
	case manifest.CargoHasBinTarget(data):
		target = model.CargoTargetBinary
	case manifest.CargoHasLibTarget(data):
		target = model.CargoTargetLibrary
	}

	return model.BuildSystem{Kind: model.BuildSystemCargo, TargetKind: target}
}

func detectPoetry(fs afero.Fs, root string) (model.BuildSystem, bool) {
	if !exists(fs, root, "pyproject.toml") {
		return model.BuildSystem{}, false
	}

	data, err := afero.ReadFile(fs, filepath.Join(root, "pyproject.toml"))
	if err != nil {
		return model.BuildSystem{}, false
	}

	if !manifest.PyProjectHasPoetry(data) {
		return model.BuildSystem{}, false
	}

	return model.BuildSystem{Kind: model.BuildSystemPoetry, Scripts: manifest.PyProjectPoetryScripts(data)}, true
}

func detectNode(fs afero.Fs, root string) model.BuildSystem {
	kind := model.BuildSystemNpm

	switch {
	case exists(fs, root, "bun.lockb"):
		kind = model.BuildSystemBun
	case exists(fs, root, "pnpm-lock.yaml"):
		kind = model.BuildSystemPnpm
	case exists(fs, root, "yarn.lock"):
		kind = model.BuildSystemYarn
	}

	var scripts []string

	data, err := afero.ReadFile(fs, filepath.Join(root, "package.json"))
	if err == nil {
		scripts, _ = manifest.PackageJSONScripts(data)
	}

	return model.BuildSystem{Kind: kind, Scripts: scripts}
}

func detectMake(fs afero.Fs, root string) (model.BuildSystem, error) {
	data, err := afero.ReadFile(fs, filepath.Join(root, "Makefile"))
	if err != nil {
		return model.BuildSystem{}, fmt.Errorf("read Makefile: %w", err)
	}

	return model.BuildSystem{Kind: model.BuildSystemMake, Targets: makeTargets(data)}, nil
}

// makeTargets extracts every line containing ':' that does not start with a
// tab or space, taking everything before the first ':'.
func makeTargets(data []byte) []string {
	var targets []string

	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 || line[0] == '\t' || line[0] == ' ' {
				continue
			}

			for j, b := range line {
				if b == ':' {
					targets = append(targets, string(line[:j]))

					break
				}
			}
		}
	}

	return targets
}
