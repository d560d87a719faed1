package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	hostconfig "github.com/sumatoshi-tech/projectdetect/pkg/config"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector"
	"github.com/sumatoshi-tech/projectdetect/pkg/detector/model"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// ErrUnknownFormat is returned when --format names anything but text or json.
var ErrUnknownFormat = errors.New("unknown --format value, want \"text\" or \"json\"")

// NewDetectCommand creates the detect subcommand.
func NewDetectCommand() *cobra.Command {
	var (
		format    string
		maxDepth  int
		maxFiles  int
		noGit     bool
		configPth string
	)

	cmd := &cobra.Command{
		Use:   "detect <path>",
		Short: "Inspect a project and print its profile",
		Long: `Walks the source tree rooted at <path> and reports its detected
language, build system, dependency graph, VCS state, and structural shape.
Never executes any build, test, or package-manager command it discovers.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			if format != formatText && format != formatJSON {
				return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
			}

			root, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			cfg, err := buildDetectorConfig(configPth, maxDepth, maxFiles, noGit)
			if err != nil {
				return err
			}

			profile, err := detector.Detect(cobraCmd.Context(), afero.NewOsFs(), root, cfg)
			if err != nil {
				return fmt.Errorf("detect project: %w", err)
			}

			profile.Notes = append(profile.Notes, "correlation_id="+uuid.New().String())

			if format == formatJSON {
				return printJSON(cobraCmd, profile)
			}

			printText(cobraCmd, profile)

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "output format: text or json")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum directory recursion depth (0 uses the configured default)")
	cmd.Flags().IntVar(&maxFiles, "max-files", 0, "maximum number of files to visit (0 uses the configured default)")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip reading local VCS metadata")
	cmd.Flags().StringVar(&configPth, "config", "", "path to a projectdetect config file")

	return cmd
}

func buildDetectorConfig(configPath string, maxDepth, maxFiles int, noGit bool) (detector.Config, error) {
	hostCfg, err := hostconfig.LoadConfig(configPath)
	if err != nil {
		return detector.Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg := detector.Config{
		MaxProjectFiles:    hostCfg.Detector.MaxProjectFiles,
		MaxDepth:           hostCfg.Detector.MaxDepth,
		EnableGitAnalysis:  hostCfg.Detector.EnableGitAnalysis,
		SkipDirs:           hostCfg.Detector.SkipDirs,
		MinConfidence:      hostCfg.Detector.MinConfidence,
		EnableEnryTieBreak: hostCfg.Detector.EnableEnryTieBreak,
	}

	if maxDepth > 0 {
		cfg.MaxDepth = maxDepth
	}

	if maxFiles > 0 {
		cfg.MaxProjectFiles = maxFiles
	}

	if noGit {
		cfg.EnableGitAnalysis = false
	}

	return cfg, nil
}

func printJSON(cmd *cobra.Command, profile *model.ProjectProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return nil
}

func printText(cmd *cobra.Command, profile *model.ProjectProfile) {
	out := cmd.OutOrStdout()

	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	fmt.Fprintf(out, "Project: %s\n", profile.Root)

	if primary := profile.PrimaryLanguage(); primary != nil {
		color.New(color.FgGreen).Fprintf(out, "Primary language: %s (confidence %.2f)\n",
			primary.Language.Kind, primary.Confidence)
	} else {
		color.New(color.FgYellow).Fprintf(out, "Primary language: unknown\n")
	}

	fmt.Fprintf(out, "Build system: %s\n", profile.BuildSystem.Kind)
	fmt.Fprintf(out, "Files: %s, lines: %s\n",
		humanize.Comma(int64(profile.Structure.TotalFiles)),
		humanize.Comma(int64(profile.Structure.TotalLines)))

	printLanguageTable(out, profile.Languages)
	printDependencyTable(out, profile.Dependencies)

	if profile.Git != nil {
		fmt.Fprintf(out, "Git branch: %s (uncommitted changes: %t)\n",
			profile.Git.CurrentBranch, profile.Git.HasUncommittedChanges)
	}

	for _, note := range profile.Notes {
		color.New(color.FgYellow).Fprintf(out, "note: %s\n", note)
	}
}

func printLanguageTable(out io.Writer, languages []model.LanguageAnalysisResult) {
	if len(languages) == 0 {
		return
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Language", "Confidence", "Frameworks"})

	for _, lang := range languages {
		names := make([]string, len(lang.Frameworks))
		for i, fw := range lang.Frameworks {
			names[i] = fw.Name
		}

		tbl.AppendRow(table.Row{lang.Language.Kind, fmt.Sprintf("%.2f", lang.Confidence), strings.Join(names, ", ")})
	}

	tbl.Render()
}

func printDependencyTable(out io.Writer, graph model.DependencyGraph) {
	if graph.TotalCount == 0 {
		return
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Dependency", "Version", "Kind"})

	for _, dep := range graph.Runtime {
		tbl.AppendRow(table.Row{dep.Name, dep.VersionSpec, dep.Kind})
	}

	for _, dep := range graph.Dev {
		tbl.AppendRow(table.Row{dep.Name, dep.VersionSpec, dep.Kind})
	}

	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("Total: %s", humanize.Comma(int64(graph.TotalCount)))})
	tbl.Render()
}
