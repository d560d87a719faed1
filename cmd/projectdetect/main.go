// Command projectdetect walks a source tree and reports its language, build
// system, dependencies, VCS state, and structural shape.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sumatoshi-tech/projectdetect/cmd/projectdetect/commands"
	"github.com/sumatoshi-tech/projectdetect/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	rootCmd := &cobra.Command{
		Use:   "projectdetect",
		Short: "Project Detector - identify a source tree's language, build system, and shape",
		Long: `projectdetect inspects a source tree without executing any of its build
or test tooling.

Commands:
  detect         Inspect a project and print its profile
  serve-metrics  Expose a Prometheus scrape endpoint
  mcp            Start an MCP server exposing the detector as a tool`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewServeMetricsCommand())
	rootCmd.AddCommand(commands.NewMCPCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "projectdetect %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
