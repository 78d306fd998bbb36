package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "unknown"
)

var showDeps bool

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&showDeps, "deps", false, "print dependencies")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildVersionString())
		if showDeps {
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "Dependencies:\n\n"+strings.Join(dependencyList(), "\n"))
		}
	},
}

// buildVersionString creates the "panel version" output.
func buildVersionString() string {
	return fmt.Sprintf("panel %s %s/%s\n\nCommit: %s\nBuilt with: %s",
		version, runtime.GOOS, runtime.GOARCH, commit, runtime.Version())
}

// dependencyList returns a sorted dependency list on the format path="version".
func dependencyList() []string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	deps := make([]string, 0, len(info.Deps))
	for _, dep := range info.Deps {
		deps = append(deps, fmt.Sprintf("%s=%q", dep.Path, dep.Version))
	}
	sort.Strings(deps)
	return deps
}
