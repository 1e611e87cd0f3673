package cliutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Version information, set at build time, reported by the version
// subcommand every kernel binary gets via AddVersionCommand.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// BinName returns the base name of the current executable, used to build
// dynamic --help examples the way
// junjiewwang-perf-analysis/cmd/cli/cmd/root.go does.
func BinName() string {
	return filepath.Base(os.Args[0])
}

// AddVersionCommand attaches a "version" subcommand to cmd, matching
// junjiewwang-perf-analysis/cmd/cli/cmd/version.go.
func AddVersionCommand(cmd *cobra.Command) {
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(*cobra.Command, []string) {
			fmt.Printf("%s version %s (%s)\n", BinName(), Version, GitCommit)
		},
	})
}
