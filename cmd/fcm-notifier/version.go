package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time by `govvv build`.
var (
	GitCommit = "unknown"
	GitBranch = "unknown"
	GitState  = "unknown"
	BuildDate = "unknown"
	Version   = "dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
	},
}

func versionString() string {
	return fmt.Sprintf("fcm-notifier %s (commit %s, branch %s, state %s, built %s)", Version, GitCommit, GitBranch, GitState, BuildDate)
}
