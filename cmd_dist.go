package main

import (
	"github.com/spf13/cobra"

	"github.com/datawire/disttool/pkg/cliutil"
)

func init() {
	argparser.AddCommand(&cobra.Command{
		Use:   "dist",
		Short: "Build distribution artifacts (sdist and wheel)",
		Long: "Run clean, then invoke the project's build tool (by default " +
			"`python3 -m build`) to produce distribution artifacts in the dist " +
			"directory.  A failure from the build tool is reported as-is." +
			"\n\n" +
			"SOURCE_DATE_EPOCH is passed through to the build tool (pinned to " +
			"the current time if unset), so backends that honor it produce " +
			"reproducible archives.",
		Args: cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, _ []string) error {
			return runTarget(flags.Context(), "dist", publishOptions{})
		},
	})
}
