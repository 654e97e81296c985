package main

import (
	"github.com/spf13/cobra"

	"github.com/datawire/disttool/pkg/cliutil"
)

func init() {
	var pubOpts publishOptions
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build distribution artifacts and upload them to the package index",
		Long: "Run dist (which runs clean), then upload everything in the dist " +
			"directory with the project's upload tool (by default `twine " +
			"upload`)." +
			"\n\n" +
			"Before uploading anything, the index's Simple API is checked for " +
			"files or sdist versions that are already published, so a version " +
			"collision fails fast instead of failing from inside the upload " +
			"tool.  The check needs the project's `name` to be configured; " +
			"without it, or with --skip-preflight, the upload tool's own error " +
			"handling is all there is.",
		Args: cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, _ []string) error {
			return runTarget(flags.Context(), "publish", pubOpts)
		},
	}
	cmd.Flags().BoolVar(&pubOpts.skipPreflight, "skip-preflight", false,
		"Don't check the index for already-published files before uploading")
	argparser.AddCommand(cmd)
}
