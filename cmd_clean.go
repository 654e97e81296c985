package main

import (
	"github.com/spf13/cobra"

	"github.com/datawire/disttool/pkg/cliutil"
)

func init() {
	argparser.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Remove build byproducts and editor litter from the tree",
		Long: "Delete the dist, build, and *.egg-info directories, and any " +
			"*.pyc, Thumbs.db, *~, or .DS_Store file, anywhere under the project " +
			"directory.  A tree with nothing to delete is fine; running clean " +
			"twice is the same as running it once.",
		Args: cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, _ []string) error {
			return runTarget(flags.Context(), "clean", publishOptions{})
		},
	})
}
