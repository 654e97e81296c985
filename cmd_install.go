package main

import (
	"context"

	"github.com/datawire/dlib/dgroup"
	"github.com/spf13/cobra"

	"github.com/datawire/disttool/pkg/cliutil"
	"github.com/datawire/disttool/pkg/jupyter"
)

func init() {
	var insecure bool
	cmd := &cobra.Command{
		Use:     "install",
		Aliases: []string{"install.ads"}, // the old Makefile target name
		Short:   "Editable-install the tree and launch a notebook server",
		Long: "Set up a development environment in three steps: pip-install " +
			"the working tree in editable mode, enable the project's notebook " +
			"server extension (if one is configured), and launch the notebook " +
			"server in the foreground.  A failing step stops the ones after " +
			"it.  The server keeps the terminal until it exits or is " +
			"interrupted." +
			"\n\n" +
			"The old Makefile launched the server with the auth token, " +
			"password, and XSRF check all disabled.  That is no longer the " +
			"default; pass --insecure-notebook to get it back.",
		Args: cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, _ []string) error {
			proj, err := loadProject()
			if err != nil {
				return err
			}
			grp := dgroup.NewGroup(flags.Context(), dgroup.GroupConfig{
				EnableSignalHandling: true,
			})
			grp.Go("install", func(ctx context.Context) error {
				return jupyter.DevEnvironment(ctx, proj, insecure)
			})
			return grp.Wait()
		},
	}
	cmd.Flags().BoolVar(&insecure, "insecure-notebook", false,
		"Launch the server with the auth token, password, and XSRF check disabled")
	argparser.AddCommand(cmd)
}
