// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package jupyter deals with the developer-install workflow: an editable
// install of the working tree, enabling the project's notebook server
// extension, and launching the server itself.
package jupyter

import (
	"context"
	"os"

	"github.com/datawire/dlib/dexec"
	"github.com/datawire/dlib/dlog"

	"github.com/datawire/disttool/pkg/project"
)

func run(ctx context.Context, proj *project.Project, name string, args ...string) error {
	cmd := dexec.CommandContext(ctx, name, args...)
	cmd.Dir = proj.Root
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// EditableInstall pip-installs the working tree in editable mode, so that
// source edits are live in the environment without reinstalling.
func EditableInstall(ctx context.Context, proj *project.Project) error {
	return run(ctx, proj, proj.Python, "-m", "pip", "install", "-e", ".")
}

// EnableExtension enables the project's notebook server extension.  A
// project with no extension configured skips this step.
func EnableExtension(ctx context.Context, proj *project.Project) error {
	if proj.Jupyter.Extension == "" {
		dlog.Debugf(ctx, "no server extension configured; skipping enable step")
		return nil
	}
	return run(ctx, proj, proj.Jupyter.Command,
		"serverextension", "enable", "--py", proj.Jupyter.Extension)
}

// InsecureArgs turn off the launched server's auth token, password, and
// XSRF check.  Only LaunchServer with insecure=true passes them.
var InsecureArgs = []string{
	"--NotebookApp.token=",
	"--NotebookApp.password=",
	"--NotebookApp.disable_check_xsrf=True",
}

// DevEnvironment runs the whole developer-install workflow: the editable
// install, then the extension enable, then the server launch.  A failing
// step stops the ones after it.
func DevEnvironment(ctx context.Context, proj *project.Project, insecure bool) error {
	if err := EditableInstall(ctx, proj); err != nil {
		return err
	}
	if err := EnableExtension(ctx, proj); err != nil {
		return err
	}
	return LaunchServer(ctx, proj, insecure)
}

// LaunchServer starts the notebook server in the foreground and blocks
// until it exits or ctx is canceled.  The terminal is the server's until
// then.
func LaunchServer(ctx context.Context, proj *project.Project, insecure bool) error {
	args := append([]string{proj.Jupyter.App}, proj.Jupyter.Args...)
	if insecure {
		dlog.Warnf(ctx, "launching %q with the auth token, password, and XSRF check disabled",
			proj.Jupyter.App)
		args = append(args, InsecureArgs...)
	}
	return run(ctx, proj, proj.Jupyter.Command, args...)
}
