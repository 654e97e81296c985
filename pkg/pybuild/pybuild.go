// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package pybuild deals with invoking the project's build frontend to
// produce distribution artifacts.
package pybuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/datawire/dlib/dexec"
	"github.com/datawire/dlib/dlog"

	"github.com/datawire/disttool/pkg/project"
	"github.com/datawire/disttool/pkg/reproducible"
)

// Build runs the configured build tool in the project root and returns the
// artifact files it left in the dist directory.  The tool's output goes to
// our stderr; its failure is the caller's failure.
//
// SOURCE_DATE_EPOCH is passed through to the tool, pinned to
// reproducible.Now() if the caller's environment doesn't set it, so that
// PEP 517 backends that honor it produce stable archives.
func Build(ctx context.Context, proj *project.Project) ([]string, error) {
	args := proj.BuildTool
	if len(args) == 0 {
		return nil, fmt.Errorf("no build tool configured")
	}
	cmd := dexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = proj.Root
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	if os.Getenv("SOURCE_DATE_EPOCH") == "" {
		cmd.Env = append(cmd.Env,
			"SOURCE_DATE_EPOCH="+strconv.FormatInt(reproducible.Now().Unix(), 10))
	}
	if err := cmd.Run(); err != nil {
		return nil, err
	}

	artifacts, err := Artifacts(proj)
	if err != nil {
		return nil, err
	}
	for _, artifact := range artifacts {
		dlog.Infof(ctx, "built %s", filepath.Base(artifact))
	}
	return artifacts, nil
}

// Artifacts lists the regular files in the project's dist directory,
// sorted by name.  A successful build that left nothing behind is an
// error.
func Artifacts(proj *project.Project) ([]string, error) {
	entries, err := os.ReadDir(proj.DistPath())
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(proj.DistPath(), entry.Name()))
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("%q produced no artifacts in %s",
			strings.Join(proj.BuildTool, " "), proj.DistDir)
	}
	return files, nil
}
