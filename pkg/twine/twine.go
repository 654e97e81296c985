// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package twine deals with uploading built distributions to a package
// index, with a preflight against the index's Simple API so that a
// version collision fails before anything hits the wire.
package twine

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/datawire/dlib/dexec"
	"github.com/datawire/dlib/dlog"

	"github.com/datawire/disttool/pkg/project"
	"github.com/datawire/disttool/pkg/python/bdist"
	"github.com/datawire/disttool/pkg/python/pep440"
	"github.com/datawire/disttool/pkg/python/pep503"
)

// CheckNotPublished errors if the index already has any of the artifacts.
// A wheel conflicts on exact filename; an sdist additionally conflicts on
// an equal (canonicalized) version, so "1.0.post1" vs "1.0-post1"
// spellings still collide.  A project the index has never heard of (404)
// passes.
func CheckNotPublished(
	ctx context.Context,
	client pep503.Client,
	projectName string,
	artifacts []string,
) error {
	links, err := client.ProjectFiles(ctx, projectName)
	if err != nil {
		var httpErr *pep503.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			dlog.Debugf(ctx, "index has no project %q; nothing to conflict with", projectName)
			return nil
		}
		return err
	}

	publishedFiles := make(map[string]struct{}, len(links))
	publishedSdistVers := make(map[string]struct{})
	for _, link := range links {
		publishedFiles[link.Text] = struct{}{}
		// Unparseable filenames on the index are somebody else's problem.
		if info, err := bdist.ParseFilename(link.Text); err == nil && info.Kind == bdist.KindSdist {
			if ver, err := pep440.ParseVersion(info.Version); err == nil {
				publishedSdistVers[ver.String()] = struct{}{}
			}
		}
	}

	var conflicts []string
	for _, artifact := range artifacts {
		base := filepath.Base(artifact)
		if _, dup := publishedFiles[base]; dup {
			conflicts = append(conflicts, base)
			continue
		}
		info, err := bdist.ParseFilename(base)
		if err != nil {
			return err
		}
		if info.Kind != bdist.KindSdist {
			continue
		}
		ver, err := pep440.ParseVersion(info.Version)
		if err != nil {
			return fmt.Errorf("%s: %w", base, err)
		}
		if _, dup := publishedSdistVers[ver.String()]; dup {
			conflicts = append(conflicts,
				fmt.Sprintf("%s (version %s already has an sdist on the index)", base, ver))
		}
	}
	if len(conflicts) > 0 {
		return fmt.Errorf("index %s already has: %s",
			client.BaseURL, strings.Join(conflicts, ", "))
	}
	return nil
}

// Upload invokes the configured upload tool with the artifact paths
// appended.  Failures (network, auth, the index rejecting a file) come
// back as the tool's exit status, untranslated.
func Upload(ctx context.Context, proj *project.Project, artifacts []string) error {
	if len(artifacts) == 0 {
		return errors.New("nothing to upload")
	}
	args := append(append([]string(nil), proj.UploadTool...), artifacts...)
	cmd := dexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = proj.Root
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
