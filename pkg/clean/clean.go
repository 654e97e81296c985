// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package clean scrubs build byproducts and editor litter from a source
// tree.
package clean

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/datawire/dlib/derror"
	"github.com/datawire/dlib/dlog"
)

// Directory names removed (recursively) wherever they appear in the tree.
var junkDirPatterns = []string{
	"dist",
	"build",
	"*.egg-info",
}

// File names removed wherever they appear in the tree.
var junkFilePatterns = []string{
	"*.pyc",
	"Thumbs.db",
	"*~",
	".DS_Store",
}

func isJunk(patterns []string, name string) bool {
	for _, pattern := range patterns {
		// The patterns are all valid, so path.Match can't error.
		if matched, _ := path.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Scrub removes junk from the tree rooted at root.  A tree with nothing to
// remove is not an error; Scrub on an already-clean tree is a no-op.
// Errors removing individual entries are collected and the walk continues,
// so one stubborn file doesn't shadow the rest of the cleanup.
func Scrub(ctx context.Context, root string) error {
	var errs derror.MultiError
	walkErr := filepath.WalkDir(root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if p == root {
			return nil
		}
		name := entry.Name()
		if entry.IsDir() {
			if !isJunk(junkDirPatterns, name) {
				return nil
			}
			dlog.Debugf(ctx, "clean: removing %s/", p)
			if err := os.RemoveAll(p); err != nil {
				errs = append(errs, err)
			}
			// Don't descend into what we just removed.
			return fs.SkipDir
		}
		if isJunk(junkFilePatterns, name) {
			dlog.Debugf(ctx, "clean: removing %s", p)
			if err := os.Remove(p); err != nil {
				errs = append(errs, err)
			}
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
