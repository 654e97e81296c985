package main

import (
	"context"

	"github.com/datawire/disttool/pkg/clean"
	"github.com/datawire/disttool/pkg/project"
	"github.com/datawire/disttool/pkg/pybuild"
	"github.com/datawire/disttool/pkg/python/pep503"
	"github.com/datawire/disttool/pkg/task"
	"github.com/datawire/disttool/pkg/twine"
)

// publishOptions adjust the "publish" target.
type publishOptions struct {
	// skipPreflight disables the "is this already on the index?" check.
	skipPreflight bool
}

// projectTargets wires up the Makefile-equivalent targets for proj:
//
//	clean
//	dist    <- clean
//	publish <- dist
//
// The artifact list that "dist" produces flows to "publish" through the
// shared closure.
func projectTargets(proj *project.Project, pubOpts publishOptions) (*task.Set, error) {
	var artifacts []string
	return task.NewSet(
		&task.Target{
			Name: "clean",
			Run: func(ctx context.Context) error {
				return clean.Scrub(ctx, proj.Root)
			},
		},
		&task.Target{
			Name: "dist",
			Deps: []string{"clean"},
			Run: func(ctx context.Context) error {
				var err error
				artifacts, err = pybuild.Build(ctx, proj)
				return err
			},
		},
		&task.Target{
			Name: "publish",
			Deps: []string{"dist"},
			Run: func(ctx context.Context) error {
				if !pubOpts.skipPreflight && proj.Name != "" {
					client := pep503.Client{BaseURL: proj.IndexURL}
					if err := twine.CheckNotPublished(ctx, client, proj.Name, artifacts); err != nil {
						return err
					}
				}
				return twine.Upload(ctx, proj, artifacts)
			},
		},
	)
}

// runTarget is the shared RunE body for the clean/dist/publish commands.
func runTarget(ctx context.Context, name string, pubOpts publishOptions) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}
	targets, err := projectTargets(proj, pubOpts)
	if err != nil {
		return err
	}
	return targets.Run(ctx, name)
}
