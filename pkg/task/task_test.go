// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package task_test

import (
	"context"
	"errors"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/disttool/pkg/task"
)

func recordingTarget(name string, deps []string, log *[]string, err error) *task.Target {
	return &task.Target{
		Name: name,
		Deps: deps,
		Run: func(_ context.Context) error {
			*log = append(*log, name)
			return err
		},
	}
}

func TestRunOrdering(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)

	var log []string
	set, err := task.NewSet(
		recordingTarget("clean", nil, &log, nil),
		recordingTarget("dist", []string{"clean"}, &log, nil),
		recordingTarget("publish", []string{"dist"}, &log, nil),
	)
	require.NoError(t, err)

	require.NoError(t, set.Run(ctx, "publish"))
	assert.Equal(t, []string{"clean", "dist", "publish"}, log)
}

func TestRunOncePerInvocation(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)

	var log []string
	set, err := task.NewSet(
		recordingTarget("clean", nil, &log, nil),
		// Both depend on clean; it must still run only once.
		recordingTarget("dist", []string{"clean"}, &log, nil),
		recordingTarget("publish", []string{"dist", "clean"}, &log, nil),
	)
	require.NoError(t, err)

	require.NoError(t, set.Run(ctx, "publish"))
	assert.Equal(t, []string{"clean", "dist", "publish"}, log)
}

func TestFailedPrerequisiteStopsDependents(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)

	bang := errors.New("bang")
	var log []string
	set, err := task.NewSet(
		recordingTarget("clean", nil, &log, nil),
		recordingTarget("dist", []string{"clean"}, &log, bang),
		recordingTarget("publish", []string{"dist"}, &log, nil),
	)
	require.NoError(t, err)

	err = set.Run(ctx, "publish")
	require.Error(t, err)
	assert.True(t, errors.Is(err, bang))
	// "publish" must never have started.
	assert.Equal(t, []string{"clean", "dist"}, log)
}

func TestValidation(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		_, err := task.NewSet(&task.Target{Name: ""})
		assert.Error(t, err)
	})
	t.Run("duplicate name", func(t *testing.T) {
		_, err := task.NewSet(
			&task.Target{Name: "dist"},
			&task.Target{Name: "dist"},
		)
		assert.Error(t, err)
	})
	t.Run("unknown dep", func(t *testing.T) {
		_, err := task.NewSet(&task.Target{Name: "dist", Deps: []string{"clean"}})
		assert.Error(t, err)
	})
	t.Run("cycle", func(t *testing.T) {
		_, err := task.NewSet(
			&task.Target{Name: "a", Deps: []string{"b"}},
			&task.Target{Name: "b", Deps: []string{"a"}},
		)
		assert.Error(t, err)
	})
	t.Run("self loop", func(t *testing.T) {
		_, err := task.NewSet(&task.Target{Name: "a", Deps: []string{"a"}})
		assert.Error(t, err)
	})
}

func TestRunUnknownTarget(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)

	set, err := task.NewSet(&task.Target{Name: "clean"})
	require.NoError(t, err)
	assert.Error(t, set.Run(ctx, "nope"))
}
