package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/disttool/pkg/project"
	"github.com/datawire/disttool/pkg/testutil"
)

func TestPublishChain(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)
	root := t.TempDir()

	// Stale state that "clean" must take care of before the build runs.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dist"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dist", "stale-0.9.tar.gz"),
		[]byte("stale"), 0o644))

	uploadLog := filepath.Join(t.TempDir(), "upload.log")
	proj := project.Defaults(root)
	proj.BuildTool = []string{testutil.StubCommand(t, "build",
		`mkdir -p dist
echo new > dist/oracle_ads-1.0.tar.gz`)}
	proj.UploadTool = []string{testutil.StubCommand(t, "twine",
		`echo "$@" > `+uploadLog)}

	targets, err := projectTargets(proj, publishOptions{})
	require.NoError(t, err)
	require.NoError(t, targets.Run(ctx, "publish"))

	// The stale artifact was cleaned before the build, so the upload saw
	// only the fresh one.
	logged, err := os.ReadFile(uploadLog)
	require.NoError(t, err)
	uploaded := strings.Fields(string(logged))
	assert.Equal(t, []string{filepath.Join(root, "dist", "oracle_ads-1.0.tar.gz")}, uploaded)
}

func TestPublishNotReachedWhenBuildFails(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)
	root := t.TempDir()

	uploadMarker := filepath.Join(t.TempDir(), "uploaded")
	proj := project.Defaults(root)
	proj.BuildTool = []string{testutil.StubCommand(t, "build", `exit 1`)}
	proj.UploadTool = []string{testutil.StubCommand(t, "twine", `touch `+uploadMarker)}

	targets, err := projectTargets(proj, publishOptions{})
	require.NoError(t, err)
	require.Error(t, targets.Run(ctx, "publish"))

	_, statErr := os.Stat(uploadMarker)
	assert.True(t, os.IsNotExist(statErr), "the upload tool must never have run")
}

func TestDistCleansFirst(t *testing.T) {
	t.Parallel()
	ctx := dlog.NewTestContext(t, true)
	root := t.TempDir()

	junk := filepath.Join(root, "module.pyc")
	require.NoError(t, os.WriteFile(junk, []byte("junk"), 0o644))

	proj := project.Defaults(root)
	proj.BuildTool = []string{testutil.StubCommand(t, "build",
		`mkdir -p dist
echo new > dist/oracle_ads-1.0.tar.gz`)}

	targets, err := projectTargets(proj, publishOptions{})
	require.NoError(t, err)
	require.NoError(t, targets.Run(ctx, "dist"))

	_, statErr := os.Stat(junk)
	assert.True(t, os.IsNotExist(statErr))
}
