// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package bdist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/disttool/pkg/python/bdist"
)

func TestParseFilename(t *testing.T) {
	t.Parallel()
	testcases := map[string]*bdist.Filename{
		"oracle_ads-2.8.0-py3-none-any.whl": {
			Distribution: "oracle_ads",
			Version:      "2.8.0",
			Kind:         bdist.KindWheel,
		},
		"numpy-1.21.0-1-cp39-cp39-manylinux1_x86_64.whl": {
			Distribution: "numpy",
			Version:      "1.21.0",
			Kind:         bdist.KindWheel,
		},
		"oracle_ads-2.8.0.tar.gz": {
			Distribution: "oracle_ads",
			Version:      "2.8.0",
			Kind:         bdist.KindSdist,
		},
		"some-dashed-name-1.0.zip": {
			Distribution: "some-dashed-name",
			Version:      "1.0",
			Kind:         bdist.KindSdist,
		},
		"dist/oracle_ads-2.8.0.tar.gz": {
			Distribution: "oracle_ads",
			Version:      "2.8.0",
			Kind:         bdist.KindSdist,
		},

		"README.md":     nil,
		"x.whl":         nil,
		"a-b-c.whl":     nil,
		"noversion.zip": nil,
		"-1.0.tar.gz":   nil,
	}
	for input, exp := range testcases {
		input, exp := input, exp
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			act, err := bdist.ParseFilename(input)
			if exp == nil {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, exp, act)
		})
	}
}
