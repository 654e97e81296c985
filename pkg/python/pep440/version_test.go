// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datawire/disttool/pkg/python/pep440"
	"github.com/datawire/disttool/pkg/testutil"
)

func TestParseNormalization(t *testing.T) {
	t.Parallel()
	// input => canonical form
	testcases := map[string]string{
		"1.0":                 "1.0",
		"v1.0":                "1.0",
		"  1.0  ":             "1.0",
		"1.0.0":               "1.0.0",
		"2012.10":             "2012.10",
		"1!1.0":               "1!1.0",
		"1.0alpha1":           "1.0a1",
		"1.0-beta":            "1.0b0",
		"1.0.C4":              "1.0rc4",
		"1.0pre1":             "1.0rc1",
		"1.0preview2":         "1.0rc2",
		"1.0-post":            "1.0.post0",
		"1.0rev3":             "1.0.post3",
		"1.0.r3":              "1.0.post3",
		"1.0-2":               "1.0.post2",
		"1.0dev":              "1.0.dev0",
		"1.0-dev_4":           "1.0.dev4",
		"1.0+Ubuntu-1":        "1.0+ubuntu.1",
		"1.0+abc_def.01":      "1.0+abc.def.1",
		"1!2.0rc1.post3.dev2": "1!2.0rc1.post3.dev2",
	}
	for input, expected := range testcases {
		input := input
		expected := expected
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			ver, err := pep440.ParseVersion(input)
			require.NoError(t, err)
			assert.Equal(t, expected, ver.String())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()
	testcases := []string{
		"",
		"bogus",
		"1.0 2.0",
		"1.0+",
		"1.0+_abc",
		"!1.0",
		"x1.0",
		"1.0.post1.pre2",
	}
	for _, input := range testcases {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := pep440.ParseVersion(input)
			assert.Error(t, err)
		})
	}
}

// TestOrdering checks every pair in an already-sorted list against Cmp.
func TestOrdering(t *testing.T) {
	t.Parallel()
	sorted := []string{
		"0.9",
		"1.0.dev1",
		"1.0.dev2",
		"1.0a1",
		"1.0a2",
		"1.0b1",
		"1.0rc1",
		"1.0",
		"1.0+abc",
		"1.0+abc.2",
		"1.0+abc.11",
		"1.0+5",
		"1.0.post1.dev1",
		"1.0.post1",
		"1.1",
		"1!0.1",
	}
	vers := make([]pep440.Version, len(sorted))
	for i, str := range sorted {
		ver, err := pep440.ParseVersion(str)
		require.NoError(t, err, str)
		vers[i] = *ver
	}
	for i := range vers {
		for j := range vers {
			var expected int
			switch {
			case i < j:
				expected = -1
			case i > j:
				expected = 1
			}
			assert.Equalf(t, expected, vers[i].Cmp(vers[j]),
				"Cmp(%q, %q)", sorted[i], sorted[j])
		}
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		a, b  string
		equal bool
	}{
		{"1.0", "1.0.0", true},
		{"1.0", "v1.0", true},
		{"1.0alpha1", "1.0a1", true},
		{"1.0-post", "1.0.post0", true},
		{"1.0", "1.0.dev0", false},
		{"1.0", "1.0+local", false},
		{"1.0", "1!1.0", false},
	}
	for _, tc := range testcases {
		a, err := pep440.ParseVersion(tc.a)
		require.NoError(t, err)
		b, err := pep440.ParseVersion(tc.b)
		require.NoError(t, err)
		assert.Equalf(t, tc.equal, a.Equal(*b), "Equal(%q, %q)", tc.a, tc.b)
	}
}

// TestRoundTrip checks that anything that parses at all reparses from its
// canonical form to an equal version.
func TestRoundTrip(t *testing.T) {
	t.Parallel()
	testutil.QuickCheck(t, func(str string) bool {
		ver, err := pep440.ParseVersion(str)
		if err != nil {
			return true
		}
		reparsed, err := pep440.ParseVersion(ver.String())
		if err != nil {
			return false
		}
		return ver.Equal(*reparsed)
	}, testutil.QuickConfig{MaxCount: 2000},
		[]interface{}{"1!2.0rc1.post3.dev2+abc.7"},
		[]interface{}{"v0.01.0-beta_1"},
	)
}
