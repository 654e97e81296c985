// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package testutil has helpers shared by the other packages' tests.
package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// AssertEqual compares exp and act by deep-dump, and on mismatch reports a
// unified diff; for anything bigger than a scalar that is much easier to
// read than assert.Equal's one-line output.
func AssertEqual(t *testing.T, exp, act interface{}) bool {
	t.Helper()
	return AssertEqualText(t, spewConfig.Sdump(exp), spewConfig.Sdump(act))
}

// AssertEqualText is AssertEqual for strings that are already readable
// line-oriented text.
func AssertEqualText(t *testing.T, exp, act string) bool {
	t.Helper()
	if exp == act {
		return true
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(exp),
		B:        difflib.SplitLines(act),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	})
	t.Errorf("mismatch:\n%s", diff)
	return false
}
