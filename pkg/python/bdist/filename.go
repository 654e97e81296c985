// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package bdist parses the filenames of built Python distribution
// artifacts.
package bdist

import (
	"fmt"
	"path"
	"strings"

	"github.com/datawire/disttool/pkg/python/pep440"
)

type Kind int

const (
	KindSdist Kind = iota
	KindWheel
)

func (k Kind) String() string {
	if k == KindWheel {
		return "wheel"
	}
	return "sdist"
}

// Filename is the decomposition of an artifact filename.  Distribution and
// Version are as spelled in the filename, not normalized.
type Filename struct {
	Distribution string
	Version      string
	Kind         Kind
}

// ParseFilename understands wheel filenames
// ("{dist}-{version}(-{build})?-{python}-{abi}-{platform}.whl") and sdist
// filenames ("{dist}-{version}.tar.gz" or ".zip").
func ParseFilename(filename string) (*Filename, error) {
	base := path.Base(filename)
	switch {
	case strings.HasSuffix(base, ".whl"):
		parts := strings.Split(strings.TrimSuffix(base, ".whl"), "-")
		if len(parts) != 5 && len(parts) != 6 {
			return nil, fmt.Errorf("malformed wheel filename: %q", base)
		}
		return &Filename{
			Distribution: parts[0],
			Version:      parts[1],
			Kind:         KindWheel,
		}, nil
	case strings.HasSuffix(base, ".tar.gz"), strings.HasSuffix(base, ".zip"):
		stem := strings.TrimSuffix(strings.TrimSuffix(base, ".tar.gz"), ".zip")
		// Both the distribution name and an unnormalized version may
		// contain "-", so try the split points right-to-left and take the
		// first one whose tail is a valid version.
		for cut := strings.LastIndex(stem, "-"); cut > 0; cut = strings.LastIndex(stem[:cut], "-") {
			if _, err := pep440.ParseVersion(stem[cut+1:]); err != nil {
				continue
			}
			return &Filename{
				Distribution: stem[:cut],
				Version:      stem[cut+1:],
				Kind:         KindSdist,
			}, nil
		}
		return nil, fmt.Errorf("malformed sdist filename: %q", base)
	default:
		return nil, fmt.Errorf("unrecognized distribution artifact: %q", base)
	}
}
