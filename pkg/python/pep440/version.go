// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package pep440 implements as much of PEP 440 -- Version Identification
// and Dependency Specification -- as a publisher needs: parsing,
// normalization, and ordering of version identifiers.
//
// https://www.python.org/dev/peps/pep-0440/
package pep440

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"k8s.io/apimachinery/pkg/util/intstr"
)

type Version struct {
	// Epoch segment: "N!"
	Epoch int
	// Release segment: "N(.N)*"
	Release []int
	// Pre-release segment: "{a|b|rc}N"
	Pre *PreRelease
	// Post-release segment: ".postN"
	Post *int
	// Development release segment: ".devN"
	Dev *int
	// Local version segments ("+seg.seg..."); each segment is numeric or
	// alphanumeric, and PEP 440 orders the numeric ones higher.
	Local []intstr.IntOrString
}

type PreRelease struct {
	L string // "a", "b", or "rc" after normalization
	N int
}

// The "permissive" regular expression from PEP 440 Appendix B, accepting
// the spellings that normalization folds together.
var versionRE = regexp.MustCompile(`(?i)^\s*v?` +
	`(?:(?P<epoch>[0-9]+)!)?` +
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` +
	`(?P<pre>[-_.]?(?P<preL>a|b|c|rc|alpha|beta|pre|preview)[-_.]?(?P<preN>[0-9]+)?)?` +
	`(?P<post>(?:-(?P<postN1>[0-9]+))|(?:[-_.]?(?:post|rev|r)[-_.]?(?P<postN2>[0-9]+)?))?` +
	`(?P<dev>[-_.]?dev[-_.]?(?P<devN>[0-9]+)?)?` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_.][a-z0-9]+)*))?` +
	`\s*$`)

var localSepRE = regexp.MustCompile(`[-_.]`)

// atoi is strconv.Atoi for strings the regexp has already vouched for;
// empty means the number was omitted and defaults to 0.
func atoi(str string) int {
	if str == "" {
		return 0
	}
	n, _ := strconv.Atoi(str)
	return n
}

// ParseVersion parses a version identifier, normalizing the alternate
// spellings PEP 440 allows ("1.0alpha1" => "1.0a1", "1.0-post" =>
// "1.0.post0", and so on).
func ParseVersion(str string) (*Version, error) {
	match := versionRE.FindStringSubmatch(str)
	if match == nil {
		return nil, fmt.Errorf("pep440.ParseVersion: invalid version: %q", str)
	}
	group := func(name string) string {
		return match[versionRE.SubexpIndex(name)]
	}

	ver := &Version{
		Epoch: atoi(group("epoch")),
	}
	for _, part := range strings.Split(group("release"), ".") {
		ver.Release = append(ver.Release, atoi(part))
	}
	if group("pre") != "" {
		letter := strings.ToLower(group("preL"))
		switch letter {
		case "alpha":
			letter = "a"
		case "beta":
			letter = "b"
		case "c", "pre", "preview":
			letter = "rc"
		}
		ver.Pre = &PreRelease{L: letter, N: atoi(group("preN"))}
	}
	if group("post") != "" {
		n := atoi(group("postN1") + group("postN2")) // at most one is non-empty
		ver.Post = &n
	}
	if group("dev") != "" {
		n := atoi(group("devN"))
		ver.Dev = &n
	}
	if local := strings.ToLower(group("local")); local != "" {
		for _, seg := range localSepRE.Split(local, -1) {
			if n, err := strconv.Atoi(seg); err == nil {
				ver.Local = append(ver.Local, intstr.FromInt(n))
			} else {
				ver.Local = append(ver.Local, intstr.FromString(seg))
			}
		}
	}
	return ver, nil
}

// String returns the canonical form of the version.
func (v Version) String() string {
	var ret strings.Builder
	if v.Epoch != 0 {
		fmt.Fprintf(&ret, "%d!", v.Epoch)
	}
	for i, n := range v.Release {
		if i > 0 {
			ret.WriteByte('.')
		}
		fmt.Fprintf(&ret, "%d", n)
	}
	if v.Pre != nil {
		fmt.Fprintf(&ret, "%s%d", v.Pre.L, v.Pre.N)
	}
	if v.Post != nil {
		fmt.Fprintf(&ret, ".post%d", *v.Post)
	}
	if v.Dev != nil {
		fmt.Fprintf(&ret, ".dev%d", *v.Dev)
	}
	for i, seg := range v.Local {
		if i == 0 {
			ret.WriteByte('+')
		} else {
			ret.WriteByte('.')
		}
		ret.WriteString(seg.String())
	}
	return ret.String()
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

func cmpRelease(a, b []int) int {
	// Missing positions count as zero, so "1.0" == "1.0.0".
	for i := 0; i < len(a) || i < len(b); i++ {
		var na, nb int
		if i < len(a) {
			na = a[i]
		}
		if i < len(b) {
			nb = b[i]
		}
		if na != nb {
			return sign(na - nb)
		}
	}
	return 0
}

var preLetterOrder = map[string]int{"a": 0, "b": 1, "rc": 2}

// preRank buckets a version for the pre-release comparison: a pure dev
// release ("1.0.dev1") sorts below any pre-release of the same release
// segment, and both sort below the release itself.
func preRank(v Version) int {
	switch {
	case v.Pre != nil:
		return 0
	case v.Post == nil && v.Dev != nil:
		return -1
	default:
		return 1
	}
}

func cmpPre(a, b Version) int {
	if d := sign(preRank(a) - preRank(b)); d != 0 {
		return d
	}
	if a.Pre == nil || b.Pre == nil {
		return 0
	}
	if d := sign(preLetterOrder[a.Pre.L] - preLetterOrder[b.Pre.L]); d != 0 {
		return d
	}
	return sign(a.Pre.N - b.Pre.N)
}

func cmpOptInt(a, b *int, nilIsLow bool) int {
	if (a == nil) != (b == nil) {
		low := -1
		if !nilIsLow {
			low = 1
		}
		if a == nil {
			return low
		}
		return -low
	}
	if a == nil {
		return 0
	}
	return sign(*a - *b)
}

func cmpLocal(a, b []intstr.IntOrString) int {
	// No local version sorts below any local version.
	for i := 0; i < len(a) || i < len(b); i++ {
		if i >= len(a) {
			return -1
		}
		if i >= len(b) {
			return 1
		}
		if d := cmpLocalSeg(a[i], b[i]); d != 0 {
			return d
		}
	}
	return 0
}

func cmpLocalSeg(a, b intstr.IntOrString) int {
	if a.Type != b.Type {
		// Numeric segments sort higher than alphanumeric ones.
		if a.Type == intstr.String {
			return -1
		}
		return 1
	}
	if a.Type == intstr.Int {
		return sign(a.IntValue() - b.IntValue())
	}
	return strings.Compare(a.StrVal, b.StrVal)
}

// Cmp returns -1, 0, or +1 ordering v against o per PEP 440.
func (v Version) Cmp(o Version) int {
	if d := sign(v.Epoch - o.Epoch); d != 0 {
		return d
	}
	if d := cmpRelease(v.Release, o.Release); d != 0 {
		return d
	}
	if d := cmpPre(v, o); d != 0 {
		return d
	}
	if d := cmpOptInt(v.Post, o.Post, true); d != 0 {
		return d
	}
	if d := cmpOptInt(v.Dev, o.Dev, false); d != 0 {
		return d
	}
	return cmpLocal(v.Local, o.Local)
}

// Equal reports whether the two versions are equivalent after
// normalization ("1.0" == "1.0.0" == "v1.0").
func (v Version) Equal(o Version) bool {
	return v.Cmp(o) == 0
}
