// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package cliutil

import (
	"strings"
)

// Wrap the string `s` to a maximum width `w`.  Pass `w` == 0 to do no
// wrapping.
//
// To leave some slop so that a short word doesn't end up on a line by
// itself, lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// WrapIndent is Wrap with a leading indent of `i` spaces on every line but
// the first (the first line's indent is assumed to have been emitted by
// the caller already).
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, s string) string {
	limit := width - 5
	if width == 0 || limit <= indent {
		return s
	}
	paragraphs := strings.Split(strings.TrimRight(s, "\n"), "\n\n")
	for pi, paragraph := range paragraphs {
		var out strings.Builder
		col := indent
		for wi, word := range strings.Fields(paragraph) {
			switch {
			case wi == 0:
				// First word goes on the current line no matter what.
			case col+1+len(word) > limit:
				out.WriteByte('\n')
				out.WriteString(strings.Repeat(" ", indent))
				col = indent
			default:
				out.WriteByte(' ')
				col++
			}
			out.WriteString(word)
			col += len(word)
		}
		paragraphs[pi] = out.String()
	}
	return strings.Join(paragraphs, "\n\n")
}
