// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package header

import "strings"

// Span describes a located header's position within a file's content.
type Span struct {
	Bytes ByteRange
	Lines LineRange
}

// Locate finds the first occurrence of prefix and, separately, the first
// occurrence of suffix, and returns the maximal span between the start of
// prefix and the end of suffix. ok is false when either delimiter is
// missing — including the case where prefix is present but suffix is not
// (§9 open question (b): treated as "no header", not a partial match).
func Locate(content []byte, prefix, suffix string) (span Span, ok bool) {
	s := string(content)

	var startByte int
	if prefix != "" {
		idx := strings.Index(s, prefix)
		if idx < 0 {
			return Span{}, false
		}
		startByte = idx
	} else {
		// The hash family has an empty prefix: the header begins at file
		// start if a suffix can be found at all.
		startByte = 0
	}

	suffixIdx := strings.Index(s, suffix)
	if suffixIdx < 0 || suffixIdx < startByte {
		return Span{}, false
	}
	endByte := suffixIdx + len(suffix)

	beforeLines := strings.Count(s[:startByte], "\n")
	spanLines := strings.Count(s[startByte:endByte], "\n")

	return Span{
		Bytes: ByteRange{Start: startByte, End: endByte},
		Lines: LineRange{Start: beforeLines, End: beforeLines + spanLines},
	}, true
}

// Body extracts the header body by stripping the prefix from the front and
// the suffix from the back of the located span. A negative-length result
// (a pathological span shorter than prefix+suffix) clamps to empty.
func Body(content []byte, span Span, prefix, suffix string) []byte {
	raw := content[span.Bytes.Start:span.Bytes.End]
	if len(raw) < len(prefix)+len(suffix) {
		return nil
	}
	return raw[len(prefix) : len(raw)-len(suffix)]
}
