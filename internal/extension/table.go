// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Package extension holds the static mapping from file extension to
// comment-delimiter triple. Grounded on the original implementation's
// header_utils.h constexpr maps, reshaped into one Go map from extension to
// delimiter Triple instead of a generic compile-time Map<K,V> template — Go
// has no constexpr associative container, and a plain map keeps each lookup
// a single map access instead of a linear scan.
package extension

const (
	starPrefix = "/******************************************************************************\n**\n"
	starSuffix = "\n**\n******************************************************************************/\n\n"
	starStart  = "**"

	hashPrefix = ""
	hashSuffix = "\n\n"
	hashStart  = "#"
)

// Triple is the (prefix, line-start, suffix) delimiter set for one file
// extension family.
type Triple struct {
	Prefix    string
	LineStart string
	Suffix    string
}

var starFamily = Triple{Prefix: starPrefix, LineStart: starStart, Suffix: starSuffix}
var hashFamily = Triple{Prefix: hashPrefix, LineStart: hashStart, Suffix: hashSuffix}

// table is the total mapping over the supported extension set. Adding a new
// extension to either family is a one-line change here; no other component
// needs to change.
var table = map[string]Triple{
	"c":     starFamily,
	"cpp":   starFamily,
	"cxx":   starFamily,
	"h":     starFamily,
	"hpp":   starFamily,
	"hxx":   starFamily,
	"js":    starFamily,
	"m":     starFamily,
	"mm":    starFamily,
	"qml":   starFamily,
	"swift": starFamily,
	"cmake": hashFamily,
}

// Lookup returns the delimiter triple for ext and whether ext is supported.
func Lookup(ext string) (Triple, bool) {
	t, ok := table[ext]
	return t, ok
}

// Supported reports whether ext is a key in the extension table.
func Supported(ext string) bool {
	_, ok := table[ext]
	return ok
}

// Prefix, LineStart and Suffix are the three pure lookups named in the
// component design. Each panics if ext is unsupported: callers must check
// Supported (or go through Lookup) before calling these, the same
// precondition the spec places on the Dispatcher ("rejected... before
// opening").
func Prefix(ext string) string    { return mustLookup(ext).Prefix }
func LineStart(ext string) string { return mustLookup(ext).LineStart }
func Suffix(ext string) string    { return mustLookup(ext).Suffix }

func mustLookup(ext string) Triple {
	t, ok := table[ext]
	if !ok {
		panic("extension: unsupported extension " + ext)
	}
	return t
}
