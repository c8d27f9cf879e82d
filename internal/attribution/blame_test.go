// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/copyrightkit/headerlint/internal/gitutil"
)

func TestCollectSkipsHeaderLinesAndBrokenCommits(t *testing.T) {
	lines := []gitutil.BlameLine{
		{Hash: "h1", Author: "Alice"}, // header line, skipped via headerEndLine
		{Hash: "h2", Author: "Bob"},   // broken commit, skipped
		{Hash: "h3", Author: "Alice"},
		{Hash: "h4", Author: "Alice"},
	}
	broken := map[string]struct{}{"h2": {}}

	c := Collect(lines, 1, broken, nil)
	assert.InDelta(t, 1.0, c.Dist["Alice"], 1e-9)
	assert.NotContains(t, c.Dist, "Bob")
}

func TestCollectCanonicalizesThroughAliasFunc(t *testing.T) {
	lines := []gitutil.BlameLine{
		{Hash: "h1", Author: "john.doe"},
		{Hash: "h2", Author: "j.doe"},
	}
	alias := func(raw string) string {
		if raw == "john.doe" || raw == "j.doe" {
			return "John Doe"
		}
		return raw
	}

	c := Collect(lines, 0, nil, alias)
	assert.Len(t, c.Dist, 1)
	assert.InDelta(t, 1.0, c.Dist["John Doe"], 1e-9)
}

func TestCollectWithNoAttributableLinesIsEmpty(t *testing.T) {
	c := Collect(nil, 0, nil, nil)
	assert.Empty(t, c.Dist)
}

func TestCollectAliasCollapseLawDoublesShare(t *testing.T) {
	// Invariant 10: a -> A and b -> A, each with share x, yields A at 2x.
	lines := []gitutil.BlameLine{
		{Hash: "h1", Author: "a"},
		{Hash: "h2", Author: "a"},
		{Hash: "h3", Author: "b"},
		{Hash: "h4", Author: "b"},
		{Hash: "h5", Author: "c"},
		{Hash: "h6", Author: "c"},
	}
	alias := func(raw string) string {
		if raw == "a" || raw == "b" {
			return "A"
		}
		return raw
	}
	c := Collect(lines, 0, nil, alias)
	assert.InDelta(t, 4.0/6.0, c.Dist["A"], 1e-9)
	assert.InDelta(t, 2.0/6.0, c.Dist["c"], 1e-9)
}
