// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Package attribution turns raw git blame lines into a normalized
// author-share distribution (Blame Attribution) and reduces that
// distribution to a stable, ordered author list (Author Selector).
// Grounded on the original's header_helpers::collectGitBlameStatistic and
// header_helpers::listGitAuthors.
package attribution

import "github.com/copyrightkit/headerlint/internal/gitutil"

// Distribution maps a canonicalized author display name to its share of
// attributable lines, summing to 1 when any line is attributable.
type Distribution map[string]float64

// Collected is the result of Collect: the share distribution plus the
// order authors were first seen in the blame sequence, which the Author
// Selector uses as its tie-break when two authors share an identical
// share (the blame sequence is the closest analogue to the original's
// "original descending-share order" for an input that has no other
// inherent ordering).
type Collected struct {
	Dist        Distribution
	FirstSeen   []string
}

// Collect builds the author share distribution for a file: skip the first
// headerEndLine lines (the header itself), skip lines whose commit is in
// broken, canonicalize every remaining author through aliases, and
// normalize counts to shares.
func Collect(lines []gitutil.BlameLine, headerEndLine int, broken map[string]struct{}, aliases func(raw string) string) Collected {
	if headerEndLine < 0 {
		headerEndLine = 0
	}
	if headerEndLine > len(lines) {
		headerEndLine = len(lines)
	}

	counts := make(map[string]float64)
	var order []string
	var total float64

	for _, line := range lines[headerEndLine:] {
		if _, skip := broken[line.Hash]; skip {
			continue
		}
		name := line.Author
		if aliases != nil {
			name = aliases(name)
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
		total++
	}

	if total == 0 {
		return Collected{Dist: Distribution{}}
	}

	dist := make(Distribution, len(counts))
	for name, c := range counts {
		dist[name] = c / total
	}
	return Collected{Dist: dist, FirstSeen: order}
}
