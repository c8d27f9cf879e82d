// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package attribution

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSelectS4AliasCollapseNoEtAl mirrors spec scenario S4: a single
// canonicalized author covering all attributable lines needs no et al.
// sentinel since its cumulative share is 1.0 >= namesShare.
func TestSelectS4AliasCollapseNoEtAl(t *testing.T) {
	c := Collected{Dist: Distribution{"John Doe": 1.0}, FirstSeen: []string{"John Doe"}}
	got := Select(c)
	assert.Equal(t, []string{"John Doe"}, got)
}

// TestSelectS5TenEqualAuthorsCollapsesToTopFour mirrors spec scenario S5.
func TestSelectS5TenEqualAuthorsCollapsesToTopFour(t *testing.T) {
	dist := Distribution{}
	var firstSeen []string
	names := []string{"J", "I", "H", "G", "F", "E", "D", "C", "B", "A"}
	for _, n := range names {
		dist[n] = 0.1
		firstSeen = append(firstSeen, n)
	}
	c := Collected{Dist: dist, FirstSeen: firstSeen}

	got := Select(c)
	require := assert.New(t)
	require.Len(got, 5)
	require.Equal("et al.", got[4])

	// The top 4 by first-seen order (all shares tied) are J, I, H, G;
	// lexicographically sorted that's G, H, I, J.
	require.Equal([]string{"G", "H", "I", "J"}, got[:4])
}

func TestSelectLawFewerThanThresholdAppendsEtAlOnlyWhenCoverageIsLow(t *testing.T) {
	// Three authors, cumulative retained share exceeds namesShare at the
	// second entry: no et al.
	c := Collected{
		Dist:      Distribution{"A": 0.5, "B": 0.3, "C": 0.2},
		FirstSeen: []string{"A", "B", "C"},
	}
	got := Select(c)
	assert.Equal(t, []string{"A", "B"}, got)
}

func TestSelectLawLowCoverageAppendsEtAl(t *testing.T) {
	// An unnormalized distribution (as Select sees it in isolation): every
	// author is retained since cumulative share never strictly exceeds
	// namesShare, and the retained cumulative share (0.6) is below it, so
	// the sentinel is appended to signal the list doesn't cover everything.
	c := Collected{
		Dist:      Distribution{"A": 0.2, "B": 0.2, "C": 0.2},
		FirstSeen: []string{"A", "B", "C"},
	}
	got := Select(c)
	assert.Equal(t, []string{"A", "B", "C", "et al."}, got)
}
