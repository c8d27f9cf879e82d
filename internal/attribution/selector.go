// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package attribution

import (
	"sort"

	"github.com/copyrightkit/headerlint/internal/headerconst"
)

type authorShare struct {
	name  string
	share float64
	rank  int // first-seen order, used only to break share ties deterministically
}

// sortedDescending returns every author in c, sorted by descending share
// with ties broken by first-seen order in the blame sequence (the closest
// available analogue to "original descending-share order" for an input
// that otherwise has no inherent ordering).
func sortedDescending(c Collected) []authorShare {
	rank := make(map[string]int, len(c.FirstSeen))
	for i, name := range c.FirstSeen {
		rank[name] = i
	}
	entries := make([]authorShare, 0, len(c.Dist))
	for name, share := range c.Dist {
		entries = append(entries, authorShare{name: name, share: share, rank: rank[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].share != entries[j].share {
			return entries[i].share > entries[j].share
		}
		return entries[i].rank < entries[j].rank
	})
	return entries
}

func names(es []authorShare) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.name
	}
	return out
}

// Select reduces a distribution to a stable, ordered author list with
// et al. collapse.
//
// The etAlThreshold check is applied to the TOTAL number of distinct
// authors in the distribution, not to the size of the cumulative-share
// cutoff subset: with fewer than etAlThreshold contributors the cutoff
// subset is returned (trailing a sentinel when its coverage is low); with
// etAlThreshold or more contributors the list is always collapsed to the
// top etAlMentions regardless of how much cumulative share they cover,
// which is what keeps the list stable when a file has many small, roughly
// equal contributors (see DESIGN.md for why the cutoff-subset-size reading
// of this rule doesn't hold up against the testable properties).
func Select(c Collected) []string {
	entries := sortedDescending(c)

	if len(entries) < headerconst.EtAlThreshold {
		retained, cumulative := cutoff(entries)
		result := names(retained)
		sort.Strings(result)
		if cumulative < headerconst.NamesShare {
			result = append(result, headerconst.EtAl)
		}
		return result
	}

	top := append([]authorShare(nil), entries[:headerconst.EtAlMentions]...)
	result := names(top)
	sort.Strings(result)
	result = append(result, headerconst.EtAl)
	return result
}

// cutoff retains authors from a descending-sorted slice up to and
// including the first one whose cumulative share strictly exceeds
// namesShare, returning the retained subset and its cumulative share.
func cutoff(entries []authorShare) ([]authorShare, float64) {
	var retained []authorShare
	var cumulative float64
	for _, e := range entries {
		cumulative += e.share
		retained = append(retained, e)
		if cumulative > headerconst.NamesShare {
			break
		}
	}
	return retained, cumulative
}
