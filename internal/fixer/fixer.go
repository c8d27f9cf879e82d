// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Package fixer implements the Field Fixer: given a parsed header (possibly
// empty) and a run configuration, it computes the desired field set and
// reports whether it differs from what was parsed. Grounded on the
// original's Header::fix() / Header::getAuthors() pair in
// original_source/src/header/header.cpp.
package fixer

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/copyrightkit/headerlint/internal/attribution"
	"github.com/copyrightkit/headerlint/internal/header"
	"github.com/copyrightkit/headerlint/internal/headerconst"
	"github.com/copyrightkit/headerlint/internal/runconfig"
)

// Result is the Fixer's output: the desired field set plus whether it
// differs from what was parsed, plus the raw candidate names to log when
// the author cap blocks an update.
type Result struct {
	Desired         map[header.FieldType]header.Value
	HasChanges      bool
	AuthorsCapped   bool
	CappedCandidates []string
}

// Fix computes the desired field set for one file. targetPath is the path
// used to derive the File field's basename. collectAuthors is called only
// when the authors flag is enabled and its guard passes; otherwise no blame
// attribution work is attempted.
func Fix(parsed *header.Parsed, cfg *runconfig.RunConfig, targetPath string, copyrightTemplate string, collectAuthors func() attribution.Collected) Result {
	desired := make(map[header.FieldType]header.Value, len(parsed.Fields))
	for t, v := range parsed.Fields {
		desired[t] = v
	}

	hasChanges := false

	if cfg.UpdateFileName {
		v := header.ScalarValue(filepath.Base(targetPath))
		if old, ok := parsed.Get(header.File); !ok || !old.Equal(v, false) {
			hasChanges = true
		}
		desired[header.File] = v
	}

	if cfg.UpdateCopyright {
		v := header.ScalarValue(substituteYear(copyrightTemplate, time.Now()))
		if old, ok := parsed.Get(header.Copyright); !ok || !old.Equal(v, false) {
			hasChanges = true
		}
		desired[header.Copyright] = v
	}

	if cfg.UpdateComponent {
		if cfg.ComponentName == "" {
			if _, ok := parsed.Get(header.Component); ok {
				hasChanges = true
			}
			delete(desired, header.Component)
		} else {
			v := header.ScalarValue(cfg.ComponentName)
			if old, ok := parsed.Get(header.Component); !ok || !old.Equal(v, false) {
				hasChanges = true
			}
			desired[header.Component] = v
		}
	}

	var res Result

	if cfg.UpdateAuthors {
		existing, hasExisting := parsed.Get(header.Author)
		guardBlocked := cfg.UpdateAuthorsOnlyIfEmpty && hasExisting && len(existing.List) > 0

		if !guardBlocked {
			collected := collectAuthors()
			candidateCount := len(collected.Dist)

			if candidateCount > cfg.MaxBlameAuthors {
				res.AuthorsCapped = true
				res.CappedCandidates = sortedCandidateNames(collected)
			} else {
				authors := attribution.Select(collected)
				v := header.ListValue(authors)
				if old, ok := parsed.Get(header.Author); !ok || !old.Equal(v, true) {
					hasChanges = true
				}
				desired[header.Author] = v
			}
		}
	}

	res.Desired = desired
	res.HasChanges = hasChanges
	return res
}

// sortedCandidateNames renders the raw blame candidate names in the order
// the PossibleAuthors log prints them: lexicographic, for a stable,
// reproducible log line regardless of blame line order.
func sortedCandidateNames(c attribution.Collected) []string {
	names := make([]string, 0, len(c.Dist))
	for name := range c.Dist {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatCandidates joins candidate names the way the original's
// printPossibleAuthors does: comma-space separated.
func FormatCandidates(names []string) string {
	return strings.Join(names, ", ")
}

func substituteYear(template string, now time.Time) string {
	return strings.ReplaceAll(template, headerconst.CurrentYearToken, strconv.Itoa(now.Year()))
}
