// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Package pipeline implements the File Pipeline: the single-file
// read/locate/parse/fix/serialize/write sequence the Dispatcher runs once
// per accepted path. Grounded on the original's Header::processFile, the
// one place in original_source that strings every other component
// together for a single file.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/copyrightkit/headerlint/internal/attribution"
	"github.com/copyrightkit/headerlint/internal/errs"
	"github.com/copyrightkit/headerlint/internal/extension"
	"github.com/copyrightkit/headerlint/internal/fixer"
	"github.com/copyrightkit/headerlint/internal/gitutil"
	"github.com/copyrightkit/headerlint/internal/header"
	"github.com/copyrightkit/headerlint/internal/logging"
	"github.com/copyrightkit/headerlint/internal/runconfig"
	"github.com/copyrightkit/headerlint/internal/staticconfig"
)

// Run executes the File Pipeline for one path, returning whether the file
// was modified on disk (always false under ReadOnlyMode, which only logs the
// proposed header). Any error it returns has
// already been logged against path; the Dispatcher only needs to decide
// whether to count it.
func Run(ctx context.Context, path string, cfg *runconfig.RunConfig, cfgStatic *staticconfig.StaticConfig, newAdapter func() gitutil.Adapter, brokenSets *gitutil.BrokenSetCache) (modified bool, err *errs.Error) {
	adapter := newAdapter()
	if openErr := adapter.Open(path); openErr != nil {
		e := errs.New(errs.GitError, openErr)
		return false, logging.Err(path, e)
	}

	content, readErr := os.ReadFile(path)
	if readErr != nil {
		e := errs.New(errs.FileReadWriteError, readErr)
		return false, logging.Err(path, e)
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	triple, _ := extension.Lookup(ext) // Dispatcher already enforces Supported(ext) before calling Run

	parsed := header.NewParsed()
	span, located := header.Locate(content, triple.Prefix, triple.Suffix)
	if !located && triple.Prefix != "" {
		if idx := strings.Index(string(content), triple.Prefix); idx >= 0 {
			logging.ForFile(path).Debugf("header prefix at byte %d has no matching suffix, treating file as header-less", idx)
		}
	}
	if located {
		body := header.Body(content, span, triple.Prefix, triple.Suffix)
		p, notes, parseErr := header.Parse(body, triple.LineStart)
		if parseErr != nil {
			logging.Err(path, errs.New(errs.BadHeaderFormat, parseErr))
			// Recover as header-less for field purposes, but the old span
			// still gets cut out of the file on write-back.
		} else {
			parsed = p
			for _, note := range notes {
				logging.Debug(path, note)
			}
		}
		parsed.Bytes = span.Bytes
		parsed.Lines = span.Lines
	}

	collectAuthors := func() attribution.Collected {
		broken := map[string]struct{}{}
		if !cfg.DontSkipBrokenMerges {
			b, brokenErr := brokenSets.Get(ctx, adapter)
			if brokenErr != nil {
				logging.Err(path, errs.New(errs.GitError, brokenErr))
				return attribution.Collected{Dist: attribution.Distribution{}}
			}
			broken = b
		}
		blameLines, blameErr := adapter.BlameFile(ctx, path)
		if blameErr != nil {
			logging.Err(path, errs.New(errs.GitError, blameErr))
			return attribution.Collected{Dist: attribution.Distribution{}}
		}
		aliasFn := func(raw string) string { return raw }
		if cfgStatic != nil {
			aliasFn = cfgStatic.Canonicalize
		}
		return attribution.Collect(blameLines, parsed.Lines.End, broken, aliasFn)
	}

	template := ""
	if cfgStatic != nil {
		template = cfgStatic.CopyrightFieldTemplate
	}

	result := fixer.Fix(parsed, cfg, path, template, collectAuthors)

	if result.AuthorsCapped {
		logging.Info(path, errs.PossibleAuthors, fixer.FormatCandidates(result.CappedCandidates))
	}

	if !result.HasChanges {
		logging.Debug(path, "header already up to date")
		return false, nil
	}

	newHeader := header.Serialize(result.Desired, triple.Prefix, triple.LineStart, triple.Suffix)

	if cfg.ReadOnlyMode {
		logging.Info(path, errs.WouldUpdateCopyrightNotice, string(newHeader))
		return false, nil
	}

	var rest []byte
	if located {
		rest = content[parsed.Bytes.End:]
	} else {
		rest = content
	}
	out := append(append([]byte(nil), newHeader...), rest...)

	if writeErr := os.WriteFile(path, out, 0o644); writeErr != nil {
		e := errs.New(errs.FileReadWriteError, writeErr)
		return false, logging.Err(path, e)
	}

	logging.Info(path, errs.UpdatedCopyrightNotice, path)
	return true, nil
}
