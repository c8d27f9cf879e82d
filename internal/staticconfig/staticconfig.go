// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Package staticconfig loads the process-wide StaticConfig: the author
// alias map, the copyright field template, and the excluded path
// substrings. It is lazily initialized once per process through a
// sync.Once, the one-shot idiom the teacher uses for its own caches (e.g.
// pkg/tr.Initialize and modules/git.VersionDetect).
package staticconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/copyrightkit/headerlint/internal/errs"
)

// StaticConfig is immutable once loaded.
type StaticConfig struct {
	AuthorAliases         map[string]string `json:"author_aliases"`
	CopyrightFieldTemplate string           `json:"copyright_field_template"`
	ExcludedPathSections  []string          `json:"excluded_path_sections"`
}

// Canonicalize maps a raw blame-author token through the alias table,
// returning the token unchanged when it has no entry.
func (c *StaticConfig) Canonicalize(rawAuthor string) string {
	if canon, ok := c.AuthorAliases[rawAuthor]; ok {
		return canon
	}
	return rawAuthor
}

// IsPathExcluded reports whether path contains any configured excluded
// substring.
func (c *StaticConfig) IsPathExcluded(path string) bool {
	for _, sub := range c.ExcludedPathSections {
		if strings.Contains(path, sub) {
			return true
		}
	}
	return false
}

var (
	once     sync.Once
	instance *StaticConfig
	loadErr  *errs.Error
)

// Load reads and validates the static config JSON at path, caching the
// result for the lifetime of the process. Only the first call's path is
// ever actually read; subsequent calls (even with a different path, which
// should not happen within one run since RunConfig is immutable) return the
// cached value. This mirrors the spec's "computed once on first demand".
func Load(path string) (*StaticConfig, *errs.Error) {
	once.Do(func() {
		instance, loadErr = load(path)
	})
	return instance, loadErr
}

func load(path string) (*StaticConfig, *errs.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.New(errs.BadStaticConfigPaths, fmt.Errorf("reading static config %s: %w", path, err))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errs.New(errs.BadStaticConfigFormat, fmt.Errorf("static config %s is not a JSON object: %w", path, err))
	}

	cfg := &StaticConfig{AuthorAliases: map[string]string{}}

	if v, ok := raw["author_aliases"]; ok {
		if err := json.Unmarshal(v, &cfg.AuthorAliases); err != nil {
			return nil, errs.New(errs.BadStaticConfigFormat, fmt.Errorf("static config %s: author_aliases must be an object of string to string: %w", path, err))
		}
	}

	tmpl, ok := raw["copyright_field_template"]
	if !ok {
		return nil, errs.New(errs.BadStaticConfigFormat, fmt.Errorf("static config %s: missing copyright_field_template", path))
	}
	if err := json.Unmarshal(tmpl, &cfg.CopyrightFieldTemplate); err != nil {
		return nil, errs.New(errs.BadStaticConfigFormat, fmt.Errorf("static config %s: copyright_field_template must be a string: %w", path, err))
	}

	if v, ok := raw["excluded_path_sections"]; ok {
		if err := json.Unmarshal(v, &cfg.ExcludedPathSections); err != nil {
			return nil, errs.New(errs.BadStaticConfigFormat, fmt.Errorf("static config %s: excluded_path_sections must be an array of strings: %w", path, err))
		}
	}

	return cfg, nil
}

// ResetForTest clears the one-shot cache. Test-only: production code never
// needs to reload the static config within one process.
func ResetForTest() {
	once = sync.Once{}
	instance = nil
	loadErr = nil
}
