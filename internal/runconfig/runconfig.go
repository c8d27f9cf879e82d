// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Package runconfig holds the RunConfig record: the immutable, per-run set
// of enabled update flags and options built once from CLI arguments and
// shared by reference across every worker.
package runconfig

import "github.com/copyrightkit/headerlint/internal/headerconst"

// GitBackend selects which Git Adapter implementation the run uses.
type GitBackend int

const (
	// GitBackendCLI spawns the git executable (the original's shipped
	// behavior; see original_source/src/file_processor/git/cmdgit_src).
	GitBackendCLI GitBackend = iota
	// GitBackendLibrary uses go-git instead of spawning a process.
	GitBackendLibrary
)

// RunConfig is constructed once from CLI arguments and never mutated
// afterward; every File Pipeline invocation reads it concurrently.
type RunConfig struct {
	UpdateComponent          bool
	UpdateCopyright          bool
	UpdateFileName           bool
	UpdateAuthors            bool
	UpdateAuthorsOnlyIfEmpty bool
	DontSkipBrokenMerges     bool
	ReadOnlyMode             bool
	Verbose                  bool

	// ComponentName is the value passed to --component. An empty string
	// paired with UpdateComponent means "remove the Component field".
	ComponentName string

	// MaxBlameAuthors is headerconst.UnlimitedBlameAuthors when the flag
	// was absent or non-positive.
	MaxBlameAuthors int

	StaticConfigPath string
	TargetPaths      []string
	GitBackend       GitBackend
}

// New returns a RunConfig with every flag left at its zero value and the
// author cap set to unlimited, the state a freshly-parsed but
// all-flags-disabled invocation would produce.
func New() *RunConfig {
	return &RunConfig{MaxBlameAuthors: headerconst.UnlimitedBlameAuthors}
}
