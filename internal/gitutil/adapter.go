// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Package gitutil specifies the Git Adapter by capability — open a
// repository, enumerate broken (merge-like) commits, and blame a file — and
// ships two backends that realize it: a subprocess backend that spawns the
// git executable, and a library backend built on go-git. Grounded on the
// original's two concrete GitRepository implementations
// (cmdgit_src/GitRepository.cpp, finished; libgit2_src/GitRepository.h,
// stubbed) and on JensRoland-blamebot/internal/git/git.go, which shells out
// to git the same way the cmdgit backend does.
package gitutil

import (
	"context"
	"fmt"
	"time"

	"github.com/copyrightkit/headerlint/internal/errs"
)

// BlameLine is one line of blame output: the commit that last touched it
// and the (already author-resolved) display name git reports, in file line
// order.
type BlameLine struct {
	Hash   string
	Author string
}

// Adapter is the capability surface the rest of the engine depends on. Both
// backends implement it identically from the caller's point of view;
// callers never branch on which backend they were handed.
type Adapter interface {
	// Open resolves the working tree enclosing path. Returns a GitError
	// wrapped errs.Error when path is not inside any working tree.
	Open(path string) error
	// WorkingTreeDir returns the absolute, canonical working tree root.
	WorkingTreeDir() string
	// BrokenCommits returns the set of commit hashes reachable from HEAD
	// whose parent count is <= 2 and whose subject matches the broken-merge
	// pattern. Computed fresh each call; the caller is expected to cache it
	// once per working tree via BrokenSetCache.Get.
	BrokenCommits(ctx context.Context) (map[string]struct{}, error)
	// BlameFile returns ordered BlameLines for path at HEAD.
	BlameFile(ctx context.Context, path string) ([]BlameLine, error)
}

// Timeouts for the subprocess backend's external process calls.
const (
	StartTimeout     = 5 * time.Second
	ExecutionTimeout = 10 * time.Second
)

// NotInWorkingTree builds the GitError the spec requires when Open fails.
func NotInWorkingTree(path string) error {
	return errs.New(errs.GitError, fmt.Errorf("%s is not inside a git working tree", path))
}
