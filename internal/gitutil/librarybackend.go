// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package gitutil

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/copyrightkit/headerlint/internal/errs"
)

// LibraryAdapter is the library Git Adapter backend: it talks to the
// repository in-process via go-git instead of spawning git. Finishes the
// idea the original left stubbed in
// src/file_processor/git/libgit2_src/GitRepository.h, using go-git instead
// of libgit2 since this is a Go codebase. Selected with --git-backend=library.
type LibraryAdapter struct {
	repo *git.Repository
	root string
}

func NewLibraryAdapter() *LibraryAdapter {
	return &LibraryAdapter{}
}

func (a *LibraryAdapter) Open(path string) error {
	dir := path
	if abs, err := filepath.Abs(path); err == nil {
		dir = abs
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return NotInWorkingTree(path)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return NotInWorkingTree(path)
	}

	a.repo = repo
	a.root = wt.Filesystem.Root()
	return nil
}

func (a *LibraryAdapter) WorkingTreeDir() string {
	return a.root
}

func (a *LibraryAdapter) BrokenCommits(ctx context.Context) (map[string]struct{}, error) {
	head, err := a.repo.Head()
	if err != nil {
		return nil, errs.New(errs.GitError, fmt.Errorf("resolving HEAD: %w", err))
	}

	commits, err := a.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, errs.New(errs.GitError, fmt.Errorf("walking commit log: %w", err))
	}

	broken := make(map[string]struct{}, 1000)
	err = commits.ForEach(func(c *object.Commit) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if len(c.ParentHashes) > 2 {
			return nil
		}
		subject := c.Message
		if idx := strings.IndexByte(subject, '\n'); idx >= 0 {
			subject = subject[:idx]
		}
		if brokenSubjectPattern.MatchString(subject) {
			broken[c.Hash.String()] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, errs.New(errs.GitError, fmt.Errorf("walking commit log: %w", err))
	}
	return broken, nil
}

func (a *LibraryAdapter) BlameFile(ctx context.Context, path string) ([]BlameLine, error) {
	head, err := a.repo.Head()
	if err != nil {
		return nil, errs.New(errs.GitError, fmt.Errorf("resolving HEAD: %w", err))
	}
	commit, err := a.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, errs.New(errs.GitError, fmt.Errorf("resolving HEAD commit: %w", err))
	}

	rel, err := filepath.Rel(a.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	result, err := git.Blame(commit, rel)
	if err != nil {
		return nil, errs.New(errs.GitError, fmt.Errorf("blaming %s: %w", path, err))
	}

	lines := make([]BlameLine, 0, len(result.Lines))
	for _, l := range result.Lines {
		lines = append(lines, BlameLine{Hash: l.Hash.String(), Author: l.AuthorName})
	}
	return lines, nil
}
