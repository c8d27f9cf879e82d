// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package gitutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/copyrightkit/headerlint/internal/errs"
	"github.com/copyrightkit/headerlint/internal/logging"
)

// brokenSubjectPattern is the merge-like commit subject pattern from the
// component design, applied case-insensitively.
var brokenSubjectPattern = regexp.MustCompile(`(?i)^(Revert "|)?Merge.+(branch|->).+$`)

// blameLinePattern extracts hash and author from one porcelain-ish blame
// output line. Lines that don't match are warned about and skipped, never
// aborting the run.
var blameLinePattern = regexp.MustCompile(`^(?P<hash>[0-9a-f]{5,40}) .+ \((?P<author>[\w/\\]+[. ]+[\w/\\]+) .+`)

// CLIAdapter is the subprocess Git Adapter backend: it spawns the git
// executable for every operation, matching
// JensRoland-blamebot/internal/git/git.go and the original's
// cmdgit_src/GitRepository.cpp. This is the default backend.
type CLIAdapter struct {
	workingTreeDir string
}

func NewCLIAdapter() *CLIAdapter {
	return &CLIAdapter{}
}

func (a *CLIAdapter) Open(path string) error {
	dir := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		dir = filepath.Dir(path)
	}

	out, err := a.run(dir, StartTimeout, ExecutionTimeout, "rev-parse", "--show-toplevel")
	if err != nil {
		return NotInWorkingTree(path)
	}

	top := strings.TrimSpace(string(out))
	absPath, err := filepath.Abs(path)
	if err != nil {
		return NotInWorkingTree(path)
	}
	if !strings.HasPrefix(absPath, top) {
		return NotInWorkingTree(path)
	}

	a.workingTreeDir = top
	return nil
}

func (a *CLIAdapter) WorkingTreeDir() string {
	return a.workingTreeDir
}

func (a *CLIAdapter) BrokenCommits(ctx context.Context) (map[string]struct{}, error) {
	const unit = "\x00"
	out, err := a.runCtx(ctx, a.workingTreeDir, "log", "HEAD", "--pretty=%H"+unit+"%P"+unit+"%s")
	if err != nil {
		return nil, errs.New(errs.GitError, fmt.Errorf("listing commits: %w", err))
	}

	broken := make(map[string]struct{}, 1000)
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, unit, 3)
		if len(parts) != 3 {
			continue
		}
		hash, parents, subject := parts[0], parts[1], parts[2]

		parentCount := 0
		if strings.TrimSpace(parents) != "" {
			parentCount = len(strings.Fields(parents))
		}
		if parentCount > 2 {
			continue
		}
		if brokenSubjectPattern.MatchString(subject) {
			broken[hash] = struct{}{}
		}
	}
	return broken, nil
}

func (a *CLIAdapter) BlameFile(ctx context.Context, path string) ([]BlameLine, error) {
	out, err := a.runCtx(ctx, a.workingTreeDir, "blame", "HEAD", "-CC", "-w", "-l", "-f", "-t", "--date=iso", "--", path)
	if err != nil {
		return nil, errs.New(errs.GitError, fmt.Errorf("blaming %s: %w", path, err))
	}

	hashIdx := blameLinePattern.SubexpIndex("hash")
	authorIdx := blameLinePattern.SubexpIndex("author")

	var lines []BlameLine
	for _, raw := range strings.Split(string(out), "\n") {
		if raw == "" {
			continue
		}
		m := blameLinePattern.FindStringSubmatch(raw)
		if m == nil {
			logging.L().WithField("file", path).Warnf("git blame returned unexpected line: %q", raw)
			continue
		}
		lines = append(lines, BlameLine{Hash: m[hashIdx], Author: m[authorIdx]})
	}
	return lines, nil
}

func (a *CLIAdapter) run(dir string, startTimeout, execTimeout time.Duration, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startTimeout+execTimeout)
	defer cancel()
	return a.runCtx(ctx, dir, args...)
}

func (a *CLIAdapter) runCtx(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, errs.New(errs.RunningExternalToolError, fmt.Errorf("starting git %v: %w", args, err))
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(ExecutionTimeout)
	defer timer.Stop()

	select {
	case <-timer.C:
		_ = cmd.Process.Kill()
		return nil, errs.New(errs.RunningExternalToolError, fmt.Errorf("git %v exceeded the %v execution timeout", args, ExecutionTimeout))
	case err := <-done:
		if err != nil {
			return nil, errs.New(errs.RunningExternalToolError, fmt.Errorf("running git %v: %w: %s", args, err, stderr.String()))
		}
		return stdout.Bytes(), nil
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		return nil, errs.New(errs.RunningExternalToolError, fmt.Errorf("git %v timed out: %w", args, ctx.Err()))
	}
}
