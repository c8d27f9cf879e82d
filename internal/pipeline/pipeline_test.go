// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyrightkit/headerlint/internal/gitutil"
	"github.com/copyrightkit/headerlint/internal/runconfig"
)

// fakeAdapter is a test double for gitutil.Adapter: no subprocess, no
// repository, just canned blame data keyed by the path it was opened with.
type fakeAdapter struct {
	dir    string
	blame  map[string][]gitutil.BlameLine
	broken map[string]struct{}
}

func (a *fakeAdapter) Open(string) error      { return nil }
func (a *fakeAdapter) WorkingTreeDir() string { return a.dir }
func (a *fakeAdapter) BrokenCommits(context.Context) (map[string]struct{}, error) {
	return a.broken, nil
}
func (a *fakeAdapter) BlameFile(_ context.Context, path string) ([]gitutil.BlameLine, error) {
	return a.blame[path], nil
}

func TestRunAddsHeaderToFileWithNoneWhenUpdateFileNameSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widget.cmake")
	require.NoError(t, os.WriteFile(path, []byte("set(X 1)\n"), 0o644))

	cfg := runconfig.New()
	cfg.UpdateFileName = true

	adapter := &fakeAdapter{dir: dir, blame: map[string][]gitutil.BlameLine{}, broken: map[string]struct{}{}}
	newAdapter := func() gitutil.Adapter { return adapter }

	modified, err := Run(context.Background(), path, cfg, nil, newAdapter, gitutil.NewBrokenSetCache())
	require.Nil(t, err)
	assert.True(t, modified)

	out, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(out), "File widget.cmake")
	assert.Contains(t, string(out), "set(X 1)")
}

func TestRunReadOnlyModeLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widget.cmake")
	original := "set(X 1)\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	cfg := runconfig.New()
	cfg.UpdateFileName = true
	cfg.ReadOnlyMode = true

	adapter := &fakeAdapter{dir: dir, blame: map[string][]gitutil.BlameLine{}, broken: map[string]struct{}{}}
	newAdapter := func() gitutil.Adapter { return adapter }

	modified, err := Run(context.Background(), path, cfg, nil, newAdapter, gitutil.NewBrokenSetCache())
	require.Nil(t, err)
	assert.False(t, modified, "ReadOnlyMode must report no modification")

	out, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, string(out), "ReadOnlyMode must never write the file")
}

func TestRunDontSkipBrokenMergesIncludesBrokenCommitLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widget.cmake")
	require.NoError(t, os.WriteFile(path, []byte("set(X 1)\n"), 0o644))

	cfg := runconfig.New()
	cfg.UpdateAuthors = true
	cfg.DontSkipBrokenMerges = true
	cfg.MaxBlameAuthors = 10

	adapter := &fakeAdapter{
		dir: dir,
		blame: map[string][]gitutil.BlameLine{
			path: {
				{Hash: "aaa", Author: "Header Author"},
				{Hash: "bbb", Author: "Merge Bot"},
			},
		},
		broken: map[string]struct{}{"bbb": {}},
	}
	newAdapter := func() gitutil.Adapter { return adapter }

	modified, err := Run(context.Background(), path, cfg, nil, newAdapter, gitutil.NewBrokenSetCache())
	require.Nil(t, err)
	assert.True(t, modified)

	out, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(out), "Merge Bot", "DontSkipBrokenMerges must include the broken commit's author")
}

func TestRunWithNoFlagsLeavesUpToDateFileUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "widget.cmake")
	require.NoError(t, os.WriteFile(path, []byte("set(X 1)\n"), 0o644))

	cfg := runconfig.New()

	adapter := &fakeAdapter{dir: dir, blame: map[string][]gitutil.BlameLine{}, broken: map[string]struct{}{}}
	newAdapter := func() gitutil.Adapter { return adapter }

	modified, err := Run(context.Background(), path, cfg, nil, newAdapter, gitutil.NewBrokenSetCache())
	require.Nil(t, err)
	assert.False(t, modified)
}
