// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package gitutil

import (
	"context"
	"sync"
)

// BrokenSetCache memoizes BrokenCommits per working tree, computed once per
// repository as the data model requires. It is an explicit,
// caller-constructed handle threaded through the Dispatcher and into every
// File Pipeline invocation, not an ambient package-level global — the
// design notes call for lazily-initialized handles passed by reference,
// not singletons reached for from inside the pipeline.
type BrokenSetCache struct {
	mu    sync.Mutex
	byDir map[string]*brokenSetEntry
}

type brokenSetEntry struct {
	once sync.Once
	set  map[string]struct{}
	err  error
}

// NewBrokenSetCache returns an empty cache, one per process run.
func NewBrokenSetCache() *BrokenSetCache {
	return &BrokenSetCache{byDir: make(map[string]*brokenSetEntry)}
}

// Get returns the broken-commit set for the adapter's working tree,
// computing it on first demand and reusing it for every subsequent caller
// sharing this cache.
func (c *BrokenSetCache) Get(ctx context.Context, a Adapter) (map[string]struct{}, error) {
	dir := a.WorkingTreeDir()

	c.mu.Lock()
	entry, ok := c.byDir[dir]
	if !ok {
		entry = &brokenSetEntry{}
		c.byDir[dir] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		entry.set, entry.err = a.BrokenCommits(ctx)
	})
	return entry.set, entry.err
}
