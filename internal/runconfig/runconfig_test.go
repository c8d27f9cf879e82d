// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package runconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/copyrightkit/headerlint/internal/headerconst"
)

func TestNewDefaultsToUnlimitedBlameAuthorsAndNoFlagsEnabled(t *testing.T) {
	cfg := New()
	assert.Equal(t, headerconst.UnlimitedBlameAuthors, cfg.MaxBlameAuthors)
	assert.False(t, cfg.UpdateComponent)
	assert.False(t, cfg.UpdateCopyright)
	assert.False(t, cfg.UpdateFileName)
	assert.False(t, cfg.UpdateAuthors)
	assert.False(t, cfg.ReadOnlyMode)
	assert.Equal(t, GitBackendCLI, cfg.GitBackend)
}
