// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package staticconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyrightkit/headerlint/internal/errs"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "static_config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	ResetForTest()
	path := writeConfig(t, `{
		"author_aliases": {"john.doe": "John Doe"},
		"copyright_field_template": "(c) %CURRENT_YEAR%, Inc.",
		"excluded_path_sections": ["/vendor/", "/third_party/"]
	}`)

	cfg, err := Load(path)
	require.Nil(t, err)
	assert.Equal(t, "John Doe", cfg.Canonicalize("john.doe"))
	assert.Equal(t, "unknown", cfg.Canonicalize("unknown"))
	assert.True(t, cfg.IsPathExcluded("/repo/vendor/lib.cpp"))
	assert.False(t, cfg.IsPathExcluded("/repo/src/lib.cpp"))
}

func TestLoadMissingTemplateFails(t *testing.T) {
	ResetForTest()
	path := writeConfig(t, `{"author_aliases": {}}`)

	_, err := Load(path)
	require.NotNil(t, err)
	assert.Equal(t, errs.BadStaticConfigFormat, err.Kind)
}

func TestLoadNonObjectRootFails(t *testing.T) {
	ResetForTest()
	path := writeConfig(t, `[1, 2, 3]`)

	_, err := Load(path)
	require.NotNil(t, err)
	assert.Equal(t, errs.BadStaticConfigFormat, err.Kind)
}

func TestLoadMissingFileFails(t *testing.T) {
	ResetForTest()
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NotNil(t, err)
	assert.Equal(t, errs.BadStaticConfigPaths, err.Kind)
}

func TestLoadIsMemoizedAcrossCalls(t *testing.T) {
	ResetForTest()
	path := writeConfig(t, `{"copyright_field_template": "(c) %CURRENT_YEAR%"}`)

	first, err := Load(path)
	require.Nil(t, err)

	second, err := Load("/some/other/path/that/does/not/exist.json")
	require.Nil(t, err)
	assert.Same(t, first, second, "Load must only read the first path it's called with, per process")
}
