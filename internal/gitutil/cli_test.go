// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package gitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrokenSubjectPatternMatchesMergeCommits(t *testing.T) {
	assert.True(t, brokenSubjectPattern.MatchString("Merge branch 'feature' into main"))
	assert.True(t, brokenSubjectPattern.MatchString(`Revert "Merge branch 'feature' into main"`))
	assert.True(t, brokenSubjectPattern.MatchString("Merge pull request #1 from user/branch -> main"))
	assert.False(t, brokenSubjectPattern.MatchString("Fix a bug in the parser"))
}

func TestBlameLinePatternExtractsHashAndAuthor(t *testing.T) {
	line := `a1b2c3d4e5f6 src/main.cpp (Alice Doe 2024-01-01 12:00:00 +0000 10) int main() {}`
	m := blameLinePattern.FindStringSubmatch(line)
	if assert.NotNil(t, m) {
		assert.Equal(t, "a1b2c3d4e5f6", m[blameLinePattern.SubexpIndex("hash")])
		assert.Equal(t, "Alice Doe", m[blameLinePattern.SubexpIndex("author")])
	}
}

func TestBlameLinePatternRejectsUnrelatedText(t *testing.T) {
	m := blameLinePattern.FindStringSubmatch("not a blame line at all")
	assert.Nil(t, m)
}
