// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Package headerconst centralizes the literal strings the header engine
// depends on: the et al. sentinel, the copyright-template placeholder
// token, the field label spellings, and the default static-config
// filename. Grounded on the original implementation's src/constants.h,
// which serves the same "one place for magic strings" role.
package headerconst

const (
	// EtAl is appended to a truncated or low-coverage author list.
	EtAl = "et al."

	// CurrentYearToken is substituted with the local Gregorian year inside
	// a copyright field template.
	CurrentYearToken = "%CURRENT_YEAR%"

	// DefaultStaticConfigName is the filename looked up next to the
	// executable when --static-config is not given.
	DefaultStaticConfigName = "static_config.json"

	// NamesShare is the cumulative-share cutoff used by the author selector.
	NamesShare = 0.66

	// EtAlThreshold is the author-count at or above which the top-N collapse applies.
	EtAlThreshold = 8

	// EtAlMentions is how many top authors are kept when collapsing.
	EtAlMentions = 4

	// FieldLabelFile, FieldLabelAuthor, FieldLabelCopyright and
	// FieldLabelComponent are the literal header field label spellings.
	FieldLabelFile       = "File"
	FieldLabelAuthor     = "Author"
	FieldLabelCopyright  = "Copyright"
	FieldLabelComponent  = "This file is part of"
)

// UnlimitedBlameAuthors represents "no cap" for RunConfig.MaxBlameAuthors,
// i.e. math.MaxInt32, matching the spec's "represented as the maximum
// signed 32-bit integer".
const UnlimitedBlameAuthors = 1<<31 - 1
