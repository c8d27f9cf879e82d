// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/copyrightkit/headerlint/internal/headerconst"
)

// fieldNamesAlternation is the regex alternation of every known field
// label, in FieldType order. None of the labels is a prefix of another, so
// the order of the alternatives does not affect which one matches.
const fieldNamesAlternation = headerconst.FieldLabelFile + "|" +
	headerconst.FieldLabelAuthor + "|" +
	headerconst.FieldLabelCopyright + "|" +
	headerconst.FieldLabelComponent

// ErrBadHeaderFormat is returned by Parse when a non-blank body line fails
// to match the field grammar. The caller (File Pipeline) treats this as
// errs.BadHeaderFormat and continues with a header-less Parsed.
type ErrBadHeaderFormat struct {
	Line string
}

func (e *ErrBadHeaderFormat) Error() string {
	return fmt.Sprintf("bad header field format: %q", e.Line)
}

// lineRegex builds the per-line field grammar for a given line-start
// token. Compiled once per extension family rather than once per file:
// callers should cache the result (Parse does this via a package-level
// cache keyed by lineStart since there are only two families in practice).
func lineRegex(lineStart string) *regexp.Regexp {
	pattern := "^" + regexp.QuoteMeta(lineStart) +
		"( (?P<name>" + fieldNamesAlternation + ") +(?P<value>.*))?$"
	return regexp.MustCompile(pattern)
}

// regexCache is read and populated from many worker goroutines at once (the
// Dispatcher runs one File Pipeline per file on a bounded pool), so it's
// guarded by a RWMutex rather than a plain map.
var (
	regexCacheMu sync.RWMutex
	regexCache   = map[string]*regexp.Regexp{}
)

func cachedLineRegex(lineStart string) *regexp.Regexp {
	regexCacheMu.RLock()
	re, ok := regexCache[lineStart]
	regexCacheMu.RUnlock()
	if ok {
		return re
	}

	re = lineRegex(lineStart)

	regexCacheMu.Lock()
	regexCache[lineStart] = re
	regexCacheMu.Unlock()
	return re
}

// Parse tokenizes a header body into a Parsed field set. On a grammar
// failure it returns ErrBadHeaderFormat and an empty Parsed — callers
// recover by treating the file as header-less, per the "header recovery"
// design note. notes carries one entry per scalar field repeated within the
// same header, for the caller to log at debug level; Parse itself takes no
// logger dependency.
func Parse(body []byte, lineStart string) (p *Parsed, notes []string, err error) {
	p = NewParsed()
	if len(body) == 0 {
		return p, nil, nil
	}

	re := cachedLineRegex(lineStart)
	nameIdx := re.SubexpIndex("name")
	valueIdx := re.SubexpIndex("value")

	for _, line := range strings.Split(string(body), "\n") {
		if line == "" || line == lineStart {
			continue // blank framing line
		}

		m := re.FindStringSubmatch(line)
		if m == nil {
			return NewParsed(), nil, &ErrBadHeaderFormat{Line: line}
		}

		name := m[nameIdx]
		if name == "" {
			continue // matched but the field group was empty: blank framing line
		}

		fieldType, ok := FieldTypeFromName(name)
		if !ok {
			return NewParsed(), nil, &ErrBadHeaderFormat{Line: line}
		}

		value := m[valueIdx]
		if fieldType.RequiresFullstop() {
			value = strings.TrimSuffix(value, ".")
		}

		if fieldType.IsList() {
			p.AppendAuthor(value)
			continue
		}

		if _, exists := p.Get(fieldType); exists {
			notes = append(notes, fmt.Sprintf("%s field was met again in the same header", fieldType.Name()))
		}
		p.Set(fieldType, ScalarValue(value))
	}

	return p, notes, nil
}
