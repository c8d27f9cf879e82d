// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

package header

import (
	"sort"
	"strings"
)

// Serialize renders a desired field set to bytes: fields in FieldType
// order, list fields emitting one line per value, labels left-justified to
// the widest non-Component label, Component preceded by a blank framing
// line, and the final newline replaced by suffix.
func Serialize(fields map[FieldType]Value, prefix, lineStart, suffix string) []byte {
	types := make([]FieldType, 0, len(fields))
	for t := range fields {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	width := 0
	for _, t := range types {
		if t == Component {
			continue
		}
		if n := len(t.Name()); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.WriteString(prefix)

	emitLine := func(t FieldType, value string) {
		if t == Component {
			b.WriteString(lineStart)
			b.WriteByte('\n')
		}
		b.WriteString(lineStart)
		b.WriteByte(' ')
		label := t.Name()
		if t != Component {
			b.WriteString(label)
			b.WriteString(strings.Repeat(" ", width-len(label)))
		} else {
			b.WriteString(label)
		}
		b.WriteByte(' ')
		b.WriteString(value)
		if t.RequiresFullstop() {
			b.WriteByte('.')
		}
		b.WriteByte('\n')
	}

	for _, t := range types {
		v := fields[t]
		if t.IsList() {
			for _, item := range v.List {
				emitLine(t, item)
			}
			continue
		}
		emitLine(t, v.Scalar)
	}

	out := b.String()
	// Replace the final '\n' with suffix.
	if strings.HasSuffix(out, "\n") {
		out = out[:len(out)-1] + suffix
	} else {
		out += suffix
	}
	return []byte(out)
}
