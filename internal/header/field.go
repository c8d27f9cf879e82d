// Copyright 2025 The Headerlint Authors.
// SPDX-License-Identifier: Apache-2.0

// Package header implements the header locator, field parser and
// serializer: the part of the engine that finds the prefix...suffix span in
// a file's bytes, tokenizes its body into typed fields, and renders a
// desired field set back to bytes.
package header

import "github.com/copyrightkit/headerlint/internal/headerconst"

// FieldType is the closed field enumeration. Its integer value is also its
// serialization order: File < Author < Copyright < Component.
type FieldType int

const (
	File FieldType = iota
	Author
	Copyright
	Component
)

// Name returns the literal label spelling for a field type.
func (f FieldType) Name() string {
	switch f {
	case File:
		return headerconst.FieldLabelFile
	case Author:
		return headerconst.FieldLabelAuthor
	case Copyright:
		return headerconst.FieldLabelCopyright
	case Component:
		return headerconst.FieldLabelComponent
	default:
		return ""
	}
}

// FieldTypeFromName is the inverse of Name, used by the parser. ok is false
// for any label outside the closed set.
func FieldTypeFromName(name string) (FieldType, bool) {
	switch name {
	case headerconst.FieldLabelFile:
		return File, true
	case headerconst.FieldLabelAuthor:
		return Author, true
	case headerconst.FieldLabelCopyright:
		return Copyright, true
	case headerconst.FieldLabelComponent:
		return Component, true
	default:
		return 0, false
	}
}

// IsList reports whether a field may repeat within one header. Author is
// the only list field; everything else is scalar.
func (f FieldType) IsList() bool {
	return f == Author
}

// RequiresFullstop reports whether the serialized field value must carry a
// trailing '.'. Component is the only such field.
func (f FieldType) RequiresFullstop() bool {
	return f == Component
}

// Value is the tagged variant for one field's data: exactly one of Scalar
// (for File/Copyright/Component) or List (for Author) is meaningful,
// selected by the owning FieldType's IsList(). Kept as a tagged struct
// rather than `any` so callers don't type-switch at every use site.
type Value struct {
	Scalar string
	List   []string
}

func ScalarValue(s string) Value { return Value{Scalar: s} }
func ListValue(vs []string) Value { return Value{List: append([]string(nil), vs...)} }

// Equal compares two values of the same field type by the spec's equality
// rule: scalar fields by exact string, list fields by ordered
// element-wise equality. The caller is responsible for only comparing
// values belonging to the same FieldType.
func (v Value) Equal(o Value, isList bool) bool {
	if isList {
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if v.List[i] != o.List[i] {
				return false
			}
		}
		return true
	}
	return v.Scalar == o.Scalar
}

// ByteRange is a half-open [Start, End) span of bytes within a file's
// content.
type ByteRange struct {
	Start, End int
}

// LineRange is a half-open [Start, End) span of lines, 0-indexed, that a
// header occupies.
type LineRange struct {
	Start, End int
}

// Parsed is the model the Field Parser produces and the Field Fixer
// mutates: a map from field type to its value, plus the header's location
// within the source file's bytes. The zero value represents "no header".
type Parsed struct {
	Fields map[FieldType]Value
	Bytes  ByteRange
	Lines  LineRange
}

// NewParsed returns an empty, header-less Parsed value.
func NewParsed() *Parsed {
	return &Parsed{Fields: make(map[FieldType]Value)}
}

// Get returns the value for a field type and whether it is present.
func (p *Parsed) Get(t FieldType) (Value, bool) {
	v, ok := p.Fields[t]
	return v, ok
}

// Set assigns a field's value, replacing any previous one.
func (p *Parsed) Set(t FieldType, v Value) {
	p.Fields[t] = v
}

// Delete removes a field entirely (used for Component removal).
func (p *Parsed) Delete(t FieldType) {
	delete(p.Fields, t)
}

// AppendAuthor appends to the Author list field, creating it if absent.
// Preserves first-seen order, as the invariants require.
func (p *Parsed) AppendAuthor(name string) {
	v := p.Fields[Author]
	v.List = append(v.List, name)
	p.Fields[Author] = v
}
