// Copyright 2026 The Pathcast Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pathcast

import (
	"fmt"
	"slices"
	"strings"
)

// Tuple carries values for positional capture assignment: element i fills
// the i-th capture of the template, in declaration order. The element
// count must equal [Template.ParamCount]. The last element may be a slice
// when the template ends in a wildcard capture.
//
//	pathcast.Serialize(t, pathcast.Tuple{"alice", 42})
type Tuple []any

// Variant is implemented by enum-like values that serialize as their
// variant name. The name is lower-cased before encoding, so stringer-style
// constant names ("Active", "Pending") produce conventional path segments.
type Variant interface {
	Variant() string
}

// cursorNone marks the serializer as accepting no further values: either
// the template is blank, or a positional pass consumed every slot.
const cursorNone = -1

// Serializer is the ephemeral state for one value-to-path conversion.
// It fills one slot per named capture and accumulates wildcard values,
// then assembles the interpolated path on Finalize.
//
// A Serializer is not safe for concurrent use. It resets itself after
// Finalize, so a single instance may be reused for many conversions of
// the same template:
//
//	s := pathcast.NewSerializer(t)
//	for _, args := range batches {
//	    if err := s.Serialize(args); err != nil { ... }
//	    path, err := s.Finalize()
//	    ...
//	}
//
// For one-shot conversions use the package-level [Serialize].
type Serializer struct {
	template      *Template
	slots         []slot
	wildcardSlots []string

	// cursor addresses the slot the next value fills: an index into slots,
	// len(slots) for the wildcard slot, or cursorNone.
	cursor int

	// nested is set once a composite (struct, map, tuple, sequence) has
	// been entered; a second composite level is a DeepNesting fault.
	nested bool

	// pendingKey marks that the next scalar is a map key and selects a
	// slot by name instead of carrying data.
	pendingKey bool
}

type slot struct {
	value  string
	filled bool
}

// NewSerializer creates a Serializer for the given template. The slot
// array is sized once from the template and recycled across
// finalize/reset cycles.
func NewSerializer(t *Template) *Serializer {
	s := &Serializer{
		template: t,
		slots:    make([]slot, len(t.captures)),
	}
	s.rewind()
	return s
}

// Serialize walks the value and assigns each produced scalar to a capture
// slot. Call [Serializer.Finalize] afterwards to obtain the path. On error
// the serializer must be Reset before reuse.
func (s *Serializer) Serialize(v any) error {
	return s.walkAny(v)
}

// Finalize assembles the interpolated path from the filled slots and
// resets the serializer for reuse. Every named capture must have received
// a value; the wildcard slot may be empty.
func (s *Serializer) Finalize() (string, error) {
	slots := s.slots
	wildcardSlots := s.wildcardSlots
	s.slots = make([]slot, len(s.template.captures))
	s.wildcardSlots = nil
	s.rewind()

	if s.template.IsBlank() {
		return "/", nil
	}

	var b strings.Builder
	next := 0
	for _, seg := range s.template.segments {
		b.WriteByte('/')
		if seg.Static {
			b.WriteString(seg.Value)
			continue
		}
		sl := slots[next]
		next++
		if !sl.filled {
			return "", fmt.Errorf("%w: %s", ErrMissingCapture, seg.Value)
		}
		b.WriteString(sl.value)
	}

	if s.template.wildcard != "" {
		for _, v := range wildcardSlots {
			b.WriteByte('/')
			b.WriteString(v)
		}
	}

	// A wildcard-only template with no wildcard values renders as root.
	if b.Len() == 0 {
		return "/", nil
	}
	return b.String(), nil
}

// Reset clears all slot state, making the serializer ready for a fresh
// value after a failed call. Finalize resets implicitly.
func (s *Serializer) Reset() {
	for i := range s.slots {
		s.slots[i] = slot{}
	}
	s.wildcardSlots = s.wildcardSlots[:0]
	s.rewind()
}

func (s *Serializer) rewind() {
	if s.template.IsBlank() {
		s.cursor = cursorNone
	} else {
		s.cursor = 0
	}
	s.nested = false
	s.pendingKey = false
}

// wildcardCursor is the sentinel slot index addressing the wildcard slot.
func (s *Serializer) wildcardCursor() int {
	return len(s.slots)
}

// writeScalar stores one encoded value at the cursor. When pendingKey is
// set the raw form is a map key and selects the next slot by name instead.
func (s *Serializer) writeScalar(raw, encoded string) error {
	if s.pendingKey {
		s.pendingKey = false
		return s.selectCapture(raw)
	}
	if err := s.assertScalar(); err != nil {
		return err
	}

	switch {
	case s.cursor == cursorNone:
		return fmt.Errorf("%w: no capture left for value %q", ErrInvalidLen, raw)
	case s.cursor == s.wildcardCursor():
		s.wildcardSlots = append(s.wildcardSlots, encoded)
	default:
		s.slots[s.cursor] = slot{value: encoded, filled: true}
	}
	return nil
}

// assertScalar checks that a scalar is legal here: either inside a
// composite, or at top level against a template with exactly one named
// capture (the flat-input case).
func (s *Serializer) assertScalar() error {
	if s.nested || len(s.slots) == 1 {
		return nil
	}
	return fmt.Errorf("%w: template has %d captures, got a single value",
		ErrInvalidLen, s.template.ParamCount())
}

// beginComposite validates entry into a struct, map, or tuple of n
// entries. Only one composite level is allowed, and a sized composite
// must match the template arity exactly.
func (s *Serializer) beginComposite(n int) error {
	if s.nested && s.cursor != cursorNone {
		return ErrDeepNesting
	}
	s.nested = true

	if s.cursor == cursorNone {
		return nil
	}
	if s.template.ParamCount() != n {
		return fmt.Errorf("%w: template has %d captures, value has %d entries",
			ErrInvalidLen, s.template.ParamCount(), n)
	}
	return nil
}

// beginSequence validates entry into a sequence, which is legal only when
// the cursor addresses the wildcard slot. Sequence elements do not advance
// the cursor, so they accumulate in order.
func (s *Serializer) beginSequence() error {
	if s.cursor != s.wildcardCursor() {
		return ErrNonWildcardCapture
	}
	s.nested = true
	return nil
}

// selectCapture points the cursor at the slot named by a struct field or
// map key, special-casing the wildcard name to the wildcard slot.
func (s *Serializer) selectCapture(name string) error {
	if s.template.wildcard != "" && name == s.template.wildcard {
		s.cursor = s.wildcardCursor()
		return nil
	}
	idx := slices.Index(s.template.captures, name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownCapture, name)
	}
	s.cursor = idx
	return nil
}

// advanceTuple moves the cursor to the next positional slot, passing
// through the wildcard slot and ending at cursorNone once every slot has
// been consumed.
func (s *Serializer) advanceTuple() error {
	switch {
	case s.cursor == cursorNone:
		return fmt.Errorf("%w: more elements than captures", ErrInvalidLen)
	case s.cursor == s.wildcardCursor():
		s.cursor = cursorNone
	default:
		s.cursor++
	}
	return nil
}
