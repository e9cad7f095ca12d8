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
	"unicode"
)

// Segment is one slash-delimited component of a parsed template.
type Segment struct {
	Static bool   // true for literal text, false for a capture
	Value  string // literal text, or the capture name
}

// Template is the parsed, immutable representation of a route pattern:
// ordered static and capture segments plus an optional trailing wildcard
// capture. A Template is created once by [Parse] (typically at process
// start) and is safe for concurrent shared use afterward.
//
// Pattern syntax:
//
//	/users/{id}/files/{*path}
//
// Captures are brace-delimited identifiers. A capture whose name starts
// with "*" is a wildcard: it consumes zero or more trailing path
// components and is only valid as the last component.
type Template struct {
	segments []Segment
	captures []string
	wildcard string // empty when the template has no wildcard capture
}

// Parse parses a route pattern into a Template.
//
// The pattern is normalized: a trailing slash is dropped and empty
// components from repeated slashes are skipped. An empty pattern (or "/")
// yields the blank template, which serializes to "/".
//
// Errors are one of [ErrUnclosedCapture], [ErrInvalidWildcard],
// [ErrInvalidIdent], [ErrInvalidPathChar], or [ErrDuplicateCapture].
func Parse(pattern string) (*Template, error) {
	expr := strings.TrimRight(pattern, "/")
	if expr == "" {
		return &Template{}, nil
	}

	expr, wildcard, err := trimWildcard(expr)
	if err != nil {
		return nil, err
	}

	t := &Template{wildcard: wildcard}
	for seg := range strings.SplitSeq(expr, "/") {
		if seg == "" {
			continue
		}

		name, isCapture, err := captureName(seg)
		if err != nil {
			return nil, err
		}

		if !isCapture {
			if !isValidStaticSegment(seg) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidPathChar, seg)
			}
			t.segments = append(t.segments, Segment{Static: true, Value: seg})
			continue
		}

		if strings.HasPrefix(name, "*") {
			return nil, fmt.Errorf("%w: {%s}", ErrInvalidWildcard, name)
		}
		if !isValidIdent(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIdent, name)
		}
		if slices.Contains(t.captures, name) || name == t.wildcard {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCapture, name)
		}
		t.segments = append(t.segments, Segment{Value: name})
		t.captures = append(t.captures, name)
	}

	return t, nil
}

// MustParse is like [Parse] but panics on a malformed pattern. It is meant
// for pattern literals known at definition time:
//
//	var userFiles = pathcast.MustParse("/users/{id}/files/{*path}")
func MustParse(pattern string) *Template {
	t, err := Parse(pattern)
	if err != nil {
		panic(fmt.Sprintf("pathcast: invalid pattern %q: %v", pattern, err))
	}
	return t
}

// Segments returns the ordered segments of the template. The wildcard
// capture is not part of the segment list; see [Template.Wildcard].
func (t *Template) Segments() []Segment {
	return slices.Clone(t.segments)
}

// Captures returns the named capture identifiers in first-seen order,
// excluding the wildcard.
func (t *Template) Captures() []string {
	return slices.Clone(t.captures)
}

// Wildcard returns the wildcard capture name and whether one is present.
func (t *Template) Wildcard() (string, bool) {
	return t.wildcard, t.wildcard != ""
}

// ParamCount returns the number of captures in the template, counting the
// wildcard capture if present.
func (t *Template) ParamCount() int {
	n := len(t.captures)
	if t.wildcard != "" {
		n++
	}
	return n
}

// IsBlank reports whether the template has no segments and no wildcard.
// The blank template always serializes to "/".
func (t *Template) IsBlank() bool {
	return len(t.segments) == 0 && t.wildcard == ""
}

// String renders the template back into pattern syntax.
func (t *Template) String() string {
	if t.IsBlank() {
		return "/"
	}

	var b strings.Builder
	for _, seg := range t.segments {
		b.WriteByte('/')
		if seg.Static {
			b.WriteString(seg.Value)
		} else {
			b.WriteByte('{')
			b.WriteString(seg.Value)
			b.WriteByte('}')
		}
	}
	if t.wildcard != "" {
		b.WriteString("/{*")
		b.WriteString(t.wildcard)
		b.WriteByte('}')
	}
	return b.String()
}

// trimWildcard extracts a wildcard capture from the last component of the
// pattern, returning the remaining pattern and the wildcard name (empty if
// the last component is not a wildcard capture).
func trimWildcard(expr string) (string, string, error) {
	idx := strings.LastIndexByte(expr, '/')
	last := expr[idx+1:]

	name, isCapture, err := captureName(last)
	if err != nil {
		return "", "", err
	}
	if !isCapture || !strings.HasPrefix(name, "*") {
		return expr, "", nil
	}

	ident := strings.TrimPrefix(name, "*")
	if !isValidIdent(ident) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidIdent, ident)
	}
	return expr[:idx+1], ident, nil
}

// captureName classifies a component: a brace-delimited component returns
// its inner text, a component with a single mismatched brace is an error,
// and anything else is static text.
func captureName(seg string) (string, bool, error) {
	open := strings.HasPrefix(seg, "{")
	closed := strings.HasSuffix(seg, "}")

	if open != closed {
		return "", false, fmt.Errorf("%w: %q", ErrUnclosedCapture, seg)
	}
	if open {
		return seg[1 : len(seg)-1], true, nil
	}
	return "", false, nil
}

// isValidIdent reports whether s is a legal capture identifier: a letter
// or underscore followed by letters, digits, or underscores.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// isValidStaticSegment reports whether every character of a static segment
// belongs to the allowed URL path set.
func isValidStaticSegment(seg string) bool {
	for _, r := range seg {
		if !isValidPathChar(r) {
			return false
		}
	}
	return true
}

// isValidPathChar reports whether r may appear verbatim in a URL path
// segment: RFC 3986 unreserved characters plus sub-delims and ":" / "@".
func isValidPathChar(r rune) bool {
	switch {
	case 'A' <= r && r <= 'Z', 'a' <= r && r <= 'z', '0' <= r && r <= '9':
		return true
	}
	switch r {
	case '-', '.', '_', '~', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', ':', '@':
		return true
	}
	return false
}
