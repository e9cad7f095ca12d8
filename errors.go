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

import "errors"

// Template parse errors. A pattern that fails to parse must not be used;
// callers performing code generation should surface these as build failures.
//
// All errors carry the offending fragment and are matched with [errors.Is]:
//
//	if _, err := pathcast.Parse("/a/{b-s}/c"); errors.Is(err, pathcast.ErrInvalidIdent) {
//	    // reject the pattern
//	}
var (
	// ErrUnclosedCapture indicates a segment with a mismatched capture brace,
	// such as "/{id" or "/id}".
	ErrUnclosedCapture = errors.New("unclosed capture")

	// ErrInvalidWildcard indicates a wildcard capture ("{*name}") that is not
	// the final component of the pattern.
	ErrInvalidWildcard = errors.New("wildcard must be the last component of the pattern")

	// ErrInvalidIdent indicates a capture whose name is not a legal identifier.
	ErrInvalidIdent = errors.New("capture name is not a valid identifier")

	// ErrInvalidPathChar indicates a static segment containing a character
	// outside the allowed URL path set.
	ErrInvalidPathChar = errors.New("static segment contains invalid URL path character")

	// ErrDuplicateCapture indicates the same capture name appearing more than
	// once in a single pattern.
	ErrDuplicateCapture = errors.New("duplicate capture name")
)

// Serialization errors. These are per-call faults: the template remains
// valid and the serializer resets itself, so retrying with corrected input
// is expected. A failed call never yields a partially interpolated path.
var (
	// ErrTypeNotSupported indicates a value shape the path data model cannot
	// express, such as byte slices, channels, or nested nil values.
	ErrTypeNotSupported = errors.New("type not supported in path serialization")

	// ErrInvalidLen indicates an element or field count that does not match
	// the number of captures in the template.
	ErrInvalidLen = errors.New("value count does not match template captures")

	// ErrNonWildcardCapture indicates a sequence offered to a slot that is
	// not the wildcard capture.
	ErrNonWildcardCapture = errors.New("sequence is only valid for the wildcard capture")

	// ErrDeepNesting indicates a composite value nested inside another
	// composite; only flat structs, maps, and tuples are accepted.
	ErrDeepNesting = errors.New("nested composite values cannot be serialized to a path")

	// ErrMissingCapture indicates that finalization found a capture slot with
	// no value assigned.
	ErrMissingCapture = errors.New("missing value for required capture")

	// ErrUnknownCapture indicates a struct field or map key that names no
	// capture in the template.
	ErrUnknownCapture = errors.New("unknown capture name")

	// ErrMarshalValue indicates that a value's own TextMarshaler
	// implementation failed. The underlying error is wrapped.
	ErrMarshalValue = errors.New("value failed to marshal")
)
