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
	"encoding"
	"fmt"
	"maps"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"
	"unicode/utf8"
)

// TagName is the struct tag used to rename a field's capture:
//
//	type FileArgs struct {
//	    Owner string   `path:"owner"`
//	    Parts []string `path:"rest"`
//	}
//
// Untagged exported fields map to their name with the first rune
// lower-cased ("Owner" → "owner", "UserID" → "userID").
const TagName = "path"

var (
	tupleType         = reflect.TypeFor[Tuple]()
	variantType       = reflect.TypeFor[Variant]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// walkAny starts a walk from an interface value. An untyped nil maps to
// the data model's "none": ignored at top level, rejected inside a
// composite.
func (s *Serializer) walkAny(v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return s.walkNil()
	}
	return s.walkValue(rv)
}

// walkValue dispatches one value onto the session state machine.
func (s *Serializer) walkValue(rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return s.walkNil()
		}
	}

	switch {
	case rv.Type() == tupleType:
		return s.walkTuple(rv.Interface().(Tuple))
	case rv.Type().Implements(variantType):
		raw := strings.ToLower(rv.Interface().(Variant).Variant())
		return s.writeScalar(raw, escapeSegment(raw))
	case rv.Type().Implements(textMarshalerType):
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMarshalValue, err)
		}
		raw := string(text)
		return s.writeScalar(raw, escapeSegment(raw))
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return s.walkValue(rv.Elem())

	case reflect.Bool:
		raw := strconv.FormatBool(rv.Bool())
		return s.writeScalar(raw, raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		raw := strconv.FormatInt(rv.Int(), 10)
		return s.writeScalar(raw, raw)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		raw := strconv.FormatUint(rv.Uint(), 10)
		return s.writeScalar(raw, raw)

	case reflect.Float32:
		raw := strconv.FormatFloat(rv.Float(), 'f', -1, 32)
		return s.writeScalar(raw, escapeSegment(raw))

	case reflect.Float64:
		raw := strconv.FormatFloat(rv.Float(), 'f', -1, 64)
		return s.writeScalar(raw, escapeSegment(raw))

	case reflect.String:
		raw := rv.String()
		return s.writeScalar(raw, escapeSegment(raw))

	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return fmt.Errorf("%w: %s", ErrTypeNotSupported, rv.Type())
		}
		return s.walkSequence(rv)

	case reflect.Struct:
		return s.walkStruct(rv)

	case reflect.Map:
		return s.walkMap(rv)

	default:
		return fmt.Errorf("%w: %s", ErrTypeNotSupported, rv.Kind())
	}
}

func (s *Serializer) walkNil() error {
	// A top-level nil contributes nothing; a nil inside a composite has no
	// path representation.
	if s.nested {
		return fmt.Errorf("%w: nil inside composite value", ErrTypeNotSupported)
	}
	return nil
}

func (s *Serializer) walkTuple(tup Tuple) error {
	if err := s.beginComposite(len(tup)); err != nil {
		return err
	}
	for _, el := range tup {
		if err := s.walkAny(el); err != nil {
			return err
		}
		if err := s.advanceTuple(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Serializer) walkStruct(rv reflect.Value) error {
	fields := cachedStructFields(rv.Type())
	if err := s.beginComposite(len(fields)); err != nil {
		return err
	}
	for _, f := range fields {
		if err := s.selectCapture(f.name); err != nil {
			return err
		}
		if err := s.walkValue(rv.Field(f.index)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Serializer) walkMap(rv reflect.Value) error {
	if err := s.beginComposite(rv.Len()); err != nil {
		return err
	}
	iter := rv.MapRange()
	for iter.Next() {
		s.pendingKey = true
		if err := s.walkValue(iter.Key()); err != nil {
			return err
		}
		if err := s.walkValue(iter.Value()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Serializer) walkSequence(rv reflect.Value) error {
	if err := s.beginSequence(); err != nil {
		return err
	}
	for i := range rv.Len() {
		if err := s.walkValue(rv.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

// structField is the cached mapping from a struct field to its capture
// name.
type structField struct {
	index int
	name  string
}

var (
	// RCU pattern: atomic pointer to immutable map, copy-on-write updates.
	structFieldsPtr atomic.Pointer[map[reflect.Type][]structField]

	// Write-side lock (only for cache updates).
	structFieldsMu sync.Mutex
)

func init() {
	m := make(map[reflect.Type][]structField)
	structFieldsPtr.Store(&m)
}

// cachedStructFields retrieves or computes the capture-name mapping for a
// struct type. Reads are lock-free; concurrent misses parse once under a
// write lock with a double check.
func cachedStructFields(typ reflect.Type) []structField {
	m := structFieldsPtr.Load()
	if fs, ok := (*m)[typ]; ok {
		return fs
	}

	structFieldsMu.Lock()
	defer structFieldsMu.Unlock()

	m = structFieldsPtr.Load()
	if fs, ok := (*m)[typ]; ok {
		return fs
	}

	fs := parseStructFields(typ)
	next := make(map[reflect.Type][]structField, len(*m)+1)
	maps.Copy(next, *m)
	next[typ] = fs
	structFieldsPtr.Store(&next)
	return fs
}

func parseStructFields(typ reflect.Type) []structField {
	fields := make([]structField, 0, typ.NumField())
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name := lowerFirst(f.Name)
		if tag, ok := f.Tag.Lookup(TagName); ok {
			if tag == "-" {
				continue
			}
			if v, _, _ := strings.Cut(tag, ","); v != "" {
				name = v
			}
		}
		fields = append(fields, structField{index: i, name: name})
	}
	return fields
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
