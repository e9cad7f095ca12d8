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

// Serialize interpolates a structured value into the template, producing
// a percent-encoded URL path. It is the one-shot form of
// [Serializer.Serialize] plus [Serializer.Finalize]:
//
//	t := pathcast.MustParse("/users/{id}/files/{*path}")
//	path, err := pathcast.Serialize(t, pathcast.Tuple{42, []string{"a", "b"}})
//	// path == "/users/42/files/a/b"
//
// Accepted top-level value shapes:
//   - a single scalar, when the template has exactly one named capture;
//   - a [Tuple], filling captures positionally;
//   - a flat struct or a map with scalar keys, filling captures by name;
//   - a slice, when the template's only unfilled capture is the wildcard.
//
// A failed call never returns a partial path, and the same template may
// be retried with corrected input.
func Serialize(t *Template, v any) (string, error) {
	s := NewSerializer(t)
	path, err := s.serializeOnce(v)
	recordSerialize(err)
	return path, err
}

func (s *Serializer) serializeOnce(v any) (string, error) {
	if err := s.Serialize(v); err != nil {
		return "", err
	}
	return s.Finalize()
}
