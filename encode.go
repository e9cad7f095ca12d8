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

import "strings"

const upperhex = "0123456789ABCDEF"

// escapeSegment percent-encodes s for embedding as a single URL path
// segment. Every byte outside [A-Za-z0-9_-] is encoded, which is stricter
// than net/url.PathEscape: the serialized output must be unambiguous even
// for values containing ".", "/", or path sub-delimiters, so the reserved
// set is "non-alphanumeric except '-' and '_'".
func escapeSegment(s string) string {
	escaped := 0
	for i := 0; i < len(s); i++ {
		if !isUnreservedByte(s[i]) {
			escaped++
		}
	}
	if escaped == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*escaped)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedByte(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0F])
		}
	}
	return b.String()
}

func isUnreservedByte(c byte) bool {
	return 'A' <= c && c <= 'Z' ||
		'a' <= c && c <= 'z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '_'
}
