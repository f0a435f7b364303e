/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// lowerHex holds the digits the encoder emits. Escapes are always written in
// lowercase; the decoder and validators accept both cases.
const lowerHex = "0123456789abcdef"

// percentEncode writes s to out, escaping every maximal run of code points
// that are not in safe, as per RFC 3986, Section 2.1. A run is converted to
// bytes with charset as a whole, so multi-byte characters are never split.
// When spaceAsPlus is set, a space is written as '+' and a literal '+' is
// always escaped. It reports whether the output differs from s.
func percentEncode(s string, safe CodePointSet, spaceAsPlus bool, charset encoding.Encoding, out outputBuffer) bool {
	changed := false
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == ' ' && spaceAsPlus {
			out.writeByte('+')
			changed = true
			i++
			continue
		}
		if isSafe(r, size, safe, spaceAsPlus) {
			out.writeString(s[i : i+size])
			i += size
			continue
		}
		start := i
		i += size
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if isSafe(r, size, safe, spaceAsPlus) || (r == ' ' && spaceAsPlus) {
				break
			}
			i += size
		}
		for _, c := range charsetBytes(s[start:i], charset) {
			out.writeByte('%')
			out.writeByte(lowerHex[c>>4])
			out.writeByte(lowerHex[c&0x0F])
		}
		changed = true
	}
	return changed
}

// isSafe reports whether the rune decoded with the given size may be emitted
// literally. Bytes that are not valid UTF-8 are never safe.
func isSafe(r rune, size int, safe CodePointSet, spaceAsPlus bool) bool {
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return safe.Contains(r) && (r != '+' || !spaceAsPlus)
}

// charsetBytes converts a run of text to bytes in the given charset.
// Characters the charset cannot represent are replaced with its replacement
// byte.
func charsetBytes(s string, charset encoding.Encoding) []byte {
	if isUTF8(charset) {
		return []byte(s)
	}
	b, err := encoding.ReplaceUnsupported(charset.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return b
}

// percentDecode writes the decoded form of s to out. Consecutive escapes are
// collected and decoded together with charset, so multi-byte sequences split
// over several triplets come out whole. A '+' is a space only when
// spaceAsPlus is set and is passed through otherwise; a malformed escape is
// always an error. It reports whether the output differs from s.
func percentDecode(s string, spaceAsPlus bool, charset encoding.Encoding, out *strings.Builder) (bool, error) {
	in := newScanInput(s)
	changed := false
	var pending []byte
	for {
		start := in.position()
		r, ok := in.next()
		if !ok {
			return changed, nil
		}
		switch r {
		case '+':
			if spaceAsPlus {
				out.WriteByte(' ')
				changed = true
			} else {
				out.WriteByte('+')
			}
		case '%':
			pending = pending[:0]
			for {
				escape := in.position() - 1
				b, ok := in.readHexPair()
				if !ok {
					return changed, malformedEscape(s[escape:])
				}
				pending = append(pending, b)
				if !in.startsWith('%') {
					break
				}
				in.next()
			}
			text, err := charsetText(pending, charset)
			if err != nil {
				return changed, err
			}
			out.WriteString(text)
			changed = true
		default:
			out.WriteString(s[start:in.position()])
		}
	}
}

// charsetText converts bytes in the given charset to text.
func charsetText(b []byte, charset encoding.Encoding) (string, error) {
	if charset == nil {
		charset = unicode.UTF8
	}
	text, err := charset.NewDecoder().Bytes(b)
	if err != nil {
		return "", &kindError{
			kind:    ErrMalformedEscape,
			message: "Escaped bytes do not form valid text in the configured charset",
			details: fmt.Sprintf("(%v)", err),
		}
	}
	return string(text), nil
}

func malformedEscape(rest string) error {
	if utf8.RuneCountInString(rest) < 3 {
		return &kindError{
			kind:    ErrMalformedEscape,
			message: "Incomplete trailing escape (%) pattern",
			details: fmt.Sprintf("%q", rest),
		}
	}
	return &kindError{
		kind:    ErrMalformedEscape,
		message: "Illegal hex characters in escape (%) pattern",
		details: fmt.Sprintf("%q", rest),
	}
}

// isUTF8 reports whether charset is nil or the x/text UTF-8 encoding, in
// which case text can be used as its own byte representation.
func isUTF8(charset encoding.Encoding) bool {
	return charset == nil || charset == unicode.UTF8
}
