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
	"strings"
	"unicode"
)

// Character classes of RFC 3986, Section 2, spelled out as literal strings so
// they can seed a CodePointSet.
const (
	alphaUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphaLower   = "abcdefghijklmnopqrstuvwxyz"
	alpha        = alphaUpper + alphaLower
	digit        = "0123456789"
	alphanumeric = alpha + digit

	// genDelims is the gen-delims set of RFC 3986, Section 2.2.
	genDelims = ":/?#[]@"
	// subDelims is the sub-delims set of RFC 3986, Section 2.2.
	subDelims = "!$&'()*+,;="
	reserved  = genDelims + subDelims
	// unreserved is the unreserved set of RFC 3986, Section 2.3.
	unreserved = alphanumeric + "-._~"
	// pchar is the path character set of RFC 3986, Section 3.3, without pct-encoded.
	pchar = ":@" + unreserved + subDelims
)

// Allowed characters of the encoded form of each URI component.
var (
	schemeAllowed             = alphanumeric + "+-."
	schemeSpecificPartAllowed = schemeAllowed + pchar + reserved
	userInfoAllowed           = unreserved + subDelims + ":"
	hostAllowed               = unreserved + subDelims + "[]:"
	portAllowed               = digit
	pathSegmentAllowed        = pchar
	queryAllowed              = pchar + "/?"
	queryParamAllowed         = removeFirst(queryAllowed, '=', '&')
	// '?', '/' and ':' are legal in a query but escaped anyway when query
	// parameters are rendered; some consumers mishandle them.
	queryParamNarrowAllowed = removeFirst(queryParamAllowed, '?', '/', ':')
	fragmentAllowed         = pchar + "/?"
)

// removeFirst removes the first occurrence of every given rune from s.
func removeFirst(s string, runes ...rune) string {
	for _, r := range runes {
		if i := strings.IndexRune(s, r); i >= 0 {
			s = s[:i] + s[i+len(string(r)):]
		}
	}
	return s
}

// isASCIILetter checks if a rune is an ASCII letter.
func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit checks if a rune is an ASCII digit.
func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isASCIIHexDigit checks if a rune is an ASCII hexadecimal digit.
func isASCIIHexDigit(r rune) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isUnreserved checks if a character is in the unreserved set of RFC 3986,
// Section 2.3.
func isUnreserved(c rune) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || strings.ContainsRune("-._~", c)
}

// isUnreservedOrSubDelims checks if a character is in the unreserved or
// sub-delims sets as defined by RFC 3986 (US-ASCII only).
func isUnreservedOrSubDelims(c rune) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || strings.ContainsRune("!$&'()*+,-.;=_~", c)
}

// hexValue returns the value of an ASCII hexadecimal digit.
func hexValue(r rune) byte {
	switch {
	case '0' <= r && r <= '9':
		return byte(r - '0')
	case 'a' <= r && r <= 'f':
		return byte(r - 'a' + 10)
	default:
		return byte(r - 'A' + 10)
	}
}

// containsWhitespace reports whether s holds any Unicode white space.
func containsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// isBlank reports whether s is empty or made of white space only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
