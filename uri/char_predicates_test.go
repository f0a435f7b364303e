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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import (
	"strings"
	"testing"
)

func TestRemoveFirst(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		runes    []rune
		expected string
	}{
		{"a=b&c=", []rune{'=', '&'}, "abc="},
		{"abc", []rune{'x'}, "abc"},
		{"/?:", []rune{'?', '/', ':'}, ""},
		{"", []rune{'a'}, ""},
	}
	for _, tt := range tests {
		if got := removeFirst(tt.input, tt.runes...); got != tt.expected {
			t.Errorf("removeFirst(%q, %q) = %q, want %q", tt.input, tt.runes, got, tt.expected)
		}
	}
}

// TestComponentCharacterSets checks the allowed sets of the component
// profiles against RFC 3986, Section 3.
func TestComponentCharacterSets(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		allowed  string
		included string
		excluded string
	}{
		{"scheme", schemeAllowed, "aZ9+-.", ":/_~"},
		{"user info", userInfoAllowed, "aZ9-._~!$&'()*+,;=:", "@/?#[]%"},
		{"host", hostAllowed, "aZ9-._~!$&'()*+,;=[]:", "@/?#%"},
		{"port", portAllowed, "0123456789", "a-+"},
		{"path segment", pathSegmentAllowed, "aZ9-._~!$&'()*+,;=:@", "/?#[]%"},
		{"query", queryAllowed, "=&/?:@+", "#[]%"},
		{"query param", queryParamAllowed, "/?:@+", "=&#"},
		{"query param narrow", queryParamNarrowAllowed, "@+!", "=&/?:#"},
		{"fragment", fragmentAllowed, "/?:@=&", "#[]%"},
	}
	for _, tt := range tests {
		for _, r := range tt.included {
			if !strings.ContainsRune(tt.allowed, r) {
				t.Errorf("%s must allow %q", tt.name, r)
			}
		}
		for _, r := range tt.excluded {
			if strings.ContainsRune(tt.allowed, r) {
				t.Errorf("%s must not allow %q", tt.name, r)
			}
		}
	}
}

func TestCharacterPredicates(t *testing.T) {
	t.Parallel()
	for _, r := range "!$&'()*+,-.;=_~aZ0" {
		if !isUnreservedOrSubDelims(r) {
			t.Errorf("isUnreservedOrSubDelims(%q) = false", r)
		}
	}
	for _, r := range ":/?#[]@% é" {
		if isUnreservedOrSubDelims(r) {
			t.Errorf("isUnreservedOrSubDelims(%q) = true", r)
		}
	}
	for r, want := range map[rune]byte{'0': 0, '9': 9, 'a': 10, 'F': 15} {
		if !isASCIIHexDigit(r) || hexValue(r) != want {
			t.Errorf("hexValue(%q) = %d, want %d", r, hexValue(r), want)
		}
	}
	if isASCIIHexDigit('g') || isASCIILetter('1') || isASCIIDigit('a') {
		t.Error("predicate accepted a character outside its class")
	}
	if !containsWhitespace("a\tb") || containsWhitespace("ab") {
		t.Error("containsWhitespace mismatch")
	}
	if !isBlank(" \n") || !isBlank("") || isBlank(" a ") {
		t.Error("isBlank mismatch")
	}
}
