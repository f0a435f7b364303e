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
	"testing"
)

// TestScanInput_Next walks an input holding multi-byte characters and checks
// that runes, not bytes, are consumed while the byte position advances.
func TestScanInput_Next(t *testing.T) {
	t.Parallel()
	in := newScanInput("aü%")
	steps := []struct {
		r        rune
		position int
	}{
		{'a', 1},
		{'ü', 3},
		{'%', 4},
	}
	for _, step := range steps {
		if !in.startsWith(step.r) {
			t.Errorf("startsWith(%q) = false at position %d", step.r, in.position())
		}
		r, ok := in.next()
		if !ok || r != step.r {
			t.Fatalf("next() = %q, %t, want %q", r, ok, step.r)
		}
		if got := in.position(); got != step.position {
			t.Errorf("position() = %d, want %d", got, step.position)
		}
	}
	if _, ok := in.next(); ok {
		t.Error("next() at end of input reported a rune")
	}
	if in.startsWith('%') {
		t.Error("startsWith() at end of input = true")
	}
}

// TestScanInput_StartsWith checks that looking ahead does not consume input.
func TestScanInput_StartsWith(t *testing.T) {
	t.Parallel()
	in := newScanInput("xy")
	for i := 0; i < 2; i++ {
		if !in.startsWith('x') || in.startsWith('y') {
			t.Fatal("startsWith must only match the next rune")
		}
	}
	if in.position() != 0 {
		t.Errorf("position() = %d after startsWith, want 0", in.position())
	}
}

// TestScanInput_ReadHexPair covers the two digits following '%' in a
// pct-encoded triplet (RFC 3986, Section 2.1). Both cases are accepted.
func TestScanInput_ReadHexPair(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		value byte
		ok    bool
	}{
		{"20", 0x20, true},
		{"fF", 0xff, true},
		{"C3rest", 0xc3, true},
		{"0", 0, false},
		{"", 0, false},
		{"g0", 0, false},
		{"0g", 0, false},
	}
	for _, tt := range tests {
		got, ok := newScanInput(tt.input).readHexPair()
		if ok != tt.ok || got != tt.value {
			t.Errorf("readHexPair(%q) = %#x, %t, want %#x, %t", tt.input, got, ok, tt.value, tt.ok)
		}
	}
}
