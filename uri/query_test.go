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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// queryView flattens QueryParams into comparable data for cmp.Diff.
type queryView struct {
	Names  []string
	Values map[string][]string
}

func viewQuery(q QueryParams) queryView {
	v := queryView{Names: q.Names(), Values: map[string][]string{}}
	for _, name := range q.Names() {
		v.Values[name] = q.Values(name)
	}
	return v
}

func TestParseQuery(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected queryView
	}{
		{
			name:  "Repeated, empty and bare names",
			input: "a=1&a=2&b=&c",
			expected: queryView{
				Names:  []string{"a", "b", "c"},
				Values: map[string][]string{"a": {"1", "2"}, "b": {""}, "c": nil},
			},
		},
		{
			name:     "Leading question mark",
			input:    "?x=1",
			expected: queryView{Names: []string{"x"}, Values: map[string][]string{"x": {"1"}}},
		},
		{
			name:     "Plus and escapes",
			input:    "first+name=J%C3%BCrgen+M&q=a%2Bb",
			expected: queryView{Names: []string{"first name", "q"}, Values: map[string][]string{"first name": {"Jürgen M"}, "q": {"a+b"}}},
		},
		{
			name:     "Empty names are skipped",
			input:    "=x&&y=1&",
			expected: queryView{Names: []string{"y"}, Values: map[string][]string{"y": {"1"}}},
		},
		{
			name:     "Slash, question mark and colon",
			input:    "redirect=/a?b:c",
			expected: queryView{Names: []string{"redirect"}, Values: map[string][]string{"redirect": {"/a?b:c"}}},
		},
		{
			name:     "Empty",
			input:    "",
			expected: queryView{Values: map[string][]string{}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			params, err := parseQuery(tt.input)
			if err != nil {
				t.Fatalf("parseQuery(%q) returned error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.expected, viewQuery(params), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("parseQuery(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseQuery_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		kind  error
	}{
		{"a=b=c", ErrInvalidCharacter},
		{"a=%zz", ErrInvalidEncodedSequence},
		{"a b=c", ErrInvalidCharacter},
		{"a=#", ErrInvalidCharacter},
	}
	for _, tt := range tests {
		if _, err := parseQuery(tt.input); !errors.Is(err, tt.kind) {
			t.Errorf("parseQuery(%q) error = %v, want %v", tt.input, err, tt.kind)
		}
	}
}

func TestQueryParams_String(t *testing.T) {
	t.Parallel()
	params, err := parseQuery("a=1&a=2&b=&c&d=x/y?z")
	if err != nil {
		t.Fatalf("parseQuery returned error: %v", err)
	}
	if got, want := params.String(), "a=1&a=2&b=&c&d=x%2fy%3fz"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	spaced := NewQueryParams("a b", "c+d")
	if got, want := spaced.String(), "a%20b=c%2bd"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestQueryParams_Accessors(t *testing.T) {
	t.Parallel()
	params, err := parseQuery("a=1&a=2&b=&c")
	if err != nil {
		t.Fatalf("parseQuery returned error: %v", err)
	}
	if got, ok := params.Get("a"); !ok || got != "1" {
		t.Errorf(`Get("a") = %q, %t, want "1", true`, got, ok)
	}
	if got, ok := params.Get("c"); ok {
		t.Errorf(`Get("c") = %q, true, want no value`, got)
	}
	if !params.Has("c") || params.Has("d") {
		t.Error("Has must report bare names and only them")
	}
	if got := params.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if diff := cmp.Diff(map[string]string{"a": "1", "b": ""}, params.Flatten()); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}

	values := params.Values("a")
	values[0] = "changed"
	if got, _ := params.Get("a"); got != "1" {
		t.Error("Values must return a copy")
	}
}

func TestQueryParams_Mutations(t *testing.T) {
	t.Parallel()
	var q QueryParams
	q.add("b", "1")
	q.add("a", "2", "1")
	q.declare("c")
	q.add("b", "0")

	clone := q.Clone()

	q.put("b", []string{"x"})
	q.removeValue("a", "2")
	q.remove("c")
	q.remove("missing")

	want := queryView{Names: []string{"b", "a"}, Values: map[string][]string{"b": {"x"}, "a": {"1"}}}
	if diff := cmp.Diff(want, viewQuery(q), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mutations mismatch (-want +got):\n%s", diff)
	}

	wantClone := queryView{
		Names:  []string{"b", "a", "c"},
		Values: map[string][]string{"b": {"1", "0"}, "a": {"2", "1"}, "c": nil},
	}
	if diff := cmp.Diff(wantClone, viewQuery(clone), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("clone was modified (-want +got):\n%s", diff)
	}

	clone.sortNames()
	clone.sortValues()
	if got, want := clone.String(), "a=1&a=2&b=0&b=1&c"; got != want {
		t.Errorf("sorted String() = %q, want %q", got, want)
	}
	if !q.Equal(q.Clone()) || q.Equal(clone) {
		t.Error("Equal mismatch")
	}
}
