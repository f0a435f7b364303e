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
)

func TestProfile_Encode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		profile  *Profile
		input    string
		expected string
	}{
		{SchemeProfile(), "svn+ssh", "svn+ssh"},
		{UserInfoProfile(), "user:p@ss", "user:p%40ss"},
		{HostProfile(), "[fe80::1%eth0]", "[fe80::1%25eth0]"},
		{PathSegmentProfile(), "a/b", "a%2fb"},
		{PathSegmentProfile(), "a:b@c", "a:b@c"},
		{QueryProfile(), "a=b&c/d?", "a=b&c/d?"},
		{QueryParamProfile(), "a=b&c", "a%3db%26c"},
		{QueryParamProfile(), "a+b c", "a%2bb%20c"},
		{QueryParamNarrowProfile(), "a/b?c:d", "a%2fb%3fc%3ad"},
		{FragmentProfile(), "top/a?b", "top/a?b"},
		{FragmentProfile(), "a#b", "a%23b"},
		{SchemeSpecificPartProfile(), "john@example.com", "john@example.com"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.profile.Name()+"/"+tt.input, func(t *testing.T) {
			t.Parallel()
			if got := tt.profile.Encode(tt.input); got != tt.expected {
				t.Errorf("%s.Encode(%q) = %q, want %q", tt.profile.Name(), tt.input, got, tt.expected)
			}
		})
	}
}

// TestProfile_PlusHandling verifies that a literal '+' is legal in an encoded
// query parameter but decodes to a space, while it stays a '+' in a path.
func TestProfile_PlusHandling(t *testing.T) {
	t.Parallel()
	if !QueryParamProfile().Allowed().Contains('+') {
		t.Error("'+' should be allowed in an encoded query parameter")
	}
	if QueryParamProfile().Codec().SafeCharacters().Contains('+') {
		t.Error("'+' should not be safe for the query parameter codec")
	}
	got, err := QueryParamProfile().ValidateAndDecode("a+b")
	if err != nil || got != "a b" {
		t.Errorf(`QueryParamProfile().ValidateAndDecode("a+b") = %q, %v, want "a b"`, got, err)
	}
	got, err = PathSegmentProfile().ValidateAndDecode("a+b")
	if err != nil || got != "a+b" {
		t.Errorf(`PathSegmentProfile().ValidateAndDecode("a+b") = %q, %v, want "a+b"`, got, err)
	}
}

func TestProfile_CheckValidEncoded(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		profile *Profile
		input   string
		kind    error
		message string
	}{
		{name: "Valid path segment", profile: PathSegmentProfile(), input: "a%20b:c@d"},
		{name: "Valid uppercase escape", profile: QueryProfile(), input: "q=%2F"},
		{name: "Empty", profile: HostProfile(), input: ""},
		{
			name: "Slash in path segment", profile: PathSegmentProfile(), input: "a/b",
			kind: ErrInvalidCharacter, message: `Invalid character '/' for path_segment in "a/b"`,
		},
		{
			name: "Space in scheme", profile: SchemeProfile(), input: "ht tp",
			kind: ErrInvalidCharacter, message: `Invalid character ' ' for scheme in "ht tp"`,
		},
		{
			name: "Non-ASCII in host", profile: HostProfile(), input: "bücher.de",
			kind: ErrInvalidCharacter, message: `Invalid character 'ü' for host in "bücher.de"`,
		},
		{
			name: "Letter in port", profile: PortProfile(), input: "8a",
			kind: ErrInvalidCharacter, message: `Invalid character 'a' for port in "8a"`,
		},
		{
			name: "Equals in query parameter", profile: QueryParamProfile(), input: "b=c",
			kind: ErrInvalidCharacter, message: `Invalid character '=' for query_param in "b=c"`,
		},
		{
			name: "Bad hex", profile: HostProfile(), input: "a%zz",
			kind: ErrInvalidEncodedSequence, message: `Invalid encoded sequence "%zz"`,
		},
		{
			name: "Truncated escape", profile: FragmentProfile(), input: "top%2",
			kind: ErrInvalidEncodedSequence, message: `Invalid encoded sequence "%2"`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.profile.CheckValidEncoded(tt.input)
			if tt.kind == nil {
				if err != nil {
					t.Errorf("CheckValidEncoded(%q) returned error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("CheckValidEncoded(%q) error = %v, want %v", tt.input, err, tt.kind)
			}
			if err.Error() != tt.message {
				t.Errorf("CheckValidEncoded(%q) error = %q, want %q", tt.input, err.Error(), tt.message)
			}
		})
	}
}

func TestProfile_ValidateAndDecode(t *testing.T) {
	t.Parallel()
	got, err := UserInfoProfile().ValidateAndDecode("john%20doe:secret")
	if err != nil || got != "john doe:secret" {
		t.Errorf("ValidateAndDecode = %q, %v, want %q", got, err, "john doe:secret")
	}
	if _, err := UserInfoProfile().ValidateAndDecode("john doe"); !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("ValidateAndDecode(%q) error = %v, want ErrInvalidCharacter", "john doe", err)
	}
	// Decode alone does not check characters.
	if got, err := UserInfoProfile().Decode("john doe"); err != nil || got != "john doe" {
		t.Errorf("Decode = %q, %v, want %q", got, err, "john doe")
	}
}

// TestSharedInstances checks that the well-known profiles and codecs are
// process-wide singletons whose configuration cannot be changed by callers.
func TestSharedInstances(t *testing.T) {
	t.Parallel()
	profiles := []func() *Profile{
		SchemeProfile, SchemeSpecificPartProfile, UserInfoProfile, HostProfile, PortProfile,
		PathSegmentProfile, QueryProfile, QueryParamProfile, QueryParamNarrowProfile, FragmentProfile,
	}
	for _, profile := range profiles {
		p := profile()
		if p != profile() {
			t.Errorf("%s profile is not a singleton", p.Name())
		}
		before := p.Allowed()
		_ = before.With('\x00', true)
		if !p.Allowed().Equal(before) || p.Allowed().Contains('\x00') {
			t.Errorf("%s profile allowed set changed through a copy", p.Name())
		}
	}
	if PercentCodec() != PercentCodec() || PercentPlusCodec() != PercentPlusCodec() {
		t.Error("well-known codecs are not singletons")
	}
	if got := PercentCodec().Encode("a b+c"); got != "a%20b%2bc" {
		t.Errorf("PercentCodec().Encode = %q, want %q", got, "a%20b%2bc")
	}
	if !EmptyAuthority().IsEmpty() || EmptyAuthority().Port() != SchemeDefaultPort {
		t.Errorf("EmptyAuthority() = %+v", EmptyAuthority())
	}
}
