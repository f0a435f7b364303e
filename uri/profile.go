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
)

// Profile describes one URI component: the characters allowed in its encoded
// form and the percent codec used to encode and decode it. Well-formed
// percent-encoded triplets are always allowed in addition to the allowed set.
type Profile struct {
	name    string
	allowed CodePointSet
	codec   *Codec
}

// Component profiles, derived from the character classes of RFC 3986.
var (
	schemeProfile             = newProfile("scheme", schemeAllowed, false)
	schemeSpecificPartProfile = newProfile("scheme_specific_part", schemeSpecificPartAllowed, false)
	userInfoProfile           = newProfile("user_info", userInfoAllowed, false)
	hostProfile               = newProfile("host", hostAllowed, false)
	portProfile               = newProfile("port", portAllowed, false)
	pathSegmentProfile        = newProfile("path_segment", pathSegmentAllowed, false)
	queryProfile              = newProfile("query", queryAllowed, true)
	queryParamProfile         = newProfile("query_param", queryParamAllowed, true)
	queryParamNarrowProfile   = newProfile("query_param_narrow", queryParamNarrowAllowed, true)
	fragmentProfile           = newProfile("fragment", fragmentAllowed, false)
)

// SchemeProfile returns the profile of the scheme.
func SchemeProfile() *Profile { return schemeProfile }

// SchemeSpecificPartProfile returns the profile of the scheme-specific part
// of an opaque URI.
func SchemeSpecificPartProfile() *Profile { return schemeSpecificPartProfile }

// UserInfoProfile returns the profile of the user information.
func UserInfoProfile() *Profile { return userInfoProfile }

// HostProfile returns the profile of the host.
func HostProfile() *Profile { return hostProfile }

// PortProfile returns the profile of the port.
func PortProfile() *Profile { return portProfile }

// PathSegmentProfile returns the profile of a single path segment.
func PathSegmentProfile() *Profile { return pathSegmentProfile }

// QueryProfile returns the profile of a whole query string.
func QueryProfile() *Profile { return queryProfile }

// QueryParamProfile returns the profile of a query parameter name or value.
func QueryParamProfile() *Profile { return queryParamProfile }

// QueryParamNarrowProfile returns the profile query parameters are rendered
// with. It also escapes '?', '/' and ':'.
func QueryParamNarrowProfile() *Profile { return queryParamNarrowProfile }

// FragmentProfile returns the profile of the fragment.
func FragmentProfile() *Profile { return fragmentProfile }

// newProfile builds a profile. With plusAsSpace a literal '+' stays legal in
// the encoded form but decodes to a space, and the encoder escapes it.
func newProfile(name, allowed string, plusAsSpace bool) *Profile {
	return &Profile{
		name:    name,
		allowed: NewCodePointSet(allowed),
		codec: NewCodec(
			WithSafeCharacters(allowed),
			WithDecodeSpaceAsPlus(plusAsSpace),
		),
	}
}

// Name returns the component name used in error messages.
func (p *Profile) Name() string { return p.name }

// Allowed returns the characters that may appear unescaped in the encoded
// form of the component.
func (p *Profile) Allowed() CodePointSet { return p.allowed }

// Codec returns the percent codec of the component.
func (p *Profile) Codec() *Codec { return p.codec }

// Encode returns the percent-encoded form of s.
func (p *Profile) Encode(s string) string { return p.codec.Encode(s) }

// EncodeTo appends the percent-encoded form of s to out.
func (p *Profile) EncodeTo(s string, out *strings.Builder) bool { return p.codec.EncodeTo(s, out) }

// Decode returns the decoded form of s. It does not check which characters
// s is made of; see ValidateAndDecode.
func (p *Profile) Decode(s string) (string, error) { return p.codec.Decode(s) }

// CheckValidEncoded checks that s is a legal encoded form of the component:
// every '%' starts a triplet with two hexadecimal digits and every other
// character belongs to the allowed set. It fails with
// ErrInvalidEncodedSequence or ErrInvalidCharacter.
func (p *Profile) CheckValidEncoded(s string) error {
	in := newScanInput(s)
	for {
		start := in.position()
		r, ok := in.next()
		if !ok {
			return nil
		}
		if r == '%' {
			if _, ok := in.readHexPair(); !ok {
				return &kindError{
					kind:    ErrInvalidEncodedSequence,
					message: "Invalid encoded sequence",
					details: fmt.Sprintf("%q", s[start:]),
				}
			}
			continue
		}
		if !p.allowed.Contains(r) {
			return &kindError{
				kind:    ErrInvalidCharacter,
				message: "Invalid character",
				char:    r,
				details: fmt.Sprintf("for %s in %q", p.name, s),
			}
		}
	}
}

// ValidateAndDecode checks s with CheckValidEncoded and decodes it.
func (p *Profile) ValidateAndDecode(s string) (string, error) {
	if err := p.CheckValidEncoded(s); err != nil {
		return "", err
	}
	return p.Decode(s)
}
