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

// Package uri provides types and functions for building, parsing, validating
// and serializing Uniform Resource Identifiers as defined by RFC 3986.
//
// The package offers two main types:
//   - Components: an immutable, validated URI, either opaque (e.g., "mailto:a@b.com")
//     or hierarchical (e.g., "https://user@example.com:8080/a/b?q=1#top").
//   - Builder: a mutable staging area that accumulates edits and produces Components.
//
// Key features include:
//   - Parsing with the regular expression of RFC 3986, Appendix B, followed by
//     per-component validation and percent-decoding.
//   - Component values stored decoded and percent-encoded again on serialization
//     through one Profile per component.
//   - A configurable percent Codec with byte charset support (golang.org/x/text/encoding).
//   - IPv4 and IPv6 literal validation, including zone ids and prefix lengths.
//   - Support for JSON marshalling and unmarshalling.
//
// Parsing the text of Components yields equal Components, except for a few
// combinations that serialization cannot tell apart from another URI form:
//   - a scheme-less relative path whose first segment holds ':' ("a:b") reads
//     back as an opaque URI;
//   - a scheme followed by a rootless path without a host ("s" and "a")
//     serializes to "s://a" and reads back with host "a";
//   - an opaque scheme-specific part holding '#' ("a#b") reads back with the
//     text after '#' as the fragment.
package uri

import (
	"encoding/json"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// schemePattern is the scheme rule of RFC 3986, Section 3.1, on a
// lower-cased scheme.
var schemePattern = regexp.MustCompile(`^[a-z][a-z0-9+.-]*$`)

// Components is an immutable URI. It is either opaque, holding a scheme, a
// scheme-specific part and a fragment, or hierarchical, holding a scheme, an
// authority, a path, a query and a fragment.
//
// Absent string components are reported as "". All components are stored
// decoded; String encodes them again. A *Components is safe for concurrent
// reads.
type Components struct {
	scheme           string
	ssp              string
	userInfo         string
	host             string
	port             int
	protocolRelative bool
	rootPath         bool
	pathSegments     []string
	query            QueryParams
	fragment         string
}

// HierarchicalParts holds the decoded parts NewHierarchical assembles.
type HierarchicalParts struct {
	Scheme   string
	UserInfo string
	Host     string
	// Port is a port number or SchemeDefaultPort.
	Port             int
	ProtocolRelative bool
	RootPath         bool
	// PathSegments are decoded segments; empty segments are dropped.
	PathSegments []string
	Query        QueryParams
	Fragment     string
}

// Empty returns hierarchical Components with no parts. It serializes to "".
func Empty() *Components {
	return &Components{port: SchemeDefaultPort}
}

// NewOpaque builds opaque Components. It fails with ErrInvalidArgument when
// ssp is blank and with ErrInvalidURI when the scheme is malformed.
func NewOpaque(scheme, ssp, fragment string) (*Components, error) {
	if isBlank(ssp) {
		return nil, invalidArgument("Expected non-blank scheme specific part")
	}
	scheme = strings.ToLower(scheme)
	if err := checkScheme(scheme); err != nil {
		return nil, err
	}
	return &Components{
		scheme:   scheme,
		ssp:      ssp,
		port:     SchemeDefaultPort,
		fragment: fragment,
	}, nil
}

// NewHierarchical builds hierarchical Components. It fails with ErrInvalidURI
// when user information or a port is given without a host, when a scheme is
// combined with ProtocolRelative, or when the scheme, host or port is
// malformed.
func NewHierarchical(parts HierarchicalParts) (*Components, error) {
	if parts.Host == "" {
		if parts.UserInfo != "" {
			return nil, invalidURI("URI with user info must include host")
		}
		if parts.Port >= 0 {
			return nil, invalidURI("URI with port must include host")
		}
	}
	scheme := strings.ToLower(parts.Scheme)
	if scheme != "" && parts.ProtocolRelative {
		return nil, invalidURI("URI cannot be protocol relative and have a scheme")
	}
	if err := checkScheme(scheme); err != nil {
		return nil, err
	}
	host := strings.ToLower(parts.Host)
	if host != "" {
		if err := checkHost(host); err != nil {
			return nil, err
		}
	}
	if !IsValidPortOrSchemeDefault(parts.Port) {
		return nil, &kindError{kind: ErrInvalidURI, message: "Invalid port number", details: strconv.Itoa(parts.Port)}
	}
	segments := make([]string, 0, len(parts.PathSegments))
	for _, segment := range parts.PathSegments {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return &Components{
		scheme:           scheme,
		userInfo:         parts.UserInfo,
		host:             host,
		port:             parts.Port,
		protocolRelative: parts.ProtocolRelative,
		rootPath:         parts.RootPath,
		pathSegments:     segments,
		query:            parts.Query.Clone(),
		fragment:         parts.Fragment,
	}, nil
}

func checkScheme(scheme string) error {
	if scheme != "" && !schemePattern.MatchString(scheme) {
		return &kindError{kind: ErrInvalidURI, message: "Invalid scheme", details: scheme}
	}
	return nil
}

// IsOpaque reports whether the URI is opaque.
func (c *Components) IsOpaque() bool { return c.ssp != "" }

// Scheme returns the lower-cased scheme, or "" when absent.
func (c *Components) Scheme() string { return c.scheme }

// SchemeSpecificPart returns the decoded scheme-specific part of an opaque
// URI, or "" for a hierarchical one.
func (c *Components) SchemeSpecificPart() string { return c.ssp }

// UserInfo returns the decoded user information, or "" when absent.
func (c *Components) UserInfo() string { return c.userInfo }

// Host returns the decoded, lower-cased host, or "" when absent. IPv6
// literals keep their brackets.
func (c *Components) Host() string { return c.host }

// Port returns the port number or SchemeDefaultPort.
func (c *Components) Port() int { return c.port }

// IsProtocolRelative reports whether the URI starts with "//" and no scheme.
func (c *Components) IsProtocolRelative() bool { return c.protocolRelative }

// IsRootPath reports whether the path starts at the root.
func (c *Components) IsRootPath() bool { return c.rootPath }

// PathSegments returns a copy of the decoded, non-empty path segments.
func (c *Components) PathSegments() []string { return slices.Clone(c.pathSegments) }

// Path returns the encoded path, or "" when there are no segments.
func (c *Components) Path() string {
	if len(c.pathSegments) == 0 {
		return ""
	}
	var b strings.Builder
	c.writePath(&b)
	return b.String()
}

func (c *Components) writePath(b *strings.Builder) {
	for i, segment := range c.pathSegments {
		if i > 0 || c.rootPath {
			b.WriteByte('/')
		}
		PathSegmentProfile().EncodeTo(segment, b)
	}
}

// QueryString returns the encoded query, without the leading '?', or "" when
// there are no query parameters.
func (c *Components) QueryString() string { return c.query.String() }

// QueryParams returns a copy of the query parameters.
func (c *Components) QueryParams() QueryParams { return c.query.Clone() }

// QueryParam returns the first value of the named query parameter and
// whether there is one.
func (c *Components) QueryParam(name string) (string, bool) { return c.query.Get(name) }

// QueryMultiParam returns the values of the named query parameter.
func (c *Components) QueryMultiParam(name string) []string { return c.query.Values(name) }

// FlatQueryParams returns the first value of every query parameter.
func (c *Components) FlatQueryParams() map[string]string { return c.query.Flatten() }

// Fragment returns the decoded fragment, or "" when absent.
func (c *Components) Fragment() string { return c.fragment }

// Authority returns the authority of a hierarchical URI. It reports false for
// opaque URIs and when the authority is empty.
func (c *Components) Authority() (Authority, bool) {
	if c.IsOpaque() {
		return Authority{}, false
	}
	a := Authority{userInfo: c.userInfo, host: c.host, port: c.port}
	if a.IsEmpty() {
		return Authority{}, false
	}
	return a, true
}

// IsHTTPURL reports whether the URI is hierarchical with the "http" or
// "https" scheme.
func (c *Components) IsHTTPURL() bool {
	return !c.IsOpaque() && (c.scheme == "http" || c.scheme == "https")
}

// Equal reports whether both URIs have the same components.
func (c *Components) Equal(other *Components) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.scheme == other.scheme &&
		c.ssp == other.ssp &&
		c.userInfo == other.userInfo &&
		c.host == other.host &&
		c.port == other.port &&
		c.protocolRelative == other.protocolRelative &&
		c.rootPath == other.rootPath &&
		slices.Equal(c.pathSegments, other.pathSegments) &&
		c.query.Equal(other.query) &&
		c.fragment == other.fragment
}

// String returns the URI text, every component percent-encoded with its
// Profile.
func (c *Components) String() string {
	var b strings.Builder
	if c.IsOpaque() {
		c.writeOpaque(&b)
	} else {
		c.writeHierarchical(&b)
	}
	return b.String()
}

func (c *Components) writeOpaque(b *strings.Builder) {
	if c.scheme != "" {
		SchemeProfile().EncodeTo(c.scheme, b)
		b.WriteByte(':')
	}
	SchemeSpecificPartProfile().EncodeTo(c.ssp, b)
	c.writeFragment(b)
}

func (c *Components) writeHierarchical(b *strings.Builder) {
	if c.scheme != "" {
		SchemeProfile().EncodeTo(c.scheme, b)
		b.WriteString("://")
	} else if c.protocolRelative {
		b.WriteString("//")
	}
	writeAuthority(b, c.userInfo, c.host, c.port)
	hasQuery := !c.query.IsEmpty()
	switch {
	case len(c.pathSegments) > 0:
		c.writePath(b)
	case c.rootPath && c.host == "":
		b.WriteByte('/')
	}
	if hasQuery {
		b.WriteByte('?')
		b.WriteString(c.query.String())
	}
	c.writeFragment(b)
}

func (c *Components) writeFragment(b *strings.Builder) {
	if c.fragment != "" {
		b.WriteByte('#')
		FragmentProfile().EncodeTo(c.fragment, b)
	}
}

// ToURL converts the URI to a *url.URL by parsing its text.
func (c *Components) ToURL() (*url.URL, error) {
	return url.Parse(c.String())
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as a JSON string.
func (c *Components) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a JSON
// string and parses it as a URI.
func (c *Components) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}
