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

const (
	// ipvFutureParts is the number of parts expected in an IPvFuture literal
	// (e.g., "v1.abc"), separated by a dot.
	ipvFutureParts = 2
	// hostDelimiters may never appear in a registered name or IPv4 host.
	hostDelimiters = "/?#@[]:"
)

// Authority is the authority component of a hierarchical URI: optional user
// information, optional host and a port that may be SchemeDefaultPort.
// Authority is a comparable value type; the zero value is not valid, use
// EmptyAuthority instead.
type Authority struct {
	userInfo string
	host     string
	port     int
}

// EmptyAuthority returns the authority with no user information, no host and
// the scheme default port.
func EmptyAuthority() Authority { return Authority{port: SchemeDefaultPort} }

// NewAuthority builds an Authority. The host is lower-cased. It fails with
// ErrInvalidArgument when host contains white space or port is neither a
// valid port nor SchemeDefaultPort.
func NewAuthority(userInfo, host string, port int) (Authority, error) {
	if containsWhitespace(host) {
		return Authority{}, invalidArgument("Expected hostname without whitespaces. Got: %q", host)
	}
	if err := ValidatePortOrSchemeDefault(port); err != nil {
		return Authority{}, err
	}
	return Authority{userInfo: userInfo, host: strings.ToLower(host), port: port}, nil
}

// UserInfo returns the decoded user information, or "" when absent.
func (a Authority) UserInfo() string { return a.userInfo }

// Host returns the decoded, lower-cased host, or "" when absent.
func (a Authority) Host() string { return a.host }

// Port returns the port number or SchemeDefaultPort.
func (a Authority) Port() int { return a.port }

// UsesSchemeDefaultPort reports whether the port is left to the scheme.
func (a Authority) UsesSchemeDefaultPort() bool { return IsSchemeDefaultPort(a.port) }

// IsEmpty reports whether a equals EmptyAuthority.
func (a Authority) IsEmpty() bool { return a == EmptyAuthority() }

// String renders the authority as it appears in a URI, e.g. "user@host:8080".
func (a Authority) String() string {
	var b strings.Builder
	writeAuthority(&b, a.userInfo, a.host, a.port)
	return b.String()
}

// writeAuthority writes "userinfo@host:port", encoding each part with its
// profile and leaving out absent parts.
func writeAuthority(b *strings.Builder, userInfo, host string, port int) {
	if userInfo == "" && host == "" {
		return
	}
	if userInfo != "" {
		UserInfoProfile().EncodeTo(userInfo, b)
		b.WriteByte('@')
	}
	HostProfile().EncodeTo(host, b)
	if !IsSchemeDefaultPort(port) {
		fmt.Fprintf(b, ":%d", port)
	}
}

// checkHost validates a decoded host. A bracketed host must hold an IPv6
// literal, optionally with a zone id, or an IPvFuture literal. Any other host
// must be free of white space and URI delimiters.
func checkHost(host string) error {
	if strings.HasPrefix(host, "[") {
		if !strings.HasSuffix(host, "]") {
			return &kindError{kind: ErrInvalidURI, message: "Invalid host IP: unterminated IP literal", details: host}
		}
		return validateIPLiteral(host[1 : len(host)-1])
	}
	if containsWhitespace(host) {
		return &kindError{kind: ErrInvalidURI, message: "Invalid host: contains whitespace", details: fmt.Sprintf("%q", host)}
	}
	if i := strings.IndexAny(host, hostDelimiters); i >= 0 {
		return &kindError{kind: ErrInvalidURI, message: "Invalid character in host", char: rune(host[i])}
	}
	return nil
}

// validateIPLiteral checks if a string inside brackets is a valid IPv6 or IPvFuture address.
// An IPv6 literal takes no prefix length, and its zone id is limited to
// unreserved characters (RFC 6874, Section 2).
func validateIPLiteral(ipLiteral string) error {
	if strings.HasPrefix(ipLiteral, "v") || strings.HasPrefix(ipLiteral, "V") {
		return validateIPVFuture(ipLiteral)
	}
	if strings.Contains(ipLiteral, "/") {
		return &kindError{kind: ErrInvalidURI, message: "Invalid host IP: prefix length in IP literal", details: ipLiteral}
	}
	if _, zone, ok := strings.Cut(ipLiteral, "%"); ok {
		for _, r := range zone {
			if !isUnreserved(r) {
				return &kindError{kind: ErrInvalidURI, message: "Invalid zone id char", char: r}
			}
		}
	}
	if !IsValidIPv6(ipLiteral) {
		return &kindError{kind: ErrInvalidURI, message: "Invalid host IP", details: ipLiteral}
	}
	return nil
}

// validateIPVFuture validates an IPvFuture literal (e.g., "v1.something").
func validateIPVFuture(ip string) error {
	parts := strings.SplitN(ip[1:], ".", ipvFutureParts)
	if len(parts) != ipvFutureParts {
		return &kindError{kind: ErrInvalidURI, message: "Invalid IPvFuture format: no dot separator", details: ip}
	}
	version, address := parts[0], parts[1]
	if version == "" {
		return &kindError{kind: ErrInvalidURI, message: "Invalid IPvFuture: missing version", details: ip}
	}
	for _, r := range version {
		if !isASCIIHexDigit(r) {
			return &kindError{kind: ErrInvalidURI, message: "Invalid IPvFuture version char", char: r}
		}
	}
	if address == "" {
		return &kindError{kind: ErrInvalidURI, message: "Invalid IPvFuture: empty address part", details: ip}
	}
	for _, r := range address {
		if !isUnreservedOrSubDelims(r) && r != ':' {
			return &kindError{kind: ErrInvalidURI, message: "Invalid IPvFuture address char", char: r}
		}
	}
	return nil
}
