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
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// uriPattern splits a URI reference into its components. It is the regular
// expression of RFC 3986, Appendix B, with the authority broken down into
// user information, host (an IPvFuture literal, an IPv6 literal with an
// optional RFC 6874 zone id, or a plain name) and port.
var uriPattern = regexp.MustCompile(
	`^(([^:/?#]+):)?` +
		`(//(([^@\[/?#]*)@)?` +
		`(\[[vV][0-9A-Fa-f]+\.[0-9A-Za-z._~!$&'()*+,;=:-]+\]|\[[0-9A-Fa-f:.]*[%0-9A-Za-z._~-]*\]|[^\[/?#:]*)` +
		`(:([^/?#]*))?)?` +
		`([^?#]*)` +
		`(\?([^#]*))?` +
		`(#(.*))?$`)

// Capture groups of uriPattern.
const (
	schemeGroup   = 2
	userInfoGroup = 5
	hostGroup     = 6
	portGroup     = 8
	pathGroup     = 9
	queryGroup    = 11
	fragmentGroup = 13
)

// Parse parses a raw URI. A blank uri yields Empty. Errors are *ParseError
// of kind ErrMalformedURI.
func Parse(uri string) (*Components, error) {
	if isBlank(uri) {
		return Empty(), nil
	}
	b, err := parseURI(uri)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// ParseOrNil is Parse returning nil on failure.
func ParseOrNil(uri string) *Components {
	c, err := Parse(uri)
	if err != nil {
		return nil
	}
	return c
}

// ParseHTTPURL parses a raw URL that must be a hierarchical URI with the
// "http" or "https" scheme. A blank url yields Empty. Errors are *ParseError
// of kind ErrMalformedHTTPURL.
func ParseHTTPURL(rawURL string) (*Components, error) {
	if isBlank(rawURL) {
		return Empty(), nil
	}
	b, err := parseHTTPURL(rawURL)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// ParseHTTPURLOrNil is ParseHTTPURL returning nil on failure.
func ParseHTTPURLOrNil(rawURL string) *Components {
	c, err := ParseHTTPURL(rawURL)
	if err != nil {
		return nil
	}
	return c
}

// ParseQueryString returns Components holding only the query parameters of
// query. A leading '?' is ignored.
func ParseQueryString(query string) (*Components, error) {
	b, err := BuilderFromQueryString(query)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// ParseQueryStringOrNil is ParseQueryString returning nil on failure.
func ParseQueryStringOrNil(query string) *Components {
	c, err := ParseQueryString(query)
	if err != nil {
		return nil
	}
	return c
}

// FromURL converts a *url.URL. A nil u yields Empty.
func FromURL(u *url.URL) (*Components, error) {
	b, err := BuilderFromURL(u)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// FromURLOrNil is FromURL returning nil on failure.
func FromURLOrNil(u *url.URL) *Components {
	c, err := FromURL(u)
	if err != nil {
		return nil
	}
	return c
}

// parseURI matches uri against uriPattern and stages its validated, decoded
// components in a Builder.
func parseURI(uri string) (*Builder, error) {
	match := uriPattern.FindStringSubmatchIndex(uri)
	if match == nil {
		return nil, newParseError(ErrMalformedURI, uri, nil)
	}
	b := NewBuilder()
	if err := b.applyMatch(uri, match); err != nil {
		return nil, newParseError(ErrMalformedURI, uri, err)
	}
	return b, nil
}

// parseHTTPURL is parseURI restricted to hierarchical http and https URIs.
func parseHTTPURL(rawURL string) (*Builder, error) {
	b, err := parseURI(rawURL)
	if err != nil {
		return nil, newParseError(ErrMalformedHTTPURL, rawURL, err)
	}
	c, err := b.Build()
	if err != nil {
		return nil, newParseError(ErrMalformedHTTPURL, rawURL, err)
	}
	if !c.IsHTTPURL() {
		return nil, &ParseError{Kind: ErrMalformedHTTPURL, Input: rawURL}
	}
	return b, nil
}

// submatch returns the text of a capture group and whether the group took
// part in the match.
func submatch(s string, match []int, group int) (string, bool) {
	start, end := match[2*group], match[2*group+1]
	if start < 0 {
		return "", false
	}
	return s[start:end], true
}

// applyMatch stages the components captured by uriPattern. A URI is opaque
// when it has a scheme that is not followed by ":/".
func (b *Builder) applyMatch(uri string, match []int) error {
	scheme, _ := submatch(uri, match, schemeGroup)
	fragment, hasFragment := submatch(uri, match, fragmentGroup)
	opaque := false
	if scheme != "" {
		opaque = !strings.HasPrefix(uri[len(scheme):], ":/")
		decoded, err := SchemeProfile().ValidateAndDecode(scheme)
		if err != nil {
			return err
		}
		b.SetScheme(decoded)
	} else if strings.HasPrefix(uri, "//") {
		b.SetProtocolRelative(true)
	}
	if opaque {
		ssp := uri[len(scheme)+1:]
		if hasFragment {
			ssp = ssp[:len(ssp)-len(fragment)-1]
		}
		decoded, err := SchemeSpecificPartProfile().ValidateAndDecode(ssp)
		if err != nil {
			return err
		}
		b.SetSchemeSpecificPart(decoded)
	} else if err := b.applyHierarchicalMatch(uri, match); err != nil {
		return err
	}
	if hasFragment {
		decoded, err := FragmentProfile().ValidateAndDecode(fragment)
		if err != nil {
			return err
		}
		b.SetFragment(decoded)
	}
	if b.err != nil {
		return b.err
	}
	_, err := b.Build()
	return err
}

func (b *Builder) applyHierarchicalMatch(uri string, match []int) error {
	if userInfo, ok := submatch(uri, match, userInfoGroup); ok {
		decoded, err := UserInfoProfile().ValidateAndDecode(userInfo)
		if err != nil {
			return err
		}
		b.SetUserInfo(decoded)
	}
	if host, ok := submatch(uri, match, hostGroup); ok {
		decoded, err := HostProfile().ValidateAndDecode(host)
		if err != nil {
			return err
		}
		b.SetHost(decoded)
	}
	if port, ok := submatch(uri, match, portGroup); ok && port != "" {
		decoded, err := PortProfile().ValidateAndDecode(port)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(decoded)
		if err != nil {
			return &kindError{kind: ErrInvalidURI, message: "Invalid port number", details: port}
		}
		b.SetPort(n)
	}
	path, _ := submatch(uri, match, pathGroup)
	b.SetPath(path)
	if query, ok := submatch(uri, match, queryGroup); ok {
		params, err := parseQuery(query)
		if err != nil {
			return err
		}
		b.SetQueryParams(params)
	}
	return nil
}

// parseQuery parses an encoded query string. Parameters are separated by
// '&' and a name is separated from its value by the first '='. A name
// without '=' is kept with no values, while "name=" holds one empty value.
// Tokens with an empty name are skipped.
func parseQuery(query string) (QueryParams, error) {
	query = strings.TrimPrefix(query, "?")
	var params QueryParams
	if err := QueryProfile().CheckValidEncoded(query); err != nil {
		return params, err
	}
	for _, token := range strings.Split(query, "&") {
		name, value, hasValue := strings.Cut(token, "=")
		if name == "" {
			continue
		}
		decodedName, err := QueryParamProfile().ValidateAndDecode(name)
		if err != nil {
			return QueryParams{}, err
		}
		if !hasValue {
			params.declare(decodedName)
			continue
		}
		decodedValue, err := QueryParamProfile().ValidateAndDecode(value)
		if err != nil {
			return QueryParams{}, err
		}
		params.add(decodedName, decodedValue)
	}
	return params, nil
}
