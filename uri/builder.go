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
	"slices"
	"strconv"
	"strings"
)

// Builder accumulates URI components and produces Components.
//
// A Builder stages either an opaque URI or a hierarchical one, and the last
// structural setter wins: setting a scheme-specific part clears the
// authority, path and query, while setting any of those clears the
// scheme-specific part.
//
// Setters return the Builder for chaining. A setter that fails records the
// error and later calls keep going; the first recorded error is returned by
// Build, URIString and Err. A Builder must not be shared between goroutines.
type Builder struct {
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
	err              error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{port: SchemeDefaultPort}
}

// BuilderFrom returns a Builder holding the components of c. A nil c yields
// an empty Builder.
func BuilderFrom(c *Components) *Builder {
	b := NewBuilder()
	if c == nil {
		return b
	}
	b.scheme = c.scheme
	b.ssp = c.ssp
	b.fragment = c.fragment
	if !c.IsOpaque() {
		b.userInfo = c.userInfo
		b.host = c.host
		b.port = c.port
		b.protocolRelative = c.protocolRelative
		b.rootPath = c.rootPath
		b.pathSegments = slices.Clone(c.pathSegments)
		b.query = c.query.Clone()
	}
	return b
}

// BuilderFromURI parses a raw URI into a Builder. A blank uri yields an
// empty Builder. Errors are *ParseError of kind ErrMalformedURI.
func BuilderFromURI(uri string) (*Builder, error) {
	if isBlank(uri) {
		return NewBuilder(), nil
	}
	return parseURI(uri)
}

// BuilderFromURIOrNil is BuilderFromURI returning nil on failure.
func BuilderFromURIOrNil(uri string) *Builder {
	b, err := BuilderFromURI(uri)
	if err != nil {
		return nil
	}
	return b
}

// BuilderFromHTTPURL parses a raw http or https URL into a Builder. A blank
// url yields an empty Builder. Errors are *ParseError of kind
// ErrMalformedHTTPURL.
func BuilderFromHTTPURL(rawURL string) (*Builder, error) {
	if isBlank(rawURL) {
		return NewBuilder(), nil
	}
	return parseHTTPURL(rawURL)
}

// BuilderFromHTTPURLOrNil is BuilderFromHTTPURL returning nil on failure.
func BuilderFromHTTPURLOrNil(rawURL string) *Builder {
	b, err := BuilderFromHTTPURL(rawURL)
	if err != nil {
		return nil
	}
	return b
}

// BuilderFromQueryString returns a Builder holding only the query parameters
// of query. A leading '?' is ignored. Errors are *ParseError of kind
// ErrMalformedURI.
func BuilderFromQueryString(query string) (*Builder, error) {
	params, err := parseQuery(query)
	if err != nil {
		return nil, newParseError(ErrMalformedURI, query, err)
	}
	return NewBuilder().SetQueryParams(params), nil
}

// BuilderFromQueryStringOrNil is BuilderFromQueryString returning nil on
// failure.
func BuilderFromQueryStringOrNil(query string) *Builder {
	b, err := BuilderFromQueryString(query)
	if err != nil {
		return nil
	}
	return b
}

// BuilderFromURL returns a Builder holding the components of u. A nil u
// yields an empty Builder.
func BuilderFromURL(u *url.URL) (*Builder, error) {
	b := NewBuilder()
	if u == nil {
		return b, nil
	}
	if err := b.SetURL(u).Err(); err != nil {
		return nil, err
	}
	return b, nil
}

// BuilderFromURLOrNil is BuilderFromURL returning nil on failure.
func BuilderFromURLOrNil(u *url.URL) *Builder {
	b, err := BuilderFromURL(u)
	if err != nil {
		return nil
	}
	return b
}

// Err returns the first error recorded by a setter.
func (b *Builder) Err() error { return b.err }

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Copy returns an independent Builder with the same state, including any
// recorded error.
func (b *Builder) Copy() *Builder {
	c := *b
	c.pathSegments = slices.Clone(b.pathSegments)
	c.query = b.query.Clone()
	return &c
}

// Build validates the staged components and returns them.
func (b *Builder) Build() (*Components, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.ssp != "" {
		return NewOpaque(b.scheme, b.ssp, b.fragment)
	}
	return NewHierarchical(HierarchicalParts{
		Scheme:           b.scheme,
		UserInfo:         b.userInfo,
		Host:             b.host,
		Port:             b.port,
		ProtocolRelative: b.protocolRelative,
		RootPath:         b.rootPath,
		PathSegments:     b.pathSegments,
		Query:            b.query,
		Fragment:         b.fragment,
	})
}

// URIString builds the components and returns their text.
func (b *Builder) URIString() (string, error) {
	c, err := b.Build()
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// String returns the URI text, or "" when the staged components are invalid.
func (b *Builder) String() string {
	s, _ := b.URIString()
	return s
}

// SetURL copies the components of u. Parts absent from u are left as they
// are, except that an opaque u clears the hierarchical parts and a
// hierarchical one clears the scheme-specific part.
func (b *Builder) SetURL(u *url.URL) *Builder {
	if u == nil {
		return b.fail(invalidArgument("Expected non-nil url"))
	}
	b.SetScheme(u.Scheme)
	if u.Opaque != "" {
		ssp, err := SchemeSpecificPartProfile().ValidateAndDecode(u.Opaque)
		if err != nil {
			return b.fail(err)
		}
		b.SetSchemeSpecificPart(ssp)
	} else {
		if u.Scheme == "" && u.Host != "" {
			b.SetProtocolRelative(true)
		}
		if u.User != nil {
			userInfo, err := UserInfoProfile().ValidateAndDecode(u.User.String())
			if err != nil {
				return b.fail(err)
			}
			b.SetUserInfo(userInfo)
		}
		if host := u.Hostname(); host != "" {
			if strings.Contains(host, ":") {
				host = "[" + host + "]"
			}
			b.SetHost(host)
		}
		if port := u.Port(); port != "" {
			n, err := strconv.Atoi(port)
			if err != nil {
				return b.fail(invalidArgument("Expected numeric port. Got: %q", port))
			}
			b.SetPort(n)
		}
		if path := u.EscapedPath(); path != "" {
			b.SetPath(path)
		}
		if u.RawQuery != "" {
			b.SetQueryString(u.RawQuery)
		}
		b.ssp = ""
	}
	if u.Fragment != "" {
		b.SetFragment(u.Fragment)
	}
	return b
}

// SetScheme sets the scheme, lower-cased. A blank scheme removes it and the
// literal "//" makes the URI protocol relative instead.
func (b *Builder) SetScheme(scheme string) *Builder {
	switch {
	case isBlank(scheme):
		b.scheme = ""
	case scheme == "//":
		b.scheme = ""
		b.protocolRelative = true
	default:
		b.scheme = strings.ToLower(scheme)
		b.protocolRelative = false
	}
	b.ssp = ""
	return b
}

// SetProtocolRelative sets whether the URI starts with "//". Making it
// protocol relative removes the scheme.
func (b *Builder) SetProtocolRelative(protocolRelative bool) *Builder {
	if protocolRelative {
		b.scheme = ""
	}
	b.protocolRelative = protocolRelative
	return b
}

// RemoveScheme removes the scheme.
func (b *Builder) RemoveScheme() *Builder {
	b.scheme = ""
	return b
}

// SetSchemeSpecificPart sets the decoded scheme-specific part, turning the
// URI opaque. The authority, path and query are cleared. A blank ssp removes
// it.
func (b *Builder) SetSchemeSpecificPart(ssp string) *Builder {
	if isBlank(ssp) {
		ssp = ""
	}
	b.ssp = ssp
	b.resetHierarchical()
	return b
}

// RemoveSchemeSpecificPart removes the scheme-specific part and clears the
// authority, path and query.
func (b *Builder) RemoveSchemeSpecificPart() *Builder {
	b.ssp = ""
	b.resetHierarchical()
	return b
}

// SetUserInfo sets the decoded user information. A blank value removes it.
func (b *Builder) SetUserInfo(userInfo string) *Builder {
	if isBlank(userInfo) {
		userInfo = ""
	}
	b.userInfo = userInfo
	b.ssp = ""
	return b
}

// RemoveUserInfo removes the user information.
func (b *Builder) RemoveUserInfo() *Builder {
	b.userInfo = ""
	b.ssp = ""
	return b
}

// SetHost sets the decoded host, lower-cased. A URI with a host always has a
// root path. A blank host removes it.
func (b *Builder) SetHost(host string) *Builder {
	if isBlank(host) {
		b.host = ""
	} else {
		b.host = strings.ToLower(host)
		b.rootPath = true
	}
	b.ssp = ""
	return b
}

// RemoveHost removes the host.
func (b *Builder) RemoveHost() *Builder {
	b.host = ""
	b.ssp = ""
	return b
}

// SetPort sets the port. It records ErrInvalidArgument when port is neither
// a valid port nor SchemeDefaultPort.
func (b *Builder) SetPort(port int) *Builder {
	if err := ValidatePortOrSchemeDefault(port); err != nil {
		return b.fail(err)
	}
	b.port = port
	if port > SchemeDefaultPort {
		b.ssp = ""
	}
	return b
}

// SetDefaultPort leaves the port to the scheme.
func (b *Builder) SetDefaultPort() *Builder {
	b.port = SchemeDefaultPort
	return b
}

// SetPath replaces the path with the encoded path p. See AddSubPath.
func (b *Builder) SetPath(p string) *Builder {
	b.pathSegments = nil
	b.rootPath = b.host != ""
	return b.AddSubPath(p)
}

// AddSubPath appends the segments of the encoded path p. Empty segments are
// dropped and every other segment is validated and decoded with
// PathSegmentProfile. On an empty path, a leading '/' makes the path rooted.
func (b *Builder) AddSubPath(p string) *Builder {
	if isBlank(p) {
		return b
	}
	if len(b.pathSegments) == 0 {
		b.rootPath = strings.HasPrefix(p, "/") || b.host != ""
	}
	added := 0
	for _, segment := range strings.Split(p, "/") {
		if segment == "" {
			continue
		}
		decoded, err := PathSegmentProfile().ValidateAndDecode(segment)
		if err != nil {
			return b.fail(err)
		}
		b.pathSegments = append(b.pathSegments, decoded)
		added++
	}
	if added > 0 {
		b.ssp = ""
	}
	return b
}

// SetRootPath sets whether the path starts at the root.
func (b *Builder) SetRootPath(rootPath bool) *Builder {
	b.rootPath = rootPath
	b.ssp = ""
	return b
}

// SetPathSegments replaces the path with the given decoded segments.
func (b *Builder) SetPathSegments(segments []string) *Builder {
	b.pathSegments = nil
	return b.AddPathSegments(segments...)
}

// AddPathSegment appends one decoded path segment. An empty segment is ignored.
func (b *Builder) AddPathSegment(segment string) *Builder {
	return b.AddPathSegments(segment)
}

// AddPathSegments appends decoded path segments, dropping empty ones.
func (b *Builder) AddPathSegments(segments ...string) *Builder {
	added := 0
	for _, segment := range segments {
		if segment != "" {
			b.pathSegments = append(b.pathSegments, segment)
			added++
		}
	}
	if added > 0 {
		b.ssp = ""
	}
	return b
}

// SetQueryString replaces the query parameters with the ones parsed from the
// encoded query. A leading '?' is ignored and a blank query removes all
// parameters.
func (b *Builder) SetQueryString(query string) *Builder {
	if isBlank(query) {
		b.query.clear()
		return b
	}
	params, err := parseQuery(query)
	if err != nil {
		return b.fail(err)
	}
	return b.SetQueryParams(params)
}

// SetQueryParams replaces the query parameters with a copy of params,
// including names without values.
func (b *Builder) SetQueryParams(params QueryParams) *Builder {
	b.query = params.Clone()
	if !b.query.IsEmpty() {
		b.ssp = ""
	}
	return b
}

// PutQueryParams puts every name of params as PutQueryMultiParam does.
func (b *Builder) PutQueryParams(params QueryParams) *Builder {
	for _, name := range params.names {
		b.PutQueryMultiParam(name, params.values[name]...)
	}
	return b
}

// PutQueryParam replaces the values of name with value.
func (b *Builder) PutQueryParam(name, value string) *Builder {
	return b.PutQueryMultiParam(name, value)
}

// PutQueryMultiParam replaces the values of name with values, or removes
// name when no values are given. A blank name is ignored.
func (b *Builder) PutQueryMultiParam(name string, values ...string) *Builder {
	if isBlank(name) {
		return b
	}
	if len(values) == 0 {
		b.query.remove(name)
	} else {
		b.query.put(name, values)
	}
	b.ssp = ""
	return b
}

// AddQueryParams adds every value of params as AddQueryMultiParam does.
func (b *Builder) AddQueryParams(params QueryParams) *Builder {
	for _, name := range params.names {
		b.AddQueryMultiParam(name, params.values[name]...)
	}
	return b
}

// AddQueryParam appends value to the values of name.
func (b *Builder) AddQueryParam(name, value string) *Builder {
	return b.AddQueryMultiParam(name, value)
}

// AddQueryMultiParam appends values to the values of name, adding name when
// absent. A blank name or an empty values list is ignored.
func (b *Builder) AddQueryMultiParam(name string, values ...string) *Builder {
	if isBlank(name) || len(values) == 0 {
		return b
	}
	b.query.add(name, values...)
	b.ssp = ""
	return b
}

// RemoveQueryParams removes all query parameters.
func (b *Builder) RemoveQueryParams() *Builder {
	b.query.clear()
	return b
}

// RemoveQueryParam removes name and all its values.
func (b *Builder) RemoveQueryParam(name string) *Builder {
	b.query.remove(name)
	return b
}

// RemoveQueryParamValue removes the first occurrence of value from the values
// of name. The name stays even when no values are left.
func (b *Builder) RemoveQueryParamValue(name, value string) *Builder {
	b.query.removeValue(name, value)
	return b
}

// SortQueryParams orders the query parameters by name.
func (b *Builder) SortQueryParams() *Builder {
	b.query.sortNames()
	return b
}

// SortQueryParamValues orders the values of every query parameter.
func (b *Builder) SortQueryParamValues() *Builder {
	b.query.sortValues()
	return b
}

// SortQueryParamsAndValues orders query parameters by name and their values.
func (b *Builder) SortQueryParamsAndValues() *Builder {
	return b.SortQueryParamValues().SortQueryParams()
}

// SetFragment sets the decoded fragment. An empty fragment removes it.
func (b *Builder) SetFragment(fragment string) *Builder {
	b.fragment = fragment
	return b
}

// RemoveFragment removes the fragment.
func (b *Builder) RemoveFragment() *Builder {
	b.fragment = ""
	return b
}

func (b *Builder) resetHierarchical() {
	b.userInfo = ""
	b.host = ""
	b.port = SchemeDefaultPort
	b.pathSegments = nil
	b.query.clear()
}
