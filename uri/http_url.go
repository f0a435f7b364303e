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

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// IsValidHTTPURL reports whether the URI is an http or https URL whose host
// is a valid IPv4 address, a bracketed IPv6 address or a domain name
// accepted by the IDNA lookup profile (RFC 5891).
func (c *Components) IsValidHTTPURL() bool {
	if !c.IsHTTPURL() || c.host == "" {
		return false
	}
	if strings.HasPrefix(c.host, "[") {
		return strings.HasSuffix(c.host, "]") && IsValidIPv6(c.host[1:len(c.host)-1])
	}
	if IsValidIPv4(c.host) {
		return true
	}
	_, err := toASCIIHost(c.host)
	return err == nil
}

// ASCIIHost returns the host in its ASCII form: internationalized domain
// names are normalized to NFC and converted to Punycode, IP literals are
// returned as they are. It fails with ErrInvalidURI when the host is not a
// valid domain name.
func (c *Components) ASCIIHost() (string, error) {
	if c.host == "" || strings.HasPrefix(c.host, "[") || IsValidIPv4(c.host) {
		return c.host, nil
	}
	return toASCIIHost(c.host)
}

func toASCIIHost(host string) (string, error) {
	ascii, err := idna.Lookup.ToASCII(norm.NFC.String(host))
	if err != nil {
		return "", &kindError{kind: ErrInvalidURI, message: "Invalid host name", details: err.Error()}
	}
	return ascii, nil
}
