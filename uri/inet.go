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
	"regexp"
	"strconv"
	"strings"
)

const (
	ipv4MaxOctetValue        = 255
	ipv6MaxHexGroups         = 8
	ipv6MaxHexDigitsPerGroup = 4
	ipv6MaxPrefixLength      = 128
)

var (
	ipv4Pattern       = regexp.MustCompile(`^(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})$`)
	ipv6PrefixPattern = regexp.MustCompile(`^\d{1,3}$`)
	ipv6ZonePattern   = regexp.MustCompile(`^[^\s\v/%]+$`)
)

// IsValidIP reports whether s is a valid IPv4 or IPv6 address.
func IsValidIP(s string) bool {
	return IsValidIPv4(s) || IsValidIPv6(s)
}

// ValidateIP fails with ErrInvalidArgument unless s is a valid IPv4 or IPv6 address.
func ValidateIP(s string) error {
	if !IsValidIP(s) {
		return invalidArgument("Expected valid ip address. Got: %s", s)
	}
	return nil
}

// ValidateIPv4 fails with ErrInvalidArgument unless s is a valid IPv4 address.
func ValidateIPv4(s string) error {
	if !IsValidIPv4(s) {
		return invalidArgument("Expected valid ip v4 address. Got: %s", s)
	}
	return nil
}

// ValidateIPv6 fails with ErrInvalidArgument unless s is a valid IPv6 address.
func ValidateIPv6(s string) error {
	if !IsValidIPv6(s) {
		return invalidArgument("Expected valid ip v6 address. Got: %s", s)
	}
	return nil
}

// IsValidIPv4 reports whether s is a dotted-decimal IPv4 address: four groups
// of one to three digits, each at most 255 and without leading zeros.
func IsValidIPv4(s string) bool {
	if isBlank(s) {
		return false
	}
	groups := ipv4Pattern.FindStringSubmatch(s)
	if groups == nil {
		return false
	}
	for _, group := range groups[1:] {
		if len(group) > 1 && group[0] == '0' {
			return false
		}
		n, err := strconv.Atoi(group)
		if err != nil || n > ipv4MaxOctetValue {
			return false
		}
	}
	return true
}

// IsValidIPv6 reports whether s is a textual IPv6 address as described in
// RFC 4291, Section 2.2, optionally followed by a zone id (RFC 4007,
// Section 11) and a prefix length ("/0" to "/128"). The last group may be an
// embedded IPv4 address.
func IsValidIPv6(s string) bool {
	if isBlank(s) {
		return false
	}
	address, ok := stripIPv6Suffixes(s)
	if !ok {
		return false
	}
	compressed := strings.Contains(address, "::")
	if compressed && strings.Index(address, "::") != strings.LastIndex(address, "::") {
		return false
	}
	if (strings.HasPrefix(address, ":") && !strings.HasPrefix(address, "::")) ||
		(strings.HasSuffix(address, ":") && !strings.HasSuffix(address, "::")) {
		return false
	}
	groups := splitIPv6Groups(address)
	if compressed {
		if strings.HasSuffix(address, "::") {
			groups = append(groups, "")
		} else if strings.HasPrefix(address, "::") && len(groups) > 0 {
			groups = groups[1:]
		}
	}
	if len(groups) > ipv6MaxHexGroups {
		return false
	}
	validGroups := 0
	emptyGroups := 0
	for i, group := range groups {
		if group == "" {
			emptyGroups++
			if emptyGroups > 1 {
				return false
			}
			validGroups++
			continue
		}
		emptyGroups = 0
		if i == len(groups)-1 && strings.Contains(group, ".") {
			if !IsValidIPv4(group) {
				return false
			}
			validGroups += 2
			continue
		}
		if !isIPv6HexGroup(group) {
			return false
		}
		validGroups++
	}
	return validGroups <= ipv6MaxHexGroups && (validGroups == ipv6MaxHexGroups || compressed)
}

// stripIPv6Suffixes removes and validates the optional "/prefix" and
// "%zone" suffixes of an IPv6 address.
func stripIPv6Suffixes(s string) (string, bool) {
	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return "", false
	}
	if len(parts) == 2 {
		if !ipv6PrefixPattern.MatchString(parts[1]) {
			return "", false
		}
		if bits, _ := strconv.Atoi(parts[1]); bits > ipv6MaxPrefixLength {
			return "", false
		}
	}
	parts = strings.Split(parts[0], "%")
	if len(parts) > 2 {
		return "", false
	}
	if len(parts) == 2 && !ipv6ZonePattern.MatchString(parts[1]) {
		return "", false
	}
	return parts[0], true
}

// splitIPv6Groups splits an address on ':' and drops trailing empty groups,
// leaving the compression marker to be accounted for by the caller.
func splitIPv6Groups(address string) []string {
	groups := strings.Split(address, ":")
	for len(groups) > 0 && groups[len(groups)-1] == "" {
		groups = groups[:len(groups)-1]
	}
	if len(groups) == 0 && address == "" {
		return []string{""}
	}
	return groups
}

// isIPv6HexGroup reports whether group is one to four hexadecimal digits.
func isIPv6HexGroup(group string) bool {
	if len(group) > ipv6MaxHexDigitsPerGroup {
		return false
	}
	for _, r := range group {
		if !isASCIIHexDigit(r) {
			return false
		}
	}
	return true
}
