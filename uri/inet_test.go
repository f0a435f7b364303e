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

func TestIsValidIPv4(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		valid bool
	}{
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"192.168.1.1", true},
		{"10.0.0.10", true},
		{"256.1.1.1", false},
		{"01.1.1.1", false},
		{"1.1.1.00", false},
		{"1.1.1", false},
		{"1.1.1.1.1", false},
		{"1.1.1.1 ", false},
		{"a.b.c.d", false},
		{"1111.1.1.1", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := IsValidIPv4(tt.input); got != tt.valid {
			t.Errorf("IsValidIPv4(%q) = %t, want %t", tt.input, got, tt.valid)
		}
	}
}

func TestIsValidIPv6(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		valid bool
	}{
		{"::1", true},
		{"::", true},
		{"1::", true},
		{"2001:db8::1", true},
		{"2001:0db8:85a3:0000:0000:8a2e:0370:7334", true},
		{"1:2:3:4:5:6:7:8", true},
		{"::ffff:192.168.1.1", true},
		{"1:2:3:4:5:6:1.2.3.4", true},
		{"fe80::1%eth0", true},
		{"fe80::1%25", true},
		{"2001:db8::/32", true},
		{"::1/128", true},
		{"fe80::1%eth0/64", true},
		{"FFFF::ABCD", true},
		{"::1::2", false},
		{":1:2:3:4:5:6:7", false},
		{"1:2:3:4:5:6:7:", false},
		{"1:2:3:4:5:6:7:8:9", false},
		{"1:2:3:4:5:6:7", false},
		{"1:2:3:4:5:6:7:1.2.3.4", false},
		{"12345::", false},
		{"g::1", false},
		{"::ffff:256.1.1.1", false},
		{"1.2.3.4", false},
		{"::1/129", false},
		{"::1/a", false},
		{"::1/1/2", false},
		{"fe80::1%", false},
		{"fe80::1%a%b", false},
		{"fe80::1%a b", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidIPv6(tt.input); got != tt.valid {
			t.Errorf("IsValidIPv6(%q) = %t, want %t", tt.input, got, tt.valid)
		}
	}
}

func TestValidateIP(t *testing.T) {
	t.Parallel()
	if err := ValidateIP("127.0.0.1"); err != nil {
		t.Errorf("ValidateIP(127.0.0.1) returned error: %v", err)
	}
	if err := ValidateIP("::1"); err != nil {
		t.Errorf("ValidateIP(::1) returned error: %v", err)
	}
	if err := ValidateIP("localhost"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ValidateIP(localhost) error = %v, want ErrInvalidArgument", err)
	}
	if err := ValidateIPv4("::1"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ValidateIPv4(::1) error = %v, want ErrInvalidArgument", err)
	}
	if err := ValidateIPv6("127.0.0.1"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ValidateIPv6(127.0.0.1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestPorts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		port           int
		valid          bool
		validOrDefault bool
	}{
		{MinPort, true, true},
		{80, true, true},
		{MaxPort, true, true},
		{MaxPort + 1, false, false},
		{SchemeDefaultPort, false, true},
		{-2, false, false},
	}
	for _, tt := range tests {
		if got := IsValidPort(tt.port); got != tt.valid {
			t.Errorf("IsValidPort(%d) = %t, want %t", tt.port, got, tt.valid)
		}
		if got := IsValidPortOrSchemeDefault(tt.port); got != tt.validOrDefault {
			t.Errorf("IsValidPortOrSchemeDefault(%d) = %t, want %t", tt.port, got, tt.validOrDefault)
		}
		if err := ValidatePort(tt.port); (err == nil) != tt.valid {
			t.Errorf("ValidatePort(%d) = %v", tt.port, err)
		}
		if err := ValidatePortOrSchemeDefault(tt.port); (err == nil) != tt.validOrDefault {
			t.Errorf("ValidatePortOrSchemeDefault(%d) = %v", tt.port, err)
		} else if err != nil && !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ValidatePortOrSchemeDefault(%d) error = %v, want ErrInvalidArgument", tt.port, err)
		}
	}
	if !IsSchemeDefaultPort(SchemeDefaultPort) || IsSchemeDefaultPort(80) {
		t.Error("IsSchemeDefaultPort mismatch")
	}
}
