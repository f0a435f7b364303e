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

const (
	// SchemeDefaultPort is the port of a URI that does not name one, leaving
	// the choice to the scheme (e.g. 443 for "https").
	SchemeDefaultPort = -1
	// MinPort is the lowest valid port number.
	MinPort = 0
	// MaxPort is the highest valid port number.
	MaxPort = 65535
)

// IsValidPort reports whether port is within [MinPort, MaxPort].
func IsValidPort(port int) bool {
	return port >= MinPort && port <= MaxPort
}

// IsSchemeDefaultPort reports whether port is the SchemeDefaultPort sentinel.
func IsSchemeDefaultPort(port int) bool {
	return port == SchemeDefaultPort
}

// IsValidPortOrSchemeDefault reports whether port is a valid port or the
// SchemeDefaultPort sentinel.
func IsValidPortOrSchemeDefault(port int) bool {
	return IsSchemeDefaultPort(port) || IsValidPort(port)
}

// ValidatePort fails with ErrInvalidArgument unless port is a valid port.
func ValidatePort(port int) error {
	if !IsValidPort(port) {
		return invalidArgument("Expected port number in range [%d, %d]. Got: %d", MinPort, MaxPort, port)
	}
	return nil
}

// ValidatePortOrSchemeDefault fails with ErrInvalidArgument unless port is a
// valid port or SchemeDefaultPort.
func ValidatePortOrSchemeDefault(port int) error {
	if !IsValidPortOrSchemeDefault(port) {
		return invalidArgument("Expected port number in range [%d, %d] or %d. Got: %d",
			MinPort, MaxPort, SchemeDefaultPort, port)
	}
	return nil
}
