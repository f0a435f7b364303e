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
	"errors"
	"fmt"
)

// Error is the type of the error kinds reported by this package. Every error
// returned by a function of this package matches exactly one kind with
// errors.Is, and a *ParseError additionally matches the kind of its cause.
type Error string

// Error returns the kind description.
func (e Error) Error() string { return string(e) }

const (
	// ErrMalformedURI is reported when a raw URI does not match the RFC 3986
	// grammar or one of its components fails validation.
	ErrMalformedURI Error = "malformed URI"
	// ErrMalformedHTTPURL is reported when a raw string is not a hierarchical
	// URI with the "http" or "https" scheme.
	ErrMalformedHTTPURL Error = "malformed HTTP URL"
	// ErrInvalidCharacter is reported when an encoded component contains a
	// character that its profile does not allow.
	ErrInvalidCharacter Error = "invalid character"
	// ErrInvalidEncodedSequence is reported when an encoded component contains
	// a '%' that is not followed by two hexadecimal digits.
	ErrInvalidEncodedSequence Error = "invalid encoded sequence"
	// ErrMalformedEscape is reported by the percent decoder for truncated or
	// non-hexadecimal escapes.
	ErrMalformedEscape Error = "malformed escape"
	// ErrInvalidURI is reported when assembled components violate a structural
	// invariant, e.g. a port without a host.
	ErrInvalidURI Error = "invalid URI"
	// ErrInvalidArgument is reported when a public function receives an
	// argument outside of its domain.
	ErrInvalidArgument Error = "invalid argument"
)

// kindError is a specialized error type used to provide detailed context
// about a failure while keeping it classifiable by its kind.
type kindError struct {
	kind    Error
	message string
	char    rune
	details string
}

// Error formats the error message with any available character or details.
func (e *kindError) Error() string {
	msg := e.message
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	}
	if e.details != "" {
		msg = fmt.Sprintf("%s %s", msg, e.details)
	}
	return msg
}

// Unwrap returns the error kind.
func (e *kindError) Unwrap() error { return e.kind }

func invalidArgument(format string, args ...any) error {
	return &kindError{kind: ErrInvalidArgument, message: fmt.Sprintf(format, args...)}
}

func invalidURI(message string) error {
	return &kindError{kind: ErrInvalidURI, message: message}
}

// ParseError is returned when a raw URI, HTTP URL or query string cannot be
// turned into Components. It carries the original input and, when known, the
// deepest validation error that caused the failure.
type ParseError struct {
	// Kind is either ErrMalformedURI or ErrMalformedHTTPURL.
	Kind Error
	// Input is the text that failed to parse.
	Input string
	// Err is the root cause. It is nil for plain grammar mismatches.
	Err error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	subject := "uri"
	if e.Kind == ErrMalformedHTTPURL {
		subject = "http url"
	}
	msg := fmt.Sprintf("could not parse %s: %q", subject, e.Input)
	if e.Err != nil {
		msg += ". Cause: " + e.Err.Error()
	}
	return msg
}

// Unwrap provides compatibility with Go's standard errors package: a
// ParseError matches both its own kind and the kind of its cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// newParseError creates a ParseError of the given kind keeping only the
// deepest validation error found in err.
func newParseError(kind Error, input string, err error) *ParseError {
	return &ParseError{Kind: kind, Input: input, Err: rootCause(err)}
}

// rootCause strips nested parse errors from err and returns the deepest
// *kindError, or err itself when it holds no such error.
func rootCause(err error) error {
	for {
		pe, ok := err.(*ParseError) //nolint:errorlint // only direct nesting is flattened
		if !ok {
			break
		}
		err = pe.Err
	}
	var ke *kindError
	if errors.As(err, &ke) {
		return ke
	}
	return err
}
