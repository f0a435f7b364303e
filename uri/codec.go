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

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var (
	percentCodec     = NewCodec()
	percentPlusCodec = NewCodec(WithDecodeSpaceAsPlus(true))
)

// PercentCodec encodes everything but the unreserved characters of RFC 3986
// and decodes '+' as a literal plus sign.
func PercentCodec() *Codec { return percentCodec }

// PercentPlusCodec is PercentCodec for legacy form-encoded text: it decodes
// '+' as a space and always escapes a literal '+'.
func PercentPlusCodec() *Codec { return percentPlusCodec }

// EncodeURIComponent percent-encodes s with PercentCodec.
func EncodeURIComponent(s string) string { return PercentCodec().Encode(s) }

// DecodeURIComponent decodes s with PercentCodec.
func DecodeURIComponent(s string) (string, error) { return PercentCodec().Decode(s) }

// EncodeURIComponentWithPlusAsSpace percent-encodes s with PercentPlusCodec.
func EncodeURIComponentWithPlusAsSpace(s string) string { return PercentPlusCodec().Encode(s) }

// DecodeURIComponentWithPlusAsSpace decodes s with PercentPlusCodec.
func DecodeURIComponentWithPlusAsSpace(s string) (string, error) { return PercentPlusCodec().Decode(s) }

// Codec is a percent encoder/decoder (RFC 3986, Section 2.1) configured with
// a set of safe characters, a byte charset and the handling of '+'.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	safe              CodePointSet
	charset           encoding.Encoding
	decodeSpaceAsPlus bool
	encodeSpaceAsPlus bool
}

type codecConfig struct {
	safe              CodePointSet
	charset           encoding.Encoding
	decodeSpaceAsPlus bool
	encodeSpaceAsPlus bool
}

// CodecOption configures a Codec built by NewCodec.
type CodecOption func(*codecConfig)

// WithSafeCharacters replaces the safe characters with the ones in chars.
func WithSafeCharacters(chars string) CodecOption {
	return func(c *codecConfig) { c.safe = NewCodePointSet(chars) }
}

// WithAddedSafeCharacters adds the characters in chars to the safe set.
func WithAddedSafeCharacters(chars string) CodecOption {
	return func(c *codecConfig) { c.safe = c.safe.Union(NewCodePointSet(chars)) }
}

// WithSafeSet replaces the safe characters with set.
func WithSafeSet(set CodePointSet) CodecOption {
	return func(c *codecConfig) { c.safe = set }
}

// WithCharset sets the charset escaped bytes are interpreted in. A nil
// charset stands for UTF-8.
func WithCharset(charset encoding.Encoding) CodecOption {
	return func(c *codecConfig) {
		if charset == nil {
			charset = unicode.UTF8
		}
		c.charset = charset
	}
}

// WithSpaceAsPlus sets both WithDecodeSpaceAsPlus and WithEncodeSpaceAsPlus.
func WithSpaceAsPlus(spaceAsPlus bool) CodecOption {
	return func(c *codecConfig) {
		c.decodeSpaceAsPlus = spaceAsPlus
		c.encodeSpaceAsPlus = spaceAsPlus
	}
}

// WithDecodeSpaceAsPlus makes the decoder turn '+' into a space.
func WithDecodeSpaceAsPlus(spaceAsPlus bool) CodecOption {
	return func(c *codecConfig) { c.decodeSpaceAsPlus = spaceAsPlus }
}

// WithEncodeSpaceAsPlus makes the encoder write a space as '+'.
func WithEncodeSpaceAsPlus(spaceAsPlus bool) CodecOption {
	return func(c *codecConfig) { c.encodeSpaceAsPlus = spaceAsPlus }
}

// NewCodec builds a Codec. Without options it treats the unreserved
// characters of RFC 3986 as safe, uses UTF-8 and leaves '+' alone.
//
// Whenever '+' stands for a space in either direction, '+' is removed from the
// safe set, so an encoded literal plus sign can never be mistaken for an
// encoded space.
func NewCodec(opts ...CodecOption) *Codec {
	cfg := codecConfig{
		safe:    NewCodePointSet(unreserved),
		charset: unicode.UTF8,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.decodeSpaceAsPlus || cfg.encodeSpaceAsPlus {
		cfg.safe = cfg.safe.With('+', false)
	}
	return &Codec{
		safe:              cfg.safe,
		charset:           cfg.charset,
		decodeSpaceAsPlus: cfg.decodeSpaceAsPlus,
		encodeSpaceAsPlus: cfg.encodeSpaceAsPlus,
	}
}

// SafeCharacters returns the set of characters the encoder emits literally.
func (c *Codec) SafeCharacters() CodePointSet { return c.safe }

// Charset returns the charset escaped bytes are interpreted in.
func (c *Codec) Charset() encoding.Encoding { return c.charset }

// Encode returns the percent-encoded form of s.
func (c *Codec) Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	c.EncodeTo(s, &b)
	return b.String()
}

// EncodeTo appends the percent-encoded form of s to out and reports whether
// it differs from s.
func (c *Codec) EncodeTo(s string, out *strings.Builder) bool {
	return c.EncodeWithCharsetTo(s, c.charset, out)
}

// EncodeWithCharsetTo is EncodeTo with the charset overridden for this call.
func (c *Codec) EncodeWithCharsetTo(s string, charset encoding.Encoding, out *strings.Builder) bool {
	return percentEncode(s, c.safe, c.encodeSpaceAsPlus, charset, &stringOutputBuffer{builder: out})
}

// RequiresEncoding reports whether Encode would change s, without building
// the encoded text.
func (c *Codec) RequiresEncoding(s string) bool {
	return percentEncode(s, c.safe, c.encodeSpaceAsPlus, c.charset, voidOutputBuffer{})
}

// Decode returns the decoded form of s. It fails with ErrMalformedEscape on a
// truncated or non-hexadecimal escape.
func (c *Codec) Decode(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	if _, err := c.DecodeTo(s, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// DecodeTo appends the decoded form of s to out and reports whether it
// differs from s. On error, out may hold a decoded prefix.
func (c *Codec) DecodeTo(s string, out *strings.Builder) (bool, error) {
	return c.DecodeWithCharsetTo(s, c.charset, out)
}

// DecodeWithCharsetTo is DecodeTo with the charset overridden for this call.
func (c *Codec) DecodeWithCharsetTo(s string, charset encoding.Encoding, out *strings.Builder) (bool, error) {
	return percentDecode(s, c.decodeSpaceAsPlus, charset, out)
}

// CharsetByName returns the charset registered with IANA under name, e.g.
// "UTF-8" or "ISO-8859-1". Matching is case-insensitive.
func CharsetByName(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, invalidArgument("Unknown charset %q (%v)", name, err)
	}
	if enc == nil {
		return nil, invalidArgument("Unsupported charset %q", name)
	}
	return enc, nil
}

// String describes the codec configuration.
func (c *Codec) String() string {
	name, err := ianaindex.IANA.Name(c.charset)
	if err != nil {
		name = fmt.Sprint(c.charset)
	}
	return fmt.Sprintf("Codec{safe=%q, charset=%s, decodeSpaceAsPlus=%t, encodeSpaceAsPlus=%t}",
		c.safe.String(), name, c.decodeSpaceAsPlus, c.encodeSpaceAsPlus)
}
