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

import "strings"

// scanInput walks an encoded component rune by rune for the percent decoder
// and the profile validator, keeping track of the byte offset reached.
type scanInput struct {
	text   string
	reader *strings.Reader
}

func newScanInput(text string) *scanInput {
	return &scanInput{text: text, reader: strings.NewReader(text)}
}

// next consumes one rune. It reports false at the end of the text.
func (p *scanInput) next() (rune, bool) {
	r, _, err := p.reader.ReadRune()
	return r, err == nil
}

// startsWith reports whether the next rune is r, without consuming it.
func (p *scanInput) startsWith(r rune) bool {
	next, _, err := p.reader.ReadRune()
	if err != nil {
		return false
	}
	_ = p.reader.UnreadRune()
	return next == r
}

// position is the byte offset of the next unread rune.
func (p *scanInput) position() int {
	return len(p.text) - p.reader.Len()
}

// readHexPair consumes two hexadecimal digits following a '%' that has
// already been read. It reports false, without a guaranteed position, when
// fewer than two runes remain or one of them is not a hex digit.
func (p *scanInput) readHexPair() (byte, bool) {
	c1, ok1 := p.next()
	c2, ok2 := p.next()
	if !ok1 || !ok2 || !isASCIIHexDigit(c1) || !isASCIIHexDigit(c2) {
		return 0, false
	}
	return hexValue(c1)<<4 | hexValue(c2), true
}
