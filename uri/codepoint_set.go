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
	"math/bits"
	"strings"
)

const wordBits = 64

// CodePointSet is an immutable set of Unicode code points, stored as a bit
// set indexed by code point. It is used to describe the characters a percent
// encoder may emit literally and the characters an encoded URI component may
// contain.
//
// A CodePointSet has no mutating methods: With and Union return new sets and
// never touch the receiver, so sets can be shared between goroutines freely.
// The zero value is the empty set.
type CodePointSet struct {
	words []uint64
}

// NewCodePointSet returns the set of code points contained in chars. An empty
// string yields the empty set.
func NewCodePointSet(chars string) CodePointSet {
	if chars == "" {
		return CodePointSet{}
	}
	var maxRune rune
	for _, r := range chars {
		maxRune = max(maxRune, r)
	}
	words := make([]uint64, int(maxRune)/wordBits+1)
	for _, r := range chars {
		words[r/wordBits] |= 1 << (uint(r) % wordBits)
	}
	return CodePointSet{words: words}
}

// Contains reports whether r is a member of the set.
func (s CodePointSet) Contains(r rune) bool {
	if r < 0 {
		return false
	}
	i := int(r) / wordBits
	if i >= len(s.words) {
		return false
	}
	return s.words[i]&(1<<(uint(r)%wordBits)) != 0
}

// With returns a copy of the set in which membership of r is set to member.
// The receiver is left untouched. Negative code points are ignored.
func (s CodePointSet) With(r rune, member bool) CodePointSet {
	if r < 0 || s.Contains(r) == member {
		return s
	}
	n := max(len(s.words), int(r)/wordBits+1)
	words := make([]uint64, n)
	copy(words, s.words)
	if member {
		words[r/wordBits] |= 1 << (uint(r) % wordBits)
	} else {
		words[r/wordBits] &^= 1 << (uint(r) % wordBits)
	}
	return CodePointSet{words: words}
}

// Union returns a new set holding the members of both sets.
func (s CodePointSet) Union(other CodePointSet) CodePointSet {
	long, short := s.words, other.words
	if len(short) > len(long) {
		long, short = short, long
	}
	if len(long) == 0 {
		return CodePointSet{}
	}
	words := make([]uint64, len(long))
	copy(words, long)
	for i, w := range short {
		words[i] |= w
	}
	return CodePointSet{words: words}
}

// Len returns the number of members.
func (s CodePointSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s CodePointSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same members.
func (s CodePointSet) Equal(other CodePointSet) bool {
	long, short := s.words, other.words
	if len(short) > len(long) {
		long, short = short, long
	}
	for i, w := range long {
		var o uint64
		if i < len(short) {
			o = short[i]
		}
		if w != o {
			return false
		}
	}
	return true
}

// String returns the members in ascending code point order.
func (s CodePointSet) String() string {
	var b strings.Builder
	for i, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			b.WriteRune(rune(i*wordBits + tz))
			w &^= 1 << uint(tz)
		}
	}
	return b.String()
}
