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

// outputBuffer is the sink of the percent encoder. This abstraction allows the
// encoder to either produce text (stringOutputBuffer) or only find out whether
// it would change its input (voidOutputBuffer).
type outputBuffer interface {
	// writeByte appends a single byte to the buffer.
	writeByte(c byte)
	// writeString appends a string to the buffer.
	writeString(s string)
}

// voidOutputBuffer discards all writes. RequiresEncoding runs the encoder
// over it for the change report alone.
type voidOutputBuffer struct{}

func (voidOutputBuffer) writeByte(byte) {}

func (voidOutputBuffer) writeString(string) {}

// stringOutputBuffer appends to a caller supplied strings.Builder.
type stringOutputBuffer struct {
	builder *strings.Builder
}

func (b *stringOutputBuffer) writeByte(c byte) { b.builder.WriteByte(c) }

func (b *stringOutputBuffer) writeString(s string) { b.builder.WriteString(s) }
