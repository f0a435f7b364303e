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
	"slices"
	"strings"
)

// QueryParams is an ordered multimap of decoded query parameters. Names keep
// the order of their first insertion and values keep the order in which they
// were added. A name may be present with no values, as in "?flag".
//
// The zero value is an empty QueryParams ready to use. Values returned by
// Components are copies and may be modified freely.
type QueryParams struct {
	names  []string
	values map[string][]string
}

// NewQueryParams returns QueryParams holding the given name/value pairs in
// order. It panics when given an odd number of strings.
func NewQueryParams(pairs ...string) QueryParams {
	if len(pairs)%2 != 0 {
		panic("uri: NewQueryParams called with an odd number of arguments")
	}
	var q QueryParams
	for i := 0; i < len(pairs); i += 2 {
		q.add(pairs[i], pairs[i+1])
	}
	return q
}

// Len returns the number of distinct names.
func (q QueryParams) Len() int { return len(q.names) }

// IsEmpty reports whether there are no names.
func (q QueryParams) IsEmpty() bool { return len(q.names) == 0 }

// Names returns the names in insertion order.
func (q QueryParams) Names() []string { return slices.Clone(q.names) }

// Has reports whether name is present, with or without values.
func (q QueryParams) Has(name string) bool {
	_, ok := q.values[name]
	return ok
}

// Values returns the values of name in order, or nil when the name is absent
// or has no values.
func (q QueryParams) Values(name string) []string {
	return slices.Clone(q.values[name])
}

// Get returns the first value of name and whether there is one.
func (q QueryParams) Get(name string) (string, bool) {
	values := q.values[name]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Flatten returns the first value of every name that has at least one value.
func (q QueryParams) Flatten() map[string]string {
	flat := make(map[string]string, len(q.names))
	for _, name := range q.names {
		if values := q.values[name]; len(values) > 0 {
			flat[name] = values[0]
		}
	}
	return flat
}

// Equal reports whether both multimaps hold the same names in the same order
// with the same values.
func (q QueryParams) Equal(other QueryParams) bool {
	if !slices.Equal(q.names, other.names) {
		return false
	}
	for _, name := range q.names {
		if !slices.Equal(q.values[name], other.values[name]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (q QueryParams) Clone() QueryParams {
	if len(q.names) == 0 {
		return QueryParams{}
	}
	c := QueryParams{
		names:  slices.Clone(q.names),
		values: make(map[string][]string, len(q.values)),
	}
	for name, values := range q.values {
		c.values[name] = slices.Clone(values)
	}
	return c
}

// String returns the encoded query string, without the leading '?'.
func (q QueryParams) String() string {
	var b strings.Builder
	q.encodeTo(&b)
	return b.String()
}

// encodeTo writes the query string: every name and value is escaped with
// QueryParamNarrowProfile, names without values are written bare and pairs
// are joined with '&'.
func (q QueryParams) encodeTo(b *strings.Builder) {
	for _, name := range q.names {
		values := q.values[name]
		if len(values) == 0 {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			QueryParamNarrowProfile().EncodeTo(name, b)
			continue
		}
		for _, value := range values {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			QueryParamNarrowProfile().EncodeTo(name, b)
			b.WriteByte('=')
			QueryParamNarrowProfile().EncodeTo(value, b)
		}
	}
}

// declare makes name present, keeping its values if any.
func (q *QueryParams) declare(name string) {
	if q.values == nil {
		q.values = make(map[string][]string)
	}
	if _, ok := q.values[name]; !ok {
		q.names = append(q.names, name)
		q.values[name] = nil
	}
}

// put replaces the values of name, keeping its position when present.
func (q *QueryParams) put(name string, values []string) {
	q.declare(name)
	q.values[name] = slices.Clone(values)
}

// add appends values to name, declaring it when absent.
func (q *QueryParams) add(name string, values ...string) {
	q.declare(name)
	q.values[name] = append(q.values[name], values...)
}

// remove drops name and its values.
func (q *QueryParams) remove(name string) {
	if _, ok := q.values[name]; !ok {
		return
	}
	delete(q.values, name)
	q.names = slices.DeleteFunc(q.names, func(n string) bool { return n == name })
}

// removeValue drops the first occurrence of value from the values of name.
func (q *QueryParams) removeValue(name, value string) {
	values, ok := q.values[name]
	if !ok {
		return
	}
	if i := slices.Index(values, value); i >= 0 {
		q.values[name] = slices.Delete(slices.Clone(values), i, i+1)
	}
}

func (q *QueryParams) clear() {
	q.names = nil
	q.values = nil
}

func (q *QueryParams) sortNames() {
	slices.Sort(q.names)
}

func (q *QueryParams) sortValues() {
	for _, values := range q.values {
		slices.Sort(values)
	}
}
