// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

// Span is a half-open range [start,end) of character offsets within a source
// file.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a span, panicking if start is after end.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}
	//
	return Span{start, end}
}

// Start returns the first offset covered by this span.
func (p *Span) Start() int {
	return p.start
}

// End returns one past the last offset covered by this span.
func (p *Span) End() int {
	return p.end
}

// Length returns the number of characters covered.
func (p *Span) Length() int {
	return p.end - p.start
}

// Map associates nodes produced from a source file with the span of text they
// came from.  Since structurally equal nodes may be interned into a single
// value, a node can legitimately be registered more than once.  In that case,
// the first span registered is retained.
type Map[T comparable] struct {
	mapping map[T]Span
	srcfile File
}

// NewSourceMap constructs an empty source map for a given file.
func NewSourceMap[T comparable](srcfile File) *Map[T] {
	return &Map[T]{make(map[T]Span), srcfile}
}

// Source returns the file on which this map operates.
func (p *Map[T]) Source() File {
	return p.srcfile
}

// Put records the span of a given node, unless it already has one.
func (p *Map[T]) Put(item T, span Span) {
	if _, ok := p.mapping[item]; !ok {
		p.mapping[item] = span
	}
}

// Has checks whether a given node has a recorded span.
func (p *Map[T]) Has(item T) bool {
	_, ok := p.mapping[item]
	return ok
}

// Get returns the span of a given node, or false if it has none.
func (p *Map[T]) Get(item T) (Span, bool) {
	s, ok := p.mapping[item]
	return s, ok
}

// SyntaxError constructs an error for a given node.  When the node has no
// recorded span, the error covers the whole file.
func (p *Map[T]) SyntaxError(item T, msg string) *SyntaxError {
	span, ok := p.mapping[item]
	//
	if !ok {
		span = Span{0, len(p.srcfile.contents)}
	}
	//
	return p.srcfile.SyntaxError(span, msg)
}
