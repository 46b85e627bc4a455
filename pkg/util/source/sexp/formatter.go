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
package sexp

import "strings"

// Formatter pretty prints S-Expressions, aiming to fit each line within a
// given width.  Lists which fit on the current line are written inline.
// Otherwise, a list whose head is registered with the formatter is broken
// across lines with each argument indented beneath the head.  Lists whose head
// is not registered are always written inline.
type Formatter struct {
	maxWidth uint
	indent   uint
	breaks   map[string]bool
}

// NewFormatter constructs a new formatter which aims to fit its output within a
// given width.
func NewFormatter(width uint) *Formatter {
	return &Formatter{width, 2, make(map[string]bool)}
}

// Break registers list heads which can be split across lines.
func (p *Formatter) Break(heads ...string) *Formatter {
	for _, h := range heads {
		p.breaks[h] = true
	}
	//
	return p
}

// Format a given S-Expression.  The result is not terminated by a newline.
func (p *Formatter) Format(sexp SExp) string {
	var text formattedText
	//
	p.format(sexp, &text)
	//
	return text.String()
}

func (p *Formatter) format(sexp SExp, text *formattedText) {
	var (
		flat = sexp.String(true)
		list = sexp.AsList()
	)
	//
	if list == nil || text.width()+uint(len(flat)) <= p.maxWidth || !p.breaks[list.Head()] {
		text.write(flat)
		return
	}
	//
	text.write("(")
	text.write(list.Head())
	text.level += p.indent
	//
	for _, arg := range list.Elements[1:] {
		text.newLine()
		p.format(arg, text)
	}
	//
	text.level -= p.indent
	text.write(")")
}

// formattedText is a block of lines being written at some indentation level.
type formattedText struct {
	level uint
	lines []string
}

func (p *formattedText) String() string {
	return strings.Join(p.lines, "\n")
}

func (p *formattedText) newLine() {
	p.lines = append(p.lines, strings.Repeat(" ", int(p.level)))
}

func (p *formattedText) width() uint {
	if len(p.lines) == 0 {
		return 0
	}
	//
	return uint(len(p.lines[len(p.lines)-1]))
}

func (p *formattedText) write(str string) {
	if len(p.lines) == 0 {
		p.lines = append(p.lines, str)
	} else {
		p.lines[len(p.lines)-1] += str
	}
}
