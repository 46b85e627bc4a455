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

import (
	"fmt"

	"github.com/consensys/go-matexpr/pkg/util/source"
)

// SymbolRule converts a terminating expression (i.e. a symbol) into an
// expression of type T.  The boolean indicates whether or not the rule applies
// and, when it does, any error is reported against the symbol.
type SymbolRule[T comparable] func(string) (T, bool, error)

// ListRule converts a list into an expression of type T.
type ListRule[T comparable] func(*List) (T, []source.SyntaxError)

// RecursiveRule converts a list whose arguments have already been translated
// (by the enclosing translator) into an expression of type T.
type RecursiveRule[T comparable] func(string, []T) (T, error)

// Translator is a generic mechanism for translating S-Expressions into a
// structured form.
type Translator[T comparable] struct {
	srcfile *source.File
	// Rules for lists, indexed by head symbol.
	lists map[string]ListRule[T]
	// Rules for symbols, tried in order.
	symbols []SymbolRule[T]
	// Spans of S-Expressions in the original file.
	oldSrcmap *source.Map[SExp]
	// Spans of translated terms, derived from the S-Expressions they came
	// from.
	newSrcmap *source.Map[T]
}

// NewTranslator constructs a new Translator instance.
func NewTranslator[T comparable](srcfile *source.File, srcmap *source.Map[SExp]) *Translator[T] {
	return &Translator[T]{
		srcfile:   srcfile,
		lists:     make(map[string]ListRule[T]),
		oldSrcmap: srcmap,
		newSrcmap: source.NewSourceMap[T](srcmap.Source()),
	}
}

// SourceMap returns the source map for terms constructed by this translator.
func (p *Translator[T]) SourceMap() *source.Map[T] {
	return p.newSrcmap
}

// Translate an S-Expression into the structured representation T.
func (p *Translator[T]) Translate(sexp SExp) (T, []source.SyntaxError) {
	return translateSExp(p, sexp)
}

// AddListRule adds a raw list rule to this translator.
func (p *Translator[T]) AddListRule(name string, rule ListRule[T]) {
	p.lists[name] = rule
}

// AddRecursiveListRule adds a list rule whose arguments are translated
// recursively before the rule itself is applied.
func (p *Translator[T]) AddRecursiveListRule(name string, t RecursiveRule[T]) {
	p.lists[name] = func(l *List) (T, []source.SyntaxError) {
		var (
			empty  T
			errors []source.SyntaxError
			args   = make([]T, len(l.Elements)-1)
		)
		//
		for i, s := range l.Elements[1:] {
			var errs []source.SyntaxError
			args[i], errs = translateSExp(p, s)
			errors = append(errors, errs...)
		}
		// Don't apply constructor to broken arguments
		if len(errors) != 0 {
			return empty, errors
		}
		//
		term, err := t(l.Head(), args)
		if err != nil {
			return empty, p.SyntaxErrors(l, err.Error())
		}
		//
		return term, nil
	}
}

// AddSymbolRule adds a new symbol rule to this translator.
func (p *Translator[T]) AddSymbolRule(t SymbolRule[T]) {
	p.symbols = append(p.symbols, t)
}

// SyntaxError constructs a syntax error for a given S-Expression.
func (p *Translator[T]) SyntaxError(s SExp, msg string) *source.SyntaxError {
	return p.oldSrcmap.SyntaxError(s, msg)
}

// SyntaxErrors constructs a singleton array holding a syntax error for a given
// S-Expression.
func (p *Translator[T]) SyntaxErrors(s SExp, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.SyntaxError(s, msg)}
}

func translateSExp[T comparable](p *Translator[T], s SExp) (T, []source.SyntaxError) {
	var empty T
	//
	switch e := s.(type) {
	case *List:
		return translateSExpList(p, e)
	case *Symbol:
		for _, rule := range p.symbols {
			node, ok, err := rule(e.Value)
			//
			if ok && err != nil {
				return empty, p.SyntaxErrors(s, err.Error())
			} else if ok {
				map2sexp(p, node, s)
				return node, nil
			}
		}
		//
		return empty, p.SyntaxErrors(s, fmt.Sprintf("unknown symbol \"%s\"", e.Value))
	}
	//
	return empty, p.SyntaxErrors(s, fmt.Sprintf("invalid s-expression (%T)", s))
}

func translateSExpList[T comparable](p *Translator[T], l *List) (T, []source.SyntaxError) {
	var empty T
	// Sanity check this list makes sense
	if len(l.Elements) == 0 || l.Elements[0].AsSymbol() == nil {
		return empty, p.SyntaxErrors(l, "invalid list")
	}
	//
	t, ok := p.lists[l.Head()]
	if !ok {
		return empty, p.SyntaxErrors(l, fmt.Sprintf("unknown operator \"%s\"", l.Head()))
	}
	//
	node, errors := t(l)
	if len(errors) == 0 {
		map2sexp(p, node, l)
	}
	//
	return node, errors
}

// Record that a translated term originated from a given S-expression.
func map2sexp[T comparable](p *Translator[T], item T, sexp SExp) {
	if span, ok := p.oldSrcmap.Get(sexp); ok {
		p.newSrcmap.Put(item, span)
	}
}
