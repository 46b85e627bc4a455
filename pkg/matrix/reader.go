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
package matrix

import (
	"fmt"
	"math/big"
	"regexp"

	"github.com/consensys/go-matexpr/pkg/expr"
	"github.com/consensys/go-matexpr/pkg/util/collection/array"
	"github.com/consensys/go-matexpr/pkg/util/source"
	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
	"github.com/pkg/errors"
)

var integerRegex = regexp.MustCompile(`^-?[0-9]+$`)

// Parse reads a single expression (scalar or matrix) from a given string.
func Parse(input string) (expr.Expr, []source.SyntaxError) {
	var (
		file    = source.NewFile("<input>", []byte(input))
		s, m, e = sexp.Parse(file)
	)
	//
	if e != nil {
		return nil, []source.SyntaxError{*e}
	}
	//
	return NewReader(file, m).Read(s)
}

// ParseAll reads zero or more expressions from a given source file.
func ParseAll(file *source.File) ([]expr.Expr, *source.Map[expr.Expr], []source.SyntaxError) {
	var (
		exprs []expr.Expr
		errs  []source.SyntaxError
	)
	//
	terms, srcmap, err := sexp.ParseAll(file)
	if err != nil {
		return nil, nil, []source.SyntaxError{*err}
	}
	//
	reader := NewReader(file, srcmap)
	//
	for _, term := range terms {
		e, ierrs := reader.Read(term)
		exprs = append(exprs, e)
		errs = append(errs, ierrs...)
	}
	//
	if len(errs) > 0 {
		return nil, nil, errs
	}
	//
	return exprs, reader.translator.SourceMap(), nil
}

// Reader translates S-Expressions into expressions.  All expressions are
// constructed through the factories, and so are in canonical form.
type Reader struct {
	translator *sexp.Translator[expr.Expr]
}

// NewReader constructs a reader for the S-Expressions parsed from a given
// file.
func NewReader(file *source.File, srcmap *source.Map[sexp.SExp]) *Reader {
	p := sexp.NewTranslator[expr.Expr](file, srcmap)
	r := &Reader{p}
	// Symbols
	p.AddSymbolRule(integerRule)
	p.AddSymbolRule(symbolRule)
	// Matrices
	p.AddRecursiveListRule("identity", identityRule)
	p.AddRecursiveListRule("zero", zeroRule)
	p.AddRecursiveListRule("diag", diagRule)
	p.AddRecursiveListRule("trace", traceRule)
	p.AddListRule("matrix", r.matrixRule)
	// Sums and scalar arithmetic
	p.AddRecursiveListRule("+", addRule)
	p.AddRecursiveListRule("-", subRule)
	p.AddRecursiveListRule("*", mulRule)
	//
	return r
}

// Read translates a single S-Expression.
func (p *Reader) Read(s sexp.SExp) (expr.Expr, []source.SyntaxError) {
	return p.translator.Translate(s)
}

// SourceMap returns the spans of all expressions read so far.
func (p *Reader) SourceMap() *source.Map[expr.Expr] {
	return p.translator.SourceMap()
}

func integerRule(symbol string) (expr.Expr, bool, error) {
	var value big.Int
	//
	if !integerRegex.MatchString(symbol) {
		return nil, false, nil
	} else if _, ok := value.SetString(symbol, 10); !ok {
		return nil, true, fmt.Errorf("invalid integer \"%s\"", symbol)
	}
	//
	return expr.NewInteger(&value), true, nil
}

func symbolRule(symbol string) (expr.Expr, bool, error) {
	if !IsIdentifier(symbol) {
		return nil, true, fmt.Errorf("invalid identifier \"%s\"", symbol)
	}
	//
	return expr.NewSymbol(symbol), true, nil
}

func identityRule(_ string, args []expr.Expr) (expr.Expr, error) {
	if err := checkArgs(args, 1, false); err != nil {
		return nil, err
	}
	//
	return NewIdentity(args[0])
}

func zeroRule(_ string, args []expr.Expr) (expr.Expr, error) {
	if err := checkArgs(args, 2, false); err != nil {
		return nil, err
	}
	//
	z, err := NewZero(args[0], args[1])
	if err != nil {
		return nil, err
	}
	//
	return z, nil
}

func diagRule(_ string, args []expr.Expr) (expr.Expr, error) {
	if err := checkArgs(args, -1, false); err != nil {
		return nil, err
	}
	//
	return NewDiagonal(args...)
}

func traceRule(_ string, args []expr.Expr) (expr.Expr, error) {
	if err := checkArgs(args, 1, true); err != nil {
		return nil, err
	}
	//
	return NewTrace(args[0].(Expr)), nil
}

func (p *Reader) matrixRule(l *sexp.List) (expr.Expr, []source.SyntaxError) {
	if l.Len() != 4 || l.Get(1).AsSymbol() == nil {
		return nil, p.translator.SyntaxErrors(l, "expected (matrix NAME rows cols)")
	}
	//
	var dims [2]expr.Expr
	//
	for i := range dims {
		var errs []source.SyntaxError
		//
		if dims[i], errs = p.translator.Translate(l.Get(i + 2)); len(errs) > 0 {
			return nil, errs
		} else if IsMatrix(dims[i]) {
			return nil, p.translator.SyntaxErrors(l.Get(i+2), "expected scalar")
		}
	}
	//
	m, err := NewSymbol(l.Get(1).AsSymbol().Value, dims[0], dims[1])
	if err != nil {
		return nil, p.translator.SyntaxErrors(l, err.Error())
	}
	//
	return m, nil
}

func addRule(_ string, args []expr.Expr) (expr.Expr, error) {
	switch {
	case len(args) > 0 && array.AllMatching(args, IsMatrix):
		terms := make([]Expr, len(args))
		//
		for i, arg := range args {
			terms[i] = arg.(Expr)
		}
		//
		return NewAdd(terms...)
	case array.ContainsMatching(args, IsMatrix):
		return nil, errors.New("cannot mix matrices and scalars")
	default:
		return expr.Add(args...), nil
	}
}

func subRule(_ string, args []expr.Expr) (expr.Expr, error) {
	if err := checkArgs(args, -1, false); err != nil {
		return nil, err
	} else if len(args) == 0 {
		return nil, errors.New("expected at least one argument")
	} else if len(args) == 1 {
		return expr.Neg(args[0]), nil
	}
	//
	return expr.Sub(args[0], args[1:]...), nil
}

func mulRule(_ string, args []expr.Expr) (expr.Expr, error) {
	if err := checkArgs(args, -1, false); err != nil {
		return nil, err
	}
	//
	return expr.Mul(args...), nil
}

// checkArgs checks the number of arguments (unless n is negative), and that
// every argument is a matrix or that none are.
func checkArgs(args []expr.Expr, n int, matrices bool) error {
	if n >= 0 && len(args) != n {
		return fmt.Errorf("expected %d argument(s), found %d", n, len(args))
	}
	//
	for _, arg := range args {
		switch {
		case matrices && !IsMatrix(arg):
			return fmt.Errorf("expected matrix, found %s", arg)
		case !matrices && IsMatrix(arg):
			return fmt.Errorf("expected scalar, found %s", arg)
		}
	}
	//
	return nil
}
