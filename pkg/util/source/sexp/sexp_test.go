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
	"strconv"
	"testing"

	"github.com/consensys/go-matexpr/pkg/util/source"
	"github.com/stretchr/testify/require"
)

func Test_Parse_01(t *testing.T) {
	checkParse(t, "x", "x")
	checkParse(t, "()", "()")
	checkParse(t, "(a b)", "(a b)")
	checkParse(t, "  (a   (b c)\n d)  ", "(a (b c) d)")
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "; comment\n(a ; inner\n b ; trailing\n)", "(a b)")
}

func Test_Parse_03(t *testing.T) {
	checkParseError(t, "(a b", "unexpected end-of-file")
	checkParseError(t, ")", "unexpected end-of-list")
	checkParseError(t, "(a) b", "unexpected remainder")
	checkParseError(t, "", "unexpected end-of-file")
}

func Test_ParseAll_01(t *testing.T) {
	terms, _, err := ParseAll(source.NewFile("test", []byte("(a) b ; end\n(c d)")))
	//
	require.Nil(t, err)
	require.Len(t, terms, 3)
	require.Equal(t, "(a)", terms[0].String(false))
	require.Equal(t, "b", terms[1].String(false))
	require.Equal(t, "(c d)", terms[2].String(false))
}

func Test_SourceMap_01(t *testing.T) {
	sexp, srcmap, err := Parse(source.NewFile("test", []byte("(a (bb c))")))
	//
	require.Nil(t, err)
	//
	inner := sexp.AsList().Get(1)
	span, ok := srcmap.Get(inner)
	//
	require.True(t, ok)
	require.Equal(t, 3, span.Start())
	require.Equal(t, 9, span.End())
}

func Test_Translate_01(t *testing.T) {
	checkTranslate(t, "1", 1)
	checkTranslate(t, "(+ 1 2)", 3)
	checkTranslate(t, "(+ 1 (+ 2 3) 4)", 10)
	checkTranslate(t, "(neg (+ 1 2))", -3)
}

func Test_Translate_02(t *testing.T) {
	checkTranslateError(t, "x", "unknown symbol \"x\"")
	checkTranslateError(t, "(* 1 2)", "unknown operator \"*\"")
	checkTranslateError(t, "(neg 1 2)", "expected one argument")
	checkTranslateError(t, "((+ 1) 2)", "invalid list")
}

func Test_Format_01(t *testing.T) {
	var (
		f    = NewFormatter(12).Break("+")
		file = source.NewFile("test", []byte("(+ (f x) (g y) (h z))"))
	)
	//
	sexp, _, err := Parse(file)
	require.Nil(t, err)
	require.Equal(t, "(+\n  (f x)\n  (g y)\n  (h z))", f.Format(sexp))
	//
	require.Equal(t, "(+ (f x) (g y) (h z))", NewFormatter(80).Break("+").Format(sexp))
	require.Equal(t, "(+ (f x) (g y) (h z))", NewFormatter(12).Format(sexp))
}

// ============================================================================
// Helpers
// ============================================================================

func checkParse(t *testing.T, input string, expected string) {
	sexp, _, err := Parse(source.NewFile("test", []byte(input)))
	//
	require.Nil(t, err, "parsing %q", input)
	require.Equal(t, expected, sexp.String(false))
}

func checkParseError(t *testing.T, input string, msg string) {
	_, _, err := Parse(source.NewFile("test", []byte(input)))
	//
	require.NotNil(t, err, "parsing %q", input)
	require.Equal(t, msg, err.Message())
}

func checkTranslate(t *testing.T, input string, expected int) {
	actual, errs := translate(input)
	//
	require.Empty(t, errs, "translating %q", input)
	require.Equal(t, expected, actual)
}

func checkTranslateError(t *testing.T, input string, msg string) {
	_, errs := translate(input)
	//
	require.Len(t, errs, 1, "translating %q", input)
	require.Equal(t, msg, errs[0].Message())
}

func translate(input string) (int, []source.SyntaxError) {
	file := source.NewFile("test", []byte(input))
	sexp, srcmap, err := Parse(file)
	//
	if err != nil {
		return 0, []source.SyntaxError{*err}
	}
	//
	p := NewTranslator[int](file, srcmap)
	p.AddSymbolRule(func(s string) (int, bool, error) {
		n, err := strconv.Atoi(s)
		return n, err == nil, nil
	})
	p.AddRecursiveListRule("+", func(_ string, args []int) (int, error) {
		sum := 0
		for _, arg := range args {
			sum += arg
		}
		//
		return sum, nil
	})
	p.AddRecursiveListRule("neg", func(_ string, args []int) (int, error) {
		if len(args) != 1 {
			return 0, fmt.Errorf("expected one argument")
		}
		//
		return -args[0], nil
	})
	//
	return p.Translate(sexp)
}
