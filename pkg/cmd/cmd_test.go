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
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-matexpr/pkg/expr"
	"github.com/stretchr/testify/require"
)

func Test_Simplify_01(t *testing.T) {
	checkSimplify(t, 80, "(+ (diag 1 2) (diag 3 4))", "(diag 4 6)\n")
}

func Test_Simplify_02(t *testing.T) {
	checkSimplify(t, 80, "(identity 0) (zero n 2)", "(zero 0 0)\n(zero n 2)\n")
}

func Test_Simplify_03(t *testing.T) {
	checkSimplify(t, 20, "(+ (matrix B n n) (matrix A n n))",
		"(+\n  (matrix A n n)\n  (matrix B n n))\n")
}

func Test_Simplify_04(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "input.lisp")
		out      bytes.Buffer
	)
	//
	require.NoError(t, os.WriteFile(filename, []byte("; sum\n(+ (zero 2 2) (identity 2))\n"), 0600))
	//
	exprs, err := readExprs(&out, []string{filename}, []string{"(trace (identity 3))"})
	require.NoError(t, err)
	printSimplified(&out, exprs, 80)
	require.Equal(t, "(identity 2)\n3\n", out.String())
}

func Test_SyntaxError_01(t *testing.T) {
	var out bytes.Buffer
	//
	_, err := readExprs(&out, nil, []string{"(identity)"})
	require.Error(t, err)
	require.Equal(t, "<arg1>:1:1-11 expected 1 argument(s), found 0\n\n(identity)\n^^^^^^^^^^\n", out.String())
}

func Test_SyntaxError_02(t *testing.T) {
	var out bytes.Buffer
	//
	_, err := readExprs(&out, nil, []string{"(identity)", "(zero 1)"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 errors occurred")
}

func Test_Props_01(t *testing.T) {
	checkProps(t, expr.NewAssumptions(), "(identity n)",
		`(identity n)
   size       n×n
   zero       indeterminate
   real       true
   square     true
   diagonal   true
   symmetric  true
   lower      true
   upper      true
   toeplitz   true
`)
}

func Test_Props_02(t *testing.T) {
	checkProps(t, expr.NewAssumptions().AssumePositive("n"), "n",
		`n
   zero       false
   real       true
`)
}

func Test_Assumptions_01(t *testing.T) {
	var (
		dir      = t.TempDir()
		filename = filepath.Join(dir, "assume.yaml")
	)
	//
	require.NoError(t, os.WriteFile(filename, []byte("real: [x]\npositive: [n]\n"), 0600))
	//
	assumptions, err := readAssumptions(filename)
	require.NoError(t, err)
	require.Equal(t, []string{"n", "x"}, assumptions.Real())
	require.Equal(t, []string{"n"}, assumptions.Positive())
	//
	assumptions, err = readAssumptions("")
	require.NoError(t, err)
	require.Empty(t, assumptions.Real())
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkSimplify(t *testing.T, width uint, input string, expected string) {
	var out bytes.Buffer
	//
	exprs, err := readExprs(&out, nil, []string{input})
	require.NoError(t, err)
	//
	printSimplified(&out, exprs, width)
	require.Equal(t, expected, out.String())
}

func checkProps(t *testing.T, assumptions *expr.Assumptions, input string, expected string) {
	var out bytes.Buffer
	//
	exprs, err := readExprs(&out, nil, []string{input})
	require.NoError(t, err)
	//
	printProperties(&out, exprs, assumptions)
	require.Equal(t, expected, out.String())
}
