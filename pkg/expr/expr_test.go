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
package expr

import (
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/consensys/go-matexpr/pkg/util/logical"
	"github.com/consensys/go-matexpr/pkg/util/poly"
	"github.com/stretchr/testify/require"
)

var (
	n = NewSymbol("n")
	m = NewSymbol("m")
	x = NewSymbol("x")
)

func Test_Integer_01(t *testing.T) {
	checkEqual(t, Int(3), Int(3))
	checkNotEqual(t, Int(3), Int(-3))
	require.True(t, IsLiteral(Int(7), 7))
	require.False(t, IsLiteral(n, 7))
	require.True(t, IsNegativeLiteral(Int(-1)))
	require.False(t, IsNegativeLiteral(Int(0)))
}

func Test_Symbol_01(t *testing.T) {
	checkEqual(t, n, NewSymbol("n"))
	checkNotEqual(t, n, m)
	require.Less(t, Compare(m, n), 0)
}

func Test_Kinds_01(t *testing.T) {
	// integers precede symbols, which precede polynomials.
	exprs := []Expr{Add(n, m), n, Int(100), Int(-5), m}
	slices.SortFunc(exprs, Compare)
	//
	require.Equal(t, "-5 100 m n (+ m n)", join(exprs))
}

func Test_Add_01(t *testing.T) {
	checkEqual(t, Add(), Int(0))
	checkEqual(t, Add(Int(1), Int(2)), Int(3))
	checkEqual(t, Add(n), n)
	checkEqual(t, Add(n, Int(0)), n)
	checkEqual(t, Add(n, m), Add(m, n))
	checkEqual(t, Add(n, n), Mul(Int(2), n))
}

func Test_Add_02(t *testing.T) {
	// Cancellation collapses back to simpler forms.
	checkEqual(t, Sub(Add(n, m), m), n)
	checkEqual(t, Sub(Add(n, Int(1)), n), Int(1))
	checkEqual(t, Add(n, Neg(n)), Int(0))
}

func Test_Mul_01(t *testing.T) {
	checkEqual(t, Mul(), Int(1))
	checkEqual(t, Mul(Int(2), Int(3)), Int(6))
	checkEqual(t, Mul(n, Int(0)), Int(0))
	checkEqual(t, Mul(n, m), Mul(m, n))
	// (n+1)*(n-1) == n*n-1
	checkEqual(t, Mul(Add(n, Int(1)), Sub(n, Int(1))), Sub(Mul(n, n), Int(1)))
}

func Test_Polynomial_01(t *testing.T) {
	var two = big.NewInt(2)
	//
	require.True(t, IsCanonicalPolynomial(poly.NewArrayPoly(poly.NewMonomial[Expr](two, x))))
	require.True(t, IsCanonicalPolynomial(poly.NewArrayPoly(poly.NewMonomial[Expr](one, x), poly.NewMonomial[Expr](one, n))))
	require.False(t, IsCanonicalPolynomial(poly.Constant[Expr](two)))
	require.False(t, IsCanonicalPolynomial(poly.NewArrayPoly(poly.NewMonomial[Expr](one, x))))
	require.False(t, IsCanonicalPolynomial(poly.NewArrayPoly(poly.NewMonomial[Expr](two, Int(3)))))
	// Every constructed polynomial is canonical
	for _, e := range []Expr{Add(x, n), Mul(Int(2), x), Sub(Mul(x, n), Int(1))} {
		p, ok := e.(*Polynomial)
		require.True(t, ok, "%s", e)
		require.True(t, IsCanonicalPolynomial(p.poly))
	}
}

func Test_String_01(t *testing.T) {
	require.Equal(t, "(+ 1 n)", Add(n, Int(1)).String())
	require.Equal(t, "(* 2 n)", Add(n, n).String())
	require.Equal(t, "(+ (* -1 m) n)", Sub(n, m).String())
	require.Equal(t, "(* m n)", Mul(n, m).String())
}

func Test_IsZero_01(t *testing.T) {
	checkTribool(t, IsZero(Int(0)), logical.True)
	checkTribool(t, IsZero(Int(2)), logical.False)
	checkTribool(t, IsZero(n), logical.Indeterminate)
	checkTribool(t, IsZero(Sub(n, m)), logical.Indeterminate)
}

func Test_IsZero_02(t *testing.T) {
	assume := NewAssumptions().AssumePositive("n", "m")
	//
	checkTribool(t, IsZeroUnder(n, assume), logical.False)
	checkTribool(t, IsZeroUnder(Add(n, Mul(m, n)), assume), logical.False)
	checkTribool(t, IsZeroUnder(Sub(n, m), assume), logical.Indeterminate)
	checkTribool(t, IsZeroUnder(x, assume), logical.Indeterminate)
}

func Test_IsReal_01(t *testing.T) {
	assume := NewAssumptions().AssumeReal("x").AssumePositive("n")
	//
	checkTribool(t, IsRealUnder(Int(-4), nil), logical.True)
	checkTribool(t, IsRealUnder(x, nil), logical.Indeterminate)
	checkTribool(t, IsRealUnder(x, assume), logical.True)
	checkTribool(t, IsRealUnder(n, assume), logical.True)
	checkTribool(t, IsRealUnder(Add(x, n), assume), logical.True)
	checkTribool(t, IsRealUnder(Add(x, m), assume), logical.Indeterminate)
}

func Test_Assumptions_01(t *testing.T) {
	assume, err := ParseAssumptions([]byte("real: [x, y]\npositive: [n]\n"))
	//
	require.NoError(t, err)
	require.Equal(t, []string{"n", "x", "y"}, assume.Real())
	require.Equal(t, []string{"n"}, assume.Positive())
	require.True(t, assume.IsPositive("n"))
	require.False(t, assume.IsPositive("x"))
}

func Test_Assumptions_02(t *testing.T) {
	_, err := ParseAssumptions([]byte("imaginary: [z]\n"))
	require.Error(t, err)
	//
	assume, err := ParseAssumptions(nil)
	require.NoError(t, err)
	require.Empty(t, assume.Real())
	// nil assumptions know nothing
	var none *Assumptions
	require.False(t, none.IsReal("x"))
}

func Test_Assumptions_03(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "assume.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("positive: [n, m]\n"), 0o600))
	//
	assume, err := LoadAssumptions(filename)
	require.NoError(t, err)
	require.Equal(t, []string{"m", "n"}, assume.Positive())
	//
	_, err = LoadAssumptions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// ============================================================================
// Helpers
// ============================================================================

func checkEqual(t *testing.T, lhs, rhs Expr) {
	t.Helper()
	require.True(t, Equal(lhs, rhs), "%s != %s", lhs, rhs)
	require.Equal(t, lhs.Hash(), rhs.Hash(), "hash(%s) != hash(%s)", lhs, rhs)
	require.Zero(t, Compare(lhs, rhs), "compare(%s,%s) != 0", lhs, rhs)
}

func checkNotEqual(t *testing.T, lhs, rhs Expr) {
	t.Helper()
	require.False(t, Equal(lhs, rhs), "%s == %s", lhs, rhs)
	require.NotZero(t, Compare(lhs, rhs))
	require.Equal(t, Compare(lhs, rhs), -Compare(rhs, lhs))
}

func checkTribool(t *testing.T, actual, expected logical.Tribool) {
	t.Helper()
	require.Equal(t, expected, actual, "expected %s, got %s", expected, actual)
}

func join(exprs []Expr) string {
	var s string
	//
	for i, e := range exprs {
		if i != 0 {
			s += " "
		}
		//
		s += e.String()
	}
	//
	return s
}
