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
	"runtime"
	"sync"
	"testing"

	"github.com/consensys/go-matexpr/pkg/expr"
	"github.com/stretchr/testify/require"
)

func Test_Config_01(t *testing.T) {
	require.Equal(t, DefaultConfig(), CurrentConfig())
	//
	defer Configure(DefaultConfig())
	//
	Configure(Config{HashConsing: false, CanonicalChecks: true})
	require.Zero(t, CacheSize())
	//
	a, _ := NewIdentity(expr.Int(4))
	b, _ := NewIdentity(expr.Int(4))
	// Equal, but not shared
	require.True(t, expr.Equal(a, b))
	require.Equal(t, a.Hash(), b.Hash())
	require.NotSame(t, a, b)
	require.Zero(t, CacheSize())
}

func Test_Config_02(t *testing.T) {
	a, _ := NewIdentity(expr.Int(4))
	b, _ := NewIdentity(expr.Int(4))
	//
	require.Same(t, a, b)
	require.NotZero(t, CacheSize())
	runtime.KeepAlive(a)
}

func Test_Config_03(t *testing.T) {
	const n = 10000
	//
	before := CacheSize()
	// Construct many distinct matrices, none of which are kept
	for i := range n {
		_, err := NewIdentity(expr.Int(int64(100000 + i)))
		require.NoError(t, err)
	}
	//
	runtime.GC()
	runtime.GC()
	// Released matrices are no longer counted
	require.Less(t, CacheSize(), before+n)
	// Sharing still applies to matrices which are held
	a, _ := NewIdentity(expr.Int(7))
	b, _ := NewIdentity(expr.Int(7))
	require.Same(t, a, b)
}

func Test_Canonical_01(t *testing.T) {
	defer Configure(DefaultConfig())
	//
	require.PanicsWithValue(t, "non-canonical zero (zero -1 2)", func() {
		assertCanonical(IsCanonicalZero(expr.Int(-1), expr.Int(2)), "zero", expr.Int(-1), expr.Int(2))
	})
	//
	Configure(Config{HashConsing: true, CanonicalChecks: false})
	//
	require.NotPanics(t, func() {
		assertCanonical(false, "zero", expr.Int(-1), expr.Int(2))
	})
}

func Test_Canonical_02(t *testing.T) {
	n := expr.NewSymbol("n")
	//
	require.False(t, IsCanonicalIdentity(expr.Int(0)))
	require.False(t, IsCanonicalIdentity(expr.Int(-2)))
	require.True(t, IsCanonicalIdentity(n))
	require.False(t, IsCanonicalZero(n, expr.Int(-1)))
	require.True(t, IsCanonicalZero(expr.Int(0), n))
	require.False(t, IsCanonicalDiagonal(nil))
	require.False(t, IsCanonicalDiagonal([]expr.Expr{expr.Int(1), expr.Int(1)}))
	require.False(t, IsCanonicalDiagonal([]expr.Expr{expr.Int(0)}))
	require.True(t, IsCanonicalDiagonal([]expr.Expr{expr.Int(0), n}))
	require.False(t, IsCanonicalSymbol("A B", n, n))
	require.True(t, IsCanonicalSymbol("A", n, n))
}

func Test_Canonical_03(t *testing.T) {
	var (
		n    = expr.NewSymbol("n")
		a, _ = NewSymbol("A", n, n)
		b, _ = NewSymbol("B", n, n)
		i    = newIdentity(expr.Int(2))
		d, _ = NewDiagonal(expr.Int(1), n)
	)
	//
	require.True(t, IsCanonicalAdd([]Expr{a, b}))
	require.True(t, IsCanonicalAdd([]Expr{a, a}))
	require.False(t, IsCanonicalAdd([]Expr{b, a}))
	require.False(t, IsCanonicalAdd([]Expr{a}))
	require.False(t, IsCanonicalAdd([]Expr{i, d}))
	require.True(t, IsCanonicalAdd([]Expr{newIdentity(expr.Int(5000)), newIdentity(expr.Int(5000))}))
	require.False(t, IsCanonicalAdd([]Expr{newIdentity(expr.Int(4096)), newIdentity(expr.Int(4096))}))
	require.False(t, IsCanonicalAdd([]Expr{a, newZero(n, n)}))
	require.True(t, IsCanonicalTrace(a))
	require.False(t, IsCanonicalTrace(i))
}

func Test_Concurrent_01(t *testing.T) {
	const n = 64
	//
	var (
		wg      sync.WaitGroup
		results = make([]Expr, n)
		errs    = make([]error, n)
	)
	//
	for i := range n {
		wg.Add(1)
		//
		go func(i int) {
			defer wg.Done()
			// Construct the same sum from different orderings
			x := expr.NewSymbol("x")
			a, _ := NewSymbol("A", expr.Int(3), expr.Int(3))
			d, _ := NewDiagonal(x, expr.Int(int64(i%2)), expr.Int(2))
			e, _ := NewDiagonal(expr.Neg(x), expr.Int(int64(1-i%2)), expr.Int(0))
			//
			if i%2 == 0 {
				results[i], errs[i] = NewAdd(a, d, e)
			} else {
				results[i], errs[i] = NewAdd(e, d, a)
			}
		}(i)
	}
	//
	wg.Wait()
	//
	for i := range n {
		require.NoError(t, errs[i])
		require.Equal(t, "(+ (matrix A 3 3) (diag 0 1 2))", results[i].String())
		require.Same(t, results[0], results[i])
	}
}
