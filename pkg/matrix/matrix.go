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

// Package matrix provides symbolic matrix expressions whose shapes and entries
// may themselves be unevaluated scalar expressions, such as the n×n identity
// matrix for some unknown n.  Matrix expressions are immutable and are only
// ever constructed through factory functions (e.g. NewIdentity, NewAdd) which
// ensure every expression is in canonical form.  Thus, two expressions which
// are structurally equal have the same representation and, when hash-consing
// is enabled, are the same object.
package matrix

import (
	"fmt"

	"github.com/consensys/go-matexpr/pkg/expr"
	"github.com/consensys/go-matexpr/pkg/util/collection/array"
	"github.com/consensys/go-matexpr/pkg/util/collection/hash"
	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
)

// Expr is a matrix-valued expression.  This is a closed set of variants:
// Identity, Zero, Diagonal, Symbol and Add.
type Expr interface {
	expr.Expr
	// shape returns the number of rows and columns of this matrix.
	shape() (expr.Expr, expr.Expr)
}

// IsMatrix checks whether a given expression is matrix-valued.
func IsMatrix(e expr.Expr) bool {
	_, ok := e.(Expr)
	return ok
}

// hashOf computes the structural hash for an expression of a given kind with
// the given attributes.
func hashOf(kind expr.Kind, attrs []expr.Expr, extra ...uint64) uint64 {
	return hash.HashAll(hash.Mix(uint64(kind), extra...), attrs)
}

// equalArgs checks whether two expressions of the same kind have structurally
// equal attributes.
func equalArgs(lhs, rhs expr.Expr) bool {
	return lhs.Kind() == rhs.Kind() && lhs.Hash() == rhs.Hash() && hash.Equal(lhs.Args(), rhs.Args())
}

// compareArgs orders two expressions first by kind and then lexicographically
// by their attributes.
func compareArgs(lhs, rhs expr.Expr) int {
	if c := expr.CompareKinds(lhs, rhs); c != 0 {
		return c
	}
	//
	return array.CompareLex(lhs.Args(), rhs.Args())
}

// lisp constructs a list with a given head followed by the given arguments.
func lisp(head string, args ...expr.Expr) sexp.SExp {
	var list = sexp.NewList([]sexp.SExp{sexp.NewSymbol(head)})
	//
	for _, arg := range args {
		list.Append(arg.Lisp())
	}
	//
	return list
}

func toExprs[T expr.Expr](items []T) []expr.Expr {
	var exprs = make([]expr.Expr, len(items))
	//
	for i, item := range items {
		exprs[i] = item
	}
	//
	return exprs
}

// assertCanonical panics if canonical checking is enabled and a freshly
// constructed expression failed its canonical form predicate.  Such a failure
// indicates a bug in the factories, rather than a user error.
func assertCanonical(ok bool, variant string, args ...expr.Expr) {
	if !ok && canonicalChecks.Load() {
		panic(fmt.Sprintf("non-canonical %s %s", variant, lisp(variant, args...).String(false)))
	}
}
