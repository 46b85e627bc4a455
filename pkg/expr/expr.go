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

// Package expr provides the scalar expressions from which matrix shapes and
// entries are built.  These are exact integers, named symbols and polynomials
// over atoms (such as symbols, or the trace of a matrix).  All expressions are
// immutable and support a structural hash, equality and total order which are
// consistent with each other.
package expr

import (
	"cmp"

	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
)

// Kind identifies the variant of a given expression.  The numeric value of a
// kind determines its rank in the total order on expressions, and this rank is
// shared by scalar and matrix expressions alike.
type Kind uint8

const (
	// IntegerKind identifies exact integer literals.
	IntegerKind Kind = iota
	// SymbolKind identifies named scalar symbols.
	SymbolKind
	// PolynomialKind identifies polynomials over atoms.
	PolynomialKind
	// TraceKind identifies the trace of an irreducible matrix.
	TraceKind
	// MatrixSymbolKind identifies named matrices.
	MatrixSymbolKind
	// IdentityKind identifies identity matrices.
	IdentityKind
	// ZeroKind identifies zero matrices.
	ZeroKind
	// DiagonalKind identifies diagonal matrices.
	DiagonalKind
	// MatrixAddKind identifies sums of matrices.
	MatrixAddKind
)

var kindNames = []string{"integer", "symbol", "polynomial", "trace", "matrix", "identity", "zero", "diagonal",
	"matrix-add"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	//
	return "unknown"
}

// Expr is a symbolic expression.  Implementations must be immutable once
// constructed, and must ensure Equals, Hash and Cmp agree.  That is, equal
// expressions have equal hashes and compare as 0.
type Expr interface {
	// Kind returns the variant of this expression.
	Kind() Kind
	// Hash returns a structural hash of this expression.
	Hash() uint64
	// Equals checks whether this expression is structurally equal to another.
	Equals(Expr) bool
	// Cmp compares this expression against another in the total order on
	// expressions.  Expressions of different kinds are ordered by kind.
	Cmp(Expr) int
	// Args returns the immediate children of this expression.  The returned
	// slice must not be modified.
	Args() []Expr
	// Lisp returns this expression as an S-Expression.
	Lisp() sexp.SExp
	// String returns a textual representation of this expression.
	String() string
}

// Compare two expressions in the total order on expressions.
func Compare(lhs, rhs Expr) int {
	if lhs == rhs {
		return 0
	}
	//
	return lhs.Cmp(rhs)
}

// Equal checks whether two expressions are structurally equal.
func Equal(lhs, rhs Expr) bool {
	return lhs == rhs || lhs.Equals(rhs)
}

// CompareKinds compares two expressions by their kind alone.
func CompareKinds(lhs, rhs Expr) int {
	return cmp.Compare(lhs.Kind(), rhs.Kind())
}

// String returns a textual representation of a given S-Expression, as used by
// all expressions.
func String(e Expr) string {
	return e.Lisp().String(false)
}
