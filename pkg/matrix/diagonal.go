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
	"slices"

	"github.com/consensys/go-matexpr/pkg/expr"
	"github.com/consensys/go-matexpr/pkg/util/collection/array"
	"github.com/consensys/go-matexpr/pkg/util/errwrap"
	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
)

// Diagonal is a k×k matrix whose off-diagonal entries are zero, and whose
// diagonal entries are given explicitly.  The entries are positional, with the
// ith entry giving row i and column i.
type Diagonal struct {
	entries []expr.Expr
	// Dimension (i.e. number of entries) as a literal
	size *expr.Integer
	hash uint64
}

// NewDiagonal constructs a diagonal matrix from a given sequence of entries.
// Degenerate cases are represented more simply: no entries gives the 0×0 zero
// matrix; all entries 0 gives the k×k zero matrix; and all entries 1 gives the
// k×k identity matrix.  This fails only if some entry is itself a matrix.
func NewDiagonal(entries ...expr.Expr) (Expr, error) {
	for _, e := range entries {
		if IsMatrix(e) {
			return nil, errwrap.Wrapf(ErrInvalidEntry, "diagonal entry %s", e)
		}
	}
	//
	return newDiagonal(entries...), nil
}

func newDiagonal(entries ...expr.Expr) Expr {
	var k = expr.Int(int64(len(entries)))
	//
	switch {
	case len(entries) == 0:
		return newZero(k, k)
	case array.AllMatching(entries, isLiteral(0)):
		return newZero(k, k)
	case array.AllMatching(entries, isLiteral(1)):
		return newIdentity(k)
	}
	// Copy entries so the caller cannot modify them.
	entries = slices.Clone(entries)
	//
	assertCanonical(IsCanonicalDiagonal(entries), "diag", entries...)
	//
	return intern(&Diagonal{entries, k, hashOf(expr.DiagonalKind, entries)})
}

// IsCanonicalDiagonal checks whether a diagonal matrix with the given entries
// is in canonical form.  That is, there is at least one entry, the entries are
// not all 0 and not all 1, and no entry is itself a matrix.
func IsCanonicalDiagonal(entries []expr.Expr) bool {
	return len(entries) > 0 &&
		!array.AllMatching(entries, isLiteral(0)) &&
		!array.AllMatching(entries, isLiteral(1)) &&
		!array.ContainsMatching(entries, IsMatrix)
}

func isLiteral(value int64) array.Predicate[expr.Expr] {
	return func(e expr.Expr) bool {
		return expr.IsLiteral(e, value)
	}
}

// Entries returns the diagonal entries of this matrix.  The returned slice
// must not be modified.
func (p *Diagonal) Entries() []expr.Expr {
	return p.entries
}

// Kind implementation for Expr interface.
func (p *Diagonal) Kind() expr.Kind {
	return expr.DiagonalKind
}

// Hash implementation for Expr interface.
func (p *Diagonal) Hash() uint64 {
	return p.hash
}

// Equals implementation for Expr interface.
func (p *Diagonal) Equals(other expr.Expr) bool {
	return expr.Expr(p) == other || equalArgs(p, other)
}

// Cmp implementation for Expr interface.
func (p *Diagonal) Cmp(other expr.Expr) int {
	return compareArgs(p, other)
}

// Args implementation for Expr interface.
func (p *Diagonal) Args() []expr.Expr {
	return p.entries
}

// Lisp implementation for Expr interface.
func (p *Diagonal) Lisp() sexp.SExp {
	return lisp("diag", p.entries...)
}

func (p *Diagonal) String() string {
	return expr.String(p)
}

func (p *Diagonal) shape() (expr.Expr, expr.Expr) {
	return p.size, p.size
}
