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
	"github.com/consensys/go-matexpr/pkg/util/logical"
	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
)

// Add is the sum of two or more matrices of the same shape.  The terms of a
// sum are kept in canonical order, hence sums which differ only in the order of
// their terms have the same representation.
type Add struct {
	terms []Expr
	// Shape deduced from the terms, preferring literal dimensions.
	rows expr.Expr
	cols expr.Expr
	hash uint64
}

// NewAdd constructs the sum of zero or more matrices.  This fails when the
// terms are known to have different shapes.  Otherwise, the sum is normalised
// as follows:
//
//   - Nested sums are flattened.
//   - Zero matrices are removed.
//   - Diagonal matrices, and identity matrices of literal size, are merged into
//     a single diagonal matrix by summing their entries.
//   - The remaining terms are sorted.
//
// When no terms remain, the result is the zero matrix of the deduced shape
// (or 0×0 when no terms were given).  When one term remains, the result is that
// term.
func NewAdd(terms ...Expr) (Expr, error) {
	terms = flatten(terms)
	//
	if len(terms) == 0 {
		return newZero(expr.Int(0), expr.Int(0)), nil
	}
	//
	rows, cols, err := deduceShape(terms)
	if err != nil {
		return nil, err
	}
	// Drop additive identities
	terms = array.RemoveMatching(terms, isZeroMatrix)
	//
	terms = mergeDiagonals(terms)
	//
	slices.SortStableFunc(terms, func(l, r Expr) int {
		return expr.Compare(l, r)
	})
	//
	switch len(terms) {
	case 0:
		return newZero(rows, cols), nil
	case 1:
		return terms[0], nil
	}
	//
	assertCanonical(IsCanonicalAdd(terms), "+", toExprs(terms)...)
	//
	return intern(&Add{terms, rows, cols, hashOf(expr.MatrixAddKind, toExprs(terms))}), nil
}

// IsCanonicalAdd checks whether a sum of the given terms is in canonical form.
// That is, there are at least two terms, no term is a sum or a zero matrix, at
// most one term could be merged with another, and the terms are sorted.
func IsCanonicalAdd(terms []Expr) bool {
	var mergeable = 0
	//
	if len(terms) < 2 {
		return false
	}
	//
	for _, t := range terms {
		switch t.(type) {
		case *Add, *Zero:
			return false
		}
		//
		if isMergeable(t) {
			mergeable++
		}
	}
	//
	return mergeable <= 1 && slices.IsSortedFunc(terms, func(l, r Expr) int {
		return expr.Compare(l, r)
	})
}

// Terms returns the terms of this sum.  The returned slice must not be
// modified.
func (p *Add) Terms() []Expr {
	return p.terms
}

// Kind implementation for Expr interface.
func (p *Add) Kind() expr.Kind {
	return expr.MatrixAddKind
}

// Hash implementation for Expr interface.
func (p *Add) Hash() uint64 {
	return p.hash
}

// Equals implementation for Expr interface.
func (p *Add) Equals(other expr.Expr) bool {
	return expr.Expr(p) == other || equalArgs(p, other)
}

// Cmp implementation for Expr interface.
func (p *Add) Cmp(other expr.Expr) int {
	return compareArgs(p, other)
}

// Args implementation for Expr interface.
func (p *Add) Args() []expr.Expr {
	return toExprs(p.terms)
}

// Lisp implementation for Expr interface.
func (p *Add) Lisp() sexp.SExp {
	return lisp("+", toExprs(p.terms)...)
}

func (p *Add) String() string {
	return expr.String(p)
}

func (p *Add) shape() (expr.Expr, expr.Expr) {
	return p.rows, p.cols
}

// flatten replaces any nested sums by their terms, producing a fresh slice.
func flatten(terms []Expr) []Expr {
	var flat []Expr
	//
	for _, t := range terms {
		if add, ok := t.(*Add); ok {
			// Nested sums are themselves flat
			flat = append(flat, add.terms...)
		} else {
			flat = append(flat, t)
		}
	}
	//
	return flat
}

func isZeroMatrix(t Expr) bool {
	_, ok := t.(*Zero)
	return ok
}

// deduceShape determines the shape of a sum, failing if any two terms are
// known to differ in either dimension.  Literal dimensions are preferred.
func deduceShape(terms []Expr) (expr.Expr, expr.Expr, error) {
	var rows, cols = terms[0].shape()
	//
	for i, ith := range terms {
		r, c := ith.shape()
		//
		for _, jth := range terms[:i] {
			jr, jc := jth.shape()
			//
			if provablyDistinct(r, jr) || provablyDistinct(c, jc) {
				return nil, nil, errwrap.Wrapf(ErrShapeMismatch, "adding %s×%s and %s×%s", jr, jc, r, c)
			}
		}
		//
		rows, cols = preferLiteral(rows, r), preferLiteral(cols, c)
	}
	// A square term cannot conform with a provably non-square one.
	var square, nonSquare Expr
	//
	for _, t := range terms {
		switch IsSquare(t) {
		case logical.True:
			square = t
		case logical.False:
			nonSquare = t
		}
	}
	//
	if square != nil && nonSquare != nil {
		sr, sc := square.shape()
		nr, nc := nonSquare.shape()
		//
		return nil, nil, errwrap.Wrapf(ErrShapeMismatch, "adding %s×%s and %s×%s", sr, sc, nr, nc)
	}
	//
	return rows, cols, nil
}

func preferLiteral(current, candidate expr.Expr) expr.Expr {
	if _, ok := current.(*expr.Integer); !ok {
		if _, ok := candidate.(*expr.Integer); ok {
			return candidate
		}
	}
	//
	return current
}

// provablyDistinct checks whether two scalars are known to differ.  That is,
// their difference is a non-zero literal.
func provablyDistinct(lhs, rhs expr.Expr) bool {
	d, ok := expr.AsInteger(expr.Sub(lhs, rhs))
	return ok && d.Sign() != 0
}

// mergeDiagonals combines all diagonal matrices (and identity matrices of
// literal size) into a single diagonal by summing entries.  Shapes are
// already known to agree.
func mergeDiagonals(terms []Expr) []Expr {
	var (
		sums   []expr.Expr
		others []Expr
		count  int
	)
	//
	for _, t := range terms {
		if entries, ok := asDiagonalEntries(t); ok {
			sums = addEntries(sums, entries)
			count++
		} else {
			others = append(others, t)
		}
	}
	// Nothing to merge
	if count < 2 {
		return terms
	}
	//
	switch merged := newDiagonal(sums...).(type) {
	case *Zero:
		return others
	default:
		return append(others, merged)
	}
}

func addEntries(sums []expr.Expr, entries []expr.Expr) []expr.Expr {
	if sums == nil {
		return slices.Clone(entries)
	}
	//
	for i := range sums {
		sums[i] = expr.Add(sums[i], entries[i])
	}
	//
	return sums
}

// maxUnfoldedIdentity is the largest literal identity matrix which will be
// unfolded into explicit diagonal entries when merging.
const maxUnfoldedIdentity = 4096

// isMergeable checks whether a given matrix is diagonal with entries which can
// be listed explicitly.  That is, it is a diagonal matrix or an identity matrix
// of (small enough) literal size.
func isMergeable(m Expr) bool {
	switch m := m.(type) {
	case *Diagonal:
		return true
	case *Identity:
		k, ok := expr.AsInteger(m.size)
		return ok && k.IsInt64() && k.Int64() <= maxUnfoldedIdentity
	default:
		return false
	}
}

// asDiagonalEntries returns the explicit diagonal entries of a mergeable
// matrix.
func asDiagonalEntries(m Expr) ([]expr.Expr, bool) {
	if !isMergeable(m) {
		return nil, false
	}
	//
	switch m := m.(type) {
	case *Diagonal:
		return m.entries, true
	case *Identity:
		k, _ := expr.AsInteger(m.size)
		ones := make([]expr.Expr, k.Int64())
		//
		for i := range ones {
			ones[i] = expr.Int(1)
		}
		//
		return ones, true
	}
	//
	return nil, false
}
