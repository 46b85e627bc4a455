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
	"github.com/consensys/go-matexpr/pkg/expr"
	"github.com/consensys/go-matexpr/pkg/util/errwrap"
	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
)

// Zero is the m×n matrix whose entries are all zero.  This is the additive
// identity for matrices of that shape.
type Zero struct {
	rows expr.Expr
	cols expr.Expr
	hash uint64
}

// NewZero constructs the m×n zero matrix.  This fails if either dimension is a
// negative literal, or is a matrix.
func NewZero(m, n expr.Expr) (*Zero, error) {
	if IsMatrix(m) || IsMatrix(n) {
		return nil, errwrap.Wrapf(ErrInvalidDimension, "zero of size %s×%s", m, n)
	} else if expr.IsNegativeLiteral(m) || expr.IsNegativeLiteral(n) {
		return nil, errwrap.Wrapf(ErrNegativeDimension, "zero of size %s×%s", m, n)
	}
	//
	return newZero(m, n), nil
}

func newZero(m, n expr.Expr) *Zero {
	assertCanonical(IsCanonicalZero(m, n), "zero", m, n)
	//
	return intern(&Zero{m, n, hashOf(expr.ZeroKind, []expr.Expr{m, n})})
}

// IsCanonicalZero checks whether a zero matrix of the given shape is in
// canonical form.  That is, neither dimension is a negative literal.
func IsCanonicalZero(m, n expr.Expr) bool {
	return isDimension(m) && isDimension(n)
}

func isDimension(e expr.Expr) bool {
	return !expr.IsNegativeLiteral(e) && !IsMatrix(e)
}

// Rows returns the number of rows of this matrix.
func (p *Zero) Rows() expr.Expr {
	return p.rows
}

// Cols returns the number of columns of this matrix.
func (p *Zero) Cols() expr.Expr {
	return p.cols
}

// Kind implementation for Expr interface.
func (p *Zero) Kind() expr.Kind {
	return expr.ZeroKind
}

// Hash implementation for Expr interface.
func (p *Zero) Hash() uint64 {
	return p.hash
}

// Equals implementation for Expr interface.
func (p *Zero) Equals(other expr.Expr) bool {
	return expr.Expr(p) == other || equalArgs(p, other)
}

// Cmp implementation for Expr interface.
func (p *Zero) Cmp(other expr.Expr) int {
	return compareArgs(p, other)
}

// Args implementation for Expr interface.
func (p *Zero) Args() []expr.Expr {
	return []expr.Expr{p.rows, p.cols}
}

// Lisp implementation for Expr interface.
func (p *Zero) Lisp() sexp.SExp {
	return lisp("zero", p.rows, p.cols)
}

func (p *Zero) String() string {
	return expr.String(p)
}

func (p *Zero) shape() (expr.Expr, expr.Expr) {
	return p.rows, p.cols
}
