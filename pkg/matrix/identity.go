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

// Identity is the n×n identity matrix, where n may be symbolic.
type Identity struct {
	size expr.Expr
	hash uint64
}

// NewIdentity constructs the n×n identity matrix.  This fails if n is a
// negative literal, or is a matrix.  Since the 0×0 identity matrix has no entries, it is
// represented by the 0×0 zero matrix.
func NewIdentity(n expr.Expr) (Expr, error) {
	if IsMatrix(n) {
		return nil, errwrap.Wrapf(ErrInvalidDimension, "identity of size %s", n)
	} else if expr.IsNegativeLiteral(n) {
		return nil, errwrap.Wrapf(ErrNegativeDimension, "identity of size %s", n)
	}
	//
	return newIdentity(n), nil
}

func newIdentity(n expr.Expr) Expr {
	if expr.IsLiteral(n, 0) {
		return newZero(n, n)
	}
	//
	assertCanonical(IsCanonicalIdentity(n), "identity", n)
	//
	return intern(&Identity{n, hashOf(expr.IdentityKind, []expr.Expr{n})})
}

// IsCanonicalIdentity checks whether an identity matrix of a given size is in
// canonical form.  That is, its size is not an integer literal <= 0.
func IsCanonicalIdentity(n expr.Expr) bool {
	if i, ok := n.(*expr.Integer); ok {
		return i.Sign() > 0
	}
	//
	return !IsMatrix(n)
}

// Size returns the number of rows (equivalently columns) of this matrix.
func (p *Identity) Size() expr.Expr {
	return p.size
}

// Kind implementation for Expr interface.
func (p *Identity) Kind() expr.Kind {
	return expr.IdentityKind
}

// Hash implementation for Expr interface.
func (p *Identity) Hash() uint64 {
	return p.hash
}

// Equals implementation for Expr interface.
func (p *Identity) Equals(other expr.Expr) bool {
	return expr.Expr(p) == other || equalArgs(p, other)
}

// Cmp implementation for Expr interface.
func (p *Identity) Cmp(other expr.Expr) int {
	return compareArgs(p, other)
}

// Args implementation for Expr interface.
func (p *Identity) Args() []expr.Expr {
	return []expr.Expr{p.size}
}

// Lisp implementation for Expr interface.
func (p *Identity) Lisp() sexp.SExp {
	return lisp("identity", p.size)
}

func (p *Identity) String() string {
	return expr.String(p)
}

func (p *Identity) shape() (expr.Expr, expr.Expr) {
	return p.size, p.size
}
