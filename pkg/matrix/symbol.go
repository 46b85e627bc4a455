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
	"regexp"
	"strings"

	"github.com/consensys/go-matexpr/pkg/expr"
	"github.com/consensys/go-matexpr/pkg/util/collection/hash"
	"github.com/consensys/go-matexpr/pkg/util/errwrap"
	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
)

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_']*$`)

// Symbol is an opaque named matrix with a given (possibly symbolic) shape,
// such as an m×n matrix A.  Nothing is known about its entries.
type Symbol struct {
	name string
	rows expr.Expr
	cols expr.Expr
	hash uint64
}

// NewSymbol constructs a named m×n matrix.  This fails if the name is not a
// valid identifier, or either dimension is a negative literal or a matrix.
func NewSymbol(name string, m, n expr.Expr) (*Symbol, error) {
	if !IsIdentifier(name) {
		return nil, errwrap.Wrapf(ErrInvalidName, "matrix \"%s\"", name)
	} else if IsMatrix(m) || IsMatrix(n) {
		return nil, errwrap.Wrapf(ErrInvalidDimension, "matrix %s of size %s×%s", name, m, n)
	} else if expr.IsNegativeLiteral(m) || expr.IsNegativeLiteral(n) {
		return nil, errwrap.Wrapf(ErrNegativeDimension, "matrix %s of size %s×%s", name, m, n)
	}
	//
	assertCanonical(IsCanonicalSymbol(name, m, n), "matrix", m, n)
	//
	return intern(&Symbol{name, m, n, hashOf(expr.MatrixSymbolKind, []expr.Expr{m, n}, hash.String(name))}), nil
}

// IsIdentifier checks whether a given string is a valid name for a symbol.
func IsIdentifier(name string) bool {
	return identifierRegex.MatchString(name)
}

// IsCanonicalSymbol checks whether a named matrix is in canonical form.  That
// is, it has a valid name and neither dimension is a negative literal.
func IsCanonicalSymbol(name string, m, n expr.Expr) bool {
	return IsIdentifier(name) && isDimension(m) && isDimension(n)
}

// Name returns the name of this matrix.
func (p *Symbol) Name() string {
	return p.name
}

// Kind implementation for Expr interface.
func (p *Symbol) Kind() expr.Kind {
	return expr.MatrixSymbolKind
}

// Hash implementation for Expr interface.
func (p *Symbol) Hash() uint64 {
	return p.hash
}

// Equals implementation for Expr interface.
func (p *Symbol) Equals(other expr.Expr) bool {
	if o, ok := other.(*Symbol); ok {
		return p == o || (p.name == o.name && equalArgs(p, o))
	}
	//
	return false
}

// Cmp implementation for Expr interface.  Named matrices are ordered by name,
// and then by shape.
func (p *Symbol) Cmp(other expr.Expr) int {
	if o, ok := other.(*Symbol); ok {
		if c := strings.Compare(p.name, o.name); c != 0 {
			return c
		}
	}
	//
	return compareArgs(p, other)
}

// Args implementation for Expr interface.
func (p *Symbol) Args() []expr.Expr {
	return []expr.Expr{p.rows, p.cols}
}

// Lisp implementation for Expr interface.
func (p *Symbol) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("matrix"), sexp.NewSymbol(p.name), p.rows.Lisp(), p.cols.Lisp()})
}

func (p *Symbol) String() string {
	return expr.String(p)
}

func (p *Symbol) shape() (expr.Expr, expr.Expr) {
	return p.rows, p.cols
}
