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
	"fmt"
	"math/big"

	"github.com/consensys/go-matexpr/pkg/util/collection/hash"
	"github.com/consensys/go-matexpr/pkg/util/poly"
	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
)

// Poly is a polynomial whose variables are atoms.  An atom is any expression
// which is neither an integer nor a polynomial, such as a symbol or the trace
// of a matrix.
type Poly = poly.ArrayPoly[Expr]

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// Polynomial is a sum of monomials over atoms, such as "2n+m+1" or "n*m".  A
// polynomial is only ever constructed when it cannot be represented more
// simply.  Specifically, a constant polynomial is always represented as an
// Integer, and a polynomial "1*x" is always represented by the atom x itself.
type Polynomial struct {
	poly *Poly
	hash uint64
}

// Poly returns (a copy of) the polynomial underlying this expression.
func (p *Polynomial) Poly() *Poly {
	return p.poly.Clone()
}

// Kind implementation for Expr interface.
func (p *Polynomial) Kind() Kind {
	return PolynomialKind
}

// Hash implementation for Expr interface.
func (p *Polynomial) Hash() uint64 {
	return p.hash
}

// Equals implementation for Expr interface.
func (p *Polynomial) Equals(other Expr) bool {
	if o, ok := other.(*Polynomial); ok {
		return p == o || (p.hash == o.hash && p.poly.Equal(o.poly))
	}
	//
	return false
}

// Cmp implementation for Expr interface.
func (p *Polynomial) Cmp(other Expr) int {
	if c := CompareKinds(p, other); c != 0 {
		return c
	}
	//
	return p.poly.Cmp(other.(*Polynomial).poly)
}

// Args returns the distinct atoms of this polynomial in sorted order.
func (p *Polynomial) Args() []Expr {
	return p.poly.Vars()
}

// Lisp implementation for Expr interface.
func (p *Polynomial) Lisp() sexp.SExp {
	return poly.Lisp(p.poly, func(e Expr) sexp.SExp { return e.Lisp() })
}

func (p *Polynomial) String() string {
	return String(p)
}

// IsCanonicalPolynomial checks that a given polynomial could not be
// represented more simply, and that every variable is an atom (i.e. neither an
// integer nor a polynomial).
func IsCanonicalPolynomial(p *Poly) bool {
	if _, ok := p.IsConstant(); ok {
		return false
	} else if p.Len() == 1 {
		if t := p.Term(0); t.Len() == 1 && t.Coefficient().Cmp(one) == 0 {
			return false
		}
	}
	//
	for _, v := range p.Vars() {
		switch v.(type) {
		case *Integer, *Polynomial:
			return false
		}
	}
	//
	return true
}

// Add returns the sum of zero or more expressions.
func Add(terms ...Expr) Expr {
	var sum = poly.Constant[Expr](zero)
	//
	for _, t := range terms {
		sum = sum.Add(toPoly(t))
	}
	//
	return fromPoly(sum)
}

// Sub returns the result of subtracting zero or more expressions from a given
// expression.
func Sub(lhs Expr, rhs ...Expr) Expr {
	var res = toPoly(lhs)
	//
	for _, t := range rhs {
		res = res.Sub(toPoly(t))
	}
	//
	return fromPoly(res)
}

// Neg returns the negation of a given expression.
func Neg(e Expr) Expr {
	return fromPoly(toPoly(e).Neg())
}

// Mul returns the product of zero or more expressions.
func Mul(factors ...Expr) Expr {
	var prod = poly.Constant[Expr](one)
	//
	for _, f := range factors {
		prod = prod.Mul(toPoly(f))
	}
	//
	return fromPoly(prod)
}

func toPoly(e Expr) *Poly {
	switch e := e.(type) {
	case *Integer:
		return poly.Constant[Expr](&e.value)
	case *Polynomial:
		return e.poly.Clone()
	default:
		return poly.NewArrayPoly(poly.NewMonomial(one, e))
	}
}

func fromPoly(p *Poly) Expr {
	if c, ok := p.IsConstant(); ok {
		return NewInteger(c)
	} else if p.Len() == 1 {
		if t := p.Term(0); t.Len() == 1 && t.Coefficient().Cmp(one) == 0 {
			return t.Nth(0)
		}
	}
	//
	if !IsCanonicalPolynomial(p) {
		panic(fmt.Sprintf("non-canonical polynomial %s", poly.Lisp(p, Expr.Lisp).String(false)))
	}
	//
	return &Polynomial{p, hash.Mix(uint64(PolynomialKind), p.Hash())}
}
