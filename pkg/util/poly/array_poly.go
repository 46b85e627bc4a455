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
package poly

import (
	"math/big"
	"slices"
	"sort"

	"github.com/consensys/go-matexpr/pkg/util/collection/array"
	"github.com/consensys/go-matexpr/pkg/util/collection/hash"
)

// ArrayPoly is the simpliest polynomial implementation, consisting of an array
// of monomials.  This array is maintained in a canonical form: monomials are
// sorted by their variables; no two monomials have the same variables; and no
// monomial has a zero coefficient.  As such, two polynomials are equivalent if
// and only if they are structurally equal.  Observe that an unitialised
// ArrayPoly variable corresponds with zero.
type ArrayPoly[S Variable[S]] struct {
	terms []Monomial[S]
}

// NewArrayPoly constructs a polynomial from zero or more terms, which need not
// be in canonical form.
func NewArrayPoly[S Variable[S]](terms ...Monomial[S]) *ArrayPoly[S] {
	var res ArrayPoly[S]
	//
	for _, t := range terms {
		res.AddTerm(t)
	}
	//
	return &res
}

// Constant constructs a polynomial representing a given constant.
func Constant[S Variable[S]](c *big.Int) *ArrayPoly[S] {
	return NewArrayPoly(NewMonomial[S](c))
}

// Len returns the number of terms in this polynomial.
func (p *ArrayPoly[S]) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term in this polynomial.
func (p *ArrayPoly[S]) Term(ith uint) Monomial[S] {
	return p.terms[ith]
}

// Clone performs a deep copy of this polynomial
func (p *ArrayPoly[S]) Clone() *ArrayPoly[S] {
	nterms := make([]Monomial[S], len(p.terms))
	//
	for i := range nterms {
		nterms[i] = p.terms[i].Clone()
	}
	//
	return &ArrayPoly[S]{nterms}
}

// IsZero checks whether this polynomial is zero.  Since polynomials are kept
// in canonical form, this is the case only when there are no terms.
func (p *ArrayPoly[S]) IsZero() bool {
	return len(p.terms) == 0
}

// IsConstant checks whether this polynomial has no variables.  If so, the
// constant is returned.
func (p *ArrayPoly[S]) IsConstant() (*big.Int, bool) {
	switch {
	case len(p.terms) == 0:
		return big.NewInt(0), true
	case len(p.terms) == 1 && p.terms[0].IsConstant():
		return p.terms[0].Coefficient(), true
	default:
		return nil, false
	}
}

// Add another polynomial onto this polynomial, producing a fresh polynomial.
func (p *ArrayPoly[S]) Add(other *ArrayPoly[S]) *ArrayPoly[S] {
	var res = p.Clone()
	//
	for _, t := range other.terms {
		res.AddTerm(t)
	}
	//
	return res
}

// Sub another polynomial from this polynomial, producing a fresh polynomial.
func (p *ArrayPoly[S]) Sub(other *ArrayPoly[S]) *ArrayPoly[S] {
	var res = p.Clone()
	//
	for _, t := range other.terms {
		res.AddTerm(t.Neg())
	}
	//
	return res
}

// Neg negates this polynomial, producing a fresh polynomial.
func (p *ArrayPoly[S]) Neg() *ArrayPoly[S] {
	var res = p.Clone()
	//
	for i, t := range res.terms {
		res.terms[i] = t.Neg()
	}
	//
	return res
}

// Mul this polynomial by another polynomial, producing a fresh polynomial.
func (p *ArrayPoly[S]) Mul(other *ArrayPoly[S]) *ArrayPoly[S] {
	var res ArrayPoly[S]
	//
	for _, ith := range p.terms {
		for _, jth := range other.terms {
			res.AddTerm(ith.Mul(jth))
		}
	}
	//
	return &res
}

// MulScalar multiplies this polynomial by a constant, producing a fresh
// polynomial.
func (p *ArrayPoly[S]) MulScalar(scalar *big.Int) *ArrayPoly[S] {
	var res ArrayPoly[S]
	//
	if scalar.Sign() == 0 {
		return &res
	}
	//
	for _, t := range p.terms {
		res.terms = append(res.terms, t.MulScalar(scalar))
	}
	//
	return &res
}

// AddTerm adds a single term into this polynomial, updating it in place and
// maintaining the canonical form.
func (p *ArrayPoly[S]) AddTerm(other Monomial[S]) {
	if other.IsZero() {
		return
	}
	// Find position where term either exists, or should exist.
	i := sort.Search(len(p.terms), func(i int) bool {
		return array.Compare(p.terms[i].vars, other.vars) >= 0
	})
	//
	if i < len(p.terms) && p.terms[i].Matches(other) {
		var sum big.Int
		//
		sum.Add(&p.terms[i].coefficient, &other.coefficient)
		//
		if sum.Sign() == 0 {
			p.terms = slices.Delete(p.terms, i, i+1)
		} else {
			p.terms[i] = Monomial[S]{sum, p.terms[i].vars}
		}
		//
		return
	}
	// Insert fresh term
	p.terms = slices.Insert(p.terms, i, other.Clone())
}

// Equal checks whether two polynomials are equivalent.
func (p *ArrayPoly[S]) Equal(other *ArrayPoly[S]) bool {
	if len(p.terms) != len(other.terms) {
		return false
	}
	//
	for i := range p.terms {
		if !p.terms[i].Equal(other.terms[i]) {
			return false
		}
	}
	//
	return true
}

// Cmp compares two polynomials lexicographically by their terms.
func (p *ArrayPoly[S]) Cmp(other *ArrayPoly[S]) int {
	return array.CompareLex(p.terms, other.terms)
}

// Hash returns a hashcode consistent with Equal.
func (p *ArrayPoly[S]) Hash() uint64 {
	var h = hash.Mix(uint64(len(p.terms)))
	//
	for _, t := range p.terms {
		h = hash.Mix(h, t.Hash())
	}
	//
	return h
}

// Vars returns the distinct variables used within this polynomial, in sorted
// order.
func (p *ArrayPoly[S]) Vars() []S {
	var vars []S
	//
	for _, t := range p.terms {
		vars = array.MergeSorted(vars, t.vars)
	}
	//
	return slices.CompactFunc(vars, func(l, r S) bool {
		return l.Cmp(r) == 0
	})
}
