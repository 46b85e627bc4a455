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
	"bytes"
	"math/big"
	"slices"

	"github.com/consensys/go-matexpr/pkg/util/collection/array"
	"github.com/consensys/go-matexpr/pkg/util/collection/hash"
)

// Variable captures what is required of the variables over which polynomials
// are formed.  Specifically, variables must be totally ordered (so monomials
// have a canonical ordering of their variables) and hashable (so polynomials
// can be hashed).
type Variable[S any] interface {
	array.Comparable[S]
	hash.Hasher[S]
}

// Monomial represents a monomial within an array polynomial.  A monomial is
// immutable once constructed.  Repeated variables represent powers, hence
// x*x*y is x²y.
type Monomial[S Variable[S]] struct {
	coefficient big.Int
	vars        []S
}

// NewMonomial constructs a new array term with a given coefficient and zero or
// more variables.
func NewMonomial[S Variable[S]](coefficient *big.Int, vars ...S) Monomial[S] {
	var res Monomial[S]
	// Clone incoming variables
	res.vars = slices.Clone(vars)
	// Sort incoming variables
	array.Sort(res.vars)
	//
	res.coefficient.Set(coefficient)
	//
	return res
}

// Clone an array term
func (p Monomial[S]) Clone() Monomial[S] {
	var res Monomial[S]
	// Copy variables
	res.vars = slices.Clone(p.vars)
	// Copy coefficient
	res.coefficient.Set(&p.coefficient)
	//
	return res
}

// Coefficient returns (a copy of) the coefficient of this term.
func (p Monomial[S]) Coefficient() *big.Int {
	var c big.Int
	return c.Set(&p.coefficient)
}

// Cmp implementation for the Comparable interface
func (p Monomial[S]) Cmp(other Monomial[S]) int {
	// Compare variables first.  Observe this is critical to ensuring correct
	// operation of the ArrayPoly.  That's because we have an invariant which
	// says we can change the coefficient of any moninial without changing its
	// position in the sorted set of monomials.
	if c := array.Compare(p.vars, other.vars); c != 0 {
		return c
	}
	//
	return p.coefficient.Cmp(&other.coefficient)
}

// Equal performs structural equality between two mononomials.  That is, they
// are consider the same provide they have identical structure.
func (p Monomial[S]) Equal(other Monomial[S]) bool {
	return p.coefficient.Cmp(&other.coefficient) == 0 && p.Matches(other)
}

// Hash returns a hashcode for this monomial which is consistent with Equal.
func (p Monomial[S]) Hash() uint64 {
	return hash.HashAll(coefficientHash(&p.coefficient), p.vars)
}

// IsZero checks whether or not this monomial is zero.  Or, put another way,
// whether or not the coefficient of this monomial is zero.
func (p Monomial[S]) IsZero() bool {
	return p.coefficient.BitLen() == 0
}

// IsConstant checks whether or not this monomial has any variables.
func (p Monomial[S]) IsConstant() bool {
	return len(p.vars) == 0
}

// Len returns the number of variables in this polynomial term.
func (p Monomial[S]) Len() uint {
	return uint(len(p.vars))
}

// Nth returns the nth variable in this polynomial term.
func (p Monomial[S]) Nth(index uint) S {
	return p.vars[index]
}

// Neg returns a negated copy of this monomial
func (p Monomial[S]) Neg() Monomial[S] {
	var res = p.Clone()
	// Negate Coefficient
	res.coefficient.Neg(&res.coefficient)
	// Done
	return res
}

// Mul returns a fresh monomial representing the multiplication of this monomial
// and another.
func (p Monomial[S]) Mul(other Monomial[S]) Monomial[S] {
	var res Monomial[S]
	// Multiply coefficients
	res.coefficient.Mul(&p.coefficient, &other.coefficient)
	// Append variables
	res.vars = array.MergeSorted(p.vars, other.vars)
	// Done
	return res
}

// MulScalar multiplies this monomial by scalar.
func (p Monomial[S]) MulScalar(scalar *big.Int) Monomial[S] {
	var res = p.Clone()
	// Multiply coefficients
	res.coefficient.Mul(&res.coefficient, scalar)
	// Done
	return res
}

// Matches determines whether or not the variables of this term match those
// of the other.
func (p Monomial[S]) Matches(other Monomial[S]) bool {
	return hash.Equal(p.vars, other.vars)
}

// String constructs a suitable string representation for a given monomial
// assuming an environment which maps identifiers to strings.
func (p Monomial[S]) String(env func(S) string) string {
	var buf bytes.Buffer
	// Various cases to improve readability
	if p.Len() == 0 {
		buf.WriteString(p.coefficient.String())
	} else if p.coefficient.Cmp(one) != 0 {
		buf.WriteString("(")
		buf.WriteString(p.coefficient.String())
		//
		for _, v := range p.vars {
			buf.WriteString("*")
			buf.WriteString(env(v))
		}
		//
		buf.WriteString(")")
	} else if p.Len() == 1 {
		buf.WriteString(env(p.vars[0]))
	} else {
		buf.WriteString("(")
		//
		for j, v := range p.vars {
			if j != 0 {
				buf.WriteString("*")
			}
			//
			buf.WriteString(env(v))
		}
		//
		buf.WriteString(")")
	}
	//
	return buf.String()
}

// Vars returns the variables of this monomial as an array.  The returned array
// must not be modified.
func (p Monomial[S]) Vars() []S {
	return p.vars
}

func coefficientHash(c *big.Int) uint64 {
	return hash.Mix(uint64(c.Sign()+1), hash.Bytes(c.Bytes()))
}
