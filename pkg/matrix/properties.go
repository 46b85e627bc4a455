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
	"github.com/consensys/go-matexpr/pkg/util/logical"
)

// Property is a predicate over matrices which may be undecidable for a given
// matrix, given what is known about its symbols.
type Property func(Expr, *expr.Assumptions) logical.Tribool

// Properties lists the name of every predicate, along with the predicate.
var Properties = []struct {
	Name string
	Fn   Property
}{
	{"zero", IsZeroUnder},
	{"real", IsRealUnder},
	{"square", IsSquareUnder},
	{"diagonal", IsDiagonalUnder},
	{"symmetric", IsSymmetricUnder},
	{"lower", IsLowerUnder},
	{"upper", IsUpperUnder},
	{"toeplitz", IsToeplitzUnder},
}

// Size returns the number of rows and columns of a given matrix.  For a sum,
// literal dimensions are preferred over symbolic ones when both are known.
func Size(m Expr) (rows expr.Expr, cols expr.Expr) {
	return m.shape()
}

// IsZero determines whether every entry of a given matrix is zero.
func IsZero(m Expr) logical.Tribool {
	return IsZeroUnder(m, nil)
}

// IsZeroUnder determines whether every entry of a given matrix is zero, under
// a given set of assumptions.
func IsZeroUnder(m Expr, assumptions *expr.Assumptions) logical.Tribool {
	switch m := m.(type) {
	case *Zero:
		return logical.True
	case *Identity:
		// Only the 0×0 identity is zero.
		return expr.IsZeroUnder(m.size, assumptions)
	case *Diagonal:
		return logical.ForAll(m.entries, func(e expr.Expr) logical.Tribool {
			return expr.IsZeroUnder(e, assumptions)
		})
	case *Add:
		return sumRule(m, IsZeroUnder, assumptions)
	default:
		return logical.Indeterminate
	}
}

// IsReal determines whether every entry of a given matrix is real-valued.
func IsReal(m Expr) logical.Tribool {
	return IsRealUnder(m, nil)
}

// IsRealUnder determines whether every entry of a given matrix is real-valued,
// under a given set of assumptions.
func IsRealUnder(m Expr, assumptions *expr.Assumptions) logical.Tribool {
	switch m := m.(type) {
	case *Zero, *Identity:
		return logical.True
	case *Diagonal:
		return logical.ForAll(m.entries, func(e expr.Expr) logical.Tribool {
			return expr.IsRealUnder(e, assumptions)
		})
	case *Symbol:
		if assumptions.IsReal(m.name) {
			return logical.True
		}
		//
		return logical.Indeterminate
	case *Add:
		return sumRule(m, IsRealUnder, assumptions)
	default:
		return logical.Indeterminate
	}
}

// IsSquare determines whether a given matrix has as many rows as columns.
func IsSquare(m Expr) logical.Tribool {
	return IsSquareUnder(m, nil)
}

// IsSquareUnder determines whether a given matrix has as many rows as columns,
// under a given set of assumptions.
func IsSquareUnder(m Expr, assumptions *expr.Assumptions) logical.Tribool {
	switch m := m.(type) {
	case *Identity, *Diagonal:
		return logical.True
	case *Add:
		// Terms have conforming shapes, so any decided term decides the sum.
		// Conflicting terms mean the shapes could not conform after all.
		var square, nonSquare bool
		//
		for _, t := range m.terms {
			switch IsSquareUnder(t, assumptions) {
			case logical.True:
				square = true
			case logical.False:
				nonSquare = true
			}
		}
		//
		switch {
		case square && nonSquare:
			return logical.Indeterminate
		case square:
			return logical.True
		case nonSquare:
			return logical.False
		}
		//
		return logical.Indeterminate
	default:
		rows, cols := m.shape()
		return expr.IsZeroUnder(expr.Sub(rows, cols), assumptions)
	}
}

// IsDiagonal determines whether every off-diagonal entry of a given matrix is
// zero.
func IsDiagonal(m Expr) logical.Tribool {
	return IsDiagonalUnder(m, nil)
}

// IsDiagonalUnder determines whether every off-diagonal entry of a given
// matrix is zero, under a given set of assumptions.
func IsDiagonalUnder(m Expr, assumptions *expr.Assumptions) logical.Tribool {
	switch m := m.(type) {
	case *Identity, *Zero, *Diagonal:
		return logical.True
	case *Add:
		return sumRule(m, IsDiagonalUnder, assumptions)
	default:
		return logical.Indeterminate
	}
}

// IsSymmetric determines whether a given matrix equals its own transpose.
func IsSymmetric(m Expr) logical.Tribool {
	return IsSymmetricUnder(m, nil)
}

// IsSymmetricUnder determines whether a given matrix equals its own transpose,
// under a given set of assumptions.  A diagonal matrix is symmetric exactly
// when it is square.
func IsSymmetricUnder(m Expr, assumptions *expr.Assumptions) logical.Tribool {
	switch m := m.(type) {
	case *Add:
		return sumRule(m, IsSymmetricUnder, assumptions)
	default:
		if IsDiagonalUnder(m, assumptions).IsTrue() {
			return logical.True.And(IsSquareUnder(m, assumptions))
		}
		//
		return logical.Indeterminate
	}
}

// IsLower determines whether every entry above the diagonal of a given matrix
// is zero.
func IsLower(m Expr) logical.Tribool {
	return IsLowerUnder(m, nil)
}

// IsLowerUnder determines whether every entry above the diagonal of a given
// matrix is zero, under a given set of assumptions.
func IsLowerUnder(m Expr, assumptions *expr.Assumptions) logical.Tribool {
	return isTriangular(m, assumptions, IsLowerUnder)
}

// IsUpper determines whether every entry below the diagonal of a given matrix
// is zero.
func IsUpper(m Expr) logical.Tribool {
	return IsUpperUnder(m, nil)
}

// IsUpperUnder determines whether every entry below the diagonal of a given
// matrix is zero, under a given set of assumptions.
func IsUpperUnder(m Expr, assumptions *expr.Assumptions) logical.Tribool {
	return isTriangular(m, assumptions, IsUpperUnder)
}

func isTriangular(m Expr, assumptions *expr.Assumptions, self Property) logical.Tribool {
	switch m := m.(type) {
	case *Add:
		return sumRule(m, self, assumptions)
	default:
		if IsDiagonalUnder(m, assumptions).IsTrue() {
			return logical.True
		}
		//
		return logical.Indeterminate
	}
}

// IsToeplitz determines whether every descending diagonal of a given matrix is
// constant.
func IsToeplitz(m Expr) logical.Tribool {
	return IsToeplitzUnder(m, nil)
}

// IsToeplitzUnder determines whether every descending diagonal of a given
// matrix is constant, under a given set of assumptions.  For a diagonal matrix,
// this holds when all entries are equal.
func IsToeplitzUnder(m Expr, assumptions *expr.Assumptions) logical.Tribool {
	switch m := m.(type) {
	case *Identity, *Zero:
		return logical.True
	case *Diagonal:
		var res = logical.True
		//
		for _, e := range m.entries[1:] {
			switch d := expr.Sub(e, m.entries[0]); expr.IsZeroUnder(d, assumptions) {
			case logical.False:
				return logical.False
			case logical.Indeterminate:
				res = logical.Indeterminate
			}
		}
		//
		return res
	case *Add:
		return sumRule(m, IsToeplitzUnder, assumptions)
	default:
		return logical.Indeterminate
	}
}

// sumRule determines whether a property holds for a sum, given that the
// property is closed under addition.  That is, it holds when it holds for all
// terms, and fails when it fails for exactly one term.  When it fails for
// several terms, the failures may cancel.
func sumRule(m *Add, property Property, assumptions *expr.Assumptions) logical.Tribool {
	var failures = 0
	//
	for _, t := range m.terms {
		switch property(t, assumptions) {
		case logical.Indeterminate:
			return logical.Indeterminate
		case logical.False:
			failures++
		}
	}
	//
	switch failures {
	case 0:
		return logical.True
	case 1:
		return logical.False
	default:
		return logical.Indeterminate
	}
}
