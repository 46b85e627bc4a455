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

	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
)

var one = big.NewInt(1)

// String constructs a suitable string representation for a given polynomial
// assuming an environment which maps identifiers to strings.
func String[S Variable[S]](poly *ArrayPoly[S], env func(S) string) string {
	var buf bytes.Buffer
	//
	if poly.Len() == 0 {
		return "0"
	}
	//
	for i, ith := range poly.terms {
		if i != 0 {
			buf.WriteString("+")
		}
		//
		buf.WriteString(ith.String(env))
	}
	//
	return buf.String()
}

// Lisp constructs a suitable lisp representation for a given polynomial
// assuming an environment which maps variables to S-expressions.
func Lisp[S Variable[S]](poly *ArrayPoly[S], env func(S) sexp.SExp) sexp.SExp {
	var terms []sexp.SExp
	//
	if poly.Len() == 0 {
		return sexp.NewSymbol("0")
	}
	//
	for _, ith := range poly.terms {
		terms = append(terms, lispTerm(ith, env))
	}
	//
	if len(terms) == 1 {
		return terms[0]
	}
	//
	return sexp.NewList(append([]sexp.SExp{sexp.NewSymbol("+")}, terms...))
}

func lispTerm[S Variable[S]](term Monomial[S], env func(S) sexp.SExp) sexp.SExp {
	var (
		coeff = term.coefficient.String()
		isOne = term.coefficient.Cmp(one) == 0
	)
	// Case analysis
	switch {
	case len(term.vars) == 0:
		return sexp.NewSymbol(coeff)
	case isOne && len(term.vars) == 1:
		return env(term.vars[0])
	default:
		list := []sexp.SExp{sexp.NewSymbol("*")}
		//
		if !isOne {
			list = append(list, sexp.NewSymbol(coeff))
		}
		// Append variables
		for _, v := range term.vars {
			list = append(list, env(v))
		}
		//
		return sexp.NewList(list)
	}
}
